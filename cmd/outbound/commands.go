package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	outbound "github.com/peteraglen/outbound-go-client"
	"github.com/spf13/cobra"
)

type app struct {
	out    io.Writer
	flags  rootFlags
	client *outbound.Client
}

func newRootCommand(out io.Writer, getenv func(string) string) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "outbound",
		Short:         "Send calls to the Outbound API from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := a.flags.resolve(getenv)
			if err != nil {
				return err
			}
			a.client = outbound.New(cfg.APIKey, cfg.options()...)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.apiKey, "api-key", "", "API key (default $OUTBOUND_API_KEY)")
	pf.StringVar(&a.flags.baseURL, "base-url", "", "API root (default $OUTBOUND_BASE_URL or "+outbound.DefaultBaseURL+")")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "off, error, warn, info or debug (default $OUTBOUND_LOG_LEVEL or error)")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "per-call timeout, 0 for none")
	pf.BoolVar(&a.flags.numericIDs, "numeric-ids", false, "send user and group IDs as numbers")

	root.AddCommand(
		a.identifyCommand(),
		a.aliasCommand(),
		a.trackCommand(),
		a.registerCommand(),
		a.disableCommand(),
		a.subscriptionCommand(true),
		a.subscriptionCommand(false),
	)

	return root
}

func (a *app) parseID(text string) (outbound.ID, error) {
	if !a.flags.numericIDs {
		return outbound.StringID(text), nil
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return outbound.IntID(n), nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return outbound.ID{}, fmt.Errorf("%q is not a number", text)
	}

	return outbound.FloatID(f), nil
}

func (a *app) report(what string, res outbound.Result) error {
	if !res.Success() {
		return fmt.Errorf("%s failed: %w", what, res.Err)
	}

	_, err := fmt.Fprintf(a.out, "%s: ok\n", what)
	return err
}

func toAnyMap(m map[string]string) map[string]any {
	if len(m) == 0 {
		return nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

func (a *app) identifyCommand() *cobra.Command {
	var (
		info       outbound.UserInfo
		groupID    string
		previousID string
		attrs      map[string]string
		groupAttrs map[string]string
	)

	cmd := &cobra.Command{
		Use:   "identify USER_ID",
		Short: "Attach profile information to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.parseID(args[0])
			if err != nil {
				return err
			}

			if groupID != "" {
				if info.GroupID, err = a.parseID(groupID); err != nil {
					return err
				}
			}

			if previousID != "" {
				if info.PreviousID, err = a.parseID(previousID); err != nil {
					return err
				}
			}

			info.Attributes = toAnyMap(attrs)
			info.GroupAttributes = toAnyMap(groupAttrs)

			return a.report("identify", a.client.Identify(cmd.Context(), userID, info))
		},
	}

	f := cmd.Flags()
	f.StringVar(&info.FirstName, "first-name", "", "first name")
	f.StringVar(&info.LastName, "last-name", "", "last name")
	f.StringVar(&info.Email, "email", "", "email address")
	f.StringVar(&info.PhoneNumber, "phone", "", "phone number")
	f.StringSliceVar(&info.APNSTokens, "apns-token", nil, "APNS device token (repeatable)")
	f.StringSliceVar(&info.GCMTokens, "gcm-token", nil, "GCM device token (repeatable)")
	f.StringVar(&groupID, "group-id", "", "group the user belongs to")
	f.StringVar(&previousID, "previous-id", "", "identifier to merge into this user")
	f.StringToStringVar(&attrs, "attr", nil, "user attribute key=value (repeatable)")
	f.StringToStringVar(&groupAttrs, "group-attr", nil, "group attribute key=value (repeatable)")

	return cmd
}

func (a *app) aliasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alias USER_ID PREVIOUS_ID",
		Short: "Merge a previous identifier into a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.parseID(args[0])
			if err != nil {
				return err
			}

			previousID, err := a.parseID(args[1])
			if err != nil {
				return err
			}

			return a.report("alias", a.client.Alias(cmd.Context(), userID, previousID))
		},
	}
}

func (a *app) trackCommand() *cobra.Command {
	var (
		props     map[string]string
		timestamp int64
	)

	cmd := &cobra.Command{
		Use:   "track USER_ID EVENT",
		Short: "Record an event for a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.parseID(args[0])
			if err != nil {
				return err
			}

			event := outbound.Event{
				UserID:     userID,
				Name:       args[1],
				Properties: toAnyMap(props),
			}

			if timestamp > 0 {
				event.Timestamp = time.Unix(timestamp, 0)
			}

			return a.report("track", a.client.Track(cmd.Context(), event))
		},
	}

	cmd.Flags().StringToStringVar(&props, "prop", nil, "event property key=value (repeatable)")
	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "event time in Unix seconds (default now)")

	return cmd
}

func (a *app) registerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register PLATFORM USER_ID TOKEN",
		Short: "Register a device token (platform apns or gcm)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.parseID(args[1])
			if err != nil {
				return err
			}

			res := a.client.Register(cmd.Context(), outbound.Platform(args[0]), userID, args[2])
			return a.report("register", res)
		},
	}
}

func (a *app) disableCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "disable PLATFORM USER_ID [TOKEN]",
		Short: "Disable one device token, or all of them with --all",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && len(args) == 3 {
				return errors.New("TOKEN cannot be combined with --all")
			}

			userID, err := a.parseID(args[1])
			if err != nil {
				return err
			}

			platform := outbound.Platform(args[0])

			if all {
				return a.report("disable", a.client.DisableAll(cmd.Context(), platform, userID))
			}

			var token string
			if len(args) == 3 {
				token = args[2]
			}

			return a.report("disable", a.client.Disable(cmd.Context(), platform, userID, token))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "disable every token of the user on the platform")

	return cmd
}

func (a *app) subscriptionCommand(subscribe bool) *cobra.Command {
	var (
		all         bool
		campaignIDs []int64
	)

	name := "unsubscribe"
	call := a.unsubscribe
	if subscribe {
		name = "subscribe"
		call = a.subscribe
	}

	cmd := &cobra.Command{
		Use:   name + " USER_ID",
		Short: "Change a user's campaign subscriptions (" + name + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.parseID(args[0])
			if err != nil {
				return err
			}

			return a.report(name, call(cmd.Context(), userID, all, campaignIDs))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "apply to every campaign")
	cmd.Flags().Int64SliceVar(&campaignIDs, "campaign", nil, "campaign ID (repeatable or comma separated)")

	return cmd
}

func (a *app) subscribe(ctx context.Context, userID outbound.ID, all bool, campaignIDs []int64) outbound.Result {
	return a.client.Subscribe(ctx, userID, all, campaignIDs)
}

func (a *app) unsubscribe(ctx context.Context, userID outbound.ID, all bool, campaignIDs []int64) outbound.Result {
	return a.client.Unsubscribe(ctx, userID, all, campaignIDs)
}
