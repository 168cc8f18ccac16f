package outbound

import (
	"context"
	"encoding/json"
	"strings"
)

// Identify attaches profile information to a user. Fields of info that are
// empty are not sent. If info cannot be encoded the problem is logged and
// the user is identified without it.
func (c *Client) Identify(ctx context.Context, userID ID, info UserInfo) Result {
	if res := c.ready(); res != nil {
		return *res
	}

	if !userID.Valid() {
		return *c.reject(ErrUserID)
	}

	data := map[string]any{}

	user, err := userPayload(info)
	if err != nil {
		c.options.requestLogger.Errorf("could not use user info given to identify call: %v", err)
	} else {
		for k, v := range user {
			data[k] = v
		}
	}

	data["user_id"] = userID

	return c.post(ctx, "/identify", data)
}

// Alias merges previousID into userID.
func (c *Client) Alias(ctx context.Context, userID, previousID ID) Result {
	if res := c.ready(); res != nil {
		return *res
	}

	if !userID.Valid() {
		return *c.reject(ErrUserID)
	}

	if !previousID.Valid() {
		return *c.reject(ErrPreviousID)
	}

	return c.post(ctx, "/identify", map[string]any{
		"user_id":     userID,
		"previous_id": previousID,
	})
}

// Track records an event. Properties and user info that cannot be encoded
// are logged and left out; the event is still sent. An empty event name is
// rejected with [ErrEventName].
func (c *Client) Track(ctx context.Context, event Event) Result {
	if res := c.ready(); res != nil {
		return *res
	}

	if !event.UserID.Valid() {
		return *c.reject(ErrUserID)
	}

	if event.Name == "" {
		return *c.reject(ErrEventName)
	}

	timestamp := event.Timestamp
	if timestamp.IsZero() {
		timestamp = c.now()
	}

	data := map[string]any{
		"user_id":   event.UserID,
		"event":     event.Name,
		"timestamp": timestamp.Unix(),
	}

	user, err := userPayload(event.User)
	if err != nil {
		c.options.requestLogger.Errorf("could not use user info given to track call: %v", err)
	} else if len(user) > 0 {
		data["user"] = user
	}

	if len(event.Properties) > 0 {
		if _, err := json.Marshal(event.Properties); err != nil {
			c.options.requestLogger.Errorf("could not use event properties given to track call: %v", err)
		} else {
			data["properties"] = event.Properties
		}
	}

	return c.post(ctx, "/track", data)
}

// Register associates a device token with a user. An empty or
// whitespace-only token is rejected with [ErrToken]; the same applies to
// [Client.Disable].
func (c *Client) Register(ctx context.Context, platform Platform, userID ID, token string) Result {
	return c.deviceToken(ctx, "register", platform, userID, token, false)
}

// Disable stops notifications to one device token of a user.
func (c *Client) Disable(ctx context.Context, platform Platform, userID ID, token string) Result {
	return c.deviceToken(ctx, "disable", platform, userID, token, false)
}

// DisableAll stops notifications to every device token a user has on
// platform.
func (c *Client) DisableAll(ctx context.Context, platform Platform, userID ID) Result {
	return c.deviceToken(ctx, "disable", platform, userID, "", true)
}

func (c *Client) deviceToken(ctx context.Context, action string, platform Platform, userID ID, token string, all bool) Result {
	if res := c.ready(); res != nil {
		return *res
	}

	if !platform.Valid() {
		return *c.reject(ErrPlatform)
	}

	if !userID.Valid() {
		return *c.reject(ErrUserID)
	}

	data := map[string]any{"user_id": userID}

	if all {
		data["all"] = true
	} else {
		if strings.TrimSpace(token) == "" {
			return *c.reject(ErrToken)
		}
		data["token"] = token
	}

	return c.post(ctx, "/"+string(platform)+"/"+action, data)
}

// Subscribe subscribes a user to every campaign when all is set, otherwise
// to the listed campaigns.
func (c *Client) Subscribe(ctx context.Context, userID ID, all bool, campaignIDs []int64) Result {
	return c.subscription(ctx, true, userID, all, campaignIDs)
}

// Unsubscribe is the inverse of [Client.Subscribe].
func (c *Client) Unsubscribe(ctx context.Context, userID ID, all bool, campaignIDs []int64) Result {
	return c.subscription(ctx, false, userID, all, campaignIDs)
}

func (c *Client) subscription(ctx context.Context, subscribe bool, userID ID, all bool, campaignIDs []int64) Result {
	if res := c.ready(); res != nil {
		return *res
	}

	if !userID.Valid() {
		return *c.reject(ErrUserID)
	}

	if !all && len(campaignIDs) == 0 {
		return *c.reject(ErrCampaignIDs)
	}

	data := map[string]any{"user_id": userID}
	if !all {
		data["campaign_ids"] = campaignIDs
	}

	return c.post(ctx, subscriptionPath(subscribe, all), data)
}

func subscriptionPath(subscribe, all bool) string {
	path := "/unsubscribe"
	if subscribe {
		path = "/subscribe"
	}

	if all {
		return path + "/all"
	}

	return path + "/campaigns"
}
