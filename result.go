package outbound

import "errors"

// Result is the outcome of a single API call.
//
// Err is nil on success. ReceivedCall reports whether the API actually
// answered: it is false for validation failures, which never touch the
// network, and for connection failures.
type Result struct {
	Err          error
	ReceivedCall bool
}

// Success reports whether the call reached the API and was accepted.
func (r Result) Success() bool {
	return r.ReceivedCall && r.Err == nil
}

func (r Result) InitError() bool        { return errors.Is(r.Err, ErrInit) }
func (r Result) OptionsError() bool     { return errors.Is(r.Err, ErrInvalidOptions) }
func (r Result) UserIDError() bool      { return errors.Is(r.Err, ErrUserID) }
func (r Result) PreviousIDError() bool  { return errors.Is(r.Err, ErrPreviousID) }
func (r Result) EventNameError() bool   { return errors.Is(r.Err, ErrEventName) }
func (r Result) TokenError() bool       { return errors.Is(r.Err, ErrToken) }
func (r Result) PlatformError() bool    { return errors.Is(r.Err, ErrPlatform) }
func (r Result) CampaignIDsError() bool { return errors.Is(r.Err, ErrCampaignIDs) }
func (r Result) ConnectionError() bool  { return errors.Is(r.Err, ErrConnection) }

// HTTPError reports whether the API answered with an error status.
func (r Result) HTTPError() bool {
	var httpErr *HTTPError
	return errors.As(r.Err, &httpErr)
}

// StatusCode returns the HTTP status of an error response, or 0 when the
// call succeeded or no response was received.
func (r Result) StatusCode() int {
	var httpErr *HTTPError
	if errors.As(r.Err, &httpErr) {
		return httpErr.StatusCode
	}

	return 0
}

// ValidationError reports whether the call was rejected before any network
// activity.
func (r Result) ValidationError() bool {
	for _, target := range []error{ErrInit, ErrInvalidOptions, ErrUserID, ErrPreviousID, ErrEventName, ErrToken, ErrPlatform, ErrCampaignIDs} {
		if errors.Is(r.Err, target) {
			return true
		}
	}

	return false
}
