package outbound

import (
	"errors"
	"strconv"
)

var (
	ErrInit           = errors.New("client not initialized - call Init() or use New()")
	ErrInvalidOptions = errors.New("invalid options")
	ErrUserID         = errors.New("user ID must be a string or number")
	ErrPreviousID     = errors.New("previous ID must be a string or number")
	ErrEventName      = errors.New("event name must be a non-empty string")
	ErrToken          = errors.New("token must be a non-empty string")
	ErrPlatform       = errors.New("platform must be one of apns or gcm")
	ErrCampaignIDs    = errors.New("campaign IDs must be a non-empty list unless all is set")
	ErrConnection     = errors.New("outbound connection error")
)

// HTTPError is returned in a [Result] when the API answered with a status
// outside [200,400).
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return strconv.Itoa(e.StatusCode)
	}

	return strconv.Itoa(e.StatusCode) + " - " + e.Body
}
