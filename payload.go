package outbound

import (
	"encoding/json"
	"fmt"
	"time"
)

// UserInfo holds the profile fields sent with [Client.Identify] and,
// optionally, with [Client.Track]. Empty fields are left out of the request.
type UserInfo struct {
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	APNSTokens      []string
	GCMTokens       []string
	GroupID         ID
	GroupAttributes map[string]any
	PreviousID      ID
	Attributes      map[string]any
}

// Event is a named occurrence recorded with [Client.Track].
type Event struct {
	UserID     ID
	Name       string
	Properties map[string]any

	// Timestamp defaults to the time of the call.
	Timestamp time.Time

	// User is sent alongside the event when it carries any field.
	User UserInfo
}

// userPayload builds the user part of a request body. It fails when one of
// the free-form maps cannot be JSON encoded.
func userPayload(info UserInfo) (map[string]any, error) {
	user := map[string]any{}

	putString(user, "first_name", info.FirstName)
	putString(user, "last_name", info.LastName)
	putString(user, "email", info.Email)
	putString(user, "phone_number", info.PhoneNumber)

	if len(info.APNSTokens) > 0 {
		user["apns"] = info.APNSTokens
	}

	if len(info.GCMTokens) > 0 {
		user["gcm"] = info.GCMTokens
	}

	if info.GroupID.Valid() {
		user["group_id"] = info.GroupID
	}

	if info.PreviousID.Valid() {
		user["previous_id"] = info.PreviousID
	}

	if err := putMap(user, "group_attributes", info.GroupAttributes); err != nil {
		return nil, err
	}

	if err := putMap(user, "attributes", info.Attributes); err != nil {
		return nil, err
	}

	return user, nil
}

func putString(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func putMap(m map[string]any, key string, value map[string]any) error {
	if len(value) == 0 {
		return nil
	}

	if _, err := json.Marshal(value); err != nil {
		return fmt.Errorf("%s cannot be encoded: %w", key, err)
	}

	m[key] = value

	return nil
}
