package outbound

// Platform is a push notification channel a device token belongs to.
type Platform string

const (
	APNS Platform = "apns"
	GCM  Platform = "gcm"
)

func (p Platform) Valid() bool {
	return p == APNS || p == GCM
}
