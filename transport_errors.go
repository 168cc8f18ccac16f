package outbound

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
)

// transportFailureKind names the class of a transport error for log
// messages. Every kind is reported to the caller as [ErrConnection].
func transportFailureKind(err error) string {
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "dns"
	}

	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return "tls"
	}

	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return "tls"
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}

	return "connection"
}
