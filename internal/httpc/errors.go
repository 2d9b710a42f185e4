package httpc

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Kind classifies a network failure.
type Kind int

const (
	// KindConnection covers refused/reset/unreachable transport failures.
	KindConnection Kind = iota
	// KindTimeout covers deadline and cancellation failures.
	KindTimeout
	// KindNotFound covers 4xx responses.
	KindNotFound
	// KindServer covers 5xx responses.
	KindServer
	// KindTLS covers certificate and handshake failures.
	KindTLS
	// KindParse covers responses whose body could not be interpreted.
	KindParse
	// KindBadURL covers malformed request URLs.
	KindBadURL
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindTimeout:
		return "timeout"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindTLS:
		return "tls"
	case KindParse:
		return "parse"
	case KindBadURL:
		return "bad_url"
	default:
		return "unknown"
	}
}

// Error is the typed network error surfaced by the client. Status is only
// set for KindNotFound and KindServer.
type Error struct {
	Kind   Kind
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s error for %s: HTTP %d", e.Kind, e.URL, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s error for %s: %v", e.Kind, e.URL, e.Err)
	}
	return fmt.Sprintf("%s error for %s", e.Kind, e.URL)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorKind reports the Kind of err if it is (or wraps) an *Error.
func ErrorKind(err error) (Kind, bool) {
	var ne *Error
	if errors.As(err, &ne) {
		return ne.Kind, true
	}
	return 0, false
}

// ParseError wraps err as a parse-kind network error for the given URL.
// The data source uses this when a response body cannot be interpreted.
func ParseError(rawURL string, err error) *Error {
	return &Error{Kind: KindParse, URL: rawURL, Err: err}
}

// classifyTransport maps a transport-level failure to an error kind.
func classifyTransport(rawURL string, err error) *Error {
	kind := KindConnection

	var netErr net.Error
	var certErr x509.CertificateInvalidError
	var unknownAuthErr x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var verifyErr *tls.CertificateVerificationError
	var recordErr tls.RecordHeaderError
	var urlErr *url.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		kind = KindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = KindTimeout
	case errors.As(err, &certErr), errors.As(err, &unknownAuthErr),
		errors.As(err, &hostnameErr), errors.As(err, &verifyErr),
		errors.As(err, &recordErr):
		kind = KindTLS
	case errors.As(err, &urlErr) && urlErr.Op == "parse":
		kind = KindBadURL
	}

	return &Error{Kind: kind, URL: rawURL, Err: err}
}

// classifyStatus maps a completed response's status code to an error, or
// nil for success.
func classifyStatus(rawURL string, status int) *Error {
	switch {
	case status >= 500:
		return &Error{Kind: KindServer, URL: rawURL, Status: status}
	case status >= 400:
		return &Error{Kind: KindNotFound, URL: rawURL, Status: status}
	default:
		return nil
	}
}
