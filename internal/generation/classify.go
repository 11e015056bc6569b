package generation

import "strings"

// ErrorKind buckets a failed generation attempt for the retry state machine.
type ErrorKind int

// Possible error kind values
const (
	// KindRateLimited marks a transient rejection from the remote rate
	// limiter; the executor retries these with escalating backoff.
	KindRateLimited ErrorKind = iota

	// KindPermissionDenied marks an invalid or expired credential; terminal,
	// and the caller should trigger re-authentication.
	KindPermissionDenied

	// KindOther covers everything else (network faults, malformed
	// responses, quota failures beyond rate limiting); terminal.
	KindOther
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindPermissionDenied:
		return "permission_denied"
	default:
		return "other"
	}
}

// Substrings the remote API embeds in its error messages. These rules are
// the only place that couples to the API's message format.
var (
	rateLimitMarkers = []string{
		"429",
		"Too many requests",
	}

	permissionMarkers = []string{
		"Requested entity was not found",
		"403",
		"API key not valid",
	}
)

// Classify buckets an error from a generation attempt by matching known
// substrings of the remote API's error surface. Unrecognized errors are
// KindOther.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindOther
	}

	msg := err.Error()

	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, marker) {
			return KindRateLimited
		}
	}

	for _, marker := range permissionMarkers {
		if strings.Contains(msg, marker) {
			return KindPermissionDenied
		}
	}

	return KindOther
}
