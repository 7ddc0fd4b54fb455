package nffl

import "time"

const (
	providerName = "nffl"

	// AuthHeader carries the per-match bearer credential on verify, create,
	// delete and confirm calls. The backend is the sole authority on whether
	// a token is valid for a given match.
	AuthHeader = "nffl-match-auth"

	defaultBaseURL     = "https://api.nffl.app/v1"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512
)
