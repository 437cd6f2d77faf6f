package common

const (
	// MaxRequestBody limits JSON request bodies for all write endpoints.
	MaxRequestBody = 1 << 20
)
