// Package network provides pre-configured HTTP clients for vendor API communication.
package network

import (
	"net/http"
	"time"

	"github.com/cadence-dl/cadence/key"
	"github.com/spf13/viper"
)

// Client is the singleton HTTP client shared across the application for efficient resource utilization.
// It is configured with increased concurrency limits and reasonable timeouts tailored for catalog workflows.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// Default returns the client to use for vendor endpoints, honoring the TLS fingerprint setting.
// Some vendor CDNs reject Go's default Client Hello; the fingerprint client mimics Chrome's.
func Default() *http.Client {
	if viper.GetBool(key.NetworkTLSFingerprint) {
		return FingerprintClient()
	}
	return Client
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
