// Package network provides pre-configured HTTP clients for vendor API communication.
//
// The fingerprint client leverages refraction-networking/utls to implement TLS
// fingerprint emulation, mimicking Chrome's Client Hello signature. Vendor
// anti-bot layers that reject standard Go HTTP clients accept it.
//
// Protocol negotiation (ALPN): an HTTP/2 connection is attempted first, as
// preferred by modern CDNs. If the server only negotiates HTTP/1.1, the
// request transparently falls back to an H1 transport with forced protocol
// advertisement.
package network

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const handshakeTimeout = 30 * time.Second

// errNoH2 signals that the peer negotiated HTTP/1.1 during the H2 attempt.
var errNoH2 = errors.New("peer did not negotiate h2")

var (
	fingerprintOnce   sync.Once
	fingerprintClient *http.Client
)

// FingerprintClient returns the shared TLS-fingerprint-emulating HTTP client.
func FingerprintClient() *http.Client {
	fingerprintOnce.Do(func() {
		fingerprintClient = &http.Client{
			Timeout:   time.Minute,
			Transport: newFingerprintTransport(),
		}
	})
	return fingerprintClient
}

// fingerprintTransport attempts HTTP/2 first and falls back to HTTP/1.1 when
// the handshake reveals the server does not speak h2.
type fingerprintTransport struct {
	h2 *http2.Transport
	h1 *http.Transport
}

func newFingerprintTransport() *fingerprintTransport {
	return &fingerprintTransport{
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr, []string{"h2", "http/1.1"}, true)
			},
		},
		h1: &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialTLS(ctx, network, addr, []string{"http/1.1"}, false)
			},
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}
	if !errors.Is(err, errNoH2) {
		return nil, err
	}
	return t.h1.RoundTrip(req)
}

// dialTLS establishes a TCP connection and performs a uTLS handshake with
// Chrome's fingerprint. With requireH2, the connection is rejected when the
// server negotiates anything but h2.
func dialTLS(ctx context.Context, network, addr string, protos []string, requireH2 bool) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: handshakeTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	if requireH2 && tlsConn.ConnectionState().NegotiatedProtocol != "h2" {
		conn.Close()
		return nil, errNoH2
	}

	return tlsConn, nil
}
