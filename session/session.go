// Package session owns the bearer-token lifecycle for vendor APIs:
// cached-token reuse, anonymous token acquisition and unauthorized-triggered
// refresh with a single retry.
package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cadence-dl/cadence/constant"
	"github.com/cadence-dl/cadence/log"
	"github.com/cadence-dl/cadence/network"
	"github.com/samber/mo"
)

// TokenFunc acquires a fresh anonymous bearer token for a vendor.
type TokenFunc func(client *http.Client) (string, error)

// Session is the per-vendor API handle. It holds at most one live bearer
// token at a time, seeded from the persistent cache on first use and
// replaced whenever a call comes back unauthorized.
//
// A Session is not safe for concurrent use: two simultaneous refreshes
// would each mint a valid token and the last writer wins, wasting a round
// trip without corrupting state.
type Session struct {
	Vendor      string
	Client      *http.Client
	BaseHeaders map[string]string
	Scrape      TokenFunc

	token mo.Option[string]
}

// New creates a Session for a vendor using the shared tuned HTTP client.
func New(vendor string, scrape TokenFunc) *Session {
	return &Session{
		Vendor: vendor,
		Client: network.Default(),
		Scrape: scrape,
	}
}

// Params describes one authorized API call.
type Params struct {
	Method  string
	URL     string
	Query   url.Values
	Headers map[string]string
	Body    []byte

	// AcceptStatuses lists non-2xx statuses the caller wants handed back
	// as-is, error body included, instead of failing the request.
	AcceptStatuses []int
}

// Response is a fully drained API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Request performs an authorized API call. An unauthorized response is not
// yet a final result: the token is refreshed once (scraped anonymously and
// written back to the cache) and the call retried. A second unauthorized
// response, or any status the caller did not accept, is a final error.
func (s *Session) Request(params Params) (*Response, error) {
	if token, ok := s.token.Get(); ok {
		resp, err := s.do(params, token)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusUnauthorized {
			return s.accept(params, resp)
		}
		// token expired
	} else if token, ok := cache.Get(s.Vendor).Get(); ok {
		s.token = mo.Some(token)

		resp, err := s.do(params, token)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusUnauthorized {
			return s.accept(params, resp)
		}
		// cached token expired
	}

	token, err := s.Scrape(s.Client)
	if err != nil {
		return nil, fmt.Errorf("%s: refreshing bearer token: %w", s.Vendor, err)
	}

	if err := cache.Set(s.Vendor, token); err != nil {
		log.Error(err)
	}

	s.token = mo.Some(token)

	resp, err := s.do(params, token)
	if err != nil {
		return nil, err
	}

	// A fresh token must not come back unauthorized again. accept treats
	// this as final, preventing a refresh loop.
	return s.accept(params, resp)
}

// JSON performs Request and decodes the response body. An empty body
// decodes as an empty object, which some endpoints send for valid ids.
func (s *Session) JSON(params Params, out any) error {
	resp, err := s.Request(params)
	if err != nil {
		return err
	}

	body := resp.Body
	if len(body) == 0 {
		body = []byte("{}")
	}

	return json.Unmarshal(body, out)
}

func (s *Session) accept(params Params, resp *Response) (*Response, error) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	for _, status := range params.AcceptStatuses {
		if resp.StatusCode == status {
			return resp, nil
		}
	}

	return nil, fmt.Errorf("%s: unexpected status %d for %s", s.Vendor, resp.StatusCode, params.URL)
}

func (s *Session) do(params Params, token string) (*Response, error) {
	method := params.Method
	if method == "" {
		method = http.MethodGet
	}

	target := params.URL
	if len(params.Query) > 0 {
		u, err := url.Parse(target)
		if err != nil {
			return nil, err
		}

		query := u.Query()
		for k, vs := range params.Query {
			for _, v := range vs {
				query.Add(k, v)
			}
		}

		u.RawQuery = query.Encode()
		target = u.String()
	}

	var body io.Reader
	if len(params.Body) > 0 {
		body = bytes.NewReader(params.Body)
	}

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	for k, v := range s.BaseHeaders {
		req.Header.Set(k, v)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	// Per-call headers win over everything, and an explicit empty value
	// suppresses the header entirely. Media endpoints reject requests
	// that carry API authorization.
	for k, v := range params.Headers {
		if v == "" {
			req.Header.Del(k)
			continue
		}
		req.Header.Set(k, v)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
