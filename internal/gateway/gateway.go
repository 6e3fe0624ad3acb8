package gateway

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"auction-dashboard/internal/dashboarderrors"

	json "github.com/goccy/go-json"
)

// Endpoint is one of the read-only paths exposed by the auction service
type Endpoint string

const (
	AuctionState Endpoint = "/auction_state"
	BidsHistory  Endpoint = "/bids_history"
	AllAuctions  Endpoint = "/all_auctions"
	AuctionStats Endpoint = "/auction_stats"
)

// MaxBodyBytes caps how much of a response body is read before it is rejected
const MaxBodyBytes = 8 << 20

// Endpoints lists every endpoint the dashboard polls
var Endpoints = []Endpoint{AuctionState, BidsHistory, AllAuctions, AuctionStats}

// Valid reports whether e is a known endpoint
func (e Endpoint) Valid() bool {
	for _, known := range Endpoints {
		if e == known {
			return true
		}
	}
	return false
}

// Fetcher issues a GET against an endpoint and decodes the JSON body into out
type Fetcher interface {
	FetchJSON(ctx context.Context, endpoint Endpoint, out any) error
}

// Client is the HTTP implementation of Fetcher
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	maxBody    int64
}

// NewClient creates a gateway client for the auction service at baseURL.
// A nil httpClient gets a client with the platform default timeouts.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("gateway: invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("gateway: base url %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: u, httpClient: httpClient, maxBody: MaxBodyBytes}, nil
}

// FetchJSON performs GET baseURL+endpoint and decodes the body into out.
// Only JSON well-formedness is checked here; field-level shape is checked by the store.
func (c *Client) FetchJSON(ctx context.Context, endpoint Endpoint, out any) error {
	if !endpoint.Valid() {
		return fmt.Errorf("gateway: %w: %s", dashboarderrors.ErrUnknownEndpoint, endpoint)
	}
	path := string(endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String()+path, nil)
	if err != nil {
		return fmt.Errorf("gateway: build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &dashboarderrors.NetworkError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBody))
		return &dashboarderrors.HTTPError{Path: path, Status: resp.StatusCode}
	}

	// one byte past the cap tells an oversized body apart from one that fits exactly
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return &dashboarderrors.NetworkError{Path: path, Err: err}
	}
	if int64(len(body)) > c.maxBody {
		return &dashboarderrors.DecodeError{Path: path, Err: fmt.Errorf("body exceeds %d bytes", c.maxBody)}
	}
	if !json.Valid(body) {
		return &dashboarderrors.DecodeError{Path: path, Err: fmt.Errorf("malformed json body (%d bytes)", len(body))}
	}
	// well-formed JSON whose types do not fit the expected shape
	if err := json.Unmarshal(body, out); err != nil {
		return &dashboarderrors.ShapeError{Slice: path, Err: err}
	}
	return nil
}

// Fetch is the typed form of FetchJSON
func Fetch[T any](ctx context.Context, f Fetcher, endpoint Endpoint) (T, error) {
	var out T
	if err := f.FetchJSON(ctx, endpoint, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
