// Package coingecko provides a minimal client for the CoinGecko simple price API.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coinwatch/coinprice/internal/errors"
)

// Client is a minimal HTTP client for CoinGecko price lookups.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a new client for the given API base URL
// (e.g. "https://api.coingecko.com/api/v3"). If httpClient is nil, a default
// with the given timeout is used.
func NewClient(baseURL string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Quote is the outcome of a single price lookup.
//
// Found distinguishes a real quote from a missing one: the upstream response
// lacking the coin or currency key, a null value, or a price of exactly 0 all
// yield Found == false. A genuine zero price is therefore indistinguishable
// from "not found"; that is the documented behavior, not an oversight.
type Quote struct {
	Coin     string
	Currency string
	Price    json.Number
	Found    bool
}

// SimplePrice fetches the current price of coin denominated in currency.
//
// It returns a Quote for both the found and not-found outcomes; the error
// return is reserved for faults (request construction, network, non-2xx
// status, undecodable body). Coin and currency are sent to the API exactly
// as given, without case normalization.
func (c *Client) SimplePrice(ctx context.Context, coin, currency string) (*Quote, error) {
	reqURL, err := c.buildPriceURL(coin, currency)
	if err != nil {
		return nil, errors.UpstreamFailed(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.UpstreamFailed(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.UpstreamFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.UpstreamFailed(fmt.Errorf("coingecko api status %d", resp.StatusCode))
	}

	// Body shape: {"<coin>": {"<currency>": <number>}}
	prices, err := decodePrices(resp)
	if err != nil {
		return nil, errors.UpstreamFailed(err)
	}

	quote := &Quote{
		Coin:     coin,
		Currency: currency,
	}

	price, ok := prices[coin][currency]
	if !ok {
		return quote, nil
	}

	// A null value decodes to an empty json.Number; treat it, and an exact
	// zero, the same as a missing key.
	value, err := price.Float64()
	if err != nil || value == 0 {
		return quote, nil
	}

	quote.Price = price
	quote.Found = true
	return quote, nil
}

// buildPriceURL composes the simple/price URL with query params.
func (c *Client) buildPriceURL(coin, currency string) (string, error) {
	u, err := url.Parse(c.baseURL + "/simple/price")
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}

	q := u.Query()
	q.Set("ids", coin)
	q.Set("vs_currencies", currency)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// decodePrices decodes the response body into coin -> currency -> price.
// UseNumber keeps the price exactly as the API rendered it, so formatting
// later does not round or rewrite it.
func decodePrices(resp *http.Response) (map[string]map[string]json.Number, error) {
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var prices map[string]map[string]json.Number
	if err := dec.Decode(&prices); err != nil {
		return nil, fmt.Errorf("failed to decode price response: %w", err)
	}

	return prices, nil
}
