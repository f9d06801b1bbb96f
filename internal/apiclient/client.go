// Package apiclient is the Go counterpart of the dashboard data service: it
// fetches deals over the REST API, validates every record and builds deal
// views locally.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"sponsortrack/internal/dealview"
	"sponsortrack/internal/models"
)

// ErrMalformedDeal matches every record-level validation failure.
var ErrMalformedDeal = errors.New("malformed deal")

// MalformedDeal describes one rejected record of a list response.
type MalformedDeal struct {
	Index int
	Raw   json.RawMessage
	Err   error
}

// MalformedDealsError is returned next to the valid records when some
// records of a response failed validation.
type MalformedDealsError struct {
	Records []MalformedDeal
}

func (e *MalformedDealsError) Error() string {
	parts := make([]string, 0, len(e.Records))
	for _, r := range e.Records {
		parts = append(parts, fmt.Sprintf("#%d: %v", r.Index, r.Err))
	}
	return fmt.Sprintf("%s: %d record(s): %s", ErrMalformedDeal, len(e.Records), strings.Join(parts, "; "))
}

func (e *MalformedDealsError) Unwrap() error { return ErrMalformedDeal }

// APIError is a response with success=false or a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Scope selects the deals to fetch. OrganizationID wins over AccountID.
type Scope struct {
	OrganizationID int
	AccountID      int
}

// Client talks to the sponsortrack REST API.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

// New returns a client for baseURL; a nil httpClient gets a 15s timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     httpClient,
		validate: newValidator(),
	}
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Items   []json.RawMessage `json:"items"`
	Item    json.RawMessage   `json:"item"`
}

func (c *Client) get(ctx context.Context, path string) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if resp.StatusCode >= 300 || !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

// Deals fetches all deals.
func (c *Client) Deals(ctx context.Context) ([]models.Deal, error) {
	return c.deals(ctx, "/api/deals")
}

// DealsByAccount fetches the deals of one account.
func (c *Client) DealsByAccount(ctx context.Context, accountID int) ([]models.Deal, error) {
	return c.DealsByScope(ctx, Scope{AccountID: accountID})
}

// DealsByOrganization fetches the deals of every account of an organization.
func (c *Client) DealsByOrganization(ctx context.Context, organizationID int) ([]models.Deal, error) {
	return c.DealsByScope(ctx, Scope{OrganizationID: organizationID})
}

// DealsByScope fetches the organization's deals, else the account's, else all.
func (c *Client) DealsByScope(ctx context.Context, s Scope) ([]models.Deal, error) {
	return c.deals(ctx, scopePath(s))
}

// DealsByFilter fetches the scope with status, year and search passed as
// query params, so the server filters before responding.
func (c *Client) DealsByFilter(ctx context.Context, s Scope, f dealview.Filter) ([]models.Deal, error) {
	path := scopePath(s)
	if q := filterQuery(f); len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.deals(ctx, path)
}

func scopePath(s Scope) string {
	switch {
	case s.OrganizationID > 0:
		return fmt.Sprintf("/api/deals/organization/%d", s.OrganizationID)
	case s.AccountID > 0:
		return fmt.Sprintf("/api/deals/account/%d", s.AccountID)
	default:
		return "/api/deals"
	}
}

func filterQuery(f dealview.Filter) url.Values {
	q := url.Values{}
	if f.Status != nil {
		q.Set("status", string(*f.Status))
	}
	if f.Year != nil {
		q.Set("year", strconv.Itoa(*f.Year))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// View fetches the scope and builds the dashboard locally. Malformed records
// are left out of the view and reported through the returned error.
func (c *Client) View(ctx context.Context, s Scope, f dealview.Filter) (dealview.View, error) {
	deals, err := c.DealsByScope(ctx, s)
	var malformed *MalformedDealsError
	if err != nil && !errors.As(err, &malformed) {
		return dealview.View{}, err
	}
	return dealview.Build(deals, f), err
}

func (c *Client) deals(ctx context.Context, path string) ([]models.Deal, error) {
	env, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	deals := make([]models.Deal, 0, len(env.Items))
	var bad []MalformedDeal
	for i, raw := range env.Items {
		d, err := c.decodeDeal(raw)
		if err != nil {
			bad = append(bad, MalformedDeal{Index: i, Raw: raw, Err: err})
			continue
		}
		deals = append(deals, d)
	}
	if len(bad) > 0 {
		return deals, &MalformedDealsError{Records: bad}
	}
	return deals, nil
}

func (c *Client) decodeDeal(raw json.RawMessage) (models.Deal, error) {
	var d models.Deal
	if err := json.Unmarshal(raw, &d); err != nil {
		return d, err
	}
	// a missing value decodes to zero in models.Deal
	var presence dealPresence
	if err := json.Unmarshal(raw, &presence); err != nil {
		return d, err
	}
	if err := c.validate.Struct(presence); err != nil {
		return d, err
	}
	if err := c.validate.Struct(d); err != nil {
		return d, err
	}
	return d, nil
}

func (c *Client) Organizations(ctx context.Context) ([]models.Organization, error) {
	env, err := c.get(ctx, "/api/organizations")
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Organization](env.Items)
}

func (c *Client) AccountsByOrganization(ctx context.Context, organizationID int) ([]models.Account, error) {
	env, err := c.get(ctx, fmt.Sprintf("/api/accounts/organization/%d", organizationID))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Account](env.Items)
}

func decodeAll[T any](items []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, raw := range items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("item #%d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
