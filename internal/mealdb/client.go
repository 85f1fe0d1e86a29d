package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Jithendhar18/recipe-ideas/internal/fetch"
)

// Attribute selects which filter or list endpoint a call targets. The values
// are the query keys TheMealDB uses.
type Attribute string

const (
	ByCategory   Attribute = "c"
	ByIngredient Attribute = "i"
	ByArea       Attribute = "a"
)

// String returns the attribute's human name.
func (a Attribute) String() string {
	switch a {
	case ByCategory:
		return "category"
	case ByIngredient:
		return "ingredient"
	case ByArea:
		return "area"
	default:
		return string(a)
	}
}

func (a Attribute) valid() bool {
	return a == ByCategory || a == ByIngredient || a == ByArea
}

// ErrMealNotFound is returned by Lookup when the API answers with no meal.
var ErrMealNotFound = errors.New("meal not found")

// Catalog is the read-only surface of TheMealDB used by the app.
// This interface is implemented by *Client and can be used for testing.
type Catalog interface {
	Categories(ctx context.Context) ([]string, error)
	Ingredients(ctx context.Context) ([]string, error)
	Areas(ctx context.Context) ([]string, error)
	Filter(ctx context.Context, attr Attribute, term string) ([]Meal, error)
	Search(ctx context.Context, term string) ([]Meal, error)
	Lookup(ctx context.Context, id string) (Meal, error)
}

// Ensure Client implements Catalog and fetch.Getter at compile time.
var (
	_ Catalog      = (*Client)(nil)
	_ fetch.Getter = (*Client)(nil)
)

// Client talks to the TheMealDB HTTP API.
type Client struct {
	baseURL *url.URL
	getter  fetch.Getter
	timeout time.Duration
	limiter *rate.Limiter
	log     *zap.Logger
}

const (
	// DefaultBaseURL is the free public API endpoint.
	DefaultBaseURL   = "https://www.themealdb.com/api/json/v1/1/"
	defaultUserAgent = "recipe-ideas/0.1"
	requestTimeout   = 10 * time.Second
)

// Option customizes a Client.
type Option func(*Client)

// WithGetter replaces the HTTP transport.
func WithGetter(g fetch.Getter) Option {
	return func(c *Client) {
		if g != nil {
			c.getter = g
		}
	}
}

// WithRateLimit paces outgoing requests. A non-positive rps disables pacing.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithTimeout sets the per-request timeout of the default transport.
// It has no effect when WithGetter supplies the transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient builds a Client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		timeout: requestTimeout,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.getter == nil {
		c.getter = fetch.NewHTTPGetter(c.timeout, defaultUserAgent)
	}
	return c, nil
}

// ListURL addresses the name list for attr.
func (c *Client) ListURL(attr Attribute) string {
	return c.endpoint("list.php", string(attr), "list")
}

// FilterURL addresses the meals matching one attribute value.
func (c *Client) FilterURL(attr Attribute, term string) string {
	return c.endpoint("filter.php", string(attr), term)
}

// SearchURL addresses the free-text meal name search.
func (c *Client) SearchURL(term string) string {
	return c.endpoint("search.php", "s", term)
}

// LookupURL addresses a single meal by id.
func (c *Client) LookupURL(id string) string {
	return c.endpoint("lookup.php", "i", strings.TrimSpace(id))
}

func (c *Client) endpoint(path, key, value string) string {
	values := url.Values{}
	values.Set(key, value)
	rel := &url.URL{Path: path, RawQuery: values.Encode()}
	return c.baseURL.ResolveReference(rel).String()
}

// GetJSON implements fetch.Getter, pacing requests through the rate limiter.
func (c *Client) GetJSON(ctx context.Context, rawURL string, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}
	start := time.Now()
	err := c.getter.GetJSON(ctx, rawURL, dest)
	if err != nil {
		c.log.Debug("mealdb request failed", zap.String("url", rawURL), zap.Duration("took", time.Since(start)), zap.Error(err))
		return err
	}
	c.log.Debug("mealdb request", zap.String("url", rawURL), zap.Duration("took", time.Since(start)))
	return nil
}

// Categories lists every category name.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	return c.names(ctx, ByCategory, "strCategory")
}

// Ingredients lists every ingredient name.
func (c *Client) Ingredients(ctx context.Context) ([]string, error) {
	return c.names(ctx, ByIngredient, "strIngredient")
}

// Areas lists every area (cuisine) name.
func (c *Client) Areas(ctx context.Context) ([]string, error) {
	return c.names(ctx, ByArea, "strArea")
}

func (c *Client) names(ctx context.Context, attr Attribute, field string) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var raw json.RawMessage
	if err := c.GetJSON(ctx, c.ListURL(attr), &raw); err != nil {
		return nil, fmt.Errorf("list %s: %w", attr, err)
	}
	names, err := decodeNames(raw, field)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", attr, err)
	}
	return names, nil
}

// Filter returns the meals whose attr equals term.
func (c *Client) Filter(ctx context.Context, attr Attribute, term string) ([]Meal, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if !attr.valid() {
		return nil, fmt.Errorf("unknown filter attribute %q", string(attr))
	}
	var payload MealList
	if err := c.GetJSON(ctx, c.FilterURL(attr, term), &payload); err != nil {
		return nil, fmt.Errorf("filter by %s %q: %w", attr, term, err)
	}
	return payload.Meals, nil
}

// Search finds meals by name.
func (c *Client) Search(ctx context.Context, term string) ([]Meal, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload MealList
	if err := c.GetJSON(ctx, c.SearchURL(term), &payload); err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}
	return payload.Meals, nil
}

// Lookup returns the full record for one meal.
func (c *Client) Lookup(ctx context.Context, id string) (Meal, error) {
	if c == nil {
		return Meal{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return Meal{}, fmt.Errorf("meal id required")
	}
	var payload MealList
	if err := c.GetJSON(ctx, c.LookupURL(id), &payload); err != nil {
		return Meal{}, fmt.Errorf("lookup meal %s: %w", id, err)
	}
	if len(payload.Meals) == 0 {
		return Meal{}, fmt.Errorf("lookup meal %s: %w", id, ErrMealNotFound)
	}
	return payload.Meals[0], nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
