package tufe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ustaoglu/kiracap/internal/model"
	"github.com/ustaoglu/kiracap/internal/validate"
	"golang.org/x/time/rate"
)

// Client fetches yearly TÜFE figures from the single authoritative source.
// There is deliberately no fallback provider and no scraping path: a failed
// fetch surfaces as an unavailable year, never as data from somewhere else.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	maxBytes   int64
	limiter    *rate.Limiter
}

// NewClient creates a client for the configured index endpoint.
func NewClient(cfg *model.Config) *Client {
	rps := cfg.Tufe.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.Tufe.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			Transport: &http.Transport{
				Proxy: newProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy),
			},
		},
		baseURL:   strings.TrimRight(cfg.Tufe.BaseURL, "/"),
		apiKey:    cfg.Tufe.APIKey,
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// indexResponse is the expected shape of the official API response.
type indexResponse struct {
	Year  int      `json:"year"`
	Value *float64 `json:"value"`
}

// FetchYear performs the single fetch attempt for a year. Any failure —
// timeout, transport error, rate-limit response, malformed body or an
// out-of-range value — comes back as an error; callers translate it into
// the unavailable outcome. No retries here.
func (c *Client) FetchYear(ctx context.Context, year int) (float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/series/tufe/%d", c.baseURL, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return 0, fmt.Errorf("rate limited by index source")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return 0, fmt.Errorf("read body: %w", err)
	}

	var parsed indexResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("decode index response: %w", err)
	}
	if parsed.Value == nil {
		return 0, fmt.Errorf("index response missing value field")
	}
	if parsed.Year != year {
		return 0, fmt.Errorf("index response year mismatch: want %d, got %d", year, parsed.Year)
	}
	if err := validate.ValidateTufeValue(*parsed.Value); err != nil {
		return 0, err
	}
	return *parsed.Value, nil
}

// newProxyFunc builds a proxy function from configuration, falling back to
// the environment when none is set.
func newProxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}
	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
