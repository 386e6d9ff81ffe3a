package sport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Candidate is one result from the player-search API.
type Candidate struct {
	Name   string
	Sport  string
	League string
}

// SearchClient looks a player up by free-text name.
type SearchClient interface {
	SearchPlayer(ctx context.Context, name string) ([]Candidate, error)
}

// Client queries TheSportsDB's search-by-name endpoint. The service is
// rate-sensitive, so requests go through a limiter and carry a bounded
// timeout.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

const defaultBaseURL = "https://www.thesportsdb.com"

// NewClient builds a search client. An empty baseURL uses the public
// service; an empty apiKey uses the free-tier key.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if apiKey == "" {
		apiKey = "3" // free tier
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(500*time.Millisecond), 2),
	}
}

type searchResponse struct {
	Player []struct {
		StrPlayer string `json:"strPlayer"`
		StrSport  string `json:"strSport"`
		StrLeague string `json:"strLeague"`
	} `json:"player"`
}

// SearchPlayer returns the ranked candidate list for a name. Any transport
// or decode failure is returned as an error; the detector treats errors as
// misses, never as fatal.
func (c *Client) SearchPlayer(ctx context.Context, name string) ([]Candidate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/api/v1/json/%s/searchplayers.php?p=%s",
		c.baseURL, c.apiKey, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("player search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("player search returned status %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parse player search response: %w", err)
	}

	candidates := make([]Candidate, 0, len(out.Player))
	for _, p := range out.Player {
		candidates = append(candidates, Candidate{
			Name:   p.StrPlayer,
			Sport:  p.StrSport,
			League: p.StrLeague,
		})
	}
	return candidates, nil
}
