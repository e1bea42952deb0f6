package vendors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ibwangi/tripsearch/internal/models"
	"github.com/ibwangi/tripsearch/internal/ratelimit"
)

const amadeusVendor = "amadeus"

type AmadeusConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

// AmadeusClient talks to the Amadeus flight-offers API: OAuth2
// client-credentials token with expiry tracking, then the offers search.
// Every failure is folded into the returned batch; Search never errors.
type AmadeusClient struct {
	cfg        AmadeusConfig
	httpClient *http.Client
	limiter    *ratelimit.VendorLimiter

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewAmadeusClient(cfg AmadeusConfig, limiter *ratelimit.VendorLimiter) *AmadeusClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://test.api.amadeus.com"
	}
	return &AmadeusClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    limiter,
	}
}

func (c *AmadeusClient) Configured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != ""
}

// Search runs one flight-offers query. The result always comes back as a
// batch: OK with raw records, or failed with an error summary.
func (c *AmadeusClient) Search(ctx context.Context, sc models.SearchContext) models.AmadeusBatch {
	if !c.Configured() {
		return models.AmadeusBatch{BatchResult: models.BatchFailed("credentials not configured")}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, amadeusVendor); err != nil {
			return models.AmadeusBatch{BatchResult: models.BatchFailed(err.Error())}
		}
	}

	token, err := c.token(ctx)
	if err != nil {
		return models.AmadeusBatch{BatchResult: models.BatchFailed("token: " + err.Error())}
	}

	params := url.Values{}
	params.Set("originLocationCode", sc.Origin)
	params.Set("destinationLocationCode", sc.Destination)
	params.Set("departureDate", sc.DepartureDate)
	params.Set("adults", fmt.Sprintf("%d", sc.Adults))
	params.Set("children", fmt.Sprintf("%d", sc.Minors))
	params.Set("max", "10")
	if sc.ReturnDate != nil && *sc.ReturnDate != "" {
		params.Set("returnDate", *sc.ReturnDate)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/v2/shopping/flight-offers?"+params.Encode(), nil)
	if err != nil {
		return models.AmadeusBatch{BatchResult: models.BatchFailed(err.Error())}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.AmadeusBatch{BatchResult: models.BatchFailed(err.Error())}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return models.AmadeusBatch{BatchResult: models.BatchFailed(
			fmt.Sprintf("search failed (%d): %s", resp.StatusCode, truncate(string(body), 200)))}
	}

	var payload struct {
		Data []models.AmadeusOffer `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.AmadeusBatch{BatchResult: models.BatchFailed("decode: " + err.Error())}
	}

	return models.AmadeusBatch{BatchResult: models.BatchOK(), Offers: payload.Data}
}

func (c *AmadeusClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed (%d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("no access token in response")
	}

	c.accessToken = result.AccessToken
	// Refresh a minute before the advertised expiry.
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - time.Minute)

	return c.accessToken, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
