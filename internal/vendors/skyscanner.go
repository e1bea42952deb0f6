package vendors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ibwangi/tripsearch/internal/models"
	"github.com/ibwangi/tripsearch/internal/ratelimit"
)

const skyscannerVendor = "skyscanner"

const (
	// The pricing session is polled a fixed number of times with a
	// fixed delay; after that the search is reported failed, not
	// retried further.
	maxPollAttempts = 10
	pollDelay       = 2 * time.Second
)

type SkyscannerConfig struct {
	APIKey  string
	BaseURL string
	Host    string
}

// SkyscannerClient drives the session-based pricing flow: create a
// session, then poll until the vendor reports UpdatesComplete or the
// attempt budget runs out. Like the Amadeus client it never errors; all
// failures fold into the returned batch.
type SkyscannerClient struct {
	cfg        SkyscannerConfig
	httpClient *http.Client
	limiter    *ratelimit.VendorLimiter
}

func NewSkyscannerClient(cfg SkyscannerConfig, limiter *ratelimit.VendorLimiter) *SkyscannerClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://skyscanner-skyscanner-flight-search-v1.p.rapidapi.com"
	}
	if cfg.Host == "" {
		cfg.Host = "skyscanner-skyscanner-flight-search-v1.p.rapidapi.com"
	}
	return &SkyscannerClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    limiter,
	}
}

func (c *SkyscannerClient) Configured() bool {
	return c.cfg.APIKey != ""
}

func (c *SkyscannerClient) Search(ctx context.Context, sc models.SearchContext) models.SkyscannerBatch {
	if !c.Configured() {
		return models.SkyscannerBatch{BatchResult: models.BatchFailed("api key not configured")}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, skyscannerVendor); err != nil {
			return models.SkyscannerBatch{BatchResult: models.BatchFailed(err.Error())}
		}
	}

	sessionKey, err := c.createSession(ctx, sc)
	if err != nil {
		return models.SkyscannerBatch{BatchResult: models.BatchFailed("session: " + err.Error())}
	}

	for attempt := 1; attempt <= maxPollAttempts; attempt++ {
		select {
		case <-time.After(pollDelay):
		case <-ctx.Done():
			return models.SkyscannerBatch{BatchResult: models.BatchFailed(ctx.Err().Error())}
		}

		batch, done, err := c.pollSession(ctx, sessionKey)
		if err != nil {
			return models.SkyscannerBatch{BatchResult: models.BatchFailed("poll: " + err.Error())}
		}
		if done {
			batch.BatchResult = models.BatchOK()
			return batch
		}
	}

	return models.SkyscannerBatch{BatchResult: models.BatchFailed(
		fmt.Sprintf("search did not complete within %d polls", maxPollAttempts))}
}

func (c *SkyscannerClient) createSession(ctx context.Context, sc models.SearchContext) (string, error) {
	form := url.Values{}
	form.Set("country", "NG")
	form.Set("currency", "NGN")
	form.Set("locale", "en-NG")
	form.Set("originPlace", sc.Origin)
	form.Set("destinationPlace", sc.Destination)
	form.Set("outboundDate", sc.DepartureDate)
	if sc.ReturnDate != nil {
		form.Set("inboundDate", *sc.ReturnDate)
	}
	form.Set("adults", fmt.Sprintf("%d", sc.Adults))
	form.Set("children", fmt.Sprintf("%d", sc.Minors))
	form.Set("infants", "0")
	form.Set("cabinClass", "economy")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/apiservices/pricing/v1.0", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("session creation failed (%d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	location := resp.Header.Get("Location")
	parts := strings.Split(location, "/")
	key := parts[len(parts)-1]
	if key == "" {
		return "", fmt.Errorf("no session key in response")
	}
	return key, nil
}

func (c *SkyscannerClient) pollSession(ctx context.Context, sessionKey string) (models.SkyscannerBatch, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/apiservices/pricing/uk2/v1.0/"+sessionKey, nil)
	if err != nil {
		return models.SkyscannerBatch{}, false, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.SkyscannerBatch{}, false, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return models.SkyscannerBatch{}, false, fmt.Errorf("results fetch failed (%d)", resp.StatusCode)
	}

	var payload struct {
		Status string `json:"Status"`
		models.SkyscannerBatch
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.SkyscannerBatch{}, false, err
	}

	return payload.SkyscannerBatch, payload.Status == "UpdatesComplete", nil
}

func (c *SkyscannerClient) setHeaders(req *http.Request) {
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.cfg.Host)
}
