package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibwangi/tripsearch/internal/cache"
	"github.com/ibwangi/tripsearch/internal/models"
	"github.com/ibwangi/tripsearch/internal/vendors"
	"github.com/ibwangi/tripsearch/pkg/currency"
)

// newSearchHandler wires a handler with no live vendors: every search
// degrades to the fallback dataset.
func newSearchHandler() *SearchHandler {
	return NewSearchHandler(&vendors.Clients{}, cache.NewNoOpCache(), currency.NewProvider(1500))
}

func doJSON(t *testing.T, h echo.HandlerFunc, body string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec, c
}

func TestSearch_FallbackRoundTrip(t *testing.T) {
	body := `{
		"origin": "LOS",
		"destination": "ABV",
		"departure_date": "2025-02-12",
		"return_date": "2025-02-16",
		"adults": 1
	}`
	rec, _ := doJSON(t, newSearchHandler().Search, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 6, resp.Metadata.TotalResults)
	assert.Equal(t, 3, resp.Metadata.VisibleResults)
	assert.False(t, resp.Metadata.Expanded)
	assert.Equal(t, models.ProvenanceFallback, resp.Metadata.Provenance)
	assert.Equal(t, models.TripRoundTrip, resp.Metadata.TripType)
	assert.NotEmpty(t, resp.Metadata.VendorErrors)

	require.Len(t, resp.Offers, 3)
	assert.Equal(t, float64(624), resp.Offers[0].PriceMajorUnits)
	for _, o := range resp.Offers {
		assert.Equal(t, models.TripRoundTrip, o.TripType)
	}
}

func TestSearch_ShowAll(t *testing.T) {
	body := `{
		"origin": "LOS",
		"destination": "ABV",
		"departure_date": "2025-02-12",
		"adults": 1,
		"show_all": true
	}`
	rec, _ := doJSON(t, newSearchHandler().Search, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Metadata.Expanded)
	assert.Len(t, resp.Offers, 6)
}

func TestSearch_Filters(t *testing.T) {
	body := `{
		"origin": "LOS",
		"destination": "ABV",
		"departure_date": "2025-02-12",
		"adults": 1,
		"filters": {"max_price": 700}
	}`
	rec, _ := doJSON(t, newSearchHandler().Search, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Metadata.TotalResults)
	assert.Equal(t, float64(624), resp.Offers[0].PriceMajorUnits)
	assert.Equal(t, float64(663), resp.Offers[1].PriceMajorUnits)
}

func TestSearch_InvalidContext(t *testing.T) {
	rec, _ := doJSON(t, newSearchHandler().Search, `{"destination": "ABV"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_search", resp.Error)
}

func TestPriceGrid_PlaceholderOnCacheMiss(t *testing.T) {
	body := `{
		"origin": "LOS",
		"destination": "ABV",
		"departure_date": "2025-02-12",
		"return_date": "2025-02-16",
		"adults": 1
	}`
	rec, _ := doJSON(t, newSearchHandler().PriceGrid, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var grid struct {
		RowLabels []string   `json:"row_labels"`
		ColLabels []string   `json:"col_labels"`
		Cells     [][]string `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grid))
	require.Len(t, grid.Cells, 5)
	assert.Equal(t, "₦936,000", grid.Cells[0][0])
}

func TestPriceGrid_InvalidContext(t *testing.T) {
	rec, _ := doJSON(t, newSearchHandler().PriceGrid, `{"origin": "LOS"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, HealthHandler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
