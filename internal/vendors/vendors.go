// Package vendors holds the live vendor clients. They own everything the
// core must not: network calls, auth tokens, session polling, retries.
// The core only ever sees their settled batch results.
package vendors

import (
	"context"
	"sync"
	"time"

	"github.com/ibwangi/tripsearch/internal/airports"
	"github.com/ibwangi/tripsearch/internal/models"
)

const fetchTimeout = 45 * time.Second

type Clients struct {
	Amadeus    *AmadeusClient
	Skyscanner *SkyscannerClient
}

// Fetch queries both vendors concurrently and waits for both to settle.
// Arrival order is irrelevant downstream; the normalizer applies its
// fixed priority over whatever comes back. Routes touching Nigeria skip
// Amadeus when Skyscanner is available, matching its better coverage
// there.
func (c *Clients) Fetch(ctx context.Context, sc models.SearchContext) (models.AmadeusBatch, models.SkyscannerBatch) {
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	skipAmadeus := airports.PreferSkyscanner(sc.Origin, sc.Destination) &&
		c.Skyscanner != nil && c.Skyscanner.Configured()

	var (
		wg         sync.WaitGroup
		amadeus    models.AmadeusBatch
		skyscanner models.SkyscannerBatch
	)

	amadeus = models.AmadeusBatch{BatchResult: models.BatchFailed("client not configured")}
	skyscanner = models.SkyscannerBatch{BatchResult: models.BatchFailed("client not configured")}

	if c.Amadeus != nil {
		if skipAmadeus {
			amadeus = models.AmadeusBatch{BatchResult: models.BatchFailed("route deferred to skyscanner")}
		} else {
			wg.Add(1)
			go func() {
				defer wg.Done()
				amadeus = c.Amadeus.Search(fetchCtx, sc)
			}()
		}
	}

	if c.Skyscanner != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			skyscanner = c.Skyscanner.Search(fetchCtx, sc)
		}()
	}

	wg.Wait()
	return amadeus, skyscanner
}
