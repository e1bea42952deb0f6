package normalizer

import (
	"fmt"
	"log"

	"github.com/ibwangi/tripsearch/internal/adapters"
	"github.com/ibwangi/tripsearch/internal/models"
)

// ErrInvalidSearch wraps context-validation failures. It is the only
// error Normalize produces: vendor failures degrade to the next tier and
// are never surfaced as errors.
type ErrInvalidSearch struct {
	Reason error
}

func (e *ErrInvalidSearch) Error() string {
	return fmt.Sprintf("invalid search: %v", e.Reason)
}

func (e *ErrInvalidSearch) Unwrap() error {
	return e.Reason
}

// Normalize selects one source tier and emits the canonical offer
// sequence. Priority is fixed regardless of which vendor settled first:
// a successful non-empty Amadeus batch wins, then a successful non-empty
// Skyscanner batch, then the fallback dataset. Tiers are never mixed;
// source ordering is preserved; duplicate IDs are left to the adapters.
// The returned slice is never nil on success.
func Normalize(sc models.SearchContext, amadeus models.AmadeusBatch, skyscanner models.SkyscannerBatch) ([]models.Offer, error) {
	if err := sc.Validate(); err != nil {
		return nil, &ErrInvalidSearch{Reason: err}
	}

	if amadeus.OK {
		if offers := adapters.Amadeus(sc, amadeus.Offers); len(offers) > 0 {
			return offers, nil
		}
	} else if amadeus.Error != "" {
		log.Printf("normalizer: amadeus batch unavailable: %s", amadeus.Error)
	}

	if skyscanner.OK {
		if offers := adapters.Skyscanner(sc, skyscanner); len(offers) > 0 {
			return offers, nil
		}
	} else if skyscanner.Error != "" {
		log.Printf("normalizer: skyscanner batch unavailable: %s", skyscanner.Error)
	}

	return adapters.Fallback(sc), nil
}

// VendorErrors summarizes failed batches for response metadata.
func VendorErrors(amadeus models.AmadeusBatch, skyscanner models.SkyscannerBatch) []string {
	var errs []string
	if !amadeus.OK && amadeus.Error != "" {
		errs = append(errs, "amadeus: "+amadeus.Error)
	}
	if !skyscanner.OK && skyscanner.Error != "" {
		errs = append(errs, "skyscanner: "+skyscanner.Error)
	}
	return errs
}
