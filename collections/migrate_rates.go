package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// MigrateRates inserts any fee codes missing from the price_rates
// collection. Databases seeded before a code was added to the schedule
// pick it up here without touching rates the estimator has edited.
// Safe to call on every startup.
func MigrateRates(app *pocketbase.PocketBase) error {
	ratesCol, err := app.FindCollectionByNameOrId("price_rates")
	if err != nil {
		return fmt.Errorf("migrate_rates: could not find price_rates collection: %w", err)
	}

	records, err := app.FindAllRecords(ratesCol)
	if err != nil {
		return fmt.Errorf("migrate_rates: could not query price_rates: %w", err)
	}
	if len(records) == 0 {
		// Empty table means Seed has not run yet; let it do the insert.
		return nil
	}

	have := make(map[string]bool, len(records))
	for _, r := range records {
		have[r.GetString("code")] = true
	}

	added := 0
	for _, d := range rateDefs {
		if have[d.code] {
			continue
		}
		r := core.NewRecord(ratesCol)
		r.Set("code", d.code)
		r.Set("rate", d.rate)
		r.Set("unit", d.unit)
		r.Set("category", d.category)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("migrate_rates: save rate %q: %w", d.code, err)
		}
		added++
	}

	if added > 0 {
		log.Printf("migrate_rates: backfilled %d missing fee codes\n", added)
	}
	return nil
}
