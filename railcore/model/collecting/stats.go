/*
   Copyright 2025 The Railists Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package collecting

import (
	"sort"

	"github.com/shopspring/decimal"
	"railists.dev/railists/railcore/model/catalog"
)

// Tally is a (count, value) pair: how many rolling stock units and how
// many euros they cost. Counts are weighted by the catalog item's box
// count, so an entry standing for two identical boxes counts twice.
type Tally struct {
	Count int
	Value decimal.Decimal
}

func (t *Tally) add(count int, value decimal.Decimal) {
	t.Count += count
	t.Value = t.Value.Add(value)
}

// YearlyCollectionStats aggregates one purchase year: a tally per category
// and the year total.
type YearlyCollectionStats struct {
	Year          int
	Locomotives   Tally
	Trains        Tally
	PassengerCars Tally
	FreightCars   Tally
	Total         Tally
}

// CollectionStats is the purchase statistics view of a collection: one row
// per purchase year, sorted ascending, plus grand totals. It is a derived
// view, rebuilt from the collection on demand.
type CollectionStats struct {
	years      []YearlyCollectionStats
	totalCount int
	totalValue decimal.Decimal
}

// NewCollectionStats builds the statistics view from a collection.
//
// Every collection item contributes exactly once to the year it was bought
// in: its box count to the tally of its category and its purchase price to
// the value. Zero-decimal values come out of empty years only; a year
// present in the view always has at least one purchase.
func NewCollectionStats(c *Collection) CollectionStats {
	byYear := make(map[int]*YearlyCollectionStats)

	for _, item := range c.Items() {
		year := item.PurchaseYear()
		stats, ok := byYear[year]
		if !ok {
			stats = &YearlyCollectionStats{Year: year}
			byYear[year] = stats
		}

		count := item.CatalogItem().Count()
		value := item.Purchased().Price().Amount()

		switch item.CatalogItem().Category() {
		case catalog.CategoryLocomotives:
			stats.Locomotives.add(count, value)
		case catalog.CategoryTrains:
			stats.Trains.add(count, value)
		case catalog.CategoryPassengerCars:
			stats.PassengerCars.add(count, value)
		case catalog.CategoryFreightCars:
			stats.FreightCars.add(count, value)
		}
		stats.Total.add(count, value)
	}

	years := make([]YearlyCollectionStats, 0, len(byYear))
	for _, stats := range byYear {
		years = append(years, *stats)
	}
	sort.Slice(years, func(i, j int) bool {
		return years[i].Year < years[j].Year
	})

	totalCount := 0
	totalValue := decimal.Zero
	for _, y := range years {
		totalCount += y.Total.Count
		totalValue = totalValue.Add(y.Total.Value)
	}

	return CollectionStats{
		years:      years,
		totalCount: totalCount,
		totalValue: totalValue,
	}
}

// Years returns a copy of the per-year rows in ascending year order.
func (s CollectionStats) Years() []YearlyCollectionStats {
	years := make([]YearlyCollectionStats, len(s.years))
	copy(years, s.years)
	return years
}

// TotalCount returns the number of rolling stock units across all years,
// weighted by box count.
func (s CollectionStats) TotalCount() int {
	return s.totalCount
}

// TotalValue returns the total spent across all years, in euros.
func (s CollectionStats) TotalValue() decimal.Decimal {
	return s.totalValue
}
