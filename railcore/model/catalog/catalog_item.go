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

package catalog

import (
	"fmt"

	"go.uber.org/multierr"
	"railists.dev/railists/railcore/errors"
)

// CatalogItem is one entry of a manufacturer's catalog: a boxed product
// identified by brand and item number, containing one or more rolling
// stocks, sold for a given scale and power method.
//
// The identity of a catalog item is the (brand, item number) pair and
// nothing else; two items with the same pair are the same product
// regardless of description or content. The category is never supplied by
// the caller: it is derived at construction from the contained rolling
// stocks, and a box mixing categories is classified as a train set.
type CatalogItem struct {
	brand         Brand
	itemNumber    ItemNumber
	description   string
	rollingStocks []RollingStock
	category      Category
	scale         Scale
	powerMethod   PowerMethod
	deliveryDate  DeliveryDate
	count         int
}

// NewCatalogItem builds a CatalogItem, deriving its category from the
// rolling stocks.
//
// The brand, item number, scale and power method MUST be valid, the
// rolling stock list MUST NOT be empty, and count MUST be at least one.
// The delivery date is optional: pass the zero DeliveryDate when the
// manufacturer announced none. The rolling stock slice is copied; the
// caller keeps ownership of its argument.
func NewCatalogItem(
	brand Brand,
	itemNumber ItemNumber,
	description string,
	rollingStocks []RollingStock,
	powerMethod PowerMethod,
	scale Scale,
	deliveryDate DeliveryDate,
	count int,
) (CatalogItem, error) {
	if err := brand.Validate(); err != nil {
		return CatalogItem{}, err
	}
	if err := itemNumber.Validate(); err != nil {
		return CatalogItem{}, err
	}
	if len(rollingStocks) == 0 {
		return CatalogItem{}, &errors.ValidationError{
			Type:   "CatalogItem",
			Field:  "RollingStocks",
			Reason: "at least one rolling stock is required",
		}
	}
	if err := powerMethod.Validate(); err != nil {
		return CatalogItem{}, err
	}
	if err := scale.Validate(); err != nil {
		return CatalogItem{}, err
	}
	if !deliveryDate.IsZero() {
		if err := deliveryDate.Validate(); err != nil {
			return CatalogItem{}, err
		}
	}
	if count < 1 {
		return CatalogItem{}, &errors.ValidationError{
			Type:   "CatalogItem",
			Field:  "Count",
			Reason: "count must be at least 1",
			Value:  count,
		}
	}

	stocks := make([]RollingStock, len(rollingStocks))
	copy(stocks, rollingStocks)

	return CatalogItem{
		brand:         brand,
		itemNumber:    itemNumber,
		description:   description,
		rollingStocks: stocks,
		category:      extractCategory(stocks),
		scale:         scale,
		powerMethod:   powerMethod,
		deliveryDate:  deliveryDate,
		count:         count,
	}, nil
}

// extractCategory derives the item category from its rolling stocks: the
// single distinct category when all elements agree, CategoryTrains
// otherwise.
func extractCategory(stocks []RollingStock) Category {
	first := stocks[0].Category()
	for _, rs := range stocks[1:] {
		if rs.Category() != first {
			return CategoryTrains
		}
	}
	return first
}

// Brand returns the manufacturer.
func (c CatalogItem) Brand() Brand {
	return c.brand
}

// ItemNumber returns the manufacturer's catalog number.
func (c CatalogItem) ItemNumber() ItemNumber {
	return c.itemNumber
}

// Description returns the free-text description.
func (c CatalogItem) Description() string {
	return c.description
}

// RollingStocks returns a copy of the contained rolling stocks.
func (c CatalogItem) RollingStocks() []RollingStock {
	stocks := make([]RollingStock, len(c.rollingStocks))
	copy(stocks, c.rollingStocks)
	return stocks
}

// Category returns the category derived at construction.
func (c CatalogItem) Category() Category {
	return c.category
}

// Scale returns the modelling scale.
func (c CatalogItem) Scale() Scale {
	return c.scale
}

// PowerMethod returns the electrical system.
func (c CatalogItem) PowerMethod() PowerMethod {
	return c.powerMethod
}

// DeliveryDate returns the announced delivery date; the zero value when
// none was announced.
func (c CatalogItem) DeliveryDate() DeliveryDate {
	return c.deliveryDate
}

// Count returns how many identical boxes the entry stands for.
func (c CatalogItem) Count() int {
	return c.count
}

// Epoch reduces the epochs of the rolling stocks the same way the category
// is derived: when every element declares the same epoch, that epoch is
// returned with true; when the elements span several epochs, the zero
// Epoch is returned with false.
func (c CatalogItem) Epoch() (Epoch, bool) {
	if len(c.rollingStocks) == 0 {
		return Epoch{}, false
	}
	first := c.rollingStocks[0].Epoch()
	for _, rs := range c.rollingStocks[1:] {
		if !first.Equal(rs.Epoch()) {
			return Epoch{}, false
		}
	}
	return first, true
}

// Compare orders catalog items by brand, then by item number, in the
// manner of strings.Compare. Only the identity fields participate.
func (c CatalogItem) Compare(other CatalogItem) int {
	if cmp := c.brand.Compare(other.brand); cmp != 0 {
		return cmp
	}
	return c.itemNumber.Compare(other.itemNumber)
}

// Equal reports whether two catalog items share the same identity, that
// is the same brand and item number. Descriptions, contents and every
// other attribute are ignored.
func (c CatalogItem) Equal(other CatalogItem) bool {
	return c.Compare(other) == 0
}

// String renders the identity as "<brand> <item number>".
func (c CatalogItem) String() string {
	return c.brand.Name() + " " + c.itemNumber.String()
}

// TypeName returns "CatalogItem", the name of the type for logging and
// debugging.
func (c CatalogItem) TypeName() string {
	return "CatalogItem"
}

// IsZero reports whether the CatalogItem is the zero value.
func (c CatalogItem) IsZero() bool {
	return c.brand.IsZero() && c.itemNumber.IsZero() && len(c.rollingStocks) == 0
}

// Validate checks the aggregate invariants, validating every contained
// rolling stock and reporting all failures together rather than stopping
// at the first.
func (c CatalogItem) Validate() error {
	if err := c.brand.Validate(); err != nil {
		return err
	}
	if err := c.itemNumber.Validate(); err != nil {
		return err
	}
	if len(c.rollingStocks) == 0 {
		return &errors.ValidationError{
			Type:   "CatalogItem",
			Field:  "RollingStocks",
			Reason: "at least one rolling stock is required",
		}
	}
	if c.count < 1 {
		return &errors.ValidationError{
			Type:   "CatalogItem",
			Field:  "Count",
			Reason: "count must be at least 1",
			Value:  c.count,
		}
	}
	if err := c.powerMethod.Validate(); err != nil {
		return err
	}
	if err := c.scale.Validate(); err != nil {
		return err
	}
	if !c.deliveryDate.IsZero() {
		if err := c.deliveryDate.Validate(); err != nil {
			return err
		}
	}

	var result error
	for i, rs := range c.rollingStocks {
		if err := rs.Validate(); err != nil {
			result = multierr.Append(result, fmt.Errorf("rollingStocks[%d]: %w", i, err))
		}
	}
	return result
}
