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
	"time"

	"railists.dev/railists/railcore/errors"
	"railists.dev/railists/railcore/model/catalog"
)

// PurchasedInfo records where, when and for how much a collection item was
// bought.
type PurchasedInfo struct {
	shop  string
	date  time.Time
	price Price
}

// NewPurchasedInfo builds a purchase record. The shop MUST be non-empty,
// the date MUST be set and the price MUST be valid.
func NewPurchasedInfo(shop string, date time.Time, price Price) (PurchasedInfo, error) {
	if shop == "" {
		return PurchasedInfo{}, &errors.BlankValueError{Type: "PurchasedInfo"}
	}
	if date.IsZero() {
		return PurchasedInfo{}, &errors.ValidationError{
			Type:   "PurchasedInfo",
			Field:  "Date",
			Reason: "purchase date must be set",
		}
	}
	if err := price.Validate(); err != nil {
		return PurchasedInfo{}, err
	}
	return PurchasedInfo{shop: shop, date: date, price: price}, nil
}

// Shop returns where the item was bought.
func (p PurchasedInfo) Shop() string {
	return p.shop
}

// Date returns when the item was bought.
func (p PurchasedInfo) Date() time.Time {
	return p.date
}

// Price returns what the item cost.
func (p PurchasedInfo) Price() Price {
	return p.price
}

// String renders the record as "<shop> (<YYYY-MM-DD>, <price>)".
func (p PurchasedInfo) String() string {
	return p.shop + " (" + p.date.Format("2006-01-02") + ", " + p.price.String() + ")"
}

// IsZero reports whether the record is empty.
func (p PurchasedInfo) IsZero() bool {
	return p.shop == "" && p.date.IsZero() && p.price.IsZero()
}

// Validate checks the purchase record invariants.
func (p PurchasedInfo) Validate() error {
	if p.shop == "" {
		return &errors.ValidationError{
			Type:   "PurchasedInfo",
			Field:  "Shop",
			Reason: "shop must not be empty",
		}
	}
	if p.date.IsZero() {
		return &errors.ValidationError{
			Type:   "PurchasedInfo",
			Field:  "Date",
			Reason: "purchase date must be set",
		}
	}
	return p.price.Validate()
}

// CollectionItem pairs a catalog item with its purchase record.
type CollectionItem struct {
	catalogItem catalog.CatalogItem
	purchased   PurchasedInfo
}

// NewCollectionItem builds a collection entry from a catalog item and its
// purchase record.
func NewCollectionItem(item catalog.CatalogItem, purchased PurchasedInfo) (CollectionItem, error) {
	if err := item.Validate(); err != nil {
		return CollectionItem{}, err
	}
	if err := purchased.Validate(); err != nil {
		return CollectionItem{}, err
	}
	return CollectionItem{catalogItem: item, purchased: purchased}, nil
}

// CatalogItem returns the cataloged product.
func (i CollectionItem) CatalogItem() catalog.CatalogItem {
	return i.catalogItem
}

// Purchased returns the purchase record.
func (i CollectionItem) Purchased() PurchasedInfo {
	return i.purchased
}

// PurchaseYear returns the calendar year the item was bought in.
func (i CollectionItem) PurchaseYear() int {
	return i.purchased.date.Year()
}

// Collection is the owner's set of purchased items: a description, a
// schema version, a modification timestamp and an ordered item list.
//
// A Collection is a mutable document, not a value; it is not safe for
// concurrent writes. Adding an item performs no deduplication: buying the
// same product twice legitimately yields two entries.
type Collection struct {
	description string
	version     uint
	modifiedAt  time.Time
	items       []CollectionItem
}

// NewCollection builds an empty collection document at schema version 1.
func NewCollection(description string) *Collection {
	return &Collection{description: description, version: 1}
}

// NewCollectionDocument rebuilds a collection from persisted metadata, as
// loaded by the datasource adapter.
func NewCollectionDocument(description string, version uint, modifiedAt time.Time) *Collection {
	return &Collection{description: description, version: version, modifiedAt: modifiedAt}
}

// Description returns the document description.
func (c *Collection) Description() string {
	return c.description
}

// Version returns the document schema version.
func (c *Collection) Version() uint {
	return c.version
}

// ModifiedAt returns the last modification timestamp.
func (c *Collection) ModifiedAt() time.Time {
	return c.modifiedAt
}

// AddItem appends an item to the collection. Duplicates are allowed.
func (c *Collection) AddItem(item CollectionItem) {
	c.items = append(c.items, item)
}

// Items returns a copy of the item list in its current order.
func (c *Collection) Items() []CollectionItem {
	items := make([]CollectionItem, len(c.items))
	copy(items, c.items)
	return items
}

// Get returns the item at position i and whether the position exists.
func (c *Collection) Get(i int) (CollectionItem, bool) {
	if i < 0 || i >= len(c.items) {
		return CollectionItem{}, false
	}
	return c.items[i], true
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// SortItems sorts the items in place by catalog item order, that is by
// brand and then item number. The sort is stable, so entries for the same
// product keep their insertion order.
func (c *Collection) SortItems() {
	sort.SliceStable(c.items, func(i, j int) bool {
		return c.items[i].catalogItem.Compare(c.items[j].catalogItem) < 0
	})
}

// SetModified updates the modification timestamp.
func (c *Collection) SetModified(t time.Time) {
	c.modifiedAt = t
}

// BumpVersion increments the document schema version.
func (c *Collection) BumpVersion() {
	c.version++
}

// Validate checks every item in the collection, reporting the first
// failure with its position.
func (c *Collection) Validate() error {
	for i := range c.items {
		if err := c.items[i].catalogItem.Validate(); err != nil {
			return &errors.ValidationError{
				Type:   "Collection",
				Field:  "Items",
				Reason: err.Error(),
				Value:  i,
			}
		}
		if err := c.items[i].purchased.Validate(); err != nil {
			return &errors.ValidationError{
				Type:   "Collection",
				Field:  "Items",
				Reason: err.Error(),
				Value:  i,
			}
		}
	}
	return nil
}
