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

// PriceInfo is one observed offer for a wish list item: a shop and the
// price it asks.
type PriceInfo struct {
	shop  string
	price Price
}

// NewPriceInfo builds an offer record. The shop MUST be non-empty and the
// price valid.
func NewPriceInfo(shop string, price Price) (PriceInfo, error) {
	if shop == "" {
		return PriceInfo{}, &errors.BlankValueError{Type: "PriceInfo"}
	}
	if err := price.Validate(); err != nil {
		return PriceInfo{}, err
	}
	return PriceInfo{shop: shop, price: price}, nil
}

// Shop returns the shop offering the item.
func (p PriceInfo) Shop() string {
	return p.shop
}

// Price returns the asked price.
func (p PriceInfo) Price() Price {
	return p.price
}

// String renders the offer as "<shop>: <price>".
func (p PriceInfo) String() string {
	return p.shop + ": " + p.price.String()
}

// IsZero reports whether the offer is empty.
func (p PriceInfo) IsZero() bool {
	return p.shop == "" && p.price.IsZero()
}

// WishListItem is one wanted product: a catalog item, how urgently the
// owner wants it, and the offers observed so far.
type WishListItem struct {
	catalogItem catalog.CatalogItem
	priority    Priority
	prices      []PriceInfo
}

// NewWishListItem builds a wish list entry. The priority MUST be valid;
// callers mapping documents apply the NORMAL default for absent fields
// before calling. The offer slice may be empty and is copied.
func NewWishListItem(item catalog.CatalogItem, priority Priority, prices []PriceInfo) (WishListItem, error) {
	if err := item.Validate(); err != nil {
		return WishListItem{}, err
	}
	if err := priority.Validate(); err != nil {
		return WishListItem{}, err
	}

	copied := make([]PriceInfo, len(prices))
	copy(copied, prices)

	return WishListItem{catalogItem: item, priority: priority, prices: copied}, nil
}

// CatalogItem returns the wanted product.
func (i WishListItem) CatalogItem() catalog.CatalogItem {
	return i.catalogItem
}

// Priority returns the item's ranking.
func (i WishListItem) Priority() Priority {
	return i.priority
}

// Prices returns a copy of the observed offers.
func (i WishListItem) Prices() []PriceInfo {
	prices := make([]PriceInfo, len(i.prices))
	copy(prices, i.prices)
	return prices
}

// PriceRange returns the cheapest and the most expensive observed offers.
// When several offers tie, the first occurrence in document order wins.
// The third result is false when no offers were recorded.
func (i WishListItem) PriceRange() (PriceInfo, PriceInfo, bool) {
	if len(i.prices) == 0 {
		return PriceInfo{}, PriceInfo{}, false
	}

	min, max := i.prices[0], i.prices[0]
	for _, p := range i.prices[1:] {
		if p.price.Cmp(min.price) < 0 {
			min = p
		}
		if p.price.Cmp(max.price) > 0 {
			max = p
		}
	}
	return min, max, true
}

// WishList is a named list of wanted products with a schema version, a
// modification timestamp and an ordered item list. Like Collection it is a
// mutable document and not safe for concurrent writes.
type WishList struct {
	name       string
	version    uint
	modifiedAt time.Time
	items      []WishListItem
}

// NewWishList builds an empty wish list at schema version 1.
func NewWishList(name string) *WishList {
	return &WishList{name: name, version: 1}
}

// NewWishListDocument rebuilds a wish list from persisted metadata, as
// loaded by the datasource adapter.
func NewWishListDocument(name string, version uint, modifiedAt time.Time) *WishList {
	return &WishList{name: name, version: version, modifiedAt: modifiedAt}
}

// Name returns the list name.
func (w *WishList) Name() string {
	return w.name
}

// Version returns the document schema version.
func (w *WishList) Version() uint {
	return w.version
}

// ModifiedAt returns the last modification timestamp.
func (w *WishList) ModifiedAt() time.Time {
	return w.modifiedAt
}

// AddItem appends an item to the list.
func (w *WishList) AddItem(item WishListItem) {
	w.items = append(w.items, item)
}

// Items returns a copy of the item list in its current order.
func (w *WishList) Items() []WishListItem {
	items := make([]WishListItem, len(w.items))
	copy(items, w.items)
	return items
}

// Get returns the item at position i and whether the position exists.
func (w *WishList) Get(i int) (WishListItem, bool) {
	if i < 0 || i >= len(w.items) {
		return WishListItem{}, false
	}
	return w.items[i], true
}

// Len returns the number of items.
func (w *WishList) Len() int {
	return len(w.items)
}

// SortItems sorts the items in place by catalog item order. The sort is
// stable.
func (w *WishList) SortItems() {
	sort.SliceStable(w.items, func(i, j int) bool {
		return w.items[i].catalogItem.Compare(w.items[j].catalogItem) < 0
	})
}

// SetModified updates the modification timestamp.
func (w *WishList) SetModified(t time.Time) {
	w.modifiedAt = t
}

// BumpVersion increments the document schema version.
func (w *WishList) BumpVersion() {
	w.version++
}

// Validate checks every item in the list, reporting the first failure with
// its position.
func (w *WishList) Validate() error {
	for i := range w.items {
		if err := w.items[i].catalogItem.Validate(); err != nil {
			return &errors.ValidationError{
				Type:   "WishList",
				Field:  "Items",
				Reason: err.Error(),
				Value:  i,
			}
		}
		if err := w.items[i].priority.Validate(); err != nil {
			return &errors.ValidationError{
				Type:   "WishList",
				Field:  "Items",
				Reason: err.Error(),
				Value:  i,
			}
		}
	}
	return nil
}
