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

import "github.com/shopspring/decimal"

// WishListBudget estimates what fulfilling a wish list would cost, broken
// down by priority. It is a derived view, rebuilt from the wish list on
// demand.
//
// Each item contributes its most expensive observed offer, the worst-case
// estimate; items without offers contribute zero but still belong to their
// priority bucket.
type WishListBudget struct {
	byPriority map[Priority]decimal.Decimal
}

// NewWishListBudget builds the budget view from a wish list. Every item
// counts exactly once toward its priority.
func NewWishListBudget(w *WishList) WishListBudget {
	byPriority := make(map[Priority]decimal.Decimal)

	for _, item := range w.Items() {
		amount := decimal.Zero
		if _, max, ok := item.PriceRange(); ok {
			amount = max.Price().Amount()
		}
		byPriority[item.Priority()] = byPriority[item.Priority()].Add(amount)
	}

	return WishListBudget{byPriority: byPriority}
}

// ByPriority returns the budget for one priority, in euros. Priorities
// with no items report zero.
func (b WishListBudget) ByPriority(p Priority) decimal.Decimal {
	amount, ok := b.byPriority[p]
	if !ok {
		return decimal.Zero
	}
	return amount
}

// Total returns the budget across all priorities, in euros.
func (b WishListBudget) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range b.byPriority {
		total = total.Add(amount)
	}
	return total
}
