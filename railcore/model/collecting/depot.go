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

import "sort"

// DepotCard is one locomotive in the depot roster: its class name, road
// number, series, livery and whether a decoder is installed.
//
// A card identifies a physical locomotive by class name, road number and
// series; livery and decoder state are descriptive and do not participate
// in card identity.
type DepotCard struct {
	className   string
	roadNumber  string
	series      string
	livery      string
	withDecoder bool
}

// ClassName returns the locomotive class name.
func (d DepotCard) ClassName() string {
	return d.className
}

// RoadNumber returns the individual running number.
func (d DepotCard) RoadNumber() string {
	return d.roadNumber
}

// Series returns the series designation; empty when not recorded.
func (d DepotCard) Series() string {
	return d.series
}

// Livery returns the paint scheme; empty when not recorded.
func (d DepotCard) Livery() string {
	return d.livery
}

// WithDecoder reports whether the locomotive has a decoder installed.
func (d DepotCard) WithDecoder() bool {
	return d.withDecoder
}

// Equal reports whether two cards identify the same locomotive: same class
// name, road number and series. Livery and decoder state are ignored.
func (d DepotCard) Equal(other DepotCard) bool {
	return d.className == other.className &&
		d.roadNumber == other.roadNumber &&
		d.series == other.series
}

// String renders the card as "<class name> <road number>".
func (d DepotCard) String() string {
	return d.className + " " + d.roadNumber
}

// Depot is the roster of every locomotive in a collection, including
// locomotives packed inside composite boxed sets. It is a derived view,
// rebuilt from the collection on demand.
type Depot struct {
	cards []DepotCard
}

// NewDepot builds the depot roster from a collection. Every locomotive
// rolling stock contributes one card, wherever it appears; the cards are
// sorted by class name and then road number.
func NewDepot(c *Collection) Depot {
	var cards []DepotCard

	for _, item := range c.Items() {
		for _, rs := range item.CatalogItem().RollingStocks() {
			if !rs.IsLocomotive() {
				continue
			}
			cards = append(cards, DepotCard{
				className:   rs.ClassName(),
				roadNumber:  rs.RoadNumber(),
				series:      rs.Series(),
				livery:      rs.Livery(),
				withDecoder: rs.WithDecoder(),
			})
		}
	}

	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].className != cards[j].className {
			return cards[i].className < cards[j].className
		}
		return cards[i].roadNumber < cards[j].roadNumber
	})

	return Depot{cards: cards}
}

// Cards returns a copy of the roster in sorted order.
func (d Depot) Cards() []DepotCard {
	cards := make([]DepotCard, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Len returns the number of locomotives in the roster.
func (d Depot) Len() int {
	return len(d.cards)
}
