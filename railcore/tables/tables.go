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

// Package tables renders collections, wish lists and their derived views
// as pretty-printed terminal tables.
package tables

import (
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"railists.dev/railists/railcore/model/collecting"
)

// Descriptions longer than this are cut with an ellipsis to keep rows on
// one terminal line.
const maxDescriptionLen = 50

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDescriptionLen {
		return s
	}
	return string(runes[:maxDescriptionLen-1]) + "…"
}

// RenderCollection writes the collection as a table, sorted by brand and
// item number.
func RenderCollection(w io.Writer, c *collecting.Collection) {
	items := c.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CatalogItem().Compare(items[j].CatalogItem()) < 0
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Brand", "Item Number", "Category", "Description", "Epoch",
		"Count", "Shop", "Date", "Price",
	})

	for _, item := range items {
		ci := item.CatalogItem()
		purchased := item.Purchased()

		epoch := ""
		if e, ok := ci.Epoch(); ok {
			epoch = e.String()
		}

		table.Append([]string{
			ci.Brand().Name(),
			ci.ItemNumber().String(),
			ci.Category().String(),
			truncate(ci.Description()),
			epoch,
			strconv.Itoa(ci.Count()),
			purchased.Shop(),
			purchased.Date().Format("2006-01-02"),
			purchased.Price().String(),
		})
	}

	table.Render()
}

// RenderWishList writes the wish list as a table, sorted by brand and item
// number, with the observed price range per item.
func RenderWishList(w io.Writer, wl *collecting.WishList) {
	items := wl.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CatalogItem().Compare(items[j].CatalogItem()) < 0
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Brand", "Item Number", "Category", "Description", "Priority",
		"Min Price", "Max Price",
	})

	for _, item := range items {
		ci := item.CatalogItem()

		minPrice, maxPrice := "", ""
		if min, max, ok := item.PriceRange(); ok {
			minPrice = min.Price().String()
			maxPrice = max.Price().String()
		}

		table.Append([]string{
			ci.Brand().Name(),
			ci.ItemNumber().String(),
			ci.Category().String(),
			truncate(ci.Description()),
			item.Priority().String(),
			minPrice,
			maxPrice,
		})
	}

	table.Render()
}

// RenderStats writes the per-year purchase statistics as a table, one row
// per year in ascending order. Category cells carry unit counts; the last
// column carries the year's spending.
func RenderStats(w io.Writer, stats collecting.CollectionStats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Year", "Locomotives", "Trains", "Passenger Cars", "Freight Cars",
		"Total", "Value",
	})

	for _, y := range stats.Years() {
		table.Append([]string{
			strconv.Itoa(y.Year),
			strconv.Itoa(y.Locomotives.Count),
			strconv.Itoa(y.Trains.Count),
			strconv.Itoa(y.PassengerCars.Count),
			strconv.Itoa(y.FreightCars.Count),
			strconv.Itoa(y.Total.Count),
			y.Total.Value.StringFixed(2) + " EUR",
		})
	}

	table.Render()
}

// RenderDepot writes the locomotive roster as a table in its sorted order.
func RenderDepot(w io.Writer, depot collecting.Depot) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Class Name", "Road Number", "Series", "Livery", "With Decoder",
	})

	for _, card := range depot.Cards() {
		decoder := "no"
		if card.WithDecoder() {
			decoder = "yes"
		}
		table.Append([]string{
			card.ClassName(),
			card.RoadNumber(),
			card.Series(),
			card.Livery(),
			decoder,
		})
	}

	table.Render()
}
