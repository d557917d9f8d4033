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

// Package export writes collection documents to external formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"railists.dev/railists/railcore/model/collecting"
)

// csvHeader is the fixed column set of a collection export.
var csvHeader = []string{
	"Brand",
	"ItemNumber",
	"Category",
	"Description",
	"Epoch",
	"Shop",
	"Date",
	"Count",
	"Price",
}

// WriteCollectionCSV writes the collection to w as CSV, one row per item
// in document order.
//
// Dates are formatted as YYYY-MM-DD. The Epoch column carries the single
// epoch shared by every rolling stock in the item and stays empty when the
// item's elements span several epochs.
func WriteCollectionCSV(w io.Writer, c *collecting.Collection) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for i, item := range c.Items() {
		ci := item.CatalogItem()
		purchased := item.Purchased()

		epoch := ""
		if e, ok := ci.Epoch(); ok {
			epoch = e.String()
		}

		row := []string{
			ci.Brand().Name(),
			ci.ItemNumber().String(),
			ci.Category().String(),
			ci.Description(),
			epoch,
			purchased.Shop(),
			purchased.Date().Format("2006-01-02"),
			strconv.Itoa(ci.Count()),
			purchased.Price().String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
