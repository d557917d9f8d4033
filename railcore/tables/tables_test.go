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

package tables

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"railists.dev/railists/railcore/model/catalog"
	"railists.dev/railists/railcore/model/collecting"
)

func buildLocomotiveItem(t *testing.T, description string) catalog.CatalogItem {
	t.Helper()

	railway, err := catalog.NewRailway("FS")
	if err != nil {
		t.Fatalf("NewRailway() error = %v", err)
	}
	epoch, err := catalog.ParseEpoch("IV")
	if err != nil {
		t.Fatalf("ParseEpoch() error = %v", err)
	}
	loco, err := catalog.NewLocomotive(catalog.LocomotiveSpec{
		ClassName:  "E 656",
		RoadNumber: "E 656 291",
		Series:     "5a",
		Livery:     "castano/isabella",
		Railway:    railway,
		Epoch:      epoch,
		Type:       catalog.LocomotiveTypeElectric,
		Control:    catalog.ControlDccSound,
	})
	if err != nil {
		t.Fatalf("NewLocomotive() error = %v", err)
	}

	brand, err := catalog.NewBrand("Roco")
	if err != nil {
		t.Fatalf("NewBrand() error = %v", err)
	}
	number, err := catalog.NewItemNumber("62391")
	if err != nil {
		t.Fatalf("NewItemNumber() error = %v", err)
	}
	item, err := catalog.NewCatalogItem(
		brand, number, description,
		[]catalog.RollingStock{loco},
		catalog.PowerMethodDC, catalog.ScaleH0(), catalog.DeliveryDate{}, 1,
	)
	if err != nil {
		t.Fatalf("NewCatalogItem() error = %v", err)
	}
	return item
}

func buildCollection(t *testing.T) *collecting.Collection {
	t.Helper()

	purchased, err := collecting.NewPurchasedInfo(
		"Modellbahnshop",
		time.Date(2021, time.March, 10, 0, 0, 0, 0, time.UTC),
		collecting.Euro(decimal.New(18990, -2)),
	)
	if err != nil {
		t.Fatalf("NewPurchasedInfo() error = %v", err)
	}
	ci, err := collecting.NewCollectionItem(buildLocomotiveItem(t, "FS electric locomotive"), purchased)
	if err != nil {
		t.Fatalf("NewCollectionItem() error = %v", err)
	}

	c := collecting.NewCollection("my collection")
	c.AddItem(ci)
	return c
}

func TestRenderCollection(t *testing.T) {
	var buf bytes.Buffer
	RenderCollection(&buf, buildCollection(t))

	out := buf.String()
	for _, want := range []string{"BRAND", "ITEM NUMBER", "Roco", "62391", "LOCOMOTIVE", "IV", "2021-03-10", "189.90 EUR"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderWishList(t *testing.T) {
	item, err := collecting.NewWishListItem(
		buildLocomotiveItem(t, "FS electric locomotive"),
		collecting.PriorityHigh,
		nil,
	)
	if err != nil {
		t.Fatalf("NewWishListItem() error = %v", err)
	}

	w := collecting.NewWishList("dream list")
	w.AddItem(item)

	var buf bytes.Buffer
	RenderWishList(&buf, w)

	out := buf.String()
	for _, want := range []string{"PRIORITY", "MIN PRICE", "MAX PRICE", "HIGH", "Roco"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderStats(t *testing.T) {
	stats := collecting.NewCollectionStats(buildCollection(t))

	var buf bytes.Buffer
	RenderStats(&buf, stats)

	out := buf.String()
	for _, want := range []string{"YEAR", "LOCOMOTIVES", "2021", "189.90 EUR"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderDepot(t *testing.T) {
	depot := collecting.NewDepot(buildCollection(t))

	var buf bytes.Buffer
	RenderDepot(&buf, depot)

	out := buf.String()
	for _, want := range []string{"CLASS NAME", "ROAD NUMBER", "E 656", "yes"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	short := "a short description"
	if truncate(short) != short {
		t.Errorf("short descriptions must pass through unchanged")
	}

	long := strings.Repeat("x", 80)
	got := truncate(long)
	if len([]rune(got)) != maxDescriptionLen {
		t.Errorf("truncated length = %d runes, want %d", len([]rune(got)), maxDescriptionLen)
	}
	if !strings.HasSuffix(got, "…") {
		t.Error("truncated descriptions must end with an ellipsis")
	}
}
