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
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"railists.dev/railists/railcore/model/catalog"
)

// Fixture builders shared by the collecting tests. They panic through
// t.Fatal on invalid input, so table entries stay terse.

func fixtureRailway(t *testing.T) catalog.Railway {
	t.Helper()
	r, err := catalog.NewRailway("FS")
	if err != nil {
		t.Fatalf("NewRailway() error = %v", err)
	}
	return r
}

func fixtureEpoch(t *testing.T, s string) catalog.Epoch {
	t.Helper()
	e, err := catalog.ParseEpoch(s)
	if err != nil {
		t.Fatalf("ParseEpoch(%q) error = %v", s, err)
	}
	return e
}

func fixtureLocomotive(t *testing.T, className, roadNumber string, control catalog.Control) catalog.RollingStock {
	t.Helper()
	rs, err := catalog.NewLocomotive(catalog.LocomotiveSpec{
		ClassName:  className,
		RoadNumber: roadNumber,
		Railway:    fixtureRailway(t),
		Epoch:      fixtureEpoch(t, "IV"),
		Type:       catalog.LocomotiveTypeElectric,
		Control:    control,
	})
	if err != nil {
		t.Fatalf("NewLocomotive() error = %v", err)
	}
	return rs
}

func fixtureFreightCar(t *testing.T) catalog.RollingStock {
	t.Helper()
	rs, err := catalog.NewFreightCar(catalog.FreightCarSpec{
		TypeName: "Gbhs",
		Railway:  fixtureRailway(t),
		Epoch:    fixtureEpoch(t, "IV"),
	})
	if err != nil {
		t.Fatalf("NewFreightCar() error = %v", err)
	}
	return rs
}

func fixtureCatalogItem(t *testing.T, brand, number string, count int, stocks ...catalog.RollingStock) catalog.CatalogItem {
	t.Helper()
	b, err := catalog.NewBrand(brand)
	if err != nil {
		t.Fatalf("NewBrand(%q) error = %v", brand, err)
	}
	n, err := catalog.NewItemNumber(number)
	if err != nil {
		t.Fatalf("NewItemNumber(%q) error = %v", number, err)
	}
	item, err := catalog.NewCatalogItem(
		b, n, "test item", stocks,
		catalog.PowerMethodDC, catalog.ScaleH0(), catalog.DeliveryDate{}, count,
	)
	if err != nil {
		t.Fatalf("NewCatalogItem() error = %v", err)
	}
	return item
}

func fixturePurchase(t *testing.T, year int, euros int64) PurchasedInfo {
	t.Helper()
	date := time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC)
	p, err := NewPurchasedInfo("Modellbahnshop", date, Euro(decimal.New(euros, 0)))
	if err != nil {
		t.Fatalf("NewPurchasedInfo() error = %v", err)
	}
	return p
}

func fixtureCollectionItem(t *testing.T, item catalog.CatalogItem, year int, euros int64) CollectionItem {
	t.Helper()
	ci, err := NewCollectionItem(item, fixturePurchase(t, year, euros))
	if err != nil {
		t.Fatalf("NewCollectionItem() error = %v", err)
	}
	return ci
}

func fixtureOffer(t *testing.T, shop string, euros int64) PriceInfo {
	t.Helper()
	p, err := NewPriceInfo(shop, Euro(decimal.New(euros, 0)))
	if err != nil {
		t.Fatalf("NewPriceInfo() error = %v", err)
	}
	return p
}

func fixtureWishListItem(t *testing.T, item catalog.CatalogItem, priority Priority, offers ...PriceInfo) WishListItem {
	t.Helper()
	wi, err := NewWishListItem(item, priority, offers)
	if err != nil {
		t.Fatalf("NewWishListItem() error = %v", err)
	}
	return wi
}
