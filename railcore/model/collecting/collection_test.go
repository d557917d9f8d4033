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
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	railerr "railists.dev/railists/railcore/errors"
)

func TestNewPurchasedInfo(t *testing.T) {
	date := time.Date(2021, time.March, 10, 0, 0, 0, 0, time.UTC)
	p, err := NewPurchasedInfo("Modellbahnshop", date, Euro(decimal.New(150, 0)))
	if err != nil {
		t.Fatalf("NewPurchasedInfo() error = %v", err)
	}
	if got := p.String(); got != "Modellbahnshop (2021-03-10, 150.00 EUR)" {
		t.Errorf("String() = %q, want %q", got, "Modellbahnshop (2021-03-10, 150.00 EUR)")
	}

	t.Run("blank shop", func(t *testing.T) {
		_, err := NewPurchasedInfo("", date, Euro(decimal.New(150, 0)))
		var blank *railerr.BlankValueError
		if !errors.As(err, &blank) {
			t.Fatalf("error = %v, want *BlankValueError", err)
		}
	})

	t.Run("zero date", func(t *testing.T) {
		_, err := NewPurchasedInfo("Modellbahnshop", time.Time{}, Euro(decimal.New(150, 0)))
		var valErr *railerr.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("error = %v, want *ValidationError", err)
		}
	})

	t.Run("zero price", func(t *testing.T) {
		if _, err := NewPurchasedInfo("Modellbahnshop", date, Price{}); err == nil {
			t.Fatal("expected error for zero price, got nil")
		}
	})
}

func TestCollection_AddItem(t *testing.T) {
	c := NewCollection("my collection")
	if c.Version() != 1 {
		t.Errorf("Version() = %d, want 1", c.Version())
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}

	item := fixtureCollectionItem(t,
		fixtureCatalogItem(t, "Roco", "62391", 1, fixtureLocomotive(t, "E 656", "291", 0)),
		2021, 150)

	c.AddItem(item)
	c.AddItem(item) // buying the same product twice is legitimate

	if c.Len() != 2 {
		t.Errorf("Len() = %d after adding twice, want 2", c.Len())
	}

	got, ok := c.Get(1)
	if !ok {
		t.Fatal("Get(1) ok = false, want true")
	}
	if !got.CatalogItem().Equal(item.CatalogItem()) {
		t.Error("Get(1) returned a different item")
	}

	if _, ok := c.Get(2); ok {
		t.Error("Get(2) ok = true, want false past the end")
	}
	if _, ok := c.Get(-1); ok {
		t.Error("Get(-1) ok = true, want false")
	}
}

func TestCollection_SortItems(t *testing.T) {
	c := NewCollection("my collection")

	roco := fixtureCollectionItem(t,
		fixtureCatalogItem(t, "Roco", "62391", 1, fixtureLocomotive(t, "E 656", "291", 0)),
		2021, 150)
	acme := fixtureCollectionItem(t,
		fixtureCatalogItem(t, "ACME", "70100", 1, fixtureFreightCar(t)),
		2020, 30)

	c.AddItem(roco)
	c.AddItem(acme)
	c.SortItems()

	first, _ := c.Get(0)
	if first.CatalogItem().Brand().Name() != "ACME" {
		t.Errorf("first item after sort = %q, want ACME", first.CatalogItem().Brand().Name())
	}
}

func TestCollection_Metadata(t *testing.T) {
	c := NewCollection("my collection")

	c.BumpVersion()
	if c.Version() != 2 {
		t.Errorf("Version() after bump = %d, want 2", c.Version())
	}

	now := time.Date(2021, time.November, 6, 11, 32, 0, 0, time.UTC)
	c.SetModified(now)
	if !c.ModifiedAt().Equal(now) {
		t.Errorf("ModifiedAt() = %v, want %v", c.ModifiedAt(), now)
	}

	if c.Description() != "my collection" {
		t.Errorf("Description() = %q, want %q", c.Description(), "my collection")
	}
}

func TestCollection_ItemsCopied(t *testing.T) {
	c := NewCollection("my collection")
	c.AddItem(fixtureCollectionItem(t,
		fixtureCatalogItem(t, "Roco", "62391", 1, fixtureLocomotive(t, "E 656", "291", 0)),
		2021, 150))

	items := c.Items()
	items[0] = CollectionItem{}
	if got, _ := c.Get(0); got.CatalogItem().IsZero() {
		t.Error("mutating the returned slice must not reach into the collection")
	}
}

func TestCollectionItem_PurchaseYear(t *testing.T) {
	item := fixtureCollectionItem(t,
		fixtureCatalogItem(t, "Roco", "62391", 1, fixtureLocomotive(t, "E 656", "291", 0)),
		2019, 150)
	if item.PurchaseYear() != 2019 {
		t.Errorf("PurchaseYear() = %d, want 2019", item.PurchaseYear())
	}
}
