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

// Package datasource loads collection and wish list documents from their
// YAML representation and rebuilds the typed domain model.
//
// Loading is fail-fast: the first field that cannot be interpreted aborts
// the whole load with an error carrying the position of the offending
// element ("elements[3].rollingStocks[0]: ..."), and no partial document
// is ever returned. Optional fields that are absent take their documented
// defaults; optional fields that are present but invalid are errors. The
// adapter never guesses.
package datasource

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"railists.dev/railists/railcore/errors"
	"railists.dev/railists/railcore/model/catalog"
	"railists.dev/railists/railcore/model/collecting"
)

// Timestamp layouts used by the documents.
const (
	modifiedAtLayout = "2006-01-02 15:04:05"
	dateLayout       = "2006-01-02"
)

type yamlCollection struct {
	Description string               `yaml:"description"`
	Version     uint                 `yaml:"version"`
	ModifiedAt  string               `yaml:"modifiedAt"`
	Elements    []yamlCollectionItem `yaml:"elements"`
}

type yamlCollectionItem struct {
	yamlCatalogItem `yaml:",inline"`
	PurchaseInfo    *yamlPurchaseInfo `yaml:"purchaseInfo"`
}

type yamlPurchaseInfo struct {
	Shop  string `yaml:"shop"`
	Date  string `yaml:"date"`
	Price string `yaml:"price"`
}

type yamlCatalogItem struct {
	Brand         string             `yaml:"brand"`
	ItemNumber    string             `yaml:"itemNumber"`
	Description   string             `yaml:"description"`
	Scale         string             `yaml:"scale"`
	PowerMethod   string             `yaml:"powerMethod"`
	DeliveryDate  string             `yaml:"deliveryDate"`
	Count         int                `yaml:"count"`
	RollingStocks []yamlRollingStock `yaml:"rollingStocks"`
}

// yamlRollingStock has no className key: the schema carries a locomotive's
// class name in typeName, like every other variant's name.
type yamlRollingStock struct {
	Category     string `yaml:"category"`
	SubCategory  string `yaml:"subCategory"`
	RoadNumber   string `yaml:"roadNumber"`
	Series       string `yaml:"series"`
	TypeName     string `yaml:"typeName"`
	ElementCount int    `yaml:"elementCount"`
	Railway      string `yaml:"railway"`
	Epoch        string `yaml:"epoch"`
	Depot        string `yaml:"depot"`
	Livery       string `yaml:"livery"`
	Length       *int   `yaml:"length"`
	Control      string `yaml:"control"`
	DccInterface string `yaml:"dccInterface"`
	ServiceLevel string `yaml:"serviceLevel"`
}

type yamlWishList struct {
	Name       string             `yaml:"name"`
	Version    uint               `yaml:"version"`
	ModifiedAt string             `yaml:"modifiedAt"`
	Elements   []yamlWishListItem `yaml:"elements"`
}

type yamlWishListItem struct {
	yamlCatalogItem `yaml:",inline"`
	Priority        string          `yaml:"priority"`
	Prices          []yamlPriceInfo `yaml:"prices"`
}

type yamlPriceInfo struct {
	Shop  string `yaml:"shop"`
	Price string `yaml:"price"`
}

// LoadCollection reads a collection document from r and rebuilds the
// domain model. The first invalid field aborts the load.
func LoadCollection(r io.Reader) (*collecting.Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading collection document: %w", err)
	}

	var doc yamlCollection
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding collection document: %w", err)
	}

	modifiedAt, err := parseModifiedAt(doc.ModifiedAt)
	if err != nil {
		return nil, err
	}

	collection := collecting.NewCollectionDocument(doc.Description, doc.Version, modifiedAt)
	for i, el := range doc.Elements {
		item, err := toCollectionItem(el)
		if err != nil {
			return nil, fmt.Errorf("elements[%d]: %w", i, err)
		}
		collection.AddItem(item)
	}
	return collection, nil
}

// LoadCollectionFile reads a collection document from the file at path.
func LoadCollectionFile(path string) (*collecting.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening collection document: %w", err)
	}
	defer f.Close()
	return LoadCollection(f)
}

// LoadWishList reads a wish list document from r and rebuilds the domain
// model. The first invalid field aborts the load.
func LoadWishList(r io.Reader) (*collecting.WishList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wish list document: %w", err)
	}

	var doc yamlWishList
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding wish list document: %w", err)
	}

	modifiedAt, err := parseModifiedAt(doc.ModifiedAt)
	if err != nil {
		return nil, err
	}

	wishList := collecting.NewWishListDocument(doc.Name, doc.Version, modifiedAt)
	for i, el := range doc.Elements {
		item, err := toWishListItem(el)
		if err != nil {
			return nil, fmt.Errorf("elements[%d]: %w", i, err)
		}
		wishList.AddItem(item)
	}
	return wishList, nil
}

// LoadWishListFile reads a wish list document from the file at path.
func LoadWishListFile(path string) (*collecting.WishList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wish list document: %w", err)
	}
	defer f.Close()
	return LoadWishList(f)
}

func parseModifiedAt(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(modifiedAtLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("modifiedAt: %w", err)
	}
	return t, nil
}

func toCollectionItem(el yamlCollectionItem) (collecting.CollectionItem, error) {
	item, err := toCatalogItem(el.yamlCatalogItem)
	if err != nil {
		return collecting.CollectionItem{}, err
	}

	if el.PurchaseInfo == nil {
		return collecting.CollectionItem{}, &errors.ValidationError{
			Type:   "CollectionItem",
			Field:  "PurchaseInfo",
			Reason: "purchase information is required",
		}
	}
	purchased, err := toPurchasedInfo(*el.PurchaseInfo)
	if err != nil {
		return collecting.CollectionItem{}, fmt.Errorf("purchaseInfo: %w", err)
	}

	return collecting.NewCollectionItem(item, purchased)
}

func toPurchasedInfo(pi yamlPurchaseInfo) (collecting.PurchasedInfo, error) {
	date, err := time.Parse(dateLayout, pi.Date)
	if err != nil {
		return collecting.PurchasedInfo{}, fmt.Errorf("date: %w", err)
	}
	price, err := collecting.ParsePrice(pi.Price)
	if err != nil {
		return collecting.PurchasedInfo{}, err
	}
	return collecting.NewPurchasedInfo(pi.Shop, date, price)
}

func toWishListItem(el yamlWishListItem) (collecting.WishListItem, error) {
	item, err := toCatalogItem(el.yamlCatalogItem)
	if err != nil {
		return collecting.WishListItem{}, err
	}

	// Absent priority defaults to NORMAL; a present but invalid value is
	// an error.
	priority := collecting.PriorityNormal
	if el.Priority != "" {
		priority, err = collecting.ParsePriority(el.Priority)
		if err != nil {
			return collecting.WishListItem{}, err
		}
	}

	prices := make([]collecting.PriceInfo, 0, len(el.Prices))
	for i, p := range el.Prices {
		price, err := collecting.ParsePrice(p.Price)
		if err != nil {
			return collecting.WishListItem{}, fmt.Errorf("prices[%d]: %w", i, err)
		}
		info, err := collecting.NewPriceInfo(p.Shop, price)
		if err != nil {
			return collecting.WishListItem{}, fmt.Errorf("prices[%d]: %w", i, err)
		}
		prices = append(prices, info)
	}

	return collecting.NewWishListItem(item, priority, prices)
}

func toCatalogItem(ci yamlCatalogItem) (catalog.CatalogItem, error) {
	brand, err := catalog.NewBrand(ci.Brand)
	if err != nil {
		return catalog.CatalogItem{}, err
	}
	itemNumber, err := catalog.NewItemNumber(ci.ItemNumber)
	if err != nil {
		return catalog.CatalogItem{}, err
	}
	scale, ok := catalog.ScaleFromName(ci.Scale)
	if !ok {
		return catalog.CatalogItem{}, &errors.ParseError{Type: "Scale", Value: ci.Scale}
	}
	powerMethod, err := catalog.ParsePowerMethod(ci.PowerMethod)
	if err != nil {
		return catalog.CatalogItem{}, err
	}

	var deliveryDate catalog.DeliveryDate
	if ci.DeliveryDate != "" {
		deliveryDate, err = catalog.ParseDeliveryDate(ci.DeliveryDate)
		if err != nil {
			return catalog.CatalogItem{}, err
		}
	}

	// An absent count means a single box.
	count := ci.Count
	if count == 0 {
		count = 1
	}

	stocks := make([]catalog.RollingStock, 0, len(ci.RollingStocks))
	for i, rs := range ci.RollingStocks {
		stock, err := toRollingStock(rs)
		if err != nil {
			return catalog.CatalogItem{}, fmt.Errorf("rollingStocks[%d]: %w", i, err)
		}
		stocks = append(stocks, stock)
	}

	return catalog.NewCatalogItem(
		brand, itemNumber, ci.Description, stocks, powerMethod, scale, deliveryDate, count)
}

func toRollingStock(rs yamlRollingStock) (catalog.RollingStock, error) {
	category, err := catalog.ParseCategory(rs.Category)
	if err != nil {
		return catalog.RollingStock{}, &errors.ParseError{Type: "rolling stock type", Value: rs.Category}
	}

	railway, err := catalog.NewRailway(rs.Railway)
	if err != nil {
		return catalog.RollingStock{}, err
	}
	epoch, err := catalog.ParseEpoch(rs.Epoch)
	if err != nil {
		return catalog.RollingStock{}, err
	}

	var length catalog.LengthOverBuffer
	if rs.Length != nil {
		length, err = catalog.NewLengthOverBuffer(*rs.Length)
		if err != nil {
			return catalog.RollingStock{}, err
		}
	}

	var control catalog.Control
	if rs.Control != "" {
		control, err = catalog.ParseControl(rs.Control)
		if err != nil {
			return catalog.RollingStock{}, err
		}
	}
	var dccInterface catalog.DccInterface
	if rs.DccInterface != "" {
		dccInterface, err = catalog.ParseDccInterface(rs.DccInterface)
		if err != nil {
			return catalog.RollingStock{}, err
		}
	}

	switch category {
	case catalog.CategoryLocomotives:
		locoType, err := catalog.ParseLocomotiveType(rs.SubCategory)
		if err != nil {
			return catalog.RollingStock{}, err
		}
		return catalog.NewLocomotive(catalog.LocomotiveSpec{
			ClassName:    rs.TypeName,
			RoadNumber:   rs.RoadNumber,
			Series:       rs.Series,
			Railway:      railway,
			Epoch:        epoch,
			Type:         locoType,
			Depot:        rs.Depot,
			Livery:       rs.Livery,
			Length:       length,
			Control:      control,
			DccInterface: dccInterface,
		})

	case catalog.CategoryTrains:
		var trainType catalog.TrainType
		if rs.SubCategory != "" {
			trainType, err = catalog.ParseTrainType(rs.SubCategory)
			if err != nil {
				return catalog.RollingStock{}, err
			}
		}
		elementCount := rs.ElementCount
		if elementCount == 0 {
			elementCount = 1
		}
		return catalog.NewTrain(catalog.TrainSpec{
			TypeName:     rs.TypeName,
			RoadNumber:   rs.RoadNumber,
			ElementCount: elementCount,
			Railway:      railway,
			Epoch:        epoch,
			Type:         trainType,
			Depot:        rs.Depot,
			Livery:       rs.Livery,
			Length:       length,
			Control:      control,
			DccInterface: dccInterface,
		})

	case catalog.CategoryPassengerCars:
		var carType catalog.PassengerCarType
		if rs.SubCategory != "" {
			carType, err = catalog.ParsePassengerCarType(rs.SubCategory)
			if err != nil {
				return catalog.RollingStock{}, err
			}
		}
		var serviceLevel catalog.ServiceLevel
		if rs.ServiceLevel != "" {
			serviceLevel, err = catalog.ParseServiceLevel(rs.ServiceLevel)
			if err != nil {
				return catalog.RollingStock{}, err
			}
		}
		return catalog.NewPassengerCar(catalog.PassengerCarSpec{
			TypeName:     rs.TypeName,
			Railway:      railway,
			Epoch:        epoch,
			Type:         carType,
			ServiceLevel: serviceLevel,
			Depot:        rs.Depot,
			Livery:       rs.Livery,
			Length:       length,
		})

	default:
		var carType catalog.FreightCarType
		if rs.SubCategory != "" {
			carType, err = catalog.ParseFreightCarType(rs.SubCategory)
			if err != nil {
				return catalog.RollingStock{}, err
			}
		}
		return catalog.NewFreightCar(catalog.FreightCarSpec{
			TypeName: rs.TypeName,
			Railway:  railway,
			Epoch:    epoch,
			Type:     carType,
			Depot:    rs.Depot,
			Livery:   rs.Livery,
			Length:   length,
		})
	}
}
