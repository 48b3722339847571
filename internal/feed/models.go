package feed

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Catalog is the supplier's product metadata feed.
type Catalog struct {
	XMLName  xml.Name  `xml:"ProductCatalog"`
	Products []Product `xml:"Product"`
}

type Product struct {
	Code        string    `xml:"ProductCode"`
	Description string    `xml:"ProductDescription"`
	Vendor      string    `xml:"Vendor"`
	Type        string    `xml:"ProductType"`
	Image       string    `xml:"Image"`
	Attrs       *AttrList `xml:"AttrList"`
}

// HasAttrs reports whether the feed entry carried an attribute list at all.
// Products without one are not synced.
func (p *Product) HasAttrs() bool {
	return p.Attrs != nil
}

type AttrList struct {
	Elements []Attr `xml:"element"`
}

type Attr struct {
	Name  string `xml:"Name,attr"`
	Value string `xml:"Value,attr"`
}

// PriceList is the supplier's pricing/availability feed.
type PriceList struct {
	XMLName xml.Name `xml:"CONTENT"`
	Prices  []Price  `xml:"PRICES>PRICE"`
}

type Price struct {
	SKU         string `xml:"WIC"`
	RetailPrice string `xml:"RETAIL_PRICE"`
	Avail       string `xml:"AVAIL"`
}

// Wholesale returns the supplier price, or 0 when the feed carried no value
// for this SKU.
func (p Price) Wholesale() float64 {
	raw := strings.TrimSpace(p.RetailPrice)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
