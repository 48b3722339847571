package transform

import (
	"errors"
	"strings"

	"olxsync/internal/config"
	"olxsync/internal/feed"
	"olxsync/internal/normalize"
)

// ErrNoAttributes marks a feed entry that carried no attribute list at all.
// Such products are not syncable and produce no payload.
var ErrNoAttributes = errors.New("product has no attribute list")

// ListingPayload is the canonical listing representation sent to OLX. The
// attribute IDs must match the marketplace category schema exactly.
type ListingPayload struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Price       int                `json:"price"`
	CityID      int                `json:"city_id"`
	CategoryID  int                `json:"category_id"`
	Available   bool               `json:"available"`
	ListingType string             `json:"listing_type"`
	State       string             `json:"state"`
	Quantity    normalize.Quantity `json:"quantity"`
	SKUNumber   string             `json:"sku_number"`
	BrandID     *int               `json:"brand_id"`
	Attributes  []Attribute        `json:"attributes"`
}

type Attribute struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

type Transformer struct {
	rules config.ListingRules
}

func NewTransformer(rules config.ListingRules) *Transformer {
	return &Transformer{rules: rules}
}

// Transform assembles the listing payload for one product. Listings are
// always assembled unavailable; publication is a separate step after
// creation.
func (t *Transformer) Transform(product *feed.Product, price feed.Price) (*ListingPayload, error) {
	if !product.HasAttrs() {
		return nil, ErrNoAttributes
	}

	attrs := t.normalizeAttrs(product)

	return &ListingPayload{
		Title:       Title(product.Description, t.rules.TitleLimit),
		Description: product.Description,
		Price:       PublicPrice(price.Wholesale(), t.rules.MarkupRate),
		CityID:      t.rules.CityID,
		CategoryID:  t.rules.CategoryID,
		Available:   false,
		ListingType: "sell",
		State:       "new",
		Quantity:    normalize.ParseQuantity(price.Avail),
		SKUNumber:   product.Code,
		BrandID:     t.rules.BrandID(product.Vendor),
		Attributes: []Attribute{
			{ID: t.rules.DisplayAttrID, Value: attrs.Display},
			{ID: t.rules.OSAttrID, Value: attrs.OS},
			{ID: t.rules.CPUAttrID, Value: attrs.CPU},
			{ID: t.rules.RAMAttrID, Value: attrs.RAM},
			{ID: t.rules.GraphicsAttrID, Value: attrs.Graphics},
		},
	}, nil
}

func (t *Transformer) normalizeAttrs(product *feed.Product) normalize.Attributes {
	attrs := normalize.DefaultAttributes()

	for _, attr := range product.Attrs.Elements {
		switch attr.Name {
		case t.rules.AttrDisplay:
			attrs.Display = normalize.DisplaySize(attr.Value)
		case t.rules.AttrOS:
			attrs.OS = normalize.OS(attr.Value)
		case t.rules.AttrCPU:
			attrs.CPU = normalize.CPU(attr.Value)
		case t.rules.AttrRAM:
			attrs.RAM = attr.Value
		case t.rules.AttrGraphics:
			attrs.Graphics = normalize.Graphics(attr.Value)
		}
	}

	return attrs
}

// Title derives the listing title from the feed description: the first two
// comma segments joined by a space, hard-truncated to limit bytes.
func Title(description string, limit int) string {
	segments := strings.Split(description, ",")
	if len(segments) > 2 {
		segments = segments[:2]
	}
	for i, segment := range segments {
		segments[i] = strings.TrimSpace(segment)
	}

	title := strings.Join(segments, " ")
	if len(title) > limit {
		title = title[:limit]
	}
	return title
}
