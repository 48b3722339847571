package config

// ListingRules holds the fixed marketplace mapping data the sync engine
// operates on: which supplier categories are synced, how vendors map to OLX
// brand IDs, and the attribute IDs of the laptop category schema. The values
// must match the OLX category schema exactly.
type ListingRules struct {
	EligibleTypes []string

	// Vendor name as it appears in the supplier feed -> OLX brand ID.
	VendorBrands map[string]int

	CityID     int
	CategoryID int

	MarkupRate float64
	TitleLimit int

	// Supplier attribute names.
	AttrDisplay  string
	AttrOS       string
	AttrCPU      string
	AttrRAM      string
	AttrGraphics string

	// OLX attribute IDs for the normalized values.
	DisplayAttrID  int
	OSAttrID       int
	CPUAttrID      int
	RAMAttrID      int
	GraphicsAttrID int
}

func DefaultListingRules() ListingRules {
	return ListingRules{
		EligibleTypes: []string{"Notebook - consumer", "Notebook - commercial"},
		VendorBrands: map[string]int{
			"LENOVO": 986,
			"DELL":   179,
		},
		CityID:     131,
		CategoryID: 39,
		MarkupRate: 0.17,
		TitleLimit: 55,

		AttrDisplay:  "Diagonal Length",
		AttrOS:       "Installed Operating System",
		AttrCPU:      "CPU",
		AttrRAM:      "Installed System Memory Storage Capacity",
		AttrGraphics: "Video Controller Form Factor",

		DisplayAttrID:  265,
		OSAttrID:       261,
		CPUAttrID:      262,
		RAMAttrID:      264,
		GraphicsAttrID: 3872,
	}
}

func (r ListingRules) IsEligibleType(productType string) bool {
	for _, t := range r.EligibleTypes {
		if t == productType {
			return true
		}
	}
	return false
}

// BrandID resolves a supplier vendor name to an OLX brand ID. Unknown
// vendors have no brand, which the marketplace accepts.
func (r ListingRules) BrandID(vendor string) *int {
	if id, ok := r.VendorBrands[vendor]; ok {
		return &id
	}
	return nil
}
