package feed

// BuildPriceIndex maps every price entry by SKU. When the feed repeats a
// SKU the last entry wins.
func BuildPriceIndex(list *PriceList) map[string]Price {
	index := make(map[string]Price, len(list.Prices))
	for _, price := range list.Prices {
		index[price.SKU] = price
	}
	return index
}
