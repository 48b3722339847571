package feed_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olxsync/internal/feed"
)

const catalogXML = `<?xml version="1.0" encoding="utf-8"?>
<ProductCatalog>
  <Product>
    <ProductCode>NB-100</ProductCode>
    <ProductDescription>Lenovo ThinkPad E15, 15.6 FHD</ProductDescription>
    <Vendor>LENOVO</Vendor>
    <ProductType>Notebook - commercial</ProductType>
    <Image>https://cdn.example.com/nb-100.jpg</Image>
    <AttrList>
      <element Name="CPU" Value="Intel Core i5"/>
      <element Name="Installed Operating System" Value="Windows 11 Pro"/>
    </AttrList>
  </Product>
  <Product>
    <ProductCode>NB-200</ProductCode>
    <ProductDescription>Bare entry</ProductDescription>
    <Vendor>ACME</Vendor>
    <ProductType>Notebook - consumer</ProductType>
  </Product>
</ProductCatalog>`

const priceXML = `<?xml version="1.0" encoding="utf-8"?>
<CONTENT>
  <PRICES>
    <PRICE><WIC>NB-100</WIC><RETAIL_PRICE>999.90</RETAIL_PRICE><AVAIL>20+</AVAIL></PRICE>
    <PRICE><WIC>NB-200</WIC><RETAIL_PRICE></RETAIL_PRICE><AVAIL>3</AVAIL></PRICE>
    <PRICE><WIC>NB-100</WIC><RETAIL_PRICE>888.00</RETAIL_PRICE><AVAIL>10+</AVAIL></PRICE>
  </PRICES>
</CONTENT>`

func TestDecodeCatalog(t *testing.T) {
	catalog, err := feed.DecodeCatalog(strings.NewReader(catalogXML))
	require.NoError(t, err)
	require.Len(t, catalog.Products, 2)

	first := catalog.Products[0]
	assert.Equal(t, "NB-100", first.Code)
	assert.Equal(t, "LENOVO", first.Vendor)
	assert.Equal(t, "Notebook - commercial", first.Type)
	assert.Equal(t, "https://cdn.example.com/nb-100.jpg", first.Image)
	require.True(t, first.HasAttrs())
	require.Len(t, first.Attrs.Elements, 2)
	assert.Equal(t, feed.Attr{Name: "CPU", Value: "Intel Core i5"}, first.Attrs.Elements[0])

	// No AttrList element at all: the product is not syncable.
	second := catalog.Products[1]
	assert.False(t, second.HasAttrs())
	assert.Empty(t, second.Image)
}

func TestDecodeCatalogMalformed(t *testing.T) {
	_, err := feed.DecodeCatalog(strings.NewReader("<ProductCatalog><Product>"))
	require.Error(t, err)
}

func TestBuildPriceIndex(t *testing.T) {
	list, err := feed.DecodePriceList(strings.NewReader(priceXML))
	require.NoError(t, err)
	require.Len(t, list.Prices, 3)

	index := feed.BuildPriceIndex(list)
	require.Len(t, index, 2)

	// The feed repeats NB-100; the last entry wins.
	assert.Equal(t, "888.00", index["NB-100"].RetailPrice)
	assert.Equal(t, "10+", index["NB-100"].Avail)
	assert.Equal(t, 0.0, index["NB-200"].Wholesale())
}
