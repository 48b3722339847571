package feed

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"olxsync/internal/logger"
)

type Client struct {
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(logger *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// FetchCatalog downloads and parses the product metadata feed.
func (c *Client) FetchCatalog(url string) (*Catalog, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download product feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product feed request failed: %d", resp.StatusCode)
	}

	catalog, err := DecodeCatalog(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product feed: %w", err)
	}

	return catalog, nil
}

// FetchPriceList downloads and parses the pricing/availability feed.
func (c *Client) FetchPriceList(url string) (*PriceList, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download price feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price feed request failed: %d", resp.StatusCode)
	}

	list, err := DecodePriceList(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price feed: %w", err)
	}

	return list, nil
}

// FetchImage opens the product image as a byte stream. The caller owns the
// stream and must close it on every path.
func (c *Client) FetchImage(url string) (io.ReadCloser, error) {
	if url == "" {
		return nil, fmt.Errorf("product has no image URL")
	}

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("image request failed: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var catalog Catalog
	if err := xml.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return &catalog, nil
}

func DecodePriceList(r io.Reader) (*PriceList, error) {
	var list PriceList
	if err := xml.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode price list: %w", err)
	}
	return &list, nil
}
