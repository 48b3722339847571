package olx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"olxsync/internal/logger"
	"olxsync/internal/transform"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(baseURL string, logger *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Authenticate exchanges account credentials for a bearer token.
func (c *Client) Authenticate(username, password string) (string, error) {
	form := url.Values{}
	form.Set("device_name", "api")
	form.Set("username", username)
	form.Set("password", password)

	resp, err := c.httpClient.PostForm(c.baseURL+"/auth/login", form)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("login failed: %d - %s", resp.StatusCode, string(body))
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return authResp.Token, nil
}

// CreateListing creates a new, unpublished listing and returns its ID.
func (c *Client) CreateListing(payload *transform.ListingPayload, token string) (string, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal listing: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/listings", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}

	var listingResp ListingResponse
	if err := json.NewDecoder(resp.Body).Decode(&listingResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return listingResp.ID.String(), nil
}

// UpdateListing replaces the payload of an existing listing.
func (c *Client) UpdateListing(listingID string, payload *transform.ListingPayload, token string) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}

	req, err := http.NewRequest("PUT", fmt.Sprintf("%s/listings/%s", c.baseURL, listingID), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, token)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// UploadImage attaches an image to a listing. The stream is consumed but
// not closed; the caller owns it.
func (c *Client) UploadImage(listingID string, image io.Reader, token string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("images[]", "image")
	if err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return fmt.Errorf("failed to read image stream: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish upload form: %w", err)
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/listings/%s/image-upload", c.baseURL, listingID), &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

// Publish makes a previously created listing publicly visible.
func (c *Client) Publish(listingID string, token string) error {
	req, err := http.NewRequest("POST", fmt.Sprintf("%s/listings/%s/publish", c.baseURL, listingID), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, token)

	return c.do(req)
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
}

func (c *Client) do(req *http.Request) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}

	return nil
}
