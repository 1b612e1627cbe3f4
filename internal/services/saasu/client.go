package saasu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"saasusync/internal/logger"
)

// Client talks to the Saasu REST API. Authentication is a web services
// access key plus file id, passed as query parameters on every request.
type Client struct {
	baseURL    string
	accessKey  string
	fileID     string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(baseURL, accessKey, fileID string, logger *logger.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		accessKey: accessKey,
		fileID:    fileID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// GetItem fetches a single inventory item by its Saasu inventory id
func (c *Client) GetItem(inventoryID string) (*Item, error) {
	url := fmt.Sprintf("%sItem/%s", c.baseURL, inventoryID)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	c.authenticate(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}

	var item Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &item, nil
}

// PostInvoice sends an invoice to Saasu. The response body is not used;
// only transport-level success matters to the callers.
func (c *Client) PostInvoice(invoice *Invoice) error {
	url := c.baseURL + "Invoice"

	jsonData, err := json.Marshal(invoice)
	if err != nil {
		return fmt.Errorf("failed to marshal invoice: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	c.authenticate(req)

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

func (c *Client) authenticate(req *http.Request) {
	q := req.URL.Query()
	q.Set("WsAccessKey", c.accessKey)
	q.Set("FileId", c.fileID)
	req.URL.RawQuery = q.Encode()
}
