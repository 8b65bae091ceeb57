package shopify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// APIVersion pins the Shopify Admin REST API version used for all calls.
const APIVersion = "2024-01"

// Client defines the interface for interacting with the Shopify Admin API
type Client interface {
	CreateCustomer(payload CustomerPayload) (*CreateCustomerResult, error)
}

type clientImpl struct {
	accessToken string
	baseURL     string
}

// NewClient creates a new Shopify Admin API client for the given store
func NewClient(accessToken, storeDomain string) Client {
	return &clientImpl{
		accessToken: accessToken,
		baseURL:     fmt.Sprintf("https://%s/admin/api/%s", storeDomain, APIVersion),
	}
}

// CreateCustomerResult holds the upstream outcome of a customer creation:
// the parsed customer record on success, or the upstream status code and
// error body otherwise. Transport failures are returned as errors instead.
type CreateCustomerResult struct {
	StatusCode int
	Customer   map[string]interface{}
	Errors     interface{}
}

// Success reports whether the upstream call returned a 2xx status
func (r *CreateCustomerResult) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (c *clientImpl) CreateCustomer(payload CustomerPayload) (*CreateCustomerResult, error) {
	url := c.baseURL + "/customers.json"

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	// Add authentication headers
	req.Header.Add("X-Shopify-Access-Token", c.accessToken)
	req.Header.Add("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling Shopify API: %w", err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	// Informational only, Shopify reports usage as "requests/limit"
	if limit := resp.Header.Get("X-Shopify-Shop-Api-Call-Limit"); limit != "" {
		log.Printf("Shopify API call limit: %s", limit)
	}

	result := &CreateCustomerResult{StatusCode: resp.StatusCode}

	if result.Success() {
		var response struct {
			Customer map[string]interface{} `json:"customer"`
		}
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("error parsing response: %w", err)
		}

		result.Customer = response.Customer
		log.Printf("Successfully created Shopify customer (status %d)", resp.StatusCode)
		return result, nil
	}

	// Pass the upstream error body through verbatim; fall back to the raw
	// text when Shopify returns something that is not JSON.
	var errorBody interface{}
	if err := json.Unmarshal(body, &errorBody); err != nil {
		errorBody = string(body)
	}
	result.Errors = errorBody

	log.Printf("Error from Shopify API (status %d): %s", resp.StatusCode, string(body))
	return result, nil
}
