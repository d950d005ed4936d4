package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bull/internal/client/display"
	"bull/internal/core"
	"bull/internal/endpoint"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Verbose    bool
}

// New creates a client for the given API endpoint
func New(ep endpoint.Endpoint) *Client {
	c := &Client{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	c.SetBaseURL(ep.Value)
	return c
}

func (c *Client) SetVerbose(v bool) {
	c.Verbose = v
}

// SetBaseURL updates the API base URL for the client
func (c *Client) SetBaseURL(url string) {
	c.BaseURL = strings.TrimRight(url, "/")
}

func (c *Client) doRequest(method, path string, body any, result any) error {
	url := c.BaseURL + path

	// Prepare body, only raw requests send one
	var bodyReader io.Reader
	var jsonData []byte
	if body != nil {
		var err error
		if jsonData, err = json.Marshal(body); err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Display request
	fmt.Printf("\n%s[API] %s %s%s\n", display.Blue, method, path, display.Reset)
	if len(jsonData) > 0 {
		fmt.Printf("%s%s%s\n", display.Blue, jsonData, display.Reset)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		fmt.Printf("%s[ERROR] %s%s\n", display.Red, err.Error(), display.Reset)
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Display response
	statusColor := display.Green
	if resp.StatusCode >= 400 {
		statusColor = display.Red
	}
	fmt.Printf("%s[%d %s]%s\n", statusColor, resp.StatusCode, http.StatusText(resp.StatusCode), display.Reset)
	if c.Verbose && len(respBody) > 0 {
		fmt.Printf("%sResponse Body:%s\n%s\n", display.Cyan, display.Reset, respBody)
	}

	// Bull errors are {"ok":false,"error":...}, FastAPI ones {"detail":...}
	if resp.StatusCode >= 400 {
		var errResp core.ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && !c.Verbose {
			if errResp.Error != "" {
				fmt.Printf("%sError: %s%s\n", display.Red, errResp.Error, display.Reset)
			}
			if errResp.Detail != nil {
				fmt.Printf("%sDetail: %v%s\n", display.Red, errResp.Detail, display.Reset)
			}
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			fmt.Printf("%sRaw response: %s%s\n", display.Green, respBody, display.Reset)
			return fmt.Errorf("decode %s response: %w", path, err)
		}
	}

	return nil
}

// API Methods

func (c *Client) Health() (*core.HealthResponse, error) {
	var resp core.HealthResponse
	err := c.doRequest(http.MethodGet, "/health", nil, &resp)
	return &resp, err
}

// Packages searches tour packages departing on date, e.g. "01.03"
func (c *Client) Packages(date string) (*core.PackagesResponse, error) {
	var resp core.PackagesResponse
	path := "/api/packages?date=" + url.QueryEscape(date)
	err := c.doRequest(http.MethodGet, path, nil, &resp)
	return &resp, err
}

// RawRequest performs a raw HTTP request for debugging purposes
func (c *Client) RawRequest(method, path string, body string) error {
	var bodyData any
	if body != "" {
		if err := json.Unmarshal([]byte(body), &bodyData); err != nil {
			// Try as raw string
			bodyData = body
		}
	}

	return c.doRequest(method, path, bodyData, nil)
}
