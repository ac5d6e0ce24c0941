package swarm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var ErrNotFound = errors.New("not found")

const defaultBaseURL = "https://bee.theswarm.com"

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// Search resolves a company name to a Swarm company ID. Several matches may
// come back; the first (most relevant) one is returned.
func (c *Client) Search(ctx context.Context, companyName string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	payload := map[string]any{
		"query": map[string]any{
			"match": map[string]any{
				"company_info.name": companyName,
			},
		},
	}

	var resp searchResponse
	if err := c.postJSON(ctx, c.baseURL+"/companies/search", payload, &resp); err != nil {
		return "", err
	}

	if resp.TotalCount == 0 || len(resp.IDs) == 0 {
		return "", ErrNotFound
	}
	return resp.IDs[0], nil
}

// Fetch retrieves the full company record for a Swarm ID.
func (c *Client) Fetch(ctx context.Context, companyID string) (*CompanyFacts, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"ids": []string{companyID},
	}

	var resp fetchResponse
	if err := c.postJSON(ctx, c.baseURL+"/companies/fetch", payload, &resp); err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, ErrNotFound
	}
	return resp.Results[0].CompanyInfo.toFacts(), nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("swarm failed with status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
