package crunchbase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

var ErrNotFound = errors.New("not found")

const defaultBaseURL = "https://api.crunchbase.com/v4/data"

// detail fields requested from the organizations endpoint
const detailFieldIDs = "location_identifiers,founded_on,short_description,revenue_range,num_employees_enum"

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
		// Crunchbase free tier tolerates roughly 2 calls per second.
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// Search resolves a company name to its Crunchbase permalink via the
// autocomplete endpoint. Returns ErrNotFound when nothing matches.
func (c *Client) Search(ctx context.Context, companyName string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("query", companyName)
	query.Set("collection_ids", "organizations")
	query.Set("user_key", c.apiKey)

	var resp autocompleteResponse
	if err := c.getJSON(ctx, c.baseURL+"/autocompletes?"+query.Encode(), &resp); err != nil {
		return "", err
	}

	if len(resp.Entities) == 0 {
		return "", ErrNotFound
	}
	return resp.Entities[0].Identifier.Permalink, nil
}

// Details fetches enrichment fields for the organization behind a permalink.
func (c *Client) Details(ctx context.Context, permalink string) (*CompanyDetails, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("user_key", c.apiKey)
	query.Set("field_ids", detailFieldIDs)

	endpoint := c.baseURL + "/entities/organizations/" + url.PathEscape(permalink) + "?" + query.Encode()

	var resp entityResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.toDetails(), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("crunchbase failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
