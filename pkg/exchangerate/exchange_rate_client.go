package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultBaseURL = "https://open.er-api.com/v6"

// Client fetches the latest exchange rates relative to USD. The response
// carries foreign units per USD; inversion to USD-per-unit happens in the
// currency converter, not here.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		HTTPClient: http.DefaultClient,
	}
}

type latestRatesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (c *Client) LatestRates(ctx context.Context) (map[string]float64, error) {
	url := fmt.Sprintf("%s/latest/USD", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseJson := latestRatesResponse{}
	if err := json.Unmarshal(responseBytes, &responseJson); err != nil {
		return nil, fmt.Errorf("failed to parse rates response: %w", err)
	}
	if len(responseJson.Rates) == 0 {
		return nil, fmt.Errorf("rates response contained no rates")
	}

	return responseJson.Rates, nil
}
