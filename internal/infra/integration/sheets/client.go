package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

// Client talks to the Google Sheets v4 values API. Calls go through a
// circuit breaker: sheet provisioning and appends are degraded steps, so a
// flapping upstream should fail fast instead of stalling lead submissions.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient(token, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "google-sheets",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
		}),
	}
}

// CreateSpreadsheet creates a titled spreadsheet, writes the header row and
// returns the spreadsheet id.
func (c *Client) CreateSpreadsheet(ctx context.Context, input CreateSpreadsheetInput) (string, error) {
	payload := createSpreadsheetRequest{
		Properties: spreadsheetProperties{Title: input.Title},
	}

	var response createSpreadsheetResponse
	endpoint := fmt.Sprintf("%s/spreadsheets", c.baseURL)
	if err := c.do(ctx, http.MethodPost, endpoint, payload, &response); err != nil {
		return "", fmt.Errorf("create spreadsheet: %w", err)
	}
	if response.SpreadsheetID == "" {
		return "", fmt.Errorf("create spreadsheet: empty id in response")
	}

	if len(input.Header) > 0 {
		endpoint = fmt.Sprintf("%s/spreadsheets/%s/values/%s?valueInputOption=RAW",
			c.baseURL, response.SpreadsheetID, url.PathEscape("Sheet1!A1"))
		body := valueRange{Values: [][]string{input.Header}}
		if err := c.do(ctx, http.MethodPut, endpoint, body, nil); err != nil {
			return "", fmt.Errorf("write header row: %w", err)
		}
	}

	return response.SpreadsheetID, nil
}

// AppendRow appends one row after the last row of the sheet.
func (c *Client) AppendRow(ctx context.Context, spreadsheetID string, row []string) error {
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED",
		c.baseURL, spreadsheetID, url.PathEscape("Sheet1!A:E"))
	body := valueRange{Values: [][]string{row}}

	if err := c.do(ctx, http.MethodPost, endpoint, body, nil); err != nil {
		return fmt.Errorf("append row to %s: %w", spreadsheetID, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload, out any) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	_, err = c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewBuffer(jsonBody))
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("sheets request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			body, _ := io.ReadAll(resp.Body)
			return nil, fmt.Errorf("sheets API status %d: %s", resp.StatusCode, string(body))
		}

		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return nil, fmt.Errorf("decode sheets response: %w", err)
			}
		}
		return nil, nil
	})
	return err
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
}
