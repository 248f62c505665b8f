// Package fetch retrieves raw CSV text from configured spreadsheet
// export links. It only deals in text: parsing happens downstream.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// sheetDocID extracts the document identifier from a Google Sheets URL path.
var sheetDocID = regexp.MustCompile(`docs\.google\.com/spreadsheets/d/([^/?#]+)`)

// maxBodySize bounds how much of a response we read. Monthly statement
// exports are tiny; anything bigger is not a CSV we want.
const maxBodySize = 16 << 20

// Client fetches remote CSV resources with a bounded timeout and a
// small retry budget for transient failures.
type Client struct {
	http    *http.Client
	retries uint64
}

// NewClient creates a fetch client. retries is the number of additional
// attempts after the first failure.
func NewClient(timeout time.Duration, retries uint64) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		retries: retries,
	}
}

// RewriteSheetURL turns a Google Sheets document URL into its CSV export
// endpoint. Other URLs pass through unmodified.
func RewriteSheetURL(url string) string {
	m := sheetDocID.FindStringSubmatch(url)
	if m == nil {
		return url
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", m[1])
}

// FetchCSV downloads the raw text behind url, rewriting spreadsheet
// links to their CSV export form first. Transient failures (transport
// errors, 5xx) are retried with exponential backoff; client errors are
// not, since retrying a private or deleted sheet cannot help.
func (c *Client) FetchCSV(ctx context.Context, url string) (string, error) {
	fetchURL := RewriteSheetURL(url)

	var body string
	operation := func() error {
		text, err := c.fetchOnce(ctx, fetchURL)
		if err != nil {
			return err
		}
		body = text
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.retries), ctx)
	if err := backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		log.WithError(err).WithFields(logrus.Fields{
			"url":  fetchURL,
			"wait": wait,
		}).Warn("Retrying fetch")
	}); err != nil {
		return "", err
	}

	return body, nil
}

func (c *Client) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("error building request: %w", err))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching %s: %w", url, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("Failed to close response body")
		}
	}()

	if resp.StatusCode >= 500 {
		return "", fmt.Errorf("server error %d from %s", resp.StatusCode, url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", backoff.Permanent(fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("error reading response from %s: %w", url, err)
	}
	return string(data), nil
}
