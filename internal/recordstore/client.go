package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"screencheck/pkg/types"
)

// Client talks to the remote record store. The store is the only durable
// home of upload and validation records; this service never persists
// anything itself.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListOptions mirrors the record store's list-endpoint query surface. Zero
// values are omitted from the request.
type ListOptions struct {
	Limit          int
	Page           int
	StartDate      string // ISO date, e.g. 2024-01-01
	EndDate        string
	ImageType      types.ImageType      // uploads feed only
	ComparisonType types.ComparisonType // validations feed only
	Sort           string               // "newest" or "oldest"
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.StartDate != "" {
		v.Set("start_date", o.StartDate)
	}
	if o.EndDate != "" {
		v.Set("end_date", o.EndDate)
	}
	if o.ImageType != "" {
		v.Set("image_type", string(o.ImageType))
	}
	if o.ComparisonType != "" {
		v.Set("comparison_type", string(o.ComparisonType))
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	return v
}

// ListUploads fetches the upload feed.
func (c *Client) ListUploads(ctx context.Context, opts ListOptions) ([]types.UploadRecord, error) {
	var feed types.UploadFeed
	if err := c.getJSON(ctx, "/history/uploads", opts.values(), &feed); err != nil {
		return nil, err
	}
	return feed.Uploads, nil
}

// ListValidations fetches the validation feed.
func (c *Client) ListValidations(ctx context.Context, opts ListOptions) ([]types.ValidationRecord, error) {
	var feed types.ValidationFeed
	if err := c.getJSON(ctx, "/history/validations", opts.values(), &feed); err != nil {
		return nil, err
	}
	return feed.Validations, nil
}

// UploadByID fetches one upload record with its extraction details.
func (c *Client) UploadByID(ctx context.Context, uploadID string) (*types.UploadRecord, error) {
	var detail types.UploadDetail
	path := "/history/uploads/" + url.PathEscape(uploadID)
	if err := c.getJSON(ctx, path, nil, &detail); err != nil {
		return nil, err
	}
	return &detail.Upload, nil
}

// DeleteUpload removes a single upload record from the store.
func (c *Client) DeleteUpload(ctx context.Context, uploadID string) error {
	return c.delete(ctx, "/history/uploads/"+url.PathEscape(uploadID))
}

// DeleteValidation removes a single validation record from the store.
func (c *Client) DeleteValidation(ctx context.Context, comparisonID string) error {
	return c.delete(ctx, "/validation/result/"+url.PathEscape(comparisonID))
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("get %s failed with status %d: %s", path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete %s failed with status %d: %s", path, resp.StatusCode, string(body))
	}

	return nil
}
