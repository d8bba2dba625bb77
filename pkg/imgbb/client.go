// Package imgbb is a minimal client for the ImgBB image hosting API.
package imgbb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultUploadURL is the production ImgBB upload endpoint.
const DefaultUploadURL = "https://api.imgbb.com/1/upload"

// Client talks to the ImgBB HTTP API.
type Client struct {
	HTTPClient *http.Client
	APIKey     string
	UploadURL  string
}

// NewClient creates an ImgBB client with a request timeout suited to image
// payloads.
func NewClient(apiKey string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		APIKey:     apiKey,
		UploadURL:  DefaultUploadURL,
	}
}

// UploadResult holds the subset of the ImgBB response the service exposes.
type UploadResult struct {
	Url        string
	DisplayUrl string
	DeleteUrl  string
	ThumbUrl   string
}

// uploadResponse mirrors the ImgBB JSON envelope.
type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Url        string `json:"url"`
		DisplayUrl string `json:"display_url"`
		DeleteUrl  string `json:"delete_url"`
		Thumb      struct {
			Url string `json:"url"`
		} `json:"thumb"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends a base64-encoded image to ImgBB. An empty name gets a
// timestamped default so uploads remain traceable in the ImgBB dashboard.
func (c *Client) Upload(ctx context.Context, imageBase64, name string) (*UploadResult, error) {
	if name == "" {
		name = fmt.Sprintf("sewalink-%d", time.Now().UnixMilli())
	}

	form := url.Values{}
	form.Set("key", c.APIKey)
	form.Set("image", imageBase64)
	form.Set("name", name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.UploadURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if !parsed.Success {
		msg := parsed.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("upload failed with status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("imgbb: %s", msg)
	}

	return &UploadResult{
		Url:        parsed.Data.Url,
		DisplayUrl: parsed.Data.DisplayUrl,
		DeleteUrl:  parsed.Data.DeleteUrl,
		ThumbUrl:   parsed.Data.Thumb.Url,
	}, nil
}

// Delete requests removal of an image via its delete URL. ImgBB has no
// dedicated delete API; fetching the delete URL is the documented mechanism.
func (c *Client) Delete(ctx context.Context, deleteURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("imgbb: delete failed with status %d", resp.StatusCode)
	}
	return nil
}
