// Copyright (c) 2026 Groqscribe Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package groq

// In this file: the HTTP client for Groq's audio transcription endpoint.
// One outbound request per call, no retries, no caching.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/groqscribe/groqscribe/internal/transcribe"
)

const (
	// DefaultBaseURL is Groq's OpenAI-compatible API root.
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	// DefaultModel is the large-capacity Whisper model.
	DefaultModel = "whisper-large-v3-turbo"
	// DefaultTimeout bounds a single transcription request.
	DefaultTimeout = 2 * time.Minute

	transcriptionsPath = "/audio/transcriptions"

	// maxErrBody caps how much of an error response body is read.
	maxErrBody = 64 << 10
)

// Config holds the Groq client configuration.  Zero values fall back to the
// package defaults.
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
	// HTTPClient, when set, overrides the default client.  Used in tests.
	HTTPClient *http.Client
}

// Client calls Groq's transcription endpoint.  It is immutable after New and
// safe for concurrent use.  The API key is supplied per call, not stored.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
}

var _ transcribe.Transcriber = (*Client)(nil)

// New creates a Groq transcription client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  cfg.HTTPClient,
	}
}

// Model returns the model identifier sent with every request.
func (c *Client) Model() string { return c.model }

// TranscribeFile uploads the media file as a multipart payload and returns
// the transcript text.
func (c *Client) TranscribeFile(ctx context.Context, media transcribe.Media, apiKey string) (string, error) {
	f, err := os.Open(media.Path)
	if err != nil {
		return "", transcribe.InvalidInput(transcribe.ReasonNotFound, err, fmt.Sprintf("file %q is not accessible", media.Path))
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(media.Path))
	if err != nil {
		return "", transcribe.Provider(err, "create multipart payload")
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", transcribe.InvalidInput(transcribe.ReasonNotFound, err, fmt.Sprintf("read file %q", media.Path))
	}
	if err := c.writeCommonFields(w); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", transcribe.Provider(err, "finalise multipart payload")
	}
	return c.post(ctx, &buf, w.FormDataContentType(), apiKey, false)
}

// TranscribeURL passes the media URL as a reference parameter; Groq fetches
// the content itself.
func (c *Client) TranscribeURL(ctx context.Context, url string, apiKey string) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("url", url); err != nil {
		return "", transcribe.Provider(err, "create multipart payload")
	}
	if err := c.writeCommonFields(w); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", transcribe.Provider(err, "finalise multipart payload")
	}
	return c.post(ctx, &buf, w.FormDataContentType(), apiKey, true)
}

// writeCommonFields adds the fields shared by both request shapes.  The
// language field is deliberately omitted: the model auto-detects it.
func (c *Client) writeCommonFields(w *multipart.Writer) error {
	if err := w.WriteField("model", c.model); err != nil {
		return transcribe.Provider(err, "create multipart payload")
	}
	if err := w.WriteField("response_format", "json"); err != nil {
		return transcribe.Provider(err, "create multipart payload")
	}
	return nil
}

// transcription is the success response body.
type transcription struct {
	Text string `json:"text"`
}

// apiError is the error response body shape.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *Client) post(ctx context.Context, body io.Reader, contentType, apiKey string, fromURL bool) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+transcriptionsPath, body)
	if err != nil {
		return "", transcribe.Provider(err, "create request")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", transcribe.Provider(err, "transcription request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", classify(resp.StatusCode, errMessage(resp.Body), fromURL)
	}

	var tr transcription
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", transcribe.Provider(err, "decode transcription response")
	}
	return tr.Text, nil
}

// errMessage extracts the provider's error message from the response body,
// falling back to the raw body when it is not the usual JSON shape.
func errMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrBody))
	if err != nil {
		return ""
	}
	var ae apiError
	if err := json.Unmarshal(raw, &ae); err == nil && ae.Error.Message != "" {
		return ae.Error.Message
	}
	return strings.TrimSpace(string(raw))
}

// classify maps a non-success provider status to a structured error.  Client
// errors on URL-sourced requests mean Groq could not fetch or decode the
// remote media.
func classify(status int, msg string, fromURL bool) error {
	if msg == "" {
		msg = http.StatusText(status)
	}
	msg = fmt.Sprintf("%s (HTTP %d)", msg, status)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return transcribe.Authentication(nil, msg)
	case status == http.StatusTooManyRequests:
		return transcribe.RateLimited(nil, msg)
	case fromURL && status >= 400 && status < 500:
		return transcribe.RemoteFetch(nil, msg)
	default:
		return transcribe.Provider(nil, msg)
	}
}
