package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

// BASE_URL（例: http://localhost:8080）が無ければスキップする。
func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		t.Skip("BASE_URL not set; skipping e2e")
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

type Item struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Size  string  `json:"size"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

type ItemRequest struct {
	Name  string  `json:"name"`
	Size  string  `json:"size"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustDecodeError(t *testing.T, body []byte) ErrorResponse {
	t.Helper()
	var v ErrorResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(ErrorResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeSuccess(t *testing.T, body []byte) SuccessResponse {
	t.Helper()
	var v SuccessResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(SuccessResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeItem(t *testing.T, body []byte) Item {
	t.Helper()
	var v Item
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(Item) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeItems(t *testing.T, body []byte) []Item {
	t.Helper()
	var v []Item
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal([]Item) failed: %v body=%s", err, string(body))
	}
	return v
}

func toStr(v int64) string {
	return strconv.FormatInt(v, 10)
}
