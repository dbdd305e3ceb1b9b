package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordmark/pkg/errors"
	"github.com/matzehuels/wordmark/pkg/pipeline"
)

func newTestServer(t *testing.T, base pipeline.Options) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(nil, nil, logger)
	srv := httptest.NewServer(newPreviewServer(runner, base, logger).routes())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, resp.Header.Get("Content-Type"), string(body)
}

func TestServeRoutes(t *testing.T) {
	srv := newTestServer(t, pipeline.Options{Overrides: map[string]any{"left": "BASE"}})

	tests := []struct {
		name        string
		path        string
		status      int
		contentType string
		contains    []string
	}{
		{"health", "/healthz", http.StatusOK, "text/plain", []string{"ok"}},
		{"gallery", "/", http.StatusOK, "text/html", []string{"Logo Preview (19 variants)", "BASE"}},
		{"gallery override", "/?left=ACME", http.StatusOK, "text/html", []string{"ACME"}},
		{"gallery select", "/?select=crown", http.StatusOK, "text/html", []string{"3px solid"}},
		{"single", "/v/crown", http.StatusOK, "text/html", []string{"<h2>03", "<svg"}},
		{"single by number", "/v/18/svg", http.StatusOK, "image/svg+xml", []string{"<svg"}},
		{"unknown variant", "/v/fireworks", http.StatusNotFound, "text/plain", nil},
		{"unknown key", "/?colour=red", http.StatusBadRequest, "text/plain", []string{"colour"}},
		{"unknown preset", "/?preset=poster", http.StatusBadRequest, "text/plain", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ct, body := get(t, srv.URL+tt.path)
			if status != tt.status {
				t.Errorf("status = %d, want %d (%s)", status, tt.status, body)
			}
			if !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("Content-Type = %q, want %s", ct, tt.contentType)
			}
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestServeCatalogAPI(t *testing.T) {
	srv := newTestServer(t, pipeline.Options{Only: []string{"basic", "crown"}})

	status, ct, body := get(t, srv.URL+"/api/catalog?out_width=900&preset=social")
	if status != http.StatusOK {
		t.Fatalf("status = %d: %s", status, body)
	}
	if ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var resp catalogResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Config.OutWidth != 900 {
		t.Errorf("OutWidth = %d, want 900", resp.Config.OutWidth)
	}
	if len(resp.Variants) != 2 || resp.Variants[1].ID != "crown" {
		t.Errorf("variants = %d, want basic and crown", len(resp.Variants))
	}
	if resp.Variants[0].Width != 900 {
		t.Errorf("basic width = %d, want 900", resp.Variants[0].Width)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeInvalidVariant, "x"), http.StatusNotFound},
		{errors.New(errors.ErrCodeInvalidConfig, "x"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeInvalidPreset, "x"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeRenderFailed, "x"), http.StatusInternalServerError},
		{io.EOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
