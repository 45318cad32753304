package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationError("bad flag").Build(), 2},
		{"not found", NotFoundError("missing example").Build(), 3},
		{"config", ConfigError("bad config").Build(), 7},
		{"metadata", MetadataError("bad metadata").Build(), 9},
		{"render", RenderError("render failed").Build(), 11},
		{"unclassified", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))
	adapter.out = &out
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(NotFoundError("example source missing").WithContext("file", "size.go").Build())

	if code != 3 {
		t.Errorf("expected exit code 3, got %d", code)
	}
	if !strings.Contains(out.String(), "example source missing") {
		t.Errorf("expected message in output, got %q", out.String())
	}
}

func TestCLIErrorAdapter_FormatErrorHidesInternalDetails(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)
	msg := adapter.FormatError(InternalError("nil renderer").Build())
	if !strings.Contains(msg, "use -v") {
		t.Errorf("expected verbose hint, got %q", msg)
	}

	verbose := NewCLIErrorAdapter(true, nil)
	if msg := verbose.FormatError(InternalError("nil renderer").Build()); !strings.Contains(msg, "nil renderer") {
		t.Errorf("expected full message in verbose mode, got %q", msg)
	}
}

func TestHTTPErrorAdapter(t *testing.T) {
	adapter := NewHTTPErrorAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", ValidationError("bad request body").Build(), http.StatusBadRequest},
		{"not found", NotFoundError("unknown output").Build(), http.StatusNotFound},
		{"callback", CallbackError("callback failed").Build(), http.StatusUnprocessableEntity},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/_dash-update-component", nil)
			adapter.WriteErrorResponse(rec, req, tt.err)

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			var body HTTPErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error == "" {
				t.Error("expected error message in body")
			}
		})
	}
}
