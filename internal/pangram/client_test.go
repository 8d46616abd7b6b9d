package pangram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleResponse = `{
	"prediction": "Likely AI",
	"prediction_short": "AI",
	"headline": "This text is likely AI-generated.",
	"ai_likelihood": 0.97,
	"fraction_ai": 0.8,
	"fraction_ai_assisted": 0.1,
	"fraction_human": 0.1,
	"some_future_field": {"ignored": true},
	"segments": [
		{"start_index": 0, "end_index": 12, "label": "ai", "confidence": 0.95},
		{"start_index": 12, "end_index": 20, "label": "human", "confidence": 0.6},
		{"label": "ai", "confidence": 0.5}
	]
}`

func TestDetect(t *testing.T) {
	var gotKey string
	var gotBody detectRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	client, err := NewClient("test-key", srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	det, err := client.Detect(context.Background(), "hello world text")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("X-API-Key = %q, want test-key", gotKey)
	}
	if gotBody.Text != "hello world text" {
		t.Errorf("request text = %q", gotBody.Text)
	}
	if gotBody.RequestID == "" {
		t.Error("request_id missing from outbound payload")
	}
	if det.Response.PredictionShort != "AI" {
		t.Errorf("prediction_short = %q", det.Response.PredictionShort)
	}
	if det.Response.FractionAI != 0.8 {
		t.Errorf("fraction_ai = %v", det.Response.FractionAI)
	}
	if len(det.RawResponse) == 0 || len(det.RawRequest) == 0 {
		t.Error("raw payloads not preserved")
	}
}

func TestDetectAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": "insufficient credits"}`))
	}))
	defer srv.Close()

	client, err := NewClient("test-key", srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.Detect(context.Background(), "text")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "insufficient credits") {
		t.Errorf("error should carry API message, got %v", err)
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient("  ", ""); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestParseResponseMissingRequiredField(t *testing.T) {
	if _, err := ParseResponse([]byte(`{"fraction_ai": 0.5}`)); err == nil {
		t.Fatal("expected error for missing prediction_short")
	}
}

func TestParseResponseMalformed(t *testing.T) {
	if _, err := ParseResponse([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestSpansDropsMissingOffsets(t *testing.T) {
	resp, err := ParseResponse([]byte(sampleResponse))
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	spans := resp.Spans()
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2 (segment without offsets dropped)", len(spans))
	}
	if spans[0].Start != 0 || spans[0].End != 12 {
		t.Errorf("first span = %+v", spans[0])
	}
}
