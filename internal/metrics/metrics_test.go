package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordTraining(t *testing.T) {
	Register()
	before := testutil.ToFloat64(trainingTotal.WithLabelValues("bigram", "success"))
	RecordTraining("bigram", "success")
	after := testutil.ToFloat64(trainingTotal.WithLabelValues("bigram", "success"))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v -> %v", before, after)
	}
}

func TestRecordModelGauges(t *testing.T) {
	Register()
	RecordModel("unigram", 42, 1000)
	if got := testutil.ToFloat64(vocabularySize.WithLabelValues("unigram")); got != 42 {
		t.Fatalf("vocabulary gauge = %v, want 42", got)
	}
	if got := testutil.ToFloat64(corpusTokens.WithLabelValues("unigram")); got != 1000 {
		t.Fatalf("corpus gauge = %v, want 1000", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordGeneration("bigram", "success", 12)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "songsmith_generation_total") {
		t.Fatalf("expected generation counter in output:\n%s", rec.Body.String())
	}
}
