package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCollector_RecordOperation(t *testing.T) {
	m := NewMetricsCollector(nil)

	m.RecordOperation("deposit", true, 10*time.Millisecond)
	m.RecordOperation("deposit", true, 10*time.Millisecond)
	m.RecordOperation("deposit", false, 10*time.Millisecond)

	if got := testutil.ToFloat64(m.operations.WithLabelValues("deposit", OutcomeSuccess)); got != 2 {
		t.Errorf("expected 2 successful deposits, got %v", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("deposit", OutcomeRejected)); got != 1 {
		t.Errorf("expected 1 rejected deposit, got %v", got)
	}
}

func TestMetricsCollector_UpdateLedger(t *testing.T) {
	m := NewMetricsCollector(nil)

	m.UpdateLedger([]KindGauge{
		{Kind: "checking", Count: 2, Balance: 1500},
		{Kind: "savings", Count: 1, Balance: 250.5},
	})

	if got := testutil.ToFloat64(m.ledgerAccounts.WithLabelValues("checking")); got != 2 {
		t.Errorf("expected 2 checking accounts, got %v", got)
	}
	if got := testutil.ToFloat64(m.ledgerBalance.WithLabelValues("savings")); got != 250.5 {
		t.Errorf("expected savings balance 250.5, got %v", got)
	}

	count, err := testutil.GatherAndCount(m.Registry(), "ledger_accounts", "ledger_balance_total")
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 ledger series, got %d", count)
	}
}

func TestMetricsCollector_GetHandler(t *testing.T) {
	m := NewMetricsCollector(nil)
	m.RecordOperation("open", true, time.Millisecond)

	rec := httptest.NewRecorder()
	m.GetHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `teller_operations_total{operation="open",outcome="success"} 1`) {
		t.Errorf("expected operation counter in exposition, got:\n%s", body)
	}
}
