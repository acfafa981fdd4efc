package reporting

import (
	"strings"
	"testing"

	"validator-ledger/internal/domain"
)

func TestRenderHTML_InjectsTimelines(t *testing.T) {
	events := []domain.TimelineEvent{
		{Date: "2025-11-03", EventType: domain.EventCommission, Label: "Staking commission", AmountUSD: 71.93, IsPnL: true},
	}
	taxEvents := []domain.TimelineEvent{
		{Date: "2025-11-03", EventType: domain.EventTaxRevenue, Label: "Taxable withdrawal", AmountUSD: 10, IsPnL: true},
	}

	html, err := RenderHTML(events, taxEvents)
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	if strings.Contains(html, "__TIMELINE_JSON__") || strings.Contains(html, "__TAX_TIMELINE_JSON__") {
		t.Error("Markers must be replaced")
	}
	if !strings.Contains(html, `"Staking commission"`) {
		t.Error("Timeline JSON missing from page")
	}
	if !strings.Contains(html, `"Taxable withdrawal"`) {
		t.Error("Tax timeline JSON missing from page")
	}
}

func TestRenderHTML_NilSlices(t *testing.T) {
	html, err := RenderHTML(nil, nil)
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	// nil must serialize as an empty array, not null.
	if !strings.Contains(html, "const TIMELINE = [];") {
		t.Error("Nil timeline must render as []")
	}
	if !strings.Contains(html, "const TAX_TIMELINE = [];") {
		t.Error("Nil tax timeline must render as []")
	}
}

func TestRenderHTML_ScriptCloseEscaped(t *testing.T) {
	events := []domain.TimelineEvent{
		{Date: "2025-11-03", EventType: domain.EventExpense, Label: "</script><script>alert(1)", AmountUSD: -1, IsPnL: true},
	}

	html, err := RenderHTML(events, nil)
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	if strings.Contains(html, "</script><script>alert(1)") {
		t.Error("Unescaped </script> in injected JSON")
	}
	if !strings.Contains(html, `<\/script><script>alert(1)`) {
		t.Error("Expected escaped closing tag in JSON payload")
	}
}
