package reporting

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"validator-ledger/internal/domain"
)

//go:embed template.html
var htmlTemplate string

// RenderHTML produces the self-contained report page. The operating timeline
// and the tax timeline are injected as JSON at fixed markers so the template
// stays plain HTML.
func RenderHTML(events, taxEvents []domain.TimelineEvent) (string, error) {
	timelineJSON, err := marshalForScript(events)
	if err != nil {
		return "", fmt.Errorf("marshal timeline: %w", err)
	}
	taxJSON, err := marshalForScript(taxEvents)
	if err != nil {
		return "", fmt.Errorf("marshal tax timeline: %w", err)
	}

	html := strings.Replace(htmlTemplate, "__TIMELINE_JSON__", timelineJSON, 1)
	html = strings.Replace(html, "__TAX_TIMELINE_JSON__", taxJSON, 1)
	return html, nil
}

// marshalForScript encodes events as JSON safe for an inline <script> block.
// A "</script>" inside a vendor name or label would close the block early;
// escaping the forward slash is valid JSON and parsed transparently.
func marshalForScript(events []domain.TimelineEvent) (string, error) {
	if events == nil {
		events = []domain.TimelineEvent{}
	}

	// Plain encoding, not the default HTML-escaped one: the page is read by
	// humans in devtools and the only construct that can break the block is
	// a closing tag, handled below.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(events); err != nil {
		return "", err
	}

	raw := strings.TrimRight(buf.String(), "\n")
	return strings.ReplaceAll(raw, "</", `<\/`), nil
}
