//go:build unit || e2e

package httptest

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SSEvent is one parsed server-sent event.
type SSEvent struct {
	Event string
	Data  string
}

// ParseSSE splits a recorded text/event-stream body into events.
func ParseSSE(t *testing.T, body string) []SSEvent {
	t.Helper()

	var (
		events []SSEvent
		cur    SSEvent
	)
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == "":
			if cur.Event != "" || cur.Data != "" {
				events = append(events, cur)
			}
			cur = SSEvent{}
		case strings.HasPrefix(line, "event:"):
			cur.Event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			cur.Data += strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
	require.NoError(t, sc.Err())
	if cur.Event != "" || cur.Data != "" {
		events = append(events, cur)
	}
	return events
}
