package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/launchwrap/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHandoffMetricsRecord(t *testing.T) {
	testlog.Start(t)
	m := NewHandoffMetrics()
	m.RecordCommand("arg")
	m.RecordCommand("arg")
	m.RecordCommand("property")
	m.RecordHandoff("com.example.Main", 2, 1, time.Now())

	if got := testutil.ToFloat64(m.commands.WithLabelValues("arg")); got != 2 {
		t.Fatalf("arg commands=%v", got)
	}
	if got := testutil.ToFloat64(m.args); got != 2 {
		t.Fatalf("arguments=%v", got)
	}
	if got := testutil.ToFloat64(m.properties); got != 1 {
		t.Fatalf("properties=%v", got)
	}
	if n := testutil.CollectAndCount(m.handoff); n != 1 {
		t.Fatalf("expected one handoff series, got %d", n)
	}
}

func TestHandoffMetricsWriteTextfile(t *testing.T) {
	testlog.Start(t)
	m := NewHandoffMetrics()
	m.RecordCommand("launch")
	m.RecordHandoff("com.example.Main", 0, 0, time.Now())

	path := filepath.Join(t.TempDir(), "launchwrap.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	body := string(data)
	for _, want := range []string{
		`launchwrap_handoff_commands_total{kind="launch"} 1`,
		`launchwrap_handoff_timestamp_seconds{entry_point="com.example.Main"}`,
		"launchwrap_handoff_bootstrap_duration_seconds_count 1",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("textfile missing %q:\n%s", want, body)
		}
	}
}
