package tools

import (
	"bytes"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/danmuck/launchwrap/internal/testutil/testlog"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunnerStreamsAndEnv(t *testing.T) {
	testlog.Start(t)
	requireShell(t)
	var stdout bytes.Buffer
	code, err := ExecRunner{}.Run("sh", []string{"-c", `printf '%s:%s' "$1" "$LW_OS_NAME"`, "sh", "arg1"},
		[]string{"LW_OS_NAME=Linux"}, Stdio{Stdout: &stdout})
	if err != nil || code != 0 {
		t.Fatalf("run: code=%d err=%v", code, err)
	}
	if got := stdout.String(); got != "arg1:Linux" {
		t.Fatalf("stdout=%q", got)
	}
}

func TestExecRunnerExitCode(t *testing.T) {
	testlog.Start(t)
	requireShell(t)
	code, err := ExecRunner{}.Run("sh", []string{"-c", "exit 3"}, nil, Stdio{})
	if err == nil || code != 3 {
		t.Fatalf("expected exit 3 with error, got code=%d err=%v", code, err)
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	testlog.Start(t)
	code, err := ExecRunner{}.Run("launchwrap-definitely-missing-binary", nil, nil, Stdio{})
	if err == nil || code != 127 {
		t.Fatalf("expected 127 with error, got code=%d err=%v", code, err)
	}
	if !strings.Contains(err.Error(), "launchwrap-definitely-missing-binary") {
		t.Fatalf("expected binary name in error, got %v", err)
	}
}
