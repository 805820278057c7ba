package handoff

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/danmuck/launchwrap/internal/testutil/testlog"
)

func TestWriterRoundTripThroughDecoder(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Arg("--foo"); err != nil {
		t.Fatalf("arg: %v", err)
	}
	if err := w.Property("os.name", "Linux"); err != nil {
		t.Fatalf("property: %v", err)
	}
	if err := w.Launch("com.example.Main"); err != nil {
		t.Fatalf("launch: %v", err)
	}

	want := "arg\n--foo\nproperty\nos.name\nLinux\nlaunch\ncom.example.Main\n"
	if buf.String() != want {
		t.Fatalf("encoded=%q want=%q", buf.String(), want)
	}

	dec := NewDecoder(NewScannerSource(strings.NewReader(buf.String()), 0))
	var got []Command
	for range 3 {
		cmd, err := dec.Next()
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		got = append(got, cmd)
	}
	expected := []Command{Arg("--foo"), Property("os.name", "Linux"), Launch("com.example.Main")}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("decoded=%v want=%v", got, expected)
	}
	if dec.Lines() != 7 {
		t.Fatalf("expected 7 lines consumed, got %d", dec.Lines())
	}
}

func TestWriterRejectsLineBreaks(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Arg("two\nlines"); !errors.Is(err, ErrUnencodable) {
		t.Fatalf("expected ErrUnencodable, got %v", err)
	}
	if err := w.Property("k", "v\r"); !errors.Is(err, ErrUnencodable) {
		t.Fatalf("expected ErrUnencodable, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("rejected commands must not be written: %q", buf.String())
	}
}

func TestWriterRejectsAfterLaunch(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Launch("x.Main"); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if err := w.Launch("x.Main"); !errors.Is(err, ErrAlreadyLaunched) {
		t.Fatalf("expected ErrAlreadyLaunched, got %v", err)
	}
	if err := w.Arg("late"); !errors.Is(err, ErrAlreadyLaunched) {
		t.Fatalf("expected ErrAlreadyLaunched, got %v", err)
	}
}

func TestWriterRejectsUnknownKind(t *testing.T) {
	testlog.Start(t)
	w := NewWriter(&bytes.Buffer{})
	if err := w.Write(Command{Kind: "env", Value: "x"}); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestCommandString(t *testing.T) {
	testlog.Start(t)
	if got := Property("k", "v").String(); got != "property k=v" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Launch("x.Main").String(); got != "launch x.Main" {
		t.Fatalf("unexpected %q", got)
	}
}
