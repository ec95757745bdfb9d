package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_render(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "NAME", "VALUE", "OK")
	tbl.Row("alpha", 42, true)
	tbl.Row("beta", 0, false)
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 lines (header + 2 rows), got %d", len(lines))
	}
	if !strings.Contains(lines[0], "NAME") {
		t.Errorf("header missing NAME: %q", lines[0])
	}
	if !strings.Contains(lines[1], "alpha") {
		t.Errorf("row 1 missing alpha: %q", lines[1])
	}
}

func TestTable_multiLineValue(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "RULE", "MESSAGE")
	tbl.Row("r", "first line.\nExpected: 1;\tfound: 2.")
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "first line. Expected: 1; found: 2.") {
		t.Errorf("message not flattened: %q", lines[1])
	}
}
