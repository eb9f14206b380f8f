package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Item", "Amount").AlignRight(1)
	table.AddRow("Base", "$680.00")
	table.AddRow("Sash lites", "$110.00")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Item       │  Amount" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[2] != "Base       │ $680.00" {
		t.Errorf("unexpected row %q", lines[2])
	}
}

func TestNoColorWritesPlainText(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.Total("Total:", "$615.00")

	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("unexpected escape codes in %q", buf.String())
	}
	if buf.String() != "Total: $615.00\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestSuccessMarker(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.Success("Wrote %s", "windowprice.json")

	if buf.String() != "✓ Wrote windowprice.json\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
