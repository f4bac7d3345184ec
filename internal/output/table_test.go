package output

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	SetNoColor(true)

	table := NewTable("ID", "TITLE", "SCORE")
	table.AddRow("conv-1", "order status", "75.5")
	table.AddRow("conv-2", "billing", "60")

	got := table.Render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + separator + 2 rows:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "TITLE") {
		t.Errorf("header line missing TITLE: %q", lines[0])
	}
	if !strings.Contains(lines[1], "─") {
		t.Errorf("separator line missing rule: %q", lines[1])
	}
	if !strings.Contains(lines[2], "order status") {
		t.Errorf("row line missing cell: %q", lines[2])
	}
}

func TestTableColumnWidths(t *testing.T) {
	SetNoColor(true)

	table := NewTable("A", "B")
	table.AddRow("longer-value", "x")

	lines := strings.Split(table.Render(), "\n")
	// The first column grows to fit the widest cell.
	if !strings.HasPrefix(lines[2], "longer-value  ") {
		t.Errorf("row = %q, want two-space column gap after widest cell", lines[2])
	}
	if !strings.Contains(lines[1], strings.Repeat("─", len("longer-value"))) {
		t.Errorf("separator should span the widest cell: %q", lines[1])
	}
}

func TestTableAlignRight(t *testing.T) {
	SetNoColor(true)

	table := NewTable("NAME", "SCORE")
	table.AlignRight(1)
	table.AddRow("a", "5")

	lines := strings.Split(table.Render(), "\n")
	if !strings.HasSuffix(lines[2], "    5") {
		t.Errorf("row = %q, want right-aligned numeric cell", lines[2])
	}
}

func TestTableEmpty(t *testing.T) {
	table := NewTable()
	if got := table.Render(); got != "" {
		t.Errorf("empty table should render nothing, got %q", got)
	}
}

func TestTableShortRow(t *testing.T) {
	SetNoColor(true)

	table := NewTable("A", "B", "C")
	table.AddRow("only")

	got := table.Render()
	if !strings.Contains(got, "only") {
		t.Errorf("short row dropped: %q", got)
	}
}
