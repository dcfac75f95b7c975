package tui

import (
	"strings"
	"testing"

	"github.com/mylxsw/redis-compat/catalog"
	"github.com/mylxsw/redis-compat/config"
	"github.com/mylxsw/redis-compat/core"
)

func newTestTUI() *CompatTUI {
	return NewCompatTUI(nil, catalog.Default(), 10, "test", "-", make(chan core.OutputMessage, 10), config.Default())
}

func TestEscape(t *testing.T) {
	if escape("key [GET] [NX|XX]") != "key [GET[] [NX|XX]" {
		t.Errorf("test failed: %s", escape("key [GET] [NX|XX]"))
	}
}

func TestFilterCommands(t *testing.T) {
	ui := newTestTUI()

	all, err := ui.filterCommands("  ")
	if err != nil || len(all) != catalog.Default().Len() {
		t.Error("empty search should list the whole catalog")
	}

	cmds, err := ui.filterCommands("config *")
	if err != nil || len(cmds) != 2 {
		t.Errorf("test failed: %v", err)
	}

	cmds, _ = ui.filterCommands("client get")
	if len(cmds) != 1 || cmds[0].Name != "CLIENT GETNAME" {
		t.Error("test failed")
	}

	if _, err := ui.filterCommands("[client"); err == nil {
		t.Error("expected invalid pattern error")
	}
}

func TestFormatResult(t *testing.T) {
	ui := newTestTUI()

	if ui.formatResult("OK") != "    1 | OK" {
		t.Errorf("test failed: %q", ui.formatResult("OK"))
	}

	if ui.formatResult([]interface{}{"a", int64(1)}) != "    1 | a\n    2 | 1" {
		t.Errorf("test failed: %q", ui.formatResult([]interface{}{"a", int64(1)}))
	}

	long := ui.formatResult(strings.Repeat("x", 500))
	if !strings.Contains(long, "300+ charactors omitted") {
		t.Errorf("test failed: %q", long)
	}
}

func TestShowCommand(t *testing.T) {
	ui := newTestTUI()

	client, _ := catalog.Default().Lookup("CLIENT")
	ui.showCommand(client)

	detail := ui.detailPanel.GetText(true)
	if !strings.Contains(detail, "CLIENT LIST") || !strings.Contains(detail, "Subcommands") {
		t.Errorf("test failed: %s", detail)
	}

	if !strings.Contains(ui.metaPanel.GetText(true), "Supported since 0.1.0") {
		t.Error("test failed")
	}

	if ui.centerPanel != ui.detailPanel {
		t.Error("detail panel should be displayed")
	}
}

func TestFillUsageTable(t *testing.T) {
	ui := newTestTUI()

	ui.fillUsageTable([]catalog.Annotation{
		{Name: "GET", MinVersion: "1.0.0", CompatDetected: catalog.Supported},
		{Name: "NOPE", MinVersion: catalog.Unsupported, CompatDetected: catalog.Unsupported},
	})

	if ui.usagePanel.GetRowCount() != 3 {
		t.Errorf("expected 3 rows, got %d", ui.usagePanel.GetRowCount())
	}

	if ui.usagePanel.GetCell(2, 1).Text != "NOPE" || ui.usagePanel.GetCell(1, 3).Text != catalog.Supported {
		t.Error("test failed")
	}
}
