package app

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const labelWidth = 9

// maxScriptLines is how much Lua output the screen keeps.
const maxScriptLines = 3

// Lines renders the session state, one string per screen row.
func (app *Application) Lines() []string {
	focused := ""
	if el, ok := app.tree.Active(); ok {
		focused = el.ID
	}

	handled := app.handledBy
	if handled == "" {
		handled = "default action"
	}

	lines := []string{
		"keynav trace  (" + app.hint() + ")",
		"",
		row("key", orDash(app.lastCombo)+"  -> "+handled),
		row("tabs", app.renderTabs(focused)),
		row("panel", app.renderPanel(focused)),
		row("toggles", app.renderToggles(focused)),
		row("focus", orDash(focused)),
		row("axis", app.tabs.Orientation().String()),
		row("status", orDash(app.status)),
	}
	if app.recorder.Recording() {
		lines = append(lines, row("macro", fmt.Sprintf("recording, %d key(s)", app.recorder.Len())))
	}

	out := app.runner.Output()
	if len(out) > maxScriptLines {
		out = out[len(out)-maxScriptLines:]
	}
	for _, line := range out {
		lines = append(lines, row("lua", line))
	}

	m := app.Metrics()
	lines = append(lines, row("stats", fmt.Sprintf("dispatched %d  unmapped %d  ignored %d  errors %d",
		m.Dispatched, m.Unmapped, m.Ignored, m.HandlerErrors)))
	return lines
}

func (app *Application) hint() string {
	if len(app.sources) > 0 {
		return "keymap " + strings.Join(app.sources, ", ")
	}
	return "ctrl+q quits, tab switches widget, ctrl+o flips axis"
}

func (app *Application) renderTabs(focused string) string {
	active, _ := app.tabs.ActiveID()
	parts := make([]string, 0, len(app.tabs.Tabs()))
	for _, tab := range app.tabs.Tabs() {
		label := tab.Label
		if label == "" {
			label = tab.ID
		}
		if tab.ID == active {
			label = "[" + label + "]"
		}
		if tab.ID == focused {
			label += "*"
		}
		parts = append(parts, runewidth.FillRight(label, 12))
	}
	return strings.TrimRight(strings.Join(parts, ""), " ")
}

func (app *Application) renderPanel(focused string) string {
	panel, ok := app.tabs.ActivePanel()
	if !ok {
		return "-"
	}
	if panel == focused {
		return panel + "*"
	}
	return panel
}

func (app *Application) renderToggles(focused string) string {
	active, _ := app.toggles.ActiveID()
	var parts []string
	for _, item := range app.toggles.Items() {
		box := "[ ]"
		if app.toggles.Pressed(item.ID) {
			box = "[x]"
		}
		label := box + " " + item.ID
		if item.ID == active {
			label = ">" + label
		}
		if item.ID == focused {
			label += "*"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func row(label, value string) string {
	return runewidth.FillRight(label+":", labelWidth) + value
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
