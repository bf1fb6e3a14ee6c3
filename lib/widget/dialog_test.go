// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/tact-project/tact/lib/announce"
	"github.com/tact-project/tact/lib/focus"
	"github.com/tact-project/tact/lib/theme"
)

func keyTab() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyTab} }
func keyShiftTab() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyShiftTab} }

func testDialog() (*focus.Scope, *focus.Stack, *Dialog) {
	scope := focus.NewScope()
	stack := focus.NewStack(scope)

	outside := NewButton("x", "Outside")
	scope.Attach(outside)
	scope.Focus("x")

	dialog := NewDialog("confirm", "Discard changes?",
		"Unsaved edits will be lost if you continue.",
		scope, stack,
		NewButton("b1", "Save"),
		NewButton("b2", "Discard"),
		NewButton("b3", "Cancel"))
	return scope, stack, dialog
}

func currentID(t *testing.T, scope *focus.Scope) string {
	t.Helper()
	current := scope.Current()
	if current == nil {
		return ""
	}
	return current.ID()
}

func TestDialogOpenFocusesFirstButton(t *testing.T) {
	scope, _, dialog := testDialog()
	announcer := announce.New(time.Minute)
	dialog.SetAnnouncer(announcer)

	if !dialog.Open() {
		t.Fatal("open failed")
	}
	if !dialog.IsOpen() {
		t.Fatal("dialog reports closed after open")
	}
	if id := currentID(t, scope); id != "b1" {
		t.Fatalf("focus = %q, want the first button", id)
	}

	text, priority, ok := announcer.Current(time.Now())
	if !ok || text != "Discard changes? dialog" {
		t.Errorf("announcement %q, want the dialog title", text)
	}
	if priority != announce.Assertive {
		t.Errorf("priority = %v, want assertive for a context change", priority)
	}
}

func TestDialogTabCycle(t *testing.T) {
	scope, _, dialog := testDialog()
	dialog.Open()

	for _, want := range []string{"b2", "b3", "b1"} {
		if !scope.RouteKey(keyTab()) {
			t.Fatal("tab not consumed by the trap")
		}
		if id := currentID(t, scope); id != want {
			t.Fatalf("focus = %q, want %q", id, want)
		}
	}

	if !scope.RouteKey(keyShiftTab()) {
		t.Fatal("shift+tab not consumed by the trap")
	}
	if id := currentID(t, scope); id != "b3" {
		t.Fatalf("focus = %q, want wraparound back to b3", id)
	}
}

func TestDialogButtonActivation(t *testing.T) {
	scope, _, dialog := testDialog()
	dialog.Open()
	scope.RouteKey(keyTab())

	handled, cmd := dialog.HandleKey(keyEnter())
	if !handled || cmd == nil {
		t.Fatal("enter on a button should close with a command")
	}
	closed, ok := cmd().(DialogClosedMsg)
	if !ok {
		t.Fatalf("command produced %T, want DialogClosedMsg", cmd())
	}
	want := DialogClosedMsg{Widget: "confirm", Button: "Discard"}
	if closed != want {
		t.Errorf("closed = %+v, want %+v", closed, want)
	}
	if dialog.IsOpen() {
		t.Error("dialog still open after activation")
	}
	if id := currentID(t, scope); id != "x" {
		t.Errorf("focus = %q, want restored to the opener", id)
	}
}

func TestDialogEscapeRestores(t *testing.T) {
	scope, _, dialog := testDialog()
	dialog.Open()
	scope.RouteKey(keyTab())

	handled, cmd := dialog.HandleKey(keyEsc())
	if !handled || cmd == nil {
		t.Fatal("esc should dismiss with a command")
	}
	if closed := cmd().(DialogClosedMsg); closed.Button != "" {
		t.Errorf("button = %q, want empty on dismiss", closed.Button)
	}
	if id := currentID(t, scope); id != "x" {
		t.Errorf("focus = %q, want restored to the opener", id)
	}

	if handled, _ := dialog.HandleKey(keyEsc()); handled {
		t.Error("closed dialog should not consume keys")
	}
}

func TestDialogNesting(t *testing.T) {
	scope, stack, dialog := testDialog()
	inner := NewDialog("really", "Really?", "No undo.",
		scope, stack, NewButton("r1", "Yes"), NewButton("r2", "No"))

	if !dialog.Open() {
		t.Fatal("outer open failed")
	}
	scope.RouteKey(keyTab())
	if !inner.Open() {
		t.Fatal("inner open failed")
	}

	if id := currentID(t, scope); id != "r1" {
		t.Fatalf("focus = %q, want the inner dialog's first button", id)
	}

	inner.HandleKey(keyEsc())
	if id := currentID(t, scope); id != "b2" {
		t.Fatalf("focus = %q, want back on the outer dialog's button", id)
	}

	dialog.HandleKey(keyEsc())
	if id := currentID(t, scope); id != "x" {
		t.Fatalf("focus = %q, want back outside", id)
	}
}

func TestDialogWithoutButtonsStaysClosed(t *testing.T) {
	scope := focus.NewScope()
	stack := focus.NewStack(scope)
	outside := NewButton("x", "Outside")
	scope.Attach(outside)
	scope.Focus("x")

	dialog := NewDialog("empty", "Empty", "", scope, stack)
	if dialog.Open() {
		t.Fatal("a dialog with no buttons has nothing to focus")
	}
	if id := currentID(t, scope); id != "x" {
		t.Errorf("focus = %q, want unchanged", id)
	}
}

func TestDialogOpenTwice(t *testing.T) {
	_, _, dialog := testDialog()
	dialog.Open()
	if dialog.Open() {
		t.Fatal("second open should report failure")
	}
}

func TestDialogOverlayLines(t *testing.T) {
	_, _, dialog := testDialog()

	if lines, _, _ := dialog.OverlayLines(theme.Default, 80, 24); lines != nil {
		t.Fatal("closed dialog should render nothing")
	}

	dialog.Open()
	lines, anchorX, anchorY := dialog.OverlayLines(theme.Default, 80, 24)
	if len(lines) == 0 {
		t.Fatal("open dialog rendered nothing")
	}
	if anchorX <= 0 || anchorY <= 0 {
		t.Errorf("anchor = (%d,%d), want centered on an 80x24 screen", anchorX, anchorY)
	}

	flat := ansi.Strip(strings.Join(lines, "\n"))
	if !strings.Contains(flat, "Discard changes?") {
		t.Error("overlay missing the title")
	}
	for _, label := range []string{"[ Save ]", "[ Discard ]", "[ Cancel ]"} {
		if !strings.Contains(flat, label) {
			t.Errorf("overlay missing button %q", label)
		}
	}
	for _, line := range lines {
		if ansi.StringWidth(line) != ansi.StringWidth(lines[0]) {
			t.Errorf("ragged overlay line: %q", ansi.Strip(line))
		}
	}
}
