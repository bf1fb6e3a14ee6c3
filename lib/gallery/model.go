// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package gallery

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tact-project/tact/lib/announce"
	"github.com/tact-project/tact/lib/config"
	"github.com/tact-project/tact/lib/focus"
	"github.com/tact-project/tact/lib/overlay"
	"github.com/tact-project/tact/lib/session"
	"github.com/tact-project/tact/lib/theme"
	"github.com/tact-project/tact/lib/version"
	"github.com/tact-project/tact/lib/widget"
)

// Pane identifiers. They double as the widget IDs in the focus scope
// and as the active-pane value in the session file.
const (
	paneTree      = "tree"
	paneGrid      = "grid"
	paneCombobox  = "combobox"
	paneAccordion = "accordion"
	paneMenubar   = "menubar"
)

// Left pane sizing and the fixed chrome rows: the menu bar above the
// panes, the announcement and help lines below them.
const (
	treeMinWidth  = 26
	treeMaxWidth  = 40
	menubarHeight = 1
	footerHeight  = 2
)

// announceTickInterval drives status line redraws while a notice is
// visible, so expiry and queue advancement appear without a keypress.
const announceTickInterval = 250 * time.Millisecond

type announceTickMsg struct{}

func scheduleAnnounceTick() tea.Cmd {
	return tea.Tick(announceTickInterval, func(time.Time) tea.Msg {
		return announceTickMsg{}
	})
}

// ConfigReloadMsg delivers a validated configuration into the running
// program. The config file watcher sends it via Program.Send; the
// model applies the theme, key bindings, and announcement behavior in
// place.
type ConfigReloadMsg struct {
	Config *config.Config
}

// paneWidget is what every pane in the focus ring provides: focus
// identity plus key handling.
type paneWidget interface {
	focus.Element
	HandleKey(msg tea.KeyMsg) (bool, tea.Cmd)
}

// Model is the top-level bubbletea model for the gallery. One scope
// holds every pane; the ring orders them for Tab; the trap stack takes
// over while the dialog demo is open.
type Model struct {
	palette   theme.Theme
	keys      KeyMap
	announcer *announce.Announcer

	scope *focus.Scope
	stack *focus.Stack
	ring  focus.Ring
	panes []paneWidget

	menubar   *widget.Menubar
	tree      *widget.Tree
	grid      *widget.Grid
	combobox  *widget.Combobox
	accordion *widget.Accordion
	dialog    *widget.Dialog

	// gridColumns backs the name-based sort persistence: the session
	// file stores the sorted column by title, not index, so reordering
	// columns in a later release cannot restore the wrong one.
	gridColumns []string

	// menubarReturn is the pane recorded at the last F10 jump, so a
	// dismiss on the bar can send focus back where the user was.
	menubarReturn string

	// sessionState is the state loaded at startup. SessionState updates
	// the gallery's fields and leaves the rest (the guide's topic)
	// untouched for whichever program owns them.
	sessionState session.State

	width  int
	height int
	ready  bool

	tickRunning bool
}

// New assembles the showcase over the given configuration and palette.
// The caller picks the palette (explicit theme or terminal detection)
// and applies any saved session afterwards via RestoreSession.
func New(cfg *config.Config, palette theme.Theme) Model {
	announcer := announce.New(cfg.VisibleDuration())
	announcer.SetHold(cfg.ReduceMotion)

	scope := focus.NewScope()
	stack := focus.NewStack(scope)
	columns := demoGridColumns()

	model := Model{
		palette:     palette,
		announcer:   announcer,
		scope:       scope,
		stack:       stack,
		menubar:     widget.NewMenubar(paneMenubar, demoMenus()),
		tree:        widget.NewTree(paneTree, demoTree()),
		grid:        widget.NewGrid(paneGrid, columns, demoGridRows()),
		combobox:    widget.NewCombobox(paneCombobox, "Pattern", demoPatternOptions()),
		accordion:   widget.NewAccordion(paneAccordion, demoAccordion()),
		gridColumns: columns,
	}
	model.dialog = widget.NewDialog("confirm", "Save changes?", dialogBody,
		scope, stack,
		widget.NewButton("save", "Save"),
		widget.NewButton("discard", "Discard"),
		widget.NewButton("cancel", "Cancel"))

	model.menubar.SetAnnouncer(announcer)
	model.tree.SetAnnouncer(announcer)
	model.grid.SetAnnouncer(announcer)
	model.combobox.SetAnnouncer(announcer)
	model.accordion.SetAnnouncer(announcer)
	model.dialog.SetAnnouncer(announcer)

	model.panes = []paneWidget{
		model.tree, model.grid, model.combobox, model.accordion, model.menubar,
	}
	elements := make([]focus.Element, len(model.panes))
	for index, pane := range model.panes {
		elements[index] = pane
	}
	scope.Attach(elements...)
	model.ring = focus.NewRing(elements)

	model.applyKeys(cfg.Keys)
	scope.Focus(paneTree)
	return model
}

// applyKeys derives every key map from the defaults plus the config
// overrides and pushes them into the widgets and the trap stack.
func (model *Model) applyKeys(overrides map[string][]string) {
	model.keys = DefaultKeyMap.Apply(overrides)

	widgetKeys := widget.DefaultKeyMap.Apply(overrides)
	model.tree.SetKeys(widgetKeys)
	model.grid.SetKeys(widgetKeys)
	model.accordion.SetKeys(widgetKeys)
	model.menubar.SetKeys(widgetKeys)
	model.dialog.SetKeys(widgetKeys)

	model.stack.SetKeys(focus.DefaultKeyMap.Apply(overrides))
}

// applyConfig applies a reloaded configuration. An unknown or empty
// theme name keeps the palette chosen at startup; the watcher already
// validated, so that only covers the empty "detect" value.
func (model *Model) applyConfig(cfg *config.Config) {
	if palette, ok := theme.ByName(cfg.Theme); ok {
		model.palette = palette
	}
	model.applyKeys(cfg.Keys)
	model.announcer.SetHold(cfg.ReduceMotion)
	model.announcer.SetVisibleFor(cfg.VisibleDuration())
}

// RestoreSession applies persisted state: expanded tree branches, grid
// sort, open accordion sections, and the focused pane. Unknown values
// are ignored so a stale file never breaks startup.
func (model *Model) RestoreSession(state session.State) {
	model.sessionState = state
	model.tree.RestoreExpanded(state.TreeExpanded)
	if state.GridSortColumn != "" {
		column := slices.Index(model.gridColumns, state.GridSortColumn)
		model.grid.RestoreSort(column, state.GridSortDesc)
	}
	model.accordion.RestoreOpen(state.AccordionOpen)
	if model.ring.Contains(state.ActivePane) {
		model.scope.Focus(state.ActivePane)
	}
}

// SessionState captures the restorable state for the session file.
// Fields owned by other programs pass through from the state given to
// RestoreSession.
func (model Model) SessionState() session.State {
	state := model.sessionState
	state.ActivePane = model.activePaneID()
	state.TreeExpanded = model.tree.ExpandedPaths()

	state.GridSortColumn = ""
	state.GridSortDesc = false
	if column, descending := model.grid.SortState(); column >= 0 {
		state.GridSortColumn = model.gridColumns[column]
		state.GridSortDesc = descending
	}

	state.AccordionOpen = model.accordion.OpenSections()
	return state
}

// activePaneID returns the focused pane, falling back to the tree when
// focus sits on an overlay element such as a dialog button.
func (model Model) activePaneID() string {
	if current := model.scope.Current(); current != nil && model.ring.Contains(current.ID()) {
		return current.ID()
	}
	return paneTree
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch message := msg.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = message.Width > 0 && message.Height > 0
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)

	case announceTickMsg:
		return model.handleAnnounceTick()

	case announce.Msg:
		model.announcer.Announce(message.Text, message.Priority, time.Now())
		cmd := model.ensureTick()
		return model, cmd

	case ConfigReloadMsg:
		model.applyConfig(message.Config)
		cmd := model.announce("Configuration reloaded")
		return model, cmd

	case widget.TreeSelectMsg:
		cmd := model.announce("Selected " + message.Label)
		return model, cmd

	case widget.GridSelectMsg:
		cmd := model.announce(fmt.Sprintf("%s, row %d", message.Value, message.Row+1))
		return model, cmd

	case widget.ComboSelectMsg:
		cmd := model.announce("Pattern set to " + message.Value)
		return model, cmd

	case widget.MenuSelectMsg:
		return model.handleMenuSelect(message)

	case widget.DialogClosedMsg:
		text := "Dialog dismissed, focus restored"
		if message.Button != "" {
			text = message.Button + " chosen, focus restored"
		}
		cmd := model.announce(text)
		return model, cmd
	}
	return model, nil
}

// handleKey routes one key event: the trap stack first, the open
// dialog second, the focused pane third, and the global bindings only
// when nothing closer to the user wanted the key.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The terminal interrupt works everywhere, dialog open or not.
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}

	if model.scope.RouteKey(message) {
		return model, nil
	}

	// While the dialog is open every remaining key belongs to it;
	// unhandled ones are swallowed so background panes stay inert.
	if model.dialog.IsOpen() {
		_, cmd := model.dialog.HandleKey(message)
		tick := model.ensureTick()
		return model, tea.Batch(cmd, tick)
	}

	if pane := model.focusedPane(); pane != nil {
		handled, cmd := pane.HandleKey(message)
		if handled {
			tick := model.ensureTick()
			return model, tea.Batch(cmd, tick)
		}
	}

	switch {
	case key.Matches(message, model.keys.FocusNext):
		cmd := model.moveFocus(1)
		return model, cmd
	case key.Matches(message, model.keys.FocusPrevious):
		cmd := model.moveFocus(-1)
		return model, cmd
	case key.Matches(message, model.keys.Menu):
		cmd := model.focusMenubar()
		return model, cmd
	case key.Matches(message, model.keys.Dialog):
		cmd := model.openDialog()
		return model, cmd
	case key.Matches(message, model.keys.Dismiss):
		cmd := model.leaveMenubar()
		return model, cmd
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit
	}
	return model, nil
}

// handleMenuSelect dispatches a menu activation. The menu structure is
// the gallery's own, so titles and labels match directly.
func (model Model) handleMenuSelect(message widget.MenuSelectMsg) (tea.Model, tea.Cmd) {
	switch message.Menu {
	case menuDemo:
		switch message.Item {
		case itemOpenDialog:
			cmd := model.openDialog()
			return model, cmd
		case itemPoliteNotice:
			cmd := model.announce("A polite notice waits for the line to free up.")
			return model, cmd
		case itemAssertiveNotice:
			model.announcer.Announce("An assertive notice takes the line at once.",
				announce.Assertive, time.Now())
			cmd := model.ensureTick()
			return model, cmd
		case itemQuit:
			return model, tea.Quit
		}

	case menuTheme:
		if palette, ok := theme.ByName(message.Item); ok {
			model.palette = palette
			cmd := model.announce("Theme " + palette.Name)
			return model, cmd
		}

	case menuHelp:
		if message.Item == itemAbout {
			cmd := model.announce("tact " + version.Short())
			return model, cmd
		}
	}
	return model, nil
}

// focusedPane returns the pane owning the focus, nil when focus sits
// outside the ring.
func (model Model) focusedPane() paneWidget {
	current := model.scope.Current()
	if current == nil {
		return nil
	}
	for _, pane := range model.panes {
		if pane.ID() == current.ID() {
			return pane
		}
	}
	return nil
}

// moveFocus steps the pane ring and announces the destination. An open
// menu closes when focus leaves the bar.
func (model *Model) moveFocus(direction int) tea.Cmd {
	current := ""
	if element := model.scope.Current(); element != nil {
		current = element.ID()
	}

	var target focus.Element
	if direction > 0 {
		target = model.ring.Next(current)
	} else {
		target = model.ring.Previous(current)
	}
	if target == nil {
		return nil
	}

	model.menubar.Close()
	model.scope.Focus(target.ID())
	return model.announce(paneLabel(target.ID()))
}

// focusMenubar jumps focus to the menu bar, the F10 convention. The
// pane the jump left is recorded so a dismiss can undo it.
func (model *Model) focusMenubar() tea.Cmd {
	if current := model.activePaneID(); current != paneMenubar {
		model.menubarReturn = current
	}
	model.scope.Focus(paneMenubar)
	return model.announce(paneLabel(paneMenubar))
}

// leaveMenubar undoes the F10 jump: dismiss on the bar with no
// submenu open returns focus to the recorded pane. Anywhere else the
// key has no global meaning.
func (model *Model) leaveMenubar() tea.Cmd {
	if !model.scope.IsFocused(paneMenubar) || model.menubarReturn == "" {
		return nil
	}
	target := model.menubarReturn
	model.menubarReturn = ""
	if !model.ring.Contains(target) {
		return nil
	}
	model.scope.Focus(target)
	return model.announce(paneLabel(target))
}

// openDialog shows the confirmation demo. The dialog announces itself
// assertively; this only keeps the status line ticking.
func (model *Model) openDialog() tea.Cmd {
	if !model.dialog.Open() {
		return nil
	}
	model.menubar.Close()
	return model.ensureTick()
}

// announce forwards a polite notice and starts the redraw ticker if it
// is not already running.
func (model *Model) announce(text string) tea.Cmd {
	model.announcer.Announce(text, announce.Polite, time.Now())
	return model.ensureTick()
}

// ensureTick starts the status line ticker when the announcer has
// something to show and no tick is scheduled.
func (model *Model) ensureTick() tea.Cmd {
	if model.tickRunning || !model.announcer.Active(time.Now()) {
		return nil
	}
	model.tickRunning = true
	return scheduleAnnounceTick()
}

func (model Model) handleAnnounceTick() (tea.Model, tea.Cmd) {
	if !model.announcer.Active(time.Now()) {
		model.tickRunning = false
		return model, nil
	}
	return model, scheduleAnnounceTick()
}

// paneLabel is the name announced when focus lands on a pane.
func paneLabel(id string) string {
	switch id {
	case paneTree:
		return "Tree view"
	case paneGrid:
		return "Data grid"
	case paneCombobox:
		return "Pattern combobox"
	case paneAccordion:
		return "Accordion"
	case paneMenubar:
		return "Menu bar"
	}
	return id
}

func (model Model) View() string {
	if !model.ready {
		return ""
	}
	now := time.Now()

	bar := model.menubar.View(model.palette, model.width,
		model.scope.IsFocused(paneMenubar))

	treeOuter := model.treeOuterWidth()
	rightOuter := model.width - treeOuter
	paneArea := model.paneAreaHeight()
	gridInner, comboInner, accordionInner := rightHeights(paneArea)

	left := model.framePane(
		model.tree.View(model.palette, treeOuter-4, model.scope.IsFocused(paneTree)),
		treeOuter, paneArea-2, model.scope.IsFocused(paneTree))

	right := lipgloss.JoinVertical(lipgloss.Left,
		model.framePane(
			model.grid.View(model.palette, rightOuter-4, model.scope.IsFocused(paneGrid)),
			rightOuter, gridInner, model.scope.IsFocused(paneGrid)),
		model.framePane(
			model.combobox.View(model.palette, rightOuter-4, model.scope.IsFocused(paneCombobox)),
			rightOuter, comboInner, model.scope.IsFocused(paneCombobox)),
		model.framePane(
			model.accordion.View(model.palette, rightOuter-4, model.scope.IsFocused(paneAccordion)),
			rightOuter, accordionInner, model.scope.IsFocused(paneAccordion)),
	)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := model.announcer.View(model.palette, model.width, now)
	help := lipgloss.NewStyle().
		Foreground(model.palette.HelpText).
		Render(ansi.Truncate(model.helpLine(), model.width, "…"))

	output := bar + "\n" + panes + "\n" + status + "\n" + help

	// Floating layers, nearest the user last.
	if lines, anchorX := model.combobox.OverlayLines(model.palette); lines != nil {
		// The suggestion list splices directly under the input line:
		// past the menu bar, the grid frame, the combobox frame's top
		// border, and the input row itself.
		inputY := menubarHeight + (gridInner + 2) + 1
		output = overlay.Splice(output, lines, treeOuter+2+anchorX, inputY+1)
	}
	if lines, anchorX := model.menubar.OverlayLines(model.palette); lines != nil {
		output = overlay.Splice(output, lines, anchorX, menubarHeight)
	}
	if lines, anchorX, anchorY := model.dialog.OverlayLines(model.palette, model.width, model.height); lines != nil {
		output = overlay.Splice(output, lines, anchorX, anchorY)
	}
	return output
}

// framePane wraps pane content in a border that carries the focus
// indication. The mono theme thickens the focused border instead of
// recoloring it. Content taller than the pane is cut rather than
// allowed to push the layout apart.
func (model Model) framePane(content string, outerWidth, innerHeight int, focused bool) string {
	if innerHeight < 1 {
		innerHeight = 1
	}
	content = lipgloss.NewStyle().MaxHeight(innerHeight).Render(content)

	border := lipgloss.RoundedBorder()
	if model.palette.Mono && focused {
		border = lipgloss.ThickBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(model.palette.FocusBorder(focused)).
		Padding(0, 1).
		Width(outerWidth - 2).
		Height(innerHeight).
		Render(content)
}

// treeOuterWidth is the outer width of the left pane, proportional
// with bounds, never past half the screen.
func (model Model) treeOuterWidth() int {
	width := model.width / 3
	if width < treeMinWidth {
		width = treeMinWidth
	}
	if width > treeMaxWidth {
		width = treeMaxWidth
	}
	if width > model.width/2 {
		width = model.width / 2
	}
	return width
}

// paneAreaHeight is the rows available to the pane block between the
// menu bar and the footer.
func (model Model) paneAreaHeight() int {
	area := model.height - menubarHeight - footerHeight
	if area < 8 {
		area = 8
	}
	return area
}

// rightHeights splits the right column's rows between the grid, the
// one-line combobox, and the accordion. Frames cost two rows each.
func rightHeights(paneArea int) (gridInner, comboInner, accordionInner int) {
	comboInner = 1
	remaining := paneArea - (comboInner + 2)

	gridInner = remaining/2 - 2
	if gridInner < 1 {
		gridInner = 1
	}
	accordionInner = remaining - (gridInner + 2) - 2
	if accordionInner < 1 {
		accordionInner = 1
	}
	return gridInner, comboInner, accordionInner
}

func (model Model) helpLine() string {
	bindings := []key.Binding{
		model.keys.FocusNext,
		model.keys.Menu,
		model.keys.Dialog,
		model.keys.Activate,
		model.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ·  ")
}
