// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package guide

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tact-project/tact/lib/announce"
	"github.com/tact-project/tact/lib/focus"
	"github.com/tact-project/tact/lib/overlay"
	"github.com/tact-project/tact/lib/theme"
	"github.com/tact-project/tact/lib/widget"
)

// Pane identifiers in the viewer's focus ring.
const (
	topicsPane  = "topics"
	contentPane = "content"
)

// pane is the minimal focusable element for the viewer's two panes.
type pane string

func (p pane) ID() string      { return string(p) }
func (p pane) Focusable() bool { return true }

// Topic list pane sizing and the footer reserved for the announcement
// and key help lines.
const (
	topicsMinWidth = 24
	topicsMaxWidth = 34
	footerHeight   = 2
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

// Viewer is the guide reading model: a topic list on the left, the
// rendered guide on the right, and a focus ring between the two panes.
// Arrow keys move within the focused pane; the topic under the cursor
// renders immediately, so browsing reads as you move.
type Viewer struct {
	palette   theme.Theme
	announcer *announce.Announcer
	keys      KeyMap

	topics  []Topic
	visible []TopicMatch
	cursor  int

	filter TopicFilter

	ring  focus.Ring
	focus string

	// current indexes topics for the guide shown in the content pane,
	// -1 when the filter matches nothing.
	current  int
	viewport viewport.Model

	width  int
	height int
	ready  bool

	tickRunning bool
}

// NewViewer creates a viewer over the given topics with the first one
// selected. A nil announcer silences topic and pane announcements.
func NewViewer(topics []Topic, palette theme.Theme, keys KeyMap, announcer *announce.Announcer) Viewer {
	viewer := Viewer{
		palette:   palette,
		announcer: announcer,
		keys:      keys,
		topics:    topics,
		ring:      focus.NewRing([]focus.Element{pane(topicsPane), pane(contentPane)}),
		focus:     topicsPane,
		current:   -1,
	}
	viewer.visible = viewer.filter.Apply(topics)
	if len(viewer.visible) > 0 {
		viewer.current = viewer.visible[0].Index
	}
	return viewer
}

// Select moves the selection to the topic with the given slug,
// reporting whether it exists. Used by the command line argument and
// session restore before the program starts; it does not announce.
func (viewer *Viewer) Select(slug string) bool {
	for position, match := range viewer.visible {
		if viewer.topics[match.Index].Slug == slug {
			viewer.cursor = position
			viewer.current = match.Index
			viewer.rerenderContent()
			return true
		}
	}
	return false
}

// SelectedSlug returns the slug of the topic in the content pane, for
// session persistence. Empty when the filter matches nothing.
func (viewer Viewer) SelectedSlug() string {
	if viewer.current < 0 {
		return ""
	}
	return viewer.topics[viewer.current].Slug
}

func (viewer Viewer) Init() tea.Cmd {
	return nil
}

func (viewer Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch message := msg.(type) {
	case tea.WindowSizeMsg:
		viewer.resize(message.Width, message.Height)
		return viewer, nil

	case announceTickMsg:
		return viewer.handleAnnounceTick()

	case tea.KeyMsg:
		return viewer.handleKey(message)
	}
	return viewer, nil
}

func (viewer Viewer) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// When the filter input has focus, every keystroke goes there
	// first: printable characters are query text, not commands.
	if viewer.filter.Active {
		return viewer.handleFilterKeys(message)
	}

	switch {
	case key.Matches(message, viewer.keys.Quit):
		return viewer, tea.Quit

	case key.Matches(message, viewer.keys.FocusNext):
		return viewer.switchPane(viewer.ring.Next(viewer.focus))

	case key.Matches(message, viewer.keys.FocusPrevious):
		return viewer.switchPane(viewer.ring.Previous(viewer.focus))

	case key.Matches(message, viewer.keys.Filter):
		if viewer.focus == topicsPane {
			viewer.filter.Active = true
			return viewer, nil
		}
	}

	if viewer.focus == topicsPane {
		return viewer.handleTopicsKeys(message)
	}
	return viewer.handleContentKeys(message)
}

// handleFilterKeys processes keystrokes while the filter input has
// focus.
func (viewer Viewer) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return viewer, tea.Quit

	case key.Matches(message, viewer.keys.Dismiss):
		// Esc: clear the query first; a second Esc leaves filter mode.
		if viewer.filter.Input != "" {
			viewer.filter.Input = ""
			cmd := viewer.refilter()
			return viewer, cmd
		}
		viewer.filter.Active = false
		return viewer, nil

	case message.Type == tea.KeyEnter:
		// Confirm the narrowed list and return focus to it.
		viewer.filter.Active = false
		return viewer, nil

	case message.Type == tea.KeyBackspace:
		if viewer.filter.HandleBackspace() {
			cmd := viewer.refilter()
			return viewer, cmd
		}
		return viewer, nil

	case message.Type == tea.KeySpace:
		viewer.filter.HandleRune(' ')
		cmd := viewer.refilter()
		return viewer, cmd

	case message.Type == tea.KeyRunes && !message.Alt:
		for _, character := range message.Runes {
			viewer.filter.HandleRune(character)
		}
		cmd := viewer.refilter()
		return viewer, cmd
	}
	return viewer, nil
}

func (viewer Viewer) handleTopicsKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(message, viewer.keys.Up):
		cmd = viewer.setCursor(viewer.cursor - 1)
	case key.Matches(message, viewer.keys.Down):
		cmd = viewer.setCursor(viewer.cursor + 1)
	case key.Matches(message, viewer.keys.Home):
		cmd = viewer.setCursor(0)
	case key.Matches(message, viewer.keys.End):
		cmd = viewer.setCursor(len(viewer.visible) - 1)
	case key.Matches(message, viewer.keys.Activate):
		// Settle in to read: focus moves to the content pane.
		viewer.focus = contentPane
		cmd = viewer.announce(viewer.currentTitle() + " pane")
	}
	return viewer, cmd
}

func (viewer Viewer) handleContentKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, viewer.keys.Up):
		viewer.viewport.LineUp(1)
	case key.Matches(message, viewer.keys.Down):
		viewer.viewport.LineDown(1)
	case key.Matches(message, viewer.keys.PageUp):
		viewer.viewport.HalfViewUp()
	case key.Matches(message, viewer.keys.PageDown):
		viewer.viewport.HalfViewDown()
	case key.Matches(message, viewer.keys.Home):
		viewer.viewport.GotoTop()
	case key.Matches(message, viewer.keys.End):
		viewer.viewport.GotoBottom()
	}
	return viewer, nil
}

func (viewer Viewer) switchPane(target focus.Element) (tea.Model, tea.Cmd) {
	viewer.focus = target.ID()
	label := "Topics pane"
	if viewer.focus == contentPane {
		label = viewer.currentTitle() + " pane"
	}
	cmd := viewer.announce(label)
	return viewer, cmd
}

// setCursor clamps the topic cursor and renders the newly selected
// topic.
func (viewer *Viewer) setCursor(target int) tea.Cmd {
	if len(viewer.visible) == 0 {
		return nil
	}
	if target < 0 {
		target = 0
	}
	if target > len(viewer.visible)-1 {
		target = len(viewer.visible) - 1
	}
	viewer.cursor = target
	return viewer.syncContent()
}

// refilter re-scores the topics and snaps the cursor to the best match
// so the strongest result is immediately visible.
func (viewer *Viewer) refilter() tea.Cmd {
	viewer.visible = viewer.filter.Apply(viewer.topics)
	viewer.cursor = 0
	return viewer.syncContent()
}

// syncContent renders the topic under the cursor into the content pane
// when the selection actually changed, announcing the new topic.
func (viewer *Viewer) syncContent() tea.Cmd {
	if len(viewer.visible) == 0 {
		if viewer.current >= 0 {
			viewer.current = -1
			empty := lipgloss.NewStyle().
				Foreground(viewer.palette.FaintText).
				Render("No topic matches the filter.")
			viewer.viewport.SetContent(empty)
		}
		return nil
	}

	if viewer.cursor >= len(viewer.visible) {
		viewer.cursor = len(viewer.visible) - 1
	}
	target := viewer.visible[viewer.cursor].Index
	if target == viewer.current {
		return nil
	}

	viewer.current = target
	viewer.rerenderContent()
	viewer.viewport.GotoTop()
	return viewer.announce(viewer.topics[target].Title + " guide")
}

// rerenderContent regenerates the content pane at the current width,
// preserving the scroll position as closely as possible.
func (viewer *Viewer) rerenderContent() {
	if viewer.current < 0 || viewer.viewport.Width <= 0 {
		return
	}
	previousOffset := viewer.viewport.YOffset

	source := viewer.topics[viewer.current].Source
	viewer.viewport.SetContent(Render(source, viewer.viewport.Width, viewer.palette))

	maxOffset := viewer.viewport.TotalLineCount() - viewer.viewport.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if previousOffset > maxOffset {
		previousOffset = maxOffset
	}
	viewer.viewport.SetYOffset(previousOffset)
}

// announce forwards a polite notice and starts the redraw ticker if it
// is not already running.
func (viewer *Viewer) announce(text string) tea.Cmd {
	if viewer.announcer == nil {
		return nil
	}
	viewer.announcer.Announce(text, announce.Polite, time.Now())
	if viewer.tickRunning {
		return nil
	}
	viewer.tickRunning = true
	return scheduleAnnounceTick()
}

func (viewer Viewer) handleAnnounceTick() (tea.Model, tea.Cmd) {
	if viewer.announcer == nil || !viewer.announcer.Active(time.Now()) {
		viewer.tickRunning = false
		return viewer, nil
	}
	return viewer, scheduleAnnounceTick()
}

func (viewer *Viewer) resize(width, height int) {
	viewer.width = width
	viewer.height = height
	viewer.ready = width > 0 && height > 0

	// Content inner width: total minus the topics pane, the content
	// pane's border and padding, and the scrollbar column with its gap.
	viewer.viewport.Width = width - viewer.topicsOuterWidth() - 6
	if viewer.viewport.Width < 10 {
		viewer.viewport.Width = 10
	}
	viewer.viewport.Height = viewer.paneInnerHeight()
	viewer.rerenderContent()
}

// topicsOuterWidth is the outer width of the topic list pane,
// proportional with bounds, never past half the screen.
func (viewer Viewer) topicsOuterWidth() int {
	width := viewer.width / 4
	if width < topicsMinWidth {
		width = topicsMinWidth
	}
	if width > topicsMaxWidth {
		width = topicsMaxWidth
	}
	if width > viewer.width/2 {
		width = viewer.width / 2
	}
	return width
}

func (viewer Viewer) paneInnerHeight() int {
	inner := viewer.height - footerHeight - 2
	if inner < 1 {
		inner = 1
	}
	return inner
}

func (viewer Viewer) currentTitle() string {
	if viewer.current < 0 {
		return "Content"
	}
	return viewer.topics[viewer.current].Title
}

func (viewer Viewer) View() string {
	if !viewer.ready {
		return ""
	}
	now := time.Now()

	listOuter := viewer.topicsOuterWidth()
	innerHeight := viewer.paneInnerHeight()

	left := viewer.framePane(
		viewer.viewTopics(listOuter-4, innerHeight),
		listOuter, innerHeight, viewer.focus == topicsPane)

	scrollbar := overlay.Scrollbar(viewer.palette, innerHeight,
		viewer.viewport.TotalLineCount(), viewer.viewport.Height,
		viewer.viewport.YOffset, viewer.focus == contentPane)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		viewer.viewport.View(), " ", scrollbar)
	right := viewer.framePane(body,
		viewer.width-listOuter, innerHeight, viewer.focus == contentPane)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := ""
	if viewer.announcer != nil {
		status = viewer.announcer.View(viewer.palette, viewer.width, now)
	}
	help := lipgloss.NewStyle().
		Foreground(viewer.palette.HelpText).
		Render(ansi.Truncate(viewer.helpLine(), viewer.width, "…"))

	return panes + "\n" + status + "\n" + help
}

// viewTopics renders the topic rows with the filter bar on the last
// line when a query is active or pending.
func (viewer Viewer) viewTopics(innerWidth, innerHeight int) string {
	focused := viewer.focus == topicsPane

	filterBar := viewer.filter.View(viewer.palette, innerWidth)
	rowCount := innerHeight
	if filterBar != "" {
		rowCount--
	}

	start := 0
	if rowCount > 0 && viewer.cursor >= rowCount {
		start = viewer.cursor - rowCount + 1
	}

	base := lipgloss.NewStyle().Foreground(viewer.palette.NormalText)
	matchStyle := base.Background(viewer.palette.MatchBackground)
	if viewer.palette.Mono {
		matchStyle = base.Bold(true)
	}

	var lines []string
	for offset := 0; offset < rowCount && start+offset < len(viewer.visible); offset++ {
		index := start + offset
		match := viewer.visible[index]
		title := viewer.topics[match.Index].Title

		var line string
		if index == viewer.cursor {
			row := ansi.Truncate("> "+title, innerWidth, "…")
			if focused {
				line = widget.SelectionStyle(viewer.palette).Render(row)
			} else {
				line = base.Render(row)
			}
		} else {
			row := widget.Highlight(title, match.Positions, base, matchStyle)
			line = "  " + ansi.Truncate(row, innerWidth-2, "…")
		}
		lines = append(lines, line)
	}

	if len(viewer.visible) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(viewer.palette.FaintText).
			Render("no matches"))
	}

	for len(lines) < rowCount {
		lines = append(lines, "")
	}
	if filterBar != "" {
		lines = append(lines, filterBar)
	}
	return strings.Join(lines, "\n")
}

// framePane wraps pane content in a border that carries the focus
// indication. The mono theme thickens the focused border instead of
// recoloring it.
func (viewer Viewer) framePane(content string, outerWidth, innerHeight int, focused bool) string {
	border := lipgloss.RoundedBorder()
	if viewer.palette.Mono && focused {
		border = lipgloss.ThickBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(viewer.palette.FocusBorder(focused)).
		Padding(0, 1).
		Width(outerWidth - 2).
		Height(innerHeight).
		Render(content)
}

func (viewer Viewer) helpLine() string {
	bindings := []key.Binding{
		viewer.keys.FocusNext,
		viewer.keys.Filter,
		viewer.keys.Activate,
		viewer.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ·  ")
}
