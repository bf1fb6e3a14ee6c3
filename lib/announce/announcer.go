// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package announce

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tact-project/tact/lib/theme"
)

// DefaultVisibleDuration is how long a notice stays on the status line
// before the next queued notice (or nothing) replaces it.
const DefaultVisibleDuration = 5 * time.Second

// Priority controls how a notice enters the announcement flow,
// mirroring the polite/assertive distinction of live regions.
type Priority int

const (
	// Polite notices queue behind whatever is currently visible.
	Polite Priority = iota
	// Assertive notices discard the queue and replace the current
	// notice immediately.
	Assertive
)

// String returns the priority name for logs.
func (priority Priority) String() string {
	if priority == Assertive {
		return "assertive"
	}
	return "polite"
}

// notice is one queued or visible announcement.
type notice struct {
	text     string
	priority Priority
	shownAt  time.Time // zero until surfaced
}

// Announcer is the terminal analog of a live region: a status line
// whose content changes are surfaced without moving focus. Widgets
// announce state transitions ("expanded", "3 suggestions"); the host
// renders View on every frame.
//
// Time is passed in explicitly, so the announcer runs no timers and
// starts no goroutines; the host re-renders on its own tick while
// Active reports true.
type Announcer struct {
	visibleFor time.Duration
	hold       bool

	current *notice
	queue   []notice
}

// New returns an announcer whose notices stay visible for the given
// duration. A zero or negative duration selects
// DefaultVisibleDuration.
func New(visibleFor time.Duration) *Announcer {
	if visibleFor <= 0 {
		visibleFor = DefaultVisibleDuration
	}
	return &Announcer{visibleFor: visibleFor}
}

// SetHold switches timed expiry off: each notice stays until the next
// one replaces it. Used when the reduce-motion preference is set, so
// nothing disappears on a timer the reader cannot control.
func (announcer *Announcer) SetHold(hold bool) {
	announcer.hold = hold
}

// SetVisibleFor changes the notice duration. Applies from the next
// expiry check; a zero or negative duration selects
// DefaultVisibleDuration. Used when configuration reloads while the
// program is running.
func (announcer *Announcer) SetVisibleFor(visibleFor time.Duration) {
	if visibleFor <= 0 {
		visibleFor = DefaultVisibleDuration
	}
	announcer.visibleFor = visibleFor
}

// Announce adds a notice. Assertive notices flush the queue and take
// the line immediately. Polite notices wait their turn; a polite
// notice identical to the most recently queued text is dropped, since
// repeating it adds nothing for the reader.
func (announcer *Announcer) Announce(text string, priority Priority, now time.Time) {
	if text == "" {
		return
	}

	if priority == Assertive {
		announcer.queue = nil
		announcer.current = &notice{text: text, priority: Assertive, shownAt: now}
		return
	}

	announcer.advance(now)
	if announcer.current == nil {
		announcer.current = &notice{text: text, priority: Polite, shownAt: now}
		return
	}
	if announcer.current.text == text && len(announcer.queue) == 0 {
		return
	}
	if n := len(announcer.queue); n > 0 && announcer.queue[n-1].text == text {
		return
	}
	announcer.queue = append(announcer.queue, notice{text: text, priority: Polite})
}

// Current returns the visible notice after advancing expiry. The bool
// reports whether anything is visible.
func (announcer *Announcer) Current(now time.Time) (string, Priority, bool) {
	announcer.advance(now)
	if announcer.current == nil {
		return "", Polite, false
	}
	return announcer.current.text, announcer.current.priority, true
}

// Active reports whether the announcer still needs render ticks: a
// notice is visible or more are queued.
func (announcer *Announcer) Active(now time.Time) bool {
	announcer.advance(now)
	return announcer.current != nil || len(announcer.queue) > 0
}

// Pending returns the number of queued notices, not counting the
// visible one.
func (announcer *Announcer) Pending() int {
	return len(announcer.queue)
}

// Clear discards the visible notice and the queue.
func (announcer *Announcer) Clear() {
	announcer.current = nil
	announcer.queue = nil
}

// advance expires the visible notice and promotes the next queued one.
// With hold set, a visible notice only leaves when the queue pushes it
// out.
func (announcer *Announcer) advance(now time.Time) {
	for announcer.current != nil {
		expired := !announcer.hold && now.Sub(announcer.current.shownAt) >= announcer.visibleFor
		if announcer.hold && len(announcer.queue) > 0 {
			expired = now.Sub(announcer.current.shownAt) >= announcer.visibleFor
		}
		if !expired {
			return
		}
		announcer.current = nil
		if len(announcer.queue) > 0 {
			next := announcer.queue[0]
			announcer.queue = announcer.queue[1:]
			next.shownAt = now
			announcer.current = &next
		}
	}
}

// View renders the announcement line, truncated to width. Assertive
// notices get the assertive color and bold; polite ones the polite
// color. Returns the empty string when nothing is visible.
func (announcer *Announcer) View(palette theme.Theme, width int, now time.Time) string {
	text, priority, visible := announcer.Current(now)
	if !visible || width <= 0 {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(palette.AnnounceColor(priority == Assertive))
	if priority == Assertive {
		style = style.Bold(true)
	}
	return style.Render(ansi.Truncate(text, width, "…"))
}
