// Package ui renders the diary as a Bubble Tea TUI: a month calendar with
// entry markers on the left, the selected day's answers on the right.
package ui

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harudiary/haru/internal/client/remote"
	"github.com/harudiary/haru/internal/client/state"
	"github.com/harudiary/haru/internal/dateutil"
	"github.com/harudiary/haru/internal/diary"
)

const refreshTick = 500 * time.Millisecond

// mode is the day pane's input state.
type mode int

const (
	modeBrowse mode = iota
	modeCompose
	modeEdit
	modeConfirmDelete
	modeHelp
)

// monthMarks collects the date keys of the visible month that have entries.
// The watch callback writes it from the subscription goroutine; View reads
// it on every tick.
type monthMarks struct {
	mu  sync.Mutex
	set map[string]bool
}

func (m *monthMarks) apply(entries []diary.Entry) {
	set := make(map[string]bool, len(entries))
	for _, e := range entries {
		set[e.DateKey] = true
	}
	m.mu.Lock()
	m.set = set
	m.mu.Unlock()
}

func (m *monthMarks) snapshot() map[string]bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set
}

// Options configures the UI.
type Options struct {
	Context      context.Context
	Store        *state.Store
	Remote       remote.Client
	ThemeName    string
	FirstWeekday time.Weekday
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx    context.Context
	store  *state.Store
	remote remote.Client

	keys         keyMap
	styles       Styles
	firstWeekday time.Weekday

	width  int
	height int
	ready  bool

	// the month the active watch covers
	marks       *monthMarks
	cancelMonth remote.CancelFunc
	watchYear   int
	watchMonth  time.Month

	mode   mode
	input  textinput.Model
	editID string
	selIdx int
	status string
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.CharLimit = diary.MaxContentRunes
	input.Placeholder = "your answer"

	return Model{
		ctx:          ctx,
		store:        opts.Store,
		remote:       opts.Remote,
		keys:         defaultKeyMap(),
		styles:       GetTheme(opts.ThemeName).Styles(),
		firstWeekday: opts.FirstWeekday,
		marks:        &monthMarks{},
		input:        input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tickCmd(), m.watchMonthCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.clampSelection()
		return m, tickCmd()

	case monthWatchedMsg:
		return m.handleMonthWatched(msg)

	case editDoneMsg:
		if msg.ok {
			m.mode = modeBrowse
			m.input.Blur()
			m.status = ""
		} else {
			// keep the editor open with the attempted text so the user
			// can retry
			m.status = "edit not saved, enter to retry"
		}
		return m, nil

	case deleteDoneMsg:
		m.mode = modeBrowse
		if !msg.ok {
			m.status = "delete failed"
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.mode == modeHelp {
		return m.renderHelp()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderCalendar(), m.renderDay())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeHelp {
		m.mode = modeBrowse
		return m, nil
	}
	if m.mode == modeCompose || m.mode == modeEdit {
		return m.handleInputKey(msg)
	}
	if m.mode == modeConfirmDelete {
		return m.handleConfirmDeleteKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.teardown()

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		return m, nil

	case key.Matches(msg, m.keys.Left):
		return m.moveSelectedDate(-1)

	case key.Matches(msg, m.keys.Right):
		return m.moveSelectedDate(1)

	case key.Matches(msg, m.keys.Up):
		if m.selIdx > 0 {
			m.selIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selIdx < len(m.selectedEntries())-1 {
			m.selIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevMonth):
		m.store.SetSelectedDate(shiftMonth(m.store.SelectedDate(), -1))
		return m, m.watchMonthCmd()

	case key.Matches(msg, m.keys.NextMonth):
		m.store.SetSelectedDate(shiftMonth(m.store.SelectedDate(), 1))
		return m, m.watchMonthCmd()

	case key.Matches(msg, m.keys.Today):
		m.store.SetSelectedDate(dateutil.Today())
		m.selIdx = 0
		return m, m.watchMonthCmd()

	case key.Matches(msg, m.keys.New):
		m.mode = modeCompose
		m.input.SetValue("")
		m.input.Focus()
		m.status = ""
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if entry, ok := m.selectedEntry(); ok {
			m.mode = modeEdit
			m.editID = entry.ID
			m.input.SetValue(entry.Content)
			m.input.Focus()
			m.status = ""
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selectedEntry(); ok {
			m.mode = modeConfirmDelete
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.input.Blur()
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		content := m.input.Value()
		if content == "" {
			return m, nil
		}
		if m.mode == modeEdit {
			return m, m.editCmd(m.editID, content)
		}
		// saving is optimistic: close the composer right away, the entry
		// is already visible locally
		m.mode = modeBrowse
		m.input.Blur()
		return m, m.saveCmd(content)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if entry, ok := m.selectedEntry(); ok {
			return m, m.deleteCmd(entry.ID)
		}
		m.mode = modeBrowse
		return m, nil
	default:
		m.mode = modeBrowse
		return m, nil
	}
}

func (m Model) moveSelectedDate(days int) (tea.Model, tea.Cmd) {
	key, err := dateutil.Shift(m.store.SelectedDate(), days)
	if err != nil {
		return m, nil
	}
	m.store.SetSelectedDate(key)
	m.selIdx = 0
	return m, m.watchMonthCmd()
}

func (m Model) selectedEntries() []diary.Entry {
	return m.store.EntriesFor(m.store.SelectedDate())
}

func (m Model) selectedEntry() (diary.Entry, bool) {
	entries := m.selectedEntries()
	if m.selIdx < 0 || m.selIdx >= len(entries) {
		return diary.Entry{}, false
	}
	return entries[m.selIdx], true
}

// clampSelection keeps the answer cursor in range as snapshots shrink the
// list underneath it.
func (m *Model) clampSelection() {
	if n := len(m.selectedEntries()); m.selIdx >= n {
		m.selIdx = n - 1
	}
	if m.selIdx < 0 {
		m.selIdx = 0
	}
}

// handleMonthWatched installs a freshly opened month watch, discarding it if
// the visible month moved on while the dial was in flight.
func (m Model) handleMonthWatched(msg monthWatchedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = "month watch unavailable"
		return m, nil
	}

	t, err := dateutil.Parse(m.store.SelectedDate())
	if err != nil || t.Year() != msg.year || t.Month() != msg.month {
		msg.cancel()
		return m, nil
	}

	if m.cancelMonth != nil {
		m.cancelMonth()
	}
	m.cancelMonth = msg.cancel
	m.watchYear = msg.year
	m.watchMonth = msg.month
	return m, nil
}

func (m Model) teardown() tea.Cmd {
	if m.cancelMonth != nil {
		m.cancelMonth()
	}
	return tea.Quit
}

// Messages

type tickMsg time.Time

type monthWatchedMsg struct {
	cancel remote.CancelFunc
	year   int
	month  time.Month
	err    error
}

type editDoneMsg struct{ ok bool }

type deleteDoneMsg struct{ ok bool }

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(refreshTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// watchMonthCmd opens a marker watch for the selected date's month. The
// no-op case (watch already covers it) is checked here so key handlers can
// call this unconditionally.
func (m Model) watchMonthCmd() tea.Cmd {
	t, err := dateutil.Parse(m.store.SelectedDate())
	if err != nil {
		return nil
	}
	year, month := t.Year(), t.Month()
	if m.cancelMonth != nil && year == m.watchYear && month == m.watchMonth {
		return nil
	}
	// the outgoing month's dots must not show under the new grid while the
	// dial is in flight (or if it fails)
	m.marks.apply(nil)

	ctx, marks, r := m.ctx, m.marks, m.remote
	return func() tea.Msg {
		cancel, err := r.SubscribeMonth(ctx, year, month, marks.apply)
		return monthWatchedMsg{cancel: cancel, year: year, month: month, err: err}
	}
}

func (m Model) saveCmd(content string) tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		store.SaveAnswer(ctx, content)
		return nil
	}
}

func (m Model) editCmd(id, content string) tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return editDoneMsg{ok: store.EditAnswer(ctx, id, content)}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return deleteDoneMsg{ok: store.DeleteAnswer(ctx, id)}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}
