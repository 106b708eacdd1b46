// Package tui is the interactive list view. Every action runs one
// reload-mutate-save cycle through the todo manager.
package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/session"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

const sidebarWidth = 30

// listItem adapts an entry to bubbles/list.Item.
type listItem struct{ entry model.Entry }

func (i listItem) FilterValue() string { return i.entry.Item.Description }

// itemDelegate renders one line per item using the theme.
type itemDelegate struct {
	theme ui.Theme
	now   func() time.Time
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	fmt.Fprint(w, d.theme.ItemLine(it.entry, index == m.Index(), d.now()))
}

// Opener returns a manager over the given storage format.
type Opener func(store.Format) (*todo.Manager, error)

// Option configures a Model.
type Option func(*Model)

// WithOpener enables switching the storage format from the view.
func WithOpener(open Opener) Option {
	return func(m *Model) { m.open = open }
}

// Model is the Bubble Tea model for the list view.
type Model struct {
	mgr   *todo.Manager
	open  Opener
	sess  *session.Session
	theme ui.Theme
	keys  KeyMap

	list    list.Model
	form    form
	entries []model.Entry
	tally   model.Tally

	notice string
	err    error

	width, height int
}

// New builds the model and loads the first view.
func New(mgr *todo.Manager, sess *session.Session, theme ui.Theme, opts ...Option) Model {
	keys := DefaultKeyMap()
	l := list.New(nil, itemDelegate{theme: theme, now: mgr.Now}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = lipgloss.NewStyle()
	l.Styles.HelpStyle = theme.Muted
	l.Styles.PaginationStyle = theme.Muted
	l.SetStatusBarItemName("item", "items")
	// a, d, e, f, s and q belong to this view, not to list paging.
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page"))

	m := Model{mgr: mgr, sess: sess, theme: theme, keys: keys, list: l}
	for _, opt := range opts {
		opt(&m)
	}
	if m.open == nil {
		m.keys.Format.SetEnabled(false)
	}
	m.list.AdditionalShortHelpKeys = m.keys.extra
	m.list.AdditionalFullHelpKeys = m.keys.extra
	m.resize(80, 24)
	m.reload()
	return m
}

// Run starts the program on the alternate screen.
func Run(mgr *todo.Manager, sess *session.Session, theme ui.Theme, opts ...Option) error {
	m := New(mgr, sess, theme, opts...)
	m.resize(ui.TerminalSize(os.Stdout))
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// reload re-reads the collection and rebuilds the visible list.
func (m *Model) reload() {
	entries, tally, err := m.mgr.List(m.sess.Filter)
	if err != nil {
		m.err = err
		return
	}
	m.entries, m.tally = entries, tally
	m.sess.Clamp(len(entries))

	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, listItem{entry: e})
	}
	m.list.SetItems(items)
	m.list.Title = m.theme.Header(tally, m.sess.Filter)
	m.list.Select(m.sess.Pos)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	lw := w - sidebarWidth - 6
	if lw < 20 {
		lw = 20
	}
	lh := h - 4
	if m.sess != nil && m.sess.Mode != session.ModeList {
		lh -= 9
	}
	if lh < 3 {
		lh = 3
	}
	m.list.SetSize(lw, lh)
}

// focusPos puts the cursor on collection position pos, clearing the
// filter when the item is hidden by it.
func (m *Model) focusPos(pos int) {
	if m.sess.Focus(m.entries, pos) {
		m.list.Select(m.sess.Pos)
		return
	}
	if m.sess.Filter != model.FilterAll {
		m.sess.Filter = model.FilterAll
		m.reload()
		if m.sess.Focus(m.entries, pos) {
			m.list.Select(m.sess.Pos)
		}
	}
}

// switchFormat moves to the next storage format. Later reloads and saves go
// through the new store; on failure the current one is kept.
func (m *Model) switchFormat() {
	prev := m.sess.Format
	m.sess.CycleFormat()
	mgr, err := m.open(m.sess.Format)
	if err != nil {
		m.sess.Format = prev
		m.err = err
		return
	}
	m.mgr = mgr
	m.list.SetDelegate(itemDelegate{theme: m.theme, now: mgr.Now})
	m.reload()
	m.notice = "storage: " + string(m.sess.Format)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(ws.Width, ws.Height)
		return m, nil
	}
	if m.sess.Mode != session.ModeList {
		return m.updateForm(msg)
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	m.notice, m.err = "", nil

	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(k, m.keys.Up):
		m.sess.Up()
		m.list.Select(m.sess.Pos)

	case key.Matches(k, m.keys.Down):
		m.sess.Down(len(m.entries))
		m.list.Select(m.sess.Pos)

	case key.Matches(k, m.keys.Toggle):
		if e, ok := m.sess.Current(m.entries); ok {
			it, err := m.mgr.Toggle(e.Pos)
			if err != nil {
				m.err = err
				break
			}
			m.reload()
			if !m.sess.Focus(m.entries, e.Pos) {
				m.sess.Clamp(len(m.entries))
			}
			m.list.Select(m.sess.Pos)
			m.notice = fmt.Sprintf("%d. %s", e.Pos+1, it.Status)
		}

	case key.Matches(k, m.keys.Add):
		m.sess.StartAdd()
		m.form = newAddForm(m.mgr.Now())
		m.resize(m.width, m.height)

	case key.Matches(k, m.keys.Edit):
		if e, ok := m.sess.Current(m.entries); ok && m.sess.StartEdit(len(m.entries)) {
			m.form = newEditForm(e)
			m.resize(m.width, m.height)
		}

	case key.Matches(k, m.keys.Remove):
		if e, ok := m.sess.Current(m.entries); ok {
			if _, err := m.mgr.Remove(e.Pos); err != nil {
				m.err = err
				break
			}
			m.reload()
			m.notice = fmt.Sprintf("removed %d. %s", e.Pos+1, e.Item.Description)
		}

	case key.Matches(k, m.keys.Filter):
		m.sess.CycleFilter()
		m.reload()

	case key.Matches(k, m.keys.Format):
		m.switchFormat()

	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		m.sess.Pos = m.list.Index()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		result formResult
	)
	m.form, cmd, result = m.form.Update(msg)

	switch result {
	case formCancel:
		m.sess.Back()
		m.resize(m.width, m.height)
		return m, nil

	case formSubmit:
		it, err := m.form.item()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.notice, m.err = "", nil
		if m.sess.Mode == session.ModeAdd {
			pos, err := m.mgr.Add(it)
			if err != nil {
				m.err = err
			} else {
				m.reload()
				m.focusPos(pos)
				m.notice = "added"
			}
		} else {
			if _, err := m.mgr.Replace(m.form.pos, it); err != nil {
				m.err = err
			} else {
				m.reload()
				m.focusPos(m.form.pos)
				m.notice = "saved"
			}
		}
		m.sess.Back()
		m.resize(m.width, m.height)
		return m, nil
	}
	return m, cmd
}

func (m Model) View() string {
	left := m.list.View()
	if m.sess.Mode != session.ModeList {
		left += "\n" + m.form.View(m.theme)
	}

	side := []string{m.theme.Title.Render("Status")}
	side = append(side, m.theme.BarChart(m.tally, 10)...)
	side = append(side, "", m.theme.Muted.Render("filter: "+string(m.sess.Filter)))
	side = append(side, m.theme.Muted.Render("storage: "+string(m.sess.Format)))
	sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.theme.Panel(side))

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.theme.Panel([]string{left}), " ", sidebar)

	var footer string
	switch {
	case m.err != nil:
		footer = m.theme.Error.Render("✖ " + m.err.Error())
	case m.notice != "":
		footer = m.theme.Success.Render("✔ " + m.notice)
	}
	if footer != "" {
		body += "\n" + footer
	}
	return body
}
