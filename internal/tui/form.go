package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/session"
	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	fieldDescription = iota
	fieldDate
	fieldTime
	fieldStatus
	fieldCount
)

type formResult int

const (
	formOpen formResult = iota
	formSubmit
	formCancel
)

// form is the inline add/edit editor.
type form struct {
	mode    session.Mode
	pos     int // collection position being edited
	inputs  [fieldStatus]textinput.Model
	choices []model.Status

	// desc is the stored description and shown what the input made of it;
	// an untouched input submits desc so sanitizing never rewrites it.
	desc, shown string

	choice  int
	focus   int
	err     string
}

func newInput(placeholder, value string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = limit // 0 is unlimited
	ti.SetValue(value)
	return ti
}

// newAddForm offers Pending and Priority only; new items are never done.
func newAddForm(now time.Time) form {
	f := form{
		mode:    session.ModeAdd,
		choices: []model.Status{model.StatusPending, model.StatusPriority},
	}
	f.inputs[fieldDescription] = newInput("What needs doing?", "", 0)
	f.inputs[fieldDate] = newInput("YYYY-MM-DD", model.DateOf(now), 10)
	f.inputs[fieldTime] = newInput("HH:MM:SS", model.TimeOf(now), 8)
	f.setFocus(fieldDescription)
	return f
}

func newEditForm(e model.Entry) form {
	f := form{
		mode:    session.ModeEdit,
		pos:     e.Pos,
		choices: model.Statuses,
	}
	f.inputs[fieldDescription] = newInput("What needs doing?", e.Item.Description, 0)
	f.desc, f.shown = e.Item.Description, f.inputs[fieldDescription].Value()
	f.inputs[fieldDate] = newInput("YYYY-MM-DD", e.Item.Date, 10)
	f.inputs[fieldTime] = newInput("HH:MM:SS", e.Item.Time, 8)
	for i, s := range f.choices {
		if s == e.Item.Status {
			f.choice = i
		}
	}
	f.setFocus(fieldDescription)
	return f
}

func (f *form) setFocus(i int) {
	f.focus = (i + fieldCount) % fieldCount
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
			f.inputs[j].CursorEnd()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f form) status() model.Status { return f.choices[f.choice] }

// item validates the fields and returns the normalized item.
func (f form) item() (model.Item, error) {
	desc := f.inputs[fieldDescription].Value()
	if f.mode == session.ModeEdit && desc == f.shown {
		desc = f.desc
	}
	it := model.Item{
		Description: strings.TrimSpace(desc),
		Status:      f.status(),
	}
	if err := it.Validate(); err != nil {
		return model.Item{}, err
	}
	var err error
	if it.Date, err = model.ParseDate(f.inputs[fieldDate].Value()); err != nil {
		return model.Item{}, err
	}
	if it.Time, err = model.ParseTime(f.inputs[fieldTime].Value()); err != nil {
		return model.Item{}, err
	}
	return it, nil
}

func (f form) Update(msg tea.Msg) (form, tea.Cmd, formResult) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			return f, nil, formSubmit
		case "esc":
			return f, nil, formCancel
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return f, nil, formOpen
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return f, nil, formOpen
		}
		if f.focus == fieldStatus {
			switch k.String() {
			case "right", "l", " ":
				f.choice = (f.choice + 1) % len(f.choices)
			case "left", "h":
				f.choice = (f.choice - 1 + len(f.choices)) % len(f.choices)
			}
			return f, nil, formOpen
		}
	}
	if f.focus == fieldStatus {
		return f, nil, formOpen
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, formOpen
}

func (f form) View(th ui.Theme) string {
	title := "Add new item"
	if f.mode == session.ModeEdit {
		title = "Edit item"
	}
	if f.err != "" {
		title += "  " + th.Error.Render(f.err)
	}
	labels := [fieldStatus]string{"TO DO", "DATE ", "TIME "}
	lines := []string{th.Title.Render(title)}
	for i, in := range f.inputs {
		lines = append(lines, th.Muted.Render(labels[i])+" "+in.View())
	}

	var opts []string
	for i, s := range f.choices {
		label := string(s)
		if i == f.choice {
			label = th.StatusStyle(s).UnsetStrikethrough().Reverse(true).Render(" " + label + " ")
		} else {
			label = th.Muted.Render(" " + label + " ")
		}
		opts = append(opts, label)
	}
	marker := "  "
	if f.focus == fieldStatus {
		marker = "> "
	}
	lines = append(lines, th.Muted.Render("STATUS")+" "+marker+strings.Join(opts, " "))
	lines = append(lines, th.Muted.Render("tab next field · ←/→ status · enter confirm · esc cancel"))
	return th.Panel(lines)
}
