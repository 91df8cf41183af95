package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo-api/internal/client/viewmodel"
	"todo-api/internal/domain/entity"
)

// listItem adapts a Todo to bubbles/list.Item
type listItem struct {
	todo entity.Todo
}

func (i listItem) titleText() string {
	box := boxUnchecked
	if i.todo.Completed {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.todo.Title)
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.titleText() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Title }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	boxStyled := mutedStyle.Render(boxUnchecked)
	textStyled := it.todo.Title
	if it.todo.Completed {
		boxStyled = successStyle.Render(boxChecked)
		textStyled = doneStyle.Render(it.todo.Title)
	}

	line := fmt.Sprintf("%s %s", boxStyled, textStyled)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// syncMsg reports that a view-model operation settled and the cache may have
// changed. err carries a surfaced failure (e.g. create validation).
type syncMsg struct {
	err error
}

// Model renders the view-model's cache. Every server interaction goes through
// the view model; the list widget is rebuilt from its snapshot on each sync.
type Model struct {
	vm   *viewmodel.ViewModel
	list list.Model

	width  int
	height int

	adding bool
	ti     textinput.Model
	addErr string
}

func NewModel(vm *viewmodel.ViewModel) Model {
	l := list.New([]list.Item{}, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	reloadBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{addBind, toggleBind, deleteBind, reloadBind}
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo title..."
	ti.CharLimit = 200

	return Model{vm: vm, list: l, ti: ti}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		m.vm.Load()
		return syncMsg{}
	}
}

func (m Model) createCmd(title string) tea.Cmd {
	return func() tea.Msg {
		return syncMsg{err: m.vm.Create(title)}
	}
}

func (m Model) toggleCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return syncMsg{err: m.vm.Toggle(id)}
	}
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return syncMsg{err: m.vm.Delete(id)}
	}
}

func (m Model) selectedID() (int64, bool) {
	i := m.list.Index()
	items := m.list.Items()
	if i < 0 || i >= len(items) {
		return 0, false
	}
	li, ok := items[i].(listItem)
	if !ok {
		return 0, false
	}
	return li.todo.ID, true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-2, msg.Height-6)
		return m, nil

	case syncMsg:
		if msg.err != nil && msg.err != viewmodel.ErrRequestInFlight {
			m.addErr = msg.err.Error()
		}
		snap := m.vm.Snapshot()
		items := make([]list.Item, 0, len(snap.Todos))
		for _, t := range snap.Todos {
			items = append(items, listItem{todo: t})
		}
		m.list.SetItems(items)
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.loadCmd()
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Focus()
			return m, nil
		case " ", "enter":
			// Ignored while a toggle is outstanding so a held key can't
			// fan out duplicate requests.
			if m.vm.InFlight(viewmodel.MutationToggle) {
				return m, nil
			}
			if id, ok := m.selectedID(); ok {
				return m, m.toggleCmd(id)
			}
			return m, nil
		case "d":
			if m.vm.InFlight(viewmodel.MutationDelete) {
				return m, nil
			}
			if id, ok := m.selectedID(); ok {
				return m, m.deleteCmd(id)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.ti.Value())
		if title == "" {
			m.addErr = "Title cannot be empty"
			return m, nil
		}
		if m.vm.InFlight(viewmodel.MutationCreate) {
			return m, nil
		}
		m.adding = false
		m.addErr = ""
		m.ti.SetValue("")
		m.ti.Blur()
		return m, m.createCmd(title)
	case "esc":
		m.adding = false
		m.addErr = ""
		m.ti.SetValue("")
		m.ti.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	snap := m.vm.Snapshot()

	header := fmt.Sprintf("%s   %s  %s",
		titleStyle.Render("Todos"),
		pendingStyle.Render(snap.ItemsLeftLabel()),
		successStyle.Render(snap.CompletedLabel()),
	)

	var body string
	switch {
	case snap.State == viewmodel.StateLoading:
		body = mutedStyle.Render("Loading todos...")
	case snap.State == viewmodel.StateError:
		body = errorStyle.Render(viewmodel.LoadErrorText) + "\n" +
			mutedStyle.Render("press r to retry")
	case snap.Empty():
		body = mutedStyle.Render(viewmodel.EmptyText+" — press a to add one")
	default:
		body = m.list.View()
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(body)

	if m.adding {
		inputLine := "Add new todo"
		if m.addErr != "" {
			inputLine += " — " + errorStyle.Render(m.addErr)
		}
		b.WriteString("\n")
		b.WriteString(inputBarStyle.Render(inputLine + "\n" + m.ti.View()))
	} else if m.addErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.addErr))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("a add • space toggle • d delete • r reload • q quit"))

	return b.String()
}
