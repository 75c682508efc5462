package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/erwinh22/free-coding-models-sub000/internal/errors"
)

// PickerItem describes one selectable endpoint in the interactive picker.
type PickerItem struct {
	ID       string
	Label    string
	Provider string
	Tier     string
	Verdict  string
	Latency  string
	Favorite bool
}

// pickerEntry implements list.Item for the Bubbles list component.
type pickerEntry struct {
	item PickerItem
}

func (e pickerEntry) Title() string {
	title := e.item.Label
	if e.item.Favorite {
		title = SymbolStar + " " + title
	}
	return title
}

func (e pickerEntry) Description() string {
	parts := []string{e.item.Provider, e.item.Tier}
	if e.item.Verdict != "" {
		parts = append(parts, e.item.Verdict)
	}
	if e.item.Latency != "" {
		parts = append(parts, e.item.Latency)
	}
	return strings.Join(parts, " | ")
}

func (e pickerEntry) FilterValue() string {
	return strings.Join([]string{e.item.Label, e.item.Provider, e.item.ID}, " ")
}

// pickerKeyMap defines key bindings for the endpoint picker.
type pickerKeyMap struct {
	Enter key.Binding
	Quit  key.Binding
}

var pickerKeys = pickerKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "cancel"),
	),
}

// PickerModel is a Bubble Tea model for selecting an endpoint.
type PickerModel struct {
	list     list.Model
	items    []PickerItem
	selected *PickerItem
	quitting bool
}

// NewPickerModel creates a new endpoint picker model.
func NewPickerModel(items []PickerItem) PickerModel {
	entries := make([]list.Item, len(items))
	for i, it := range items {
		entries[i] = pickerEntry{item: it}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorPrimary).
		BorderForeground(ColorSecondary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorMuted)

	l := list.New(entries, delegate, 0, 0)
	l.Title = "Select an endpoint"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 0, 1, 0)
	l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	return PickerModel{
		list:  l,
		items: items,
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Don't intercept keys while the user is filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, pickerKeys.Enter):
			if entry, ok := m.list.SelectedItem().(pickerEntry); ok {
				item := entry.item
				m.selected = &item
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, pickerKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Selected returns the picked item, or nil when the user cancelled.
func (m PickerModel) Selected() *PickerItem {
	return m.selected
}

// RunPicker shows the interactive endpoint picker and returns the choice.
// A cancelled picker returns a structured error the caller can treat as a
// clean exit.
func RunPicker(items []PickerItem) (*PickerItem, error) {
	if len(items) == 0 {
		return nil, errors.New(errors.ErrConfig,
			"No endpoints to pick from",
			"Enable at least one provider with 'fcm provider enable'")
	}

	p := tea.NewProgram(NewPickerModel(items), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	model, ok := final.(PickerModel)
	if !ok || model.Selected() == nil {
		return nil, errors.New(errors.ErrConfig,
			"No endpoint selected",
			"")
	}
	return model.Selected(), nil
}
