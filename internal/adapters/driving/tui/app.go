// Package tui provides an interactive terminal browser for the lexicon.
// It is a thin view over the lookup service: type a surface form or an
// identifier, pick an entry, read its glosses and occurrences.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driving"
)

// Styling.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	lemmaStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)
)

// resultItem adapts a lookup result to the bubbles list.
type resultItem struct {
	result driving.LookupResult
}

func (i resultItem) Title() string {
	return fmt.Sprintf("%s  %s", i.result.Entry.ID, i.result.Entry.Lemma)
}

func (i resultItem) Description() string {
	if len(i.result.Entry.Definitions) == 0 {
		return ""
	}
	return i.result.Entry.Definitions[0].Gloss
}

func (i resultItem) FilterValue() string {
	return i.result.Entry.Lemma
}

// resultsMsg carries lookup results back into the update loop.
type resultsMsg struct {
	results []driving.LookupResult
	err     error
}

// Model is the bubbletea model for the lookup browser.
type Model struct {
	lookup driving.LookupService

	input   textinput.Model
	results list.Model

	selected *driving.LookupResult
	err      error
	width    int
	height   int
}

// New creates the lookup browser model.
func New(lookup driving.LookupService) *Model {
	input := textinput.New()
	input.Placeholder = "surface form or id (e.g. אב or H00001)"
	input.Focus()
	input.CharLimit = 64

	delegate := list.NewDefaultDelegate()
	results := list.New(nil, delegate, 0, 0)
	results.Title = "Entries"
	results.SetShowStatusBar(false)
	results.SetFilteringEnabled(false)

	return &Model{lookup: lookup, input: input, results: results}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// lookupCmd resolves the query off the update loop.
func (m *Model) lookupCmd(query string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if _, err := domain.ParseEntryID(query); err == nil {
			result, err := m.lookup.ByID(ctx, query)
			if err != nil {
				return resultsMsg{err: err}
			}
			return resultsMsg{results: []driving.LookupResult{*result}}
		}

		results, err := m.lookup.BySurface(ctx, query)
		return resultsMsg{results: results, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.SetSize(msg.Width/2-4, msg.Height-6)
		return m, nil

	case resultsMsg:
		m.err = msg.err
		m.selected = nil
		items := make([]list.Item, len(msg.results))
		for i := range msg.results {
			items[i] = resultItem{result: msg.results[i]}
		}
		return m, m.results.SetItems(items)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.input.Focused() {
				return m, tea.Quit
			}
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "enter":
			if m.input.Focused() {
				query := strings.TrimSpace(m.input.Value())
				if query == "" {
					return m, nil
				}
				m.input.Blur()
				return m, m.lookupCmd(query)
			}
			if item, ok := m.results.SelectedItem().(resultItem); ok {
				selected := item.result
				m.selected = &selected
			}
			return m, nil

		case "esc":
			if !m.input.Focused() {
				m.selected = nil
				m.input.Focus()
				return m, textinput.Blink
			}
		}
	}

	var cmd tea.Cmd
	if m.input.Focused() {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Otzar lexicon browser"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
		return b.String()
	}

	left := m.results.View()
	right := m.detailView()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", borderStyle.Render(right)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter select · esc back · q quit"))
	return b.String()
}

// detailView renders the selected entry's glosses and occurrences.
func (m *Model) detailView() string {
	if m.selected == nil {
		return mutedStyle.Render("select an entry")
	}

	entry := m.selected.Entry
	var b strings.Builder
	b.WriteString(lemmaStyle.Render(fmt.Sprintf("%s (%s)", entry.Lemma, entry.ID)))
	b.WriteString("\n")
	if entry.POS != "" {
		b.WriteString(mutedStyle.Render(entry.POS))
		b.WriteString("\n")
	}
	for _, def := range entry.Definitions {
		b.WriteString(fmt.Sprintf("• %s", def.Gloss))
		if def.Source != "" {
			b.WriteString(mutedStyle.Render(fmt.Sprintf(" [%s]", def.Source)))
		}
		b.WriteString("\n")
	}
	if len(entry.RelatedForms) > 0 {
		b.WriteString(mutedStyle.Render("forms: " + strings.Join(entry.RelatedForms, ", ")))
		b.WriteString("\n")
	}

	if len(m.selected.Occurrences) == 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("no occurrences"))
		return b.String()
	}

	b.WriteString("\n")
	for _, occ := range m.selected.Occurrences {
		b.WriteString(fmt.Sprintf("%s %s %v\n", occ.Source, occ.Reference.String(), occ.OccurrenceIndices))
	}
	return b.String()
}

// Run starts the browser and blocks until the user quits.
func Run(lookup driving.LookupService) error {
	_, err := tea.NewProgram(New(lookup), tea.WithAltScreen()).Run()
	return err
}
