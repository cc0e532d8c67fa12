package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"posweights/internal/domain"
)

// Live re-estimates a word's distribution against the tagger so the
// browser can show stored and observed weights side by side.
type Live interface {
	Estimate(word string) domain.Distribution
}

// Model is the Bubble Tea model for the table browser.
type Model struct {
	table    domain.WordTable
	words    []string
	live     Live
	input    textinput.Model
	viewport viewport.Model
	matches  []string
	status   string
	cursor   int
	ready    bool
}

// New creates a browser over table. live may be nil when no tagger model
// data is available; the browser then shows stored weights only.
func New(table domain.WordTable, live Live) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a word and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)

	words := make([]string, 0, len(table))
	for w := range table {
		words = append(words, w)
	}
	sort.Strings(words)

	return Model{
		table:    table,
		words:    words,
		live:     live,
		input:    ti,
		viewport: vp,
		status:   fmt.Sprintf("Loaded %d words. Type to look one up.", len(words)),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header + status + query box + spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentWord())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				m.matches = m.matchWords(q)
				m.cursor = 0
				if len(m.matches) == 0 {
					m.status = fmt.Sprintf("No words match %q", q)
				} else {
					m.status = fmt.Sprintf("%d words match %q", len(m.matches), q)
				}
				m.viewport.SetContent(m.renderCurrentWord())
				return m, nil
			}
		case "down":
			if len(m.matches) > 0 {
				m.cursor = (m.cursor + 1) % len(m.matches)
				m.viewport.SetContent(m.renderCurrentWord())
				return m, nil
			}
		case "up":
			if len(m.matches) > 0 {
				m.cursor = (m.cursor - 1 + len(m.matches)) % len(m.matches)
				m.viewport.SetContent(m.renderCurrentWord())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the currently selected word.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("POS Weight Browser")
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	result := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + result + "\n" + input + "\n" + status
}

// matchWords returns the table words equal to or prefixed by q,
// exact match first.
func (m Model) matchWords(q string) []string {
	q = strings.ToLower(q)
	var exact, prefixed []string
	for _, w := range m.words {
		lw := strings.ToLower(w)
		switch {
		case lw == q:
			exact = append(exact, w)
		case strings.HasPrefix(lw, q):
			prefixed = append(prefixed, w)
		}
	}
	return append(exact, prefixed...)
}

func (m Model) renderCurrentWord() string {
	if len(m.matches) == 0 {
		return "No word selected."
	}
	word := m.matches[m.cursor]
	title := fmt.Sprintf("Word %d/%d  %s", m.cursor+1, len(m.matches), wordStyle.Render(word))

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString("Stored weights:\n")
	b.WriteString(renderDistribution(m.table[word]))
	if m.live != nil {
		b.WriteString("\nObserved weights (live):\n")
		b.WriteString(renderDistribution(m.live.Estimate(word)))
	}
	return b.String()
}

func renderDistribution(d domain.Distribution) string {
	if len(d) == 0 {
		return "  (no categories)\n"
	}
	cats := make([]string, 0, len(d))
	for c := range d {
		cats = append(cats, string(c))
	}
	// heaviest first, label order breaking ties
	sort.Slice(cats, func(i, j int) bool {
		wi, wj := d[domain.Category(cats[i])], d[domain.Category(cats[j])]
		if wi != wj {
			return wi > wj
		}
		return cats[i] < cats[j]
	})
	var b strings.Builder
	for _, c := range cats {
		fmt.Fprintf(&b, "  %-6s %6.3f  %s\n", c, d[domain.Category(c)], bar(d[domain.Category(c)]))
	}
	return b.String()
}

func bar(w float64) string {
	if w < 0 {
		w = -w
	}
	n := int(w * 20)
	if n > 20 {
		n = 20
	}
	return barStyle.Render(strings.Repeat("█", n))
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	wordStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
