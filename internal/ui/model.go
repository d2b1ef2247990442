// Package ui is the terminal browser for the prompt directory. It fetches
// the full prompt, category and stats lists once and recomputes the visible
// slice locally through the browse pipeline on every state change.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"systemprompthub/internal/browse"
	"systemprompthub/internal/client"
	"systemprompthub/internal/models"
)

type viewMode int

const (
	viewLibrary viewMode = iota
	viewDetail
)

// loadCompleteMsg carries the result of the initial fetch.
type loadCompleteMsg struct {
	prompts    []models.Prompt
	categories []models.Category
	stats      *models.Stats
	err        error
}

// loadCmd fetches the directory once; the pipeline works off the cached
// lists afterwards, no further round-trips.
func loadCmd(svc *client.Client) tea.Cmd {
	return func() tea.Msg {
		prompts, err := svc.ListPrompts()
		if err != nil {
			return loadCompleteMsg{err: err}
		}

		// Categories and stats are decoration; their absence is not a
		// load failure.
		categories, _ := svc.ListCategories()
		stats, _ := svc.GetStats()

		return loadCompleteMsg{
			prompts:    prompts,
			categories: categories,
			stats:      stats,
		}
	}
}

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Open         key.Binding
	Back         key.Binding
	NextCategory key.Binding
	NextSort     key.Binding
	LoadMore     key.Binding
	ClearFilters key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "select")),
		Down:         key.NewBinding(key.WithKeys("down")),
		Open:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		NextCategory: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
		NextSort:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "sort")),
		LoadMore:     key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "load more")),
		ClearFilters: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear filters")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Open, k.NextCategory, k.NextSort, k.LoadMore, k.ClearFilters, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is the bubbletea model for the browser.
type Model struct {
	svc  *client.Client
	keys keyMap
	help help.Model

	searchInput textinput.Model
	state       browse.State

	prompts    []models.Prompt
	categories []models.Category
	stats      *models.Stats

	loading bool
	loadErr error

	mode   viewMode
	cursor int
	detail *models.Prompt

	width  int
	height int
}

func NewModel(svc *client.Client) Model {
	input := textinput.New()
	input.Placeholder = "Search prompts by title, description, or tags..."
	input.Prompt = "/ "
	input.Focus()

	return Model{
		svc:         svc,
		keys:        defaultKeyMap(),
		help:        help.New(),
		searchInput: input,
		state:       browse.NewState(),
		loading:     true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadCmd(m.svc))
}

// visible recomputes the pipeline output for the current state.
func (m *Model) visible() []models.Prompt {
	return browse.Visible(m.prompts, m.state)
}

// filteredCount is the size of the result set before pagination.
func (m *Model) filteredCount() int {
	return len(browse.Filter(m.prompts, m.state.SearchQuery, m.state.SelectedCategory))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case loadCompleteMsg:
		m.loading = false
		m.loadErr = msg.err
		m.prompts = msg.prompts
		m.categories = msg.categories
		m.stats = msg.stats
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.mode == viewDetail {
			return m.updateDetail(msg)
		}
		return m.updateLibrary(msg)
	}

	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Open) {
		m.mode = viewLibrary
		m.detail = nil
	}
	return m, nil
}

func (m Model) updateLibrary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		visible := m.visible()
		if m.cursor < len(visible) {
			p := visible[m.cursor]
			m.detail = &p
			m.mode = viewDetail
		}
		return m, nil

	case key.Matches(msg, m.keys.NextCategory):
		m.state.SelectedCategory = m.nextCategory()
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.NextSort):
		m.state.SortBy = nextSortKey(m.state.SortBy)
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.LoadMore):
		// Widening past the end is a no-op, matching the server-free
		// pagination contract.
		if m.state.VisibleCount < m.filteredCount() {
			m.state.LoadMore()
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.state.ClearFilters()
		m.searchInput.SetValue("")
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != m.state.SearchQuery {
		m.state.SearchQuery = m.searchInput.Value()
		m.cursor = 0
	}
	return m, cmd
}

// nextCategory cycles "all" -> each seeded category -> "all".
func (m *Model) nextCategory() string {
	names := make([]string, 0, len(m.categories)+1)
	names = append(names, browse.CategoryAll)
	for _, c := range m.categories {
		names = append(names, c.Name)
	}

	for i, name := range names {
		if name == m.state.SelectedCategory {
			return names[(i+1)%len(names)]
		}
	}
	return browse.CategoryAll
}

func nextSortKey(k browse.SortKey) browse.SortKey {
	switch k {
	case browse.SortRating:
		return browse.SortNewest
	case browse.SortNewest:
		return browse.SortPopular
	default:
		return browse.SortRating
	}
}

func (m Model) View() string {
	if m.loading {
		return contentStyle.Render("Loading prompts...")
	}
	if m.loadErr != nil {
		return errorStyle.Render(fmt.Sprintf(
			"Failed to load prompts: %v\n\nIs the server running?", m.loadErr))
	}
	if m.mode == viewDetail && m.detail != nil {
		return m.detailView()
	}
	return m.libraryView()
}

func (m Model) libraryView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SystemPromptHub"))
	if m.stats != nil {
		b.WriteString(statsStyle.Render(fmt.Sprintf(
			"  %d prompts · %d categories · %d contributors",
			m.stats.PromptsCount, m.stats.CategoriesCount, m.stats.ContributorsCount)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.searchInput.View())
	b.WriteString("\n")
	b.WriteString(filterBarStyle.Render("category: "))
	b.WriteString(activeFilterStyle.Render(m.state.SelectedCategory))
	b.WriteString(filterBarStyle.Render("   sort: "))
	b.WriteString(activeFilterStyle.Render(string(m.state.SortBy)))
	b.WriteString("\n\n")

	visible := m.visible()
	total := m.filteredCount()

	if total == 0 {
		b.WriteString(emptyStyle.Render(
			"No prompts found matching your criteria\nTry adjusting your search or category filters"))
	} else {
		for i, p := range visible {
			b.WriteString(m.renderItem(i, &p))
		}
		b.WriteString("\n")
		b.WriteString(statsStyle.Render(fmt.Sprintf("Showing %d of %d prompts", len(visible), total)))
		if len(visible) < total {
			b.WriteString(statsStyle.Render(" — ctrl+n to load more"))
		}
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderItem(i int, p *models.Prompt) string {
	title := itemTitleStyle.Render(p.Title)
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
		title = selectedItemStyle.Render(p.Title)
	}

	meta := fmt.Sprintf("%s  %s  %s",
		ratingStyle.Render("★ "+p.Rating),
		categoryStyle(m.colorFor(p.Category)).Render(p.Category),
		itemMetaStyle.Render("by "+p.Author),
	)

	return fmt.Sprintf("%s%s  %s\n%s\n", cursor, title, meta,
		itemMetaStyle.Render("    "+truncate(p.Description, 76)))
}

func (m Model) colorFor(categoryName string) string {
	for _, c := range m.categories {
		if c.Name == categoryName {
			return c.Color
		}
	}
	return ""
}

func (m Model) detailView() string {
	p := m.detail
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.Title))
	b.WriteString("\n\n")
	b.WriteString(detailLabelStyle.Render("Category: "))
	b.WriteString(categoryStyle(m.colorFor(p.Category)).Render(p.Category))
	b.WriteString("\n")
	b.WriteString(detailLabelStyle.Render("Author:   "))
	b.WriteString(p.Author)
	b.WriteString("\n")
	b.WriteString(detailLabelStyle.Render("Rating:   "))
	b.WriteString(ratingStyle.Render("★ " + p.Rating))
	b.WriteString("\n")
	if len(p.Tags) > 0 {
		b.WriteString(detailLabelStyle.Render("Tags:     "))
		b.WriteString(strings.Join(p.Tags, ", "))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(itemMetaStyle.Render(p.Description))
	b.WriteString("\n")
	b.WriteString(contentStyle.Render(p.Content))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc to go back"))

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
