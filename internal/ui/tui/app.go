package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase/format"
)

type screen int

const (
	screenList screen = iota
	screenPicker
	screenDetail
	screenDashboard
)

type pickerKind int

const (
	pickCategory pickerKind = iota
	pickCareerStage
)

type recordItem struct {
	rec domain.FundingRecord
}

func (i recordItem) Title() string { return i.rec.Title }
func (i recordItem) Description() string {
	return fmt.Sprintf("%s • %s • %s • %s",
		i.rec.OrganizationOrDefault(), i.rec.Category,
		format.Amount(i.rec.Funding.Amount), format.Deadline(i.rec.Application))
}
func (i recordItem) FilterValue() string { return i.rec.Title }

type pickerItem struct {
	value string
	count int
}

func (p pickerItem) Title() string { return orAll(p.value) }
func (p pickerItem) Description() string {
	if p.value == "" {
		return "Clear this filter"
	}
	return fmt.Sprintf("%d opportunities", p.count)
}
func (p pickerItem) FilterValue() string { return p.value }

type model struct {
	ctx   context.Context
	theme Theme
	deps  Deps
	log   *slog.Logger

	browse    *usecase.Browse
	dashboard *usecase.Dashboard

	repo         *domain.Repository
	query        domain.Query
	sortKey      domain.SortKey
	view         []domain.FundingRecord
	categories   []string
	careerStages []string
	issues       int
	loading      bool

	scr        screen
	search     textinput.Model
	searchSeq  int
	results    list.Model
	picker     list.Model
	pickerKind pickerKind
	detail     viewport.Model
	stats      viewport.Model
	snapshot   domain.Dashboard

	changes <-chan struct{}
	toast   string
	width   int
	height  int
}

// Run starts the interactive browser and blocks until the user quits or ctx is done.
func Run(ctx context.Context, deps Deps) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newModel(ctx, deps)
	if deps.Config.UI.Watch && len(deps.WatchPaths) > 0 {
		m.changes = startWatching(ctx, deps.WatchPaths, m.log)
	}

	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func newModel(ctx context.Context, deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	opts := []usecase.Option{usecase.WithLogger(log)}
	if deps.Now != nil {
		opts = append(opts, usecase.WithNow(deps.Now))
	}
	if deps.Config.UI.TopOrganizations > 0 {
		opts = append(opts, usecase.WithTopOrganizations(deps.Config.UI.TopOrganizations))
	}

	ti := textinput.New()
	ti.Placeholder = "search title, description, organization, tags"
	ti.Prompt = "/ "
	ti.CharLimit = 120

	results := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	results.SetShowTitle(false)
	results.SetShowStatusBar(false)
	results.SetFilteringEnabled(false)
	results.SetShowHelp(false)
	results.KeyMap.Quit.SetEnabled(false)

	picker := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	picker.SetShowStatusBar(false)
	picker.SetFilteringEnabled(false)
	picker.SetShowHelp(false)
	picker.KeyMap.Quit.SetEnabled(false)

	return model{
		ctx:       ctx,
		theme:     DefaultTheme(),
		deps:      deps,
		log:       log,
		browse:    usecase.NewBrowse(),
		dashboard: usecase.NewDashboard(opts...),
		repo:      domain.EmptyRepository(),
		sortKey:   domain.SortDefault,
		scr:       screenList,
		search:    ti,
		results:   results,
		picker:    picker,
		detail:    viewport.New(0, 0),
		stats:     viewport.New(0, 0),
		loading:   true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(cmdLoadRepository(m.ctx, m.deps, m.log), listenChanges(m.changes))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case repositoryLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.log.Error("repository.load.failed", "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.repo = msg.res.Repository
		m.issues = len(msg.res.Issues)
		m.categories, m.careerStages = m.browse.Facets(m.repo)
		m.toast = ""
		if m.issues > 0 {
			m.toast = fmt.Sprintf("%d records had malformed fields", m.issues)
		}
		if m.scr == screenDashboard {
			m.refreshDashboard()
		}
		return m, m.refresh()

	case dataChangedMsg:
		m.log.Info("data.changed")
		m.loading = true
		return m, tea.Batch(cmdLoadRepository(m.ctx, m.deps, m.log), listenChanges(m.changes))

	case searchSettledMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.query.SearchTerm = m.search.Value()
		return m, m.refresh()

	case reportSavedMsg:
		if msg.err != nil {
			m.log.Error("report.save.failed", "err", msg.err)
			m.toast = "Could not save report: " + userMessage(msg.err)
			return m, nil
		}
		m.toast = "Saved report " + msg.id
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenList:
			return m.updateList(msg)
		case screenPicker:
			return m.updatePicker(msg)
		case screenDetail:
			return m.updateDetail(msg)
		case screenDashboard:
			return m.updateDashboard(msg)
		}
	}

	return m, nil
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.search.Blur()
			m.searchSeq++
			m.query.SearchTerm = m.search.Value()
			return m, m.refresh()
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() == before {
			return m, cmd
		}
		m.searchSeq++
		return m, tea.Batch(cmd, cmdSearchDebounce(m.searchSeq, m.deps.Config.UI.SearchDebounce))
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		return m, m.search.Focus()
	case "c":
		m.openPicker(pickCategory)
		return m, nil
	case "g":
		m.openPicker(pickCareerStage)
		return m, nil
	case "s":
		m.sortKey = m.sortKey.Next()
		return m, m.refresh()
	case "x":
		m.search.SetValue("")
		m.searchSeq++
		m.query = domain.Query{}
		return m, m.refresh()
	case "r":
		m.loading = true
		return m, cmdLoadRepository(m.ctx, m.deps, m.log)
	case "d":
		m.scr = screenDashboard
		m.refreshDashboard()
		return m, nil
	case "enter":
		it, ok := m.results.SelectedItem().(recordItem)
		if !ok {
			return m, nil
		}
		m.detail.SetContent(renderRecordDetail(it.rec))
		m.detail.GotoTop()
		m.scr = screenDetail
		return m, nil
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg):
		m.scr = screenList
		return m, nil
	case msg.String() == "enter":
		it, ok := m.picker.SelectedItem().(pickerItem)
		m.scr = screenList
		if !ok {
			return m, nil
		}
		if m.pickerKind == pickCategory {
			m.query.Category = it.value
		} else {
			m.query.CareerStage = it.value
		}
		return m, m.refresh()
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isBack(msg) {
		m.scr = screenList
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg):
		m.scr = screenList
		return m, nil
	case msg.String() == "w":
		return m, cmdSaveReport(m.deps, m.snapshot, m.repo.Meta())
	case msg.String() == "r":
		m.refreshDashboard()
		return m, nil
	}
	var cmd tea.Cmd
	m.stats, cmd = m.stats.Update(msg)
	return m, cmd
}

func isBack(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "q", "b":
		return true
	}
	return false
}

// refresh recomputes the visible records from the full repository.
func (m *model) refresh() tea.Cmd {
	m.view = m.browse.Execute(m.repo, m.query, m.sortKey)

	items := make([]list.Item, 0, len(m.view))
	for _, r := range m.view {
		items = append(items, recordItem{rec: r})
	}
	return m.results.SetItems(items)
}

func (m *model) refreshDashboard() {
	m.snapshot = m.dashboard.Execute(m.repo)
	m.stats.SetContent(renderDashboard(m.snapshot))
}

func (m *model) openPicker(kind pickerKind) {
	values, current, title := m.categories, m.query.Category, "Category"
	if kind == pickCareerStage {
		values, current, title = m.careerStages, m.query.CareerStage, "Career stage"
	}

	counts := make(map[string]int, len(values))
	for _, r := range m.repo.Records() {
		if kind == pickCategory {
			counts[r.Category]++
		} else {
			counts[r.Eligibility.CareerStage]++
		}
	}

	items := make([]list.Item, 0, len(values)+1)
	items = append(items, pickerItem{})
	selected := 0
	for i, v := range values {
		items = append(items, pickerItem{value: v, count: counts[v]})
		if v == current {
			selected = i + 1
		}
	}

	m.pickerKind = kind
	m.picker.Title = title
	m.picker.SetItems(items)
	m.picker.Select(selected)
	m.scr = screenPicker
}

func (m *model) resize() {
	w := m.width - 8
	h := m.height - 12
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.results.SetSize(w, h)
	m.picker.SetSize(w, h)
	m.detail.Width, m.detail.Height = w, h
	m.stats.Width, m.stats.Height = w, h
	m.search.Width = w - 4
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	source := m.repo.Meta().Source
	if source == "" {
		source = "no data loaded"
	}
	if m.deps.Debug {
		source += " (rev " + m.repo.Revision() + ")"
	}
	header := m.theme.Title.Render("FundingCall") + "\n" +
		m.theme.Subtitle.Render(source) + "\n"

	var body, help string
	switch m.scr {
	case screenList:
		status := fmt.Sprintf("Showing %d of %d opportunities", len(m.view), m.repo.Len())
		if m.loading {
			status += " (loading...)"
		}
		filters := fmt.Sprintf("%s %s  %s %s  %s %s",
			m.theme.Label.Render("Category:"), orAll(m.query.Category),
			m.theme.Label.Render("Career stage:"), orAll(m.query.CareerStage),
			m.theme.Label.Render("Sort:"), m.sortKey)
		body = m.search.View() + "\n" + filters + "\n" + m.theme.Accent.Render(status) + "\n\n" +
			m.theme.Card.Render(m.results.View())
		if m.search.Focused() {
			help = "type to search • enter/esc done"
		} else {
			help = "/ search • c category • g career stage • s sort • x clear • enter details • d dashboard • r reload • q quit"
		}

	case screenPicker:
		body = m.theme.Card.Render(m.picker.View())
		help = "↑/↓ navigate • enter select • esc back"

	case screenDetail:
		body = m.theme.Card.Render(m.detail.View())
		help = "↑/↓ scroll • esc/b back"

	case screenDashboard:
		title := m.theme.Title.Render("Dashboard") + " " +
			m.theme.Subtitle.Render("generated "+format.Date(m.snapshot.GeneratedAt))
		body = title + "\n\n" + m.theme.Card.Render(m.stats.View())
		help = "↑/↓ scroll • w save report • r refresh • esc/b back"

	default:
		body = "unknown state"
	}

	out := header + "\n" + body + "\n" + m.theme.Help.Render(help)
	if strings.TrimSpace(m.toast) != "" {
		out += "\n" + m.theme.Warn.Render(m.toast)
	}
	return wrap.Render(out)
}
