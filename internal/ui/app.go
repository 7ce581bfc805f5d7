package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/mensa/internal/dispatch"
	"github.com/five82/mensa/internal/logtail"
	"github.com/five82/mensa/internal/meal"
	"github.com/five82/mensa/internal/prefs"
	"github.com/five82/mensa/internal/state"
)

// Source serves the requests the UI makes. Every answer is an update event.
type Source interface {
	Days(ctx context.Context) dispatch.Event
	RequestMeals(ctx context.Context, dateLabel string) dispatch.Event
	RequestDetail(ctx context.Context, id int) dispatch.Event
	Canteen() int
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Source    Source
	Menu      *state.Menu
	Logger    *zap.Logger
	ThemeName string
	Diet      meal.Diet
	PrefsPath string
	LogPath   string
}

// UpdateMsg carries one update event into the program.
type UpdateMsg struct {
	Event dispatch.Event
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	source     Source
	menu       *state.Menu
	dispatcher *dispatch.Dispatcher
	signals    *signals
	logger     *zap.Logger
	prefsPath  string
	logPath    string
	keys       keyMap

	// UI state
	theme    Theme
	diet     meal.Diet
	width    int
	height   int
	ready    bool
	stack    []View
	showHelp bool
	errText  string
	pending  string

	// Data state
	snapshot state.Snapshot
	daySel   int
	mealSel  int

	// Scrollable panes
	detailViewport viewport.Model
	logViewport    viewport.Model
	logLines       []string
	logErr         error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	menu := opts.Menu
	if menu == nil {
		menu = &state.Menu{}
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = ThemeNames()[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sig := &signals{}
	return Model{
		ctx:        ctx,
		source:     opts.Source,
		menu:       menu,
		dispatcher: dispatch.New(menu, sig, logger),
		signals:    sig,
		logger:     logger,
		prefsPath:  prefsPath,
		logPath:    opts.LogPath,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(themeName),
		diet:       opts.Diet,
		stack:      []View{ViewDays},
		snapshot:   menu.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(LogRefreshInterval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(0, 0)
			m.logViewport = viewport.New(0, 0)
		}
		m.ready = true
		m.resizeViewports()
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case UpdateMsg:
		m.handleUpdate(msg.Event)
		return m, nil

	case logLinesMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.top() == ViewLogs {
			cmds = append(cmds, readLogsCmd(m.logPath))
		}
		cmds = append(cmds, tickCmd(LogRefreshInterval))
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// handleUpdate runs one event through the dispatcher and reacts to the
// signals it raised.
func (m *Model) handleUpdate(ev dispatch.Event) {
	m.pending = ""
	m.signals.reset()
	m.dispatcher.Dispatch(ev)
	m.snapshot = m.menu.Snapshot()

	s := *m.signals
	if s.err {
		m.errText = s.errText
		m.push(ViewError)
		return
	}
	if s.meals {
		m.mealSel = 0
		m.push(ViewMeals)
	}
	if s.detail {
		m.updateDetailViewport()
		m.detailViewport.GotoTop()
		m.push(ViewDetail)
	}
	if s.days {
		m.daySel = clamp(m.daySel, len(m.snapshot.Days))
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.top() == ViewError {
		// Any key leaves the error screen
		m.home()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleDiet):
		m.diet = m.diet.Next()
		m.mealSel = clamp(m.mealSel, len(m.visibleMeals()))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		if m.top() == ViewLogs {
			m.pop()
			return m, nil
		}
		m.push(ViewLogs)
		return m, readLogsCmd(m.logPath)

	case key.Matches(msg, m.keys.Refresh):
		if m.top() == ViewLogs {
			return m, readLogsCmd(m.logPath)
		}
		return m, m.request("Refreshing", func(ctx context.Context) dispatch.Event {
			return m.source.Days(ctx)
		})

	case key.Matches(msg, m.keys.Back):
		m.pop()
		return m, nil
	}

	switch m.top() {
	case ViewDays:
		return m.handleDaysKey(msg)
	case ViewMeals:
		return m.handleMealsKey(msg)
	case ViewDetail:
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	case ViewLogs:
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleDaysKey processes keyboard input for the day list.
func (m Model) handleDaysKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	days := m.snapshot.Days
	if len(days) == 0 {
		return m, nil
	}
	if key.Matches(msg, m.keys.Select) {
		label := days[m.daySel].Date
		return m, m.request("Loading "+label, func(ctx context.Context) dispatch.Event {
			return m.source.RequestMeals(ctx, label)
		})
	}
	m.daySel = m.moveSelection(msg, m.daySel, len(days))
	return m, nil
}

// handleMealsKey processes keyboard input for the meal list.
func (m Model) handleMealsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	meals := m.visibleMeals()
	if len(meals) == 0 {
		return m, nil
	}
	if key.Matches(msg, m.keys.Select) {
		id := meals[m.mealSel].ID
		return m, m.request("Loading meal", func(ctx context.Context) dispatch.Event {
			return m.source.RequestDetail(ctx, id)
		})
	}
	m.mealSel = m.moveSelection(msg, m.mealSel, len(meals))
	return m, nil
}

func (m Model) moveSelection(msg tea.KeyMsg, sel, count int) int {
	switch {
	case key.Matches(msg, m.keys.Down):
		sel++
	case key.Matches(msg, m.keys.Up):
		sel--
	case key.Matches(msg, m.keys.Top):
		sel = 0
	case key.Matches(msg, m.keys.Bottom):
		sel = count - 1
	}
	return clamp(sel, count)
}

// visibleMeals returns the meal list after the diet filter.
func (m Model) visibleMeals() []state.MealEntry {
	if m.diet == meal.DietNone {
		return m.snapshot.Meals
	}
	out := make([]state.MealEntry, 0, len(m.snapshot.Meals))
	for _, entry := range m.snapshot.Meals {
		if entry.Diet.Allows(m.diet) {
			out = append(out, entry)
		}
	}
	return out
}

// request marks a request in flight and returns the command running it.
func (m *Model) request(label string, fn func(context.Context) dispatch.Event) tea.Cmd {
	if m.source == nil {
		return nil
	}
	m.pending = label
	ctx := m.ctx
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
		defer cancel()
		return UpdateMsg{Event: fn(reqCtx)}
	}
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Diet: m.diet.String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// renderContent renders the boxed content area for the visible view.
func (m Model) renderContent() string {
	height := m.contentHeight()
	width := m.width
	inner := width - 2

	var title, body string
	switch m.top() {
	case ViewMeals:
		title = m.mealsTitle()
		body = m.renderMeals(inner, height-2)
	case ViewDetail:
		title = ViewDetail.String()
		body = m.detailViewport.View()
	case ViewError:
		title = ViewError.String()
		body = m.renderError(inner, height-2)
	case ViewLogs:
		title = ViewLogs.String()
		body = m.logViewport.View()
	default:
		title = ViewDays.String()
		body = m.renderDays(inner, height-2)
	}
	return m.renderTitledBox(title, body, width, height, true)
}

func (m Model) contentHeight() int {
	return max(m.height-chromeHeight, 3)
}

func (m *Model) resizeViewports() {
	w := max(m.width-2, 1)
	h := max(m.contentHeight()-2, 1)
	m.detailViewport.Width, m.detailViewport.Height = w, h
	m.logViewport.Width, m.logViewport.Height = w, h
}

// Messages

type tickMsg time.Time

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logLinesMsg{}
		}
		lines, err := logtail.Read(path, LogViewLines)
		return logLinesMsg{lines: lines, err: err}
	}
}
