package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"memegrip/internal/config"
	"memegrip/internal/domain"
	"memegrip/internal/search"
	"memegrip/internal/suggest"
	"memegrip/internal/ui/commands"
	"memegrip/internal/ui/handlers"
	"memegrip/internal/ui/input"
	inputtypes "memegrip/internal/ui/input/types"
	"memegrip/internal/ui/logic"
	"memegrip/internal/ui/state"
	"memegrip/internal/ui/viewmodels"
	"memegrip/internal/ui/views"
)

// FavoriteSet is the favorites manager as seen by the UI
type FavoriteSet interface {
	Toggle(id string) (bool, error)
	IsFavorite(id string) bool
	Select(all []domain.Template) []domain.Template
	Len() int
}

// Dependencies are the services the model drives
type Dependencies struct {
	Store     search.Populator
	Favorites FavoriteSet
	Copier    commands.Copier
	Opener    commands.URLOpener
	Logger    *zap.Logger
}

// Rows used by everything except the result list: padding, title, subtitle,
// input box, status, summary, footer
const chromeHeight = 14

// Model represents the UI state
type Model struct {
	ctx    context.Context
	config *config.Config
	state  *state.AppState // centralized state
	logger *zap.Logger

	store     search.Populator
	search    *search.ViewModel
	favorites FavoriteSet

	// UI-specific state not in AppState
	width            int
	height           int
	help             help.Model
	spinner          spinner.Model
	spinning         bool
	query            queryState
	suggestionsReady bool
	inPagerMode      bool // tracks if we're currently in pager mode

	// Handlers
	navigator    *logic.Navigator       // selection and viewport handler
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	pager        *PagerOps              // ov pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, cfg *config.Config, deps Dependencies) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	appState := state.NewAppState()

	m := &Model{
		ctx:          ctx,
		config:       cfg,
		state:        appState,
		logger:       logger.Named("ui"),
		store:        deps.Store,
		search:       search.NewViewModel(),
		favorites:    deps.Favorites,
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		query:        newQueryState(cfg.Debounce.Std()),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}

	var isFavorite func(string) bool
	if m.favorites != nil {
		isFavorite = m.favorites.IsFavorite
	}

	var toggler commands.FavoriteToggler
	if m.favorites != nil {
		toggler = m.favorites
	}
	m.cmdExecutor = commands.NewExecutor(appState, toggler, deps.Copier, deps.Opener, cfg.UISettings.Toast.Std(), m.logger)
	m.eventHandler = handlers.NewEventHandler(appState, m.cmdExecutor.ExecuteToast, m.refreshVisible)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, isFavorite)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init starts the initial search for the empty query
func (m *Model) Init() tea.Cmd {
	return m.runSearch(m.query.Active())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		// Handle input through the input handler
		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetHelp(m.help, m.inputHandler.Keys())
	m.viewModel.SetInput(m.inputHandler.TextInput().View(), m.inputHandler.CurrentMode().String())
	if m.spinning {
		m.viewModel.SetSpinner(m.spinner.View())
	} else {
		m.viewModel.SetSpinner("")
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// ResultCount implements the input context
func (m *Model) ResultCount() int {
	return len(m.state.Visible)
}

// SuggestionsVisible implements the input context
func (m *Model) SuggestionsVisible() bool {
	return m.state.SuggestionsVisible()
}

// SuggestionCount implements the input context
func (m *Model) SuggestionCount() int {
	return len(m.state.Suggestions)
}

// SuggestionIndex implements the input context
func (m *Model) SuggestionIndex() int {
	return m.state.SuggestionIndex
}

// runSearch begins a run for term and executes it off the update loop. Only
// the outcome of the latest run is applied.
func (m *Model) runSearch(term string) tea.Cmd {
	run := m.search.Begin(term)
	m.state.Search = m.search.Snapshot()
	m.logger.Debug("search started", zap.String("query", term), zap.Uint64("gen", run.Gen))

	if m.store == nil {
		return nil
	}

	ctx, vm, store := m.ctx, m.search, m.store
	execute := func() tea.Msg {
		return searchResultMsg{outcome: vm.Execute(ctx, store, run)}
	}

	if m.spinning {
		return execute
	}
	m.spinning = true
	return tea.Batch(execute, m.spinner.Tick)
}

// applySearch stores an outcome unless a newer run has begun since
func (m *Model) applySearch(out search.Outcome) {
	if !m.search.Apply(out) {
		m.logger.Debug("stale search outcome dropped",
			zap.String("query", out.Query), zap.Uint64("gen", out.Gen))
		return
	}
	m.state.Search = m.search.Snapshot()

	if out.Err != nil {
		m.logger.Warn("search failed", zap.String("query", out.Query), zap.Error(out.Err))
	}
	if !m.suggestionsReady && out.Err == nil && out.All != nil {
		m.state.SetSuggestions(suggest.Derive(out.All, m.config.Suggestions.Pool, m.config.Suggestions.Limit))
		m.suggestionsReady = true
	}

	m.navigator.Reset()
	m.refreshVisible()
}

// refreshVisible rebuilds the displayed list from the search state
func (m *Model) refreshVisible() {
	if m.state.FavoritesView && m.favorites != nil {
		m.state.Visible = m.favorites.Select(m.state.Search.All)
	} else {
		m.state.Visible = m.state.Search.Results
	}
	m.syncNavigator()
}

// syncNavigator copies the navigator position into the state
func (m *Model) syncNavigator() {
	m.navigator.UpdateState(len(m.state.Visible), m.state.ViewportHeight)
	m.state.SelectedIndex = m.navigator.GetSelectedIndex()
	m.state.ViewportOffset = m.navigator.GetViewportOffset()
}

func (m *Model) updateViewportHeight() {
	rows := m.height - chromeHeight
	if m.state.SuggestionsVisible() {
		rows -= len(m.state.Suggestions)
	}
	if rows < 3 {
		rows = 3
	}
	m.state.ViewportHeight = rows
	m.syncNavigator()
}

// commitQuery starts a search for term, leaving the favorites view
func (m *Model) commitQuery(term string, changed bool) tea.Cmd {
	wasFavorites := m.state.FavoritesView
	m.state.FavoritesView = false
	if changed {
		return m.runSearch(term)
	}
	if wasFavorites {
		m.navigator.Reset()
		m.refreshVisible()
	}
	return nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.navigator.Move(-1)
		case "down":
			m.navigator.Move(1)
		case "pageup":
			m.navigator.PageUp()
		case "pagedown":
			m.navigator.PageDown()
		case "home":
			m.navigator.Home()
		case "end":
			m.navigator.End()
		}
		m.syncNavigator()

	case inputtypes.UpdateTextAction:
		m.state.SuggestionIndex = -1
		return m.query.Type(a.Text)

	case inputtypes.ShowSuggestionsAction:
		m.state.ShowSuggestions = a.Show
		if !a.Show {
			m.state.SuggestionIndex = -1
		}
		m.updateViewportHeight()

	case inputtypes.SubmitQueryAction:
		return m.commitQuery(m.query.Submit())

	case inputtypes.MoveSuggestionAction:
		m.state.MoveSuggestion(a.Delta)

	case inputtypes.PickSuggestionAction:
		word, ok := m.state.Suggestion(a.Index)
		if !ok {
			return nil
		}
		m.inputHandler.SetText(word)
		return m.commitQuery(m.query.Set(word))

	case inputtypes.ToggleFavoriteAction:
		cmd := m.cmdExecutor.ExecuteToggleFavorite()
		if m.state.FavoritesView {
			m.refreshVisible()
		}
		return cmd

	case inputtypes.CopyURLAction:
		return m.cmdExecutor.ExecuteCopyURL()

	case inputtypes.OpenURLAction:
		return m.cmdExecutor.ExecuteOpenURL()

	case inputtypes.OpenDetailAction:
		if tpl, ok := m.state.SelectedTemplate(); ok {
			m.state.Detail = &tpl
		}

	case inputtypes.CloseDetailAction:
		m.state.Detail = nil

	case inputtypes.ToggleFavoritesViewAction:
		if m.state.FavoritesView {
			m.state.FavoritesView = false
		} else {
			if m.favorites == nil || m.favorites.Len() == 0 {
				return m.cmdExecutor.ExecuteToast("No favorites yet", false)
			}
			m.state.FavoritesView = true
		}
		m.navigator.Reset()
		m.refreshVisible()

	case inputtypes.OpenPagerAction:
		if len(m.state.Visible) == 0 {
			return m.cmdExecutor.ExecuteToast("Nothing to page", false)
		}
		if m.program == nil {
			return m.cmdExecutor.ExecuteToast("Pager not available", true)
		}
		return m.openPager(m.pagerContent())

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.help.ShowAll = m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) pagerContent() string {
	title := "Results for \"" + m.query.Active() + "\""
	if m.query.Active() == "" {
		title = "All templates"
	}
	if m.state.FavoritesView {
		title = "Favorites"
	}
	var isFavorite func(string) bool
	if m.favorites != nil {
		isFavorite = m.favorites.IsFavorite
	}
	return RenderPagerContent(title, m.state.Visible, isFavorite)
}

// openPager returns a command that shows content using ov pager
func (m *Model) openPager(content string) tea.Cmd {
	program, pager := m.program, m.pager
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := pager.Show(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

// handleNonKeyboardMsg processes messages that aren't keyboard input
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		// Process domain events
		return m, m.eventHandler.HandleEvent(msg.Event)

	case searchResultMsg:
		m.applySearch(msg.outcome)
		return m, nil

	case debounceMsg:
		term, changed := m.query.Settle(msg.seq)
		if !changed {
			return m, nil
		}
		return m, m.commitQuery(term, changed)

	case commands.ToastExpiredMsg:
		m.state.ExpireToast(msg.Seq)
		return m, nil

	case spinner.TickMsg:
		// Keep spinning only while a search is loading
		if m.inPagerMode || m.state.Search.Status != domain.StatusLoading {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			// Pager failed: log and tell the user
			m.logger.Warn("pager failed", zap.Error(msg.err))
			return m, m.cmdExecutor.ExecuteToast("Pager failed", true)
		}
		// Pager succeeded, RestoreTerminal() should have restored the screen
		return m, nil

	case pauseRenderingMsg:
		// Signal that rendering should be paused for external pager
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}
