package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"memegrip/internal/config"
	"memegrip/internal/domain"
	"memegrip/internal/ui/state"
	"memegrip/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state      *state.AppState
	config     *config.Config
	isFavorite func(id string) bool
	width      int
	height     int
	help       help.Model
	keys       help.KeyMap
	input      string
	mode       string
	spinner    string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, isFavorite func(id string) bool) *ViewModel {
	if isFavorite == nil {
		isFavorite = func(string) bool { return false }
	}
	return &ViewModel{
		state:      appState,
		config:     cfg,
		isFavorite: isFavorite,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it renders
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetInput sets the rendered query input and the current input mode name
func (vm *ViewModel) SetInput(view, mode string) {
	vm.input = view
	vm.mode = mode
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	snap := vm.state.Search
	loading := snap.Status == domain.StatusLoading

	statusLine := snap.StatusLine()
	summary := snap.Summary()
	if vm.state.FavoritesView {
		// Favorites are selected from the full list, not from the query
		statusLine = ""
		summary = ""
		if loading {
			statusLine = snap.StatusLine()
		}
	}

	items := make([]views.ItemView, 0, vm.state.ViewportHeight)
	end := vm.state.ViewportOffset + vm.state.ViewportHeight
	if end > len(vm.state.Visible) {
		end = len(vm.state.Visible)
	}
	for i := vm.state.ViewportOffset; i < end; i++ {
		tpl := vm.state.Visible[i]
		items = append(items, views.ItemView{
			Template: tpl,
			Favorite: vm.isFavorite(tpl.ID),
			Selected: i == vm.state.SelectedIndex && vm.mode != "search",
		})
	}

	var detail *views.DetailView
	if vm.state.Detail != nil {
		detail = &views.DetailView{
			Template: *vm.state.Detail,
			Favorite: vm.isFavorite(vm.state.Detail.ID),
		}
	}

	skeletons := 6
	if vm.config != nil && vm.config.UISettings.Skeletons > 0 {
		skeletons = vm.config.UISettings.Skeletons
	}

	return views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		Mode:            vm.mode,
		Input:           vm.input,
		Suggestions:     vm.state.Suggestions,
		SuggestionIndex: vm.state.SuggestionIndex,
		ShowSuggestions: vm.state.SuggestionsVisible() && vm.mode == "search",
		StatusLine:      statusLine,
		StatusError:     snap.Status == domain.StatusFailed,
		Loading:         loading,
		Spinner:         vm.spinner,
		Skeletons:       skeletons,
		Items:           items,
		TotalItems:      len(vm.state.Visible),
		ViewportOffset:  vm.state.ViewportOffset,
		Summary:         summary,
		FavoritesView:   vm.state.FavoritesView,
		StatusMessage:   vm.state.StatusMessage,
		Toast:           vm.state.Toast,
		ToastError:      vm.state.ToastError,
		Detail:          detail,
		ShowHelp:        vm.state.ShowHelp,
		HelpModel:       vm.help,
		Keys:            vm.keys,
	}
}
