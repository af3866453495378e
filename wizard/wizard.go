// Package wizard implements the interactive subtitle download flow as a
// linear state machine: resolve the library root, pick a series, discover
// release groups, fetch subtitles and optionally rename them.
package wizard

import (
	"github.com/Sac-94/AniSubDl/prompt"
	"github.com/Sac-94/AniSubDl/tosho"
	"github.com/Sac-94/AniSubDl/util"
)

// Options configures a wizard run.
type Options struct {
	// LibraryRoot is the anime library root passed on the command line.
	// When empty, the saved path is tried, then an interactive prompt.
	LibraryRoot string

	// Prompter substitutes the interactive prompt backend; defaults to survey.
	Prompter prompt.Provider

	// Index substitutes the torrent index client; defaults to the live site.
	Index *tosho.Client
}

type wizard struct {
	options *Options

	prompter prompt.Provider
	index    *tosho.Client

	state         state
	statesHistory util.Stack[state]
	done          bool

	root       string
	series     string
	seriesPath string
	groups     []string
	group      string
	searchTerm string
	subtitles  []string
}

func newWizard(options *Options) *wizard {
	w := &wizard{
		options:  options,
		prompter: options.Prompter,
		index:    options.Index,
	}

	if w.prompter == nil {
		w.prompter = prompt.Survey{}
	}

	if w.index == nil {
		w.index = tosho.New()
	}

	return w
}

func (w *wizard) setState(s state) {
	w.state = s
}

func (w *wizard) newState(s state) {
	if w.state == s {
		return
	}

	w.statesHistory.Push(w.state)
	w.setState(s)
}

func (w *wizard) previousState() {
	if w.statesHistory.Len() > 0 {
		w.setState(w.statesHistory.Pop())
	}
}

// Run drives the state machine until the flow completes or a handler fails.
func Run(options *Options) error {
	w := newWizard(options)
	w.state = libraryResolveState

	for {
		if err := w.handleState(); err != nil {
			return err
		}

		if w.done {
			return nil
		}
	}
}

func (w *wizard) handleState() error {
	switch w.state {
	case libraryResolveState:
		return w.handleLibraryResolveState()
	case seriesSelectState:
		return w.handleSeriesSelectState()
	case groupSearchState:
		return w.handleGroupSearchState()
	case groupSelectState:
		return w.handleGroupSelectState()
	case subsFetchState:
		return w.handleSubsFetchState()
	case renameState:
		return w.handleRenameState()
	case quitState:
		w.done = true
	}

	return nil
}
