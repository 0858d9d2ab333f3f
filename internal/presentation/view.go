// Package presentation turns already-resolved session data into display
// units. Nothing here performs I/O; terminal rendering lives in the screen
// adapter.
package presentation

import "github.com/bnema/minitwitter-cli/internal/domain"

type ViewState struct {
	View   domain.View
	Active bool
}

// ShowView marks target active and every other view inactive. A target that
// is not in views leaves all of them inactive.
func ShowView(target domain.View, views []domain.View) []ViewState {
	states := make([]ViewState, 0, len(views))
	for _, view := range views {
		states = append(states, ViewState{View: view, Active: view == target})
	}

	return states
}

func ActiveView(states []ViewState) (domain.View, bool) {
	for _, state := range states {
		if state.Active {
			return state.View, true
		}
	}

	return 0, false
}
