package model

import (
	"slices"

	customerDto "lodgedesk/internal/domains/customer/model/dto"
	"lodgedesk/shared/constant"
	"lodgedesk/shared/failure"
)

// Page identifies which of the three dashboard views is active.
type Page string

const (
	PageHome             Page = "home"
	PageAddCustomer      Page = "add_customer"
	PageShowConversation Page = "show_conversation"
)

// State is the per-session dashboard state: the active page, the set of
// selected rows, the current filters, and any message to flash on the next
// render. It lives server-side for the duration of one staff session and is
// passed into every handler rather than held globally.
type State struct {
	ID             string `json:"id"`
	Page           Page   `json:"page"`
	ConversationID string `json:"conversation_id,omitempty"`

	// Selected holds the identity card numbers of the checked rows, in the
	// order they were first checked.
	Selected []string `json:"selected,omitempty"`

	SearchTerm   string `json:"search_term,omitempty"`
	StatusFilter string `json:"status_filter,omitempty"`

	Flash   string `json:"flash,omitempty"`
	Warning string `json:"warning,omitempty"`

	// AddForm keeps the last submitted add-customer form so a rejected
	// submission re-renders with its values intact.
	AddForm *customerDto.CreateCustomerRequest `json:"add_form,omitempty"`
}

// NewState returns the initial session state: the home page with nothing
// selected and no filters applied.
func NewState(id string) *State {
	return &State{
		ID:           id,
		Page:         PageHome,
		StatusFilter: constant.StatusFilterAll,
	}
}

// Toggle flips the selection of one record id.
func (s *State) Toggle(id string) {
	if s.IsSelected(id) {
		s.Selected = slices.DeleteFunc(s.Selected, func(v string) bool { return v == id })

		return
	}

	s.Selected = append(s.Selected, id)
}

// SetSelection replaces the selection with the checked ids of a submitted
// form, dropping duplicates while keeping submission order.
func (s *State) SetSelection(ids []string) {
	s.Selected = nil

	for _, id := range ids {
		if id != "" && !s.IsSelected(id) {
			s.Selected = append(s.Selected, id)
		}
	}
}

// IsSelected reports whether a record id is currently checked.
func (s *State) IsSelected(id string) bool {
	return slices.Contains(s.Selected, id)
}

// SelectionCount returns the number of checked rows.
func (s *State) SelectionCount() int {
	return len(s.Selected)
}

// ClearSelection empties the selection. Called after every bulk action.
func (s *State) ClearSelection() {
	s.Selected = nil
}

// OpenAddCustomer moves to the add-customer view.
func (s *State) OpenAddCustomer() {
	s.Page = PageAddCustomer
	s.AddForm = nil
}

// OpenConversation moves to the conversation view for the single selected
// record. The transition is refused when the selection does not contain
// exactly one record; the session stays on the home page and the error
// carries the warning to show.
func (s *State) OpenConversation() error {
	switch s.SelectionCount() {
	case 1:
		s.ConversationID = s.Selected[0]
		s.Page = PageShowConversation

		return nil
	case 0:
		return failure.SelectOneCustomer
	default:
		return failure.SelectExactlyOneCustomer
	}
}

// BackHome returns to the home view from either sub-view.
func (s *State) BackHome() {
	s.Page = PageHome
	s.ConversationID = ""
	s.AddForm = nil
}

// TakeFlash returns and clears the pending flash and warning messages.
func (s *State) TakeFlash() (flash, warning string) {
	flash, warning = s.Flash, s.Warning
	s.Flash, s.Warning = "", ""

	return flash, warning
}
