package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodgedesk/internal/domains/session/model"
)

func TestNewState(t *testing.T) {
	state := model.NewState("abc")

	assert.Equal(t, "abc", state.ID)
	assert.Equal(t, model.PageHome, state.Page)
	assert.Equal(t, "All", state.StatusFilter)
	assert.Zero(t, state.SelectionCount())
}

func TestState_Toggle(t *testing.T) {
	state := model.NewState("abc")

	state.Toggle("A1")
	state.Toggle("B2")
	assert.Equal(t, []string{"A1", "B2"}, state.Selected)
	assert.True(t, state.IsSelected("A1"))

	state.Toggle("A1")
	assert.Equal(t, []string{"B2"}, state.Selected)
	assert.False(t, state.IsSelected("A1"))
}

func TestState_SetSelection(t *testing.T) {
	state := model.NewState("abc")
	state.Toggle("OLD")

	state.SetSelection([]string{"A1", "B2", "A1", ""})

	assert.Equal(t, []string{"A1", "B2"}, state.Selected)
	assert.False(t, state.IsSelected("OLD"))
}

func TestState_ClearSelection(t *testing.T) {
	state := model.NewState("abc")
	state.SetSelection([]string{"A1", "B2"})

	state.ClearSelection()

	assert.Zero(t, state.SelectionCount())
}

func TestState_OpenConversation(t *testing.T) {
	t.Run("no selection stays home with a warning", func(t *testing.T) {
		state := model.NewState("abc")

		err := state.OpenConversation()

		assert.Error(t, err)
		assert.Equal(t, "Please select a customer to view the conversation.", err.Error())
		assert.Equal(t, model.PageHome, state.Page)
		assert.Empty(t, state.ConversationID)
	})

	t.Run("multiple selections stay home with a warning", func(t *testing.T) {
		state := model.NewState("abc")
		state.SetSelection([]string{"A1", "B2"})

		err := state.OpenConversation()

		assert.Error(t, err)
		assert.Equal(t, "Please select exactly one customer to view the conversation.", err.Error())
		assert.Equal(t, model.PageHome, state.Page)
	})

	t.Run("exactly one selection transitions carrying the id", func(t *testing.T) {
		state := model.NewState("abc")
		state.SetSelection([]string{"A1"})

		assert.NoError(t, state.OpenConversation())
		assert.Equal(t, model.PageShowConversation, state.Page)
		assert.Equal(t, "A1", state.ConversationID)
	})
}

func TestState_PageTransitions(t *testing.T) {
	state := model.NewState("abc")

	state.OpenAddCustomer()
	assert.Equal(t, model.PageAddCustomer, state.Page)

	state.BackHome()
	assert.Equal(t, model.PageHome, state.Page)

	state.SetSelection([]string{"A1"})
	assert.NoError(t, state.OpenConversation())

	state.BackHome()
	assert.Equal(t, model.PageHome, state.Page)
	assert.Empty(t, state.ConversationID)
	// Selection survives navigation; only bulk actions clear it.
	assert.True(t, state.IsSelected("A1"))
}

func TestState_TakeFlash(t *testing.T) {
	state := model.NewState("abc")
	state.Flash = "Customer added successfully!"
	state.Warning = "careful"

	flash, warning := state.TakeFlash()

	assert.Equal(t, "Customer added successfully!", flash)
	assert.Equal(t, "careful", warning)

	flash, warning = state.TakeFlash()
	assert.Empty(t, flash)
	assert.Empty(t, warning)
}
