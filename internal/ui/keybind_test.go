package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("space", tea.Quit)
	reg.Bind("j", nil)

	assert.NotNil(t, reg.Lookup("q"))
	assert.NotNil(t, reg.Lookup(" "), "space normalizes to SPC")
	assert.NotNil(t, reg.Lookup("SPC"))
	assert.Nil(t, reg.Lookup("j"))
	assert.Nil(t, reg.Lookup("unknown"))
}

func TestKeybindRegistry_Handle(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("x", func() tea.Msg {
		executed = true
		return nil
	})

	consumed, cmd := reg.Handle(keyMsg("x"))
	assert.True(t, consumed)
	if assert.NotNil(t, cmd) {
		cmd()
	}
	assert.True(t, executed)

	consumed, cmd = reg.Handle(keyMsg("y"))
	assert.False(t, consumed)
	assert.Nil(t, cmd)
}

func TestKeybindRegistry_HintsInRegistrationOrder(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit)
	reg.BindWithDesc("tab", tea.Quit, "next panel")
	reg.BindWithDesc("q", tea.Quit, "leave")

	hints := reg.Hints()
	if assert.Len(t, hints, 2) {
		assert.Equal(t, "q", hints[0].Help().Key)
		assert.Equal(t, "leave", hints[0].Help().Desc)
		assert.Equal(t, "tab", hints[1].Help().Key)
	}
}

func TestKeyMap(t *testing.T) {
	reg := NewKeybindRegistry()
	km := NewKeyMap(reg)
	assert.Empty(t, km.ShortHelp())
	assert.Nil(t, km.FullHelp())

	reg.BindWithDesc("q", tea.Quit, "quit")
	assert.Len(t, km.ShortHelp(), 1)
	assert.Len(t, km.FullHelp(), 1)
}
