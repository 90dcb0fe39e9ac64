package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/waka-arcade/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		r    rune
		want core.Action
	}{
		{'w', core.ActionUp},
		{'s', core.ActionDown},
		{'a', core.ActionLeft},
		{'d', core.ActionRight},
		{'k', core.ActionUp},
		{'j', core.ActionDown},
		{'h', core.ActionLeft},
		{'l', core.ActionRight},
		{'p', core.ActionPause},
		{'r', core.ActionRestart},
		{'m', core.ActionMute},
	}
	for _, c := range cases {
		action, isQuit := km.MapKey(keyMsg(c.r))
		if action != c.want || isQuit {
			t.Errorf("MapKey(%q) = %v/%v, want %v/false", c.r, action, isQuit, c.want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	action, isQuit := km.MapKey(keyMsg('q'))
	if action != core.ActionQuit || !isQuit {
		t.Errorf("MapKey(q) = %v/%v, want Quit/true", action, isQuit)
	}

	action, isQuit = km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if action != core.ActionQuit || !isQuit {
		t.Errorf("MapKey(ctrl+c) = %v/%v, want Quit/true", action, isQuit)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg('w'), &frame); quit {
		t.Fatal("w reported as quit")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("frame missing ActionUp after 'w'")
	}

	// Unbound keys leave the frame untouched.
	frame.Clear()
	km.MapKeyToFrame(keyMsg('z'), &frame)
	for a := core.ActionNone; a <= core.ActionMute; a++ {
		if frame.Has(a) {
			t.Errorf("unbound key set %v", a)
		}
	}
}
