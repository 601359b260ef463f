package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
)

// Key builds a binding whose help label is its first key.
func Key(help string, keyboardKey ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keyboardKey...), key.WithHelp(keyboardKey[0], help))
}

type keyMap struct {
	NextTab       key.Binding
	PrevTab       key.Binding
	TransposeUp   key.Binding
	TransposeDown key.Binding
	Flats         key.Binding
	ResetClasses  key.Binding
	AddMIDI       key.Binding
	Save          key.Binding
	Quit          key.Binding

	// Classes toggles one pitch class each, C through B.
	Classes [12]key.Binding
}

var keys = newKeyMap()

func newKeyMap() keyMap {
	km := keyMap{
		NextTab:       Key("next tab", "tab"),
		PrevTab:       Key("prev tab", "shift+tab"),
		TransposeUp:   Key("octave up", "ctrl+u"),
		TransposeDown: Key("octave down", "ctrl+d"),
		Flats:         Key("flats", "ctrl+f"),
		ResetClasses:  Key("enable all", "ctrl+r"),
		AddMIDI:       Key("MIDI prefix", "ctrl+a"),
		Save:          Key("save", "ctrl+s"),
		Quit:          Key("quit", "esc", "ctrl+c"),
	}
	// F-keys first; alt+digit row for terminals that swallow them.
	alt := []string{"alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6",
		"alt+7", "alt+8", "alt+9", "alt+0", "alt+-", "alt+="}
	for i := range km.Classes {
		fkey := "f" + strconv.Itoa(i+1)
		km.Classes[i] = Key("toggle class", fkey, alt[i])
	}
	return km
}

// generatorHelp implements help.KeyMap for the generator tab.
type generatorHelp struct{ k keyMap }

func (h generatorHelp) ShortHelp() []key.Binding {
	toggle := key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1-f12", "toggle C..B"))
	return []key.Binding{h.k.NextTab, h.k.TransposeUp, h.k.TransposeDown, h.k.Flats, toggle, h.k.ResetClasses, h.k.Save, h.k.Quit}
}

func (h generatorHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// converterHelp implements help.KeyMap for the converter tab.
type converterHelp struct{ k keyMap }

func (h converterHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.NextTab, h.k.AddMIDI, h.k.Save, h.k.Quit}
}

func (h converterHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
