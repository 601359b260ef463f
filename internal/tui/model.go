// Package tui is the interactive session: a generator tab that previews
// the names for a range as it is typed, and a converter tab that renumbers
// pasted filenames as round-robin sets. Every edit recomputes the preview
// from scratch.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/backmassage/samplenamer/internal/config"
	"github.com/backmassage/samplenamer/internal/display"
	"github.com/backmassage/samplenamer/internal/naming"
	"github.com/backmassage/samplenamer/internal/pipeline"
	"github.com/backmassage/samplenamer/internal/pitch"
	"github.com/backmassage/samplenamer/internal/rangegen"
)

type tab int

const (
	tabGenerator tab = iota
	tabConverter
)

const minPreviewLines = 5

// savedMsg reports the outcome of a save command.
type savedMsg struct {
	path string
	n    int
	err  error
}

// Model is the bubbletea model for the session.
type Model struct {
	tab     tab
	rangeIn textinput.Model
	files   textarea.Model
	help    help.Model

	// Generator state.
	transpose int
	spelling  pitch.Spelling
	disabled  rangegen.ClassSet

	// Converter state.
	addMIDI bool
	locale  language.Tag

	gen    rangegen.Result
	conv   []naming.Renamed
	inputs int // non-blank converter lines

	saveDir  string
	status   string
	failed   bool
	height   int
	width    int
	quitting bool
}

// New builds the session from cfg, carrying over any range, transpose,
// spelling, disabled classes and converter settings given on the command
// line.
func New(cfg *config.Config) Model {
	ri := textinput.New()
	ri.Placeholder = "C3-C4-Bass"
	ri.Prompt = ""
	ri.CharLimit = 64
	ri.Width = 32
	ri.SetValue(cfg.RangeInput)
	ri.Focus()

	ta := textarea.New()
	ta.Placeholder = "Paste audio filenames, one per line"
	ta.ShowLineNumbers = false
	ta.SetHeight(8)
	ta.SetWidth(60)

	m := Model{
		tab:       tabGenerator,
		rangeIn:   ri,
		files:     ta,
		help:      help.New(),
		transpose: cfg.Transpose,
		disabled:  cfg.Disabled,
		addMIDI:   cfg.AddMIDIPrefix,
		locale:    cfg.Locale,
	}
	if cfg.UseFlats {
		m.spelling = pitch.Flats
	}
	if cfg.OutputFile != "" {
		m.saveDir = filepath.Dir(cfg.OutputFile)
	}
	m.recompute()
	return m
}

// Run starts the session on the alternate screen and blocks until it quits.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Options returns the generator options for the current session state.
func (m Model) Options() rangegen.Options {
	return rangegen.Options{Transpose: m.transpose, Spelling: m.spelling, Disabled: m.disabled}
}

func (m *Model) recompute() {
	m.gen = rangegen.Generate(m.rangeIn.Value(), m.Options())
	lines := strings.Split(m.files.Value(), "\n")
	m.inputs = pipeline.CountNonBlank(lines)
	m.conv = naming.Normalize(lines, naming.Options{AddMIDIPrefix: m.addMIDI, Locale: m.locale})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if msg.Width > 4 {
			m.files.SetWidth(msg.Width - 4)
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.status, m.failed = "Save failed: "+msg.err.Error(), true
		} else {
			m.status, m.failed = fmt.Sprintf("Saved %s to %s", display.FileCount(msg.n), msg.path), false
		}
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			m.recompute()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.tab == tabGenerator {
		m.rangeIn, cmd = m.rangeIn.Update(msg)
	} else {
		m.files, cmd = m.files.Update(msg)
	}
	m.recompute()
	return m, cmd
}

// handleKey applies session bindings. Keys it does not claim fall through
// to the focused input.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, keys.NextTab), key.Matches(msg, keys.PrevTab):
		return true, m.switchTab()
	case key.Matches(msg, keys.Save):
		return true, m.save()
	}

	if m.tab == tabConverter {
		if key.Matches(msg, keys.AddMIDI) {
			m.addMIDI = !m.addMIDI
			return true, nil
		}
		return false, nil
	}

	switch {
	case key.Matches(msg, keys.TransposeUp):
		if m.transpose < config.MaxTranspose {
			m.transpose++
		}
	case key.Matches(msg, keys.TransposeDown):
		if m.transpose > -config.MaxTranspose {
			m.transpose--
		}
	case key.Matches(msg, keys.Flats):
		if m.spelling == pitch.Flats {
			m.spelling = pitch.Sharps
		} else {
			m.spelling = pitch.Flats
		}
	case key.Matches(msg, keys.ResetClasses):
		m.disabled = rangegen.ClassSet{}
	default:
		for i, b := range keys.Classes {
			if key.Matches(msg, b) {
				m.disabled = m.disabled.Toggle(pitch.SharpClass(i))
				return true, nil
			}
		}
		return false, nil
	}
	return true, nil
}

func (m *Model) switchTab() tea.Cmd {
	m.status = ""
	if m.tab == tabGenerator {
		m.tab = tabConverter
		m.rangeIn.Blur()
		return m.files.Focus()
	}
	m.tab = tabGenerator
	m.files.Blur()
	return m.rangeIn.Focus()
}

// save writes the active tab's names to its default file.
func (m *Model) save() tea.Cmd {
	names, file := m.gen.Filenames, pipeline.GeneratedListFile
	if m.tab == tabConverter {
		names, file = naming.Names(m.conv), pipeline.ConvertedListFile
	}
	if len(names) == 0 {
		m.status, m.failed = "Nothing to save", true
		return nil
	}
	path := filepath.Join(m.saveDir, file)
	return func() tea.Msg {
		return savedMsg{path: path, n: len(names), err: pipeline.SaveList(path, names)}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")
	if m.tab == tabGenerator {
		b.WriteString(m.generatorView())
		b.WriteString("\n")
		b.WriteString(m.help.View(generatorHelp{keys}))
	} else {
		b.WriteString(m.converterView())
		b.WriteString("\n")
		b.WriteString(m.help.View(converterHelp{keys}))
	}
	return b.String()
}

func (m Model) tabsView() string {
	names := []string{"Generator", "Converter"}
	parts := []string{titleStyle.Render("samplenamer")}
	for i, n := range names {
		if tab(i) == m.tab {
			parts = append(parts, activeTabStyle.Render(n))
		} else {
			parts = append(parts, tabStyle.Render(n))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}

func (m Model) generatorView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Range      ") + m.rangeIn.View() + "\n")
	b.WriteString(labelStyle.Render("Transpose  ") + valueStyle.Render(display.TransposeLabel(m.transpose)) +
		labelStyle.Render("   Spelling ") + valueStyle.Render(m.spelling.String()) + "\n\n")
	b.WriteString(m.pianoView() + "\n\n")

	b.WriteString(okStyle.Render(display.NoteCount(len(m.gen.Notes), m.gen.Disabled)) + "\n")
	if msg := display.StatusMessage(m.gen.Status); msg != "" {
		b.WriteString(warnStyle.Render(msg) + "\n")
	} else {
		b.WriteString(m.listView(m.gen.Filenames))
	}
	b.WriteString(m.statusView())
	return b.String()
}

// pianoView renders the twelve classes as keys, with the F-key that
// toggles each one underneath.
func (m Model) pianoView() string {
	var top, bottom []string
	for i, class := range pitch.Classes() {
		style := whiteKeyStyle
		if pitch.IsBlackKey(i) {
			style = blackKeyStyle
		}
		if m.disabled.Has(class) {
			style = offKeyStyle
		}
		top = append(top, style.Render(class))
		bottom = append(bottom, fkeyStyle.Render(fmt.Sprintf("F%d", i+1)))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, top...),
		lipgloss.JoinHorizontal(lipgloss.Top, bottom...))
}

func (m Model) converterView() string {
	var b strings.Builder
	b.WriteString(m.files.View() + "\n")
	prefix := "off"
	if m.addMIDI {
		prefix = "on"
	}
	b.WriteString(labelStyle.Render("MIDI prefix ") + valueStyle.Render(prefix) + "\n\n")

	b.WriteString(okStyle.Render(display.FileCount(len(m.conv))) + "\n")
	if msg := display.ConvertMessage(m.inputs, len(m.conv)); msg != "" {
		b.WriteString(warnStyle.Render(msg) + "\n")
	} else {
		b.WriteString(m.listView(naming.Names(m.conv)))
	}
	b.WriteString(m.statusView())
	return b.String()
}

// listView shows as many names as fit, then a count of the rest.
func (m Model) listView(names []string) string {
	limit := 16
	if m.height > 0 {
		limit = m.height - 22
		if m.tab == tabConverter {
			limit -= 6
		}
	}
	if limit < minPreviewLines {
		limit = minPreviewLines
	}

	var b strings.Builder
	for i, n := range names {
		if i == limit {
			b.WriteString(dimStyle.Render(fmt.Sprintf("... %d more", len(names)-limit)) + "\n")
			break
		}
		b.WriteString(valueStyle.Render(n) + "\n")
	}
	return b.String()
}

func (m Model) statusView() string {
	if m.status == "" {
		return ""
	}
	if m.failed {
		return "\n" + errStyle.Render(m.status) + "\n"
	}
	return "\n" + okStyle.Render(m.status) + "\n"
}
