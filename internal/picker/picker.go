// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package picker provides a terminal directory chooser. The conversion
// core never prompts; the picker only produces the input/output paths the
// driver is configured with.
package picker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user quits without choosing a directory.
var ErrAborted = errors.New("no directory selected")

var (
	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Italic(true).
			Padding(0, 1)
)

// item is one directory entry in the list.
type item struct {
	name string
	path string
}

func (i item) Title() string       { return i.name }
func (i item) Description() string { return i.path }
func (i item) FilterValue() string { return i.name }

// Model is a bubbletea model that navigates directories until one is
// chosen with space or abandoned with q.
type Model struct {
	list    list.Model
	dir     string
	choice  string
	aborted bool
	width   int
	height  int
}

// New returns a picker rooted at dir with the given list title.
func New(prompt, dir string) Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = prompt
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	m := Model{list: l}
	m.setDir(dir)
	return m
}

// setDir repopulates the list with the subdirectories of dir plus a parent
// entry. An unreadable directory simply lists nothing but "..".
func (m *Model) setDir(dir string) {
	items := []list.Item{}
	if parent := filepath.Dir(dir); parent != dir {
		items = append(items, item{name: "..", path: parent})
	}
	if entries, err := os.ReadDir(dir); err == nil {
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			items = append(items, item{name: e.Name() + "/", path: filepath.Join(dir, e.Name())})
		}
	}
	m.dir = dir
	m.list.SetItems(items)
	m.list.Select(0)
}

// Dir returns the directory currently displayed.
func (m Model) Dir() string { return m.dir }

// Choice returns the selected directory and whether one was chosen.
func (m Model) Choice() (string, bool) { return m.choice, m.choice != "" }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // room for the path and help lines
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.aborted = true
			return m, tea.Quit

		case "enter", "l":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.setDir(it.path)
			}
			return m, nil

		case "backspace":
			if parent := filepath.Dir(m.dir); parent != m.dir {
				m.setDir(parent)
			}
			return m, nil

		case " ", "s":
			m.choice = m.dir
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := pathStyle.Render(m.dir)
	help := helpStyle.Render("enter: open  space: choose this directory  backspace: up  q: cancel")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), help)
}

// Pick runs the picker over the terminal and returns the chosen absolute
// directory path. ErrAborted is returned if the user quit without
// choosing.
func Pick(prompt, root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	p := tea.NewProgram(New(prompt, abs), tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running picker: %w", err)
	}

	final := out.(Model)
	choice, ok := final.Choice()
	if !ok {
		return "", ErrAborted
	}
	return choice, nil
}
