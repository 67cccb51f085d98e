// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	shellwords "github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/lovasko/conifer"
)

const shellHelp = `Commands:
  insert KEY VALUE   store a value under a key (reports any replaced value)
  search KEY         look up the value stored under a key
  delete KEY         remove a key and its value
  min | max          show the smallest/greatest key
  keys | values      list all keys/values in depth-first order
  count              number of stored keys
  print              draw the tree with balance factors
  load FILE          insert all "key value" lines of a file
  clear              remove every key
  help               show this text
  quit               leave the shell`

// Model represents the interactive shell state.
type Model struct {
	ready bool

	textInput textinput.Model
	viewport  viewport.Model

	tree     *conifer.Tree[string, string]
	datasets *cache.Cache
	config   *Config

	lastOutput string
	status     string
	failed     bool

	styles *Styles

	width  int
	height int
}

// Styles holds all the styling for the shell.
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles. With color disabled only the
// borders remain.
func NewStyles(color bool) *Styles {
	s := &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()),
		Title:          lipgloss.NewStyle().Padding(0, 1).Bold(true),
		InputPrompt:    lipgloss.NewStyle().Bold(true),
		HelpDesc:       lipgloss.NewStyle(),
		SuccessMessage: lipgloss.NewStyle().Bold(true),
		ErrorMessage:   lipgloss.NewStyle().Bold(true),
	}
	if color {
		s.BorderFocused = s.BorderFocused.BorderForeground(lipgloss.Color("62")).Bold(true)
		s.BorderBlurred = s.BorderBlurred.BorderForeground(lipgloss.Color("240"))
		s.Title = s.Title.Foreground(lipgloss.Color("39"))
		s.InputPrompt = s.InputPrompt.Foreground(lipgloss.Color("205"))
		s.HelpDesc = s.HelpDesc.Foreground(lipgloss.Color("243"))
		s.SuccessMessage = s.SuccessMessage.Foreground(lipgloss.Color("46"))
		s.ErrorMessage = s.ErrorMessage.Foreground(lipgloss.Color("196"))
	}
	return s
}

// InitialModel creates the initial shell model.
func InitialModel(tree *conifer.Tree[string, string], datasets *cache.Cache, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a command, e.g. insert fir abies..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	vp := viewport.New(0, 0)
	vp.SetContent(shellHelp)

	return Model{
		textInput: ti,
		viewport:  vp,
		tree:      tree,
		datasets:  datasets,
		config:    config,
		status:    fmt.Sprintf("%d keys", tree.Count()),
		styles:    NewStyles(config.Shell.EnableColor),
	}
}

// Init is called when the program starts.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+y":
			if m.lastOutput != "" {
				if err := clipboard.WriteAll(m.lastOutput); err != nil {
					m.status = fmt.Sprintf("clipboard: %v", err)
					m.failed = true
				} else {
					m.status = "output copied to clipboard"
					m.failed = false
				}
			}
			return m, nil

		case "enter":
			line := strings.TrimSpace(m.textInput.Value())
			m.textInput.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "exit" {
				return m, tea.Quit
			}

			out, err := executeCommand(m.tree, m.datasets, line)
			if err != nil {
				m.status = err.Error()
				m.failed = true
				return m, nil
			}
			m.lastOutput = out
			m.viewport.SetContent(out)
			m.viewport.GotoTop()
			m.status = fmt.Sprintf("%d keys", m.tree.Count())
			m.failed = false
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// updateLayout sizes the panes to the terminal.
func (m *Model) updateLayout() {
	m.textInput.Width = max(m.width-8, 20)
	m.viewport.Width = max(m.width-4, 20)
	// title, input box and the two footer lines stay fixed
	m.viewport.Height = max(m.height-9, 3)
}

// View renders the shell.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("conifer %s", version))

	input := m.styles.BorderFocused.Render(
		m.styles.InputPrompt.Render("> ") + m.textInput.View())

	output := m.styles.BorderBlurred.Render(m.viewport.View())

	status := m.styles.SuccessMessage.Render(m.status)
	if m.failed {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	help := m.styles.HelpDesc.Render("enter: run • ctrl+y: copy output • esc: quit")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n", title, input, output, status, help)
}

// executeCommand parses one shell line and applies it to the tree.
func executeCommand(tree *conifer.Tree[string, string], datasets *cache.Cache, line string) (string, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("cannot parse command: %v", err)
	}
	if len(words) == 0 {
		return "", nil
	}

	switch verb := words[0]; verb {
	case "insert":
		if len(words) != 3 {
			return "", fmt.Errorf("usage: insert KEY VALUE")
		}
		if old, ok := tree.Insert(words[1], words[2]); ok {
			return fmt.Sprintf("replaced %q under %s", old, words[1]), nil
		}
		return fmt.Sprintf("inserted %s", words[1]), nil

	case "search":
		if len(words) != 2 {
			return "", fmt.Errorf("usage: search KEY")
		}
		value, ok := tree.Search(words[1])
		if !ok {
			return fmt.Sprintf("key %s not found", words[1]), nil
		}
		return fmt.Sprintf("%s = %q", words[1], value), nil

	case "delete":
		if len(words) != 2 {
			return "", fmt.Errorf("usage: delete KEY")
		}
		if !tree.Delete(words[1]) {
			return fmt.Sprintf("key %s not found", words[1]), nil
		}
		return fmt.Sprintf("deleted %s", words[1]), nil

	case "min":
		key, ok := tree.Minimum()
		if !ok {
			return "tree is empty", nil
		}
		return fmt.Sprintf("minimum: %s", key), nil

	case "max":
		key, ok := tree.Maximum()
		if !ok {
			return "tree is empty", nil
		}
		return fmt.Sprintf("maximum: %s", key), nil

	case "keys":
		keys := tree.Keys()
		if keys == nil {
			return "tree is empty", nil
		}
		return strings.Join(keys, "\n"), nil

	case "values":
		values := tree.Values()
		if values == nil {
			return "tree is empty", nil
		}
		return strings.Join(values, "\n"), nil

	case "count":
		return fmt.Sprintf("%d", tree.Count()), nil

	case "print":
		if tree.IsEmpty() {
			return "tree is empty", nil
		}
		var sb strings.Builder
		depth := tree.Fprint(&sb)
		fmt.Fprintf(&sb, "depth: %d\n", depth)
		return sb.String(), nil

	case "load":
		if len(words) != 2 {
			return "", fmt.Errorf("usage: load FILE")
		}
		entries, err := loadDataset(datasets, words[1])
		if err != nil {
			return "", fmt.Errorf("cannot load dataset: %v", err)
		}
		fresh := 0
		for _, e := range entries {
			if _, ok := tree.Insert(e.key, e.value); !ok {
				fresh++
			}
		}
		return fmt.Sprintf("loaded %d entries (%d new keys)", len(entries), fresh), nil

	case "clear":
		for _, key := range tree.Keys() {
			tree.Delete(key)
		}
		return "tree cleared", nil

	case "help":
		return shellHelp, nil

	default:
		return "", fmt.Errorf("unknown command %q, try help", verb)
	}
}

// runShell starts the interactive shell.
func runShell(tree *conifer.Tree[string, string], datasets *cache.Cache, config *Config) error {
	program := tea.NewProgram(
		InitialModel(tree, datasets, config),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
