// Package watch is a live terminal viewer: it renders a buffer file and
// re-renders whenever the file changes on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/san-kum/tensorpeek/internal/load"
	"github.com/san-kum/tensorpeek/pkg/render"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type fileMsg struct{ event fsnotify.Event }

type watchErrMsg struct{ err error }

// Model holds the watched file and the last rendered frame.
type Model struct {
	path    string
	spec    load.Spec
	opts    render.Options
	watcher *fsnotify.Watcher
	channel int // -1 renders all channels
	frame   string
	renders int
	err     error
}

// NewModel builds a viewer for path. The watcher registers on the parent
// directory: editors typically replace files instead of writing in place,
// which drops inode-level watches.
func NewModel(path string, spec load.Spec, opts render.Options) (Model, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return Model{}, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return Model{}, err
	}
	m := Model{path: path, spec: spec, opts: opts, watcher: watcher, channel: -1}
	m.refresh()
	return m, nil
}

// Close releases the file watcher.
func (m Model) Close() error {
	return m.watcher.Close()
}

func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-m.watcher.Events:
				if !ok {
					return nil
				}
				if event.Name != m.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				return fileMsg{event: event}
			case err, ok := <-m.watcher.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.refresh()
		case "a":
			m.channel = -1
			m.refresh()
		case "c", "right", "l":
			m.cycleChannel(1)
		case "C", "left", "h":
			m.cycleChannel(-1)
		}
	case fileMsg:
		m.refresh()
		return m, m.waitForEvent()
	case watchErrMsg:
		m.err = msg.err
		return m, m.waitForEvent()
	}
	return m, nil
}

// cycleChannel steps the rendered channel, wrapping through "all" at -1.
func (m *Model) cycleChannel(dir int) {
	count := m.channelCount()
	if count == 0 {
		return
	}
	m.channel += dir
	if m.channel >= count {
		m.channel = -1
	}
	if m.channel < -1 {
		m.channel = count - 1
	}
	m.refresh()
}

func (m *Model) channelCount() int {
	src, err := load.File(m.path, m.spec)
	if err != nil {
		return 0
	}
	v, err := src.View()
	if err != nil {
		return 0
	}
	_, _, c := v.Bounds()
	return c
}

// refresh re-reads the file and rebuilds the frame. Failures keep the
// previous frame and surface in the status line instead.
func (m *Model) refresh() {
	src, err := load.File(m.path, m.spec)
	if err != nil {
		m.err = err
		return
	}
	v, err := src.View()
	if err != nil {
		m.err = err
		return
	}
	name := filepath.Base(m.path)
	var frame string
	if m.channel >= 0 {
		frame, err = render.Channel(v, m.channel, name, m.opts)
	} else {
		frame, err = render.Buffer(v, name, m.opts)
	}
	if err != nil {
		m.err = err
		return
	}
	m.frame = frame
	m.renders++
	m.err = nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("tensorpeek watch") + "\n")
	s.WriteString(statusStyle.Render(fmt.Sprintf("%s  renders: %d  channel: %s",
		m.path, m.renders, m.channelLabel())) + "\n\n")
	if m.frame != "" {
		s.WriteString(m.frame + "\n")
	}
	if m.err != nil {
		s.WriteString(errStyle.Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render("c/C:Cycle-Channel A:All R:Reload Q:Quit"))
	return s.String()
}

func (m Model) channelLabel() string {
	if m.channel < 0 {
		return "all"
	}
	return fmt.Sprint(m.channel)
}
