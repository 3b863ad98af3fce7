package watch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/tensorpeek/internal/load"
	"github.com/san-kum/tensorpeek/pkg/render"
)

func newTestModel(t *testing.T, data []byte, spec load.Spec) Model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "buf.bin")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	m, err := NewModel(path, spec, render.Options{})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestInitialFrame(t *testing.T) {
	m := newTestModel(t, []byte{0, 128, 255, 64}, load.Spec{Shape: []int{2, 2}})
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if !strings.Contains(m.frame, "buf.bin[2 2]") {
		t.Errorf("frame missing header:\n%s", m.frame)
	}
	if !strings.Contains(m.View(), m.frame) {
		t.Error("View should include the rendered frame")
	}
}

func TestRefreshPicksUpChanges(t *testing.T) {
	m := newTestModel(t, []byte{0, 0, 0, 0}, load.Spec{Shape: []int{2, 2}})
	before := m.frame

	if err := os.WriteFile(m.path, []byte{255, 255, 255, 255}, 0644); err != nil {
		t.Fatal(err)
	}
	m.refresh()

	if m.frame == before {
		t.Error("frame unchanged after rewrite and refresh")
	}
	if m.renders != 2 {
		t.Errorf("renders = %d, want 2", m.renders)
	}
}

func TestCycleChannelWrapsThroughAll(t *testing.T) {
	m := newTestModel(t, make([]byte, 2*2*3), load.Spec{Shape: []int{2, 2, 3}})

	want := []int{0, 1, 2, -1, 0}
	for _, ch := range want {
		m.cycleChannel(1)
		if m.channel != ch {
			t.Fatalf("channel = %d, want %d", m.channel, ch)
		}
	}

	m.cycleChannel(-1)
	if m.channel != -1 {
		t.Errorf("channel = %d, want -1 after stepping back", m.channel)
	}
}

func TestChannelHeaderInFrame(t *testing.T) {
	m := newTestModel(t, make([]byte, 2*2*3), load.Spec{Shape: []int{2, 2, 3}})
	m.cycleChannel(1)
	if !strings.Contains(m.frame, "channel 0") {
		t.Errorf("frame missing channel header:\n%s", m.frame)
	}
}

func TestBadFileKeepsPreviousFrame(t *testing.T) {
	m := newTestModel(t, []byte{0, 0, 0, 0}, load.Spec{Shape: []int{2, 2}})
	before := m.frame

	if err := os.WriteFile(m.path, []byte{1}, 0644); err != nil {
		t.Fatal(err)
	}
	m.refresh()

	if m.err == nil {
		t.Error("expected a size mismatch error")
	}
	if m.frame != before {
		t.Error("frame should survive a failed reload")
	}
	if !strings.Contains(m.View(), m.err.Error()) {
		t.Error("View should surface the reload error")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, []byte{0}, load.Spec{Shape: []int{1}})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
