package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/textlabel/pkg/label"
)

func testLabels(t *testing.T, n int) []label.Descriptor {
	t.Helper()
	e := label.New()
	out := make([]label.Descriptor, 0, n)
	for i := range n {
		d, ok := e.Layout(label.Request{
			ID:   "label-" + string(rune('a'+i)),
			X:    label.Float(float64(i * 10)),
			Text: label.Literal(label.String("line one\nline two")),
		})
		if !ok {
			t.Fatal("Layout() = false")
		}
		out = append(out, d)
	}
	return out
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLabelListNavigation(t *testing.T) {
	m := NewLabelListModel(testLabels(t, 5))
	m.Height = 2

	var model tea.Model = m
	for _, k := range []string{"down", "j", "down"} {
		model, _ = model.Update(key(k))
	}
	got := model.(LabelListModel)
	if got.Cursor != 3 {
		t.Errorf("Cursor = %d, want 3", got.Cursor)
	}
	if got.Offset != 2 {
		t.Errorf("Offset = %d, want 2", got.Offset)
	}

	model, _ = model.Update(key("G"))
	if got := model.(LabelListModel); got.Cursor != 4 {
		t.Errorf("Cursor after G = %d, want 4", got.Cursor)
	}
	model, _ = model.Update(key("down"))
	if got := model.(LabelListModel); got.Cursor != 4 {
		t.Errorf("Cursor moved past the end: %d", got.Cursor)
	}

	model, _ = model.Update(key("g"))
	if got := model.(LabelListModel); got.Cursor != 0 || got.Offset != 0 {
		t.Errorf("after g: Cursor = %d, Offset = %d", got.Cursor, got.Offset)
	}
	model, _ = model.Update(key("up"))
	if got := model.(LabelListModel); got.Cursor != 0 {
		t.Errorf("Cursor moved before the start: %d", got.Cursor)
	}
}

func TestLabelListQuit(t *testing.T) {
	m := NewLabelListModel(testLabels(t, 1))
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestLabelListView(t *testing.T) {
	m := NewLabelListModel(testLabels(t, 3))
	m.Cursor = 1

	view := m.View()
	for _, want := range []string{"label-a", "label-b", "label-b-key-1", "line two", "[2/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestGeometryTable(t *testing.T) {
	out := geometryTable(testLabels(t, 2))
	for _, want := range []string{"Label", "Transform", "label-a", "label-b", "10"} {
		if !strings.Contains(out, want) {
			t.Errorf("geometryTable() missing %q:\n%s", want, out)
		}
	}
}

func TestLabelName(t *testing.T) {
	e := label.New()
	d, _ := e.Layout(label.Request{Text: label.Literal(label.String("a very long label text that goes on"))})
	if got := labelName(d); got != "a very long label tex..." {
		t.Errorf("labelName() = %q", got)
	}
}

func TestFmtNum(t *testing.T) {
	tests := map[float64]string{0: "0", 12.5: "12.5", -4.333: "-4.33", 100: "100"}
	for in, want := range tests {
		if got := fmtNum(in); got != want {
			t.Errorf("fmtNum(%v) = %q, want %q", in, got, want)
		}
	}
}
