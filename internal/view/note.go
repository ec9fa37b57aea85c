package view

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/stripdeck/stripdeck/internal/strip"
	"github.com/stripdeck/stripdeck/internal/theme"
)

// NoteView renders a free-form note tile: title line plus wrapped body.
type NoteView struct {
	base
}

// NewNoteView creates an unbound note view.
func NewNoteView() *NoteView {
	return &NoteView{base: base{category: strip.CategoryNote}}
}

// Render draws the note inside its tile frame.
func (v *NoteView) Render() string {
	w, h := v.innerSize()
	if w == 0 || h == 0 {
		return ""
	}

	title, body := "", ""
	if v.item != nil {
		title = v.item.Title
		body = v.item.Body
	}

	header := theme.TitleStyle(v.fontSize).
		Render(theme.CategoryIcon(strip.CategoryNote) + " " + title)
	content := theme.BodyStyle().Width(w).Render(body)

	inner := lipgloss.NewStyle().
		Width(w).
		Height(h).
		MaxHeight(h).
		Render(header + "\n" + content)

	return theme.TileStyle(v.focused, v.throttled()).Render(inner)
}

// TaskView renders a task/idea session tile: the body is treated as a
// checklist, one entry per line, entries starting with "x " shown done.
type TaskView struct {
	base
}

// NewTaskView creates an unbound task view.
func NewTaskView() *TaskView {
	return &TaskView{base: base{category: strip.CategoryTask}}
}

// Render draws the checklist inside its tile frame.
func (v *TaskView) Render() string {
	w, h := v.innerSize()
	if w == 0 || h == 0 {
		return ""
	}

	title := ""
	var lines []string
	if v.item != nil {
		title = v.item.Title
		for _, line := range strings.Split(v.item.Body, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if rest, done := strings.CutPrefix(line, "x "); done {
				lines = append(lines, "[x] "+rest)
			} else {
				lines = append(lines, "[ ] "+line)
			}
		}
	}

	header := theme.TitleStyle(v.fontSize).
		Render(theme.CategoryIcon(strip.CategoryTask) + " " + title)
	content := theme.BodyStyle().Width(w).Render(strings.Join(lines, "\n"))

	inner := lipgloss.NewStyle().
		Width(w).
		Height(h).
		MaxHeight(h).
		Render(header + "\n" + content)

	return theme.TileStyle(v.focused, v.throttled()).Render(inner)
}
