package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dukerupert/signup/internal/form"
)

// Terminal writes each update as one line of text.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTerminal creates a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, format+"\n", args...)
}

// SetFieldResult implements Renderer.
func (t *Terminal) SetFieldResult(field form.FieldName, result form.Result) {
	if result.Valid {
		t.printf("  [ok] %s", field.Label())
		return
	}
	t.printf("  [!!] %s: %s", field.Label(), result.Message)
}

// ClearField implements Renderer.
func (t *Terminal) ClearField(field form.FieldName) {
	t.printf("  [--] %s cleared", field.Label())
}

// SetDropdown implements Renderer.
func (t *Terminal) SetDropdown(d form.Dropdown) {
	switch {
	case !d.Enabled:
		t.printf("  [..] %s disabled %s", d.Field.Label(), optionList(d.Options))
	case d.FreeEntry:
		t.printf("  [..] %s: enter any value", d.Field.Label())
	default:
		t.printf("  [..] %s options %s", d.Field.Label(), optionList(d.Options))
	}
}

// SetStrength implements Renderer.
func (t *Terminal) SetStrength(s form.Strength) {
	if s == form.StrengthAbsent {
		t.printf("  [..] password strength hidden")
		return
	}
	t.printf("  [..] password strength: %s", s)
}

// SetSubmitEnabled implements Renderer.
func (t *Terminal) SetSubmitEnabled(enabled bool) {
	if enabled {
		t.printf("  [..] submit enabled")
		return
	}
	t.printf("  [..] submit disabled")
}

// ShowError implements Renderer.
func (t *Terminal) ShowError(message string) {
	t.printf("ERROR: %s", message)
}

// HideError implements Renderer.
func (t *Terminal) HideError() {}

// ShowSuccess implements Renderer.
func (t *Terminal) ShowSuccess(s Success) {
	t.printf("%s %s", s.Title, s.Message)
	t.printf("%s", s.Notice)
}

// HideSuccess implements Renderer.
func (t *Terminal) HideSuccess() {
	t.printf("  [..] banners hidden")
}

func optionList(options []string) string {
	if len(options) == 0 {
		return "[]"
	}
	return "[" + strings.Join(options, ", ") + "]"
}
