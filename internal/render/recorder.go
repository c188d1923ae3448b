package render

import (
	"sync"

	"github.com/dukerupert/signup/internal/form"
)

// Recorder is a Renderer that keeps the latest presentation state in memory
// and counts every call. It is safe for concurrent use.
type Recorder struct {
	mu sync.Mutex

	fields        map[form.FieldName]form.Result
	dropdowns     map[form.FieldName]form.Dropdown
	strength      form.Strength
	submitEnabled bool
	errorMessage  string
	success       *Success

	calls map[string]int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		fields:    make(map[form.FieldName]form.Result),
		dropdowns: make(map[form.FieldName]form.Dropdown),
		calls:     make(map[string]int),
	}
}

func (r *Recorder) SetFieldResult(field form.FieldName, result form.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["SetFieldResult"]++
	r.fields[field] = result
}

func (r *Recorder) ClearField(field form.FieldName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["ClearField"]++
	delete(r.fields, field)
}

func (r *Recorder) SetDropdown(d form.Dropdown) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["SetDropdown"]++
	d.Options = append([]string(nil), d.Options...)
	r.dropdowns[d.Field] = d
}

func (r *Recorder) SetStrength(s form.Strength) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["SetStrength"]++
	r.strength = s
}

func (r *Recorder) SetSubmitEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["SetSubmitEnabled"]++
	r.submitEnabled = enabled
}

func (r *Recorder) ShowError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["ShowError"]++
	r.errorMessage = message
}

func (r *Recorder) HideError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["HideError"]++
	r.errorMessage = ""
}

func (r *Recorder) ShowSuccess(s Success) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["ShowSuccess"]++
	r.success = &s
}

func (r *Recorder) HideSuccess() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["HideSuccess"]++
	r.success = nil
}

// =============================================================================
// Inspection
// =============================================================================

// Field returns the feedback currently shown for field.
func (r *Recorder) Field(field form.FieldName) (form.Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.fields[field]
	return res, ok
}

// Dropdown returns the current state of a dependent dropdown.
func (r *Recorder) Dropdown(field form.FieldName) (form.Dropdown, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.dropdowns[field]
	return d, ok
}

func (r *Recorder) Strength() form.Strength {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.strength
}

func (r *Recorder) SubmitEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.submitEnabled
}

// ErrorBanner returns the visible error banner, or "" when hidden.
func (r *Recorder) ErrorBanner() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errorMessage
}

// Success returns the visible success banner, or nil when hidden.
func (r *Recorder) Success() *Success {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.success == nil {
		return nil
	}
	s := *r.success
	return &s
}

// FeedbackCount returns how many fields currently show feedback.
func (r *Recorder) FeedbackCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fields)
}

// Calls returns how many times the named method was invoked.
func (r *Recorder) Calls(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[method]
}

var (
	_ Renderer = (*Recorder)(nil)
	_ Renderer = (*Terminal)(nil)
)
