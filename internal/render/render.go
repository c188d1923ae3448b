// Package render defines the presentation collaborator the registration
// session drives. The session decides what to show; a Renderer decides how.
package render

import "github.com/dukerupert/signup/internal/form"

// Success texts shown after an accepted submission.
const (
	SuccessTitle   = "Registration Successful!"
	SuccessMessage = "Your profile has been submitted successfully."
	SuccessNotice  = "Your registration has been submitted."
)

// Success is the banner shown after an accepted submission.
type Success struct {
	Title   string
	Message string
	Notice  string
}

// DefaultSuccess returns the standard success banner.
func DefaultSuccess() Success {
	return Success{Title: SuccessTitle, Message: SuccessMessage, Notice: SuccessNotice}
}

// Renderer receives presentation updates from a registration session.
// Implementations: Terminal (line-oriented text), Recorder (tests)
type Renderer interface {
	// SetFieldResult shows the verdict for one field.
	SetFieldResult(field form.FieldName, result form.Result)

	// ClearField removes all feedback for the field.
	ClearField(field form.FieldName)

	// SetDropdown replaces the options and enabled state of a dependent dropdown.
	SetDropdown(d form.Dropdown)

	// SetStrength shows the password strength tier. StrengthAbsent hides it.
	SetStrength(s form.Strength)

	SetSubmitEnabled(enabled bool)

	ShowError(message string)
	HideError()

	ShowSuccess(s Success)
	HideSuccess()
}
