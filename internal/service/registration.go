// Package service drives a registration form session: it applies field edits,
// keeps dependent dropdowns consistent, and runs the submission state machine.
package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dukerupert/signup/internal/domain"
	"github.com/dukerupert/signup/internal/form"
	"github.com/dukerupert/signup/internal/reference"
	"github.com/dukerupert/signup/internal/render"
	"github.com/dukerupert/signup/internal/schedule"
	"github.com/dukerupert/signup/internal/sink"
	"github.com/dukerupert/signup/internal/telemetry"
)

// Default post-success timings.
const (
	DefaultResetDelay        = 2 * time.Second
	DefaultFeedbackHideDelay = 5 * time.Second
)

// Timings controls the delayed actions after an accepted submission.
type Timings struct {
	// ResetDelay runs from acceptance until the form is cleared.
	ResetDelay time.Duration

	// FeedbackHideDelay runs from the reset until the banners are hidden.
	FeedbackHideDelay time.Duration
}

// DefaultTimings returns the standard 2s reset and 5s banner hide.
func DefaultTimings() Timings {
	return Timings{ResetDelay: DefaultResetDelay, FeedbackHideDelay: DefaultFeedbackHideDelay}
}

// SessionDeps are the collaborators of a Session. Renderer and Sink are
// required; everything else has a default.
type SessionDeps struct {
	Tables    *reference.Tables // default: reference.Default()
	Renderer  render.Renderer
	Sink      sink.Sink
	Scheduler schedule.Scheduler // default: wall clock
	Metrics   *telemetry.RegistrationMetrics
	Logger    zerolog.Logger
	Now       func() time.Time // default: time.Now
	NewID     func() uuid.UUID // default: uuid.New
}

// Session owns the form values of one registration attempt and everything
// derived from them. All methods are safe for concurrent use; user events and
// scheduled callbacks are serialized.
type Session struct {
	mu sync.Mutex

	id      uuid.UUID
	attempt int
	values  form.Values
	status  domain.SubmissionStatus
	closed  bool

	// gen invalidates scheduled callbacks that lost a race with Stop.
	gen        int
	resetTimer schedule.Timer
	hideTimer  schedule.Timer

	validator *form.Validator
	resolver  *form.Resolver
	renderer  render.Renderer
	sink      sink.Sink
	scheduler schedule.Scheduler
	metrics   *telemetry.RegistrationMetrics
	logger    zerolog.Logger
	now       func() time.Time
	newID     func() uuid.UUID
	timings   Timings
}

// NewSession creates an idle session with empty values and renders the
// initial state: dependent dropdowns disabled, submit disabled.
func NewSession(deps SessionDeps, timings Timings) (*Session, error) {
	if deps.Renderer == nil {
		return nil, ErrRendererRequired
	}
	if deps.Sink == nil {
		return nil, ErrSinkRequired
	}

	tables := deps.Tables
	if tables == nil {
		tables = reference.Default()
	}
	scheduler := deps.Scheduler
	if scheduler == nil {
		scheduler = schedule.NewClock()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	newID := deps.NewID
	if newID == nil {
		newID = uuid.New
	}
	if timings.ResetDelay <= 0 {
		timings.ResetDelay = DefaultResetDelay
	}
	if timings.FeedbackHideDelay <= 0 {
		timings.FeedbackHideDelay = DefaultFeedbackHideDelay
	}

	id := uuid.New()
	s := &Session{
		id:        id,
		status:    domain.SubmissionIdle,
		validator: form.NewValidator(tables),
		resolver:  form.NewResolver(tables),
		renderer:  deps.Renderer,
		sink:      deps.Sink,
		scheduler: scheduler,
		metrics:   deps.Metrics,
		logger:    deps.Logger.With().Str("component", "registration").Str("session_id", id.String()).Logger(),
		now:       now,
		newID:     newID,
		timings:   timings,
	}

	s.renderInitial()
	s.logger.Debug().Msg("session started")
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Status returns the current submission state.
func (s *Session) Status() domain.SubmissionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Values returns a copy of the current form values.
func (s *Session) Values() form.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values
}

// Validator returns the validator the session uses.
func (s *Session) Validator() *form.Validator {
	return s.validator
}

// Resolver returns the cascade resolver the session uses.
func (s *Session) Resolver() *form.Resolver {
	return s.resolver
}

// OnFieldChanged applies one user edit. It stores the raw value, refreshes
// dependent dropdowns when country or state actually changed, validates the
// field, and recomputes whether the form may be submitted.
//
// The returned update is nil unless the edit triggered a cascade. Edits are
// rejected with ECONFLICT while an accepted submission is waiting to reset.
func (s *Session) OnFieldChanged(name, value string) (form.Result, *form.CascadeUpdate, error) {
	const op = "registration.field"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEditable(); err != nil {
		return form.Result{}, nil, err
	}

	f, err := form.ParseFieldName(name)
	if err != nil {
		return form.Result{}, nil, err
	}

	previous := s.values.Get(f)
	if err := s.values.Set(f, value); err != nil {
		return form.Result{}, nil, domain.WrapError(err, domain.EINVALID, op, domain.ErrorMessage(err))
	}

	var update *form.CascadeUpdate
	if changed := s.values.Get(f) != previous; changed {
		switch f {
		case form.FieldCountry:
			update = s.resolver.CountryChanged(s.values.Country)
		case form.FieldState:
			update = s.resolver.StateChanged(s.values.State)
		}
	}
	if update != nil {
		s.applyCascade(update)
	}

	result := s.validator.Validate(f, s.values)
	s.renderer.SetFieldResult(f, result)
	s.metrics.ObserveField(string(f), result.Valid)

	s.revalidateDependents(f)
	s.refreshSubmit()

	s.logger.Debug().
		Str("field", string(f)).
		Bool("valid", result.Valid).
		Str("reason", string(result.Reason)).
		Msg("field changed")

	return result, update, nil
}

// SetTerms records terms acceptance.
func (s *Session) SetTerms(accepted bool) (form.Result, error) {
	value := "false"
	if accepted {
		value = "true"
	}
	result, _, err := s.OnFieldChanged(string(form.FieldTerms), value)
	return result, err
}

// Close cancels every pending scheduled action. Further edits and submissions
// fail with ErrSessionClosed. Close is idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.stopTimers()
	s.logger.Debug().Msg("session closed")
	return nil
}

// =============================================================================
// Internals (callers hold s.mu)
// =============================================================================

func (s *Session) checkEditable() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.status == domain.SubmissionAccepted {
		return ErrSubmissionInProgress
	}
	return nil
}

// applyCascade clears stale downstream selections and repaints dropdowns.
func (s *Session) applyCascade(update *form.CascadeUpdate) {
	for _, f := range update.Cleared {
		if err := s.values.Set(f, ""); err != nil {
			s.logger.Error().Err(err).Str("field", string(f)).Msg("failed to clear dependent field")
			continue
		}
		s.renderer.ClearField(f)
	}
	for _, d := range update.Dropdowns {
		s.renderer.SetDropdown(d)
	}
	s.metrics.ObserveCascade(string(update.Source))
}

// revalidateDependents refreshes fields whose verdict reads the edited field.
// Untouched dependents stay without feedback.
func (s *Session) revalidateDependents(f form.FieldName) {
	switch f {
	case form.FieldPassword:
		strength := form.ClassifyStrength(s.values.Password)
		s.renderer.SetStrength(strength)
		s.metrics.ObserveStrength(string(strength))

		if s.values.ConfirmPassword != "" {
			s.renderer.SetFieldResult(form.FieldConfirmPassword, s.validator.Validate(form.FieldConfirmPassword, s.values))
		}
	case form.FieldCountry:
		if s.values.Phone != "" {
			s.renderer.SetFieldResult(form.FieldPhone, s.validator.Validate(form.FieldPhone, s.values))
		}
	}
}

func (s *Session) refreshSubmit() {
	s.renderer.SetSubmitEnabled(s.validator.IsSubmittable(s.values))
}

func (s *Session) renderInitial() {
	for _, d := range form.InitialDropdowns() {
		s.renderer.SetDropdown(d)
	}
	s.renderer.SetStrength(form.StrengthAbsent)
	s.renderer.SetSubmitEnabled(false)
}

func (s *Session) stopTimers() {
	s.gen++
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
	if s.hideTimer != nil {
		s.hideTimer.Stop()
		s.hideTimer = nil
	}
}
