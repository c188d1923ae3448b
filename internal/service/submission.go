package service

import (
	"context"
	"strings"

	"github.com/dukerupert/signup/internal/domain"
	"github.com/dukerupert/signup/internal/form"
	"github.com/dukerupert/signup/internal/render"
	"github.com/dukerupert/signup/internal/telemetry"
)

// Submit re-runs every field rule against the current values.
//
// On any failure the session moves to Rejected, every field verdict is
// repainted, the error banner is shown and a *domain.ValidationError listing
// each failing field is returned.
//
// When everything passes the session moves to Accepted, the normalized record
// is handed to the sink and the success banner is shown. After ResetDelay the
// form is cleared and the session returns to Idle; FeedbackHideDelay later the
// banners are hidden. A sink failure is logged and counted but does not undo
// the acceptance.
func (s *Session) Submit(ctx context.Context) (*domain.Registration, error) {
	const op = "registration.submit"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.status == domain.SubmissionAccepted {
		s.metrics.ObserveSubmission(telemetry.OutcomeConflict)
		return nil, ErrSubmissionInProgress
	}

	// A pending banner hide belongs to the previous submission.
	if s.hideTimer != nil {
		s.hideTimer.Stop()
		s.hideTimer = nil
		s.gen++
	}
	s.renderer.HideError()
	s.renderer.HideSuccess()

	s.attempt++
	s.status = domain.SubmissionValidating

	var failed error
	for _, f := range form.Fields {
		result := s.validator.Validate(f, s.values)
		s.renderer.SetFieldResult(f, result)
		if !result.Valid {
			failed = domain.AddFieldError(failed, string(f), result.Message)
			s.metrics.ObserveSubmitFailure(string(f), string(result.Reason))
		}
	}
	s.refreshSubmit()

	if failed != nil {
		ve := failed.(*domain.ValidationError)
		ve.Op = op
		ve.Summary = domain.DefaultValidationSummary

		s.status = domain.SubmissionRejected
		s.renderer.ShowError(ve.Summary)
		s.metrics.ObserveSubmission(telemetry.OutcomeRejected)

		s.logger.Info().
			Int("attempt", s.attempt).
			Strs("fields", ve.FieldNames()).
			Msg("registration rejected")
		return nil, ve
	}

	reg := s.buildRegistration()
	s.status = domain.SubmissionAccepted
	s.metrics.ObserveSubmission(telemetry.OutcomeAccepted)

	sinkCtx := domain.NewContextWithSession(ctx, &domain.Session{ID: s.id, Attempt: s.attempt})
	if err := s.sink.Submit(sinkCtx, reg); err != nil {
		s.metrics.ObserveSinkFailure()
		s.logger.Error().
			Err(err).
			Str("op", domain.ErrorOp(err)).
			Str("registration_id", reg.ID.String()).
			Msg("sink rejected registration")
	}

	s.renderer.ShowSuccess(render.DefaultSuccess())

	gen := s.gen
	s.resetTimer = s.scheduler.AfterFunc(s.timings.ResetDelay, func() { s.reset(gen) })

	s.logger.Info().
		Int("attempt", s.attempt).
		Str("registration_id", reg.ID.String()).
		Msg("registration accepted")

	out := *reg
	return &out, nil
}

// buildRegistration normalizes the current values into the output record.
func (s *Session) buildRegistration() *domain.Registration {
	v := s.values
	return &domain.Registration{
		ID:        s.newID(),
		FirstName: strings.TrimSpace(v.FirstName),
		LastName:  strings.TrimSpace(v.LastName),
		Email:     strings.TrimSpace(v.Email),
		Phone:     strings.TrimSpace(v.Phone),
		Age:       orNotProvided(v.Age),
		Gender:    v.Gender,
		Address:   orNotProvided(v.Address),
		Country:   v.Country,
		State:     v.State,
		City:      v.City,
		CreatedAt: s.now(),
	}
}

func orNotProvided(raw string) string {
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return trimmed
	}
	return domain.NotProvided
}

// reset clears the form after an accepted submission and schedules the
// banner hide.
func (s *Session) reset(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.gen {
		return
	}
	s.resetTimer = nil

	s.values = form.Values{}
	for _, f := range form.Fields {
		s.renderer.ClearField(f)
	}
	s.renderInitial()
	s.status = domain.SubmissionIdle
	s.metrics.ObserveReset()

	s.hideTimer = s.scheduler.AfterFunc(s.timings.FeedbackHideDelay, func() { s.hideBanners(gen) })

	s.logger.Debug().Msg("form reset")
}

func (s *Session) hideBanners(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.gen {
		return
	}
	s.hideTimer = nil

	s.renderer.HideSuccess()
	s.renderer.HideError()
}
