package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/signup/internal/domain"
	"github.com/dukerupert/signup/internal/form"
	"github.com/dukerupert/signup/internal/render"
	"github.com/dukerupert/signup/internal/schedule"
	"github.com/dukerupert/signup/internal/service"
	"github.com/dukerupert/signup/internal/sink"
	"github.com/dukerupert/signup/internal/telemetry"
)

func TestSubmit_RejectsInvalidForm(t *testing.T) {
	h := newHarness(t)

	h.set(t, form.FieldFirstName, "J")
	h.set(t, form.FieldEmail, "user@tempmail.com")

	reg, err := h.session.Submit(context.Background())
	require.Error(t, err)
	assert.Nil(t, reg)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "registration.submit", ve.Op)
	assert.Equal(t, "First name must be at least 2 characters", ve.Fields["first_name"])
	assert.Equal(t, "Disposable email domains are not allowed", ve.Fields["email"])
	assert.Contains(t, ve.Fields, "terms")
	assert.NotContains(t, ve.Fields, "age", "empty optional fields pass")
	assert.NotContains(t, ve.Fields, "state", "state waits for a country")

	assert.Equal(t, "Please fix the errors above and try again.", domain.ErrorMessage(err))
	assert.Equal(t, "Please fix the errors above and try again.", h.renderer.ErrorBanner())
	assert.Equal(t, domain.SubmissionRejected, h.session.Status())
	assert.Empty(t, h.sink.Calls())

	shown, ok := h.renderer.Field(form.FieldLastName)
	require.True(t, ok, "submit repaints untouched fields")
	assert.Equal(t, form.ReasonRequired, shown.Reason)
}

func TestSubmit_AcceptedEndToEnd(t *testing.T) {
	h := newHarness(t)
	h.fillValid(t)

	reg, err := h.session.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, reg)

	assert.Equal(t, domain.SubmissionAccepted, h.session.Status())
	assert.Equal(t, "John", reg.FirstName)
	assert.Equal(t, "Doe", reg.LastName)
	assert.Equal(t, "john.doe@example.com", reg.Email)
	assert.Equal(t, "5551234567", reg.Phone)
	assert.Equal(t, domain.NotProvided, reg.Age)
	assert.Equal(t, domain.NotProvided, reg.Address)
	assert.Equal(t, "male", reg.Gender)
	assert.Equal(t, "USA", reg.Country)
	assert.Equal(t, "California", reg.State)
	assert.Equal(t, "Los Angeles", reg.City)
	assert.NotEqual(t, uuid.Nil, reg.ID)

	calls := h.sink.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, reg.ID, calls[0].ID)

	success := h.renderer.Success()
	require.NotNil(t, success)
	assert.Equal(t, "Registration Successful!", success.Title)
	assert.Equal(t, "Your profile has been submitted successfully.", success.Message)
	assert.Equal(t, "Your registration has been submitted.", success.Notice)
	assert.Empty(t, h.renderer.ErrorBanner())
}

func TestSubmit_SentinelsOnlyForEmptyOptionalFields(t *testing.T) {
	h := newHarness(t)
	h.fillValid(t)
	h.set(t, form.FieldAge, " 30 ")
	h.set(t, form.FieldAddress, "  221B Baker Street ")
	h.set(t, form.FieldFirstName, "  John ")

	reg, err := h.session.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "30", reg.Age)
	assert.Equal(t, "221B Baker Street", reg.Address)
	assert.Equal(t, "John", reg.FirstName)
}

func TestSubmit_ResetAndBannerHideTimeline(t *testing.T) {
	h := newHarness(t)
	h.fillValid(t)

	_, err := h.session.Submit(context.Background())
	require.NoError(t, err)

	h.clock.Advance(1999 * time.Millisecond)
	assert.Equal(t, domain.SubmissionAccepted, h.session.Status())
	assert.Equal(t, "John", h.session.Values().FirstName)

	h.clock.Advance(time.Millisecond)
	assert.Equal(t, domain.SubmissionIdle, h.session.Status())
	assert.Equal(t, form.Values{}, h.session.Values())
	assert.Zero(t, h.renderer.FeedbackCount())
	assert.False(t, h.renderer.SubmitEnabled())
	assert.Equal(t, form.StrengthAbsent, h.renderer.Strength())
	state, _ := h.renderer.Dropdown(form.FieldState)
	assert.False(t, state.Enabled)
	assert.Empty(t, state.Options)
	assert.NotNil(t, h.renderer.Success(), "banners outlive the reset")

	h.clock.Advance(4999 * time.Millisecond)
	assert.NotNil(t, h.renderer.Success())

	h.clock.Advance(time.Millisecond)
	assert.Nil(t, h.renderer.Success())
	assert.Zero(t, h.clock.Pending())
}

func TestSubmit_ConflictWhileAccepted(t *testing.T) {
	h := newHarness(t)
	h.fillValid(t)

	_, err := h.session.Submit(context.Background())
	require.NoError(t, err)

	_, err = h.session.Submit(context.Background())
	assert.ErrorIs(t, err, service.ErrSubmissionInProgress)
	assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))

	_, _, err = h.session.OnFieldChanged("first_name", "Jane")
	assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
	assert.Equal(t, "John", h.session.Values().FirstName)

	assert.Len(t, h.sink.Calls(), 1)
}

func TestSubmit_NewSubmissionCancelsBannerHide(t *testing.T) {
	h := newHarness(t)
	h.fillValid(t)

	_, err := h.session.Submit(context.Background())
	require.NoError(t, err)
	h.clock.Advance(2 * time.Second)
	require.Equal(t, domain.SubmissionIdle, h.session.Status())

	// Immediately submit the now-empty form; the old hide timer must not
	// clear the new error banner.
	_, err = h.session.Submit(context.Background())
	require.Error(t, err)
	assert.Nil(t, h.renderer.Success(), "previous banners cleared on submit")
	assert.Zero(t, h.clock.Pending())

	h.clock.Advance(10 * time.Second)
	assert.Equal(t, domain.DefaultValidationSummary, h.renderer.ErrorBanner())
}

func TestSubmit_ResubmitAfterRejection(t *testing.T) {
	h := newHarness(t)
	h.fillValid(t)
	h.set(t, form.FieldPhone, "555123")

	_, err := h.session.Submit(context.Background())
	require.Error(t, err)

	fields := domain.GetValidationFields(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "Phone must have 10 digits for USA", fields["phone"])

	h.set(t, form.FieldPhone, "5551234567")
	reg, err := h.session.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "5551234567", reg.Phone)
	assert.Empty(t, h.renderer.ErrorBanner(), "error banner cleared on resubmit")
}

func TestSubmit_SinkFailureKeepsAcceptance(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := telemetry.NewRegistrationMetrics("signup", reg)
	failing := sink.NewMockSink()
	failing.SubmitFunc = func(ctx context.Context, r *domain.Registration) error {
		return domain.Internal(errors.New("connection refused"), "sink.submit", "sink unavailable")
	}
	clock := schedule.NewManual()

	session, err := service.NewSession(service.SessionDeps{
		Renderer:  render.NewRecorder(),
		Sink:      failing,
		Scheduler: clock,
		Metrics:   metrics,
		Logger:    zerolog.Nop(),
	}, service.DefaultTimings())
	require.NoError(t, err)
	defer session.Close()

	h := &harness{session: session, clock: clock}
	h.fillValid(t)

	_, err = session.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionAccepted, session.Status())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SinkFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Submissions.WithLabelValues(telemetry.OutcomeAccepted)))

	clock.Advance(2 * time.Second)
	assert.Equal(t, domain.SubmissionIdle, session.Status())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Resets))
}

func TestSubmit_SinkSeesSessionContext(t *testing.T) {
	h := newHarness(t)
	h.fillValid(t)

	var seen *domain.Session
	h.sink.SubmitFunc = func(ctx context.Context, r *domain.Registration) error {
		seen = domain.SessionFromContext(ctx)
		return nil
	}

	_, err := h.session.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, h.session.ID(), seen.ID)
	assert.Equal(t, 1, seen.Attempt)
}

func TestSubmit_InjectedClockAndIDs(t *testing.T) {
	fixed := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	id := uuid.MustParse("0b7e9f55-61f2-4d6c-9b3a-2f7c7d1c5e11")

	session, err := service.NewSession(service.SessionDeps{
		Renderer:  render.NewRecorder(),
		Sink:      sink.NewMockSink(),
		Scheduler: schedule.NewManual(),
		Logger:    zerolog.Nop(),
		Now:       func() time.Time { return fixed },
		NewID:     func() uuid.UUID { return id },
	}, service.Timings{})
	require.NoError(t, err)
	defer session.Close()

	h := &harness{session: session}
	h.fillValid(t)

	reg, err := session.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixed, reg.CreatedAt)
	assert.Equal(t, id, reg.ID)
}

func TestSubmit_CloseCancelsPendingReset(t *testing.T) {
	h := newHarness(t)
	h.fillValid(t)

	_, err := h.session.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, h.clock.Pending())

	require.NoError(t, h.session.Close())
	assert.Zero(t, h.clock.Pending())

	h.clock.Advance(time.Minute)
	assert.Equal(t, domain.SubmissionAccepted, h.session.Status(), "no reset after close")

	_, err = h.session.Submit(context.Background())
	assert.ErrorIs(t, err, service.ErrSessionClosed)
}

func TestSubmit_RejectionMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := telemetry.NewRegistrationMetrics("signup", reg)

	session, err := service.NewSession(service.SessionDeps{
		Renderer:  render.NewRecorder(),
		Sink:      sink.NewMockSink(),
		Scheduler: schedule.NewManual(),
		Metrics:   metrics,
		Logger:    zerolog.Nop(),
	}, service.DefaultTimings())
	require.NoError(t, err)
	defer session.Close()

	_, err = session.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Submissions.WithLabelValues(telemetry.OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SubmissionFieldFails.WithLabelValues("email", "required")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SubmissionFieldFails.WithLabelValues("terms", "not_accepted")))
}
