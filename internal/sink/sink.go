// Package sink receives accepted registrations.
package sink

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dukerupert/signup/internal/domain"
)

// Sink takes ownership of an accepted registration.
// Implementations: LogSink, MockSink
type Sink interface {
	Submit(ctx context.Context, reg *domain.Registration) error
}

// LogSink writes each registration as a structured log entry and keeps
// nothing.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a LogSink writing to logger.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger.With().Str("component", "sink").Logger()}
}

// Submit implements Sink.
func (s *LogSink) Submit(ctx context.Context, reg *domain.Registration) error {
	const op = "sink.submit"

	if reg == nil {
		return domain.Errorf(domain.EINVALID, op, "registration is required")
	}
	if err := ctx.Err(); err != nil {
		return domain.WrapError(err, domain.EINTERNAL, op, "submission cancelled")
	}

	event := s.logger.Info().
		Str("registration_id", reg.ID.String()).
		Str("first_name", reg.FirstName).
		Str("last_name", reg.LastName).
		Str("email", reg.Email).
		Str("phone", reg.Phone).
		Str("age", reg.Age).
		Str("gender", reg.Gender).
		Str("address", reg.Address).
		Str("country", reg.Country).
		Str("state", reg.State).
		Str("city", reg.City).
		Time("timestamp", reg.CreatedAt)

	if session := domain.SessionFromContext(ctx); session != nil {
		event = event.Str("session_id", session.ID.String()).Int("attempt", session.Attempt)
	}

	event.Msg("registration submitted")
	return nil
}
