package service

import (
	"github.com/dukerupert/signup/internal/domain"
)

// Session state errors - use domain.ECONFLICT
var (
	ErrSubmissionInProgress = domain.Errorf(domain.ECONFLICT, "", "Your registration is still being processed")
	ErrSessionClosed        = domain.Errorf(domain.ECONFLICT, "", "Registration session is closed")
)

// Construction errors - use domain.EINVALID
var (
	ErrRendererRequired = domain.Errorf(domain.EINVALID, "", "Renderer is required")
	ErrSinkRequired     = domain.Errorf(domain.EINVALID, "", "Submission sink is required")
)
