package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/pot-code/elearn-bff/internal/identity"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
	"github.com/pot-code/elearn-bff/internal/infrastructure/validate"
	"github.com/pot-code/elearn-bff/internal/progress"
)

// PlayerHandler course-playback entry operations
type PlayerHandler struct {
	tracker          *progress.Tracker
	identityResolver *identity.Resolver
	jwtUtil          *auth.JWTUtil
	validator        validate.Validator
}

// NewPlayerHandler create a player controller instance
func NewPlayerHandler(
	Tracker *progress.Tracker,
	IdentityResolver *identity.Resolver,
	JWTUtil *auth.JWTUtil,
	Validator validate.Validator,
) *PlayerHandler {
	return &PlayerHandler{Tracker, IdentityResolver, JWTUtil, Validator}
}

// HandleEnterPlayback decide what the playback view does on entry: redirect
// to the overview when not enrolled, auto-navigate from the bare course
// root, or render the requested target.
func (ph *PlayerHandler) HandleEnterPlayback(c echo.Context) error {
	viewer := resolveViewer(ph.jwtUtil, ph.identityResolver, c)
	courseID := c.Param("id")
	moduleID := c.QueryParam("module")
	topicID := c.QueryParam("topic")

	// the target is all-or-nothing: both params empty means the bare course
	// root, a half-specified target is a caller bug
	if moduleID != "" || topicID != "" {
		var fieldErrors []*validate.FieldError
		fieldErrors = append(fieldErrors, ph.validator.Empty("module", moduleID)...)
		fieldErrors = append(fieldErrors, ph.validator.Empty("topic", topicID)...)
		if len(fieldErrors) > 0 {
			return c.JSON(http.StatusBadRequest,
				NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", fieldErrors))
		}
	}

	decision, err := ph.tracker.EnterPlayback(c.Request().Context(), viewer, courseID, moduleID, topicID)
	if err != nil {
		if errors.Is(err, domain.ErrCourseUnavailable) {
			return c.JSON(http.StatusBadGateway,
				NewRESTStandardError(http.StatusBadGateway, err.Error()))
		}
		return err
	}
	return c.JSON(http.StatusOK, decision)
}
