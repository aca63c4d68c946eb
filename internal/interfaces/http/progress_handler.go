package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pot-code/elearn-bff/internal/enrollment"
	"github.com/pot-code/elearn-bff/internal/identity"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
	"github.com/pot-code/elearn-bff/internal/infrastructure/validate"
	"github.com/pot-code/elearn-bff/internal/progress"
)

// ProgressHandler topic completion operations
type ProgressHandler struct {
	tracker            *progress.Tracker
	enrollmentResolver *enrollment.Resolver
	identityResolver   *identity.Resolver
	jwtUtil            *auth.JWTUtil
	validator          validate.Validator
}

// NewProgressHandler create a progress controller instance
func NewProgressHandler(
	Tracker *progress.Tracker,
	EnrollmentResolver *enrollment.Resolver,
	IdentityResolver *identity.Resolver,
	JWTUtil *auth.JWTUtil,
	Validator validate.Validator,
) *ProgressHandler {
	return &ProgressHandler{Tracker, EnrollmentResolver, IdentityResolver, JWTUtil, Validator}
}

type completionRequest struct {
	ModuleID string `json:"module_id" validate:"required"`
	TopicID  string `json:"topic_id" validate:"required"`
}

// HandleTopicComplete record a topic completion. The write and the
// aggregate refresh are non-fatal: on failure the response carries a nil
// record and the presentation layer keeps its previously displayed state.
func (ph *ProgressHandler) HandleTopicComplete(c echo.Context) error {
	post := new(completionRequest)
	if err := c.Bind(post); err != nil {
		internal := err.(*echo.HTTPError).Internal
		return c.JSON(http.StatusUnprocessableEntity,
			NewRESTStandardError(http.StatusUnprocessableEntity, internal.Error()))
	}
	if err := ph.validator.Struct(post); err != nil {
		return c.JSON(http.StatusBadRequest,
			NewRESTValidationError(http.StatusBadRequest, "Failed to validate fields", err))
	}

	viewer := resolveViewer(ph.jwtUtil, ph.identityResolver, c)
	courseID := c.Param("id")
	ctx := c.Request().Context()

	result, err := ph.enrollmentResolver.Resolve(ctx, viewer, courseID)
	if err != nil {
		return err
	}
	if !result.CanMutate() {
		return c.JSON(http.StatusForbidden,
			NewRESTStandardError(http.StatusForbidden, "Not enrolled in this course"))
	}

	record := ph.tracker.OnTopicComplete(ctx, viewer, courseID, post.ModuleID, post.TopicID)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"record": record,
	})
}
