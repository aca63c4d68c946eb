package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/pot-code/elearn-bff/internal/enrollment"
	"github.com/pot-code/elearn-bff/internal/identity"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
	"github.com/pot-code/elearn-bff/internal/status"
)

// CourseHandler course-scoped listing operations
type CourseHandler struct {
	enrollmentResolver *enrollment.Resolver
	gateway            domain.AuthorityGateway
	identityResolver   *identity.Resolver
	jwtUtil            *auth.JWTUtil
}

// NewCourseHandler create a course controller instance
func NewCourseHandler(
	EnrollmentResolver *enrollment.Resolver,
	Gateway domain.AuthorityGateway,
	IdentityResolver *identity.Resolver,
	JWTUtil *auth.JWTUtil,
) *CourseHandler {
	return &CourseHandler{EnrollmentResolver, Gateway, IdentityResolver, JWTUtil}
}

type assignmentView struct {
	*domain.Assignment
	Status   domain.AssignmentStatus `json:"derived_status"`
	DueLabel string                  `json:"due_label"`
}

type quizView struct {
	*domain.Quiz
	Status       domain.QuizStatusKind  `json:"derived_status"`
	ScoreDisplay string                 `json:"score_display,omitempty"`
	ScoreTier    status.CertificateTier `json:"score_tier,omitempty"`
}

// HandleGetEnrollment settle the (viewer, course) enrollment question. The
// result also tells the presentation layer whether content-mutating actions
// are enabled.
func (ch *CourseHandler) HandleGetEnrollment(c echo.Context) error {
	viewer := resolveViewer(ch.jwtUtil, ch.identityResolver, c)
	courseID := c.Param("id")

	result, err := ch.enrollmentResolver.Resolve(c.Request().Context(), viewer, courseID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     result.Status,
		"record":     result.Record,
		"can_mutate": result.CanMutate(),
	})
}

// HandleListAssignments list the course's assignments with derived display
// statuses. A fetch failure is a recoverable display state; no retry is
// scheduled here.
func (ch *CourseHandler) HandleListAssignments(c echo.Context) error {
	viewer := resolveViewer(ch.jwtUtil, ch.identityResolver, c)
	courseID := c.Param("id")

	items, err := ch.gateway.FetchAssignments(c.Request().Context(), viewer.UID, courseID)
	if err != nil {
		return c.JSON(http.StatusBadGateway,
			NewRESTStandardError(http.StatusBadGateway, domain.ErrWorkItemsUnavailable.Error()))
	}

	now := time.Now()
	views := make([]*assignmentView, 0, len(items))
	for _, item := range items {
		views = append(views, &assignmentView{
			Assignment: item,
			Status:     status.DeriveAssignmentStatus(item, now),
			DueLabel:   status.DueLabel(item.DueAt, now),
		})
	}
	return c.JSON(http.StatusOK, views)
}

// HandleListQuizzes list the course's quizzes with derived display
// statuses. CanAttempt comes straight from the snapshot.
func (ch *CourseHandler) HandleListQuizzes(c echo.Context) error {
	viewer := resolveViewer(ch.jwtUtil, ch.identityResolver, c)
	courseID := c.Param("id")

	items, err := ch.gateway.FetchQuizzes(c.Request().Context(), viewer.UID, courseID)
	if err != nil {
		return c.JSON(http.StatusBadGateway,
			NewRESTStandardError(http.StatusBadGateway, domain.ErrWorkItemsUnavailable.Error()))
	}

	views := make([]*quizView, 0, len(items))
	for _, item := range items {
		view := &quizView{
			Quiz:   item,
			Status: status.DeriveQuizStatus(item),
		}
		if item.Attempts > 0 {
			// rounding happens at display only, after status derivation
			view.ScoreDisplay = status.FormatPercent(item.BestScore)
			view.ScoreTier = status.DeriveCertificateTier(item.BestScore)
		}
		views = append(views, view)
	}
	return c.JSON(http.StatusOK, views)
}
