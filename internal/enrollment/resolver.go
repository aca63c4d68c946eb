package enrollment

import (
	"context"

	"github.com/pot-code/elearn-bff/internal/domain"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

// FetchFailurePolicy what to report when the enrollment fetch itself fails
type FetchFailurePolicy int

const (
	// FailOpen report the viewer as enrolled on fetch failure. Availability
	// over strictness: a transient authority outage must not lock a
	// legitimate learner out of content, and the authority re-validates
	// enrollment on every write anyway.
	FailOpen FetchFailurePolicy = iota
	// FailClosed report the viewer as not enrolled on fetch failure
	FailClosed
)

// Resolver settles the (viewer, course) enrollment question from the
// viewer's enrollment set
type Resolver struct {
	gateway domain.AuthorityGateway
	policy  FetchFailurePolicy
	logger  *zap.Logger
}

// NewResolver create a resolver with the given failure policy. The policy
// is fixed at construction so flipping it touches no call site.
func NewResolver(gateway domain.AuthorityGateway, policy FetchFailurePolicy, logger *zap.Logger) *Resolver {
	return &Resolver{
		gateway: gateway,
		policy:  policy,
		logger:  logger,
	}
}

// Resolve fetch the viewer's enrollment set and search it for courseID.
// Records arrive with a canonical course identifier (the gateway normalizes
// the two upstream shapes before they get here). A fetch failure resolves
// per the configured policy instead of propagating; it is logged, never
// surfaced as a blocking error.
func (r *Resolver) Resolve(ctx context.Context, viewer domain.Identity, courseID string) (*domain.EnrollmentResult, error) {
	apmSpan, ctx := apm.StartSpan(ctx, "EnrollmentResolver.Resolve", "service")
	defer apmSpan.End()

	records, err := r.gateway.FetchEnrollments(ctx, viewer.UID)
	if err != nil {
		r.logger.Warn("Enrollment fetch failed, applying failure policy",
			zap.String("course.id", courseID),
			zap.Int("policy", int(r.policy)),
			zap.Error(err),
		)
		if r.policy == FailOpen {
			return &domain.EnrollmentResult{Status: domain.EnrollmentEnrolled}, nil
		}
		return &domain.EnrollmentResult{Status: domain.EnrollmentNotEnrolled}, nil
	}

	for _, record := range records {
		if record.CourseID == courseID {
			return &domain.EnrollmentResult{
				Status: domain.EnrollmentEnrolled,
				Record: record,
			}, nil
		}
	}
	return &domain.EnrollmentResult{Status: domain.EnrollmentNotEnrolled}, nil
}
