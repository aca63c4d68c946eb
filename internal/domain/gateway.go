package domain

import "context"

// AuthorityGateway request/response contract with the remote authority.
// Every write is re-validated by the authority; this side is never the
// enforcement point of record.
type AuthorityGateway interface {
	FetchEnrollments(ctx context.Context, viewerID string) ([]*Enrollment, error)
	FetchCourse(ctx context.Context, viewerID, courseID string) (*Course, error)
	FetchAssignments(ctx context.Context, viewerID, courseID string) ([]*Assignment, error)
	FetchQuizzes(ctx context.Context, viewerID, courseID string) ([]*Quiz, error)
	PushProgress(ctx context.Context, viewerID string, update *ProgressUpdate) error
	FetchUnreadCount(ctx context.Context, viewerID string) (int, error)
}
