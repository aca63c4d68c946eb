package domain

// EnrollmentStatus lifecycle of the viewer's relation to one course
type EnrollmentStatus string

// possible enrollment statuses, EnrollmentUnknown until the resolver settles
const (
	EnrollmentUnknown     EnrollmentStatus = "unknown"
	EnrollmentEnrolled    EnrollmentStatus = "enrolled"
	EnrollmentNotEnrolled EnrollmentStatus = "not_enrolled"
)

// Enrollment per-course progress aggregate held by the remote authority.
// It is session-scoped on this side: created when a course view mounts,
// discarded when it unmounts, never persisted locally.
type Enrollment struct {
	CourseID        string   `json:"course_id"`
	CourseTitle     string   `json:"course_title,omitempty"`
	CompletedTopics []string `json:"completed_topics"`
	PercentComplete float64  `json:"percent_complete"`
}

// TopicCompleted report whether the aggregate records the topic as done
func (e *Enrollment) TopicCompleted(topicID string) bool {
	for _, id := range e.CompletedTopics {
		if id == topicID {
			return true
		}
	}
	return false
}

// EnrollmentResult settled resolver outcome for a (viewer, course) pair.
// Record is nil unless a matching aggregate was found.
type EnrollmentResult struct {
	Status EnrollmentStatus `json:"status"`
	Record *Enrollment      `json:"record,omitempty"`
}

// CanMutate report whether content-mutating actions (start quiz, submit
// assignment, mark topic done) are enabled for this result. Read-only
// browsing stays allowed regardless.
func (r *EnrollmentResult) CanMutate() bool {
	return r.Status == EnrollmentEnrolled
}
