package domain

import "time"

// SubmissionStatus status recorded by the remote authority on a submission
type SubmissionStatus string

const (
	SubmissionGraded  SubmissionStatus = "graded"
	SubmissionPending SubmissionStatus = "pending"
)

// Submission graded or pending assignment submission record
type Submission struct {
	Score  float64          `json:"score"`
	Status SubmissionStatus `json:"status"`
}

// Assignment immutable work-item snapshot fetched per view. All mutations
// happen remotely and are observed on the next fetch.
type Assignment struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	DueAt       time.Time   `json:"due_at"`
	TotalPoints float64     `json:"total_points"`
	AllowsLate  bool        `json:"allows_late"`
	Submission  *Submission `json:"submission,omitempty"`
}

// Quiz immutable work-item snapshot. CanAttempt is a server-supplied
// boundary: attempt-limit exhaustion is never inferred locally, so the
// display cannot diverge from server-side attempt accounting.
type Quiz struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	PassingScore float64 `json:"passing_score"`
	MaxAttempts  int     `json:"max_attempts"`
	Attempts     int     `json:"attempts"`
	BestScore    float64 `json:"best_score"`
	CanAttempt   bool    `json:"can_attempt"`
}

// AssignmentStatusKind display taxonomy for assignments
type AssignmentStatusKind string

const (
	AssignmentGraded        AssignmentStatusKind = "graded"
	AssignmentPendingReview AssignmentStatusKind = "pending_review"
	AssignmentOverdue       AssignmentStatusKind = "overdue"
	AssignmentNotSubmitted  AssignmentStatusKind = "not_submitted"
)

// AssignmentStatus derived display state; Score/Total are set only when
// Kind is AssignmentGraded
type AssignmentStatus struct {
	Kind  AssignmentStatusKind `json:"kind"`
	Score float64              `json:"score,omitempty"`
	Total float64              `json:"total,omitempty"`
}

// QuizStatusKind display taxonomy for quizzes
type QuizStatusKind string

const (
	QuizNotAttempted QuizStatusKind = "not_attempted"
	QuizPassed       QuizStatusKind = "passed"
	QuizFailed       QuizStatusKind = "failed"
)
