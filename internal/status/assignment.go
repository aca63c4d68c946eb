package status

import (
	"fmt"
	"math"
	"time"

	"github.com/pot-code/elearn-bff/internal/domain"
)

// DeriveAssignmentStatus map an assignment snapshot to its display state.
// Precedence is strict: a graded submission wins over everything, a pending
// submission wins over the due date, and only then does the clock matter.
func DeriveAssignmentStatus(item *domain.Assignment, now time.Time) domain.AssignmentStatus {
	if sub := item.Submission; sub != nil {
		switch sub.Status {
		case domain.SubmissionGraded:
			return domain.AssignmentStatus{
				Kind:  domain.AssignmentGraded,
				Score: sub.Score,
				Total: item.TotalPoints,
			}
		case domain.SubmissionPending:
			return domain.AssignmentStatus{Kind: domain.AssignmentPendingReview}
		}
	}
	if now.After(item.DueAt) {
		return domain.AssignmentStatus{Kind: domain.AssignmentOverdue}
	}
	return domain.AssignmentStatus{Kind: domain.AssignmentNotSubmitted}
}

// DaysUntilDue ceil of the remaining time in days; negative when past due
func DaysUntilDue(due, now time.Time) int {
	return int(math.Ceil(float64(due.Sub(now)) / float64(24*time.Hour)))
}

// DueLabel human label for the remaining time
func DueLabel(due, now time.Time) string {
	days := DaysUntilDue(due, now)
	switch {
	case days == -1:
		return "1 day overdue"
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	}
	return fmt.Sprintf("%d days remaining", days)
}
