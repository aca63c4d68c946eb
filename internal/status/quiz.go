package status

import (
	"github.com/pot-code/elearn-bff/internal/domain"
)

// DeriveQuizStatus map a quiz snapshot to its display state. The passing
// boundary is inclusive and compared without rounding. Whether another
// attempt is allowed is taken from the snapshot's CanAttempt as reported by
// the server, never derived here.
func DeriveQuizStatus(item *domain.Quiz) domain.QuizStatusKind {
	if item.Attempts == 0 {
		return domain.QuizNotAttempted
	}
	if item.BestScore >= item.PassingScore {
		return domain.QuizPassed
	}
	return domain.QuizFailed
}
