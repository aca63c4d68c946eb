package status

import (
	"testing"

	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeriveQuizStatus(t *testing.T) {
	tests := []struct {
		name string
		item *domain.Quiz
		want domain.QuizStatusKind
	}{
		{"no attempts", &domain.Quiz{PassingScore: 70}, domain.QuizNotAttempted},
		{"passing boundary is inclusive", &domain.Quiz{Attempts: 1, BestScore: 70, PassingScore: 70}, domain.QuizPassed},
		{"just under the boundary", &domain.Quiz{Attempts: 2, BestScore: 69.9, PassingScore: 70}, domain.QuizFailed},
		{"comfortably passed", &domain.Quiz{Attempts: 3, BestScore: 95, PassingScore: 70}, domain.QuizPassed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveQuizStatus(tt.item))
		})
	}
}

func TestDeriveCertificateTier(t *testing.T) {
	tests := []struct {
		score float64
		want  CertificateTier
	}{
		{95, TierGold},
		{90, TierGold}, // lower bounds are inclusive
		{89.9, TierSilver},
		{80, TierSilver},
		{70, TierBronze},
		{69.9, TierBasic},
		{0, TierBasic},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveCertificateTier(tt.score), "score %v", tt.score)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "66.7%", FormatPercent(66.666))
	assert.Equal(t, "100.0%", FormatPercent(100))
}
