package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"swayn-kiosk/internal/domain"
)

func single(c domain.Category) domain.Option {
	return domain.Option{Text: string(c), Weights: []domain.Weight{{Category: c, Score: 1}}}
}

func TestScoreClearWinner(t *testing.T) {
	answers := []domain.Option{
		single(domain.CategoryA), single(domain.CategoryB), single(domain.CategoryC), single(domain.CategoryD),
	}
	for i := 0; i < 6; i++ {
		answers = append(answers, single(domain.CategoryA))
	}
	assert.Equal(t, domain.CategoryA, Score(answers))
}

func TestScoreTieGoesToLastPrimary(t *testing.T) {
	answers := []domain.Option{
		single(domain.CategoryA),
		single(domain.CategoryA),
		single(domain.CategoryC),
		single(domain.CategoryC),
	}
	assert.Equal(t, domain.CategoryC, Score(answers))
}

func TestScoreTieFallsBackToEnumerationOrder(t *testing.T) {
	answers := []domain.Option{
		single(domain.CategoryC),
		single(domain.CategoryB),
		{Text: "half", Weights: []domain.Weight{{Category: domain.CategoryD, Score: 0.5}}},
	}
	// B and C tie at 1; the last primary is D, so the earliest leader wins.
	assert.Equal(t, domain.CategoryB, Score(answers))
}

func TestScoreFractionalOverlap(t *testing.T) {
	answers := []domain.Option{
		{Weights: []domain.Weight{{Category: domain.CategoryB, Score: 1}, {Category: domain.CategoryD, Score: 0.5}}},
		{Weights: []domain.Weight{{Category: domain.CategoryD, Score: 1}}},
		{Weights: []domain.Weight{{Category: domain.CategoryC, Score: 1}, {Category: domain.CategoryB, Score: 0.5}}},
	}
	// B=1.5, D=1.5, C=1; last primary C is not a leader, so B.
	assert.Equal(t, domain.CategoryB, Score(answers))
}

func TestScoreIsDeterministic(t *testing.T) {
	answers := []domain.Option{single(domain.CategoryD), single(domain.CategoryA), single(domain.CategoryD)}
	first := Score(answers)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Score(answers))
	}
}

func TestScorePanicsWithoutAnswers(t *testing.T) {
	assert.Panics(t, func() { Score(nil) })
}
