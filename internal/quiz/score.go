package quiz

import "swayn-kiosk/internal/domain"

// Score accumulates the weights of every answer and returns the category
// with the highest total. Ties go to the primary category of the last
// answer when it is among the leaders, otherwise to the first leader in
// domain.Categories order.
func Score(answers []domain.Option) domain.Category {
	if len(answers) == 0 {
		panic("quiz: scoring requires at least one answer")
	}

	totals := make(map[domain.Category]float64, len(domain.Categories))
	for _, answer := range answers {
		for _, w := range answer.Weights {
			totals[w.Category] += w.Score
		}
	}

	best := -1.0
	var leaders []domain.Category
	for _, category := range domain.Categories {
		switch score := totals[category]; {
		case score > best:
			best = score
			leaders = []domain.Category{category}
		case score == best:
			leaders = append(leaders, category)
		}
	}

	if len(leaders) == 1 {
		return leaders[0]
	}
	last := answers[len(answers)-1].Primary()
	for _, category := range leaders {
		if category == last {
			return category
		}
	}
	return leaders[0]
}
