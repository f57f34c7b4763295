package career

import (
	"fmt"
	"sort"
	"time"

	"resume-match/internal/domain/experience"
)

type ProgressionStep struct {
	Position string `json:"position"`
	Company  string `json:"company"`
	Level    Level  `json:"level"`
}

// Progression orders a work history by inferred start date, oldest first,
// and classifies each position. The sort is stable: entries whose dates tie
// or fail to parse keep their original relative order.
func Progression(entries []experience.Entry, now time.Time) []ProgressionStep {
	ordered := make([]experience.Entry, len(entries))
	copy(ordered, entries)

	sort.SliceStable(ordered, func(i, j int) bool {
		return experience.StartDate(ordered[i], now).Before(experience.StartDate(ordered[j], now))
	})

	steps := make([]ProgressionStep, 0, len(ordered))
	for _, e := range ordered {
		steps = append(steps, ProgressionStep{
			Position: e.Position,
			Company:  e.Company,
			Level:    ClassifyLevel(e.Position),
		})
	}
	return steps
}

// CurrentLevel is the level of the most recent position, Mid when the
// history is empty.
func CurrentLevel(entries []experience.Entry, now time.Time) Level {
	steps := Progression(entries, now)
	if len(steps) == 0 {
		return Mid
	}
	return steps[len(steps)-1].Level
}

type Prediction struct {
	Role     Level
	Timeline string
}

// nextLevels is the fixed adjacency table for next-role prediction. Manager
// has no successor inside the level scale.
var nextLevels = map[Level][]Level{
	Junior:    {Mid, Senior},
	Mid:       {Senior, Lead},
	Senior:    {Lead, Principal, Manager},
	Lead:      {Principal, Manager},
	Principal: {Manager},
	Manager:   {},
}

// PredictNext returns the likely next roles for a level, at most three, each
// annotated with a timeline one year further out than the last.
func PredictNext(current Level) []Prediction {
	candidates := nextLevels[current]
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}

	out := make([]Prediction, 0, len(candidates))
	for i, role := range candidates {
		out = append(out, Prediction{Role: role, Timeline: timelineLabel(i + 1)})
	}
	return out
}

func timelineLabel(years int) string {
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}
