package session

import (
	"math"
	"sort"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

const (
	recentSessionsLimit = 3
	topCategoriesLimit  = 3
)

// BuildDashboard aggregates the completed sessions of one user.
// sessions are expected newest first; unfinished sessions are ignored. Averages only
// include sessions with at least one scored answer.
func BuildDashboard(userID string, sessions []*entities.Session) *entities.Dashboard {
	d := &entities.Dashboard{
		UserID:         userID,
		RecentSessions: []entities.SessionOverview{},
		TopCategories:  []entities.CategoryStat{},
		Categories:     make([]entities.CategoryStat, 0, len(entities.Categories)),
	}

	// sessions without a single scored answer count as practice but not in averages
	type acc struct {
		sessions int
		scored   int
		total    float64
	}
	byCategory := make(map[entities.QuestionCategory]*acc)

	var (
		total  float64
		scored int
	)
	for _, s := range sessions {
		if s == nil || !s.IsCompleted() {
			continue
		}

		overview := overviewOf(s)
		d.TotalSessions++
		d.TotalMinutes += overview.Minutes
		if len(d.RecentSessions) < recentSessionsLimit {
			d.RecentSessions = append(d.RecentSessions, overview)
		}

		a, ok := byCategory[s.Settings.Category]
		if !ok {
			a = &acc{}
			byCategory[s.Settings.Category] = a
		}
		a.sessions++
		if s.ScoredCount() > 0 {
			total += overview.Score
			scored++
			a.total += overview.Score
			a.scored++
		}
	}

	if scored > 0 {
		d.AverageScore = roundTenth(total / float64(scored))
	}

	for _, c := range entities.Categories {
		stat := entities.CategoryStat{
			Category:    c,
			DisplayName: entities.CategoryDisplayName(c),
		}
		if a, ok := byCategory[c]; ok {
			stat.Sessions = a.sessions
			if a.scored > 0 {
				stat.AverageScore = roundTenth(a.total / float64(a.scored))
			}
		}
		d.Categories = append(d.Categories, stat)
	}

	for _, stat := range d.Categories {
		if a, ok := byCategory[stat.Category]; ok && a.scored > 0 {
			d.TopCategories = append(d.TopCategories, stat)
		}
	}
	sort.SliceStable(d.TopCategories, func(i, j int) bool {
		return d.TopCategories[i].AverageScore > d.TopCategories[j].AverageScore
	})
	if len(d.TopCategories) > topCategoriesLimit {
		d.TopCategories = d.TopCategories[:topCategoriesLimit]
	}

	return d
}

func overviewOf(s *entities.Session) entities.SessionOverview {
	o := entities.SessionOverview{
		ID:          s.ID,
		Title:       s.Title,
		Category:    s.Settings.Category,
		Difficulty:  s.Settings.Difficulty,
		Score:       s.RunningScore,
		CreatedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
	}
	if s.ScoredCount() > 0 {
		o.Rating = entities.RatingFor(s.RunningScore)
	}
	if s.CompletedAt != nil {
		o.Minutes = int(math.Round(s.CompletedAt.Sub(s.StartedAt).Minutes()))
	}
	return o
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
