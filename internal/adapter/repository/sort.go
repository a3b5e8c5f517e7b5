package repository

import (
	"sort"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

// sortNewestFirst orders sessions by start time, newest first, ties by id
func sortNewestFirst(sessions []*entities.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].StartedAt.Equal(sessions[j].StartedAt) {
			return sessions[i].ID > sessions[j].ID
		}
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})
}
