package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

func TestBank_Find(t *testing.T) {
	bank := NewDefaultBank()

	tests := []struct {
		name string
		pred Predicate
		ids  []string
	}{
		{"nil matches all", nil, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"by category", ByCategory(entities.CategoryTeamwork), []string{"2", "8"}},
		{"by difficulty", ByDifficulty(entities.DifficultyEasy), []string{"3", "5"}},
		{"by type", ByType(entities.QuestionTypeSituational), []string{"3", "4", "7"}},
		{
			"combined",
			All(ByCategory(entities.CategoryTeamwork), ByDifficulty(entities.DifficultyHard)),
			[]string{"8"},
		},
		{"no match", ByCategory(entities.CategoryCultureFit), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bank.Find(tt.pred)
			require.NotNil(t, got)
			ids := make([]string, 0, len(got))
			for _, q := range got {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestBank_FindReturnsCopy(t *testing.T) {
	bank := NewDefaultBank()

	got := bank.Find(nil)
	got[0].Text = "changed"

	assert.NotEqual(t, "changed", bank.Find(nil)[0].Text)
	assert.Equal(t, 8, bank.Size())
}

func TestBank_Catalog(t *testing.T) {
	catalog := NewDefaultBank().Catalog()

	require.Len(t, catalog.Categories, len(entities.Categories))
	available := map[entities.QuestionCategory]int{}
	for _, c := range catalog.Categories {
		available[c.Category] = c.Available
		assert.NotEmpty(t, c.DisplayName)
		assert.NotEmpty(t, c.Description)
	}
	assert.Equal(t, 2, available[entities.CategoryTeamwork])
	assert.Equal(t, 0, available[entities.CategoryCultureFit])

	require.Len(t, catalog.Difficulties, 3)
	assert.Equal(t, "Intermediate", catalog.Difficulties[1].Label)
	assert.Len(t, catalog.Types, 3)
}
