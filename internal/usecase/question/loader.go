package question

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

// catalogFile is the on-disk shape of a question catalog
type catalogFile struct {
	Questions []entities.Question `yaml:"questions"`
}

// LoadBank reads a YAML catalog file and builds a bank from it
func LoadBank(filename string) (*Bank, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read question catalog %s: %w", filename, err)
	}
	return ParseBank(data)
}

// ParseBank builds a bank from YAML catalog content
func ParseBank(data []byte) (*Bank, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse question catalog: %w", err)
	}

	if err := validateCatalog(file.Questions); err != nil {
		return nil, fmt.Errorf("invalid question catalog: %w", err)
	}

	return NewBank(file.Questions), nil
}

// validateCatalog checks ids are unique and every enum is known
func validateCatalog(questions []entities.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("catalog has no questions")
	}

	seen := make(map[string]struct{}, len(questions))
	for i, q := range questions {
		if strings.TrimSpace(q.ID) == "" {
			return fmt.Errorf("question %d has no id", i)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}

		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %q has no text", q.ID)
		}
		if !q.Category.IsValid() {
			return fmt.Errorf("question %q: %w: %q", q.ID, entities.ErrInvalidCategory, q.Category)
		}
		if !q.Difficulty.IsValid() {
			return fmt.Errorf("question %q: %w: %q", q.ID, entities.ErrInvalidDifficulty, q.Difficulty)
		}
		if !q.Type.IsValid() {
			return fmt.Errorf("question %q: %w: %q", q.ID, entities.ErrInvalidQuestionType, q.Type)
		}
	}

	return nil
}
