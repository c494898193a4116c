package filter

import (
	"strings"

	"github.com/msumanth960/epaper/internal/models"
)

// LibraryCriteria - фильтры библиотеки выпусков. Пустое поле означает "без фильтра".
type LibraryCriteria struct {
	Date     string
	State    string
	District string
	Search   string
}

// SetState меняет штат и сбрасывает выбранный округ, если штат изменился
func (c *LibraryCriteria) SetState(state string) {
	if c.State != state {
		c.District = ""
	}
	c.State = state
}

// Normalize убирает округ, выбранный без штата
func (c LibraryCriteria) Normalize() LibraryCriteria {
	if c.State == "" {
		c.District = ""
	}
	return c
}

// Match проверяет выпуск по всем активным фильтрам
func (c LibraryCriteria) Match(e models.Edition) bool {
	c = c.Normalize()
	if c.Date != "" && e.Date != c.Date {
		return false
	}
	if c.State != "" && e.State != c.State {
		return false
	}
	if c.District != "" && e.District != c.District {
		return false
	}
	if c.Search != "" && !strings.Contains(strings.ToLower(e.EditionName), strings.ToLower(c.Search)) {
		return false
	}
	return true
}

// Editions возвращает выпуски, прошедшие фильтры, в исходном порядке
func (c LibraryCriteria) Editions(editions []models.Edition) []models.Edition {
	out := make([]models.Edition, 0, len(editions))
	for _, e := range editions {
		if c.Match(e) {
			out = append(out, e)
		}
	}
	return out
}
