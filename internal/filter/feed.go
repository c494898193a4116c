package filter

import (
	"github.com/msumanth960/epaper/internal/models"
)

// Tab - вкладка ленты по источнику сообщения
type Tab string

const (
	TabAll      Tab = "all"
	TabOfficial Tab = "official"
	TabCitizen  Tab = "citizen"
)

// endOfDay дописывается к dateTo, чтобы включить весь последний день
const endOfDay = "T23:59:59"

// FeedCriteria - фильтры новостной ленты
type FeedCriteria struct {
	Tab      Tab
	State    string
	District string
	DateFrom string
	DateTo   string
}

// SetState меняет штат и сбрасывает округ, если штат изменился
func (c *FeedCriteria) SetState(state string) {
	if c.State != state {
		c.District = ""
	}
	c.State = state
}

func (c FeedCriteria) Normalize() FeedCriteria {
	if c.Tab == "" {
		c.Tab = TabAll
	}
	if c.State == "" {
		c.District = ""
	}
	return c
}

func (c FeedCriteria) Match(inc models.Incident) bool {
	c = c.Normalize()
	switch c.Tab {
	case TabOfficial:
		if inc.ReportType != models.ReportTypeOfficial {
			return false
		}
	case TabCitizen:
		if inc.ReportType != models.ReportTypeCitizen {
			return false
		}
	}
	if c.State != "" && inc.State != c.State {
		return false
	}
	if c.District != "" && inc.District != c.District {
		return false
	}
	if c.DateFrom != "" && inc.Date() < c.DateFrom {
		return false
	}
	if c.DateTo != "" && inc.Timestamp > c.DateTo+endOfDay {
		return false
	}
	return true
}

// Incidents возвращает инциденты, прошедшие фильтры, в исходном порядке
func (c FeedCriteria) Incidents(incidents []models.Incident) []models.Incident {
	out := make([]models.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if c.Match(inc) {
			out = append(out, inc)
		}
	}
	return out
}
