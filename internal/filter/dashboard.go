package filter

import (
	"github.com/msumanth960/epaper/internal/models"
)

// CountOnDate считает инциденты, у которых дата метки равна date
func CountOnDate(incidents []models.Incident, date string) int {
	n := 0
	for _, inc := range incidents {
		if inc.Date() == date {
			n++
		}
	}
	return n
}

// TopState возвращает штат с наибольшим числом инцидентов.
// При равенстве побеждает штат, встретившийся первым.
func TopState(incidents []models.Incident) (string, int, bool) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, inc := range incidents {
		if _, seen := counts[inc.State]; !seen {
			order = append(order, inc.State)
		}
		counts[inc.State]++
	}
	if len(order) == 0 {
		return "", 0, false
	}

	top := order[0]
	for _, state := range order[1:] {
		if counts[state] > counts[top] {
			top = state
		}
	}
	return top, counts[top], true
}
