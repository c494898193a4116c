package draft

import (
	"fmt"
	"strings"
	"time"

	"github.com/msumanth960/epaper/internal/models"
)

// DefaultPageCount - число страниц загружаемого выпуска, если оно не указано
const DefaultPageCount = 12

// EditionDraft - форма загрузки выпуска
type EditionDraft struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	State       string `json:"state" validate:"required"`
	District    string `json:"district" validate:"required"`
	EditionName string `json:"edition_name" validate:"required,notblank,max=255"`
	PageCount   int    `json:"page_count" validate:"gte=0"`
}

// SetState меняет штат и сбрасывает округ, если штат изменился
func (d *EditionDraft) SetState(state string) {
	if d.State != state {
		d.District = ""
	}
	d.State = state
}

// Edition строит запись выпуска из проверенной формы
func (d EditionDraft) Edition(id string) models.Edition {
	pages := d.PageCount
	if pages == 0 {
		pages = DefaultPageCount
	}
	name := strings.TrimSpace(d.EditionName)
	return models.Edition{
		ID:           id,
		Date:         d.Date,
		State:        d.State,
		District:     d.District,
		EditionName:  name,
		DocumentURL:  fmt.Sprintf("/dummy/%s.pdf", slug(name)),
		ThumbnailURL: fmt.Sprintf("/dummy/thumb-%s.jpg", id),
		PageCount:    pages,
	}
}

// IncidentDraft - форма сообщения об инциденте
type IncidentDraft struct {
	Title       string          `json:"title" validate:"required,notblank,max=255"`
	State       string          `json:"state" validate:"required"`
	District    string          `json:"district" validate:"required"`
	Location    string          `json:"location" validate:"max=255"`
	Category    models.Category `json:"category" validate:"required,oneof=Accident Crime Politics Weather Other"`
	Description string          `json:"description" validate:"required,notblank"`
	Confirmed   bool            `json:"confirmed" validate:"required"`
}

func (d *IncidentDraft) SetState(state string) {
	if d.State != state {
		d.District = ""
	}
	d.State = state
}

// Incident строит запись инцидента. Пользовательские сообщения всегда
// создаются со статусом Reported и типом Citizen.
func (d IncidentDraft) Incident(id string, at time.Time) models.Incident {
	return models.Incident{
		ID:          id,
		Title:       strings.TrimSpace(d.Title),
		State:       d.State,
		District:    d.District,
		Category:    d.Category,
		Timestamp:   at.UTC().Format(models.TimestampLayout),
		Description: strings.TrimSpace(d.Description),
		Status:      models.StatusReported,
		ReportType:  models.ReportTypeCitizen,
	}
}

func slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
