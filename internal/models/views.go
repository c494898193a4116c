package models

// StateActivity - штат с наибольшим числом инцидентов
type StateActivity struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

// DashboardSummary собирает данные главной страницы
type DashboardSummary struct {
	Today              string         `json:"today"`
	TodayEditions      []Edition      `json:"today_editions"`
	TodayIncidentCount int            `json:"today_incident_count"`
	TotalIncidents     int            `json:"total_incidents"`
	TopState           *StateActivity `json:"top_state,omitempty"`
	LatestIncidents    []Incident     `json:"latest_incidents"`
}

// ReaderView - состояние просмотрщика выпуска
type ReaderView struct {
	Edition          Edition    `json:"edition"`
	Page             int        `json:"page"`
	Zoom             int        `json:"zoom"`
	DocumentURL      string     `json:"document_url"`
	HasPrev          bool       `json:"has_prev"`
	HasNext          bool       `json:"has_next"`
	RelatedIncidents []Incident `json:"related_incidents"`
}
