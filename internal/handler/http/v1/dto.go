package v1

// LibraryQuery DTO фильтров библиотеки выпусков
// @Description DTO фильтров библиотеки выпусков
type LibraryQuery struct {
	Date     string `form:"date" validate:"omitempty,datetime=2006-01-02"`
	State    string `form:"state" validate:"max=100"`
	District string `form:"district" validate:"max=100"`
	Search   string `form:"search" validate:"max=255"`
}

// FeedQuery DTO фильтров ленты инцидентов
// @Description DTO фильтров ленты инцидентов
type FeedQuery struct {
	Tab      string `form:"tab" validate:"omitempty,oneof=all official citizen"`
	State    string `form:"state" validate:"max=100"`
	District string `form:"district" validate:"max=100"`
	DateFrom string `form:"dateFrom" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"dateTo" validate:"omitempty,datetime=2006-01-02"`
}

// ReaderQuery DTO параметров просмотрщика. Значения вне диапазона обрезаются сервисом,
// поэтому числа разбираются вручную с насыщением вместо ошибки переполнения.
type ReaderQuery struct {
	Page string `form:"page"`
	Zoom string `form:"zoom"`
}

// CreateEditionRequest DTO для загрузки выпуска
// @Description DTO для загрузки выпуска
type CreateEditionRequest struct {
	Date        string `json:"date,omitempty"`
	State       string `json:"state"`
	District    string `json:"district"`
	EditionName string `json:"edition_name"`
	PageCount   int    `json:"page_count,omitempty"`
}

// ReportIncidentRequest DTO для сообщения об инциденте
// @Description DTO для сообщения об инциденте
type ReportIncidentRequest struct {
	Title       string `json:"title"`
	State       string `json:"state"`
	District    string `json:"district"`
	Location    string `json:"location,omitempty"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Confirmed   bool   `json:"confirmed"`
}

// RegionResponse DTO штата
type RegionResponse struct {
	Name      string   `json:"name"`
	Districts []string `json:"districts"`
}

// DistrictsResponse DTO списка округов
type DistrictsResponse struct {
	State     string   `json:"state"`
	Districts []string `json:"districts"`
}

// EditionResponse DTO для ответа с информацией о выпуске
// @Description DTO для ответа с информацией о выпуске
type EditionResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	State        string `json:"state"`
	District     string `json:"district"`
	EditionName  string `json:"edition_name"`
	DocumentURL  string `json:"document_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	PageCount    int    `json:"page_count"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	State       string `json:"state"`
	District    string `json:"district"`
	Category    string `json:"category"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ReportType  string `json:"report_type"`
}

// EditionListResponse DTO списка выпусков с количеством найденных
type EditionListResponse struct {
	Count int                `json:"count"`
	Items []*EditionResponse `json:"items"`
}

// IncidentListResponse DTO списка инцидентов с количеством найденных
type IncidentListResponse struct {
	Count int                 `json:"count"`
	Items []*IncidentResponse `json:"items"`
}

// StateActivityResponse DTO самого активного штата
type StateActivityResponse struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

// DashboardResponse DTO главной страницы
// @Description DTO главной страницы
type DashboardResponse struct {
	Today              string                 `json:"today"`
	TodayEditions      []*EditionResponse     `json:"today_editions"`
	TodayIncidentCount int                    `json:"today_incident_count"`
	TotalIncidents     int                    `json:"total_incidents"`
	TopState           *StateActivityResponse `json:"top_state,omitempty"`
	LatestIncidents    []*IncidentResponse    `json:"latest_incidents"`
}

// ReaderResponse DTO состояния просмотрщика
// @Description DTO состояния просмотрщика
type ReaderResponse struct {
	Edition          *EditionResponse    `json:"edition"`
	Page             int                 `json:"page"`
	Zoom             int                 `json:"zoom"`
	DocumentURL      string              `json:"document_url"`
	HasPrev          bool                `json:"has_prev"`
	HasNext          bool                `json:"has_next"`
	RelatedIncidents []*IncidentResponse `json:"related_incidents"`
}

// FieldErrorResponse DTO ошибки поля формы
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrorResponse DTO ответа на невалидную форму
// @Description DTO ответа на невалидную форму
type ValidationErrorResponse struct {
	Error  string               `json:"error"`
	Errors []FieldErrorResponse `json:"errors"`
}
