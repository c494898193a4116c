package v1

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/msumanth960/epaper/internal/draft"
	"github.com/msumanth960/epaper/internal/filter"
	"github.com/msumanth960/epaper/internal/models"
)

// LibraryQueryToCriteria строит критерии библиотеки. Округ без штата отбрасывается.
func LibraryQueryToCriteria(q LibraryQuery) filter.LibraryCriteria {
	return filter.LibraryCriteria{
		Date:     q.Date,
		State:    q.State,
		District: q.District,
		Search:   q.Search,
	}.Normalize()
}

// FeedQueryToCriteria строит критерии ленты, пустая вкладка означает "all"
func FeedQueryToCriteria(q FeedQuery) filter.FeedCriteria {
	return filter.FeedCriteria{
		Tab:      filter.Tab(q.Tab),
		State:    q.State,
		District: q.District,
		DateFrom: q.DateFrom,
		DateTo:   q.DateTo,
	}.Normalize()
}

// ParseReaderQuery возвращает страницу и масштаб. Пустое значение дает 0,
// число за пределами int насыщается до math.MaxInt или math.MinInt.
func ParseReaderQuery(q ReaderQuery) (page, zoom int, err error) {
	if page, err = saturatingAtoi(q.Page); err != nil {
		return 0, 0, err
	}
	if zoom, err = saturatingAtoi(q.Zoom); err != nil {
		return 0, 0, err
	}
	return page, zoom, nil
}

func saturatingAtoi(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	return 0, err
}

// DTOToEditionDraft преобразует запрос загрузки в форму
func DTOToEditionDraft(dto CreateEditionRequest) draft.EditionDraft {
	return draft.EditionDraft{
		Date:        dto.Date,
		State:       dto.State,
		District:    dto.District,
		EditionName: dto.EditionName,
		PageCount:   dto.PageCount,
	}
}

// DTOToIncidentDraft преобразует запрос сообщения в форму
func DTOToIncidentDraft(dto ReportIncidentRequest) draft.IncidentDraft {
	return draft.IncidentDraft{
		Title:       dto.Title,
		State:       dto.State,
		District:    dto.District,
		Location:    dto.Location,
		Category:    models.Category(dto.Category),
		Description: dto.Description,
		Confirmed:   dto.Confirmed,
	}
}

func ModelsToRegionResponses(regions []models.Region) []*RegionResponse {
	responses := make([]*RegionResponse, len(regions))
	for i, r := range regions {
		responses[i] = &RegionResponse{Name: r.Name, Districts: r.Districts}
	}
	return responses
}

// ModelToEditionResponse преобразует доменную модель в DTO для ответа
func ModelToEditionResponse(model *models.Edition) *EditionResponse {
	return &EditionResponse{
		ID:           model.ID,
		Date:         model.Date,
		State:        model.State,
		District:     model.District,
		EditionName:  model.EditionName,
		DocumentURL:  model.DocumentURL,
		ThumbnailURL: model.ThumbnailURL,
		PageCount:    model.PageCount,
	}
}

// ModelsToEditionResponses преобразует слайс моделей в слайс DTO
func ModelsToEditionResponses(editions []models.Edition) []*EditionResponse {
	responses := make([]*EditionResponse, len(editions))
	for i := range editions {
		responses[i] = ModelToEditionResponse(&editions[i])
	}
	return responses
}

func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		Title:       model.Title,
		State:       model.State,
		District:    model.District,
		Category:    string(model.Category),
		Timestamp:   model.Timestamp,
		Description: model.Description,
		Status:      string(model.Status),
		ReportType:  string(model.ReportType),
	}
}

func ModelsToIncidentResponses(incidents []models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i := range incidents {
		responses[i] = ModelToIncidentResponse(&incidents[i])
	}
	return responses
}

func ModelToDashboardResponse(model *models.DashboardSummary) *DashboardResponse {
	resp := &DashboardResponse{
		Today:              model.Today,
		TodayEditions:      ModelsToEditionResponses(model.TodayEditions),
		TodayIncidentCount: model.TodayIncidentCount,
		TotalIncidents:     model.TotalIncidents,
		LatestIncidents:    ModelsToIncidentResponses(model.LatestIncidents),
	}
	if model.TopState != nil {
		resp.TopState = &StateActivityResponse{State: model.TopState.State, Count: model.TopState.Count}
	}
	return resp
}

func ModelToReaderResponse(model *models.ReaderView) *ReaderResponse {
	return &ReaderResponse{
		Edition:          ModelToEditionResponse(&model.Edition),
		Page:             model.Page,
		Zoom:             model.Zoom,
		DocumentURL:      model.DocumentURL,
		HasPrev:          model.HasPrev,
		HasNext:          model.HasNext,
		RelatedIncidents: ModelsToIncidentResponses(model.RelatedIncidents),
	}
}

// ResultToValidationResponse преобразует результат проверки формы в DTO ошибки
func ResultToValidationResponse(res draft.Result) *ValidationErrorResponse {
	resp := &ValidationErrorResponse{
		Error:  "validation failed",
		Errors: make([]FieldErrorResponse, len(res.Errors)),
	}
	for i, fe := range res.Errors {
		resp.Errors[i] = FieldErrorResponse{Field: fe.Field, Tag: fe.Tag, Message: fe.Message}
	}
	return resp
}
