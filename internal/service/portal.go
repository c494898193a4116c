package service

//go:generate mockgen -source=portal.go -destination=mocks/mock_portal.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/msumanth960/epaper/internal/catalog"
	"github.com/msumanth960/epaper/internal/config"
	"github.com/msumanth960/epaper/internal/draft"
	"github.com/msumanth960/epaper/internal/events"
	"github.com/msumanth960/epaper/internal/filter"
	"github.com/msumanth960/epaper/internal/models"
	"github.com/msumanth960/epaper/internal/reader"
	"github.com/sirupsen/logrus"
)

// RecentUploadsLimit - сколько последних загрузок показывается пользователю
const RecentUploadsLimit = 5

var (
	ErrEditionNotFound  = errors.New("edition not found")
	ErrIncidentNotFound = errors.New("incident not found")
)

// EditionRepository определяет контракт хранилища загруженных выпусков
type EditionRepository interface {
	Save(ctx context.Context, edition *models.Edition) error
	List(ctx context.Context, limit int) ([]models.Edition, error)
}

// IncidentRepository определяет контракт хранилища сообщений об инцидентах
type IncidentRepository interface {
	Save(ctx context.Context, incident *models.Incident) error
	List(ctx context.Context, limit int) ([]models.Incident, error)
}

// PortalService определяет контракт бизнес-логики портала
type PortalService interface {
	Regions(ctx context.Context) []models.Region
	Districts(ctx context.Context, state string) []string
	Dashboard(ctx context.Context) (*models.DashboardSummary, error)
	Library(ctx context.Context, criteria filter.LibraryCriteria) ([]models.Edition, error)
	Feed(ctx context.Context, criteria filter.FeedCriteria) ([]models.Incident, error)
	OpenEdition(ctx context.Context, id string, page, zoom int) (*models.ReaderView, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	SubmitEdition(ctx context.Context, d draft.EditionDraft) (*models.Edition, error)
	RecentUploads(ctx context.Context) ([]models.Edition, error)
	ReportIncident(ctx context.Context, d draft.IncidentDraft) (*models.Incident, error)
	SubmittedIncidents(ctx context.Context) ([]models.Incident, error)
}

type portalService struct {
	catalog   *catalog.Catalog
	editions  EditionRepository
	incidents IncidentRepository
	publisher events.Publisher
	validator *draft.Validator
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewPortalService(
	cat *catalog.Catalog,
	editions EditionRepository,
	incidents IncidentRepository,
	publisher events.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) PortalService {
	return &portalService{
		catalog:   cat,
		editions:  editions,
		incidents: incidents,
		publisher: publisher,
		validator: draft.NewValidator(),
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Regions возвращает справочник штатов
func (s *portalService) Regions(_ context.Context) []models.Region {
	return s.catalog.Regions()
}

// Districts возвращает округа штата, для неизвестного штата - пустой список
func (s *portalService) Districts(_ context.Context, state string) []string {
	return s.catalog.DistrictsOf(state)
}

// Dashboard собирает сводку главной страницы на опорную дату
func (s *portalService) Dashboard(_ context.Context) (*models.DashboardSummary, error) {
	today := s.cfg.Today
	log := s.logger.WithFields(logrus.Fields{
		"service": "portal",
		"method":  "Dashboard",
		"today":   today,
	})

	all := s.catalog.Incidents()
	summary := &models.DashboardSummary{
		Today:              today,
		TodayEditions:      s.catalog.EditionsOnDate(today),
		TodayIncidentCount: filter.CountOnDate(all, today),
		TotalIncidents:     len(all),
		LatestIncidents:    s.catalog.LatestIncidents(catalog.DefaultLatestLimit),
	}
	if state, count, ok := filter.TopState(all); ok {
		summary.TopState = &models.StateActivity{State: state, Count: count}
	}

	log.WithField("today_editions", len(summary.TodayEditions)).Debug("Dashboard computed")
	return summary, nil
}

// Library фильтрует выпуски каталога
func (s *portalService) Library(_ context.Context, criteria filter.LibraryCriteria) ([]models.Edition, error) {
	editions := criteria.Editions(s.catalog.Editions())

	s.logger.WithFields(logrus.Fields{
		"service": "portal",
		"method":  "Library",
		"state":   criteria.State,
		"count":   len(editions),
	}).Debug("Library filtered")
	return editions, nil
}

// Feed фильтрует ленту инцидентов
func (s *portalService) Feed(_ context.Context, criteria filter.FeedCriteria) ([]models.Incident, error) {
	incidents := criteria.Incidents(s.catalog.Incidents())

	s.logger.WithFields(logrus.Fields{
		"service": "portal",
		"method":  "Feed",
		"tab":     criteria.Tab,
		"count":   len(incidents),
	}).Debug("Feed filtered")
	return incidents, nil
}

// OpenEdition открывает выпуск в просмотрщике вместе с инцидентами того же округа
func (s *portalService) OpenEdition(_ context.Context, id string, page, zoom int) (*models.ReaderView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "portal",
		"method":     "OpenEdition",
		"edition_id": id,
	})

	edition, ok := s.catalog.EditionByID(id)
	if !ok {
		log.Warn("Edition not found")
		return nil, fmt.Errorf("service: edition %s: %w", id, ErrEditionNotFound)
	}

	v := reader.Open(edition, page, zoom)
	log.WithFields(logrus.Fields{"page": v.Page(), "zoom": v.Zoom()}).Info("Edition opened")
	return v.View(s.catalog.IncidentsAt(edition.State, edition.District)), nil
}

// GetIncident возвращает инцидент каталога по ID
func (s *portalService) GetIncident(_ context.Context, id string) (*models.Incident, error) {
	incident, ok := s.catalog.IncidentByID(id)
	if !ok {
		s.logger.WithFields(logrus.Fields{
			"service":     "portal",
			"method":      "GetIncident",
			"incident_id": id,
		}).Warn("Incident not found")
		return nil, fmt.Errorf("service: incident %s: %w", id, ErrIncidentNotFound)
	}
	return &incident, nil
}

// SubmitEdition проверяет форму загрузки и сохраняет выпуск
func (s *portalService) SubmitEdition(ctx context.Context, d draft.EditionDraft) (*models.Edition, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "portal",
		"method":       "SubmitEdition",
		"edition_name": d.EditionName,
	})
	log.Info("Attempting to submit a new edition")

	if d.Date == "" {
		d.Date = s.now().UTC().Format(models.DateLayout)
	}

	if res := s.validator.Edition(d, s.catalog); !res.Valid() {
		log.WithField("errors", len(res.Errors)).Warn("Edition draft rejected")
		return nil, &draft.ValidationError{Result: res}
	}

	edition := d.Edition("ep-" + uuid.NewString())
	if err := s.editions.Save(ctx, &edition); err != nil {
		log.WithError(err).Error("Failed to save edition in repository")
		return nil, fmt.Errorf("service: could not save edition: %w", err)
	}

	s.publish(ctx, log, events.Event{Kind: events.KindEditionUploaded, Timestamp: s.now().UTC(), Edition: &edition})
	log.WithField("edition_id", edition.ID).Info("Edition submitted successfully")
	return &edition, nil
}

// RecentUploads возвращает последние загрузки, новые первыми
func (s *portalService) RecentUploads(ctx context.Context) ([]models.Edition, error) {
	editions, err := s.editions.List(ctx, RecentUploadsLimit)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "portal",
			"method":  "RecentUploads",
		}).WithError(err).Error("Failed to list editions from repository")
		return nil, fmt.Errorf("service: could not list recent uploads: %w", err)
	}
	return editions, nil
}

// ReportIncident проверяет форму сообщения и сохраняет инцидент
func (s *portalService) ReportIncident(ctx context.Context, d draft.IncidentDraft) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "portal",
		"method":  "ReportIncident",
		"title":   d.Title,
	})
	log.Info("Attempting to report a new incident")

	if res := s.validator.Incident(d, s.catalog); !res.Valid() {
		log.WithField("errors", len(res.Errors)).Warn("Incident draft rejected")
		return nil, &draft.ValidationError{Result: res}
	}

	now := s.now()
	incident := d.Incident("inc-"+uuid.NewString(), now)
	if err := s.incidents.Save(ctx, &incident); err != nil {
		log.WithError(err).Error("Failed to save incident in repository")
		return nil, fmt.Errorf("service: could not save incident: %w", err)
	}

	s.publish(ctx, log, events.Event{Kind: events.KindIncidentReported, Timestamp: now.UTC(), Incident: &incident})
	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"location":    d.Location,
	}).Info("Incident reported successfully")
	return &incident, nil
}

// SubmittedIncidents возвращает все сообщения текущей сессии
func (s *portalService) SubmittedIncidents(ctx context.Context) ([]models.Incident, error) {
	incidents, err := s.incidents.List(ctx, 0)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "portal",
			"method":  "SubmittedIncidents",
		}).WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list submitted incidents: %w", err)
	}
	return incidents, nil
}

// publish не прерывает отправку при ошибке очереди, только пишет в лог
func (s *portalService) publish(ctx context.Context, log *logrus.Entry, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish submission event")
	}
}
