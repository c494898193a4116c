package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/msumanth960/epaper/internal/models"
)

// IncidentRepository хранит сообщения пользователей в PostgreSQL
type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) *IncidentRepository {
	return &IncidentRepository{
		db: db,
	}
}

// Save сохраняет новое сообщение об инциденте
func (r *IncidentRepository) Save(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO submitted_incidents (id, title, state, district, category, reported_at, description, status, report_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		incident.ID,
		incident.Title,
		incident.State,
		incident.District,
		string(incident.Category),
		incident.Timestamp,
		incident.Description,
		string(incident.Status),
		string(incident.ReportType),
	)
	if err != nil {
		return fmt.Errorf("failed to save incident: %w", err)
	}
	return nil
}

// List возвращает сообщения от новых к старым. limit <= 0 означает без ограничения.
func (r *IncidentRepository) List(ctx context.Context, limit int) ([]models.Incident, error) {
	query := `
		SELECT
			id,
			title,
			state,
			district,
			category,
			reported_at,
			description,
			status,
			report_type
		FROM submitted_incidents
		ORDER BY created_at DESC, seq DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, pgLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.Incident, 0)
	for rows.Next() {
		var (
			incident                     models.Incident
			category, status, reportType string
		)
		err := rows.Scan(
			&incident.ID,
			&incident.Title,
			&incident.State,
			&incident.District,
			&category,
			&incident.Timestamp,
			&incident.Description,
			&status,
			&reportType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incident.Category = models.Category(category)
		incident.Status = models.Status(status)
		incident.ReportType = models.ReportType(reportType)
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// pgLimit переводит limit <= 0 в NULL, что для LIMIT означает "все строки"
func pgLimit(limit int) *int {
	if limit <= 0 {
		return nil
	}
	return &limit
}
