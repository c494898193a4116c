package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/msumanth960/epaper/internal/models"
)

// EditionRepository хранит загруженные выпуски в PostgreSQL
type EditionRepository struct {
	db *pgxpool.Pool
}

func NewEditionRepository(db *pgxpool.Pool) *EditionRepository {
	return &EditionRepository{
		db: db,
	}
}

// Save сохраняет метаданные загруженного выпуска
func (r *EditionRepository) Save(ctx context.Context, edition *models.Edition) error {
	query := `
		INSERT INTO submitted_editions (id, edition_date, state, district, edition_name, document_url, thumbnail_url, page_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		edition.ID,
		edition.Date,
		edition.State,
		edition.District,
		edition.EditionName,
		edition.DocumentURL,
		edition.ThumbnailURL,
		edition.PageCount,
	)
	if err != nil {
		return fmt.Errorf("failed to save edition: %w", err)
	}
	return nil
}

// List возвращает выпуски от новых к старым
func (r *EditionRepository) List(ctx context.Context, limit int) ([]models.Edition, error) {
	query := `
		SELECT
			id,
			edition_date,
			state,
			district,
			edition_name,
			document_url,
			thumbnail_url,
			page_count
		FROM submitted_editions
		ORDER BY created_at DESC, seq DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, pgLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list editions: %w", err)
	}
	defer rows.Close()

	editions := make([]models.Edition, 0)
	for rows.Next() {
		var edition models.Edition
		err := rows.Scan(
			&edition.ID,
			&edition.Date,
			&edition.State,
			&edition.District,
			&edition.EditionName,
			&edition.DocumentURL,
			&edition.ThumbnailURL,
			&edition.PageCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan edition row: %w", err)
		}
		editions = append(editions, edition)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return editions, nil
}
