package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stwalsh4118/appraise/internal/database"
	"github.com/stwalsh4118/appraise/internal/models"
)

// AppraisalSummary is the list-view projection of an appraisal,
// without the full document payload.
type AppraisalSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// AppraisalRepository defines the data access operations for persisted
// appraisals. The engine never touches this layer; it operates on the
// documents handed to it.
type AppraisalRepository interface {
	// Create persists a new appraisal and returns it with its
	// generated id and timestamps.
	Create(ctx context.Context, name string, doc models.AppraisalDocument) (*models.Appraisal, error)

	// GetByID fetches one appraisal by id.
	// Returns nil, nil if no appraisal is found (not an error).
	// Returns error only for actual database failures.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Appraisal, error)

	// Update replaces the stored document verbatim and bumps
	// updated_at. Returns nil, nil when the id does not exist.
	Update(ctx context.Context, id uuid.UUID, name string, doc models.AppraisalDocument) (*models.Appraisal, error)

	// List returns summaries of all appraisals, newest first.
	// Returns an empty slice if none exist (not an error).
	List(ctx context.Context) ([]AppraisalSummary, error)

	// Delete removes an appraisal. Deleting a missing id is not an
	// error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// appraisalRepository is the concrete implementation of
// AppraisalRepository backed by a JSONB document column.
type appraisalRepository struct {
	db *database.Database
}

// NewAppraisalRepository creates a new instance of AppraisalRepository.
func NewAppraisalRepository(db *database.Database) AppraisalRepository {
	return &appraisalRepository{
		db: db,
	}
}

func (r *appraisalRepository) Create(ctx context.Context, name string, doc models.AppraisalDocument) (*models.Appraisal, error) {
	query := `
		INSERT INTO appraisals (id, name, document, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, name, document, created_at, updated_at
	`

	var appraisal models.Appraisal
	err := r.db.Pool.QueryRow(ctx, query, uuid.New(), name, doc).Scan(
		&appraisal.ID,
		&appraisal.Name,
		&appraisal.Document,
		&appraisal.CreatedAt,
		&appraisal.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create appraisal %q: %w", name, err)
	}

	return &appraisal, nil
}

func (r *appraisalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Appraisal, error) {
	query := `
		SELECT id, name, document, created_at, updated_at
		FROM appraisals
		WHERE id = $1
	`

	var appraisal models.Appraisal
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&appraisal.ID,
		&appraisal.Name,
		&appraisal.Document,
		&appraisal.CreatedAt,
		&appraisal.UpdatedAt,
	)

	// No rows is not an error at the repository level
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query appraisal %s: %w", id, err)
	}

	return &appraisal, nil
}

func (r *appraisalRepository) Update(ctx context.Context, id uuid.UUID, name string, doc models.AppraisalDocument) (*models.Appraisal, error) {
	query := `
		UPDATE appraisals
		SET name = $2, document = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, document, created_at, updated_at
	`

	var appraisal models.Appraisal
	err := r.db.Pool.QueryRow(ctx, query, id, name, doc).Scan(
		&appraisal.ID,
		&appraisal.Name,
		&appraisal.Document,
		&appraisal.CreatedAt,
		&appraisal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update appraisal %s: %w", id, err)
	}

	return &appraisal, nil
}

func (r *appraisalRepository) List(ctx context.Context) ([]AppraisalSummary, error) {
	query := `
		SELECT id, name,
			to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SS"Z"'),
			to_char(updated_at, 'YYYY-MM-DD"T"HH24:MI:SS"Z"')
		FROM appraisals
		ORDER BY updated_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list appraisals: %w", err)
	}
	defer rows.Close()

	var results []AppraisalSummary
	for rows.Next() {
		var summary AppraisalSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.CreatedAt, &summary.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan appraisal row: %w", err)
		}
		results = append(results, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appraisal rows: %w", err)
	}

	// Return empty slice if no appraisals exist (not an error)
	if results == nil {
		results = []AppraisalSummary{}
	}

	return results, nil
}

func (r *appraisalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Pool.Exec(ctx, `DELETE FROM appraisals WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete appraisal %s: %w", id, err)
	}
	return nil
}
