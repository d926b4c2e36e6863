package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/stwalsh4118/appraise/internal/inventory"
	"github.com/stwalsh4118/appraise/internal/logger"
	"github.com/stwalsh4118/appraise/internal/models"
	"github.com/stwalsh4118/appraise/internal/repository"
)

var (
	ErrAppraisalNotFound = errors.New("appraisal not found")
)

// AppraisalService defines the business operations over persisted
// appraisals. Documents are normalized on every write so the engine
// always sees a well-formed tree.
type AppraisalService interface {
	// Create persists a new appraisal after normalizing its inventory.
	Create(ctx context.Context, name string, doc models.AppraisalDocument) (*models.Appraisal, error)

	// Get fetches one appraisal.
	// Returns ErrAppraisalNotFound when the id does not exist.
	Get(ctx context.Context, id uuid.UUID) (*models.Appraisal, error)

	// Update replaces the stored document after normalizing its
	// inventory. Returns ErrAppraisalNotFound when the id does not
	// exist.
	Update(ctx context.Context, id uuid.UUID, name string, doc models.AppraisalDocument) (*models.Appraisal, error)

	// List returns summaries of every appraisal, newest first.
	List(ctx context.Context) ([]repository.AppraisalSummary, error)

	// Delete removes an appraisal.
	Delete(ctx context.Context, id uuid.UUID) error

	// ComputeScenario loads an appraisal and runs the full valuation
	// pipeline for one of its scenarios.
	ComputeScenario(ctx context.Context, id uuid.UUID, scenarioID int) (*ScenarioValuation, error)
}

// appraisalService is the concrete implementation of AppraisalService.
type appraisalService struct {
	repo      repository.AppraisalRepository
	valuation ValuationService
	log       *logger.Logger
}

// NewAppraisalService creates a new instance of AppraisalService.
func NewAppraisalService(repo repository.AppraisalRepository, valuation ValuationService, log *logger.Logger) AppraisalService {
	return &appraisalService{
		repo:      repo,
		valuation: valuation,
		log:       log,
	}
}

func (s *appraisalService) Create(ctx context.Context, name string, doc models.AppraisalDocument) (*models.Appraisal, error) {
	doc.Inventory = inventory.NormalizeTree(doc.Inventory)

	appraisal, err := s.repo.Create(ctx, name, doc)
	if err != nil {
		s.log.Error("Failed to create appraisal", err, map[string]interface{}{
			"name": name,
		})
		return nil, fmt.Errorf("failed to create appraisal: %w", err)
	}

	s.log.Info("Created appraisal", map[string]interface{}{
		"appraisal_id": appraisal.ID.String(),
		"name":         name,
	})

	return appraisal, nil
}

func (s *appraisalService) Get(ctx context.Context, id uuid.UUID) (*models.Appraisal, error) {
	appraisal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to fetch appraisal", err, map[string]interface{}{
			"appraisal_id": id.String(),
		})
		return nil, fmt.Errorf("failed to fetch appraisal: %w", err)
	}

	// Repository returns nil, nil when missing - transform to domain error
	if appraisal == nil {
		return nil, fmt.Errorf("%w: %s", ErrAppraisalNotFound, id)
	}

	return appraisal, nil
}

func (s *appraisalService) Update(ctx context.Context, id uuid.UUID, name string, doc models.AppraisalDocument) (*models.Appraisal, error) {
	doc.Inventory = inventory.NormalizeTree(doc.Inventory)

	appraisal, err := s.repo.Update(ctx, id, name, doc)
	if err != nil {
		s.log.Error("Failed to update appraisal", err, map[string]interface{}{
			"appraisal_id": id.String(),
		})
		return nil, fmt.Errorf("failed to update appraisal: %w", err)
	}

	if appraisal == nil {
		return nil, fmt.Errorf("%w: %s", ErrAppraisalNotFound, id)
	}

	s.log.Info("Updated appraisal", map[string]interface{}{
		"appraisal_id": id.String(),
	})

	return appraisal, nil
}

func (s *appraisalService) List(ctx context.Context) ([]repository.AppraisalSummary, error) {
	summaries, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list appraisals", err, nil)
		return nil, fmt.Errorf("failed to list appraisals: %w", err)
	}
	return summaries, nil
}

func (s *appraisalService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete appraisal", err, map[string]interface{}{
			"appraisal_id": id.String(),
		})
		return fmt.Errorf("failed to delete appraisal: %w", err)
	}

	s.log.Info("Deleted appraisal", map[string]interface{}{
		"appraisal_id": id.String(),
	})

	return nil
}

func (s *appraisalService) ComputeScenario(ctx context.Context, id uuid.UUID, scenarioID int) (*ScenarioValuation, error) {
	appraisal, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.valuation.ComputeScenario(appraisal.Document, scenarioID)
}
