package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelstar/internal/models/db_models"
)

type TripPlanRepository interface {
	Insert(ctx context.Context, plan *db_models.TripPlan) error
	// ListByUsername returns the user's plans newest first; an empty slice if none.
	ListByUsername(ctx context.Context, username string) ([]db_models.TripPlan, error)
	// FindByID returns nil, nil when the user owns no plan with that id.
	FindByID(ctx context.Context, username string, id uuid.UUID) (*db_models.TripPlan, error)
}

type tripPlanRepository struct {
	db *gorm.DB
}

func NewTripPlanRepository(db *gorm.DB) TripPlanRepository {
	return &tripPlanRepository{db: db}
}

func (t *tripPlanRepository) Insert(ctx context.Context, plan *db_models.TripPlan) error {
	err := t.db.WithContext(ctx).Create(plan).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrAccountNotFound
	}
	return err
}

func (t *tripPlanRepository) ListByUsername(ctx context.Context, username string) ([]db_models.TripPlan, error) {
	plans := []db_models.TripPlan{}
	err := t.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at desc").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (t *tripPlanRepository) FindByID(ctx context.Context, username string, id uuid.UUID) (*db_models.TripPlan, error) {
	var plan db_models.TripPlan
	err := t.db.WithContext(ctx).First(&plan, "id = ? AND username = ?", id, username).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}
