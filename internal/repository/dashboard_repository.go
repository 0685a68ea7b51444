package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DashboardRepository struct {
	db *gorm.DB
}

type DashboardRepositoryInterface interface {
	Create(ctx context.Context, dashboard *model.Dashboard) error
	GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Dashboard, error)
	GetBySlug(ctx context.Context, ownerID uuid.UUID, slug string) (*model.Dashboard, error)
	Update(ctx context.Context, dashboard *model.Dashboard) error
	DeleteCascade(ctx context.Context, dashboard *model.Dashboard) error
}

var _ DashboardRepositoryInterface = (*DashboardRepository)(nil)

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) Create(ctx context.Context, dashboard *model.Dashboard) error {
	return r.db.WithContext(ctx).Create(dashboard).Error
}

func (r *DashboardRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Dashboard, error) {
	var dashboards []model.Dashboard
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&dashboards).Error
	return dashboards, err
}

// GetBySlug resolves the dashboard owned by ownerID with the given slug.
// A dashboard owned by someone else resolves the same way as a missing one.
func (r *DashboardRepository) GetBySlug(ctx context.Context, ownerID uuid.UUID, slug string) (*model.Dashboard, error) {
	var dashboard model.Dashboard
	if err := r.db.WithContext(ctx).Where("owner_id = ? AND slug = ?", ownerID, slug).First(&dashboard).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dashboard, nil
}

func (r *DashboardRepository) Update(ctx context.Context, dashboard *model.Dashboard) error {
	return r.db.WithContext(ctx).Save(dashboard).Error
}

// DeleteCascade removes the dashboard together with its columns and every
// card those columns list, in a single transaction.
func (r *DashboardRepository) DeleteCascade(ctx context.Context, dashboard *model.Dashboard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(dashboard.Columns) > 0 {
			var columns []model.Column
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id IN ?", []uuid.UUID(dashboard.Columns)).
				Find(&columns).Error; err != nil {
				return err
			}

			var cardIDs []uuid.UUID
			for _, column := range columns {
				cardIDs = append(cardIDs, column.Cards...)
			}
			if len(cardIDs) > 0 {
				if err := tx.Where("id IN ?", cardIDs).Delete(&model.Card{}).Error; err != nil {
					return err
				}
			}

			if err := tx.Where("id IN ?", []uuid.UUID(dashboard.Columns)).Delete(&model.Column{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.Dashboard{}, "id = ?", dashboard.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrDashboardNotFound
		}
		return nil
	})
}
