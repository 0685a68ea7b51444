package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ColumnRepository struct {
	db *gorm.DB
}

type ColumnRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error)
	GetByIDs(ctx context.Context, ids model.IDList) ([]model.Column, error)
	Update(ctx context.Context, column *model.Column) error
	AddToDashboard(ctx context.Context, dashboardID uuid.UUID, column *model.Column) error
	Reposition(ctx context.Context, dashboardID, columnID uuid.UUID, position int) (model.IDList, error)
	DeleteCascade(ctx context.Context, dashboardID, columnID uuid.UUID) error
}

var _ ColumnRepositoryInterface = (*ColumnRepository)(nil)

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error) {
	var column model.Column
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&column).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &column, nil
}

// GetByIDs returns the columns for the given reference list, in list order.
// References to missing columns are skipped.
func (r *ColumnRepository) GetByIDs(ctx context.Context, ids model.IDList) ([]model.Column, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var columns []model.Column
	if err := r.db.WithContext(ctx).Where("id IN ?", []uuid.UUID(ids)).Find(&columns).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]model.Column, len(columns))
	for _, column := range columns {
		byID[column.ID] = column
	}

	ordered := make([]model.Column, 0, len(columns))
	for _, id := range ids {
		if column, ok := byID[id]; ok {
			ordered = append(ordered, column)
		}
	}
	return ordered, nil
}

func (r *ColumnRepository) Update(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).Save(column).Error
}

// AddToDashboard creates the column and appends its reference to the end of
// the dashboard's column list, in one transaction.
func (r *ColumnRepository) AddToDashboard(ctx context.Context, dashboardID uuid.UUID, column *model.Column) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(column).Error; err != nil {
			return err
		}

		var dashboard model.Dashboard
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&dashboard, "id = ?", dashboardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDashboardNotFound
			}
			return err
		}

		dashboard.Columns = append(dashboard.Columns, column.ID)
		return tx.Save(&dashboard).Error
	})
}

// Reposition moves the column's reference to the requested index in the
// dashboard's column list and returns the updated list. A column that is not
// in the list leaves the list untouched.
func (r *ColumnRepository) Reposition(ctx context.Context, dashboardID, columnID uuid.UUID, position int) (model.IDList, error) {
	var columns model.IDList
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dashboard model.Dashboard
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&dashboard, "id = ?", dashboardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDashboardNotFound
			}
			return err
		}

		from, ok := dashboard.Columns.IndexOf(columnID)
		if !ok {
			columns = dashboard.Columns
			return nil
		}

		dashboard.Columns = model.MoveElement(dashboard.Columns, from, position)
		columns = dashboard.Columns
		return tx.Save(&dashboard).Error
	})
	if err != nil {
		return nil, err
	}
	return columns, nil
}

// DeleteCascade removes the column, every card it lists, and its reference
// in the dashboard's column list, in one transaction.
func (r *ColumnRepository) DeleteCascade(ctx context.Context, dashboardID, columnID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var column model.Column
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&column, "id = ?", columnID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrColumnNotFound
			}
			return err
		}

		if len(column.Cards) > 0 {
			if err := tx.Where("id IN ?", []uuid.UUID(column.Cards)).Delete(&model.Card{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&model.Column{}, "id = ?", columnID).Error; err != nil {
			return err
		}

		var dashboard model.Dashboard
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&dashboard, "id = ?", dashboardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDashboardNotFound
			}
			return err
		}

		dashboard.Columns = dashboard.Columns.Remove(columnID)
		return tx.Save(&dashboard).Error
	})
}
