package repository

import (
	"bytes"
	"context"
	"errors"
	"time"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CardRepository struct {
	db *gorm.DB
}

// CardUpdate carries the card fields a PATCH supplies. Nil means the field
// is left as is.
type CardUpdate struct {
	Title       *string
	Description *string
	Priority    *string
	Deadline    *time.Time
	ColumnID    *uuid.UUID
}

type CardRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	GetByIDs(ctx context.Context, ids model.IDList) ([]model.Card, error)
	AddToColumn(ctx context.Context, columnID uuid.UUID, card *model.Card) error
	Move(ctx context.Context, card *model.Card, update CardUpdate) error
	Delete(ctx context.Context, card *model.Card) error
}

var _ CardRepositoryInterface = (*CardRepository)(nil)

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// GetByID retrieves a card by its ID
func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	result := r.db.WithContext(ctx).First(&card, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

// GetByIDs returns the cards for the given reference list, in list order.
// References to missing cards are skipped.
func (r *CardRepository) GetByIDs(ctx context.Context, ids model.IDList) ([]model.Card, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var cards []model.Card
	if err := r.db.WithContext(ctx).Where("id IN ?", []uuid.UUID(ids)).Find(&cards).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]model.Card, len(cards))
	for _, card := range cards {
		byID[card.ID] = card
	}

	ordered := make([]model.Card, 0, len(cards))
	for _, id := range ids {
		if card, ok := byID[id]; ok {
			ordered = append(ordered, card)
		}
	}
	return ordered, nil
}

// AddToColumn creates the card and appends its reference to the end of the
// column's card list, in one transaction. The card is persisted before the
// column so the back-reference never points at a column that lists an
// unknown card.
func (r *CardRepository) AddToColumn(ctx context.Context, columnID uuid.UUID, card *model.Card) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var column model.Column
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&column, "id = ?", columnID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrColumnNotFound
			}
			return err
		}

		card.ColumnID = columnID
		if err := tx.Create(card).Error; err != nil {
			return err
		}

		column.Cards = append(column.Cards, card.ID)
		return tx.Save(&column).Error
	})
}

// Move applies a card update. When the update carries a new column, the
// card's reference moves from the old column's list to the end of the new
// one and the back-reference follows, all in one transaction so observers
// never see the card listed by neither or both columns.
func (r *CardRepository) Move(ctx context.Context, card *model.Card, update CardUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if update.ColumnID != nil && *update.ColumnID != card.ColumnID {
			oldID, newID := card.ColumnID, *update.ColumnID

			// Both columns are locked in id order, so two opposite-direction
			// moves cannot deadlock on each other's FOR UPDATE locks.
			first, second := oldID, newID
			if bytes.Compare(second[:], first[:]) < 0 {
				first, second = second, first
			}

			columns := make(map[uuid.UUID]*model.Column, 2)
			for _, id := range []uuid.UUID{first, second} {
				var column model.Column
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&column, "id = ?", id).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrColumnNotFound
					}
					return err
				}
				columns[id] = &column
			}

			oldColumn, newColumn := columns[oldID], columns[newID]
			oldColumn.Cards = oldColumn.Cards.Remove(card.ID)
			newColumn.Cards = append(newColumn.Cards, card.ID)

			if err := tx.Save(oldColumn).Error; err != nil {
				return err
			}
			if err := tx.Save(newColumn).Error; err != nil {
				return err
			}

			card.ColumnID = newID
		}

		if update.Title != nil {
			card.Title = *update.Title
		}
		if update.Description != nil {
			card.Description = *update.Description
		}
		if update.Priority != nil {
			card.Priority = *update.Priority
		}
		if update.Deadline != nil {
			card.Deadline = update.Deadline
		}

		return tx.Save(card).Error
	})
}

// Delete removes the card and its reference in the owning column's list.
// A dangling back-reference does not block deletion: if the column is gone
// the card row is removed on its own.
func (r *CardRepository) Delete(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var column model.Column
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&column, "id = ?", card.ColumnID).Error
		switch {
		case err == nil:
			column.Cards = column.Cards.Remove(card.ID)
			if err := tx.Save(&column).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		result := tx.Delete(&model.Card{}, "id = ?", card.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCardNotFound
		}
		return nil
	})
}
