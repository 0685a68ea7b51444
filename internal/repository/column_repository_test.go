package repository_test

import (
	"context"
	"testing"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestColumnRepository_AddToDashboard(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewColumnRepository(gormDB)

	dashboardID := uuid.New()
	columnID := uuid.New()
	column := &model.Column{Name: "To Do", Cards: model.IDList{}}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "columns"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(columnID.String()))
	mock.ExpectQuery(`SELECT (.+) FROM "dashboards" WHERE id = (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "slug", "columns"}).
			AddRow(dashboardID.String(), uuid.New().String(), "Work", "work", idsJSON()))
	mock.ExpectExec(`UPDATE "dashboards" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.AddToDashboard(context.Background(), dashboardID, column)

	// Assert: колонка получила id и была дописана в конец списка
	assert.NoError(t, err)
	assert.Equal(t, columnID, column.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnRepository_AddToDashboard_DashboardGone(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewColumnRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "columns"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectQuery(`SELECT (.+) FROM "dashboards" WHERE id = (.+)FOR UPDATE`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	// Act
	err := repo.AddToDashboard(context.Background(), uuid.New(), &model.Column{Name: "To Do", Cards: model.IDList{}})

	// Assert
	assert.ErrorIs(t, err, repository.ErrDashboardNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnRepository_Reposition(t *testing.T) {
	// Arrange: доска с колонками [A, B], перемещаем A на позицию 1
	gormDB, mock := setupMockDB(t)
	repo := repository.NewColumnRepository(gormDB)

	dashboardID := uuid.New()
	columnA := uuid.New()
	columnB := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "dashboards" WHERE id = (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "slug", "columns"}).
			AddRow(dashboardID.String(), uuid.New().String(), "Work", "work", idsJSON(columnA, columnB)))
	mock.ExpectExec(`UPDATE "dashboards" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	columns, err := repo.Reposition(context.Background(), dashboardID, columnA, 1)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, model.IDList{columnB, columnA}, columns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnRepository_Reposition_UnknownColumnIsNoop(t *testing.T) {
	// Arrange: колонки нет в списке — список не трогаем, записи нет
	gormDB, mock := setupMockDB(t)
	repo := repository.NewColumnRepository(gormDB)

	dashboardID := uuid.New()
	columnA := uuid.New()
	columnB := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "dashboards" WHERE id = (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "slug", "columns"}).
			AddRow(dashboardID.String(), uuid.New().String(), "Work", "work", idsJSON(columnA, columnB)))
	mock.ExpectCommit()

	// Act
	columns, err := repo.Reposition(context.Background(), dashboardID, uuid.New(), 0)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, model.IDList{columnA, columnB}, columns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnRepository_DeleteCascade(t *testing.T) {
	// Arrange: колонка A с карточками [c1, c2, c3] на доске [A, B]
	gormDB, mock := setupMockDB(t)
	repo := repository.NewColumnRepository(gormDB)

	dashboardID := uuid.New()
	columnA := uuid.New()
	columnB := uuid.New()
	card1 := uuid.New()
	card2 := uuid.New()
	card3 := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "columns" WHERE id = (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cards"}).
			AddRow(columnA.String(), "To Do", idsJSON(card1, card2, card3)))
	// Каскад: удаляются ровно перечисленные карточки
	mock.ExpectExec(`DELETE FROM "cards" WHERE id IN (.+)`).
		WithArgs(card1, card2, card3).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "columns" WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "dashboards" WHERE id = (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "slug", "columns"}).
			AddRow(dashboardID.String(), uuid.New().String(), "Work", "work", idsJSON(columnA, columnB)))
	// Ссылка на колонку исчезает из списка доски
	mock.ExpectExec(`UPDATE "dashboards" SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			string(idsJSON(columnB)), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.DeleteCascade(context.Background(), dashboardID, columnA)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnRepository_DeleteCascade_ColumnMissing(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewColumnRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "columns" WHERE id = (.+)FOR UPDATE`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	// Act
	err := repo.DeleteCascade(context.Background(), uuid.New(), uuid.New())

	// Assert
	assert.ErrorIs(t, err, repository.ErrColumnNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
