package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestLocationRepositoryGetByStringID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "string_id", "name", "category", "district", "time_required", "entrance_fee", "description"}).
		AddRow(1, "galle-fort", "Galle Dutch Fort", "cultural", "Galle", 3, 0, "Dutch fortified town")
	mock.ExpectQuery("SELECT \\* FROM `locations` WHERE string_id = \\?").
		WithArgs("galle-fort", 1).
		WillReturnRows(rows)

	location, err := repo.GetByStringID("galle-fort")
	require.NoError(t, err)

	assert.Equal(t, uint(1), location.ID)
	assert.Equal(t, "Galle Dutch Fort", location.Name)
	assert.Equal(t, "cultural", location.Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepositoryGetByStringIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `locations` WHERE string_id = \\?").
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByStringID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLocationRepositoryListFiltersAndCounts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `locations` WHERE category = \\?").
		WithArgs("cultural").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows([]string{"id", "string_id", "name", "category"}).
		AddRow(1, "galle-fort", "Galle Dutch Fort", "cultural").
		AddRow(2, "sigiriya-rock", "Sigiriya Rock Fortress", "cultural")
	mock.ExpectQuery("SELECT \\* FROM `locations` WHERE category = \\? ORDER BY name LIMIT \\?").
		WithArgs("cultural", 10).
		WillReturnRows(rows)

	locations, total, err := repo.List(LocationFilter{Category: "cultural", Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	assert.Len(t, locations, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `locations` WHERE `locations`.`id` = \\?").
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
