package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Listing hearings must order by hearing date at the SQL level, not rely
// on insertion order. sqlmock pins the generated statement.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, mock
}

func TestHearingRepository_ListByDispute_OrdersByHearingDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHearingRepository(db)

	columns := []string{"id", "dispute_id", "hearing_date", "agenda", "result", "decision", "attendees", "created_by", "created_at", "updated_at"}
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "hearings" WHERE dispute_id = $1 ORDER BY hearing_date ASC`)).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, 7, now, "Pemeriksaan awal", nil, nil, nil, 1, now, now).
			AddRow(2, 7, now.Add(24*time.Hour), "Mediasi", nil, nil, nil, 1, now, now))

	hearings, err := repo.ListByDispute(7)
	require.NoError(t, err)
	require.Len(t, hearings, 2)
	require.Equal(t, "Pemeriksaan awal", hearings[0].Agenda)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHearingRepository_UpdateFields_ReportsRowsAffected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHearingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "hearings" SET .+ WHERE id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.UpdateFields(3, map[string]interface{}{
		"result":     "Sepakat mediasi",
		"updated_at": time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHearingRepository_UpdateFields_ZeroRowsForUnknownID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHearingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "hearings" SET .+ WHERE id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rows, err := repo.UpdateFields(999, map[string]interface{}{
		"updated_at": time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), rows)

	require.NoError(t, mock.ExpectationsWereMet())
}
