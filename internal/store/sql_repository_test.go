package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/migrations"
	"github.com/MKhiriev/go-fraud-guard/models"
)

func newTestSQLRepo(t *testing.T) (*sqlRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sqlRepository{
		DB: &DB{
			DB:                 db,
			dialect:            migrations.DialectPostgres,
			placeholder:        sq.Dollar,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestSQLRepository_LoadAccounts(t *testing.T) {
	repo, mock, db := newTestSQLRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"full_name", "email", "phone", "city", "dob", "id_type", "id_number", "is_verified", "password"}).
		AddRow("Jane Doe", "jane@x.io", "", "Pune", "", "", "", true, "enc")

	mock.ExpectQuery("SELECT full_name, email, .* FROM accounts ORDER BY position").WillReturnRows(rows)

	accounts, err := repo.LoadAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "jane@x.io", accounts[0].Email)
	assert.Equal(t, "enc", accounts[0].Password)
	assert.True(t, accounts[0].IsVerified)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_LoadAccounts_QueryError(t *testing.T) {
	repo, mock, db := newTestSQLRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM accounts").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.LoadAccounts(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestSQLRepository_SaveAccounts_ReplacesRows(t *testing.T) {
	repo, mock, db := newTestSQLRepo(t)
	defer db.Close()

	a := sampleAccount()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM accounts").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(0, "jane@x.io", a.FullName, a.Email, a.Phone, a.City, a.DOB, a.IDType, a.IDNumber, a.IsVerified, a.Password).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveAccounts(context.Background(), []models.UserAccount{a}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_SaveAccounts_EmptyOnlyDeletes(t *testing.T) {
	repo, mock, db := newTestSQLRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM accounts").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveAccounts(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_SaveAccounts_UniqueViolationRollsBack(t *testing.T) {
	repo, mock, db := newTestSQLRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM accounts").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO accounts").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	err := repo.SaveAccounts(context.Background(), []models.UserAccount{sampleAccount(), sampleAccount()})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_BeginError(t *testing.T) {
	repo, mock, db := newTestSQLRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("boom"))

	err := repo.SaveHistory(context.Background(), nil)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSQLRepository_CommitError(t *testing.T) {
	repo, mock, db := newTestSQLRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sessions").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := repo.SaveSession(context.Background(), nil)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestSQLRepository_Session(t *testing.T) {
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		repo, mock, db := newTestSQLRepo(t)
		defer db.Close()

		mock.ExpectQuery("FROM sessions WHERE id = \\$1").WithArgs(sessionRowID).WillReturnError(sql.ErrNoRows)

		session, err := repo.LoadSession(ctx)
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("present", func(t *testing.T) {
		repo, mock, db := newTestSQLRepo(t)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"full_name", "email", "phone", "city", "dob", "id_type", "id_number", "is_verified", "started_at"}).
			AddRow("Jane Doe", "jane@x.io", "", "", "", "", "", true, "2026-01-02T03:04:05Z")
		mock.ExpectQuery("FROM sessions").WithArgs(sessionRowID).WillReturnRows(rows)

		session, err := repo.LoadSession(ctx)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "jane@x.io", session.Email)
		assert.True(t, session.StartedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
	})

	t.Run("corrupted started_at", func(t *testing.T) {
		repo, mock, db := newTestSQLRepo(t)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"full_name", "email", "phone", "city", "dob", "id_type", "id_number", "is_verified", "started_at"}).
			AddRow("Jane Doe", "jane@x.io", "", "", "", "", "", true, "yesterday")
		mock.ExpectQuery("FROM sessions").WillReturnRows(rows)

		_, err := repo.LoadSession(ctx)
		assert.ErrorIs(t, err, ErrCorruptedData)
	})

	t.Run("save", func(t *testing.T) {
		repo, mock, db := newTestSQLRepo(t)
		defer db.Close()

		s := models.SessionFromAccount(sampleAccount(), time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM sessions").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO sessions").
			WithArgs(sessionRowID, s.FullName, s.Email, s.Phone, s.City, s.DOB, s.IDType, s.IDNumber, s.IsVerified, "2026-01-02T03:04:05Z").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.SaveSession(ctx, &s))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLRepository_History(t *testing.T) {
	ctx := context.Background()
	repo, mock, db := newTestSQLRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"record"}).
		AddRow(`{"id":"DNA-AAAAAA","risk_score":90,"risk_level":"CRITICAL","threat_indicators":[],"manipulation_tactics":[]}`).
		AddRow(`{"id":"DNA-BBBBBB","risk_score":10,"risk_level":"LOW","threat_indicators":[],"manipulation_tactics":[]}`)
	mock.ExpectQuery("SELECT record FROM history ORDER BY position").WillReturnRows(rows)

	history, err := repo.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "DNA-AAAAAA", history[0].ID)
	assert.Equal(t, models.RiskCritical, history[0].RiskLevel)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM history").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO history").
		WithArgs(0, "DNA-CCCCCC", sqlmock.AnyArg(), 42, "MEDIUM", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveHistory(ctx, []models.AnalysisRecord{sampleRecord("DNA-CCCCCC", 42)}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_History_Corrupted(t *testing.T) {
	repo, mock, db := newTestSQLRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM history").WillReturnRows(sqlmock.NewRows([]string{"record"}).AddRow("{"))

	_, err := repo.LoadHistory(context.Background())
	assert.ErrorIs(t, err, ErrCorruptedData)
}

func TestSQLRepository_Preferences(t *testing.T) {
	ctx := context.Background()
	repo, mock, db := newTestSQLRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"name", "value"}).
		AddRow(prefTheme, "light").
		AddRow(prefAPIKey, "k-1")
	mock.ExpectQuery("SELECT name, value FROM preferences").WillReturnRows(rows)

	prefs, err := repo.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Preferences{Theme: models.ThemeLight, APIKey: "k-1"}, prefs)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM preferences").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO preferences").
		WithArgs(prefTheme, "dark").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SavePreferences(ctx, models.Preferences{Theme: models.ThemeDark}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_Preferences_Defaults(t *testing.T) {
	repo, mock, db := newTestSQLRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM preferences").WillReturnRows(sqlmock.NewRows([]string{"name", "value"}))

	prefs, err := repo.LoadPreferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Preferences{Theme: models.DefaultTheme}, prefs)
}
