package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// sqlRepository is the relational implementation of [Repository] shared by
// the sqlite and postgres drivers. Every Save replaces the table contents
// inside one transaction.
type sqlRepository struct {
	*DB
	logger *logger.Logger
}

// NewSQLRepository constructs a [Repository] backed by db. The schema must
// already be migrated.
func NewSQLRepository(db *DB, logger *logger.Logger) Repository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql repository")
	return &sqlRepository{DB: db, logger: logger}
}

func (r *sqlRepository) LoadAccounts(ctx context.Context) ([]models.UserAccount, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountsQuery(r.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.LoadAccounts").Msg("failed to query accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}
	defer rows.Close()

	accounts := make([]models.UserAccount, 0)
	for rows.Next() {
		var a models.UserAccount
		if err = rows.Scan(
			&a.FullName, &a.Email, &a.Phone, &a.City, &a.DOB, &a.IDType, &a.IDNumber, &a.IsVerified,
			&a.Password,
		); err != nil {
			log.Err(err).Str("func", "*sqlRepository.LoadAccounts").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (r *sqlRepository) SaveAccounts(ctx context.Context, accounts []models.UserAccount) error {
	query, args, ok, err := buildInsertAccountsQuery(r.builder(), accounts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if !ok {
		return r.replaceAll(ctx, tableAccounts, "")
	}
	return r.replaceAll(ctx, tableAccounts, query, args...)
}

func (r *sqlRepository) LoadSession(ctx context.Context) (*models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery(r.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		s         models.Session
		startedAt string
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&s.FullName, &s.Email, &s.Phone, &s.City, &s.DOB, &s.IDType, &s.IDNumber, &s.IsVerified,
		&startedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.LoadSession").Msg("failed to load session")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}

	if s.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return nil, fmt.Errorf("%w: session started_at: %w", ErrCorruptedData, err)
	}

	return &s, nil
}

func (r *sqlRepository) SaveSession(ctx context.Context, session *models.Session) error {
	if session == nil {
		return r.replaceAll(ctx, tableSessions, "")
	}

	query, args, err := buildInsertSessionQuery(r.builder(), *session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.replaceAll(ctx, tableSessions, query, args...)
}

func (r *sqlRepository) LoadHistory(ctx context.Context) ([]models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectHistoryQuery(r.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.LoadHistory").Msg("failed to query history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}
	defer rows.Close()

	records := make([]models.AnalysisRecord, 0)
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var record models.AnalysisRecord
		if err = json.Unmarshal([]byte(payload), &record); err != nil {
			log.Err(err).Str("func", "*sqlRepository.LoadHistory").Msg("stored record is not valid JSON")
			return nil, fmt.Errorf("%w: history record: %w", ErrCorruptedData, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *sqlRepository) SaveHistory(ctx context.Context, records []models.AnalysisRecord) error {
	query, args, ok, err := buildInsertHistoryQuery(r.builder(), records)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if !ok {
		return r.replaceAll(ctx, tableHistory, "")
	}
	return r.replaceAll(ctx, tableHistory, query, args...)
}

func (r *sqlRepository) LoadPreferences(ctx context.Context) (models.Preferences, error) {
	query, args, err := buildSelectPreferencesQuery(r.builder())
	if err != nil {
		return models.Preferences{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}
	defer rows.Close()

	prefs := models.Preferences{Theme: models.DefaultTheme}
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			return models.Preferences{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		switch name {
		case prefTheme:
			if t := models.Theme(value); t.Valid() {
				prefs.Theme = t
			}
		case prefAPIKey:
			prefs.APIKey = value
		}
	}
	if err = rows.Err(); err != nil {
		return models.Preferences{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return prefs, nil
}

func (r *sqlRepository) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	query, args, err := buildInsertPreferencesQuery(r.builder(), prefs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.replaceAll(ctx, tablePreferences, query, args...)
}

func (r *sqlRepository) Close() error {
	return r.DB.Close()
}

// replaceAll deletes every row of table and, when insert is not empty, runs
// it, all in one transaction.
func (r *sqlRepository) replaceAll(ctx context.Context, table, insert string, args ...any) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.replaceAll").Str("table", table).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, r.classify(err))
	}
	defer func() { _ = tx.Rollback() }()

	del, delArgs, err := buildDeleteAllQuery(r.builder(), table)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, del, delArgs...); err != nil {
		log.Err(err).Str("func", "*sqlRepository.replaceAll").Str("table", table).Msg("failed to clear table")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	if insert != "" {
		if _, err = tx.ExecContext(ctx, insert, args...); err != nil {
			log.Err(err).Str("func", "*sqlRepository.replaceAll").Str("table", table).Msg("failed to insert rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sqlRepository.replaceAll").Str("table", table).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, r.classify(err))
	}

	return nil
}
