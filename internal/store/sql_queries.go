// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fraud-guard/models"
)

const (
	tableAccounts    = "accounts"
	tableSessions    = "sessions"
	tableHistory     = "history"
	tablePreferences = "preferences"

	prefTheme  = "theme"
	prefAPIKey = "api_key"

	// sessionRowID is the fixed primary key of the only session row.
	sessionRowID = 1
)

var (
	profileColumns = []string{"full_name", "email", "phone", "city", "dob", "id_type", "id_number", "is_verified"}
	accountColumns = append([]string{"position", "email_key"}, append(profileColumns, "password")...)
	sessionColumns = append([]string{"id"}, append(profileColumns, "started_at")...)
	historyColumns = []string{"position", "id", "created_at", "risk_score", "risk_level", "record"}
)

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func buildSelectAccountsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(append(profileColumns, "password")...).
		From(tableAccounts).
		OrderBy("position").
		ToSql()
}

// buildInsertAccountsQuery returns ok=false for an empty list.
func buildInsertAccountsQuery(b sq.StatementBuilderType, accounts []models.UserAccount) (string, []any, bool, error) {
	if len(accounts) == 0 {
		return "", nil, false, nil
	}

	insert := b.Insert(tableAccounts).Columns(accountColumns...)
	for i, a := range accounts {
		insert = insert.Values(i, emailKey(a.Email),
			a.FullName, a.Email, a.Phone, a.City, a.DOB, a.IDType, a.IDNumber, a.IsVerified,
			a.Password)
	}

	query, args, err := insert.ToSql()
	return query, args, true, err
}

func buildSelectSessionQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(append(profileColumns, "started_at")...).
		From(tableSessions).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildInsertSessionQuery(b sq.StatementBuilderType, s models.Session) (string, []any, error) {
	return b.Insert(tableSessions).
		Columns(sessionColumns...).
		Values(sessionRowID,
			s.FullName, s.Email, s.Phone, s.City, s.DOB, s.IDType, s.IDNumber, s.IsVerified,
			s.StartedAt.UTC().Format(time.RFC3339Nano)).
		ToSql()
}

func buildSelectHistoryQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("record").
		From(tableHistory).
		OrderBy("position").
		ToSql()
}

// buildInsertHistoryQuery stores each record as JSON plus the columns worth
// querying directly. Returns ok=false for an empty list.
func buildInsertHistoryQuery(b sq.StatementBuilderType, records []models.AnalysisRecord) (string, []any, bool, error) {
	if len(records) == 0 {
		return "", nil, false, nil
	}

	insert := b.Insert(tableHistory).Columns(historyColumns...)
	for i, r := range records {
		payload, err := json.Marshal(r)
		if err != nil {
			return "", nil, false, fmt.Errorf("encode record %s: %w", r.ID, err)
		}
		insert = insert.Values(i, r.ID, r.Timestamp, r.RiskScore, string(r.RiskLevel), string(payload))
	}

	query, args, err := insert.ToSql()
	return query, args, true, err
}

func buildSelectPreferencesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("name", "value").
		From(tablePreferences).
		ToSql()
}

func buildInsertPreferencesQuery(b sq.StatementBuilderType, prefs models.Preferences) (string, []any, error) {
	insert := b.Insert(tablePreferences).
		Columns("name", "value").
		Values(prefTheme, string(prefs.Theme))
	if prefs.APIKey != "" {
		insert = insert.Values(prefAPIKey, prefs.APIKey)
	}
	return insert.ToSql()
}

func buildDeleteAllQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	return b.Delete(table).ToSql()
}
