// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionsTable = "sessions"
	// sessionRowID is the id of the only row of the sessions table.
	sessionRowID = 1
)

// upsertSessionColumn builds an upsert that writes value into column of the
// single session row, creating the row when absent.
func upsertSessionColumn(column, value string, now time.Time) (string, []any, error) {
	return sq.Insert(sessionsTable).
		Columns("id", column, "updated_at").
		Values(sessionRowID, value, now).
		Suffix("ON CONFLICT(id) DO UPDATE SET " + column + " = excluded." + column + ", updated_at = excluded.updated_at").
		ToSql()
}

func selectSessionColumn(column string) (string, []any, error) {
	return sq.Select(column).
		From(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func deleteSession() (string, []any, error) {
	return sq.Delete(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}
