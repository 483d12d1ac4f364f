// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// entriesTable is the relational home of every stored pair.
const entriesTable = "entries"

// psql builds queries with $N placeholders, which both the pgx and the
// sqlite3 driver understand.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildGetEntryQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(entriesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertEntryQuery(key, value string) (string, []any, error) {
	return psql.
		Insert(entriesTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildRemoveEntryQuery(key string) (string, []any, error) {
	return psql.
		Delete(entriesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildListKeysQuery() (string, []any, error) {
	return psql.
		Select("key").
		From(entriesTable).
		OrderBy("key").
		ToSql()
}
