// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildGetEntryQuery(t *testing.T) {
	query, args, err := buildGetEntryQuery("alpha")
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, "alpha", args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "value")
	require.Contains(t, q, "from entries")
	require.Contains(t, q, "where")

	// placeholder format should be $1 (Postgres style)
	require.Contains(t, query, "$1")
}

func Test_buildUpsertEntryQuery(t *testing.T) {
	query, args, err := buildUpsertEntryQuery("alpha", "one")
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, "alpha", args[0])
	require.Equal(t, "one", args[1])

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into entries")
	require.Contains(t, q, "on conflict")
	require.Contains(t, q, "do update set")
	require.Contains(t, q, "excluded.value")
	require.Contains(t, q, "updated_at")

	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")
}

func Test_buildRemoveEntryQuery(t *testing.T) {
	query, args, err := buildRemoveEntryQuery("alpha")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "alpha", args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "delete from entries")
	require.Contains(t, q, "where")
	require.Contains(t, query, "$1")
}

func Test_buildListKeysQuery(t *testing.T) {
	query, args, err := buildListKeysQuery()
	require.NoError(t, err)

	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from entries")
	require.Contains(t, q, "order by")
}
