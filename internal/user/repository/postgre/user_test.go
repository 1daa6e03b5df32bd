package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"lldap-gateway/internal/model"
	"lldap-gateway/internal/user/repository"
	"lldap-gateway/pkg/log"
	postgresPkg "lldap-gateway/pkg/postgre"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGroupNames(t *testing.T) {
	db, fdb := newFakeDB(t, []map[string]driver.Value{
		{"display_name": "lldap_admin"},
		{"display_name": "readers"},
	}, nil)
	repo := New(log.NewNop(), db)

	names, err := repo.ListGroupNames(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, []string{"lldap_admin", "readers"}, names)
	require.Len(t, fdb.args, 1)
	assert.Equal(t, []driver.Value{"alice"}, fdb.args[0])
}

func TestListGroupNames_NoGroups(t *testing.T) {
	db, _ := newFakeDB(t, nil, nil)

	names, err := New(log.NewNop(), db).ListGroupNames(context.Background(), "bob")

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestGetPasswordHash(t *testing.T) {
	db, _ := newFakeDB(t, []map[string]driver.Value{
		{"password_hash": "$2a$10$hash"},
	}, nil)

	hash, err := New(log.NewNop(), db).GetPasswordHash(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", hash)
}

func TestGetPasswordHash_NotFound(t *testing.T) {
	db, _ := newFakeDB(t, nil, nil)

	_, err := New(log.NewNop(), db).GetPasswordHash(context.Background(), "nobody")

	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestList(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	db, fdb := newFakeDB(t, []map[string]driver.Value{
		{
			"user_id":       "alice",
			"email":         "alice@example.com",
			"display_name":  "Alice",
			"first_name":    nil,
			"last_name":     "Liddell",
			"creation_date": created,
		},
	}, nil)
	filter := model.Equality(model.FieldUserID, "alice")

	usrs, err := New(log.NewNop(), db).List(context.Background(), repository.ListOptions{Filter: &filter})

	require.NoError(t, err)
	assert.Equal(t, []model.User{{
		UserID:       "alice",
		Email:        "alice@example.com",
		DisplayName:  "Alice",
		LastName:     "Liddell",
		CreationDate: created,
	}}, usrs)
	require.Len(t, fdb.queries, 1)
	assert.NotContains(t, fdb.queries[0], "password_hash")
}

func TestQueries_MissingSchema(t *testing.T) {
	db, _ := newFakeDB(t, nil, &pq.Error{Code: "42P01", Message: `relation "groups" does not exist`})

	_, err := New(log.NewNop(), db).ListGroupNames(context.Background(), "alice")

	require.Error(t, err)
	assert.True(t, postgresPkg.IsUndefinedTable(err))
	assert.Contains(t, err.Error(), "schema is missing")
}
