package postgres

import (
	"context"
	"errors"
	"testing"

	"lldap-gateway/internal/model"
	"lldap-gateway/internal/sqlboiler"
	"lldap-gateway/internal/user/repository"
	"lldap-gateway/pkg/log"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileFilter(t *testing.T) {
	tcs := map[string]struct {
		filter     model.UserFilter
		wantClause string
		wantArgs   []interface{}
	}{
		"equality": {
			filter:     model.Equality(model.FieldEmail, "a@example.com"),
			wantClause: `"email" = ?`,
			wantArgs:   []interface{}{"a@example.com"},
		},
		"and": {
			filter: model.And(
				model.Equality(model.FieldFirstName, "Alice"),
				model.Equality(model.FieldLastName, "Liddell"),
			),
			wantClause: `("first_name" = ? AND "last_name" = ?)`,
			wantArgs:   []interface{}{"Alice", "Liddell"},
		},
		"or with not": {
			filter: model.Or(
				model.Equality(model.FieldUserID, "alice"),
				model.Not(model.Equality(model.FieldDisplayName, "Bob")),
			),
			wantClause: `("user_id" = ? OR NOT ("display_name" = ?))`,
			wantArgs:   []interface{}{"alice", "Bob"},
		},
		"nested empty and": {
			filter:     model.Not(model.And()),
			wantClause: `NOT (TRUE)`,
		},
		"nested empty or": {
			filter:     model.And(model.Or(), model.Equality(model.FieldUserID, "x")),
			wantClause: `(FALSE AND "user_id" = ?)`,
			wantArgs:   []interface{}{"x"},
		},
		"injection stays a parameter": {
			filter:     model.Equality(model.FieldUserID, `x" OR 1=1 --`),
			wantClause: `"user_id" = ?`,
			wantArgs:   []interface{}{`x" OR 1=1 --`},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			clause, args, err := compileFilter(tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.wantClause, clause)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestCompileFilter_Errors(t *testing.T) {
	_, _, err := compileFilter(model.Equality("password_hash", "x"))
	assert.True(t, errors.Is(err, model.ErrUnknownFilterField))

	_, _, err = compileFilter(model.UserFilter{Kind: "Like"})
	assert.True(t, errors.Is(err, model.ErrInvalidFilter))

	_, _, err = compileFilter(model.UserFilter{Kind: model.FilterNot})
	assert.True(t, errors.Is(err, model.ErrInvalidFilter))
}

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{l: log.NewNop()}
	filter := model.Or(
		model.Equality(model.FieldUserID, "alice"),
		model.Equality(model.FieldUserID, "bob"),
	)

	mods, err := r.buildListQuery(context.Background(), repository.ListOptions{Filter: &filter})
	require.NoError(t, err)

	query, args := queries.BuildQuery(sqlboiler.Users(mods...).Query)
	assert.Contains(t, query, `FROM "users"`)
	assert.Contains(t, query, `"user_id" = $1 OR "user_id" = $2`)
	assert.Contains(t, query, `ORDER BY "user_id"`)
	assert.NotContains(t, query, "password_hash")
	assert.Equal(t, []interface{}{"alice", "bob"}, args)
}

func TestBuildListQuery_EmptyFilter(t *testing.T) {
	r := &implRepository{l: log.NewNop()}
	empty := model.And()

	for _, f := range []*model.UserFilter{nil, &empty} {
		mods, err := r.buildListQuery(context.Background(), repository.ListOptions{Filter: f})
		require.NoError(t, err)

		query, args := queries.BuildQuery(sqlboiler.Users(mods...).Query)
		assert.NotContains(t, query, "WHERE")
		assert.Empty(t, args)
	}
}

func TestBuildGroupNamesQuery(t *testing.T) {
	query, args := queries.BuildQuery(sqlboiler.Groups(buildGroupNamesQuery("alice")...).Query)

	assert.Contains(t, query, `SELECT "groups"."display_name" AS "display_name" FROM "groups"`)
	assert.Contains(t, query, `INNER JOIN "memberships" ON "memberships"."group_id" = "groups"."group_id"`)
	assert.Contains(t, query, `"memberships"."user_id" = $1`)
	assert.Equal(t, []interface{}{"alice"}, args)
}
