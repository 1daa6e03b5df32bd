package sqlboiler

import (
	"context"
	"database/sql"
	"time"

	postgres "lldap-gateway/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/friendsofgo/errors"
)

// User is an object representing the database table.
type User struct {
	UserID       string      `boil:"user_id" json:"user_id" toml:"user_id" yaml:"user_id"`
	Email        null.String `boil:"email" json:"email,omitempty" toml:"email" yaml:"email,omitempty"`
	DisplayName  null.String `boil:"display_name" json:"display_name,omitempty" toml:"display_name" yaml:"display_name,omitempty"`
	FirstName    null.String `boil:"first_name" json:"first_name,omitempty" toml:"first_name" yaml:"first_name,omitempty"`
	LastName     null.String `boil:"last_name" json:"last_name,omitempty" toml:"last_name" yaml:"last_name,omitempty"`
	CreationDate time.Time   `boil:"creation_date" json:"creation_date" toml:"creation_date" yaml:"creation_date"`
	PasswordHash null.String `boil:"password_hash" json:"-" toml:"password_hash" yaml:"-"`
}

var UserColumns = struct {
	UserID       string
	Email        string
	DisplayName  string
	FirstName    string
	LastName     string
	CreationDate string
	PasswordHash string
}{
	UserID:       "user_id",
	Email:        "email",
	DisplayName:  "display_name",
	FirstName:    "first_name",
	LastName:     "last_name",
	CreationDate: "creation_date",
	PasswordHash: "password_hash",
}

// UserPublicColumns are the columns that may leave the storage layer.
var UserPublicColumns = []string{
	UserColumns.UserID,
	UserColumns.Email,
	UserColumns.DisplayName,
	UserColumns.FirstName,
	UserColumns.LastName,
	UserColumns.CreationDate,
}

// UserSlice is an alias for a slice of pointers to User.
type UserSlice []*User

type userQuery struct {
	*queries.Query
}

// Users retrieves all the records using an executor.
func Users(mods ...qm.QueryMod) userQuery {
	mods = append(mods, qm.From(postgres.Quote(TableNames.Users)))
	q := postgres.NewQuery(mods...)
	if len(queries.GetSelect(q)) == 0 {
		queries.SetSelect(q, []string{postgres.Quote(TableNames.Users) + ".*"})
	}

	return userQuery{q}
}

// One returns a single user record from the query.
func (q userQuery) One(ctx context.Context, exec boil.ContextExecutor) (*User, error) {
	o := &User{}

	queries.SetLimit(q.Query, 1)

	err := q.Bind(ctx, exec, o)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, errors.Wrap(err, "sqlboiler: failed to execute a one query for users")
	}

	return o, nil
}

// All returns all User records from the query.
func (q userQuery) All(ctx context.Context, exec boil.ContextExecutor) (UserSlice, error) {
	var o []*User

	err := q.Bind(ctx, exec, &o)
	if err != nil {
		return nil, errors.Wrap(err, "sqlboiler: failed to assign all query results to User slice")
	}

	return o, nil
}
