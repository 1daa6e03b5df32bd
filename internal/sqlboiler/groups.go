package sqlboiler

import (
	"context"

	postgres "lldap-gateway/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/friendsofgo/errors"
)

// Group is an object representing the database table.
type Group struct {
	GroupID     int    `boil:"group_id" json:"group_id" toml:"group_id" yaml:"group_id"`
	DisplayName string `boil:"display_name" json:"display_name" toml:"display_name" yaml:"display_name"`
}

var GroupColumns = struct {
	GroupID     string
	DisplayName string
}{
	GroupID:     "group_id",
	DisplayName: "display_name",
}

var GroupTableColumns = struct {
	GroupID     string
	DisplayName string
}{
	GroupID:     "groups.group_id",
	DisplayName: "groups.display_name",
}

var MembershipTableColumns = struct {
	UserID  string
	GroupID string
}{
	UserID:  "memberships.user_id",
	GroupID: "memberships.group_id",
}

// GroupSlice is an alias for a slice of pointers to Group.
type GroupSlice []*Group

type groupQuery struct {
	*queries.Query
}

// Groups retrieves all the records using an executor.
func Groups(mods ...qm.QueryMod) groupQuery {
	mods = append(mods, qm.From(postgres.Quote(TableNames.Groups)))
	q := postgres.NewQuery(mods...)
	if len(queries.GetSelect(q)) == 0 {
		queries.SetSelect(q, []string{postgres.Quote(TableNames.Groups) + ".*"})
	}

	return groupQuery{q}
}

// All returns all Group records from the query.
func (q groupQuery) All(ctx context.Context, exec boil.ContextExecutor) (GroupSlice, error) {
	var o []*Group

	err := q.Bind(ctx, exec, &o)
	if err != nil {
		return nil, errors.Wrap(err, "sqlboiler: failed to assign all query results to Group slice")
	}

	return o, nil
}
