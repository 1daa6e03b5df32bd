package postgres

import (
	"context"
	"fmt"
	"strings"

	"lldap-gateway/internal/model"
	"lldap-gateway/internal/sqlboiler"
	"lldap-gateway/internal/user/repository"
	postgresPkg "lldap-gateway/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

var filterColumns = map[string]string{
	model.FieldUserID:      sqlboiler.UserColumns.UserID,
	model.FieldEmail:       sqlboiler.UserColumns.Email,
	model.FieldDisplayName: sqlboiler.UserColumns.DisplayName,
	model.FieldFirstName:   sqlboiler.UserColumns.FirstName,
	model.FieldLastName:    sqlboiler.UserColumns.LastName,
}

func (r *implRepository) buildListQuery(ctx context.Context, opts repository.ListOptions) ([]qm.QueryMod, error) {
	cols := make([]string, len(sqlboiler.UserPublicColumns))
	for i, c := range sqlboiler.UserPublicColumns {
		cols[i] = postgresPkg.Quote(c)
	}

	mods := []qm.QueryMod{
		qm.Select(cols...),
	}

	if !opts.Filter.IsEmpty() {
		clause, args, err := compileFilter(*opts.Filter)
		if err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgres.buildListQuery.compileFilter: %v", err)
			return nil, err
		}
		mods = append(mods, qm.Where(clause, args...))
	}

	mods = append(mods, qm.OrderBy(postgresPkg.Quote(sqlboiler.UserColumns.UserID)))

	return mods, nil
}

func buildPasswordHashQuery(username string) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(postgresPkg.Quote(sqlboiler.UserColumns.PasswordHash)),
		qm.Where(postgresPkg.Quote(sqlboiler.UserColumns.UserID)+" = ?", username),
	}
}

func buildGroupNamesQuery(username string) []qm.QueryMod {
	groupID := postgresPkg.Quote(sqlboiler.GroupTableColumns.GroupID)
	membershipGroupID := postgresPkg.Quote(sqlboiler.MembershipTableColumns.GroupID)

	return []qm.QueryMod{
		// joined selects are relabelled "groups.display_name" unless aliased, which Group cannot bind
		qm.Select(postgresPkg.Quote(sqlboiler.GroupTableColumns.DisplayName) + " AS " + postgresPkg.Quote(sqlboiler.GroupColumns.DisplayName)),
		qm.InnerJoin(fmt.Sprintf("%s ON %s = %s",
			postgresPkg.Quote(sqlboiler.TableNames.Memberships), membershipGroupID, groupID)),
		qm.Where(postgresPkg.Quote(sqlboiler.MembershipTableColumns.UserID)+" = ?", username),
		qm.OrderBy(postgresPkg.Quote(sqlboiler.GroupTableColumns.DisplayName)),
	}
}

// compileFilter turns f into a WHERE fragment with ? placeholders.
// An empty And is TRUE and an empty Or is FALSE.
func compileFilter(f model.UserFilter) (string, []interface{}, error) {
	switch f.Kind {
	case model.FilterEquality:
		col, ok := filterColumns[f.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", model.ErrUnknownFilterField, f.Field)
		}
		return postgresPkg.Quote(col) + " = ?", []interface{}{f.Value}, nil

	case model.FilterAnd, model.FilterOr:
		if len(f.Children) == 0 {
			if f.Kind == model.FilterAnd {
				return "TRUE", nil, nil
			}
			return "FALSE", nil, nil
		}
		op := " AND "
		if f.Kind == model.FilterOr {
			op = " OR "
		}
		parts := make([]string, 0, len(f.Children))
		var args []interface{}
		for _, child := range f.Children {
			clause, childArgs, err := compileFilter(child)
			if err != nil {
				return "", nil, err
			}
			parts = append(parts, clause)
			args = append(args, childArgs...)
		}
		return "(" + strings.Join(parts, op) + ")", args, nil

	case model.FilterNot:
		if len(f.Children) != 1 {
			return "", nil, fmt.Errorf("%w: Not takes one filter", model.ErrInvalidFilter)
		}
		clause, args, err := compileFilter(f.Children[0])
		if err != nil {
			return "", nil, err
		}
		return "NOT (" + clause + ")", args, nil

	default:
		return "", nil, fmt.Errorf("%w: unknown kind %q", model.ErrInvalidFilter, f.Kind)
	}
}
