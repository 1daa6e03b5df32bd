package postgres

import (
	"context"

	"lldap-gateway/internal/model"
	"lldap-gateway/internal/sqlboiler"
	"lldap-gateway/internal/user/repository"
	postgresPkg "lldap-gateway/pkg/postgre"

	"github.com/friendsofgo/errors"
)

func (r *implRepository) GetPasswordHash(ctx context.Context, username string) (string, error) {
	usr, err := sqlboiler.Users(buildPasswordHashQuery(username)...).One(ctx, r.db)
	if err != nil {
		if postgresPkg.IsNoRows(err) {
			return "", repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.GetPasswordHash.One: %v", err)
		return "", wrapQueryError(err, "get password hash")
	}

	return usr.PasswordHash.String, nil
}

func (r *implRepository) ListGroupNames(ctx context.Context, username string) ([]string, error) {
	grps, err := sqlboiler.Groups(buildGroupNamesQuery(username)...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.ListGroupNames.All: %v", err)
		return nil, wrapQueryError(err, "list group names")
	}

	names := make([]string, len(grps))
	for i, g := range grps {
		names[i] = g.DisplayName
	}

	return names, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.User, error) {
	mods, err := r.buildListQuery(ctx, opts)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List.buildListQuery: %v", err)
		return nil, err
	}

	usrs, err := sqlboiler.Users(mods...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List.All: %v", err)
		return nil, wrapQueryError(err, "list users")
	}

	res := make([]model.User, len(usrs))
	for i, u := range usrs {
		res[i] = *model.NewUserFromDB(u)
	}

	return res, nil
}

// wrapQueryError names the likely cause when the tables were never created.
func wrapQueryError(err error, op string) error {
	if postgresPkg.IsUndefinedTable(err) {
		return errors.Wrap(err, op+": schema is missing, it is created on startup")
	}
	return errors.Wrap(err, op)
}
