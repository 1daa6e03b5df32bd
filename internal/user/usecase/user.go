package usecase

import (
	"context"
	"errors"

	"lldap-gateway/internal/model"
	"lldap-gateway/internal/user"
	"lldap-gateway/internal/user/repository"
	"lldap-gateway/pkg/encrypter"
	pkgErrors "lldap-gateway/pkg/errors"
)

func (uc *usecase) isAdmin(username string) bool {
	return uc.admin.Username != "" && username == uc.admin.Username
}

func (uc *usecase) Bind(ctx context.Context, ip user.BindInput) error {
	if ip.Username == "" {
		return user.ErrInvalidCredentials
	}

	if uc.isAdmin(ip.Username) {
		if uc.admin.Password == "" || !encrypter.EqualConstantTime(ip.Password, uc.admin.Password) {
			return user.ErrInvalidCredentials
		}
		return nil
	}

	hash, err := uc.repo.GetPasswordHash(ctx, ip.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			encrypter.CheckPasswordHash(ip.Password, "")
			return user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Bind.GetPasswordHash: %v", err)
		return pkgErrors.NewBackendError(user.MessageDatabaseError, err)
	}

	if !encrypter.CheckPasswordHash(ip.Password, hash) {
		return user.ErrInvalidCredentials
	}

	return nil
}

func (uc *usecase) GetUserGroups(ctx context.Context, username string) ([]string, error) {
	if uc.isAdmin(username) {
		return []string{model.AdminGroup}, nil
	}

	groups, err := uc.repo.ListGroupNames(ctx, username)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.GetUserGroups.ListGroupNames: %v", err)
		return nil, pkgErrors.NewBackendError(user.MessageDatabaseError, err)
	}

	return groups, nil
}

func (uc *usecase) ListUsers(ctx context.Context, ip user.ListUsersInput) ([]model.User, error) {
	usrs, err := uc.repo.List(ctx, repository.ListOptions{Filter: ip.Filter})
	if err != nil {
		if errors.Is(err, model.ErrInvalidFilter) || errors.Is(err, model.ErrUnknownFilterField) {
			return nil, err
		}
		uc.l.Errorf(ctx, "internal.user.usecase.ListUsers.List: %v", err)
		return nil, pkgErrors.NewBackendError(user.MessageDatabaseError, err)
	}

	return usrs, nil
}
