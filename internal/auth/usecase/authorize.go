package usecase

import (
	"context"
	"slices"

	"lldap-gateway/internal/auth"
	"lldap-gateway/internal/user"
	pkgErrors "lldap-gateway/pkg/errors"
	"lldap-gateway/pkg/metrics"
	"lldap-gateway/pkg/scope"
)

func (uc *usecase) Authorize(ctx context.Context, ip auth.AuthorizeInput) (auth.AuthorizeOutput, error) {
	if err := uc.userUC.Bind(ctx, user.BindInput{Username: ip.Username, Password: ip.Password}); err != nil {
		if pkgErrors.IsBackendError(err) {
			uc.l.Errorf(ctx, "internal.auth.usecase.Authorize.Bind: %v", err)
		}
		uc.security.LogAuthenticationFailure(ctx, ip.Username, err.Error())
		uc.metrics.TokenIssued(metrics.IssueBindFailed)
		return auth.AuthorizeOutput{}, pkgErrors.NewAuthenticationError(auth.MessageBindFailed(ip.Username))
	}

	if err := ctx.Err(); err != nil {
		return auth.AuthorizeOutput{}, err
	}

	groups, err := uc.userUC.GetUserGroups(ctx, ip.Username)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Authorize.GetUserGroups: %v", err)
		uc.metrics.TokenIssued(metrics.IssueBackendFail)
		return auth.AuthorizeOutput{}, pkgErrors.NewBackendError(auth.MessageGroupLookupFailed(ip.Username), err)
	}

	groups = slices.Clone(groups)
	slices.Sort(groups)
	groups = slices.Compact(groups)

	token, err := uc.scopeManager.CreateToken(scope.Payload{User: ip.Username, Groups: groups})
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Authorize.CreateToken: %v", err)
		return auth.AuthorizeOutput{}, err
	}

	uc.metrics.TokenIssued(metrics.IssueSuccess)
	uc.l.Infof(ctx, "internal.auth.usecase.Authorize: issued token for %s with groups %v", ip.Username, groups)

	return auth.AuthorizeOutput{
		Token:    token,
		Username: ip.Username,
		Groups:   groups,
	}, nil
}
