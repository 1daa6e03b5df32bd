package user

import "lldap-gateway/internal/model"

type BindInput struct {
	Username string
	Password string
}

type ListUsersInput struct {
	Filter *model.UserFilter
}

// AdminConfig is the built-in administrator that does not live in the store.
type AdminConfig struct {
	Username string
	Password string
}
