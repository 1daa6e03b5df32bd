package repository

import "lldap-gateway/internal/model"

// ListOptions contains options for listing users.
type ListOptions struct {
	Filter *model.UserFilter
}
