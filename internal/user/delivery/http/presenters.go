package http

import (
	"time"

	"lldap-gateway/internal/model"
	"lldap-gateway/internal/user"
)

const maxBodyBytes = 4096

type listUsersReq struct {
	Filters *model.UserFilter `json:"filters"`
}

func (r listUsersReq) toInput() user.ListUsersInput {
	return user.ListUsersInput{Filter: r.Filters}
}

type userItemResp struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CreationDate string `json:"creation_date"`
}

func (h *Handler) newListUsersResp(usrs []model.User) []userItemResp {
	resp := make([]userItemResp, len(usrs))
	for i, u := range usrs {
		resp[i] = userItemResp{
			UserID:       u.UserID,
			Email:        u.Email,
			DisplayName:  u.DisplayName,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			CreationDate: u.CreationDate.UTC().Format(time.RFC3339),
		}
	}
	return resp
}
