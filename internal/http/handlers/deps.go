package handlers

import (
	"github.com/jmoiron/sqlx"

	"userdesk/internal/repos"
	"userdesk/internal/services"
)

type Deps struct {
	UserHandler *UserHandler
	PageHandler *PageHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	userRepo := repos.NewUserRepo(db)
	roleRepo := repos.NewRoleRepo(db)

	userSvc := services.NewUserService(userRepo, roleRepo)

	return &Deps{
		UserHandler: &UserHandler{Users: userSvc},
		PageHandler: &PageHandler{Users: userSvc},
	}
}
