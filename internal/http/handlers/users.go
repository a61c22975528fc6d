package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	dbpkg "sleepapi/internal/db"
)

type userResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user *dbpkg.User) userResponse {
	return userResponse{ID: user.ID, Username: user.Username, CreatedAt: user.CreatedAt}
}

// requestParam reads a parameter from the query string, falling back to
// form-encoded POST bodies.
func requestParam(ctx *fasthttp.RequestCtx, name string) string {
	if v := ctx.QueryArgs().Peek(name); len(v) > 0 {
		return string(v)
	}
	return string(ctx.PostArgs().Peek(name))
}

// CreateUser handles POST /users/create?username=...
func CreateUser(db *gorm.DB) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		username := requestParam(ctx, "username")
		if username == "" {
			jsonError(ctx, fasthttp.StatusBadRequest, "username required")
			return
		}

		user, err := dbpkg.CreateUser(db, username)
		if err != nil {
			if errors.Is(err, dbpkg.ErrDuplicateUser) {
				jsonError(ctx, fasthttp.StatusBadRequest, "Failed to create user: "+err.Error())
				return
			}
			jsonError(ctx, fasthttp.StatusInternalServerError, opaqueErrorMessage)
			return
		}

		jsonResponse(ctx, fasthttp.StatusOK, toUserResponse(user))
	}
}

// FindUserByUsername handles GET /users/findByUsername?username=...
func FindUserByUsername(db *gorm.DB) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		username := requestParam(ctx, "username")
		if username == "" {
			jsonError(ctx, fasthttp.StatusBadRequest, "username required")
			return
		}

		user, err := dbpkg.FindUserByUsername(db, username)
		if err != nil {
			if errors.Is(err, dbpkg.ErrNotFound) {
				jsonError(ctx, fasthttp.StatusNotFound,
					fmt.Sprintf("User not found with username: %s", username))
				return
			}
			jsonError(ctx, fasthttp.StatusInternalServerError, opaqueErrorMessage)
			return
		}

		jsonResponse(ctx, fasthttp.StatusOK, toUserResponse(user))
	}
}
