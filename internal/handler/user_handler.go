package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/shinyyama/omnicopy-backend/internal/model"
	"github.com/shinyyama/omnicopy-backend/internal/service"
)

// UserLookup is satisfied by *auth.Client.
type UserLookup interface {
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
}

type UserHandler struct {
	users    UserLookup
	profiles service.ProfileService
}

// NewUserHandler accepts a nil lookup when auth is disabled; profiles are then created bare.
func NewUserHandler(users UserLookup, profiles service.ProfileService) *UserHandler {
	return &UserHandler{users: users, profiles: profiles}
}

type MeResponse struct {
	UID           string  `json:"uid"`
	Email         string  `json:"email"`
	DisplayName   string  `json:"displayName"`
	PhotoURL      *string `json:"photoURL"`
	CreditBalance int64   `json:"creditBalance"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

func (h *UserHandler) Me(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	ctx := c.Request().Context()
	seed := model.UserProfile{UID: uid}
	if h.users != nil {
		user, err := h.users.GetUser(ctx, uid)
		if err != nil {
			log.Printf("[user] uid=%s stage=lookup_fail err=%v", uid, err)
		} else {
			seed.Email = user.Email
			seed.DisplayName = user.DisplayName
			seed.PhotoURL = user.PhotoURL
		}
	}
	p, err := h.profiles.Ensure(ctx, seed)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to load profile"))
	}
	resp := MeResponse{
		UID:           p.UID,
		Email:         p.Email,
		DisplayName:   p.DisplayName,
		PhotoURL:      strPtrOrNil(p.PhotoURL),
		CreditBalance: p.CreditBalance,
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	return c.JSON(http.StatusOK, resp)
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
