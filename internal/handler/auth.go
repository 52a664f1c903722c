package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skyscan-flight-api/internal/apierr"
	"github.com/iliyamo/skyscan-flight-api/internal/config"
	"github.com/iliyamo/skyscan-flight-api/internal/model"
	"github.com/iliyamo/skyscan-flight-api/internal/repository"
	"github.com/iliyamo/skyscan-flight-api/internal/utils"
	"github.com/iliyamo/skyscan-flight-api/internal/validation"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
type authResp struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresAt   string   `json:"expires_at"`
	User        userPart `json:"user"`
}

func toUserPart(u *model.User) userPart {
	return userPart{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

func (h *AuthHandler) issue(u *model.User) (*authResp, error) {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, name, h.Cfg.AccessTTLMin)
	if err != nil {
		return nil, err
	}
	return &authResp{
		AccessToken: access.Token,
		TokenType:   "bearer",
		ExpiresAt:   access.Exp.UTC().Format(time.RFC3339),
		User:        toUserPart(u),
	}, nil
}

// Register creates the account and returns an access token immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierr.Envelope(apierr.BadRequest("invalid request body")))
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if e := validation.Registration(req.FirstName, req.LastName, req.Email, req.Password); e != nil {
		return c.JSON(e.Status, apierr.Envelope(e))
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Internal()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u := &model.User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	if err := h.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, apierr.Envelope(apierr.Conflict("an account with this email already exists")))
		}
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Persistence()))
	}

	resp, err := h.issue(u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Internal()))
	}
	return c.JSON(http.StatusCreated, resp)
}

// Login verifies credentials and returns a fresh access token. Unknown
// email and wrong password produce the same response so the endpoint
// does not reveal which accounts exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierr.Envelope(apierr.BadRequest("invalid request body")))
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, apierr.Envelope(apierr.Validation("MISSING_CREDENTIALS", "email and password are required")))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, apierr.Envelope(apierr.Unauthorized()))
		}
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Persistence()))
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, apierr.Envelope(apierr.Unauthorized()))
	}

	resp, err := h.issue(u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Internal()))
	}
	return c.JSON(http.StatusOK, resp)
}

// Me returns the profile of the authenticated user. Requires the JWT
// middleware to have populated user_id in the context.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, apierr.Envelope(apierr.AuthRequired()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, apierr.Envelope(apierr.NotFound("user")))
		}
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Persistence()))
	}
	return c.JSON(http.StatusOK, toUserPart(u))
}
