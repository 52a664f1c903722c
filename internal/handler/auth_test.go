package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/skyscan-flight-api/internal/config"
	"github.com/iliyamo/skyscan-flight-api/internal/model"
	"github.com/iliyamo/skyscan-flight-api/internal/repository"
)

type memUserRepo struct {
	users []model.User
}

func (m *memUserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	m.users = append(m.users, *u)
	return nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

var _ repository.UserRepo = (*memUserRepo)(nil)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:    "test-secret",
		AccessTTLMin: 30,
		BcryptCost:   bcrypt.MinCost,
	}
}

const validRegistration = `{
    "first_name": "Ada",
    "last_name": "Lovelace",
    "email": "Ada@Example.com",
    "password": "Str0ngPass"
}`

func TestRegister(t *testing.T) {
	e := echo.New()
	repo := &memUserRepo{}
	h := NewAuthHandler(testConfig(), repo)

	rec, c := doJSON(e, http.MethodPost, "/auth/register", validRegistration)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.User.ID)

	// The stored hash must never equal the plain password.
	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "Str0ngPass", repo.users[0].PasswordHash)
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(testConfig(), &memUserRepo{})

	rec, c := doJSON(e, http.MethodPost, "/auth/register", validRegistration)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Same account with different casing must collide.
	rec, c = doJSON(e, http.MethodPost, "/auth/register", strings.Replace(validRegistration, "Ada@Example.com", "ADA@EXAMPLE.COM", 1))
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", decodeError(t, rec).Code)
}

func TestRegisterWeakPassword(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(testConfig(), &memUserRepo{})

	rec, c := doJSON(e, http.MethodPost, "/auth/register",
		`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"weak"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PASSWORD", decodeError(t, rec).Code)
}

func TestLogin(t *testing.T) {
	e := echo.New()
	repo := &memUserRepo{}
	h := NewAuthHandler(testConfig(), repo)

	rec, c := doJSON(e, http.MethodPost, "/auth/register", validRegistration)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, c = doJSON(e, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"Str0ngPass"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "ada@example.com", resp.User.Email)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(testConfig(), &memUserRepo{})

	rec, c := doJSON(e, http.MethodPost, "/auth/register", validRegistration)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, c = doJSON(e, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"WrongPass1"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	wrongPassword := rec.Body.String()

	rec, c = doJSON(e, http.MethodPost, "/auth/login", `{"email":"ghost@example.com","password":"Str0ngPass"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	unknownEmail := rec.Body.String()

	assert.JSONEq(t, wrongPassword, unknownEmail)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
}

func TestMe(t *testing.T) {
	e := echo.New()
	repo := &memUserRepo{}
	h := NewAuthHandler(testConfig(), repo)

	rec, c := doJSON(e, http.MethodPost, "/auth/register", validRegistration)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	uid := repo.users[0].ID

	rec, c = doJSON(e, http.MethodGet, "/auth/me", "")
	c.Set("user_id", uid)
	require.NoError(t, h.Me(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var u userPart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, uid, u.ID)
	assert.Equal(t, "ada@example.com", u.Email)
}

func TestMeWithoutIdentity(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(testConfig(), &memUserRepo{})

	rec, c := doJSON(e, http.MethodGet, "/auth/me", "")
	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTHENTICATION_REQUIRED", decodeError(t, rec).Code)
}
