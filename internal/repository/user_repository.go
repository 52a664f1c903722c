package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/skyscan-flight-api/internal/model"
)

// UserRepo is the persistence contract for user accounts.  Email
// uniqueness is enforced by the store; emails are stored lower-cased
// so the unique constraint is effectively case-insensitive.
type UserRepo interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type MySQLUserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *MySQLUserRepo { return &MySQLUserRepo{db: db} }

// Create inserts a user.  The caller supplies the id, hash and
// timestamps; the email is normalized here as a last line of defense.
func (r *MySQLUserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, first_name, last_name, email, password_hash, created_at) VALUES (?,?,?,?,?,?)",
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByEmail fetches a user by normalized email.
func (r *MySQLUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id,first_name,last_name,email,password_hash,created_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID fetches a user by id.
func (r *MySQLUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id,first_name,last_name,email,password_hash,created_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

var _ UserRepo = (*MySQLUserRepo)(nil)
