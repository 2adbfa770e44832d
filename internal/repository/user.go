package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/forkful/forkful-go/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

// UserRepository handles user persistence.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, avatar, role, auth_hash, reset_token, reset_expiry, created_at, updated_at`

func scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Avatar, &user.Role,
		&user.AuthHash, &user.ResetToken, &user.ResetExpiry,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create inserts a new user and sets the generated ID on the struct.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (username, email, avatar, role, auth_hash) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.Avatar, user.Role, user.AuthHash)
	if err != nil {
		if isDuplicateEntryError(err) {
			if strings.Contains(err.Error(), "email") {
				return ErrDuplicateEmail
			}
			return ErrDuplicateUsername
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByUsername retrieves a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

// GetByEmail retrieves a user by email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByResetToken retrieves a user holding the given unexpired reset token.
func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_token = ? AND reset_expiry > ?`
	return scanUser(r.db.QueryRowContext(ctx, query, token, time.Now()))
}

// UpdateProfile replaces the user's editable fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET username = ?, email = ?, avatar = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.Avatar, user.ID)
	if err != nil && isDuplicateEntryError(err) {
		if strings.Contains(err.Error(), "email") {
			return ErrDuplicateEmail
		}
		return ErrDuplicateUsername
	}
	return err
}

// UpdateAuthHash replaces the password hash and clears any reset token.
func (r *UserRepository) UpdateAuthHash(ctx context.Context, userID int64, hash string) error {
	query := `UPDATE users SET auth_hash = ?, reset_token = NULL, reset_expiry = NULL WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, hash, userID)
	return err
}

// SetResetToken stores a one-shot reset token with its expiry.
func (r *UserRepository) SetResetToken(ctx context.Context, userID int64, token string, expiry time.Time) error {
	query := `UPDATE users SET reset_token = ?, reset_expiry = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, token, expiry, userID)
	return err
}

// isDuplicateEntryError checks for a MySQL duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
