package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gbellini/fantamarket/internal/domain"
)

const userColumns = `
	id, username, email, password_hash, role, is_active, created_at, last_login
`

type userRepository struct {
	q querier
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{q: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, role, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	res, err := r.q.ExecContext(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		user.IsActive,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = int(id)
	user.CreatedAt = now
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.getOne(ctx, query, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	return r.getOne(ctx, query, username)
}

func (r *userRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ? OR email = ?`
	return r.getOne(ctx, query, identifier, identifier)
}

func (r *userRepository) getOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	user := &domain.User{}
	var role string
	var lastLogin sql.NullTime

	err := r.q.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.IsActive,
		&user.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Role = domain.UserRole(role)
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}
	return user, nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	_, err := r.q.ExecContext(ctx, `UPDATE users SET last_login = ? WHERE id = ?`, at, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}
