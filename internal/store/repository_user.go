package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"stockroom/internal/logger"
	"stockroom/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the driver-level result.
//
// Error handling:
//   - engine unique violation on the email column → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.ExecResult, error) {
	query, args, err := r.db.Builder().
		Insert(user.TableName()).
		Columns("email", "password").
		Values(user.Email, user.Password).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var userID int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&userID); err != nil {
		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if r.db.IsUniqueViolation(err) {
			return models.ExecResult{}, ErrEmailAlreadyExists
		}
		return models.ExecResult{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return models.ExecResult{InsertID: userID, AffectedRows: 1}, nil
}

// FindUserByEmail retrieves the user row whose email matches exactly.
// The caller is expected to normalize the email beforehand.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := r.db.Builder().
		Select("user_id", "email", "password").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.Email, &user.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		r.logger.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindIDByEmail resolves only the owner identifier for an email.
func (r *userRepository) FindIDByEmail(ctx context.Context, email string) (int64, error) {
	query, args, err := r.db.Builder().
		Select("user_id").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var userID int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUserNotFound
		}

		r.logger.Err(err).Str("func", "*userRepository.FindIDByEmail").Msg("error scanning user id")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return userID, nil
}
