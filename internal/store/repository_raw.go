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

// rawRepository is the SQL-backed implementation of [RawRepository].
type rawRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRawRepository constructs a [RawRepository] backed by the provided
// database connection and logger.
func NewRawRepository(db *DB, logger *logger.Logger) RawRepository {
	logger.Debug().Msg("RawRepository created")
	return &rawRepository{
		db:     db,
		logger: logger,
	}
}

// RawItemExists checks the business key across all owners.
func (r *rawRepository) RawItemExists(ctx context.Context, itemID int64) (bool, error) {
	return r.exists(ctx, sq.Eq{"item_id": itemID})
}

// RawExists checks for a row by storage-assigned primary key.
func (r *rawRepository) RawExists(ctx context.Context, rawID int64) (bool, error) {
	return r.exists(ctx, sq.Eq{"raw_id": rawID})
}

func (r *rawRepository) exists(ctx context.Context, pred sq.Eq) (bool, error) {
	query, args, err := r.db.Builder().
		Select("1").
		From(models.Raw{}.TableName()).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		r.logger.Err(err).Str("func", "*rawRepository.exists").Msg("error checking raw existence")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return true, nil
}

// CreateRaw inserts a raw row. An absent product link is stored as NULL.
func (r *rawRepository) CreateRaw(ctx context.Context, raw models.Raw) (models.ExecResult, error) {
	query, args, err := r.db.Builder().
		Insert(raw.TableName()).
		Columns("item_id", "item_name", "image_url", "product_id", "user_id").
		Values(raw.ItemID, raw.ItemName, raw.ImageURL, raw.ProductID, raw.UserID).
		Suffix("RETURNING raw_id").
		ToSql()
	if err != nil {
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rawID int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&rawID); err != nil {
		r.logger.Err(err).Str("func", "*rawRepository.CreateRaw").Msg("error inserting raw")
		return models.ExecResult{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return models.ExecResult{InsertID: rawID, AffectedRows: 1}, nil
}

// FindRawsByOwner lists every raw row owned by userID.
func (r *rawRepository) FindRawsByOwner(ctx context.Context, userID int64) ([]models.Raw, error) {
	query, args, err := r.db.Builder().
		Select("raw_id", "item_id", "item_name", "image_url", "product_id", "user_id").
		From(models.Raw{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*rawRepository.FindRawsByOwner").Msg("error querying raws")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	raws := make([]models.Raw, 0)
	for rows.Next() {
		var raw models.Raw
		if err := rows.Scan(&raw.RawID, &raw.ItemID, &raw.ItemName, &raw.ImageURL, &raw.ProductID, &raw.UserID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		raws = append(raws, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return raws, nil
}

// FindOwnerByRawID resolves the owning user of a raw row.
func (r *rawRepository) FindOwnerByRawID(ctx context.Context, rawID int64) (int64, error) {
	query, args, err := r.db.Builder().
		Select("user_id").
		From(models.Raw{}.TableName()).
		Where(sq.Eq{"raw_id": rawID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var userID int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrRawNotFound
		}

		r.logger.Err(err).Str("func", "*rawRepository.FindOwnerByRawID").Msg("error scanning raw owner")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return userID, nil
}

// AssignProduct updates the product link of a raw row. The update always
// executes, so reassigning the current value (including NULL) still reports
// one affected row.
func (r *rawRepository) AssignProduct(ctx context.Context, rawID int64, productID models.LinkID) (models.ExecResult, error) {
	query, args, err := r.db.Builder().
		Update(models.Raw{}.TableName()).
		Set("product_id", productID).
		Where(sq.Eq{"raw_id": rawID}).
		ToSql()
	if err != nil {
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*rawRepository.AssignProduct").Msg("error updating raw")
		return models.ExecResult{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.ExecResult{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return models.ExecResult{AffectedRows: affected}, nil
}
