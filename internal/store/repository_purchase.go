package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"stockroom/internal/logger"
	"stockroom/models"
)

// purchaseRepository is the SQL-backed implementation of [PurchaseRepository].
type purchaseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPurchaseRepository constructs a [PurchaseRepository] backed by the
// provided database connection and logger.
func NewPurchaseRepository(db *DB, logger *logger.Logger) PurchaseRepository {
	logger.Debug().Msg("PurchaseRepository created")
	return &purchaseRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePurchase inserts a purchase row. The purchases table carries no
// generated key, so the result reports affected rows only.
func (r *purchaseRepository) CreatePurchase(ctx context.Context, purchase models.Purchase) (models.ExecResult, error) {
	query, args, err := r.db.Builder().
		Insert(purchase.TableName()).
		Columns("raw_id", "user_id", "purchase_quantity", "purchase_amount", "purchase_time").
		Values(purchase.RawID, purchase.UserID, purchase.PurchaseQuantity, purchase.PurchaseAmount, purchase.PurchaseTime).
		ToSql()
	if err != nil {
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*purchaseRepository.CreatePurchase").Msg("error inserting purchase")
		return models.ExecResult{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.ExecResult{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return models.ExecResult{AffectedRows: affected}, nil
}

// FindPurchasesByOwner lists every purchase row owned by userID.
func (r *purchaseRepository) FindPurchasesByOwner(ctx context.Context, userID int64) ([]models.Purchase, error) {
	query, args, err := r.db.Builder().
		Select("raw_id", "user_id", "purchase_quantity", "purchase_amount", "purchase_time").
		From(models.Purchase{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*purchaseRepository.FindPurchasesByOwner").Msg("error querying purchases")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	purchases := make([]models.Purchase, 0)
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.RawID, &p.UserID, &p.PurchaseQuantity, &p.PurchaseAmount, &p.PurchaseTime); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return purchases, nil
}
