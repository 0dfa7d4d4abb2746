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

// productRepository is the SQL-backed implementation of [ProductRepository].
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("ProductRepository created")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// ProductItemExists checks the business key across all owners; uniqueness of
// item_id is global, not per owner.
func (r *productRepository) ProductItemExists(ctx context.Context, itemID int64) (bool, error) {
	return r.exists(ctx, sq.Eq{"item_id": itemID})
}

// ProductExists checks for a row by storage-assigned primary key.
func (r *productRepository) ProductExists(ctx context.Context, productID int64) (bool, error) {
	return r.exists(ctx, sq.Eq{"product_id": productID})
}

func (r *productRepository) exists(ctx context.Context, pred sq.Eq) (bool, error) {
	query, args, err := r.db.Builder().
		Select("1").
		From(models.Product{}.TableName()).
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

		r.logger.Err(err).Str("func", "*productRepository.exists").Msg("error checking product existence")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return true, nil
}

// CreateProduct inserts a product row and returns the driver-level result
// with the assigned primary key.
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.ExecResult, error) {
	query, args, err := r.db.Builder().
		Insert(product.TableName()).
		Columns("item_id", "item_name", "image_url", "user_id").
		Values(product.ItemID, product.ItemName, product.ImageURL, product.UserID).
		Suffix("RETURNING product_id").
		ToSql()
	if err != nil {
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var productID int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&productID); err != nil {
		r.logger.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error inserting product")
		return models.ExecResult{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return models.ExecResult{InsertID: productID, AffectedRows: 1}, nil
}

// FindProductsByOwner lists every product row owned by userID.
func (r *productRepository) FindProductsByOwner(ctx context.Context, userID int64) ([]models.Product, error) {
	query, args, err := r.db.Builder().
		Select("product_id", "item_id", "item_name", "image_url", "user_id").
		From(models.Product{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*productRepository.FindProductsByOwner").Msg("error querying products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ProductID, &p.ItemID, &p.ItemName, &p.ImageURL, &p.UserID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}
