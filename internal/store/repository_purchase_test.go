package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"stockroom/models"
)

func newTestPurchaseRepo(t *testing.T) (*purchaseRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	return &purchaseRepository{db: db, logger: db.logger}, mock
}

func TestCreatePurchase_Success(t *testing.T) {
	repo, mock := newTestPurchaseRepo(t)

	purchase := models.Purchase{
		RawID:            1,
		UserID:           7,
		PurchaseQuantity: 5,
		PurchaseAmount:   12.50,
		PurchaseTime:     "2026-08-31T12:00:00Z",
	}

	mock.ExpectExec("INSERT INTO purchases").
		WithArgs(purchase.RawID, purchase.UserID, purchase.PurchaseQuantity, purchase.PurchaseAmount, purchase.PurchaseTime).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := repo.CreatePurchase(context.Background(), purchase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AffectedRows != 1 {
		t.Errorf("expected AffectedRows=1, got %d", result.AffectedRows)
	}
	if result.InsertID != 0 {
		t.Errorf("expected InsertID=0 for keyless table, got %d", result.InsertID)
	}
}

func TestCreatePurchase_DBError(t *testing.T) {
	repo, mock := newTestPurchaseRepo(t)

	mock.ExpectExec("INSERT INTO purchases").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreatePurchase(context.Background(), models.Purchase{})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindPurchasesByOwner_Success(t *testing.T) {
	repo, mock := newTestPurchaseRepo(t)

	rows := sqlmock.
		NewRows([]string{"raw_id", "user_id", "purchase_quantity", "purchase_amount", "purchase_time"}).
		AddRow(1, 7, 5, 12.50, "2026-08-31T12:00:00Z").
		AddRow(2, 7, 1, 3.99, "2026-08-31T13:00:00Z")

	mock.ExpectQuery("SELECT raw_id, user_id, purchase_quantity, purchase_amount, purchase_time FROM purchases").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	purchases, err := repo.FindPurchasesByOwner(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(purchases) != 2 {
		t.Fatalf("expected 2 purchases, got %d", len(purchases))
	}
	if purchases[0].PurchaseAmount != 12.50 {
		t.Errorf("expected amount 12.50, got %f", purchases[0].PurchaseAmount)
	}
}

func TestFindPurchasesByOwner_QueryError(t *testing.T) {
	repo, mock := newTestPurchaseRepo(t)

	mock.ExpectQuery("SELECT raw_id, user_id, purchase_quantity, purchase_amount, purchase_time FROM purchases").
		WithArgs(int64(7)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindPurchasesByOwner(context.Background(), 7)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
