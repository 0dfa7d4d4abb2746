package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"stockroom/models"
)

func newTestProductRepo(t *testing.T) (*productRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	return &productRepository{db: db, logger: db.logger}, mock
}

func TestProductItemExists_Found(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	rows := sqlmock.NewRows([]string{"1"}).AddRow(1)

	mock.ExpectQuery("SELECT 1 FROM products").
		WithArgs(int64(100)).
		WillReturnRows(rows)

	exists, err := repo.ProductItemExists(context.Background(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected exists=true")
	}
}

func TestProductItemExists_NotFound(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectQuery("SELECT 1 FROM products").
		WithArgs(int64(100)).
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ProductItemExists(context.Background(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected exists=false")
	}
}

func TestProductExists_DBError(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectQuery("SELECT 1 FROM products").
		WithArgs(int64(5)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.ProductExists(context.Background(), 5)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateProduct_Success(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	product := models.Product{
		ItemID:   100,
		ItemName: "Widget",
		ImageURL: "https://img.example.com/widget.png",
		UserID:   1,
	}

	rows := sqlmock.NewRows([]string{"product_id"}).AddRow(3)

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(product.ItemID, product.ItemName, product.ImageURL, product.UserID).
		WillReturnRows(rows)

	result, err := repo.CreateProduct(context.Background(), product)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.InsertID != 3 {
		t.Errorf("expected InsertID=3, got %d", result.InsertID)
	}
	if result.AffectedRows != 1 {
		t.Errorf("expected AffectedRows=1, got %d", result.AffectedRows)
	}
}

func TestCreateProduct_DBError(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectQuery("INSERT INTO products").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateProduct(context.Background(), models.Product{})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindProductsByOwner_Success(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	rows := sqlmock.
		NewRows([]string{"product_id", "item_id", "item_name", "image_url", "user_id"}).
		AddRow(1, 100, "Widget", "https://img.example.com/widget.png", 1).
		AddRow(2, 101, "Gadget", "https://img.example.com/gadget.png", 1)

	mock.ExpectQuery("SELECT product_id, item_id, item_name, image_url, user_id FROM products").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	products, err := repo.FindProductsByOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[1].ItemName != "Gadget" {
		t.Errorf("expected second product Gadget, got %s", products[1].ItemName)
	}
}

func TestFindProductsByOwner_Empty(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	rows := sqlmock.NewRows([]string{"product_id", "item_id", "item_name", "image_url", "user_id"})

	mock.ExpectQuery("SELECT product_id, item_id, item_name, image_url, user_id FROM products").
		WithArgs(int64(9)).
		WillReturnRows(rows)

	products, err := repo.FindProductsByOwner(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(products) != 0 {
		t.Errorf("expected 0 products, got %d", len(products))
	}
}

func TestFindProductsByOwner_QueryError(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectQuery("SELECT product_id, item_id, item_name, image_url, user_id FROM products").
		WithArgs(int64(1)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindProductsByOwner(context.Background(), 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
