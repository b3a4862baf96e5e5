package services

import (
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/auraflow/auraflow-be/internal/models"
)

const defaultListLimit = 100

// ProductServiceProvider defines the interface for product services.
type ProductServiceProvider interface {
	List(skip, limit int) ([]models.Product, error)
	Get(id int64) (models.Product, error)
	Create(name, description string, price decimal.Decimal, imageURL *string) (models.Product, error)
	Update(id int64, name, description string, price decimal.Decimal, imageURL *string) (models.Product, error)
	Delete(id int64) error
}

// ProductService provides business logic for the product catalog.
type ProductService struct {
	db *sql.DB
}

// NewProductService creates a new ProductService.
func NewProductService(db *sql.DB) *ProductService {
	return &ProductService{db: db}
}

// List returns up to limit products after skipping skip, in ascending
// id order (insertion order). A non-positive limit falls back to 100;
// a negative skip is treated as 0.
func (s *ProductService) List(skip, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}

	rows, err := s.db.Query(
		"SELECT id, name, description, price, image_url, created_at FROM products ORDER BY id LIMIT ? OFFSET ?",
		limit, skip,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// Get retrieves a single product by its ID.
func (s *ProductService) Get(id int64) (models.Product, error) {
	row := s.db.QueryRow("SELECT id, name, description, price, image_url, created_at FROM products WHERE id = ?", id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

// Create persists a new product with a system-assigned id.
func (s *ProductService) Create(name, description string, price decimal.Decimal, imageURL *string) (models.Product, error) {
	res, err := s.db.Exec(
		"INSERT INTO products(name, description, price, image_url) VALUES(?, ?, ?, ?)",
		name, description, price.String(), imageURL,
	)
	if err != nil {
		return models.Product{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Product{}, err
	}
	return s.Get(id)
}

// Update replaces all mutable fields of an existing product. It writes
// nothing and returns ErrNotFound when the id does not exist.
func (s *ProductService) Update(id int64, name, description string, price decimal.Decimal, imageURL *string) (models.Product, error) {
	res, err := s.db.Exec(
		"UPDATE products SET name = ?, description = ?, price = ?, image_url = ? WHERE id = ?",
		name, description, price.String(), imageURL, id,
	)
	if err != nil {
		return models.Product{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Product{}, err
	}
	if affected == 0 {
		return models.Product{}, ErrNotFound
	}
	return s.Get(id)
}

// Delete removes a product. Deleting an id that does not exist, or
// deleting the same id twice, returns ErrNotFound.
func (s *ProductService) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		product  models.Product
		priceStr string
		imageURL sql.NullString
	)
	if err := row.Scan(&product.ID, &product.Name, &product.Description, &priceStr, &imageURL, &product.CreatedAt); err != nil {
		return models.Product{}, err
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return models.Product{}, err
	}
	product.Price = price

	if imageURL.Valid {
		product.ImageURL = &imageURL.String
	}
	return product, nil
}
