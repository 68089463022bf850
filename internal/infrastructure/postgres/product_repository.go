package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acastellanos/almacen-api/internal/domain"
	"github.com/acastellanos/almacen-api/internal/domain/entity"
	"github.com/acastellanos/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, product_code, description, material_id, initial_price, final_price, weight, supplier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ProductCode, product.Description, product.MaterialID,
		product.InitialPrice, product.FinalPrice, product.Weight, product.Supplier,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, product_code, description, material_id, initial_price, final_price, weight, supplier, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProductCode, &p.Description, &p.MaterialID,
		&p.InitialPrice, &p.FinalPrice, &p.Weight, &p.Supplier,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(productCode string) (*entity.Product, error) {
	query := `
		SELECT id, product_code, description, material_id, initial_price, final_price, weight, supplier, created_at, updated_at
		FROM products WHERE product_code = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, productCode).Scan(
		&p.ID, &p.ProductCode, &p.Description, &p.MaterialID,
		&p.InitialPrice, &p.FinalPrice, &p.Weight, &p.Supplier,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente. ProductCode no se modifica.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET description = $2, material_id = $3, initial_price = $4, final_price = $5, weight = $6, supplier = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Description, product.MaterialID,
		product.InitialPrice, product.FinalPrice, product.Weight, product.Supplier,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, product_code, description, material_id, initial_price, final_price, weight, supplier, created_at, updated_at
		FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.ProductCode, &p.Description, &p.MaterialID,
			&p.InitialPrice, &p.FinalPrice, &p.Weight, &p.Supplier,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. Devuelve ErrConflict si existen
// movimientos que referencian el producto.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
