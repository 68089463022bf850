package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/acastellanos/almacen-api/internal/application/dto"
	"github.com/acastellanos/almacen-api/internal/domain"
	"github.com/acastellanos/almacen-api/internal/domain/entity"
	"github.com/acastellanos/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Devuelve ErrDuplicate si el código ya existe.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByCode(in.ProductCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		ProductCode:  in.ProductCode,
		Description:  in.Description,
		MaterialID:   in.MaterialID,
		InitialPrice: in.InitialPrice,
		FinalPrice:   in.FinalPrice,
		Weight:       in.Weight,
		Supplier:     in.Supplier,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. ProductCode no se modifica una vez creado.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.MaterialID != nil {
		product.MaterialID = *in.MaterialID
	}
	if in.InitialPrice != nil {
		product.InitialPrice = *in.InitialPrice
	}
	if in.FinalPrice != nil {
		product.FinalPrice = *in.FinalPrice
	}
	if in.Weight != nil {
		product.Weight = *in.Weight
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		ProductCode:  p.ProductCode,
		Description:  p.Description,
		MaterialID:   p.MaterialID,
		InitialPrice: p.InitialPrice,
		FinalPrice:   p.FinalPrice,
		Weight:       p.Weight,
		Supplier:     p.Supplier,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
