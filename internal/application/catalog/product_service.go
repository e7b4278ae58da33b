package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnsrinivas/Milkmitra/internal/domain/catalog"
	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ProductService handles the farmer-facing side of the catalog
type ProductService struct {
	productRepo    catalog.ProductRepository
	farmRepo       farm.Repository
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	farmRepo farm.Repository,
	eventPublisher shared.EventPublisher,
) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		farmRepo:       farmRepo,
		eventPublisher: eventPublisher,
	}
}

// Create lists a new product under the farmer's farm
func (s *ProductService) Create(ctx context.Context, ownerID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	f, err := s.farmRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Register a farm before listing products")
		}
		return nil, err
	}

	milkType := catalog.MilkType(req.Type)
	if !milkType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MILK_TYPE", fmt.Sprintf("Unknown milk type: %s", req.Type))
	}

	product, err := catalog.NewProduct(f.ID, req.Name, milkType, req.Description, valueobject.NewMoneyINR(req.Price), req.Unit)
	if err != nil {
		return nil, err
	}

	if req.ImageURL != "" {
		product.SetImageURL(req.ImageURL)
	}
	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID returns a product by its ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// ListMyProducts returns all products listed by the farmer's farm
func (s *ProductService) ListMyProducts(ctx context.Context, ownerID uuid.UUID) ([]ProductResponse, error) {
	f, err := s.farmRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindByFarm(ctx, f.ID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses, nil
}

// Update changes one of the farmer's own products
func (s *ProductService) Update(ctx context.Context, ownerID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	milkType := product.Type
	if req.Type != nil {
		milkType = catalog.MilkType(*req.Type)
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	unit := product.Unit
	if req.Unit != nil {
		unit = *req.Unit
	}

	if err := product.UpdateDetails(name, milkType, description, unit); err != nil {
		return nil, err
	}

	if req.Price != nil {
		if err := product.UpdatePrice(valueobject.NewMoneyINR(*req.Price)); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != nil {
		product.SetImageURL(*req.ImageURL)
	}
	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.SaveWithLock(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes one of the farmer's own products
func (s *ProductService) Delete(ctx context.Context, ownerID, productID uuid.UUID) error {
	if _, err := s.ownedProduct(ctx, ownerID, productID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, productID)
}

// ownedProduct loads the product and verifies it belongs to the caller's farm
func (s *ProductService) ownedProduct(ctx context.Context, ownerID, productID uuid.UUID) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	f, err := s.farmRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrForbidden
		}
		return nil, err
	}
	if product.FarmID != f.ID {
		return nil, shared.ErrForbidden
	}
	return product, nil
}

func (s *ProductService) publishDomainEvents(ctx context.Context, p *catalog.Product) {
	if s.eventPublisher == nil {
		return
	}
	events := p.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	p.ClearDomainEvents()
}
