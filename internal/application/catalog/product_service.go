package catalog

import (
	"context"
	"errors"

	"github.com/comunidad/backend/internal/domain/catalog"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/comunidad/backend/internal/domain/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProjectionSyncer pushes a product into the community projection, or
// removes it. This decouples ProductService from the sync package.
type ProjectionSyncer interface {
	SyncProduct(ctx context.Context, productID uuid.UUID) (bool, error)
	RemoveProjection(ctx context.Context, productID uuid.UUID) error
}

// ProductService handles product-related business operations. Mutations
// persist first and then trigger a projection sync; a failed sync is
// logged, not surfaced, because the product's pending flag already
// guarantees the next reconciliation run picks it up.
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	storeRepo    store.StoreRepository
	syncer       ProjectionSyncer
	logger       *zap.Logger
}

// NewProductService creates a new ProductService. syncer may be nil, in
// which case projections are refreshed only by reconciliation runs.
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	storeRepo store.StoreRepository,
	syncer ProjectionSyncer,
	logger *zap.Logger,
) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		storeRepo:    storeRepo,
		syncer:       syncer,
		logger:       logger,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	// The owning store must exist
	owner, err := s.storeRepo.FindByID(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_STORE", "Store not found")
		}
		return nil, err
	}

	if err := s.validateCategory(ctx, req.Category); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(owner.ID, req.Title, req.Description, req.Price, req.Category)
	if err != nil {
		return nil, err
	}

	if req.LongDescription != "" {
		if err := product.Update(req.Title, req.Description, req.LongDescription, req.Price, req.Category); err != nil {
			return nil, err
		}
	}
	if len(req.Images) > 0 {
		product.UpdateImages(req.Images)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.triggerSync(ctx, product.ID)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves a list of products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := s.toDomainFilter(filter)

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// ListByStore retrieves a store's products with filtering and pagination
func (s *ProductService) ListByStore(ctx context.Context, storeID uuid.UUID, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := s.toDomainFilter(filter)

	products, err := s.productRepo.FindByStore(ctx, storeID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.CountByStore(ctx, storeID)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// Update updates a product's listing content
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	title := product.Title
	description := product.Description
	longDescription := product.LongDescription
	price := product.Price
	category := product.Category

	if req.Title != nil {
		title = *req.Title
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.LongDescription != nil {
		longDescription = *req.LongDescription
	}
	if req.Price != nil {
		price = *req.Price
	}
	if req.Category != nil {
		if err := s.validateCategory(ctx, *req.Category); err != nil {
			return nil, err
		}
		category = *req.Category
	}

	if err := product.Update(title, description, longDescription, price, category); err != nil {
		return nil, err
	}
	if req.Images != nil {
		product.UpdateImages(*req.Images)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.triggerSync(ctx, product.ID)

	response := ToProductResponse(product)
	return &response, nil
}

// Activate makes a product visible in community listings again
func (s *ProductService) Activate(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	return s.changeStatus(ctx, productID, (*catalog.Product).Activate)
}

// Deactivate hides a product from community listings
func (s *ProductService) Deactivate(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	return s.changeStatus(ctx, productID, (*catalog.Product).Deactivate)
}

// Delete deletes a product and removes its community projection
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}

	if s.syncer != nil {
		if err := s.syncer.RemoveProjection(ctx, productID); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProductService) changeStatus(ctx context.Context, productID uuid.UUID, change func(*catalog.Product) error) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := change(product); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.triggerSync(ctx, product.ID)

	response := ToProductResponse(product)
	return &response, nil
}

// validateCategory rejects category names that are not registered.
// An empty category means uncategorized and is always allowed.
func (s *ProductService) validateCategory(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	exists, err := s.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewDomainError("INVALID_CATEGORY", "Category not found")
	}
	return nil
}

func (s *ProductService) triggerSync(ctx context.Context, productID uuid.UUID) {
	if s.syncer == nil {
		return
	}
	if _, err := s.syncer.SyncProduct(ctx, productID); err != nil {
		s.logger.Warn("projection sync failed, product left pending",
			zap.String("product_id", productID.String()),
			zap.Error(err))
	}
}

func (s *ProductService) toDomainFilter(filter ProductListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	return domainFilter
}
