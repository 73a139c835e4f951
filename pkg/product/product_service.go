package product

import (
	"RestoOps-Backend/domain"
	"RestoOps-Backend/entities"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		PersistTree(ctx context.Context, tenantID string, enriched domain.EnrichedProduct) (string, error)
		GetProducts(ctx context.Context, tenantID string, page, limit int) ([]domain.ProductResponse, int64, error)
		GetProductDetail(ctx context.Context, tenantID string, productID string) (domain.ProductDetailResponse, error)
	}

	productService struct {
		productRepository ProductRepository
	}

	resolvedIngredient struct {
		ID       uuid.UUID
		Name     string
		UnitCost float64
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{
		productRepository: productRepository,
	}
}

// PersistTree resolves every ingredient reference, builds the recipe snapshot
// and persists ingredients, recipe and product as one atomic write.
func (s *productService) PersistTree(ctx context.Context, tenantID string, enriched domain.EnrichedProduct) (string, error) {
	tenantUUID, err := uuid.Parse(tenantID)
	if err != nil {
		return "", domain.ErrParseUUID
	}

	if len(enriched.Ingredients) == 0 {
		return "", domain.ErrEmptyIngredients
	}

	productID := uuid.New()
	recipeID := uuid.New()

	var newIngredients []*entities.Ingredient
	var recipeIngredients []entities.RecipeIngredient
	totalRecursiveCost := 0.0

	for _, ref := range enriched.Ingredients {
		resolved, created, err := s.resolveIngredient(ctx, tenantUUID, ref)
		if err != nil {
			return "", err
		}
		if created != nil {
			newIngredients = append(newIngredients, created)
		}

		itemCost := ref.Quantity * resolved.UnitCost
		totalRecursiveCost += itemCost

		recipeIngredients = append(recipeIngredients, entities.RecipeIngredient{
			ID:           uuid.New(),
			RecipeID:     recipeID,
			IngredientID: resolved.ID,
			Name:         resolved.Name,
			Quantity:     ref.Quantity,
			Unit:         ref.Unit,
			Cost:         itemCost,
		})
	}

	recipe := &entities.Recipe{
		ID:          recipeID,
		TenantID:    tenantUUID,
		ProductID:   productID,
		TotalCost:   totalRecursiveCost,
		Yield:       1,
		YieldUnit:   "serving",
		Ingredients: recipeIngredients,
	}

	channels := make([]entities.ProductChannel, 0, len(domain.SalesChannels))
	for _, channel := range domain.SalesChannels {
		channels = append(channels, entities.ProductChannel{
			ID:          uuid.New(),
			ProductID:   productID,
			Channel:     channel,
			Price:       enriched.Price,
			IsAvailable: true,
		})
	}

	product := &entities.Product{
		ID:          productID,
		TenantID:    tenantUUID,
		Name:        enriched.Name,
		Description: enriched.Description,
		Category:    enriched.Category,
		Cost:        totalRecursiveCost,
		RecipeID:    recipeID,
		Status:      domain.ProductStatusDraft,
		Channels:    channels,
	}

	if err := s.productRepository.CreateProductTree(ctx, newIngredients, recipe, product); err != nil {
		return "", err
	}

	return productID.String(), nil
}

// resolveIngredient returns the canonical identity and unit cost for one
// ingredient reference. An existing, active record wins over the enrichment
// estimate; otherwise a new inventory record is staged for creation.
func (s *productService) resolveIngredient(ctx context.Context, tenantID uuid.UUID, ref domain.IngredientRef) (resolvedIngredient, *entities.Ingredient, error) {
	if ref.ExistingID != "" {
		existing, err := s.productRepository.GetIngredientByID(ctx, tenantID.String(), ref.ExistingID)
		if err == nil && existing.IsActive {
			return resolvedIngredient{
				ID:       existing.ID,
				Name:     existing.Name,
				UnitCost: existing.CostPerUnit,
			}, nil, nil
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return resolvedIngredient{}, nil, err
		}
		// Dangling reference: fall through and create a fresh record.
	}

	unitCost := UnitCostFromEstimate(ref.EstimatedCost, ref.Unit)
	ingredient := &entities.Ingredient{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Name:         ref.Name,
		Unit:         ref.Unit,
		Cost:         ref.EstimatedCost,
		CostPerUnit:  unitCost,
		CurrentStock: 0,
		MinStock:     0,
		IsActive:     true,
		Category:     "General",
	}

	return resolvedIngredient{
		ID:       ingredient.ID,
		Name:     ingredient.Name,
		UnitCost: unitCost,
	}, ingredient, nil
}

func (s *productService) GetProducts(ctx context.Context, tenantID string, page, limit int) ([]domain.ProductResponse, int64, error) {
	products, count, err := s.productRepository.GetProducts(ctx, tenantID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ProductResponse
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}

	return response, count, nil
}

func (s *productService) GetProductDetail(ctx context.Context, tenantID string, productID string) (domain.ProductDetailResponse, error) {
	p, err := s.productRepository.GetProductByID(ctx, tenantID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductDetailResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductDetailResponse{}, err
	}

	recipe, err := s.productRepository.GetRecipeByID(ctx, tenantID, p.RecipeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductDetailResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductDetailResponse{}, err
	}

	recipeResponse := domain.RecipeResponse{
		ID:        recipe.ID.String(),
		TotalCost: recipe.TotalCost,
		Yield:     recipe.Yield,
		YieldUnit: recipe.YieldUnit,
	}
	for _, ri := range recipe.Ingredients {
		recipeResponse.Ingredients = append(recipeResponse.Ingredients, domain.RecipeIngredientResponse{
			IngredientID: ri.IngredientID.String(),
			Name:         ri.Name,
			Quantity:     ri.Quantity,
			Unit:         ri.Unit,
			Cost:         ri.Cost,
		})
	}

	return domain.ProductDetailResponse{
		ProductResponse: toProductResponse(p),
		Recipe:          recipeResponse,
	}, nil
}

func toProductResponse(p *entities.Product) domain.ProductResponse {
	response := domain.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Cost:        p.Cost,
		Status:      p.Status,
		RecipeID:    p.RecipeID.String(),
		CreatedAt:   p.CreatedAt,
	}
	for _, c := range p.Channels {
		response.Channels = append(response.Channels, domain.ProductChannelResponse{
			Channel:     c.Channel,
			Price:       c.Price,
			IsAvailable: c.IsAvailable,
		})
	}
	return response
}
