package product

import (
	"RestoOps-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		GetIngredientByID(ctx context.Context, tenantID string, id string) (*entities.Ingredient, error)
		ListActiveIngredients(ctx context.Context, tenantID string, limit int) ([]*entities.Ingredient, error)
		CreateProductTree(ctx context.Context, ingredients []*entities.Ingredient, recipe *entities.Recipe, product *entities.Product) error
		GetProducts(ctx context.Context, tenantID string, page, limit int) ([]*entities.Product, int64, error)
		GetProductByID(ctx context.Context, tenantID string, id string) (*entities.Product, error)
		GetRecipeByID(ctx context.Context, tenantID string, id string) (*entities.Recipe, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetIngredientByID(ctx context.Context, tenantID string, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *productRepository) ListActiveIngredients(ctx context.Context, tenantID string, limit int) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Order("name asc").
		Limit(limit).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// CreateProductTree writes the new ingredients, the recipe snapshot and the
// product in one transaction. Either the whole tree lands or none of it does.
func (r *productRepository) CreateProductTree(ctx context.Context, ingredients []*entities.Ingredient, recipe *entities.Recipe, product *entities.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ingredient := range ingredients {
			if err := tx.Create(ingredient).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *productRepository) GetProducts(ctx context.Context, tenantID string, page, limit int) ([]*entities.Product, int64, error) {
	var products []*entities.Product
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)

	if err := query.Model(&entities.Product{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Channels").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, tenantID string, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Preload("Channels").
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetRecipeByID(ctx context.Context, tenantID string, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}
