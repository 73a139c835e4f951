package product

import (
	"RestoOps-Backend/domain"
	"RestoOps-Backend/entities"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Product{},
		&entities.ProductChannel{},
	))
	return db
}

func TestPersistTreeCreatesWholeTree(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(NewProductRepository(db))
	tenantID := uuid.New()

	enriched := domain.EnrichedProduct{
		Name:        "Grilled Skewer",
		Price:       15.00,
		Category:    "Skewers",
		Description: "Char-grilled beef on a stick.",
		Ingredients: []domain.IngredientRef{
			{Name: "Beef", Quantity: 0.15, Unit: "kg", EstimatedCost: 10.00},
			{Name: "Skewer Stick", Quantity: 1, Unit: "unit", EstimatedCost: 0.10},
		},
	}

	productID, err := service.PersistTree(context.Background(), tenantID.String(), enriched)
	require.NoError(t, err)

	var p entities.Product
	require.NoError(t, db.Preload("Channels").Where("id = ?", productID).First(&p).Error)
	assert.Equal(t, "Grilled Skewer", p.Name)
	assert.Equal(t, "Skewers", p.Category)
	assert.Equal(t, domain.ProductStatusDraft, p.Status)

	// One channel entry per sales surface, all seeded with the menu price.
	require.Len(t, p.Channels, 3)
	for _, channel := range p.Channels {
		assert.InDelta(t, 15.00, channel.Price, 1e-9)
		assert.True(t, channel.IsAvailable)
	}

	var r entities.Recipe
	require.NoError(t, db.Preload("Ingredients").Where("product_id = ?", productID).First(&r).Error)
	require.Len(t, r.Ingredients, 2)

	var ingredientCount int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Where("tenant_id = ?", tenantID).Count(&ingredientCount).Error)
	assert.EqualValues(t, 2, ingredientCount)
}

func TestPersistTreeCostLaw(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(NewProductRepository(db))
	tenantID := uuid.New()

	enriched := domain.EnrichedProduct{
		Name:     "Grilled Skewer",
		Price:    15.00,
		Category: "Skewers",
		Ingredients: []domain.IngredientRef{
			{Name: "Beef", Quantity: 0.15, Unit: "kg", EstimatedCost: 10.00},
			{Name: "Skewer Stick", Quantity: 1, Unit: "unit", EstimatedCost: 0.10},
		},
	}

	productID, err := service.PersistTree(context.Background(), tenantID.String(), enriched)
	require.NoError(t, err)

	var p entities.Product
	require.NoError(t, db.Where("id = ?", productID).First(&p).Error)

	var r entities.Recipe
	require.NoError(t, db.Preload("Ingredients").Where("product_id = ?", productID).First(&r).Error)

	// product.cost == recipe.totalCost == sum of the ingredient snapshots
	sum := 0.0
	for _, ri := range r.Ingredients {
		sum += ri.Cost
	}
	assert.InDelta(t, r.TotalCost, p.Cost, 1e-9)
	assert.InDelta(t, sum, r.TotalCost, 1e-9)

	// 0.15 kg at 10.00/kg-pack -> 0.15 x 0.01, plus one stick at 0.10
	assert.InDelta(t, 0.15*UnitCostFromEstimate(10.00, "kg")+1*0.10, p.Cost, 1e-9)
}

func TestPersistTreeExistingIngredientWins(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(NewProductRepository(db))
	tenantID := uuid.New()

	existing := &entities.Ingredient{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Name:        "Beef Tenderloin",
		Unit:        "kg",
		Cost:        20.00,
		CostPerUnit: 0.02,
		IsActive:    true,
		Category:    "Meat",
	}
	require.NoError(t, db.Create(existing).Error)

	enriched := domain.EnrichedProduct{
		Name:     "Steak",
		Price:    30.00,
		Category: "Mains",
		Ingredients: []domain.IngredientRef{
			{
				ExistingID:    existing.ID.String(),
				Name:          "Beef", // the stored name must win too
				Quantity:      0.2,
				Unit:          "kg",
				EstimatedCost: 99.99,
			},
		},
	}

	productID, err := service.PersistTree(context.Background(), tenantID.String(), enriched)
	require.NoError(t, err)

	var r entities.Recipe
	require.NoError(t, db.Preload("Ingredients").Where("product_id = ?", productID).First(&r).Error)
	require.Len(t, r.Ingredients, 1)

	snapshot := r.Ingredients[0]
	assert.Equal(t, existing.ID, snapshot.IngredientID)
	assert.Equal(t, "Beef Tenderloin", snapshot.Name)
	assert.InDelta(t, 0.2*0.02, snapshot.Cost, 1e-9)

	// No duplicate inventory record was minted.
	var ingredientCount int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Where("tenant_id = ?", tenantID).Count(&ingredientCount).Error)
	assert.EqualValues(t, 1, ingredientCount)
}

func TestPersistTreeDanglingReferenceCreatesNew(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(NewProductRepository(db))
	tenantID := uuid.New()

	enriched := domain.EnrichedProduct{
		Name:     "Lemonade",
		Price:    4.00,
		Category: "Drinks",
		Ingredients: []domain.IngredientRef{
			{
				ExistingID:    uuid.New().String(), // points at nothing
				Name:          "Lemon",
				Quantity:      2,
				Unit:          "unit",
				EstimatedCost: 0.50,
			},
		},
	}

	_, err := service.PersistTree(context.Background(), tenantID.String(), enriched)
	require.NoError(t, err)

	var ingredient entities.Ingredient
	require.NoError(t, db.Where("tenant_id = ? AND name = ?", tenantID, "Lemon").First(&ingredient).Error)
	assert.True(t, ingredient.IsActive)
	assert.InDelta(t, 0.50, ingredient.CostPerUnit, 1e-9)
}

func TestPersistTreeRejectsEmptyIngredients(t *testing.T) {
	db := setupTestDB(t)
	service := NewProductService(NewProductRepository(db))

	_, err := service.PersistTree(context.Background(), uuid.New().String(), domain.EnrichedProduct{
		Name:  "Mystery Dish",
		Price: 1.00,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyIngredients)
}
