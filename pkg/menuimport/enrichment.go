package menuimport

import (
	"RestoOps-Backend/domain"
	"RestoOps-Backend/entities"
	"RestoOps-Backend/pkg/inference"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// enrichItem turns one raw menu line into a fully-specified product through
// two sequential inference calls: recipe synthesis first, then marketing copy
// written from the synthesized ingredient list.
func (s *importService) enrichItem(ctx context.Context, item domain.RawItem, ingredientContext []*entities.Ingredient) (domain.EnrichedProduct, error) {
	ingredients, err := s.synthesizeRecipe(ctx, item, ingredientContext)
	if err != nil {
		return domain.EnrichedProduct{}, err
	}

	description, err := s.synthesizeDescription(ctx, item, ingredients)
	if err != nil {
		return domain.EnrichedProduct{}, err
	}

	return domain.EnrichedProduct{
		Name:        item.Name,
		Price:       item.Price,
		Category:    item.CategoryName,
		Description: description,
		Ingredients: ingredients,
	}, nil
}

func (s *importService) synthesizeRecipe(ctx context.Context, item domain.RawItem, ingredientContext []*entities.Ingredient) ([]domain.IngredientRef, error) {
	prompt := buildRecipePrompt(item, ingredientContext)

	response, err := s.engine.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEnrichmentFailed, err)
	}

	var parsed struct {
		Ingredients []domain.IngredientRef `json:"ingredients"`
	}
	if err := json.Unmarshal([]byte(inference.ExtractJSONObject(response)), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEnrichmentFailed, err)
	}
	if len(parsed.Ingredients) == 0 {
		return nil, fmt.Errorf("%w: empty ingredient list", domain.ErrEnrichmentFailed)
	}

	return parsed.Ingredients, nil
}

func (s *importService) synthesizeDescription(ctx context.Context, item domain.RawItem, ingredients []domain.IngredientRef) (string, error) {
	names := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		names = append(names, ingredient.Name)
	}

	prompt := fmt.Sprintf(`Write a short, appetizing menu description (one or two sentences, no markdown, no quotes) for the dish %q in the category %q. Its main ingredients are: %s.`,
		item.Name, item.CategoryName, strings.Join(names, ", "))
	if item.OriginalDescription != "" {
		prompt += fmt.Sprintf(" The menu currently describes it as: %q.", item.OriginalDescription)
	}

	response, err := s.engine.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrEnrichmentFailed, err)
	}

	return strings.Trim(strings.TrimSpace(response), `"`), nil
}

func buildRecipePrompt(item domain.RawItem, ingredientContext []*entities.Ingredient) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`You are a restaurant cost engineer. Produce the recipe for ONE serving of the dish %q (category %q`, item.Name, item.CategoryName))
	if item.OriginalDescription != "" {
		sb.WriteString(fmt.Sprintf(`, described as %q`, item.OriginalDescription))
	}
	sb.WriteString(").\n\n")

	if len(ingredientContext) > 0 {
		sb.WriteString("The restaurant already stocks these ingredients (id | name | unit | cost per unit):\n")
		for _, ingredient := range ingredientContext {
			sb.WriteString(fmt.Sprintf("%s | %s | %s | %.4f\n",
				ingredient.ID.String(), ingredient.Name, ingredient.Unit, ingredient.CostPerUnit))
		}
		sb.WriteString("\nALWAYS prefer reusing a stocked ingredient over inventing a new one when the name and unit are a reasonable match; reference it through \"existing_ingredient_id\".\n\n")
	}

	sb.WriteString(`Respond ONLY with a valid JSON object of the form:
{"ingredients": [{"name": string, "quantity": number, "unit": string, "estimated_cost": number, "existing_ingredient_id": string}]}

Rules:
- quantities are sized for a single serving
- "unit" is "kg", "l" or "unit"
- "estimated_cost" is the local market cost of one purchasing unit of the ingredient
- "existing_ingredient_id" is set ONLY when reusing a stocked ingredient, otherwise omit it
Do not include any explanations, markdown formatting, or extra text.`)

	return sb.String()
}
