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

// fallbackCategory is the last-resort section name for items whose menu
// section could not be inferred. The extraction prompt already asks the model
// to guess a section from the item name before resorting to a placeholder.
const fallbackCategory = "Menu"

const extractionPrompt = `You are reading a restaurant menu. List every sellable item you can find.

Respond ONLY with a valid JSON array. Each element must contain exactly these fields:
- "name" (string): the item name as printed
- "price" (number): the listed price, or 0 if none is printed
- "category_name" (string): the menu section heading the item appears under.
  NEVER leave this empty: if no section heading is visible, infer a sensible
  category from the item name (e.g. "Drinks", "Desserts", "Mains"); only if
  that is impossible use "Menu"
- "original_description" (string): the printed description, or "" if none

Do not include any explanations, markdown formatting, or extra text.`

// extractItems produces the flat raw item list for a job. Jobs created from a
// scraping integration already carry their items and bypass the inference
// call entirely; file-based jobs go through one vision request.
func (s *importService) extractItems(ctx context.Context, job *entities.MenuImportJob) ([]domain.RawItem, error) {
	if job.RawItems != "" {
		var items []domain.RawItem
		if err := json.Unmarshal([]byte(job.RawItems), &items); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
		}
		return normalizeRawItems(items), nil
	}

	objectKey := s.s3.GetObjectKeyFromLink(job.FileURL)
	if objectKey == "" {
		return nil, fmt.Errorf("%w: unrecognized file url", domain.ErrExtractionFailed)
	}

	data, contentType, err := s.s3.DownloadFile(objectKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	if job.MimeType != "" {
		contentType = job.MimeType
	}

	response, err := s.engine.CompleteWithFile(ctx, extractionPrompt, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	var items []domain.RawItem
	if err := json.Unmarshal([]byte(inference.ExtractJSONArray(response)), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	return normalizeRawItems(items), nil
}

// normalizeRawItems drops unusable lines and guarantees a non-empty category
// on every item that survives.
func normalizeRawItems(items []domain.RawItem) []domain.RawItem {
	normalized := make([]domain.RawItem, 0, len(items))
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}
		item.CategoryName = strings.TrimSpace(item.CategoryName)
		if item.CategoryName == "" {
			item.CategoryName = fallbackCategory
		}
		normalized = append(normalized, item)
	}
	return normalized
}
