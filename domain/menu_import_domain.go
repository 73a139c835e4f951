package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusError      = "error"
)

var (
	MessageSuccessStartImport   = "menu import started successfully"
	MessageSuccessGetImportJob  = "import job retrieved successfully"
	MessageSuccessGetImportJobs = "import jobs retrieved successfully"

	MessageFailedStartImport   = "failed to start menu import"
	MessageFailedGetImportJob  = "failed to retrieve import job"
	MessageFailedGetImportJobs = "failed to retrieve import jobs"
	MessageFailedUploadMenu    = "failed to upload menu file"

	ErrImportJobNotFound    = errors.New("import job not found")
	ErrNoImportInput        = errors.New("either a menu file or raw items must be provided")
	ErrAmbiguousImportInput = errors.New("menu file and raw items cannot both be provided")
	ErrNoItemsExtracted     = errors.New("no menu items could be read from the input")
	ErrExtractionFailed     = errors.New("menu extraction failed")
	ErrEnrichmentFailed     = errors.New("menu item enrichment failed")
)

type (
	// RawItem is one unstructured menu line prior to enrichment.
	RawItem struct {
		Name                string  `json:"name" validate:"required"`
		Price               float64 `json:"price,omitempty"`
		CategoryName        string  `json:"category_name"`
		OriginalDescription string  `json:"original_description,omitempty"`
		SourceLabel         string  `json:"source_label,omitempty"`
	}

	// IngredientRef is one ingredient reference produced by recipe synthesis,
	// either pointing at an existing inventory record or describing a new one.
	IngredientRef struct {
		ExistingID    string  `json:"existing_ingredient_id,omitempty"`
		Name          string  `json:"name"`
		Quantity      float64 `json:"quantity"`
		Unit          string  `json:"unit"`
		EstimatedCost float64 `json:"estimated_cost"`
	}

	// EnrichedProduct is a raw item augmented with a synthesized recipe and
	// marketing copy, ready to be persisted as a product tree.
	EnrichedProduct struct {
		Name        string          `json:"name"`
		Price       float64         `json:"price"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Ingredients []IngredientRef `json:"ingredients"`
	}

	StartImportRequest struct {
		MenuFile    *multipart.FileHeader `json:"menu_file" form:"menu_file"`
		RawItems    []RawItem             `json:"raw_items" validate:"omitempty,dive"`
		NotifyEmail string                `json:"notify_email" validate:"omitempty,email"`
	}

	StartImportResponse struct {
		JobID  string `json:"job_id"`
		Status string `json:"status"`
	}

	ImportJobResponse struct {
		ID         string    `json:"id"`
		Status     string    `json:"status"`
		Progress   int       `json:"progress"`
		Message    string    `json:"message"`
		TotalItems int       `json:"total_items"`
		FileURL    string    `json:"file_url,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
		UpdatedAt  time.Time `json:"updated_at"`
	}
)
