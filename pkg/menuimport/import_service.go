package menuimport

import (
	"RestoOps-Backend/domain"
	"RestoOps-Backend/entities"
	"RestoOps-Backend/internal/utils/mailing"
	"RestoOps-Backend/internal/utils/storage"
	"RestoOps-Backend/pkg/inference"
	"RestoOps-Backend/pkg/product"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ingredientContextLimit caps the tenant inventory snapshot handed to recipe
// synthesis, bounding the prompt size.
const ingredientContextLimit = 500

type (
	ImportService interface {
		StartImport(ctx context.Context, req domain.StartImportRequest, tenantID string) (domain.StartImportResponse, error)
		GetImportJob(ctx context.Context, jobID string, tenantID string) (domain.ImportJobResponse, error)
		GetImportJobs(ctx context.Context, tenantID string, page, limit int) ([]domain.ImportJobResponse, int64, error)
		Run(ctx context.Context, jobID string) error
	}

	importService struct {
		importRepository  ImportRepository
		productRepository product.ProductRepository
		productService    product.ProductService
		engine            inference.Engine
		s3                storage.AwsS3
		signals           chan<- string
	}
)

func NewImportService(
	importRepository ImportRepository,
	productRepository product.ProductRepository,
	productService product.ProductService,
	engine inference.Engine,
	s3 storage.AwsS3,
	signals chan<- string,
) ImportService {
	return &importService{
		importRepository:  importRepository,
		productRepository: productRepository,
		productService:    productService,
		engine:            engine,
		s3:                s3,
		signals:           signals,
	}
}

func (s *importService) StartImport(ctx context.Context, req domain.StartImportRequest, tenantID string) (domain.StartImportResponse, error) {
	tenantUUID, err := uuid.Parse(tenantID)
	if err != nil {
		return domain.StartImportResponse{}, domain.ErrParseUUID
	}

	hasFile := req.MenuFile != nil
	hasItems := len(req.RawItems) > 0
	if !hasFile && !hasItems {
		return domain.StartImportResponse{}, domain.ErrNoImportInput
	}
	if hasFile && hasItems {
		return domain.StartImportResponse{}, domain.ErrAmbiguousImportInput
	}

	job := &entities.MenuImportJob{
		ID:          uuid.New(),
		TenantID:    tenantUUID,
		Status:      domain.JobStatusPending,
		Progress:    0,
		Message:     "waiting to be processed",
		NotifyEmail: req.NotifyEmail,
	}

	if hasFile {
		fileName := fmt.Sprintf("menu-%s", job.ID.String())
		objectKey, err := s.s3.UploadFile(fileName, req.MenuFile, "menu-imports", storage.AllowMenuFile...)
		if err != nil {
			return domain.StartImportResponse{}, err
		}
		job.FileURL = s.s3.GetPublicLinkKey(objectKey)
		job.MimeType = req.MenuFile.Header.Get("Content-Type")
	} else {
		encoded, err := json.Marshal(req.RawItems)
		if err != nil {
			return domain.StartImportResponse{}, err
		}
		job.RawItems = string(encoded)
	}

	if err := s.importRepository.CreateJob(ctx, job); err != nil {
		return domain.StartImportResponse{}, err
	}

	// Wake the worker; a full buffer is fine, the pending sweep picks the job
	// up on the next start.
	select {
	case s.signals <- job.ID.String():
	default:
	}

	return domain.StartImportResponse{
		JobID:  job.ID.String(),
		Status: job.Status,
	}, nil
}

func (s *importService) GetImportJob(ctx context.Context, jobID string, tenantID string) (domain.ImportJobResponse, error) {
	job, err := s.importRepository.GetJobByID(ctx, jobID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ImportJobResponse{}, domain.ErrImportJobNotFound
		}
		return domain.ImportJobResponse{}, err
	}
	return toImportJobResponse(job), nil
}

func (s *importService) GetImportJobs(ctx context.Context, tenantID string, page, limit int) ([]domain.ImportJobResponse, int64, error) {
	jobs, count, err := s.importRepository.GetJobs(ctx, tenantID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ImportJobResponse
	for _, job := range jobs {
		response = append(response, toImportJobResponse(job))
	}
	return response, count, nil
}

// Run drives one pending job to a terminal state. A job-level failure ends in
// "error"; a failure on a single item is logged and skipped so one bad line
// never aborts the whole menu. Run never returns an error for anything that
// happened past the initial load: the job record is the only error channel.
func (s *importService) Run(ctx context.Context, jobID string) error {
	job, err := s.importRepository.GetJobForRun(ctx, jobID)
	if err != nil {
		return err
	}

	// A job is processed at most once.
	if job.Status != domain.JobStatusPending {
		log.Printf("import job %s already %s, skipping", job.ID, job.Status)
		return nil
	}

	job.Status = domain.JobStatusProcessing
	s.updateJob(ctx, job, 5, "reading menu")

	items, err := s.extractItems(ctx, job)
	if err != nil {
		s.failJob(ctx, job, fmt.Sprintf("could not read the menu: %v", err))
		return nil
	}
	if len(items) == 0 {
		s.failJob(ctx, job, domain.ErrNoItemsExtracted.Error())
		return nil
	}

	job.TotalItems = len(items)
	s.updateJob(ctx, job, 15, fmt.Sprintf("found %d menu items", len(items)))

	// One read-only inventory snapshot for the whole run. Ingredients created
	// concurrently by other actors stay invisible until the next import.
	tenantID := job.TenantID.String()
	ingredientContext, err := s.productRepository.ListActiveIngredients(ctx, tenantID, ingredientContextLimit)
	if err != nil {
		log.Printf("import job %s: could not load ingredient snapshot: %v", job.ID, err)
		ingredientContext = nil
	}

	processed := 0
	for _, item := range items {
		enriched, err := s.enrichItem(ctx, item, ingredientContext)
		if err != nil {
			log.Printf("import job %s: skipping %q: %v", job.ID, item.Name, err)
			continue
		}

		if _, err := s.productService.PersistTree(ctx, tenantID, enriched); err != nil {
			log.Printf("import job %s: could not persist %q: %v", job.ID, item.Name, err)
			continue
		}

		processed++
		progress := 15 + int(math.Round(80*float64(processed)/float64(len(items))))
		s.updateJob(ctx, job, progress, fmt.Sprintf("imported %d of %d items", processed, len(items)))
	}

	job.Status = domain.JobStatusCompleted
	s.updateJob(ctx, job, 100, fmt.Sprintf("import finished: %d of %d items", processed, len(items)))

	s.notifyCompletion(job, processed)
	return nil
}

func (s *importService) updateJob(ctx context.Context, job *entities.MenuImportJob, progress int, message string) {
	job.Progress = progress
	job.Message = message
	if err := s.importRepository.UpdateJob(ctx, job); err != nil {
		log.Printf("import job %s: could not persist progress: %v", job.ID, err)
	}
}

func (s *importService) failJob(ctx context.Context, job *entities.MenuImportJob, message string) {
	job.Status = domain.JobStatusError
	job.Message = message
	if err := s.importRepository.UpdateJob(ctx, job); err != nil {
		log.Printf("import job %s: could not persist failure: %v", job.ID, err)
	}
}

func (s *importService) notifyCompletion(job *entities.MenuImportJob, processed int) {
	if job.NotifyEmail == "" {
		return
	}

	body := fmt.Sprintf(
		"<p>Your menu import has finished.</p><p>%d of %d items were added to your catalog as drafts.</p>",
		processed, job.TotalItems,
	)
	if err := mailing.SendMail(job.NotifyEmail, "Your menu import is ready", body); err != nil {
		log.Printf("import job %s: could not send completion mail: %v", job.ID, err)
	}
}

func toImportJobResponse(job *entities.MenuImportJob) domain.ImportJobResponse {
	return domain.ImportJobResponse{
		ID:         job.ID.String(),
		Status:     job.Status,
		Progress:   job.Progress,
		Message:    job.Message,
		TotalItems: job.TotalItems,
		FileURL:    job.FileURL,
		CreatedAt:  job.CreatedAt,
		UpdatedAt:  job.UpdatedAt,
	}
}
