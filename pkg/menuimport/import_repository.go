package menuimport

import (
	"RestoOps-Backend/domain"
	"RestoOps-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ImportRepository interface {
		CreateJob(ctx context.Context, job *entities.MenuImportJob) error
		GetJobByID(ctx context.Context, id string, tenantID string) (*entities.MenuImportJob, error)
		GetJobForRun(ctx context.Context, id string) (*entities.MenuImportJob, error)
		UpdateJob(ctx context.Context, job *entities.MenuImportJob) error
		GetJobs(ctx context.Context, tenantID string, page, limit int) ([]*entities.MenuImportJob, int64, error)
		GetPendingJobs(ctx context.Context) ([]*entities.MenuImportJob, error)
	}

	importRepository struct {
		db *gorm.DB
	}
)

func NewImportRepository(db *gorm.DB) ImportRepository {
	return &importRepository{db: db}
}

func (r *importRepository) CreateJob(ctx context.Context, job *entities.MenuImportJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *importRepository) GetJobByID(ctx context.Context, id string, tenantID string) (*entities.MenuImportJob, error) {
	var job entities.MenuImportJob
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJobForRun loads a job without tenant scoping; the worker owns jobs of
// every tenant.
func (r *importRepository) GetJobForRun(ctx context.Context, id string) (*entities.MenuImportJob, error) {
	var job entities.MenuImportJob
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *importRepository) UpdateJob(ctx context.Context, job *entities.MenuImportJob) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *importRepository) GetJobs(ctx context.Context, tenantID string, page, limit int) ([]*entities.MenuImportJob, int64, error) {
	var jobs []*entities.MenuImportJob
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)

	if err := query.Model(&entities.MenuImportJob{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&jobs).Error; err != nil {
		return nil, 0, err
	}

	return jobs, count, nil
}

func (r *importRepository) GetPendingJobs(ctx context.Context) ([]*entities.MenuImportJob, error) {
	var jobs []*entities.MenuImportJob
	if err := r.db.WithContext(ctx).
		Where("status = ?", domain.JobStatusPending).
		Order("created_at asc").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
