package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/placementcell/placement-dashboard/internal/models"
	"github.com/placementcell/placement-dashboard/internal/repository"
	"github.com/placementcell/placement-dashboard/internal/service/integration"
)

type CatalogService interface {
	CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (*models.CreatedResponse, error)
	CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.CreatedResponse, error)
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.CreatedResponse, error)
	CreateApplication(ctx context.Context, req *models.CreateApplicationRequest) (*models.CreatedResponse, error)
}

type catalogService struct {
	repo           repository.CatalogRepository
	rabbitmqClient integration.RabbitMQClient
	logger         zerolog.Logger
}

// NewCatalogService accepts a nil rabbitmqClient, in which case no events are published.
func NewCatalogService(repo repository.CatalogRepository, rabbitmqClient integration.RabbitMQClient, logger zerolog.Logger) CatalogService {
	return &catalogService{
		repo:           repo,
		rabbitmqClient: rabbitmqClient,
		logger:         logger,
	}
}

func (s *catalogService) CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (*models.CreatedResponse, error) {
	id, err := s.repo.CreateStudent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return s.created(ctx, models.EntityStudent, id, "Student created successfully"), nil
}

func (s *catalogService) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.CreatedResponse, error) {
	id, err := s.repo.CreateCompany(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return s.created(ctx, models.EntityCompany, id, "Company created successfully"), nil
}

func (s *catalogService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.CreatedResponse, error) {
	id, err := s.repo.CreateJob(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return s.created(ctx, models.EntityJob, id, "Job created successfully"), nil
}

func (s *catalogService) CreateApplication(ctx context.Context, req *models.CreateApplicationRequest) (*models.CreatedResponse, error) {
	id, err := s.repo.CreateApplication(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return s.created(ctx, models.EntityApplication, id, "Application created successfully"), nil
}

func (s *catalogService) created(ctx context.Context, entity string, id int64, message string) *models.CreatedResponse {
	s.logger.Info().
		Str("entity", entity).
		Int64("id", id).
		Msg("Catalog row created")

	if s.rabbitmqClient != nil {
		event := &models.EntityCreatedEvent{
			Entity:    entity,
			ID:        id,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.rabbitmqClient.PublishEntityCreated(ctx, event); err != nil {
			s.logger.Error().Err(err).
				Str("entity", entity).
				Int64("id", id).
				Msg("Failed to publish entity created event")
		}
	}

	return &models.CreatedResponse{
		ID:      id,
		Message: message,
	}
}
