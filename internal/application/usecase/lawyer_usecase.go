package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jurisdesk/casemgmt-api/internal/application/dto"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/repository"
)

// LawyerUseCase casos de uso CRUD para advogados.
type LawyerUseCase struct {
	repo repository.LawyerRepository
}

// NewLawyerUseCase constrói o caso de uso.
func NewLawyerUseCase(repo repository.LawyerRepository) *LawyerUseCase {
	return &LawyerUseCase{repo: repo}
}

// Create cadastra um novo advogado no team.
func (uc *LawyerUseCase) Create(ctx context.Context, teamID string, in dto.CreateLawyerRequest) (*dto.LawyerResponse, error) {
	now := time.Now()
	lawyer := &entity.Lawyer{
		ID:        uuid.New().String(),
		TeamID:    teamID,
		Name:      in.Name,
		OAB:       in.OAB,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, lawyer); err != nil {
		return nil, err
	}
	return toLawyerResponse(lawyer), nil
}

// GetByID obtém um advogado do team; nil se não existe ou é de outro team.
func (uc *LawyerUseCase) GetByID(ctx context.Context, teamID, id string) (*dto.LawyerResponse, error) {
	lawyer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lawyer == nil || lawyer.TeamID != teamID {
		return nil, nil
	}
	return toLawyerResponse(lawyer), nil
}

// List lista advogados do team com paginação.
func (uc *LawyerUseCase) List(ctx context.Context, teamID string, limit, offset int) (*dto.LawyerListResponse, error) {
	list, err := uc.repo.ListByTeam(ctx, teamID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LawyerResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLawyerResponse(l))
	}
	return &dto.LawyerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toLawyerResponse(l *entity.Lawyer) *dto.LawyerResponse {
	return &dto.LawyerResponse{
		ID:        l.ID,
		TeamID:    l.TeamID,
		Name:      l.Name,
		OAB:       l.OAB,
		Email:     l.Email,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
