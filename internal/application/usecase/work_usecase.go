package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jurisdesk/casemgmt-api/internal/application/dto"
	"github.com/jurisdesk/casemgmt-api/internal/domain"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/repository"
)

// WorkUseCase casos de uso CRUD para works (processos/casos).
type WorkUseCase struct {
	repo repository.WorkRepository
}

// NewWorkUseCase constrói o caso de uso.
func NewWorkUseCase(repo repository.WorkRepository) *WorkUseCase {
	return &WorkUseCase{repo: repo}
}

// Create cria um novo work do team.
func (uc *WorkUseCase) Create(ctx context.Context, teamID string, in dto.CreateWorkRequest) (*dto.WorkResponse, error) {
	now := time.Now()
	work := &entity.Work{
		ID:         uuid.New().String(),
		TeamID:     teamID,
		Title:      in.Title,
		CaseNumber: in.CaseNumber,
		Court:      in.Court,
		Status:     entity.WorkStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, work); err != nil {
		return nil, err
	}
	return toWorkResponse(work), nil
}

// GetByID obtém um work do team; nil se não existe ou é de outro team.
func (uc *WorkUseCase) GetByID(ctx context.Context, teamID, id string) (*dto.WorkResponse, error) {
	work, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if work == nil || work.TeamID != teamID {
		return nil, nil
	}
	return toWorkResponse(work), nil
}

// Update atualização parcial de um work do team.
func (uc *WorkUseCase) Update(ctx context.Context, teamID, id string, in dto.UpdateWorkRequest) (*dto.WorkResponse, error) {
	work, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, nil
	}
	if work.TeamID != teamID {
		return nil, domain.ErrForbidden
	}
	if in.Title != nil {
		work.Title = *in.Title
	}
	if in.CaseNumber != nil {
		work.CaseNumber = *in.CaseNumber
	}
	if in.Court != nil {
		work.Court = *in.Court
	}
	if in.Status != nil {
		work.Status = *in.Status
	}
	work.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, work); err != nil {
		return nil, err
	}
	return toWorkResponse(work), nil
}

// List lista works do team com paginação.
func (uc *WorkUseCase) List(ctx context.Context, teamID string, limit, offset int) (*dto.WorkListResponse, error) {
	list, err := uc.repo.ListByTeam(ctx, teamID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWorkResponse(w))
	}
	return &dto.WorkListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toWorkResponse(w *entity.Work) *dto.WorkResponse {
	return &dto.WorkResponse{
		ID:         w.ID,
		TeamID:     w.TeamID,
		Title:      w.Title,
		CaseNumber: w.CaseNumber,
		Court:      w.Court,
		Status:     w.Status,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}
