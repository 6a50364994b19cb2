package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jurisdesk/casemgmt-api/internal/application/dto"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/repository"
)

// TeamUseCase casos de uso CRUD para teams.
type TeamUseCase struct {
	repo repository.TeamRepository
}

// NewTeamUseCase constrói o caso de uso.
func NewTeamUseCase(repo repository.TeamRepository) *TeamUseCase {
	return &TeamUseCase{repo: repo}
}

// Create cria um novo team.
func (uc *TeamUseCase) Create(ctx context.Context, in dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	now := time.Now()
	team := &entity.Team{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CNPJ:      in.CNPJ,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, team); err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// GetByID obtém um team; nil se não existe.
func (uc *TeamUseCase) GetByID(ctx context.Context, id string) (*dto.TeamResponse, error) {
	team, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, nil
	}
	return toTeamResponse(team), nil
}

// List lista teams com paginação.
func (uc *TeamUseCase) List(ctx context.Context, limit, offset int) (*dto.TeamListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TeamResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTeamResponse(t))
	}
	return &dto.TeamListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toTeamResponse(t *entity.Team) *dto.TeamResponse {
	return &dto.TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		CNPJ:      t.CNPJ,
		Email:     t.Email,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
