package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jurisdesk/casemgmt-api/internal/application/dto"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/repository"
)

// OfficeUseCase casos de uso CRUD para escritórios.
type OfficeUseCase struct {
	repo repository.OfficeRepository
}

// NewOfficeUseCase constrói o caso de uso.
func NewOfficeUseCase(repo repository.OfficeRepository) *OfficeUseCase {
	return &OfficeUseCase{repo: repo}
}

// Create cadastra um novo escritório no team.
func (uc *OfficeUseCase) Create(ctx context.Context, teamID string, in dto.CreateOfficeRequest) (*dto.OfficeResponse, error) {
	now := time.Now()
	office := &entity.Office{
		ID:        uuid.New().String(),
		TeamID:    teamID,
		Name:      in.Name,
		CNPJ:      in.CNPJ,
		OAB:       in.OAB,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, office); err != nil {
		return nil, err
	}
	return toOfficeResponse(office), nil
}

// GetByID obtém um escritório do team; nil se não existe ou é de outro team.
func (uc *OfficeUseCase) GetByID(ctx context.Context, teamID, id string) (*dto.OfficeResponse, error) {
	office, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if office == nil || office.TeamID != teamID {
		return nil, nil
	}
	return toOfficeResponse(office), nil
}

// List lista escritórios do team com paginação.
func (uc *OfficeUseCase) List(ctx context.Context, teamID string, limit, offset int) (*dto.OfficeListResponse, error) {
	list, err := uc.repo.ListByTeam(ctx, teamID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfficeResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOfficeResponse(o))
	}
	return &dto.OfficeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toOfficeResponse(o *entity.Office) *dto.OfficeResponse {
	return &dto.OfficeResponse{
		ID:        o.ID,
		TeamID:    o.TeamID,
		Name:      o.Name,
		CNPJ:      o.CNPJ,
		OAB:       o.OAB,
		Email:     o.Email,
		Phone:     o.Phone,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
