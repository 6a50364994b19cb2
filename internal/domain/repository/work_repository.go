package repository

import (
	"context"

	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
)

// WorkRepository define o porte de persistência para Work.
type WorkRepository interface {
	Create(ctx context.Context, work *entity.Work) error
	GetByID(ctx context.Context, id string) (*entity.Work, error)
	ListByTeam(ctx context.Context, teamID string, limit, offset int) ([]*entity.Work, error)
	Update(ctx context.Context, work *entity.Work) error
}
