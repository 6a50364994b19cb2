package repository

import (
	"context"

	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
)

// TeamRepository define o porte de persistência para Team.
type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) error
	GetByID(ctx context.Context, id string) (*entity.Team, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Team, error)
}
