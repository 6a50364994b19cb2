package repository

import (
	"context"

	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
)

// OfficeRepository define o porte de persistência para Office.
type OfficeRepository interface {
	Create(ctx context.Context, office *entity.Office) error
	GetByID(ctx context.Context, id string) (*entity.Office, error)
	ListByTeam(ctx context.Context, teamID string, limit, offset int) ([]*entity.Office, error)
}
