package repository

import (
	"context"

	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
)

// LawyerRepository define o porte de persistência para Lawyer.
type LawyerRepository interface {
	Create(ctx context.Context, lawyer *entity.Lawyer) error
	GetByID(ctx context.Context, id string) (*entity.Lawyer, error)
	ListByTeam(ctx context.Context, teamID string, limit, offset int) ([]*entity.Lawyer, error)
}
