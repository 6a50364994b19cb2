package repository

import (
	"context"

	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
)

// UserRepository define o porte de persistência para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmailAndTeam devolve nil, nil se o usuário não existe no team.
	GetByEmailAndTeam(ctx context.Context, email, teamID string) (*entity.User, error)
}
