package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/repository"
)

var _ repository.TeamRepository = (*TeamRepo)(nil)

// TeamRepo implementação do porte TeamRepository sobre PostgreSQL.
type TeamRepo struct {
	pool *pgxpool.Pool
}

// NewTeamRepository constrói o adaptador de persistência para teams.
func NewTeamRepository(pool *pgxpool.Pool) *TeamRepo {
	return &TeamRepo{pool: pool}
}

// Create persiste um novo team.
func (r *TeamRepo) Create(ctx context.Context, team *entity.Team) error {
	query := `
		INSERT INTO teams (id, name, cnpj, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		team.ID, team.Name, team.CNPJ, team.Email, team.Status, team.CreatedAt, team.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

// GetByID obtém um team por ID; nil se não existe.
func (r *TeamRepo) GetByID(ctx context.Context, id string) (*entity.Team, error) {
	query := `
		SELECT id, name, cnpj, email, status, created_at, updated_at
		FROM teams WHERE id = $1`
	var t entity.Team
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.CNPJ, &t.Email, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}

// List lista teams com paginação.
func (r *TeamRepo) List(ctx context.Context, limit, offset int) ([]*entity.Team, error) {
	query := `
		SELECT id, name, cnpj, email, status, created_at, updated_at
		FROM teams ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()
	var list []*entity.Team
	for rows.Next() {
		var t entity.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.CNPJ, &t.Email, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
