package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jurisdesk/casemgmt-api/internal/domain"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/repository"
)

var _ repository.LawyerRepository = (*LawyerRepo)(nil)

// LawyerRepo implementação do porte LawyerRepository sobre PostgreSQL.
type LawyerRepo struct {
	pool *pgxpool.Pool
}

// NewLawyerRepository constrói o adaptador de persistência para advogados.
func NewLawyerRepository(pool *pgxpool.Pool) *LawyerRepo {
	return &LawyerRepo{pool: pool}
}

// Create persiste um novo advogado. OAB é única por team.
func (r *LawyerRepo) Create(ctx context.Context, lawyer *entity.Lawyer) error {
	query := `
		INSERT INTO lawyers (id, team_id, name, oab, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		lawyer.ID, lawyer.TeamID, lawyer.Name, lawyer.OAB, lawyer.Email,
		lawyer.CreatedAt, lawyer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert lawyer: %w", err)
	}
	return nil
}

// GetByID obtém um advogado por ID; nil se não existe.
func (r *LawyerRepo) GetByID(ctx context.Context, id string) (*entity.Lawyer, error) {
	query := `
		SELECT id, team_id, name, oab, email, created_at, updated_at
		FROM lawyers WHERE id = $1`
	var l entity.Lawyer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.TeamID, &l.Name, &l.OAB, &l.Email, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lawyer: %w", err)
	}
	return &l, nil
}

// ListByTeam lista advogados do team com paginação.
func (r *LawyerRepo) ListByTeam(ctx context.Context, teamID string, limit, offset int) ([]*entity.Lawyer, error) {
	query := `
		SELECT id, team_id, name, oab, email, created_at, updated_at
		FROM lawyers WHERE team_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, teamID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lawyers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lawyer
	for rows.Next() {
		var l entity.Lawyer
		if err := rows.Scan(&l.ID, &l.TeamID, &l.Name, &l.OAB, &l.Email, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lawyer: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
