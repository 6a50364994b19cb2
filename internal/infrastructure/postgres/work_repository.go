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

var _ repository.WorkRepository = (*WorkRepo)(nil)

// WorkRepo implementação do porte WorkRepository sobre PostgreSQL.
type WorkRepo struct {
	pool *pgxpool.Pool
}

// NewWorkRepository constrói o adaptador de persistência para works.
func NewWorkRepository(pool *pgxpool.Pool) *WorkRepo {
	return &WorkRepo{pool: pool}
}

// Create persiste um novo work.
func (r *WorkRepo) Create(ctx context.Context, work *entity.Work) error {
	query := `
		INSERT INTO works (id, team_id, title, case_number, court, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		work.ID, work.TeamID, work.Title, work.CaseNumber, work.Court, work.Status,
		work.CreatedAt, work.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work: %w", err)
	}
	return nil
}

// GetByID obtém um work por ID; nil se não existe.
func (r *WorkRepo) GetByID(ctx context.Context, id string) (*entity.Work, error) {
	query := `
		SELECT id, team_id, title, case_number, court, status, created_at, updated_at
		FROM works WHERE id = $1`
	var w entity.Work
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.TeamID, &w.Title, &w.CaseNumber, &w.Court, &w.Status, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work: %w", err)
	}
	return &w, nil
}

// ListByTeam lista works do team com paginação.
func (r *WorkRepo) ListByTeam(ctx context.Context, teamID string, limit, offset int) ([]*entity.Work, error) {
	query := `
		SELECT id, team_id, title, case_number, court, status, created_at, updated_at
		FROM works WHERE team_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, teamID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	defer rows.Close()
	var list []*entity.Work
	for rows.Next() {
		var w entity.Work
		if err := rows.Scan(&w.ID, &w.TeamID, &w.Title, &w.CaseNumber, &w.Court, &w.Status, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Update atualiza os campos editáveis de um work.
func (r *WorkRepo) Update(ctx context.Context, work *entity.Work) error {
	query := `
		UPDATE works SET title = $2, case_number = $3, court = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		work.ID, work.Title, work.CaseNumber, work.Court, work.Status, work.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work: %w", err)
	}
	return nil
}
