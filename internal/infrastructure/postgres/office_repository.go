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

var _ repository.OfficeRepository = (*OfficeRepo)(nil)

// OfficeRepo implementação do porte OfficeRepository sobre PostgreSQL.
type OfficeRepo struct {
	pool *pgxpool.Pool
}

// NewOfficeRepository constrói o adaptador de persistência para escritórios.
func NewOfficeRepository(pool *pgxpool.Pool) *OfficeRepo {
	return &OfficeRepo{pool: pool}
}

// Create persiste um novo escritório. CNPJ é único por team.
func (r *OfficeRepo) Create(ctx context.Context, office *entity.Office) error {
	query := `
		INSERT INTO offices (id, team_id, name, cnpj, oab, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		office.ID, office.TeamID, office.Name, office.CNPJ, office.OAB,
		office.Email, office.Phone, office.CreatedAt, office.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert office: %w", err)
	}
	return nil
}

// GetByID obtém um escritório por ID; nil se não existe.
func (r *OfficeRepo) GetByID(ctx context.Context, id string) (*entity.Office, error) {
	query := `
		SELECT id, team_id, name, cnpj, oab, email, phone, created_at, updated_at
		FROM offices WHERE id = $1`
	var o entity.Office
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.TeamID, &o.Name, &o.CNPJ, &o.OAB, &o.Email, &o.Phone, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get office: %w", err)
	}
	return &o, nil
}

// ListByTeam lista escritórios do team com paginação.
func (r *OfficeRepo) ListByTeam(ctx context.Context, teamID string, limit, offset int) ([]*entity.Office, error) {
	query := `
		SELECT id, team_id, name, cnpj, oab, email, phone, created_at, updated_at
		FROM offices WHERE team_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, teamID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list offices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Office
	for rows.Next() {
		var o entity.Office
		if err := rows.Scan(&o.ID, &o.TeamID, &o.Name, &o.CNPJ, &o.OAB, &o.Email, &o.Phone, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan office: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
