package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jurisdesk/casemgmt-api/internal/domain"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/repository"
)

var _ repository.WorkConfigurationRepository = (*WorkConfigurationRepo)(nil)

// WorkConfigurationRepo implementa o porte WorkConfigurationRepository
// sobre PostgreSQL. A tabela work_configurations é append-only: versões
// nunca são apagadas, apenas marcadas como superseded; um índice único
// parcial garante no banco uma única versão ativa por work.
type WorkConfigurationRepo struct {
	pool *pgxpool.Pool
}

// NewWorkConfigurationRepository constrói o adaptador de persistência.
func NewWorkConfigurationRepository(pool *pgxpool.Pool) *WorkConfigurationRepo {
	return &WorkConfigurationRepo{pool: pool}
}

const configColumns = `
	id, work_id, team_id, document, status, sequence,
	effective_from, created_by, updated_by, notes, created_at, updated_at`

// Current devolve a versão ativa do work, ou nil se nunca configurado.
func (r *WorkConfigurationRepo) Current(ctx context.Context, workID string) (*entity.WorkConfiguration, error) {
	query := `
		SELECT ` + configColumns + `
		FROM work_configurations
		WHERE work_id = $1 AND status = $2`
	row := r.pool.QueryRow(ctx, query, workID, entity.ConfigStatusActive)
	cfg, err := scanConfiguration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuração ativa: %w", err)
	}
	return cfg, nil
}

// History devolve todas as versões do work, da mais antiga à mais nova.
func (r *WorkConfigurationRepo) History(ctx context.Context, workID string) ([]*entity.WorkConfiguration, error) {
	query := `
		SELECT ` + configColumns + `
		FROM work_configurations
		WHERE work_id = $1
		ORDER BY sequence ASC`
	rows, err := r.pool.Query(ctx, query, workID)
	if err != nil {
		return nil, fmt.Errorf("listar histórico de configuração: %w", err)
	}
	defer rows.Close()

	var history []*entity.WorkConfiguration
	for rows.Next() {
		cfg, err := scanConfiguration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan configuração: %w", err)
		}
		history = append(history, cfg)
	}
	return history, rows.Err()
}

// Append publica uma nova versão em uma única transação:
//  1. trava a versão ativa (SELECT ... FOR UPDATE);
//  2. compara sua sequence com ExpectedSequence — divergência significa
//     que outro editor publicou primeiro: domain.ErrVersionConflict;
//  3. marca a anterior como superseded e insere a sucessora como active.
//
// Nenhum observador enxerga zero ou duas versões ativas.
func (r *WorkConfigurationRepo) Append(ctx context.Context, p repository.AppendConfigurationParams) (*entity.WorkConfiguration, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var priorID string
	var priorSeq int
	err = tx.QueryRow(ctx, `
		SELECT id, sequence FROM work_configurations
		WHERE work_id = $1 AND status = $2
		FOR UPDATE`,
		p.WorkID, entity.ConfigStatusActive,
	).Scan(&priorID, &priorSeq)

	now := time.Now().UTC()
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		if p.ExpectedSequence != 0 {
			return nil, domain.ErrVersionConflict
		}
	case err != nil:
		return nil, fmt.Errorf("travar configuração ativa: %w", err)
	default:
		if priorSeq != p.ExpectedSequence {
			return nil, domain.ErrVersionConflict
		}
		_, err = tx.Exec(ctx, `
			UPDATE work_configurations
			SET status = $2, updated_by = $3, updated_at = $4
			WHERE id = $1`,
			priorID, entity.ConfigStatusSuperseded, p.ActorID, now,
		)
		if err != nil {
			return nil, fmt.Errorf("suplantar configuração anterior: %w", err)
		}
	}

	doc, err := json.Marshal(p.Document)
	if err != nil {
		return nil, fmt.Errorf("serializar documento: %w", err)
	}
	version := &entity.WorkConfiguration{
		ID:            uuid.New().String(),
		WorkID:        p.WorkID,
		TeamID:        p.TeamID,
		Document:      p.Document.Clone(),
		Status:        entity.ConfigStatusActive,
		Sequence:      p.ExpectedSequence + 1,
		EffectiveFrom: now,
		CreatedBy:     p.ActorID,
		UpdatedBy:     p.ActorID,
		Notes:         p.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO work_configurations (`+configColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		version.ID, version.WorkID, version.TeamID, doc, version.Status, version.Sequence,
		version.EffectiveFrom, version.CreatedBy, version.UpdatedBy, version.Notes,
		version.CreatedAt, version.UpdatedAt,
	)
	if err != nil {
		// Corrida perdida para outro writer: o índice único (work_id, sequence)
		// ou o parcial de status ativo barrou a inserção.
		if isUniqueViolation(err) {
			return nil, domain.ErrVersionConflict
		}
		return nil, fmt.Errorf("insert configuração: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return version, nil
}

// scanConfiguration materializa uma linha em WorkConfiguration,
// desserializando o documento JSONB.
func scanConfiguration(row pgx.Row) (*entity.WorkConfiguration, error) {
	var cfg entity.WorkConfiguration
	var doc []byte
	err := row.Scan(
		&cfg.ID, &cfg.WorkID, &cfg.TeamID, &doc, &cfg.Status, &cfg.Sequence,
		&cfg.EffectiveFrom, &cfg.CreatedBy, &cfg.UpdatedBy, &cfg.Notes,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(doc, &cfg.Document); err != nil {
		return nil, fmt.Errorf("desserializar documento: %w", err)
	}
	return &cfg, nil
}
