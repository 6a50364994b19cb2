// Package memory traz implementações em memória dos portes de
// persistência, com segurança de concorrência em processo. Usadas nos
// testes e no modo de desenvolvimento sem banco.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jurisdesk/casemgmt-api/internal/domain"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/repository"
)

var _ repository.WorkConfigurationRepository = (*WorkConfigurationRepo)(nil)

// WorkConfigurationRepo guarda as cadeias de versão por work em memória.
// Reproduz o contrato transacional do store PostgreSQL: append atômico,
// checagem otimista de sequence, uma única versão ativa por work.
type WorkConfigurationRepo struct {
	mu     sync.RWMutex
	chains map[string][]*entity.WorkConfiguration // workID -> versões em ordem de sequence
}

// NewWorkConfigurationRepository cria o store vazio.
func NewWorkConfigurationRepository() *WorkConfigurationRepo {
	return &WorkConfigurationRepo{chains: make(map[string][]*entity.WorkConfiguration)}
}

// Current devolve cópia da versão ativa, ou nil se a cadeia está vazia.
func (r *WorkConfigurationRepo) Current(ctx context.Context, workID string) (*entity.WorkConfiguration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chain := r.chains[workID]
	if len(chain) == 0 {
		return nil, nil
	}
	last := chain[len(chain)-1]
	if !last.IsActive() {
		return nil, nil
	}
	return copyVersion(last), nil
}

// History devolve cópias de todas as versões, da mais antiga à mais nova.
func (r *WorkConfigurationRepo) History(ctx context.Context, workID string) ([]*entity.WorkConfiguration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chain := r.chains[workID]
	out := make([]*entity.WorkConfiguration, len(chain))
	for i, v := range chain {
		out[i] = copyVersion(v)
	}
	return out, nil
}

// Append publica uma nova versão sob o lock do store: compara a sequence
// da ativa com a esperada, marca a anterior como superseded e insere a
// sucessora como active.
func (r *WorkConfigurationRepo) Append(ctx context.Context, p repository.AppendConfigurationParams) (*entity.WorkConfiguration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chain := r.chains[p.WorkID]
	currentSeq := 0
	if len(chain) > 0 {
		currentSeq = chain[len(chain)-1].Sequence
	}
	if currentSeq != p.ExpectedSequence {
		return nil, domain.ErrVersionConflict
	}

	now := time.Now().UTC()
	if len(chain) > 0 {
		prior := chain[len(chain)-1]
		prior.Status = entity.ConfigStatusSuperseded
		prior.UpdatedBy = p.ActorID
		prior.UpdatedAt = now
	}

	version := &entity.WorkConfiguration{
		ID:            uuid.New().String(),
		WorkID:        p.WorkID,
		TeamID:        p.TeamID,
		Document:      p.Document.Clone(),
		Status:        entity.ConfigStatusActive,
		Sequence:      currentSeq + 1,
		EffectiveFrom: now,
		CreatedBy:     p.ActorID,
		UpdatedBy:     p.ActorID,
		Notes:         p.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.chains[p.WorkID] = append(chain, version)
	return copyVersion(version), nil
}

// copyVersion devolve cópia com documento clonado: o chamador nunca
// enxerga a memória interna do store.
func copyVersion(v *entity.WorkConfiguration) *entity.WorkConfiguration {
	out := *v
	out.Document = v.Document.Clone()
	return &out
}
