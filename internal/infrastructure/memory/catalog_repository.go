package memory

import (
	"context"
	"sync"

	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/repository"
)

var (
	_ repository.WorkRepository   = (*WorkRepo)(nil)
	_ repository.OfficeRepository = (*OfficeRepo)(nil)
	_ repository.LawyerRepository = (*LawyerRepo)(nil)
)

// WorkRepo implementação em memória de WorkRepository.
type WorkRepo struct {
	mu    sync.RWMutex
	works map[string]*entity.Work
}

// NewWorkRepository cria o repositório vazio.
func NewWorkRepository() *WorkRepo {
	return &WorkRepo{works: make(map[string]*entity.Work)}
}

func (r *WorkRepo) Create(ctx context.Context, work *entity.Work) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := *work
	r.works[w.ID] = &w
	return nil
}

func (r *WorkRepo) GetByID(ctx context.Context, id string) (*entity.Work, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.works[id]
	if !ok {
		return nil, nil
	}
	out := *w
	return &out, nil
}

func (r *WorkRepo) ListByTeam(ctx context.Context, teamID string, limit, offset int) ([]*entity.Work, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.Work
	for _, w := range r.works {
		if w.TeamID == teamID {
			out := *w
			all = append(all, &out)
		}
	}
	return page(all, limit, offset), nil
}

func (r *WorkRepo) Update(ctx context.Context, work *entity.Work) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := *work
	r.works[w.ID] = &w
	return nil
}

// OfficeRepo implementação em memória de OfficeRepository.
type OfficeRepo struct {
	mu      sync.RWMutex
	offices map[string]*entity.Office
}

// NewOfficeRepository cria o repositório vazio.
func NewOfficeRepository() *OfficeRepo {
	return &OfficeRepo{offices: make(map[string]*entity.Office)}
}

func (r *OfficeRepo) Create(ctx context.Context, office *entity.Office) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := *office
	r.offices[o.ID] = &o
	return nil
}

func (r *OfficeRepo) GetByID(ctx context.Context, id string) (*entity.Office, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.offices[id]
	if !ok {
		return nil, nil
	}
	out := *o
	return &out, nil
}

func (r *OfficeRepo) ListByTeam(ctx context.Context, teamID string, limit, offset int) ([]*entity.Office, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.Office
	for _, o := range r.offices {
		if o.TeamID == teamID {
			out := *o
			all = append(all, &out)
		}
	}
	return page(all, limit, offset), nil
}

// LawyerRepo implementação em memória de LawyerRepository.
type LawyerRepo struct {
	mu      sync.RWMutex
	lawyers map[string]*entity.Lawyer
}

// NewLawyerRepository cria o repositório vazio.
func NewLawyerRepository() *LawyerRepo {
	return &LawyerRepo{lawyers: make(map[string]*entity.Lawyer)}
}

func (r *LawyerRepo) Create(ctx context.Context, lawyer *entity.Lawyer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := *lawyer
	r.lawyers[l.ID] = &l
	return nil
}

func (r *LawyerRepo) GetByID(ctx context.Context, id string) (*entity.Lawyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.lawyers[id]
	if !ok {
		return nil, nil
	}
	out := *l
	return &out, nil
}

func (r *LawyerRepo) ListByTeam(ctx context.Context, teamID string, limit, offset int) ([]*entity.Lawyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.Lawyer
	for _, l := range r.lawyers {
		if l.TeamID == teamID {
			out := *l
			all = append(all, &out)
		}
	}
	return page(all, limit, offset), nil
}

func page[T any](in []*T, limit, offset int) []*T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
