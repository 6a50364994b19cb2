// Package workconfig (camada de aplicação) orquestra o versionamento da
// configuração de atuação de um work: lê a versão vigente, deriva o
// documento candidato com os construtores puros do domínio, valida as
// invariantes e anexa a nova versão com controle otimista de concorrência.
package workconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jurisdesk/casemgmt-api/internal/domain"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/repository"
	"github.com/jurisdesk/casemgmt-api/internal/domain/workconfig"
	"github.com/jurisdesk/casemgmt-api/internal/obs"
)

// Tentativas adicionais após um conflito otimista; esgotadas, o conflito
// sobe para o chamador em vez de laçar indefinidamente.
const maxConflictRetries = 3

// Service é o motor de versionamento de configuração de works.
type Service struct {
	configRepo repository.WorkConfigurationRepository
	workRepo   repository.WorkRepository
	officeRepo repository.OfficeRepository
	lawyerRepo repository.LawyerRepository
}

// NewService constrói o serviço com seus portes de persistência.
func NewService(
	configRepo repository.WorkConfigurationRepository,
	workRepo repository.WorkRepository,
	officeRepo repository.OfficeRepository,
	lawyerRepo repository.LawyerRepository,
) *Service {
	return &Service{
		configRepo: configRepo,
		workRepo:   workRepo,
		officeRepo: officeRepo,
		lawyerRepo: lawyerRepo,
	}
}

// Current devolve a versão ativa do work, ou nil se nunca configurado.
func (s *Service) Current(ctx context.Context, workID string) (*entity.WorkConfiguration, error) {
	return s.configRepo.Current(ctx, workID)
}

// History devolve a cadeia completa de versões, da mais antiga à mais nova.
func (s *Service) History(ctx context.Context, workID string) ([]*entity.WorkConfiguration, error) {
	return s.configRepo.History(ctx, workID)
}

// CreateInitial publica a primeira versão da cadeia. Exige que o work não
// possua versão ativa: se houver, falha com domain.ErrAlreadyConfigured
// (a evolução é papel de Update, nunca de um fallback silencioso).
func (s *Service) CreateInitial(ctx context.Context, workID string, actor Actor, in CreateInput) (*entity.WorkConfiguration, error) {
	if err := s.ensureWork(ctx, workID, actor); err != nil {
		return nil, err
	}
	doc, err := s.buildDocument(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	version, _, err := s.mutate(ctx, workID, actor, "create_initial", in.Notes,
		func(current *entity.WorkConfiguration) (entity.ConfigurationDocument, bool, error) {
			if current != nil {
				return entity.ConfigurationDocument{}, false, domain.ErrAlreadyConfigured
			}
			return doc, true, nil
		})
	return version, err
}

// Update aplica um patch parcial sobre a versão vigente (ou sobre um
// documento vazio se o work nunca foi configurado) e publica o resultado.
// Patch vazio é no-op: não se cria versão sem mudança alguma.
func (s *Service) Update(ctx context.Context, workID string, actor Actor, in UpdateInput) (*entity.WorkConfiguration, error) {
	if err := s.ensureWork(ctx, workID, actor); err != nil {
		return nil, err
	}
	if in.IsEmpty() {
		return s.configRepo.Current(ctx, workID)
	}
	patch, err := s.buildPatch(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	version, _, err := s.mutate(ctx, workID, actor, "update", in.Notes,
		func(current *entity.WorkConfiguration) (entity.ConfigurationDocument, bool, error) {
			base := entity.ConfigurationDocument{}
			if current != nil {
				base = current.Document
			}
			return workconfig.MergePatch(base, patch), true, nil
		})
	return version, err
}

// AddOffice acrescenta um escritório à configuração. Idempotente: se o
// escritório já está presente devolve a versão vigente com created=false,
// sem publicar nada.
func (s *Service) AddOffice(ctx context.Context, workID string, actor Actor, office OfficeInput) (*entity.WorkConfiguration, bool, error) {
	if err := s.ensureWork(ctx, workID, actor); err != nil {
		return nil, false, err
	}
	entry, err := s.resolveOffice(ctx, actor, office)
	if err != nil {
		return nil, false, err
	}
	return s.mutate(ctx, workID, actor, "add_office", "",
		func(current *entity.WorkConfiguration) (entity.ConfigurationDocument, bool, error) {
			base := entity.ConfigurationDocument{}
			if current != nil {
				base = current.Document
			}
			if workconfig.HasOffice(base, entry.OfficeID) {
				return entity.ConfigurationDocument{}, false, nil
			}
			offices := workconfig.OfficesWith(base, entry)
			return workconfig.MergePatch(base, workconfig.DocumentPatch{Offices: &offices}), true, nil
		})
}

// RemoveOffice retira um escritório da configuração. Idempotente: ausência
// é no-op, não erro.
func (s *Service) RemoveOffice(ctx context.Context, workID string, actor Actor, officeID string) (*entity.WorkConfiguration, bool, error) {
	if err := s.ensureWork(ctx, workID, actor); err != nil {
		return nil, false, err
	}
	return s.mutate(ctx, workID, actor, "remove_office", "",
		func(current *entity.WorkConfiguration) (entity.ConfigurationDocument, bool, error) {
			if current == nil || !workconfig.HasOffice(current.Document, officeID) {
				return entity.ConfigurationDocument{}, false, nil
			}
			offices := workconfig.OfficesWithout(current.Document, officeID)
			return workconfig.MergePatch(current.Document, workconfig.DocumentPatch{Offices: &offices}), true, nil
		})
}

// AddIndependentLawyer acrescenta um advogado independente. Idempotente
// por lawyer_id.
func (s *Service) AddIndependentLawyer(ctx context.Context, workID string, actor Actor, lawyer LawyerInput) (*entity.WorkConfiguration, bool, error) {
	if err := s.ensureWork(ctx, workID, actor); err != nil {
		return nil, false, err
	}
	ref, err := s.resolveLawyer(ctx, actor, lawyer)
	if err != nil {
		return nil, false, err
	}
	return s.mutate(ctx, workID, actor, "add_independent_lawyer", "",
		func(current *entity.WorkConfiguration) (entity.ConfigurationDocument, bool, error) {
			base := entity.ConfigurationDocument{}
			if current != nil {
				base = current.Document
			}
			if workconfig.HasIndependentLawyer(base, ref.LawyerID) {
				return entity.ConfigurationDocument{}, false, nil
			}
			lawyers := workconfig.IndependentWith(base, ref)
			return workconfig.MergePatch(base, workconfig.DocumentPatch{IndependentLawyers: &lawyers}), true, nil
		})
}

// RemoveIndependentLawyer retira um advogado independente. Ausência é no-op.
func (s *Service) RemoveIndependentLawyer(ctx context.Context, workID string, actor Actor, lawyerID string) (*entity.WorkConfiguration, bool, error) {
	if err := s.ensureWork(ctx, workID, actor); err != nil {
		return nil, false, err
	}
	return s.mutate(ctx, workID, actor, "remove_independent_lawyer", "",
		func(current *entity.WorkConfiguration) (entity.ConfigurationDocument, bool, error) {
			if current == nil || !workconfig.HasIndependentLawyer(current.Document, lawyerID) {
				return entity.ConfigurationDocument{}, false, nil
			}
			lawyers := workconfig.IndependentWithout(current.Document, lawyerID)
			return workconfig.MergePatch(current.Document, workconfig.DocumentPatch{IndependentLawyers: &lawyers}), true, nil
		})
}

// SetLeadLawyer substitui o advogado responsável. Sobrescrita pura: sempre
// publica uma nova versão, mesmo que o valor seja o mesmo.
func (s *Service) SetLeadLawyer(ctx context.Context, workID string, actor Actor, lawyerID string) (*entity.WorkConfiguration, error) {
	if err := s.ensureWork(ctx, workID, actor); err != nil {
		return nil, err
	}
	version, _, err := s.mutate(ctx, workID, actor, "set_lead_lawyer", "",
		func(current *entity.WorkConfiguration) (entity.ConfigurationDocument, bool, error) {
			base := entity.ConfigurationDocument{}
			if current != nil {
				base = current.Document
			}
			roles := base.Roles
			roles.LeadLawyerID = lawyerID
			return workconfig.MergePatch(base, workconfig.DocumentPatch{Roles: &roles}), true, nil
		})
	return version, err
}

// SetFeeDistribution substitui integralmente a distribuição de honorários.
// A soma é checada antes de qualquer construção de versão (fail fast).
func (s *Service) SetFeeDistribution(ctx context.Context, workID string, actor Actor, dist map[string]decimal.Decimal) (*entity.WorkConfiguration, error) {
	if err := s.ensureWork(ctx, workID, actor); err != nil {
		return nil, err
	}
	if err := workconfig.ValidateFeeDistribution(dist); err != nil {
		return nil, err
	}
	version, _, err := s.mutate(ctx, workID, actor, "set_fee_distribution", "",
		func(current *entity.WorkConfiguration) (entity.ConfigurationDocument, bool, error) {
			base := entity.ConfigurationDocument{}
			if current != nil {
				base = current.Document
			}
			return workconfig.MergePatch(base, workconfig.DocumentPatch{FeeDistribution: &dist}), true, nil
		})
	return version, err
}

// BulkReplace descarta a composição vigente e publica um documento novo
// construído do zero. Diferente de Update, não há merge: é sobrescrita
// completa (a cadeia de versões preserva o que havia antes).
func (s *Service) BulkReplace(ctx context.Context, workID string, actor Actor, in CreateInput) (*entity.WorkConfiguration, error) {
	if err := s.ensureWork(ctx, workID, actor); err != nil {
		return nil, err
	}
	doc, err := s.buildDocument(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	version, _, err := s.mutate(ctx, workID, actor, "bulk_replace", in.Notes,
		func(current *entity.WorkConfiguration) (entity.ConfigurationDocument, bool, error) {
			return doc, true, nil
		})
	return version, err
}

// mutate executa o ciclo ler-vigente → derivar candidato → validar →
// anexar, refazendo o ciclo inteiro (merge incluso) em caso de conflito
// otimista, até maxConflictRetries vezes. build recebe a versão vigente
// (nil se cadeia vazia) e devolve o candidato mais um flag de mudança;
// false = no-op, nada é publicado.
func (s *Service) mutate(
	ctx context.Context,
	workID string,
	actor Actor,
	operation string,
	notes string,
	build func(current *entity.WorkConfiguration) (entity.ConfigurationDocument, bool, error),
) (*entity.WorkConfiguration, bool, error) {
	var lastErr error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		current, err := s.configRepo.Current(ctx, workID)
		if err != nil {
			return nil, false, err
		}

		candidate, changed, err := build(current)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			obs.ConfigNoops.WithLabelValues(operation).Inc()
			return current, false, nil
		}
		if err := workconfig.ValidateDocument(candidate); err != nil {
			return nil, false, err
		}

		expected := 0
		if current != nil {
			expected = current.Sequence
		}
		version, err := s.configRepo.Append(ctx, repository.AppendConfigurationParams{
			WorkID:           workID,
			TeamID:           actor.TeamID,
			Document:         candidate,
			ExpectedSequence: expected,
			ActorID:          actor.UserID,
			Notes:            notes,
		})
		if err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				obs.ConfigVersionConflicts.Inc()
				lastErr = err
				continue
			}
			return nil, false, err
		}
		obs.ConfigVersionsCreated.WithLabelValues(operation).Inc()
		return version, true, nil
	}
	return nil, false, lastErr
}

// ensureWork confirma que o work existe e pertence ao team do ator.
func (s *Service) ensureWork(ctx context.Context, workID string, actor Actor) error {
	work, err := s.workRepo.GetByID(ctx, workID)
	if err != nil {
		return err
	}
	if work == nil {
		return fmt.Errorf("work %s: %w", workID, domain.ErrNotFound)
	}
	if actor.TeamID != "" && work.TeamID != actor.TeamID {
		return domain.ErrForbidden
	}
	return nil
}

// buildDocument resolve todas as referências de um CreateInput e monta o
// documento completo. Validação de invariantes fica a cargo de mutate.
func (s *Service) buildDocument(ctx context.Context, actor Actor, in CreateInput) (entity.ConfigurationDocument, error) {
	doc := entity.ConfigurationDocument{
		Offices:            []entity.OfficeEntry{},
		IndependentLawyers: []entity.LawyerRef{},
	}
	for _, o := range in.Offices {
		entry, err := s.resolveOffice(ctx, actor, o)
		if err != nil {
			return entity.ConfigurationDocument{}, err
		}
		doc.Offices = append(doc.Offices, entry)
	}
	for _, l := range in.IndependentLawyers {
		ref, err := s.resolveLawyer(ctx, actor, l)
		if err != nil {
			return entity.ConfigurationDocument{}, err
		}
		doc.IndependentLawyers = append(doc.IndependentLawyers, ref)
	}
	doc.Roles = entity.ConfigurationRoles{LeadLawyerID: in.LeadLawyerID}
	if in.FeeDistribution != nil {
		doc.FeeDistribution = make(map[string]decimal.Decimal, len(in.FeeDistribution))
		for k, v := range in.FeeDistribution {
			doc.FeeDistribution[k] = v
		}
	}
	return doc, nil
}

// buildPatch resolve as referências presentes em um UpdateInput e monta o
// DocumentPatch correspondente.
func (s *Service) buildPatch(ctx context.Context, actor Actor, in UpdateInput) (workconfig.DocumentPatch, error) {
	var patch workconfig.DocumentPatch
	if in.Offices != nil {
		offices := make([]entity.OfficeEntry, 0, len(*in.Offices))
		for _, o := range *in.Offices {
			entry, err := s.resolveOffice(ctx, actor, o)
			if err != nil {
				return workconfig.DocumentPatch{}, err
			}
			offices = append(offices, entry)
		}
		patch.Offices = &offices
	}
	if in.IndependentLawyers != nil {
		lawyers := make([]entity.LawyerRef, 0, len(*in.IndependentLawyers))
		for _, l := range *in.IndependentLawyers {
			ref, err := s.resolveLawyer(ctx, actor, l)
			if err != nil {
				return workconfig.DocumentPatch{}, err
			}
			lawyers = append(lawyers, ref)
		}
		patch.IndependentLawyers = &lawyers
	}
	patch.Roles = in.Roles
	patch.FeeDistribution = in.FeeDistribution
	return patch, nil
}

// resolveOffice materializa um OfficeInput em OfficeEntry consultando o
// cadastro uma única vez (nenhuma inspeção de formato depois daqui).
func (s *Service) resolveOffice(ctx context.Context, actor Actor, in OfficeInput) (entity.OfficeEntry, error) {
	office, err := s.officeRepo.GetByID(ctx, in.OfficeID)
	if err != nil {
		return entity.OfficeEntry{}, err
	}
	if office == nil {
		return entity.OfficeEntry{}, fmt.Errorf("escritório %s: %w", in.OfficeID, domain.ErrNotFound)
	}
	if actor.TeamID != "" && office.TeamID != actor.TeamID {
		return entity.OfficeEntry{}, domain.ErrForbidden
	}
	lawyers := make([]entity.LawyerRef, 0, len(in.Lawyers))
	for _, l := range in.Lawyers {
		ref, err := s.resolveLawyer(ctx, actor, l)
		if err != nil {
			return entity.OfficeEntry{}, err
		}
		lawyers = append(lawyers, ref)
	}
	return workconfig.BuildOfficeEntry(office, lawyers), nil
}

// resolveLawyer materializa um LawyerInput em LawyerRef: usa o Ref
// pré-resolvido quando presente, senão consulta o cadastro pelo ID.
func (s *Service) resolveLawyer(ctx context.Context, actor Actor, in LawyerInput) (entity.LawyerRef, error) {
	if in.Ref != nil {
		ref := *in.Ref
		if in.Role != "" {
			ref.Role = in.Role
		}
		return ref, nil
	}
	lawyer, err := s.lawyerRepo.GetByID(ctx, in.LawyerID)
	if err != nil {
		return entity.LawyerRef{}, err
	}
	if lawyer == nil {
		return entity.LawyerRef{}, fmt.Errorf("advogado %s: %w", in.LawyerID, domain.ErrNotFound)
	}
	if actor.TeamID != "" && lawyer.TeamID != actor.TeamID {
		return entity.LawyerRef{}, domain.ErrForbidden
	}
	return workconfig.BuildLawyerEntry(lawyer, in.Role), nil
}
