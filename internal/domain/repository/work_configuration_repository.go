package repository

import (
	"context"

	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
)

// AppendConfigurationParams parâmetros para anexar uma versão à cadeia.
// ExpectedSequence é a sequence da versão ativa lida no início da operação
// (0 = o chamador espera cadeia vazia); o store aborta com
// domain.ErrVersionConflict se a ativa mudou nesse meio-tempo.
type AppendConfigurationParams struct {
	WorkID           string
	TeamID           string
	Document         entity.ConfigurationDocument
	ExpectedSequence int
	ActorID          string
	Notes            string
}

// WorkConfigurationRepository define o porte de persistência da cadeia de
// versões de configuração (tabela work_configurations).
type WorkConfigurationRepository interface {
	// Current devolve a versão ativa do work, ou nil se nunca configurado.
	Current(ctx context.Context, workID string) (*entity.WorkConfiguration, error)
	// History devolve todas as versões do work, da mais antiga à mais nova.
	History(ctx context.Context, workID string) ([]*entity.WorkConfiguration, error)
	// Append publica uma nova versão em uma única transação: relê a ativa
	// com lock, compara sequence com ExpectedSequence, marca a anterior
	// como superseded e insere a sucessora como active. Nenhum observador
	// vê zero ou duas versões ativas.
	Append(ctx context.Context, p AppendConfigurationParams) (*entity.WorkConfiguration, error)
}
