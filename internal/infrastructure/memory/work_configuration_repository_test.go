package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurisdesk/casemgmt-api/internal/domain"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/repository"
	"github.com/jurisdesk/casemgmt-api/internal/infrastructure/memory"
)

func appendParams(workID string, seq int, officeID string) repository.AppendConfigurationParams {
	return repository.AppendConfigurationParams{
		WorkID: workID,
		TeamID: "team-1",
		Document: entity.ConfigurationDocument{
			Offices: []entity.OfficeEntry{{OfficeID: officeID}},
		},
		ExpectedSequence: seq,
		ActorID:          "actor-1",
	}
}

func TestAppend_CadeiaVaziaComecaEmUm(t *testing.T) {
	repo := memory.NewWorkConfigurationRepository()
	ctx := context.Background()

	v, err := repo.Append(ctx, appendParams("w1", 0, "o1"))
	require.NoError(t, err)
	assert.Equal(t, 1, v.Sequence)
	assert.Equal(t, entity.ConfigStatusActive, v.Status)
	assert.NotEmpty(t, v.ID)
}

func TestAppend_SequenceErradaConflita(t *testing.T) {
	repo := memory.NewWorkConfigurationRepository()
	ctx := context.Background()

	_, err := repo.Append(ctx, appendParams("w1", 0, "o1"))
	require.NoError(t, err)

	// Leitor defasado: esperava a cadeia ainda vazia.
	_, err = repo.Append(ctx, appendParams("w1", 0, "o2"))
	assert.ErrorIs(t, err, domain.ErrVersionConflict)

	// Esperava sequence futura.
	_, err = repo.Append(ctx, appendParams("w1", 5, "o2"))
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestAppend_SupersedeAAnterior(t *testing.T) {
	repo := memory.NewWorkConfigurationRepository()
	ctx := context.Background()

	_, err := repo.Append(ctx, appendParams("w1", 0, "o1"))
	require.NoError(t, err)
	_, err = repo.Append(ctx, appendParams("w1", 1, "o2"))
	require.NoError(t, err)

	history, err := repo.History(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.ConfigStatusSuperseded, history[0].Status)
	assert.Equal(t, entity.ConfigStatusActive, history[1].Status)

	current, err := repo.Current(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, 2, current.Sequence)
}

func TestCurrent_CadeiaVaziaDevolveNil(t *testing.T) {
	repo := memory.NewWorkConfigurationRepository()
	current, err := repo.Current(context.Background(), "w1")
	require.NoError(t, err)
	assert.Nil(t, current)
}

// O chamador recebe cópias: mutar o retorno não corrompe o store.
func TestRetornosSaoCopias(t *testing.T) {
	repo := memory.NewWorkConfigurationRepository()
	ctx := context.Background()

	_, err := repo.Append(ctx, appendParams("w1", 0, "o1"))
	require.NoError(t, err)

	current, err := repo.Current(ctx, "w1")
	require.NoError(t, err)
	current.Document.Offices[0].OfficeID = "mutado"

	again, err := repo.Current(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "o1", again.Document.Offices[0].OfficeID)
}

func TestCadeiasPorWorkSaoIndependentes(t *testing.T) {
	repo := memory.NewWorkConfigurationRepository()
	ctx := context.Background()

	_, err := repo.Append(ctx, appendParams("w1", 0, "o1"))
	require.NoError(t, err)
	_, err = repo.Append(ctx, appendParams("w2", 0, "o2"))
	require.NoError(t, err)

	h1, _ := repo.History(ctx, "w1")
	h2, _ := repo.History(ctx, "w2")
	assert.Len(t, h1, 1)
	assert.Len(t, h2, 1)
	assert.Equal(t, 1, h2[0].Sequence)
}
