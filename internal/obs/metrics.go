// Package obs expõe as métricas Prometheus da aplicação.
package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Métricas do motor de versionamento de configuração.
var (
	// ConfigVersionsCreated conta versões publicadas, por operação.
	ConfigVersionsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "work_config_versions_created_total",
			Help: "Versões de configuração de work publicadas.",
		},
		[]string{"operation"},
	)

	// ConfigVersionConflicts conta conflitos otimistas detectados no append
	// (inclui os resolvidos por nova tentativa).
	ConfigVersionConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "work_config_version_conflicts_total",
			Help: "Conflitos de concorrência ao publicar versão de configuração.",
		},
	)

	// ConfigNoops conta operações idempotentes que não geraram versão
	// (ex: adicionar escritório já presente).
	ConfigNoops = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "work_config_noops_total",
			Help: "Operações de configuração sem efeito (já no estado alvo).",
		},
		[]string{"operation"},
	)
)

// Init registra as métricas no registrador default do Prometheus.
func Init() {
	prometheus.MustRegister(ConfigVersionsCreated, ConfigVersionConflicts, ConfigNoops)
}

// Handler devolve o handler HTTP do Prometheus (montado em /metrics).
func Handler() http.Handler {
	return promhttp.Handler()
}
