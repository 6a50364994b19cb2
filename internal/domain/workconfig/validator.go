package workconfig

import (
	"github.com/shopspring/decimal"

	"github.com/jurisdesk/casemgmt-api/internal/domain"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
)

// Soma exigida da distribuição de honorários. Percentuais são decimais
// exatos (shopspring/decimal), então a comparação é exata: não há deriva
// de ponto flutuante nem banda de tolerância.
var feeDistributionTotal = decimal.NewFromInt(100)

// ValidateDocument verifica as invariantes de um documento candidato antes
// de virar versão: distribuição de honorários somando 100% quando presente
// e unicidade de escritórios e advogados independentes. Falha na primeira
// violação com o valor ofensor na mensagem.
func ValidateDocument(doc entity.ConfigurationDocument) error {
	if err := ValidateFeeDistribution(doc.FeeDistribution); err != nil {
		return err
	}

	seenOffices := make(map[string]struct{}, len(doc.Offices))
	for _, o := range doc.Offices {
		if _, dup := seenOffices[o.OfficeID]; dup {
			return domain.NewValidationError(domain.RuleDuplicateOffice,
				"escritório duplicado na configuração: %s", o.OfficeID)
		}
		seenOffices[o.OfficeID] = struct{}{}
	}

	seenLawyers := make(map[string]struct{}, len(doc.IndependentLawyers))
	for _, l := range doc.IndependentLawyers {
		if _, dup := seenLawyers[l.LawyerID]; dup {
			return domain.NewValidationError(domain.RuleDuplicateLawyer,
				"advogado independente duplicado na configuração: %s", l.LawyerID)
		}
		seenLawyers[l.LawyerID] = struct{}{}
	}
	return nil
}

// ValidateFeeDistribution verifica a soma da distribuição de honorários.
// Mapa vazio ou nil é válido (work ainda sem acordo de divisão).
func ValidateFeeDistribution(dist map[string]decimal.Decimal) error {
	if len(dist) == 0 {
		return nil
	}
	sum := decimal.Zero
	for _, pct := range dist {
		sum = sum.Add(pct)
	}
	if !sum.Equal(feeDistributionTotal) {
		return domain.NewValidationError(domain.RuleFeeDistributionSum,
			"distribuição de honorários deve somar 100%%, obteve %s%%", sum.String())
	}
	return nil
}
