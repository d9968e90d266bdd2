package report

import "github.com/lotto-tools/report-center/pkg/models/domain"

func PromotionsByTier(in Input) domain.ReportViewModel {
	return buildGroupedReport(in, groupedReportConfig{
		title:     "Promociones por categoría",
		family:    domain.FamilyPromotion,
		keyFn:     ByTier,
		groupNoun: "categoría",
	})
}

func PromotionsByCustomer(in Input) domain.ReportViewModel {
	return aggregateByCustomer(in, customerReportConfig{
		title:  "Promociones por jugador",
		family: domain.FamilyPromotion,
		tiers:  DepositTiers,
	})
}
