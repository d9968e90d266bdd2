package report

import "github.com/lotto-tools/report-center/pkg/models/domain"

func WithdrawalsByBank(in Input) domain.ReportViewModel {
	return buildGroupedReport(in, groupedReportConfig{
		title:     "Retiros por banco",
		family:    domain.FamilyRedemption,
		keyFn:     ByBank,
		groupNoun: "banco",
	})
}

func WithdrawalsByCustomer(in Input) domain.ReportViewModel {
	return aggregateByCustomer(in, customerReportConfig{
		title:  "Retiros por jugador",
		family: domain.FamilyRedemption,
		tiers:  DepositTiers,
	})
}
