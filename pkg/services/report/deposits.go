package report

import "github.com/lotto-tools/report-center/pkg/models/domain"

func DepositsByBank(in Input) domain.ReportViewModel {
	return buildGroupedReport(in, groupedReportConfig{
		title:     "Depósitos por banco",
		family:    domain.FamilyDeposit,
		keyFn:     ByBank,
		groupNoun: "banco",
	})
}

func DepositsByCustomer(in Input) domain.ReportViewModel {
	return aggregateByCustomer(in, customerReportConfig{
		title:  "Depósitos por jugador",
		family: domain.FamilyDeposit,
		tiers:  DepositTiers,
	})
}

func DepositsByShop(in Input) domain.ReportViewModel {
	return buildGroupedReport(in, groupedReportConfig{
		title:     "Depósitos por comercio",
		family:    domain.FamilyDeposit,
		keyFn:     ByShop,
		groupNoun: "comercio",
	})
}

func DepositsByMethod(in Input) domain.ReportViewModel {
	return buildGroupedReport(in, groupedReportConfig{
		title:     "Depósitos por método de pago",
		family:    domain.FamilyDeposit,
		keyFn:     ByMethod,
		groupNoun: "método",
	})
}
