package calc

import (
	"fin_metrics/pkg/core/frame"
	li "fin_metrics/pkg/core/lineitem"
)

// =============================================================================
// STAGE 9: CASH FLOW
// =============================================================================

// cashFlow treats outflow items by magnitude, since feeds disagree on their sign.
func cashFlow(b *frame.Builder) {
	fcf := flow(b, li.OCF).Sub(flow(b, li.CapEx).Abs())
	issued := flow(b, li.ProceedsFromBorrowings).Add(flow(b, li.BondIssuance))
	repaid := flow(b, li.RepaymentOfDebt)

	b.Add(FCF, fcf)
	b.Add(FCFPerShare, fcf.Div(derived(b, SharesOutstanding)))
	b.Add(FCFYield, fcf.Div(marketCap(b)))
	b.Add(TotalDebtIssued, issued)
	b.Add(TotalDebtRepaid, repaid)
	b.Add(NetDebtIssued, issued.Sub(repaid.Abs()))
	b.Add(CommonDividendsPaid, flow(b, li.DividendsPaid).Sub(flow(b, li.MinorityDividendsPaid).Abs()))
	b.Add(OtherOperatingActivities, flow(b, li.OtherOperatingCashIn).Sub(flow(b, li.OtherOperatingCashOut).Abs()))
	b.Add(OtherInvestingActivities, flow(b, li.OtherInvestingCashIn).Sub(flow(b, li.OtherInvestingCashOut).Abs()))
	b.Add(OtherFinancingActivities, flow(b, li.OtherFinancingCashIn).Sub(flow(b, li.OtherFinancingCashOut).Abs()))
	b.Add(InvestmentInSecurities, flow(b, li.CashForInvestments).Sub(flow(b, li.ProceedsFromInvestmentSales)))
}

// =============================================================================
// STAGE 10: MULTIPLES
// =============================================================================

func multiples(b *frame.Builder) {
	mc := marketCap(b)
	ev := derived(b, EV)

	b.Add(PE, mc.Div(flow(b, li.NetIncome)))
	b.Add(PS, mc.Div(flow(b, li.Revenue)))
	b.Add(PB, mc.Div(status(b, li.TotalEquity)))
	b.Add(PTangibleBV, mc.Div(derived(b, TangibleBookValue)))
	b.Add(EVSales, ev.Div(flow(b, li.Revenue)))
	b.Add(EVEBITDA, ev.Div(derived(b, EBITDA)))
	b.Add(EVEBIT, ev.Div(derived(b, EBIT)))
	b.Add(EVOCF, ev.Div(flow(b, li.OCF)))
}

// =============================================================================
// STAGE 11: SOLVENCY
// =============================================================================

func solvency(b *frame.Builder) {
	totalDebt := derived(b, TotalDebt)
	totalCapital := derived(b, TotalCapital)
	totalEquity := status(b, li.TotalEquity)
	totalAssets := status(b, li.TotalAssets)
	totalLiabilities := status(b, li.TotalLiabilities)
	currentLiabilities := status(b, li.TotalCurrentLiabilities)
	currentAssets := status(b, li.TotalCurrentAssets)
	longTermDebt := status(b, li.LongTermDebt)
	interest := flow(b, li.InterestExp)
	ebitda := derived(b, EBITDA)
	ebit := derived(b, EBIT)

	altman := make(frame.Series, b.Len())
	wc := derived(b, WorkingCapital)
	re := status(b, li.RetainedEarnings)
	for i := range altman {
		altman[i] = AltmanZDoublePrime(wc[i], re[i], ebit[i], totalEquity[i], totalAssets[i], totalLiabilities[i])
	}

	b.Add(DebtToEquity, totalDebt.Div(totalEquity))
	b.Add(DebtToCapital, totalDebt.Div(totalCapital))
	b.Add(LTDebtToEquity, longTermDebt.Div(totalEquity))
	b.Add(LTDebtToCapital, longTermDebt.Div(totalCapital))
	b.Add(LiabilitiesToAssets, totalLiabilities.Div(totalAssets))
	b.Add(InterestCoverageEBIT, ebit.Div(interest))
	b.Add(InterestCoverageEBITDA, ebitda.Div(interest))
	b.Add(InterestCoverageEBITDACapEx, ebitda.Sub(flow(b, li.CapEx).Abs()).Div(interest))
	b.Add(DebtToEBITDA, totalDebt.Div(ebitda))
	b.Add(NetDebtToEBITDA, derived(b, NetDebt).Div(ebitda))
	b.Add(CurrentRatio, currentAssets.Div(currentLiabilities))
	b.Add(QuickRatio, currentAssets.Sub(status(b, li.Inventory)).Div(currentLiabilities))
	b.Add(OperatingCashFlowToCurrentLiab, flow(b, li.OCF).Div(currentLiabilities))
	b.Add(AltmanZScore, altman)
}
