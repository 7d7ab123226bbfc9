package calc

import (
	"fin_metrics/pkg/core/frame"
	li "fin_metrics/pkg/core/lineitem"
)

// daRevenueRate is the share of revenue used when no balance-sheet D&A source is usable.
const daRevenueRate = 0.015

// =============================================================================
// STAGE 2: DEBT & CASH
// =============================================================================

func debtAndCash(b *frame.Builder) {
	totalDebt := frame.Sum(
		status(b, li.ShortTermDebt),
		status(b, li.CurrentPortionLTDebt),
		status(b, li.LongTermDebt),
		status(b, li.BondsPayable),
	)
	totalCash := status(b, li.CashEquivalents).Add(status(b, li.ShortTermInvestments))

	b.Add(TotalDebt, totalDebt)
	b.Add(TotalCash, totalCash)
	b.Add(NetDebt, totalDebt.Sub(totalCash))
	b.Add(EV, marketCap(b).Add(totalDebt).Sub(totalCash).Add(status(b, li.MinorityInterest)))
}

// =============================================================================
// STAGE 3: INCOME STATEMENT
// =============================================================================

func incomeStatement(b *frame.Builder) {
	revenue := flow(b, li.Revenue)
	selling := flow(b, li.SellingExp)
	admin := flow(b, li.AdminExp)
	rd := flow(b, li.RDExp)

	otherRevenue := flow(b, li.OtherBusinessRevenue)
	grossProfit := revenue.Sub(flow(b, li.COGS))
	// Gross profit less operating expenses, not net income plus interest and tax.
	ebit := grossProfit.Sub(selling).Sub(admin).Sub(rd)
	// A negative finance expense is net interest income.
	netInterest := flow(b, li.FinExp).Neg()
	investmentIncome := flow(b, li.InvestmentIncome)
	gainOnAssetSale := flow(b, li.AssetDisposalGain).
		Add(flow(b, li.NonCurrentAssetDisposalGain)).
		Sub(flow(b, li.NonCurrentAssetDisposalLoss))
	impairment := flow(b, li.AssetImpairment).Add(flow(b, li.CreditImpairment))
	unusual := flow(b, li.OtherIncome).Add(flow(b, li.FVChangeIncome))
	netIncome := flow(b, li.NetIncome)

	b.Add(OtherRevenue, otherRevenue)
	b.Add(MainRevenue, revenue.Sub(otherRevenue))
	b.Add(GrossProfit, grossProfit)
	b.Add(SGAExp, selling.Add(admin))
	b.Add(OperatingExpenses, frame.Sum(selling, admin, rd))
	b.Add(OtherOperatingExp, flow(b, li.TaxesSurcharges))
	b.Add(EBIT, ebit)
	b.Add(NetInterestExp, netInterest)
	b.Add(InterestAndInvestmentIncome, flow(b, li.InterestInc).Add(investmentIncome))
	b.Add(NonOperatingNet, flow(b, li.NonOperatingIncome).Sub(flow(b, li.NonOperatingExp)))
	b.Add(GainOnAssetSale, gainOnAssetSale)
	b.Add(GainOnInvestmentSale, investmentIncome)
	b.Add(TotalImpairment, impairment)
	b.Add(OtherUnusualItems, unusual)
	b.Add(EBTExclUnusual, ebit.Add(netInterest))
	b.Add(EBTInclUnusual, flow(b, li.PretaxIncome))
	b.Add(EarningsContinuing, netIncome)
	b.Add(NetIncomeCommon, flow(b, li.NetIncomeParent).UnlessZero(netIncome))
	b.Add(NormalizedNetIncome, netIncome.Sub(impairment).Sub(unusual).Sub(gainOnAssetSale))
}

// =============================================================================
// STAGE 4: DEPRECIATION & AMORTIZATION
// =============================================================================

func depreciation(b *frame.Builder) {
	estimate := flow(b, li.Revenue).Scale(daRevenueRate)
	// The accumulated balance is read raw so an unreported history never diffs against zero.
	fromAccum := b.Col(li.AccumulatedDepreciation).Diff()
	totalPPE := status(b, li.NetPPE).Add(status(b, li.ConstructionInProgress))
	fromPPE := totalPPE.Shift(1).Add(flow(b, li.CapEx).Abs()).Sub(totalPPE)

	da := make(frame.Series, b.Len())
	for i := range da {
		da[i] = ChooseDA(fromAccum[i], fromPPE[i], estimate[i])
	}
	dep := fromAccum.Floor(0)
	amort := da.Sub(dep).Floor(0)
	ebit := derived(b, EBIT)

	b.Add(DAEstimated, estimate)
	b.Add(DAFromAccum, fromAccum)
	b.Add(TotalPPE, totalPPE)
	b.Add(DAFromPPE, fromPPE)
	b.Add(DA, da)
	b.Add(Depreciation, dep)
	b.Add(Amortization, amort)
	b.Add(EBITDA, ebit.Add(da))
	b.Add(EBITA, ebit.Add(amort))
}

// ChooseDA picks one period's D&A: a positive change in accumulated depreciation, else a
// positive PPE roll-forward, else the revenue-based estimate, else the roll-forward
// floored at zero.
func ChooseDA(fromAccum, fromPPE, estimate frame.Num) frame.Num {
	switch {
	case fromAccum.Positive():
		return fromAccum
	case fromPPE.Positive():
		return fromPPE
	case estimate.Known():
		return estimate
	default:
		return fromPPE.Floor(0)
	}
}

// =============================================================================
// STAGE 5: MARGINS
// =============================================================================

func margins(b *frame.Builder) {
	revenue := flow(b, li.Revenue)
	over := func(name string, num frame.Series) {
		b.Add(name, num.Div(revenue))
	}

	over(GrossMargin, derived(b, GrossProfit))
	over(OperatingMargin, flow(b, li.OperatingIncome))
	over(EBITDAMargin, derived(b, EBITDA))
	over(EBITMargin, derived(b, EBIT))
	over(EBTMargin, flow(b, li.PretaxIncome))
	over(EBTExclUnusualMargin, derived(b, EBTExclUnusual))
	over(SGAMargin, derived(b, SGAExp))
	over(NetMargin, flow(b, li.NetIncome))
	over(NetAvailCommonMargin, derived(b, NetIncomeCommon))
	over(NormalizedNetIncomeMargin, derived(b, NormalizedNetIncome))
	over(EBITAMargin, derived(b, EBITA))
}
