package calc

import (
	"fin_metrics/pkg/core/frame"
	li "fin_metrics/pkg/core/lineitem"
)

const daysPerYear = 365

// =============================================================================
// STAGE 6: BALANCE SHEET
// =============================================================================

// balanceSheet derives working capital, cash-flow reconciliation deltas and the
// fallback aggregates. A fallback replaces the granular field only where it is exactly zero.
func balanceSheet(b *frame.Builder) {
	workingCapital := status(b, li.TotalCurrentAssets).Sub(status(b, li.TotalCurrentLiabilities))
	arTotal := status(b, li.AccountsReceivable).UnlessZero(status(b, li.NotesARCombined))
	apTotal := status(b, li.AccountsPayable).UnlessZero(status(b, li.NotesAPCombined))
	unearned := status(b, li.UnearnedRevenue)
	contract := status(b, li.ContractLiabilities)

	b.Add(WorkingCapital, workingCapital)
	b.Add(WorkingCapitalChange, workingCapital.Diff())
	b.Add(ARTotal, arTotal)
	b.Add(APTotal, apTotal)
	// Asset increases consume cash; liability increases provide it.
	b.Add(ChangeInAR, arTotal.Diff().Neg())
	b.Add(ChangeInInventory, status(b, li.Inventory).Diff().Neg())
	b.Add(ChangeInAP, apTotal.Diff())
	b.Add(ChangeInPrepaid, status(b, li.PrepaidExpenses).Diff().Neg())
	b.Add(ChangeInOtherReceivables, status(b, li.OtherReceivables).Diff().Neg())
	b.Add(ChangeInOtherPayables, status(b, li.OtherPayables).Diff())
	b.Add(ChangeInUnearned, unearned.Diff().Add(contract.Diff()))

	receivables := frame.Sum(
		status(b, li.AccountsReceivable),
		status(b, li.NotesReceivable),
		status(b, li.FinancingReceivables),
	).UnlessZero(status(b, li.NotesARCombined))
	cip := status(b, li.ConstructionInProgressTotal).UnlessZero(status(b, li.ConstructionInProgress))

	totalEquity := status(b, li.TotalEquity)
	commonEquity := status(b, li.EquityParent).UnlessZero(totalEquity.Sub(status(b, li.MinorityInterest)))
	tangible := totalEquity.Sub(status(b, li.Goodwill)).Sub(status(b, li.IntangibleAssets))
	shares := flow(b, li.NetIncome).Div(flow(b, li.EPS))

	b.Add(TotalReceivables, receivables)
	b.Add(CIP, cip)
	b.Add(TotalPPEKoyfin, status(b, li.NetPPE).Add(cip))
	b.Add(UnearnedRevenueTotal, unearned.Add(contract))
	b.Add(UnearnedRevenueNonCur, status(b, li.LTDeferredRevenue))
	b.Add(OtherReceivablesFinal, status(b, li.OtherReceivablesTotal).UnlessZero(status(b, li.OtherReceivables)))
	b.Add(CommonEquity, commonEquity)
	b.Add(TotalCapital, totalEquity.Add(derived(b, TotalDebt)))
	b.Add(TangibleBookValue, tangible)
	b.Add(SharesOutstanding, shares)
	b.Add(BookValuePerShare, totalEquity.Div(shares))
	b.Add(TangibleBVPerShare, tangible.Div(shares))
}

// =============================================================================
// STAGE 7: RETURNS
// =============================================================================

func returns(b *frame.Builder) {
	netIncome := flow(b, li.NetIncome)
	nopat := derived(b, EBIT).Sub(flow(b, li.IncomeTaxExp))
	invested := frame.Sum(derived(b, TotalDebt), status(b, li.TotalEquity), status(b, li.LeaseLiabilities))
	avgInvested := invested.Avg()

	b.Add(ROE, netIncome.Div(status(b, li.TotalEquity)))
	b.Add(ROA, netIncome.Div(status(b, li.TotalAssets)))
	b.Add(ReturnOnCapital, netIncome.Div(derived(b, TotalCapital)))
	b.Add(ReturnOnCommonEquity, derived(b, NetIncomeCommon).Div(derived(b, CommonEquity)))
	b.Add(NOPAT, nopat)
	b.Add(InvestedCapital, invested)
	b.Add(AvgInvestedCapital, avgInvested)
	b.Add(ROIC, nopat.Div(avgInvested))
}

// =============================================================================
// STAGE 8: EFFICIENCY
// =============================================================================

// efficiency computes turnovers against the average of the current and preceding
// balance, and the day counts derived from them.
func efficiency(b *frame.Builder) {
	revenue := flow(b, li.Revenue)
	cogs := flow(b, li.COGS)

	receivablesTurnover := revenue.Div(derived(b, TotalReceivables).Avg())
	inventoryTurnover := cogs.Div(status(b, li.Inventory).Avg())
	payablesTurnover := cogs.Div(derived(b, APTotal).Avg())

	dso := days(receivablesTurnover)
	dio := days(inventoryTurnover)
	dpo := days(payablesTurnover)

	b.Add(ReceivablesTurnover, receivablesTurnover)
	b.Add(FixedAssetsTurnover, revenue.Div(derived(b, TotalPPEKoyfin).Avg()))
	b.Add(InventoryTurnover, inventoryTurnover)
	b.Add(AssetTurnover, revenue.Div(status(b, li.TotalAssets).Avg()))
	b.Add(DaysOutstandingInventory, dio)
	b.Add(DaysSalesOutstanding, dso)
	b.Add(DaysPayableOutstanding, dpo)
	b.Add(CashConversionCycle, dso.Add(dio).Sub(dpo))
}

func days(turnover frame.Series) frame.Series {
	return frame.Const(len(turnover), frame.Of(daysPerYear)).Div(turnover)
}
