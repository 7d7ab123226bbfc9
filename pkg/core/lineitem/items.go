// Package lineitem maps raw, locale-specific accounting labels onto the canonical
// line-item vocabulary and classifies every canonical item as a flow or status quantity.
package lineitem

// Kind separates point-in-time balances from period-cumulative activity.
type Kind int

const (
	// Flow items accumulate from the start of the fiscal year (revenue, expenses, cash flows).
	Flow Kind = iota
	// Status items are balances at an instant (assets, liabilities, equity).
	Status
)

func (k Kind) String() string {
	if k == Status {
		return "status"
	}
	return "flow"
}

// Item is one canonical concept.
type Item struct {
	Name string
	Kind Kind
}

// Canonical item names.
const (
	// Income statement
	Revenue                      = "Revenue"
	TotalRevenueGross            = "Total_Revenue_Gross"
	OtherBusinessRevenue         = "Other_Business_Revenue"
	OtherBusinessProfit          = "Other_Business_Profit"
	OtherBusinessCost            = "Other_Business_Cost"
	COGS                         = "COGS"
	TotalOperatingCost           = "Total_Operating_Cost"
	OperatingIncome              = "Operating_Income"
	PretaxIncome                 = "Pretax_Income"
	IncomeTaxExp                 = "Income_Tax_Exp"
	NetIncome                    = "Net_Income"
	NetIncomeParent              = "Net_Income_Parent"
	MinorityInterestIncome       = "Minority_Interest_Income"
	ContinuingOperationsIncome   = "Continuing_Operations_Income"
	SellingExp                   = "Selling_Exp"
	AdminExp                     = "Admin_Exp"
	RDExp                        = "RD_Exp"
	FinExp                       = "Fin_Exp"
	InterestInc                  = "Interest_Inc"
	InterestExp                  = "Interest_Exp"
	InterestExpAlt               = "Interest_Exp_Alt"
	TaxesSurcharges              = "Taxes_Surcharges"
	AssetImpairment              = "Asset_Impairment"
	CreditImpairment             = "Credit_Impairment"
	AssetDisposalGain            = "Asset_Disposal_Gain"
	NonCurrentAssetDisposalGain  = "NonCurrent_Asset_Disposal_Gain"
	NonCurrentAssetDisposalLoss  = "NonCurrent_Asset_Disposal_Loss"
	InvestmentIncome             = "Investment_Income"
	EquityMethodIncome           = "Equity_Method_Income"
	FVChangeIncome               = "FV_Change_Income"
	OtherIncome                  = "Other_Income"
	NonOperatingIncome           = "Non_Operating_Income"
	NonOperatingExp              = "Non_Operating_Exp"
	FXGain                       = "FX_Gain"
	EPS                          = "EPS"
	DilutedEPS                   = "Diluted_EPS"

	// Balance sheet: assets
	TotalAssets                   = "Total_Assets"
	TotalCurrentAssets            = "Total_Current_Assets"
	CashEquivalents               = "Cash_Equivalents"
	ShortTermInvestments          = "Short_Term_Investments"
	AccountsReceivable            = "Accounts_Receivable"
	NotesReceivable               = "Notes_Receivable"
	NotesARCombined               = "Notes_AR_Combined"
	FinancingReceivables          = "Financing_Receivables"
	PrepaidExpenses               = "Prepaid_Expenses"
	OtherReceivables              = "Other_Receivables"
	OtherReceivablesTotal         = "Other_Receivables_Total"
	Inventory                     = "Inventory"
	ContractAssets                = "Contract_Assets"
	OtherCurrentAssets            = "Other_Current_Assets"
	TotalNonCurrentAssets         = "Total_NonCurrent_Assets"
	NetPPE                        = "Net_PPE"
	GrossPPE                      = "Gross_PPE"
	AccumulatedDepreciation       = "Accumulated_Depreciation"
	ConstructionInProgress        = "Construction_In_Progress"
	ConstructionInProgressTotal   = "Construction_In_Progress_Total"
	IntangibleAssets              = "Intangible_Assets"
	DevelopmentCosts              = "Development_Costs"
	Goodwill                      = "Goodwill"
	LTEquityInvestment            = "LT_Equity_Investment"
	OtherEquityInvestments        = "Other_Equity_Investments"
	OtherNonCurrentFinancialAsset = "Other_NonCurrent_Financial_Assets"
	InvestmentProperty            = "Investment_Property"
	DeferredTaxAsset              = "Deferred_Tax_Asset"
	OtherNonCurrentAssets         = "Other_NonCurrent_Assets"
	RightOfUseAssets              = "Right_Of_Use_Assets"
	LTPrepaidExpenses             = "LT_Prepaid_Expenses"
	LTReceivables                 = "LT_Receivables"

	// Balance sheet: liabilities
	TotalLiabilities           = "Total_Liabilities"
	TotalCurrentLiabilities    = "Total_Current_Liabilities"
	ShortTermDebt              = "Short_Term_Debt"
	AccountsPayable            = "Accounts_Payable"
	NotesPayable               = "Notes_Payable"
	NotesAPCombined            = "Notes_AP_Combined"
	UnearnedRevenue            = "Unearned_Revenue"
	ContractLiabilities        = "Contract_Liabilities"
	EmployeeBenefitsPayable    = "Employee_Benefits_Payable"
	TaxesPayable               = "Taxes_Payable"
	OtherPayables              = "Other_Payables"
	OtherPayablesTotal         = "Other_Payables_Total"
	CurrentPortionLTDebt       = "Current_Portion_LT_Debt"
	OtherCurrentLiabilities    = "Other_Current_Liabilities"
	TotalNonCurrentLiabilities = "Total_NonCurrent_Liabilities"
	LongTermDebt               = "Long_Term_Debt"
	BondsPayable               = "Bonds_Payable"
	LeaseLiabilities           = "Lease_Liabilities"
	LTPayables                 = "LT_Payables"
	LTPayablesTotal            = "LT_Payables_Total"
	LTEmployeeBenefits         = "LT_Employee_Benefits"
	DeferredTaxLiability       = "Deferred_Tax_Liability"
	DeferredRevenue            = "Deferred_Revenue"
	LTDeferredRevenue          = "LT_Deferred_Revenue"
	OtherNonCurrentLiabilities = "Other_NonCurrent_Liabilities"
	AccruedLiabilities         = "Accrued_Liabilities"

	// Balance sheet: equity
	TotalEquity              = "Total_Equity"
	EquityParent             = "Equity_Parent"
	MinorityInterest         = "Minority_Interest"
	CommonStock              = "Common_Stock"
	AdditionalPaidInCapital  = "Additional_Paid_In_Capital"
	SurplusReserve           = "Surplus_Reserve"
	RetainedEarnings         = "Retained_Earnings"
	TreasuryStock            = "Treasury_Stock"
	OtherComprehensiveIncome = "Other_Comprehensive_Income"

	// Cash flow
	OCF                         = "OCF"
	ICF                         = "ICF"
	CFF                         = "CFF"
	CapEx                       = "CapEx"
	DividendsPaid               = "Dividends_Paid"
	CashFromSales               = "Cash_From_Sales"
	TaxRefunds                  = "Tax_Refunds"
	EmployeeCashPaid            = "Employee_Cash_Paid"
	TaxesPaid                   = "Taxes_Paid"
	ProceedsFromBorrowings      = "Proceeds_From_Borrowings"
	RepaymentOfDebt             = "Repayment_Of_Debt"
	ProceedsFromEquity          = "Proceeds_From_Equity"
	NetChangeInCash             = "Net_Change_In_Cash"
	ProceedsFromAssetSales      = "Proceeds_From_Asset_Sales"
	CashForInvestments          = "Cash_For_Investments"
	ProceedsFromInvestmentSales = "Proceeds_From_Investment_Sales"
	CashFromInvestmentIncome    = "Cash_From_Investment_Income"
	FXEffect                    = "FX_Effect"
	BeginningCash               = "Beginning_Cash"
	EndingCash                  = "Ending_Cash"
	OtherOperatingCashIn        = "Other_Operating_Cash_In"
	OtherOperatingCashOut       = "Other_Operating_Cash_Out"
	CashPaidForGoods            = "Cash_Paid_For_Goods"
	OtherInvestingCashIn        = "Other_Investing_Cash_In"
	OtherInvestingCashOut       = "Other_Investing_Cash_Out"
	CashAcquisitions            = "Cash_Acquisitions"
	CashDivestitures            = "Cash_Divestitures"
	OtherFinancingCashIn        = "Other_Financing_Cash_In"
	OtherFinancingCashOut       = "Other_Financing_Cash_Out"
	MinorityInvestmentReceived  = "Minority_Investment_Received"
	MinorityDividendsPaid       = "Minority_Dividends_Paid"
	BondIssuance                = "Bond_Issuance"
	OperatingCashInflow         = "Operating_Cash_Inflow"
	OperatingCashOutflow        = "Operating_Cash_Outflow"
	InvestingCashInflow         = "Investing_Cash_Inflow"
	InvestingCashOutflow        = "Investing_Cash_Outflow"
	FinancingCashInflow         = "Financing_Cash_Inflow"
	FinancingCashOutflow        = "Financing_Cash_Outflow"
)

// catalog is the canonical vocabulary in output column order.
var catalog = []Item{
	{Revenue, Flow}, {TotalRevenueGross, Flow}, {OtherBusinessRevenue, Flow},
	{OtherBusinessProfit, Flow}, {OtherBusinessCost, Flow},
	{COGS, Flow}, {TotalOperatingCost, Flow}, {OperatingIncome, Flow}, {PretaxIncome, Flow},
	{IncomeTaxExp, Flow}, {NetIncome, Flow}, {NetIncomeParent, Flow},
	{MinorityInterestIncome, Flow}, {ContinuingOperationsIncome, Flow},
	{SellingExp, Flow}, {AdminExp, Flow}, {RDExp, Flow}, {FinExp, Flow},
	{InterestInc, Flow}, {InterestExp, Flow}, {InterestExpAlt, Flow}, {TaxesSurcharges, Flow},
	{AssetImpairment, Flow}, {CreditImpairment, Flow}, {AssetDisposalGain, Flow},
	{NonCurrentAssetDisposalGain, Flow}, {NonCurrentAssetDisposalLoss, Flow},
	{InvestmentIncome, Flow}, {EquityMethodIncome, Flow}, {FVChangeIncome, Flow},
	{OtherIncome, Flow}, {NonOperatingIncome, Flow}, {NonOperatingExp, Flow}, {FXGain, Flow},
	{EPS, Flow}, {DilutedEPS, Flow},

	{TotalAssets, Status}, {TotalCurrentAssets, Status}, {CashEquivalents, Status},
	{ShortTermInvestments, Status}, {AccountsReceivable, Status}, {NotesReceivable, Status},
	{NotesARCombined, Status}, {FinancingReceivables, Status}, {PrepaidExpenses, Status},
	{OtherReceivables, Status}, {OtherReceivablesTotal, Status}, {Inventory, Status},
	{ContractAssets, Status}, {OtherCurrentAssets, Status}, {TotalNonCurrentAssets, Status},
	{NetPPE, Status}, {GrossPPE, Status}, {AccumulatedDepreciation, Status},
	{ConstructionInProgress, Status}, {ConstructionInProgressTotal, Status},
	{IntangibleAssets, Status}, {DevelopmentCosts, Status}, {Goodwill, Status},
	{LTEquityInvestment, Status}, {OtherEquityInvestments, Status},
	{OtherNonCurrentFinancialAsset, Status}, {InvestmentProperty, Status},
	{DeferredTaxAsset, Status}, {OtherNonCurrentAssets, Status}, {RightOfUseAssets, Status},
	{LTPrepaidExpenses, Status}, {LTReceivables, Status},

	{TotalLiabilities, Status}, {TotalCurrentLiabilities, Status}, {ShortTermDebt, Status},
	{AccountsPayable, Status}, {NotesPayable, Status}, {NotesAPCombined, Status},
	{UnearnedRevenue, Status}, {ContractLiabilities, Status}, {EmployeeBenefitsPayable, Status},
	{TaxesPayable, Status}, {OtherPayables, Status}, {OtherPayablesTotal, Status},
	{CurrentPortionLTDebt, Status}, {OtherCurrentLiabilities, Status},
	{TotalNonCurrentLiabilities, Status}, {LongTermDebt, Status}, {BondsPayable, Status},
	{LeaseLiabilities, Status}, {LTPayables, Status}, {LTPayablesTotal, Status},
	{LTEmployeeBenefits, Status}, {DeferredTaxLiability, Status}, {DeferredRevenue, Status},
	{LTDeferredRevenue, Status}, {OtherNonCurrentLiabilities, Status}, {AccruedLiabilities, Status},

	{TotalEquity, Status}, {EquityParent, Status}, {MinorityInterest, Status},
	{CommonStock, Status}, {AdditionalPaidInCapital, Status}, {SurplusReserve, Status},
	{RetainedEarnings, Status}, {TreasuryStock, Status}, {OtherComprehensiveIncome, Status},

	{OCF, Flow}, {ICF, Flow}, {CFF, Flow}, {CapEx, Flow}, {DividendsPaid, Flow},
	{CashFromSales, Flow}, {TaxRefunds, Flow}, {EmployeeCashPaid, Flow}, {TaxesPaid, Flow},
	{ProceedsFromBorrowings, Flow}, {RepaymentOfDebt, Flow}, {ProceedsFromEquity, Flow},
	{NetChangeInCash, Flow}, {ProceedsFromAssetSales, Flow}, {CashForInvestments, Flow},
	{ProceedsFromInvestmentSales, Flow}, {CashFromInvestmentIncome, Flow}, {FXEffect, Flow},
	{BeginningCash, Status}, {EndingCash, Status},
	{OtherOperatingCashIn, Flow}, {OtherOperatingCashOut, Flow}, {CashPaidForGoods, Flow},
	{OtherInvestingCashIn, Flow}, {OtherInvestingCashOut, Flow}, {CashAcquisitions, Flow},
	{CashDivestitures, Flow}, {OtherFinancingCashIn, Flow}, {OtherFinancingCashOut, Flow},
	{MinorityInvestmentReceived, Flow}, {MinorityDividendsPaid, Flow}, {BondIssuance, Flow},
	{OperatingCashInflow, Flow}, {OperatingCashOutflow, Flow},
	{InvestingCashInflow, Flow}, {InvestingCashOutflow, Flow},
	{FinancingCashInflow, Flow}, {FinancingCashOutflow, Flow},
}

// forwardFilled are the status totals carried into periods without a balance-sheet filing.
var forwardFilled = map[string]bool{
	TotalAssets:             true,
	TotalLiabilities:        true,
	TotalEquity:             true,
	TotalCurrentAssets:      true,
	TotalCurrentLiabilities: true,
	GrossPPE:                true,
	AccumulatedDepreciation: true,
}

// ForwardFilled reports whether the item is carried forward when a period lacks it.
func ForwardFilled(name string) bool {
	return forwardFilled[name]
}

// Catalog returns the canonical vocabulary in column order.
func Catalog() []Item {
	out := make([]Item, len(catalog))
	copy(out, catalog)
	return out
}
