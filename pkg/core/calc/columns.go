package calc

// Derived column names, grouped by the stage that adds them.
const (
	// debt_and_cash
	TotalDebt = "Total_Debt"
	TotalCash = "Total_Cash"
	NetDebt   = "Net_Debt"
	EV        = "EV"

	// income_statement
	OtherRevenue                = "Other_Revenue"
	MainRevenue                 = "Main_Revenue"
	GrossProfit                 = "Gross_Profit"
	SGAExp                      = "SGA_Exp"
	OperatingExpenses           = "Operating_Expenses"
	OtherOperatingExp           = "Other_Operating_Exp"
	EBIT                        = "EBIT"
	NetInterestExp              = "Net_Interest_Exp"
	InterestAndInvestmentIncome = "Interest_And_Investment_Income"
	NonOperatingNet             = "Non_Operating_Net"
	GainOnAssetSale             = "Gain_On_Asset_Sale"
	GainOnInvestmentSale        = "Gain_On_Investment_Sale"
	TotalImpairment             = "Total_Impairment"
	OtherUnusualItems           = "Other_Unusual_Items"
	EBTExclUnusual              = "EBT_Excl_Unusual"
	EBTInclUnusual              = "EBT_Incl_Unusual"
	EarningsContinuing          = "Earnings_Continuing"
	NetIncomeCommon             = "Net_Income_Common"
	NormalizedNetIncome         = "Normalized_Net_Income"

	// depreciation
	DAEstimated  = "DA_Estimated"
	DAFromAccum  = "DA_From_Accum"
	TotalPPE     = "Total_PPE"
	DAFromPPE    = "DA_From_PPE"
	DA           = "DA"
	Depreciation = "Depreciation"
	Amortization = "Amortization"
	EBITDA       = "EBITDA"
	EBITA        = "EBITA"

	// margins
	GrossMargin               = "Gross_Margin"
	OperatingMargin           = "Operating_Margin"
	EBITDAMargin              = "EBITDA_Margin"
	EBITMargin                = "EBIT_Margin"
	EBTMargin                 = "EBT_Margin"
	EBTExclUnusualMargin      = "EBT_Excl_Unusual_Margin"
	SGAMargin                 = "SGA_Margin"
	NetMargin                 = "Net_Margin"
	NetAvailCommonMargin      = "Net_Avail_Common_Margin"
	NormalizedNetIncomeMargin = "Normalized_Net_Income_Margin"
	EBITAMargin               = "EBITA_Margin"

	// balance_sheet
	WorkingCapital           = "Working_Capital"
	WorkingCapitalChange     = "Working_Capital_Change"
	ARTotal                  = "AR_Total"
	APTotal                  = "AP_Total"
	ChangeInAR               = "Change_In_AR"
	ChangeInInventory        = "Change_In_Inventory"
	ChangeInAP               = "Change_In_AP"
	ChangeInPrepaid          = "Change_In_Prepaid"
	ChangeInOtherReceivables = "Change_In_Other_Receivables"
	ChangeInOtherPayables    = "Change_In_Other_Payables"
	ChangeInUnearned         = "Change_In_Unearned"
	TotalReceivables         = "Total_Receivables"
	CIP                      = "CIP"
	TotalPPEKoyfin           = "Total_PPE_Koyfin"
	UnearnedRevenueTotal     = "Unearned_Revenue_Total"
	UnearnedRevenueNonCur    = "Unearned_Revenue_NonCurrent"
	OtherReceivablesFinal    = "Other_Receivables_Final"
	CommonEquity             = "Common_Equity"
	TotalCapital             = "Total_Capital"
	TangibleBookValue        = "Tangible_Book_Value"
	SharesOutstanding        = "Shares_Outstanding"
	BookValuePerShare        = "Book_Value_Per_Share"
	TangibleBVPerShare       = "Tangible_BV_Per_Share"

	// returns
	ROE                  = "ROE"
	ROA                  = "ROA"
	ReturnOnCapital      = "Return_On_Capital"
	ReturnOnCommonEquity = "Return_On_Common_Equity"
	NOPAT                = "NOPAT"
	InvestedCapital      = "Invested_Capital"
	AvgInvestedCapital   = "Avg_Invested_Capital"
	ROIC                 = "ROIC"

	// efficiency
	ReceivablesTurnover      = "Receivables_Turnover"
	FixedAssetsTurnover      = "Fixed_Assets_Turnover"
	InventoryTurnover        = "Inventory_Turnover"
	AssetTurnover            = "Asset_Turnover"
	DaysOutstandingInventory = "Days_Outstanding_Inventory"
	DaysSalesOutstanding     = "Days_Sales_Outstanding"
	DaysPayableOutstanding   = "Days_Payable_Outstanding"
	CashConversionCycle      = "Cash_Conversion_Cycle"

	// cash_flow
	FCF                      = "FCF"
	FCFPerShare              = "FCF_Per_Share"
	FCFYield                 = "FCF_Yield"
	TotalDebtIssued          = "Total_Debt_Issued"
	TotalDebtRepaid          = "Total_Debt_Repaid"
	NetDebtIssued            = "Net_Debt_Issued"
	CommonDividendsPaid      = "Common_Dividends_Paid"
	OtherOperatingActivities = "Other_Operating_Activities"
	OtherInvestingActivities = "Other_Investing_Activities"
	OtherFinancingActivities = "Other_Financing_Activities"
	InvestmentInSecurities   = "Investment_In_Securities"

	// multiples
	PE          = "PE"
	PS          = "PS"
	PB          = "PB"
	PTangibleBV = "P_TangibleBV"
	EVSales     = "EV_Sales"
	EVEBITDA    = "EV_EBITDA"
	EVEBIT      = "EV_EBIT"
	EVOCF       = "EV_OCF"

	// solvency
	DebtToEquity                   = "Debt_to_Equity"
	DebtToCapital                  = "Debt_to_Capital"
	LTDebtToEquity                 = "LT_Debt_to_Equity"
	LTDebtToCapital                = "LT_Debt_to_Capital"
	LiabilitiesToAssets            = "Liabilities_to_Assets"
	InterestCoverageEBIT           = "Interest_Coverage_EBIT"
	InterestCoverageEBITDA         = "Interest_Coverage_EBITDA"
	InterestCoverageEBITDACapEx    = "Interest_Coverage_EBITDA_CapEx"
	DebtToEBITDA                   = "Debt_to_EBITDA"
	NetDebtToEBITDA                = "Net_Debt_to_EBITDA"
	CurrentRatio                   = "Current_Ratio"
	QuickRatio                     = "Quick_Ratio"
	OperatingCashFlowToCurrentLiab = "Operating_Cash_Flow_to_Current_Liabilities"
	AltmanZScore                   = "Altman_Z_Score"
)
