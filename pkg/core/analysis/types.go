package analysis

import (
	"fin_metrics/pkg/core/calc"
	li "fin_metrics/pkg/core/lineitem"
)

// Growth pairs a headline metric with the column holding its growth rate.
type Growth struct {
	Source string
	Column string
}

// Headlines are the metrics annotated with year-over-year growth, in output order.
var Headlines = []Growth{
	{li.Revenue, "Rev_YoY"},
	{calc.GrossProfit, "Gross_Profit_YoY"},
	{calc.EBITDA, "EBITDA_YoY"},
	{li.NetIncome, "NetInc_YoY"},
	{li.EPS, "EPS_YoY"},
	{li.OCF, "OCF_YoY"},
	{li.CapEx, "CapEx_YoY"},
}
