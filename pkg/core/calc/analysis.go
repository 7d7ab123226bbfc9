package calc

import "fin_metrics/pkg/core/frame"

// =============================================================================
// RISK MODELS
// =============================================================================

// AltmanZDoublePrime is the emerging-market Altman score, which needs no market value
// of equity and no sales term.
// Z'' = 6.56A + 3.26B + 6.72C + 1.05D
// A = Working Capital / Total Assets
// B = Retained Earnings / Total Assets
// C = EBIT / Total Assets
// D = Book Value of Equity / Total Liabilities
// Any Unknown term, or zero assets or liabilities, yields Unknown.
func AltmanZDoublePrime(wc, re, ebit, equity, ta, tl frame.Num) frame.Num {
	a := wc.Div(ta)
	b := re.Div(ta)
	c := ebit.Div(ta)
	d := equity.Div(tl)
	return a.Scale(6.56).
		Add(b.Scale(3.26)).
		Add(c.Scale(6.72)).
		Add(d.Scale(1.05))
}
