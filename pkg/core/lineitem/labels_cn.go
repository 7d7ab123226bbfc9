package lineitem

// builtinLabels is the default label table for CN-GAAP statement feeds.
var builtinLabels = []struct {
	Label string
	Item  string
}{
	{"营业收入", "Revenue"},
	{"营业总收入", "Total_Revenue_Gross"},
	{"其他业务收入", "Other_Business_Revenue"},
	{"其他业务利润", "Other_Business_Profit"},
	{"其他业务成本", "Other_Business_Cost"},
	{"营业成本", "COGS"},
	{"营业总成本", "Total_Operating_Cost"},
	{"营业利润", "Operating_Income"},
	{"利润总额", "Pretax_Income"},
	{"所得税费用", "Income_Tax_Exp"},
	{"净利润", "Net_Income"},
	{"归属于母公司所有者的净利润", "Net_Income_Parent"},
	{"少数股东损益", "Minority_Interest_Income"},
	{"持续经营净利润", "Continuing_Operations_Income"},
	{"销售费用", "Selling_Exp"},
	{"管理费用", "Admin_Exp"},
	{"研发费用", "RD_Exp"},
	{"财务费用", "Fin_Exp"},
	{"利息收入", "Interest_Inc"},
	{"利息支出", "Interest_Exp"},
	{"利息费用", "Interest_Exp_Alt"},
	{"营业税金及附加", "Taxes_Surcharges"},
	{"资产减值损失", "Asset_Impairment"},
	{"信用减值损失", "Credit_Impairment"},
	{"资产处置收益", "Asset_Disposal_Gain"},
	{"非流动资产处置利得", "NonCurrent_Asset_Disposal_Gain"},
	{"非流动资产处置损失", "NonCurrent_Asset_Disposal_Loss"},
	{"投资收益", "Investment_Income"},
	{"对联营企业和合营企业的投资收益", "Equity_Method_Income"},
	{"公允价值变动收益", "FV_Change_Income"},
	{"其他收益", "Other_Income"},
	{"营业外收入", "Non_Operating_Income"},
	{"营业外支出", "Non_Operating_Exp"},
	{"汇兑收益", "FX_Gain"},
	{"基本每股收益", "EPS"},
	{"稀释每股收益", "Diluted_EPS"},
	{"资产总计", "Total_Assets"},
	{"流动资产合计", "Total_Current_Assets"},
	{"货币资金", "Cash_Equivalents"},
	{"交易性金融资产", "Short_Term_Investments"},
	{"应收账款", "Accounts_Receivable"},
	{"应收票据", "Notes_Receivable"},
	{"应收票据及应收账款", "Notes_AR_Combined"},
	{"应收款项融资", "Financing_Receivables"},
	{"预付款项", "Prepaid_Expenses"},
	{"其他应收款", "Other_Receivables"},
	{"其他应收款(合计)", "Other_Receivables_Total"},
	{"存货", "Inventory"},
	{"合同资产", "Contract_Assets"},
	{"其他流动资产", "Other_Current_Assets"},
	{"非流动资产合计", "Total_NonCurrent_Assets"},
	{"固定资产净额", "Net_PPE"},
	{"固定资产原值", "Gross_PPE"},
	{"累计折旧", "Accumulated_Depreciation"},
	{"在建工程", "Construction_In_Progress"},
	{"在建工程合计", "Construction_In_Progress_Total"},
	{"无形资产", "Intangible_Assets"},
	{"开发支出", "Development_Costs"},
	{"商誉", "Goodwill"},
	{"长期股权投资", "LT_Equity_Investment"},
	{"其他权益工具投资", "Other_Equity_Investments"},
	{"其他非流动金融资产", "Other_NonCurrent_Financial_Assets"},
	{"投资性房地产", "Investment_Property"},
	{"递延所得税资产", "Deferred_Tax_Asset"},
	{"其他非流动资产", "Other_NonCurrent_Assets"},
	{"使用权资产", "Right_Of_Use_Assets"},
	{"长期待摊费用", "LT_Prepaid_Expenses"},
	{"长期应收款", "LT_Receivables"},
	{"负债合计", "Total_Liabilities"},
	{"流动负债合计", "Total_Current_Liabilities"},
	{"短期借款", "Short_Term_Debt"},
	{"应付账款", "Accounts_Payable"},
	{"应付票据", "Notes_Payable"},
	{"应付票据及应付账款", "Notes_AP_Combined"},
	{"预收款项", "Unearned_Revenue"},
	{"合同负债", "Contract_Liabilities"},
	{"应付职工薪酬", "Employee_Benefits_Payable"},
	{"应交税费", "Taxes_Payable"},
	{"其他应付款", "Other_Payables"},
	{"其他应付款合计", "Other_Payables_Total"},
	{"一年内到期的非流动负债", "Current_Portion_LT_Debt"},
	{"其他流动负债", "Other_Current_Liabilities"},
	{"非流动负债合计", "Total_NonCurrent_Liabilities"},
	{"长期借款", "Long_Term_Debt"},
	{"应付债券", "Bonds_Payable"},
	{"租赁负债", "Lease_Liabilities"},
	{"长期应付款", "LT_Payables"},
	{"长期应付款合计", "LT_Payables_Total"},
	{"长期应付职工薪酬", "LT_Employee_Benefits"},
	{"递延所得税负债", "Deferred_Tax_Liability"},
	{"递延收益", "Deferred_Revenue"},
	{"长期递延收益", "LT_Deferred_Revenue"},
	{"其他非流动负债", "Other_NonCurrent_Liabilities"},
	{"预计流动负债", "Accrued_Liabilities"},
	{"所有者权益(或股东权益)合计", "Total_Equity"},
	{"归属于母公司股东权益合计", "Equity_Parent"},
	{"少数股东权益", "Minority_Interest"},
	{"实收资本(或股本)", "Common_Stock"},
	{"资本公积", "Additional_Paid_In_Capital"},
	{"盈余公积", "Surplus_Reserve"},
	{"未分配利润", "Retained_Earnings"},
	{"减:库存股", "Treasury_Stock"},
	{"其他综合收益", "Other_Comprehensive_Income"},
	{"经营活动产生的现金流量净额", "OCF"},
	{"投资活动产生的现金流量净额", "ICF"},
	{"筹资活动产生的现金流量净额", "CFF"},
	{"购建固定资产、无形资产和其他长期资产所支付的现金", "CapEx"},
	{"分配股利、利润或偿付利息所支付的现金", "Dividends_Paid"},
	{"销售商品、提供劳务收到的现金", "Cash_From_Sales"},
	{"收到的税费返还", "Tax_Refunds"},
	{"支付给职工以及为职工支付的现金", "Employee_Cash_Paid"},
	{"支付的各项税费", "Taxes_Paid"},
	{"取得借款收到的现金", "Proceeds_From_Borrowings"},
	{"偿还债务支付的现金", "Repayment_Of_Debt"},
	{"吸收投资收到的现金", "Proceeds_From_Equity"},
	{"现金及现金等价物净增加额", "Net_Change_In_Cash"},
	{"处置固定资产、无形资产和其他长期资产所收回的现金净额", "Proceeds_From_Asset_Sales"},
	{"投资所支付的现金", "Cash_For_Investments"},
	{"收回投资所收到的现金", "Proceeds_From_Investment_Sales"},
	{"取得投资收益收到的现金", "Cash_From_Investment_Income"},
	{"汇率变动对现金及现金等价物的影响", "FX_Effect"},
	{"期初现金及现金等价物余额", "Beginning_Cash"},
	{"期末现金及现金等价物余额", "Ending_Cash"},
	{"收到的其他与经营活动有关的现金", "Other_Operating_Cash_In"},
	{"支付的其他与经营活动有关的现金", "Other_Operating_Cash_Out"},
	{"购买商品、接受劳务支付的现金", "Cash_Paid_For_Goods"},
	{"收到的其他与投资活动有关的现金", "Other_Investing_Cash_In"},
	{"支付的其他与投资活动有关的现金", "Other_Investing_Cash_Out"},
	{"取得子公司及其他营业单位支付的现金净额", "Cash_Acquisitions"},
	{"处置子公司及其他营业单位收到的现金净额", "Cash_Divestitures"},
	{"收到其他与筹资活动有关的现金", "Other_Financing_Cash_In"},
	{"支付其他与筹资活动有关的现金", "Other_Financing_Cash_Out"},
	{"子公司吸收少数股东投资收到的现金", "Minority_Investment_Received"},
	{"子公司支付给少数股东的股利、利润", "Minority_Dividends_Paid"},
	{"发行债券收到的现金", "Bond_Issuance"},
	{"经营活动现金流入小计", "Operating_Cash_Inflow"},
	{"经营活动现金流出小计", "Operating_Cash_Outflow"},
	{"投资活动现金流入小计", "Investing_Cash_Inflow"},
	{"投资活动现金流出小计", "Investing_Cash_Outflow"},
	{"筹资活动现金流入小计", "Financing_Cash_Inflow"},
	{"筹资活动现金流出小计", "Financing_Cash_Outflow"},
}
