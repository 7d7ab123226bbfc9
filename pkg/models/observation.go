package models

import (
	"time"
)

// Observation is one reported accounting fact for an entity and period.
// Several observations may share (EntityID, ReportPeriod, RawLabel) after restatements;
// UpdatedAt orders them and the latest wins.
type Observation struct {
	EntityID         string    `json:"entity_id"`
	ReportPeriod     time.Time `json:"report_period"`
	StatementType    string    `json:"statement_type"` // balance_sheet, income_statement, cash_flow
	RawLabel         string    `json:"raw_label"`
	Value            float64   `json:"value"`
	Source           string    `json:"source"`
	IsAudited        string    `json:"is_audited"`
	AnnouncementDate time.Time `json:"announcement_date"`
	Currency         string    `json:"currency"`
	ReportType       string    `json:"report_type"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MarketCapSample is the total market capitalization on a trading date, in currency units.
type MarketCapSample struct {
	Date      time.Time `json:"date"`
	MarketCap float64   `json:"market_cap"`
}

// TableKind names one of the two output tables.
type TableKind string

const (
	TableLTM    TableKind = "ltm"
	TableAnnual TableKind = "annual"
)
