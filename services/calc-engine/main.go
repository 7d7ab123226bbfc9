package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"fin_metrics/pkg/core/ingest"
	"fin_metrics/pkg/core/lineitem"
	"fin_metrics/pkg/core/pipeline"
	"fin_metrics/pkg/core/validate"
	"fin_metrics/pkg/models"
)

// StatementTotals is the payload of check mode.
type StatementTotals struct {
	Assets          float64 `json:"assets"`
	Liabilities     float64 `json:"liabilities"`
	Equity          float64 `json:"equity"`
	OperatingCF     float64 `json:"operating_cf"`
	InvestingCF     float64 `json:"investing_cf"`
	FinancingCF     float64 `json:"financing_cf"`
	FXEffect        float64 `json:"fx_effect"`
	NetChangeInCash float64 `json:"net_change_in_cash"`
}

func main() {
	mode := flag.String("mode", "calculate", "Mode: check or calculate")
	dataStr := flag.String("data", "", "check: JSON statement totals")
	file := flag.String("file", "", "calculate: long-format observation CSV")
	entity := flag.String("entity", "", "calculate: entity id to keep from the file")
	table := flag.String("table", "ltm", "calculate: ltm or annual")
	tolerance := flag.Float64("tolerance", 0.01, "relative tolerance for check mode")
	flag.Parse()

	switch *mode {
	case "check":
		if *dataStr == "" {
			fmt.Println("Error: No data provided")
			os.Exit(1)
		}
		var data StatementTotals
		if err := json.Unmarshal([]byte(*dataStr), &data); err != nil {
			fmt.Printf("Error unmarshaling data: %v\n", err)
			os.Exit(1)
		}
		if !runChecks(os.Stdout, data, *tolerance) {
			os.Exit(1)
		}
	case "calculate":
		if err := runCalculations(os.Stdout, *file, *entity, models.TableKind(*table)); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown mode: %s\n", *mode)
		os.Exit(2)
	}
}

func runChecks(w io.Writer, data StatementTotals, tolerance float64) bool {
	ok := true
	bs := validate.CheckBalanceEquation(data.Assets, data.Liabilities, data.Equity, tolerance)
	if bs.IsBalanced {
		fmt.Fprintln(w, "Success: Assets = L + E")
	} else {
		fmt.Fprintf(w, "Error: Accounting Identity Imbalance (Diff: %f)\n", bs.Difference)
		ok = false
	}

	if data.NetChangeInCash != 0 {
		cf := validate.CheckCashFlowEquation(data.OperatingCF, data.InvestingCF, data.FinancingCF, data.FXEffect, data.NetChangeInCash, tolerance*math.Abs(data.NetChangeInCash))
		if cf.IsBalanced {
			fmt.Fprintln(w, "Success: CFO + CFI + CFF + FX = Net Change")
		} else {
			fmt.Fprintf(w, "Error: Cash Flow Imbalance (Diff: %f)\n", cf.Difference)
			ok = false
		}
	}
	return ok
}

// runCalculations derives the tables for one file without writing anything and prints the
// latest row as JSON.
func runCalculations(w io.Writer, path, entity string, kind models.TableKind) error {
	if path == "" {
		return fmt.Errorf("no -file provided")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	obs, err := ingest.ReadObservationsCSV(f, entity)
	if err != nil {
		return err
	}
	if entity == "" && len(obs) > 0 {
		entity = obs[0].EntityID
	}

	p := pipeline.NewPipelineOrchestrator(nil, lineitem.Default(), nil)
	res, err := p.Compute(entity, obs, nil)
	if err != nil {
		return err
	}
	t := res.Table(kind)
	if t == nil {
		return fmt.Errorf("unknown table %q", kind)
	}
	if t.Len() == 0 {
		return fmt.Errorf("no %s rows for %s", kind, entity)
	}

	last := t.Len() - 1
	row := make(map[string]interface{}, len(t.Columns())+1)
	row["report_period"] = t.Period(last).Format("2006-01-02")
	for _, name := range t.Columns() {
		row[name] = t.Cell(name, last)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(row)
}
