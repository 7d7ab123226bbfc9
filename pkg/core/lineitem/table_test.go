package lineitem

import (
	"os"
	"path/filepath"
	"testing"

	"fin_metrics/pkg/models"
)

func TestEveryLabelTargetsCatalogItem(t *testing.T) {
	tbl := Default()
	for _, l := range builtinLabels {
		if _, ok := tbl.Kind(l.Item); !ok {
			t.Errorf("label %q maps to %q which is not in the catalog", l.Label, l.Item)
		}
	}
}

func TestCatalogHasNoDuplicates(t *testing.T) {
	seen := map[string]bool{}
	for _, it := range Catalog() {
		if seen[it.Name] {
			t.Errorf("duplicate item %s", it.Name)
		}
		seen[it.Name] = true
	}
}

func TestBalanceSheetItemsAreStatus(t *testing.T) {
	tbl := Default()
	status := []string{
		TotalAssets, AccumulatedDepreciation, GrossPPE, FinancingReceivables,
		ContractAssets, TotalEquity, Inventory, BeginningCash, EndingCash,
	}
	for _, name := range status {
		if k, _ := tbl.Kind(name); k != Status {
			t.Errorf("%s should be status, got %s", name, k)
		}
	}
	flow := []string{Revenue, COGS, NetIncome, OCF, CapEx, EPS}
	for _, name := range flow {
		if k, _ := tbl.Kind(name); k != Flow {
			t.Errorf("%s should be flow, got %s", name, k)
		}
	}
}

func TestForwardFilledSetIsStatus(t *testing.T) {
	tbl := Default()
	for name := range forwardFilled {
		if k, ok := tbl.Kind(name); !ok || k != Status {
			t.Errorf("forward-filled item %s must be a known status item", name)
		}
	}
	if ForwardFilled(Revenue) {
		t.Error("flows are never forward filled")
	}
}

func TestNormalizeDropsUnmapped(t *testing.T) {
	obs := []models.Observation{
		{RawLabel: "营业收入", Value: 100},
		{RawLabel: " 资产总计 ", Value: 500},
		{RawLabel: "神秘科目", Value: 1},
		{RawLabel: "神秘科目", Value: 2},
	}
	mapped, unmapped := Default().Normalize(obs)
	if len(mapped) != 2 {
		t.Fatalf("expected 2 mapped rows, got %d", len(mapped))
	}
	if mapped[0].Item != Revenue || mapped[1].Item != TotalAssets {
		t.Errorf("unexpected items %s, %s", mapped[0].Item, mapped[1].Item)
	}
	if unmapped["神秘科目"] != 2 {
		t.Errorf("unmapped count = %v", unmapped)
	}
}

func TestExtendRejectsUnknownTarget(t *testing.T) {
	base := Default()
	if _, err := base.Extend(map[string]string{"营业额": "Turnover"}); err == nil {
		t.Error("expected error for an alias outside the vocabulary")
	}

	ext, err := base.Extend(map[string]string{"营业额": Revenue})
	if err != nil {
		t.Fatal(err)
	}
	if item, ok := ext.Lookup("营业额"); !ok || item != Revenue {
		t.Errorf("alias lookup = %q, %v", item, ok)
	}
	if _, ok := base.Lookup("营业额"); ok {
		t.Error("Extend must not modify the receiver")
	}
}

func TestLoadExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.yaml")
	body := "labels:\n  营业额: Revenue\n  总资产: Total_Assets\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	aliases, err := LoadExtensions(path)
	if err != nil {
		t.Fatal(err)
	}
	if aliases["总资产"] != TotalAssets || len(aliases) != 2 {
		t.Errorf("aliases = %v", aliases)
	}
}
