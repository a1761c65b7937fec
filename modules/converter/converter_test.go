package converter

import "testing"

func TestConvert(t *testing.T) {
	rows := Convert(1)
	if len(rows) != 4 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0].Amount != "1,96 DM" {
		t.Errorf("DM amount = %q", rows[0].Amount)
	}
	if rows[1].Amount != "13,76 öS" {
		t.Errorf("Schilling amount = %q", rows[1].Amount)
	}
}

func TestConvertZero(t *testing.T) {
	for _, row := range Convert(0) {
		if row.Amount[:4] != "0,00" {
			t.Errorf("amount = %q", row.Amount)
		}
	}
}

func TestFormatAmountUsesComma(t *testing.T) {
	if got := formatAmount(1234.5); got != "1234,50" {
		t.Errorf("formatAmount = %q", got)
	}
}
