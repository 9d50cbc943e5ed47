package billing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		rate     float64
		want     Amounts
	}{
		{
			name:     "hundred meters at fifty",
			quantity: 100,
			rate:     50,
			want:     Amounts{Base: 5000, CGST: 125, SGST: 125, Total: 5250},
		},
		{
			name:     "fractional quantity",
			quantity: 12.5,
			rate:     80,
			want:     Amounts{Base: 1000, CGST: 25, SGST: 25, Total: 1050},
		},
		{
			name:     "zero rate",
			quantity: 40,
			rate:     0,
			want:     Amounts{},
		},
		{
			name:     "zero quantity",
			quantity: 0,
			rate:     75,
			want:     Amounts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.quantity, tt.rate)
			if !almostEqual(got.Base, tt.want.Base) ||
				!almostEqual(got.CGST, tt.want.CGST) ||
				!almostEqual(got.SGST, tt.want.SGST) ||
				!almostEqual(got.Total, tt.want.Total) {
				t.Errorf("Compute(%v, %v) = %+v, want %+v", tt.quantity, tt.rate, got, tt.want)
			}
		})
	}
}

func TestComputeTaxSplit(t *testing.T) {
	a := Compute(333.33, 47.5)
	if !almostEqual(a.CGST, a.SGST) {
		t.Errorf("CGST %v != SGST %v", a.CGST, a.SGST)
	}
	if !almostEqual(a.Total, a.Base+a.CGST+a.SGST) {
		t.Errorf("Total %v != Base+CGST+SGST %v", a.Total, a.Base+a.CGST+a.SGST)
	}
}

func TestAggregate(t *testing.T) {
	items := []LineItem{
		{Quantity: 100, Rate: 50},
		{Quantity: 20, Rate: 12.5},
		{Quantity: 7.25, Rate: 40},
	}

	got := Aggregate(items)
	wantBase := 5000.0 + 250.0 + 290.0
	if !almostEqual(got.Base, wantBase) {
		t.Errorf("Base = %v, want %v", got.Base, wantBase)
	}
	if !almostEqual(got.Total, wantBase*1.05) {
		t.Errorf("Total = %v, want %v", got.Total, wantBase*1.05)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	forward := []LineItem{
		{Quantity: 3.7, Rate: 21.3},
		{Quantity: 150, Rate: 48.25},
		{Quantity: 0.05, Rate: 999},
	}
	reversed := []LineItem{forward[2], forward[1], forward[0]}

	a, b := Aggregate(forward), Aggregate(reversed)
	if !almostEqual(a.Total, b.Total) || !almostEqual(a.Base, b.Base) {
		t.Errorf("order changed the result: %+v vs %+v", a, b)
	}
}

func TestSplitTotal(t *testing.T) {
	got := SplitTotal(5250)
	if !almostEqual(got.Base, 5000) || !almostEqual(got.CGST, 125) || !almostEqual(got.SGST, 125) {
		t.Errorf("SplitTotal(5250) = %+v", got)
	}

	// Round-trips with Compute
	a := Compute(37.5, 42.75)
	b := SplitTotal(a.Total)
	if !almostEqual(a.Base, b.Base) || !almostEqual(a.CGST, b.CGST) {
		t.Errorf("round trip mismatch: %+v vs %+v", a, b)
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	if got != (Amounts{}) {
		t.Errorf("Aggregate(nil) = %+v, want zero", got)
	}
}
