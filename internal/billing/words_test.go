package billing

import "testing"

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rupees Zero Only"},
		{1, "Rupees One Only"},
		{19, "Rupees Nineteen Only"},
		{20, "Rupees Twenty Only"},
		{21, "Rupees Twenty One Only"},
		{100, "Rupees One Hundred Only"},
		{118, "Rupees One Hundred Eighteen Only"},
		{5250, "Rupees Five Thousand Two Hundred Fifty Only"},
		{100000, "Rupees One Lakh Only"},
		{2550750, "Rupees Twenty Five Lakh Fifty Thousand Seven Hundred Fifty Only"},
		{10000000, "Rupees One Crore Only"},
		{12345678, "Rupees One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
		{1050.50, "Rupees One Thousand Fifty and Fifty Paise Only"},
		{99.99, "Rupees Ninety Nine and Ninety Nine Paise Only"},
		{0.05, "Rupees Zero and Five Paise Only"},
	}

	for _, tt := range tests {
		if got := AmountInWords(tt.amount); got != tt.want {
			t.Errorf("AmountInWords(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestAmountInWordsRoundsPaise(t *testing.T) {
	// 1.005 is stored as slightly under 1.005 in binary; rounding at the
	// paisa level must still be stable for representable 2dp values.
	if got := AmountInWords(2.50); got != "Rupees Two and Fifty Paise Only" {
		t.Errorf("AmountInWords(2.50) = %q", got)
	}
}

func TestAmountInWordsFallback(t *testing.T) {
	if got := AmountInWords(-10); got != "Rupees -10.00 Only" {
		t.Errorf("AmountInWords(-10) = %q", got)
	}
}
