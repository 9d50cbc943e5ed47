package billing

import (
	"fmt"
	"math"
	"strings"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// AmountInWords spells out a rupee amount using Indian grouping
// (crore, lakh, thousand, hundred). Paise are rounded to the nearest whole
// paisa. Negative or non-finite amounts fall back to the plain numeric form
// since they never appear on a valid document.
func AmountInWords(amount float64) string {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprintf("Rupees %.2f Only", amount)
	}

	paiseTotal := int64(math.Round(amount * 100))
	rupees := paiseTotal / 100
	paise := paiseTotal % 100

	rupeeWords := integerInWords(rupees)
	if paise == 0 {
		return fmt.Sprintf("Rupees %s Only", rupeeWords)
	}
	return fmt.Sprintf("Rupees %s and %s Paise Only", rupeeWords, integerInWords(paise))
}

// integerInWords handles 0 through the crore range, which comfortably covers
// any invoice this system will ever produce.
func integerInWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var parts []string
	appendPart := func(v int64, label string) {
		if v > 0 {
			w := belowThousand(v)
			if label != "" {
				w += " " + label
			}
			parts = append(parts, w)
		}
	}

	appendPart(n/10000000, "Crore")
	n %= 10000000
	appendPart(n/100000, "Lakh")
	n %= 100000
	appendPart(n/1000, "Thousand")
	n %= 1000
	appendPart(n, "")

	return strings.Join(parts, " ")
}

func belowThousand(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100]+" Hundred")
		n %= 100
	}
	if n >= 20 {
		if n%10 != 0 {
			parts = append(parts, tensWords[n/10]+" "+onesWords[n%10])
		} else {
			parts = append(parts, tensWords[n/10])
		}
	} else if n > 0 {
		parts = append(parts, onesWords[n])
	}
	return strings.Join(parts, " ")
}
