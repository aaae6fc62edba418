package cost

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups thousands for amounts below one lakh, where Indian and
// international grouping agree.
var printer = message.NewPrinter(language.English)

// FormatINR renders an amount in rupees, abbreviating crores (Cr) and
// lakhs (L) to one decimal.
func FormatINR(amount float64) string {
	switch {
	case amount >= Crore:
		return fmt.Sprintf("₹%.1f Cr", amount/Crore)
	case amount >= Lakh:
		return fmt.Sprintf("₹%.1f L", amount/Lakh)
	case amount >= Thousand:
		return "₹" + groupThousands(amount)
	default:
		return fmt.Sprintf("₹%s", trimFloat(amount))
	}
}

// minPaybackYears is the display resolution of a payback period.
const minPaybackYears = 0.1

// FormatPayback renders a payback period for display. A finite period that
// rounds below the display resolution reads "< 0.1 years".
func FormatPayback(p Payback) string {
	if !p.Applicable() {
		return "N/A"
	}
	if p.Years < minPaybackYears {
		return fmt.Sprintf("< %s years", trimFloat(minPaybackYears))
	}
	return fmt.Sprintf("%s years", trimFloat(p.Years))
}

// groupThousands separates the whole part of amount with commas and keeps
// up to three fraction digits.
func groupThousands(amount float64) string {
	amount = math.Round(amount*1000) / 1000
	whole, frac, _ := strings.Cut(strconv.FormatFloat(amount, 'f', -1, 64), ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return fmt.Sprintf("%g", amount)
	}
	out := printer.Sprintf("%d", n)
	if frac != "" {
		out += "." + frac
	}
	return out
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
