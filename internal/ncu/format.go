package ncu

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// grouped prints numbers with English-locale digit grouping ("12,345").
var grouped = message.NewPrinter(language.English)

// FormatNumericValue normalizes a metric value for display. Only values
// already containing a comma are reformatted; everything else passes
// through untouched, commas being the sole trigger. For comma-bearing
// values the commas are stripped and the value reparsed: large integers are
// regrouped, large non-integers are regrouped with two decimal places, and
// values under 1000 keep the stripped form. Unparseable input is returned
// as given. It never fails.
func FormatNumericValue(value string) string {
	if value == "" {
		return ""
	}
	if !strings.Contains(value, ",") {
		return value
	}

	clean := strings.ReplaceAll(value, ",", "")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return value
	}

	switch {
	case f == math.Trunc(f) && math.Abs(f) >= 1000:
		if math.Abs(f) >= math.MaxInt64 {
			// Out of int64 range; group the integral float directly.
			return grouped.Sprintf("%.0f", f)
		}
		return grouped.Sprintf("%d", int64(f))
	case math.Abs(f) >= 1000:
		return grouped.Sprintf("%.2f", f)
	default:
		return clean
	}
}

// FormatRuleType styles a rule kind as a Markdown label with a leading
// marker. Unrecognized kinds come back bold with no marker.
func FormatRuleType(ruleType string) string {
	switch ruleType {
	case "OPT":
		return "🔧 **OPTIMIZATION**"
	case "WRN":
		return "⚠️ **WARNING**"
	case "INF":
		return "ℹ️ **INFO**"
	default:
		return "**" + ruleType + "**"
	}
}
