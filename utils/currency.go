package utils

import (
	"math"
	"strconv"
)

// FormatINR renders a rupee amount for display with Indian digit grouping:
// the last three digits form one group, every two digits after that form
// another (12,34,567). Amounts are whole rupees; the engine rounds all
// monetary values before they reach display code.
func FormatINR(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var grouped string
	for len(head) > 2 {
		grouped = "," + head[len(head)-2:] + grouped
		head = head[:len(head)-2]
	}
	return sign + "₹" + head + grouped + "," + tail
}
