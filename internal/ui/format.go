package ui

import "strconv"

// percent formats n/total as a whole-number percentage.
func percent(n, total int) string {
	if total <= 0 {
		return "0%"
	}
	return strconv.Itoa((n*100+total/2)/total) + "%"
}
