package jsonld

import (
	"math"
	"regexp"
	"strconv"
)

// durationPattern matches PnYnMnDTnHnMnS. Seconds may carry a fraction;
// week forms (PnW) do not match.
var durationPattern = regexp.MustCompile(
	`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)(?:[.,]\d+)?S)?)?$`,
)

// ParseDurationMinutes converts an ISO-8601 duration such as "PT1H20M" into
// whole minutes: days*1440 + hours*60 + minutes + seconds/60. Years and
// months are accepted but contribute nothing. Totals beyond 32 bits are
// rejected.
func ParseDurationMinutes(s string) (int, bool) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	empty := true
	for _, part := range m[1:] {
		if part != "" {
			empty = false
			break
		}
	}
	if empty {
		return 0, false
	}
	// "P1DT" has a designator with no time component after it.
	if s[len(s)-1] == 'T' {
		return 0, false
	}

	var vals [6]int64
	for i, part := range m[1:] {
		if part == "" {
			continue
		}
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil || v > math.MaxInt32 {
			return 0, false
		}
		vals[i] = v
	}
	days, hours, minutes, seconds := vals[2], vals[3], vals[4], vals[5]
	total := days*1440 + hours*60 + minutes + seconds/60
	if total > math.MaxInt32 {
		return 0, false
	}
	return int(total), true
}
