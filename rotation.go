package animate

import (
	"strconv"
	"strings"
)

// renderedRotation reads the element's currently rendered rotation in
// degrees. It understands the standalone `rotate` property ("45deg") and the
// single-function `transform: rotate(45deg)` form; anything else (matrix
// output, compound transforms) reports no value and the caller falls back to
// the configured start angle.
func renderedRotation(el Element) (float64, bool) {
	v := strings.TrimSpace(el.ComputedStyle("rotate"))
	if v == "" || v == "none" {
		v = strings.TrimSpace(el.ComputedStyle("transform"))
		if !strings.HasPrefix(v, "rotate(") || !strings.HasSuffix(v, ")") {
			return 0, false
		}
		v = strings.TrimSuffix(strings.TrimPrefix(v, "rotate("), ")")
	}
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "deg"))
	deg, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return deg, true
}
