package units

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat is returned for text that is not a sized value.
	ErrInvalidFormat = errors.New("invalid sized value")
	// ErrValueTooLarge is returned when a value cannot be rendered with the
	// K, M and G units, or when unit multiplication overflows.
	ErrValueTooLarge = errors.New("value too large")
)

// sizeRegex accepts digits with at most one trailing unit letter.
var sizeRegex = regexp.MustCompile(`^(\d+)([kKmMgG]?)$`)

// renderUnits are consumed in order, each at most once.
var renderUnits = []string{"K", "M", "G"}

const unit = 1024

// Parse converts sized-value text into a byte count.
func Parse(text string) (int64, error) {
	matches := sizeRegex.FindStringSubmatch(text)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}

	num, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, text, err)
	}

	var multiplier int64
	switch strings.ToUpper(matches[2]) {
	case "":
		return num, nil
	case "K":
		multiplier = unit
	case "M":
		multiplier = unit * unit
	case "G":
		multiplier = unit * unit * unit
	}

	if num > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("%w: %q overflows 64-bit bytes", ErrValueTooLarge, text)
	}
	return num * multiplier, nil
}

// Render converts a byte count into the largest fitting unit. Division
// truncates, so 1536 renders as "1K".
func Render(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative byte count %d", ErrInvalidFormat, n)
	}

	suffix := ""
	for i := 0; n >= unit; i++ {
		if i == len(renderUnits) {
			return "", fmt.Errorf("%w: %d bytes exceeds the G unit", ErrValueTooLarge, n)
		}
		n /= unit
		suffix = renderUnits[i]
	}

	return strconv.FormatInt(n, 10) + suffix, nil
}
