package value

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"time"

	admerrors "github.com/jacoelho/adm/errors"
)

const timecodeShape = "hh:mm:ss.fffff or hh:mm:ss.nnnnnSddddd"

// maxTimecodeHours keeps hours plus minutes, seconds and fraction within
// time.Duration.
const maxTimecodeHours = math.MaxInt64/int64(time.Hour) - 1

// Timecode is a non-negative time offset such as start, end, duration or rtime.
//
// Timecodes written with a sample fraction (hh:mm:ss.nnnnnSddddd) keep the
// fraction so they render back unchanged.
type Timecode struct {
	d           time.Duration
	numerator   int64
	denominator int64
	width       int
}

// NewTimecode validates d as a Timecode.
func NewTimecode(d time.Duration) (Timecode, error) {
	if d < 0 {
		return Timecode{}, admerrors.ValueFormat(d.String(), "timecode must not be negative", timecodeShape)
	}
	return Timecode{d: d}, nil
}

// MustTimecode is like NewTimecode but panics on invalid input.
func MustTimecode(d time.Duration) Timecode {
	t, err := NewTimecode(d)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimecode parses hh:mm:ss.fffff and hh:mm:ss.nnnnnSddddd timecodes.
func ParseTimecode(text string) (Timecode, error) {
	invalid := func(msg string) (Timecode, error) {
		return Timecode{}, admerrors.ValueFormat(text, msg, timecodeShape)
	}

	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 3 {
		return invalid("invalid timecode")
	}
	hours, err := parseDigits(parts[0], 0)
	if err != nil || hours > maxTimecodeHours {
		return invalid("invalid timecode hours")
	}
	minutes, err := parseDigits(parts[1], 2)
	if err != nil || minutes > 59 {
		return invalid("invalid timecode minutes")
	}

	secondsText, fraction, hasFraction := strings.Cut(parts[2], ".")
	seconds, err := parseDigits(secondsText, 2)
	if err != nil || seconds > 59 {
		return invalid("invalid timecode seconds")
	}

	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	tc := Timecode{}
	if hasFraction {
		if num, den, ok := strings.Cut(fraction, "S"); ok {
			n, errN := parseDigits(num, 0)
			m, errD := parseDigits(den, 0)
			if errN != nil || errD != nil || m == 0 || n >= m {
				return invalid("invalid timecode sample fraction")
			}
			tc.numerator, tc.denominator, tc.width = n, m, len(num)
			d += sampleFraction(n, m)
		} else {
			if fraction == "" || len(fraction) > 9 {
				return invalid("invalid timecode fraction")
			}
			f, err := parseDigits(fraction, 0)
			if err != nil {
				return invalid("invalid timecode fraction")
			}
			for i := len(fraction); i < 9; i++ {
				f *= 10
			}
			d += time.Duration(f)
		}
	}
	if _, err := NewTimecode(d); err != nil {
		return invalid("timecode out of range")
	}
	tc.d = d
	return tc, nil
}

// sampleFraction returns n/m seconds for n < m without overflowing the
// intermediate product.
func sampleFraction(n, m int64) time.Duration {
	hi, lo := bits.Mul64(uint64(n), uint64(time.Second))
	q, _ := bits.Div64(hi, lo, uint64(m))
	return time.Duration(q)
}

func parseDigits(text string, width int) (int64, error) {
	if text == "" || (width > 0 && len(text) != width) {
		return 0, fmt.Errorf("invalid digits %q", text)
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid digits %q", text)
		}
	}
	return strconv.ParseInt(text, 10, 64)
}

// Duration returns the offset as a time.Duration.
func (t Timecode) Duration() time.Duration {
	return t.d
}

// String renders the timecode. Whole multiples of 10µs use five fraction
// digits, other values use nine.
func (t Timecode) String() string {
	whole := t.d.Truncate(time.Second)
	h := int64(whole / time.Hour)
	m := int64(whole%time.Hour) / int64(time.Minute)
	s := int64(whole%time.Minute) / int64(time.Second)
	prefix := fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	if t.denominator > 0 {
		return fmt.Sprintf("%s.%0*dS%d", prefix, t.width, t.numerator, t.denominator)
	}
	frac := int64(t.d - whole)
	if frac%10_000 == 0 {
		return fmt.Sprintf("%s.%05d", prefix, frac/10_000)
	}
	return fmt.Sprintf("%s.%09d", prefix, frac)
}
