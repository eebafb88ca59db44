// Package dateutil resolves the date stamped into man page headers.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ErrInvalidEpoch indicates a malformed SOURCE_DATE_EPOCH.
var ErrInvalidEpoch = errors.New("invalid SOURCE_DATE_EPOCH")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used for a bare "auto".
const DefaultDateFormat = "MMMM YYYY"

// EpochEnv is the reproducible-builds variable that pins the build time.
const EpochEnv = "SOURCE_DATE_EPOCH"

// dateTokens maps format tokens to Go layout fragments, longest first.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets are named formats usable after "auto:".
var DatePresets = map[string]string{
	"iso":  "YYYY-MM-DD",
	"man":  "MMMM YYYY",
	"long": "MMMM D, YYYY",
}

// ParseDateFormat converts a token format (YYYY, YY, MMMM, MMM, MM, M, DD, D)
// to a Go time layout. Text in brackets is literal, so "[v]YYYY" keeps the v.
// Other characters pass through.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var layout strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			layout.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}

		if token, goFmt, ok := matchToken(rest); ok {
			layout.WriteString(goFmt)
			rest = rest[len(token):]
			continue
		}

		layout.WriteByte(rest[0])
		rest = rest[1:]
	}

	return layout.String(), nil
}

func matchToken(s string) (token, goFmt string, ok bool) {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			return t.token, t.goFmt, true
		}
	}
	return "", "", false
}

// ResolveDate formats value for the build time t:
//   - "" → ""
//   - "auto" → t in DefaultDateFormat
//   - "auto:FORMAT" or "auto:preset" → t in that format
//   - anything else → returned unchanged
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultDateFormat
	if lower != "auto" {
		custom, ok := strings.CutPrefix(value, value[:len("auto")]+":")
		if !ok {
			return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		if custom == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		format = custom
		if preset, ok := DatePresets[strings.ToLower(custom)]; ok {
			format = preset
		}
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// BuildTime returns the time to stamp into generated pages. When
// SOURCE_DATE_EPOCH is set it wins over now, in UTC.
func BuildTime(getenv func(string) string, now func() time.Time) (time.Time, error) {
	raw := strings.TrimSpace(getenv(EpochEnv))
	if raw == "" {
		return now(), nil
	}

	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || secs < 0 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidEpoch, raw)
	}
	return time.Unix(secs, 0).UTC(), nil
}
