// Package spillman implements extraction of public-safety records from the
// Spillman Flex XML query endpoint: the query client, the field
// extractor/normalizer, the date windower and the per-entity pipelines.
package spillman

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sccity/dispatch-etl/constants"
)

// remoteDateLayout is the vendor's fixed 19-character positional date format:
// time at offset 0-8, month at 9-11, day at 12-14, year at 15-19,
// e.g. "10:00:00 05/01 2023".
const remoteDateLayout = "15:04:05 01/02 2006"

// DecodeDate converts the vendor's 19-character date encoding to the
// warehouse format YYYY-MM-DD HH:MM:SS.
// Anything that fails the vendor shape yields the sentinel timestamp.
func DecodeDate(s string) string {
	t, err := time.Parse(remoteDateLayout, s)
	if err != nil { // if the value does not match the vendor encoding...
		return constants.SentinelTimestamp
	}
	return t.Format(constants.TimeFormatWarehouse)
}

// EncodeDate renders t in the vendor's 19-character date encoding.
// DecodeDate(EncodeDate(t)) round-trips exactly.
func EncodeDate(t time.Time) string {
	return t.Format(remoteDateLayout)
}

// DecodeDateKey compacts the vendor's 19-character date encoding to the
// YYYYMMDDHHMMSS digit string used in synthetic radio-log keys.
func DecodeDateKey(s string) string {
	t, err := time.Parse(remoteDateLayout, s)
	if err != nil {
		t, _ = time.Parse(constants.TimeFormatWarehouse, constants.SentinelTimestamp)
	}
	return t.Format("20060102150405")
}

// DecodeDateOnly converts the vendor's MM/DD/YYYY date to YYYY-MM-DD.
// Used for incident dispatch dates, which carry no time of day.
func DecodeDateOnly(s string) string {
	t, err := time.Parse(constants.TimeFormatRemoteDate, s)
	if err != nil {
		return constants.SentinelTimestamp
	}
	return t.Format("2006-01-02")
}

// DecodeCoordinate converts a fixed-point integer-like coordinate string to
// decimal degrees by dividing by 1e6 (geobase and AVL positions).
// Unparseable input yields "0".
func DecodeCoordinate(s string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return "0"
	}
	return strconv.FormatFloat(f/1e6, 'f', -1, 64)
}

// SpliceX inserts a decimal point into a radio-log x position at offset 3,
// e.g. "11234" -> "112.34". The vendor's radio-log feed carries coordinates
// in a different fixed-point shape than AVL/geobase; the two decodings are
// deliberately kept separate.
func SpliceX(s string) string {
	return spliceDecimal(s, 3)
}

// SpliceY inserts a decimal point into a radio-log y position at offset 2,
// e.g. "4056123" -> "40.56123".
func SpliceY(s string) string {
	return spliceDecimal(s, 2)
}

func spliceDecimal(s string, offset int) string {
	if len(s) <= offset { // too short to splice: pass through unchanged.
		return s
	}
	return s[:offset] + "." + s[offset:]
}

var sanitizeReplacer = strings.NewReplacer(`"`, "", `'`, "", `;`, "")

// Sanitize strips SQL-unsafe characters from free-text fields.
// All execution is parameterized regardless; this mirrors what the warehouse
// consumers already expect of the data.
func Sanitize(s string) string {
	return sanitizeReplacer.Replace(s)
}

var nonAlnumRegexp = regexp.MustCompile(`[^a-zA-Z0-9\s\t]`)

// AsciiOnly reduces a value to ASCII alphanumerics and whitespace, trimmed.
// Used for the system-log miscellaneous data field, which carries arbitrary
// terminal payloads.
func AsciiOnly(s string) string {
	return strings.TrimSpace(nonAlnumRegexp.ReplaceAllString(s, ""))
}

var tagRegexp = regexp.MustCompile(`<[^>]*>`)
var spaceRegexp = regexp.MustCompile(`\s+`)

// StripTags reduces the messenger message payload, which embeds an HTML
// document, to plain text.
func StripTags(s string) string {
	s = tagRegexp.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.TrimSpace(spaceRegexp.ReplaceAllString(s, " "))
}
