// Package csv encodes the wishlist collection to CSV and decodes CSV
// text back into items. The decoder is deliberately lenient: it
// accepts rows written by older schema versions (5 to 10 columns) and
// coerces every malformed field to a safe default instead of failing
// the row.
package csv

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"wishlog/internal/core"
)

// Header is the full current export schema, one column per field.
const Header = "Name,Category,Price,Priority,Status,Platform,Notes,Link,Created Date,Image URL"

// MaxImportBytes caps accepted import payloads (5 MiB). Larger inputs
// are rejected before any parsing.
const MaxImportBytes = 5 * 1024 * 1024

// Encode renders items in collection order under Header. Text fields
// are double-quoted with internal quotes doubled; enums and the price
// are emitted as their literal value. Created Date is the UTC
// calendar date of createdAt.
func Encode(items []core.Item) string {
	var b strings.Builder
	b.WriteString(Header)
	for _, it := range items {
		platform := it.Platform
		if platform == "" {
			platform = string(core.PlatformOther)
		}
		b.WriteByte('\n')
		b.WriteString(quote(it.Name))
		b.WriteByte(',')
		b.WriteString(string(it.Category))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(it.Price, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(string(it.Priority))
		b.WriteByte(',')
		b.WriteString(string(it.Status))
		b.WriteByte(',')
		b.WriteString(platform)
		b.WriteByte(',')
		b.WriteString(quote(it.Notes))
		b.WriteByte(',')
		b.WriteString(quote(it.Link))
		b.WriteByte(',')
		b.WriteString(time.UnixMilli(it.CreatedAt).UTC().Format("2006-01-02"))
		b.WriteByte(',')
		b.WriteString(quote(it.ImageURL))
	}
	return b.String()
}

// ExportFilename follows the wishlog_export_<YYYY-MM-DD>.csv
// convention.
func ExportFilename(now time.Time) string {
	return "wishlog_export_" + now.UTC().Format("2006-01-02") + ".csv"
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Decode parses raw CSV text into items. Control characters are
// stripped first, the input is split into non-empty lines, the header
// line is discarded and every remaining line parses independently.
// Unusable rows are skipped, never an error. Each produced item gets
// a fresh id and updatedAt=now regardless of the parsed created date.
//
// Known limitation, kept from the original exporter: because input is
// pre-split on line boundaries, a quoted field cannot carry a literal
// newline.
func Decode(content string, now time.Time) []core.Item {
	lines := splitLines(stripControl(content))
	if len(lines) <= 1 {
		return nil
	}

	var items []core.Item
	for _, line := range lines[1:] {
		if it, ok := decodeLine(line, now); ok {
			items = append(items, it)
		}
	}
	return items
}

func decodeLine(line string, now time.Time) (core.Item, bool) {
	cols := splitFields(line)
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	if len(cols) < 5 || len(cols) > 10 {
		return core.Item{}, false
	}

	var name, category, price, priority, status string
	platform := string(core.PlatformOther)
	var notes, link, dateStr, imageURL string

	switch len(cols) {
	case 10:
		name, category, price, priority, status = cols[0], cols[1], cols[2], cols[3], cols[4]
		platform, notes, link, dateStr, imageURL = cols[5], cols[6], cols[7], cols[8], cols[9]
	case 9:
		name, category, price, priority, status = cols[0], cols[1], cols[2], cols[3], cols[4]
		platform, notes, link, dateStr = cols[5], cols[6], cols[7], cols[8]
	case 8:
		// legacy schema without a Platform column
		name, category, price, priority, status = cols[0], cols[1], cols[2], cols[3], cols[4]
		notes, link, dateStr = cols[5], cols[6], cols[7]
	default: // 5, 6 or 7 columns
		name, category, price, priority, status = cols[0], cols[1], cols[2], cols[3], cols[4]
		if len(cols) > 5 {
			notes = cols[5]
		}
		if len(cols) > 6 {
			dateStr = cols[6]
		}
	}

	if name == "" {
		name = "Untitled"
	}
	if platform == "" {
		platform = string(core.PlatformOther)
	}

	it := core.Item{
		ID:        uuid.NewString(),
		Name:      core.SanitizeText(name, core.NameMax),
		Category:  core.CategoryOrDefault(category),
		Price:     decodePrice(price),
		Priority:  core.PriorityOrDefault(priority),
		Status:    core.StatusOrDefault(status),
		Platform:  core.SanitizeText(platform, core.PlatformMax),
		Notes:     core.SanitizeText(notes, core.NotesMax),
		Link:      decodeURL(link),
		ImageURL:  decodeURL(imageURL),
		CreatedAt: decodeCreatedAt(dateStr, now),
		UpdatedAt: now.UnixMilli(),
	}
	return it, true
}

// decodeURL keeps only values that already carry an explicit http(s)
// prefix. Unlike the form-entry path there is no scheme repair here.
func decodeURL(s string) string {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return core.SanitizeText(s, core.URLMax)
	}
	return ""
}

func decodePrice(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	p, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || p != p || p < 0 {
		return 0
	}
	if p > core.PriceMax {
		return core.PriceMax
	}
	return p
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
}

func decodeCreatedAt(s string, now time.Time) int64 {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}
	return now.UnixMilli()
}

// stripControl removes control bytes (0x00-0x09, 0x0B-0x1F, 0x7F)
// before line splitting. CR falls in the range, so CRLF input reduces
// to bare LF here.
func stripControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r <= 0x09) || (r >= 0x0B && r <= 0x1F) || r == 0x7F {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitFields is a two-state (unquoted/quoted) scanner over one
// record. A doubled quote inside a quoted field decodes to a literal
// quote; a comma splits fields only while unquoted.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuote := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuote && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuote = !inQuote
			}
		case c == ',' && !inQuote:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
