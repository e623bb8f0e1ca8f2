package lotbook

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// This file holds the shared field-level codec used by every entity
// type. Records are one line each, fields joined by a two-character
// delimiter in a fixed, versioned order. Absent optional fields are
// written as a reserved sentinel token.
//
// The delimiter is NOT escaped: a field value containing it corrupts
// column alignment for that record and every field after it on the
// line. That is a known limitation of the format, not a guarantee the
// codec can give. Encoding logs a warning when it happens so the
// corruption is at least observable.

const (
	// fieldSep separates fields within a record line.
	fieldSep = "||"
	// nullToken marks an absent optional field.
	nullToken = "null"
)

// joinFields assembles one record line from its fields.
func joinFields(fields ...string) string { return strings.Join(fields, fieldSep) }

// splitFields splits a record line and checks the field count.
func splitFields(line string, want int) ([]string, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != want {
		return nil, fmt.Errorf("want %d fields, got %d", want, len(fields))
	}
	return fields, nil
}

// encString encodes a required text field.
func encString(s string) string {
	if strings.Contains(s, fieldSep) {
		log.Printf("warning: field value %q contains the record delimiter and will corrupt its line", s)
	}
	return s
}

// encOptString encodes an optional text field, empty meaning absent.
func encOptString(s string) string {
	if s == "" {
		return nullToken
	}
	return encString(s)
}

func decOptString(field string) string {
	if field == nullToken {
		return ""
	}
	return field
}

func encInt(v int) string   { return strconv.Itoa(v) }
func encID(id int64) string { return strconv.FormatInt(id, 10) }

func decInt(field string) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", field, err)
	}
	return v, nil
}

func decID(field string) (int64, error) {
	id, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid identifier %q: %w", field, err)
	}
	return id, nil
}

// encDecimal writes a monetary or rate value as exact decimal text.
func encDecimal(v decimal.Decimal) string { return v.String() }

func decDecimal(field string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(field)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal %q: %w", field, err)
	}
	return v, nil
}

func encBool(b bool) string { return strconv.FormatBool(b) }

func decBool(field string) (bool, error) {
	b, err := strconv.ParseBool(field)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q: %w", field, err)
	}
	return b, nil
}

func encDate(d Date) string { return d.String() }

func decDate(field string) (Date, error) { return ParseDate(field) }

// encOptDate encodes an optional date, the zero date meaning absent.
func encOptDate(d Date) string {
	if d.IsZero() {
		return nullToken
	}
	return d.String()
}

func decOptDate(field string) (Date, error) {
	if field == nullToken {
		return Date{}, nil
	}
	return ParseDate(field)
}

// encOptTime encodes an optional timestamp, the zero time meaning absent.
func encOptTime(t time.Time) string {
	if t.IsZero() {
		return nullToken
	}
	return t.Format(TimestampFormat)
}

func decOptTime(field string) (time.Time, error) {
	if field == nullToken {
		return time.Time{}, nil
	}
	t, err := time.Parse(TimestampFormat, field)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", field, err)
	}
	return t, nil
}
