package schema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// Date coerces loosely typed JSON date input. It accepts a parseable date
// string, null, or an absent field; an empty string counts as null. Parse
// failures are recorded, not raised, so a Validate pass can attach them to
// the right field.
type Date struct {
	present bool
	value   *time.Time
	raw     string
	failed  bool
}

func (d *Date) UnmarshalJSON(b []byte) error {
	d.present = true
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		d.failed = true
		d.raw = string(b)
		return nil
	}
	if s == "" {
		return nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		d.failed = true
		d.raw = s
		return nil
	}
	t = t.UTC()
	d.value = &t
	return nil
}

// Present reports whether the field appeared in the JSON body at all.
func (d Date) Present() bool { return d.present }

// Value returns the parsed time, or nil for null/absent/empty input.
func (d Date) Value() *time.Time { return d.value }

// Decimal coerces a JSON number, a numeric string, null, or an absent field
// into the canonical decimal-string representation. Decimals are stored as
// strings, never floats.
type Decimal struct {
	present bool
	value   *string
	raw     string
	failed  bool
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	d.present = true
	if string(b) == "null" {
		return nil
	}
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			d.failed = true
			d.raw = string(b)
			return nil
		}
	}
	if s == "" {
		return nil
	}
	dec, err := decimal.NewFromString(s)
	if err != nil {
		d.failed = true
		d.raw = s
		return nil
	}
	v := dec.String()
	d.value = &v
	return nil
}

// Present reports whether the field appeared in the JSON body at all.
func (d Decimal) Present() bool { return d.present }

// Value returns the normalized decimal string, or nil for null/absent/empty.
func (d Decimal) Value() *string { return d.value }

// Optional tracks whether a JSON field appeared in a patch body, so an
// explicit null can be told apart from an absent field.
type Optional[T any] struct {
	present bool
	value   *T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.present = true
	if string(b) == "null" {
		o.value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.value = &v
	return nil
}

// Present reports whether the field appeared in the JSON body at all.
func (o Optional[T]) Present() bool { return o.present }

// Value returns the decoded value, or nil for an explicit null.
func (o Optional[T]) Value() *T { return o.value }

// optionalDate resolves an optional date field, recording a parse failure.
func optionalDate(errs FieldErrors, field, label string, d Date) *time.Time {
	if d.failed {
		errs[field] = fmt.Sprintf("%s must be a valid date, got %q", label, d.raw)
		return nil
	}
	return d.value
}

// requiredDate resolves a required date field: null, absence and empty
// strings are rejected alongside parse failures.
func requiredDate(errs FieldErrors, field, label string, d Date) time.Time {
	if d.failed {
		errs[field] = fmt.Sprintf("%s must be a valid date, got %q", label, d.raw)
		return time.Time{}
	}
	if d.value == nil {
		errs[field] = label + " is required"
		return time.Time{}
	}
	return *d.value
}

// optionalDecimal resolves an optional decimal field, recording a parse
// failure.
func optionalDecimal(errs FieldErrors, field, label string, d Decimal) *string {
	if d.failed {
		errs[field] = label + " must be a valid number"
		return nil
	}
	return d.value
}

// requiredDecimal resolves a required decimal field.
func requiredDecimal(errs FieldErrors, field, label string, d Decimal) string {
	if d.failed {
		errs[field] = label + " must be a valid number"
		return ""
	}
	if d.value == nil {
		errs[field] = label + " is required"
		return ""
	}
	return *d.value
}

// requiredString rejects absent or blank values for not-null text columns.
func requiredString(errs FieldErrors, field, label, v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		errs[field] = label + " is required"
	}
	return v
}

// enumOrDefault applies the documented default to an absent value and rejects
// anything outside the set.
func enumOrDefault(errs FieldErrors, field, label, v string, valid map[string]struct{}, def string) string {
	if v == "" {
		return def
	}
	if _, ok := valid[v]; !ok {
		errs[field] = fmt.Sprintf("%s must be one of %s", label, enumList(valid))
	}
	return v
}

// requiredEnum rejects absent values as well as anything outside the set.
func requiredEnum(errs FieldErrors, field, label, v string, valid map[string]struct{}) string {
	if v == "" {
		errs[field] = label + " is required"
		return v
	}
	if _, ok := valid[v]; !ok {
		errs[field] = fmt.Sprintf("%s must be one of %s", label, enumList(valid))
	}
	return v
}

// patchRequiredString rejects null or blank patch values for not-null text
// columns.
func patchRequiredString(errs FieldErrors, field, label string, o Optional[string]) string {
	v := o.Value()
	if v == nil || strings.TrimSpace(*v) == "" {
		errs[field] = label + " is required"
		return ""
	}
	return strings.TrimSpace(*v)
}

// patchEnum rejects null patch values and anything outside the set. Defaults
// only apply on insert, never on update.
func patchEnum(errs FieldErrors, field, label string, o Optional[string], valid map[string]struct{}) string {
	v := o.Value()
	if v == nil || *v == "" {
		errs[field] = label + " is required"
		return ""
	}
	if _, ok := valid[*v]; !ok {
		errs[field] = fmt.Sprintf("%s must be one of %s", label, enumList(valid))
	}
	return *v
}

func enumList(valid map[string]struct{}) string {
	vals := make([]string, 0, len(valid))
	for v := range valid {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return strings.Join(vals, ", ")
}
