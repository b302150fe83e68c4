/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package site

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/lo"

	"github.com/innovexadevelopment/admin-panel-sub000/errors"
	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

// Field is the discriminator column partitioning shared tables by tenant.
const Field = "site"

// Site identifies one of the tenant websites.
type Site string

const (
	Company Site = "company"
	NGO     Site = "ngo"
)

// All returns every known site.
func All() []Site {
	return []Site{Company, NGO}
}

// Valid reports whether s is a known site.
func (s Site) Valid() bool {
	return lo.Contains(All(), s)
}

func (s Site) String() string {
	return string(s)
}

// Parse normalizes raw and returns the matching site.
func Parse(raw string) (Site, error) {
	s := Site(Normalize(raw))
	if !s.Valid() {
		return "", errors.NewValidationError("site", fmt.Sprintf("unknown site %q", raw))
	}
	return s, nil
}

// Normalize folds case and trims surrounding whitespace.
func Normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// Filter returns the rows whose site field matches target after normalization.
// Rows without a site field never match a non-empty target. Input order is kept
// and rows are not copied or mutated.
func Filter(rows []storagemodels.Row, target string) []storagemodels.Row {
	want := Normalize(target)
	return lo.Filter(rows, func(row storagemodels.Row, _ int) bool {
		return Normalize(fieldString(row[Field])) == want
	})
}

// FilterSite is Filter for a typed site.
func FilterSite(rows []storagemodels.Row, s Site) []storagemodels.Row {
	return Filter(rows, string(s))
}

func fieldString(v any) string {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case *string:
		return *tv
	case []byte:
		return string(tv)
	case fmt.Stringer:
		return tv.String()
	default:
		return fmt.Sprint(tv)
	}
}
