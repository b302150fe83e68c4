/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

// SortRows stable-sorts rows in place by column. Nil or missing values sort
// last in both directions.
func SortRows(rows []Row, column string, dir Direction) {
	sort.SliceStable(rows, func(i, j int) bool {
		return Less(rows[i][column], rows[j][column], dir)
	})
}

// Less orders two column values for dir.
func Less(a, b any, dir Direction) bool {
	aNil, bNil := isNil(a), isNil(b)
	switch {
	case aNil && bNil:
		return false
	case aNil:
		return false
	case bNil:
		return true
	}
	c := Compare(a, b)
	if dir == Descending {
		return c > 0
	}
	return c < 0
}

// Compare returns -1, 0 or 1. Numbers compare numerically, times
// chronologically, anything else by its string form. Across kinds, numbers
// order before times and times before everything else.
func Compare(a, b any) int {
	na, aNum := toNumber(a)
	nb, bNum := toNumber(b)
	switch {
	case aNum && bNum:
		return na.compare(nb)
	case aNum:
		return -1
	case bNum:
		return 1
	}

	ta, aTime := toTime(a)
	tb, bTime := toTime(b)
	switch {
	case aTime && bTime:
		return ta.Compare(tb)
	case aTime:
		return -1
	case bTime:
		return 1
	}
	return strings.Compare(toString(a), toString(b))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

type number struct {
	i    int64
	u    uint64
	f    float64
	kind reflect.Kind // Int64, Uint64 or Float64
}

func (n number) float() float64 {
	switch n.kind {
	case reflect.Int64:
		return float64(n.i)
	case reflect.Uint64:
		return float64(n.u)
	}
	return n.f
}

func (n number) compare(o number) int {
	switch {
	case n.kind == reflect.Int64 && o.kind == reflect.Int64:
		return cmp3(n.i < o.i, n.i > o.i)
	case n.kind == reflect.Uint64 && o.kind == reflect.Uint64:
		return cmp3(n.u < o.u, n.u > o.u)
	}
	a, b := n.float(), o.float()
	return cmp3(a < b, a > b)
}

func cmp3(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

func toNumber(v any) (number, bool) {
	switch tv := v.(type) {
	case json.Number:
		if i, err := tv.Int64(); err == nil {
			return number{i: i, kind: reflect.Int64}, true
		}
		if f, err := tv.Float64(); err == nil {
			return number{f: f, kind: reflect.Float64}, true
		}
		return number{}, false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{i: rv.Int(), kind: reflect.Int64}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{u: rv.Uint(), kind: reflect.Uint64}, true
	case reflect.Float32, reflect.Float64:
		return number{f: rv.Float(), kind: reflect.Float64}, true
	}
	return number{}, false
}

func toTime(v any) (time.Time, bool) {
	switch tv := v.(type) {
	case time.Time:
		return tv, true
	case *time.Time:
		return *tv, true
	case strfmt.DateTime:
		return time.Time(tv), true
	case *strfmt.DateTime:
		return time.Time(*tv), true
	}
	return time.Time{}, false
}

func toString(v any) string {
	if t, ok := toTime(v); ok {
		return strfmt.DateTime(t.UTC()).String()
	}
	switch tv := v.(type) {
	case string:
		return tv
	case *string:
		return *tv
	case []byte:
		return string(tv)
	}
	return fmt.Sprint(v)
}
