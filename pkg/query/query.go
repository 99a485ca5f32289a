// Copyright (c) 2026 Geodir Authors. All rights reserved.

// Package query parses URL query parameter values into Go types.
package query

import (
	"strings"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
