// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses repeated request values such as multi-select fields.
package query

import (
	"strconv"
)

// IntSlice parses repeated string values into integers. Invalid entries are
// ignored; callers that must reject them validate first.
func IntSlice(vals []string) []int {
	res := make([]int, 0, len(vals))
	for _, v := range vals {
		if i, err := strconv.Atoi(v); err == nil {
			res = append(res, i)
		}
	}
	return res
}
