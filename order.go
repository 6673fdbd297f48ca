package main

import (
	"regexp"
	"sort"
	"strconv"
)

var (
	parenNumRe = regexp.MustCompile(`\((\d+)\)`)
	extNumRe   = regexp.MustCompile(`(\d+)\.[^.]+$`)
)

// extractOrderNumber pulls the ordering number out of a filename.
// The last number inside parentheses wins ("name (8).pdf" -> 8); otherwise
// the number right before the extension ("name 8.pdf" -> 8). ok is false
// when neither pattern matches, which is a normal outcome, not an error.
func extractOrderNumber(name string) (n int, ok bool) {
	if ms := parenNumRe.FindAllStringSubmatch(name, -1); len(ms) > 0 {
		if v, err := strconv.Atoi(ms[len(ms)-1][1]); err == nil {
			return v, true
		}
	}
	if m := extNumRe.FindStringSubmatch(name); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			return v, true
		}
	}
	return 0, false
}

// sortUploads resolves the merge order: files without a detectable number
// come first, keeping their upload order; numbered files follow, ascending
// by number, ties keeping upload order. The input slice is not modified.
func sortUploads(items []UploadedItem) []UploadedItem {
	type keyed struct {
		item UploadedItem
		num  int
		ok   bool
	}
	ks := make([]keyed, len(items))
	for i, it := range items {
		n, ok := extractOrderNumber(it.Name)
		ks[i] = keyed{item: it, num: n, ok: ok}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		a, b := ks[i], ks[j]
		if a.ok != b.ok {
			return !a.ok // absent-number files go first
		}
		if !a.ok {
			return false // both absent: keep upload order
		}
		return a.num < b.num
	})
	out := make([]UploadedItem, len(ks))
	for i, k := range ks {
		out[i] = k.item
	}
	return out
}
