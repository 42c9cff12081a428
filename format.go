package main

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatGroups renders one group per line with indices separated by tabs.
// There is no trailing newline.
func FormatGroups(groups []Group) string {
	var b strings.Builder
	for gi, g := range groups {
		if gi > 0 {
			b.WriteByte('\n')
		}
		for i, idx := range g {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(strconv.Itoa(idx))
		}
	}
	return b.String()
}

// FormatDetail lists each group together with the values of its items.
func FormatDetail[T comparable](items []Item[T], groups []Group) string {
	var b strings.Builder
	for gi, g := range groups {
		if gi > 0 {
			b.WriteString("-------------------\n")
		}
		fmt.Fprintf(&b, "set %d:\n", gi+1)
		for _, idx := range g {
			fmt.Fprintf(&b, "  #%-3d %s\n", idx, formatItem(items[idx]))
		}
	}
	return b.String()
}

func formatItem[T comparable](item Item[T]) string {
	parts := make([]string, len(item))
	for i, v := range item {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
