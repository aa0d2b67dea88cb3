package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"culler/internal/textutil"
)

const bytesPerMB = 1024 * 1024

func humanSize(sizeMB float64) string {
	if sizeMB < 0 {
		sizeMB = 0
	}
	return humanize.IBytes(uint64(sizeMB * bytesPerMB))
}

// displayGroupKey renders a group key for humans, title-casing the identity
// part while keeping the pass prefix ("FOLDER:", "TITLE:", "FUZZY:") intact.
// Episode keys end in the SxxEyy token, which must not be case-mangled.
func displayGroupKey(key string) string {
	if prefix, rest, found := strings.Cut(key, ": "); found {
		return prefix + ": " + textutil.DisplayTitle(rest)
	}
	if idx := strings.LastIndex(key, " "); idx > 0 {
		return textutil.DisplayTitle(key[:idx]) + " " + key[idx+1:]
	}
	return textutil.DisplayTitle(key)
}

func renderGroupTable(plan sweepPlan, root string, rounded bool) string {
	headers := []string{"", "Score", "Size", "File"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignLeft}

	rows := make([][]string, 0, len(plan.group.Members))
	for _, rec := range plan.group.Members {
		marker := "drop"
		if rec == plan.keep {
			marker = "keep"
		}
		rows = append(rows, []string{
			marker,
			fmt.Sprintf("%.1f", rec.Score),
			humanSize(rec.SizeMB),
			relativeTo(root, rec.Path),
		})
	}
	return renderTable(headers, rows, aligns, rounded)
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
