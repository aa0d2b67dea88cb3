// Package sweep removes deletion candidates and their sidecar files.
// Failures are reported per file and never abort the remaining batch.
package sweep
