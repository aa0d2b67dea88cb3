// Package backup writes a JSON manifest of deletion candidates before any
// file is removed, preserving enough identity and score detail to audit or
// re-acquire what was culled.
package backup
