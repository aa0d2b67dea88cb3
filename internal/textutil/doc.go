// Package textutil provides text comparison and presentation helpers shared
// by the grouping engine and the CLI: a character-level similarity ratio for
// fuzzy title matching and display casing for normalized titles.
package textutil
