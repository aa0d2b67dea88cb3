// Package identify extracts canonical media identities from path text.
//
// Two content kinds are supported with deliberately asymmetric strictness.
// TV parsing requires a hard SxxEyy evidentiary marker and reports failure
// when none is present; the caller logs and skips such files. Movie parsing
// never fails: it produces a best-effort title/year identity from the parent
// folder name when that looks like a canonical "Title (Year)" folder, falling
// back to the file stem otherwise. Everything after the identity boundary is
// returned verbatim as the quality fragment for scoring.
package identify
