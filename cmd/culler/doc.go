// Package main hosts the culler CLI entrypoint and command graph.
//
// The Cobra-based command tree wires terminal invocations into the scan,
// identify, score, group, and delete pipeline, plus configuration scaffolding
// and run-history lookups. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
