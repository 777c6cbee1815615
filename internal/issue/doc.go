// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It defines error types that carry remediation steps, plus a small catalog
// of Markdown-formatted guidance for the failure classes a bundle file load
// can hit: a missing file, TOML syntax errors, schema violations, and
// invalid kit version strings.
package issue
