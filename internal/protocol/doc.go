// Package protocol decodes the line-oriented text git prints for plumbing
// and listing commands: ref listings, branch listings, commit headers, and
// the fatal:/error: diagnostics that signal failure.
//
// Decoders fail on the first record that violates its grammar and report the
// offending line; none of them skip or repair input.
package protocol
