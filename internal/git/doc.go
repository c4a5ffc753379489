// Package git is a typed façade over the git command-line tool.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Plumbing: ls-tree, mktree, hash-object, cat-file, commit-tree
//   - Refs: show-ref, rev-parse, branch listings
//   - Porcelain pass-through: init, checkout, branch, merge, push, pull, rebase, update-ref
//
// Output is decoded by the object and protocol packages. Every invocation is
// configured by an explicit Config held on a Runner; Runner.Push and
// Runner.As scope an override to a sequence of calls and restore the outer
// configuration on exit.
//
// This package should be the only place where git is executed.
package git
