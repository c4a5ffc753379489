// Package object models git objects as they appear in plumbing output.
//
// It provides:
//   - ObjectKind, the closed set of object types (blob, tree, commit, tag)
//   - object id validation (40 lowercase hex characters)
//   - the tree row codec, in both the newline form and the NUL-terminated
//     form read and written by ls-tree -z and mktree -z
//   - MergeTree, which overlays new entries onto an existing tree listing
//
// Nothing in this package runs git; every function is pure and safe for
// concurrent use.
package object
