// Package scan enumerates files eligible for organizing. The walker excludes
// the destination subtree, ignored directory names, bookkeeping files, and
// configured glob patterns, and treats unreadable subtrees as skippable
// rather than fatal.
package scan
