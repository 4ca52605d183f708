// Package organize implements the file-organizing engine.
//
// A pass enumerates candidate files under the source, hashes each one,
// consults the content index for duplicates, resolves a collision-free
// destination under <destination>/<category>/<bucket>/, performs the move,
// and flushes the index once at the end. Passes are sequential by design:
// files are processed one at a time so index updates are deterministic, and
// a flock on the destination root rejects concurrent instances.
package organize
