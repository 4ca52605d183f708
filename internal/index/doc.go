// Package index persists the content-digest index that makes duplicate
// detection incremental across organizing passes.
//
// The index is a single JSON file under the destination root, loaded at pass
// start and rewritten atomically at pass end. Entries map a hex SHA-256
// digest to the path where that content was first stored. Entries are never
// garbage collected by this package.
package index
