// Package hashing computes content digests used for duplicate detection.
package hashing
