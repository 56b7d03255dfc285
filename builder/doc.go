// Package builder turns a finite key/value mapping into a serialized
// MapBuffer: a single contiguous, immutable byte slice consisting of a
// fixed header, an Eytzinger-ordered index, a sorted-key data region, and
// (for format version 1) a trailing CRC32C checksum.
//
// Construction is single-shot and single-threaded: the full key set must be
// known up front, and a Builder is not safe for concurrent use.
package builder
