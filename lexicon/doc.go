// SPDX-License-Identifier: MIT

// Package lexicon provides the read-only string sets the solver consults:
// the word oracle (complete dictionary words) and the prefix filter (every
// prefix of some dictionary word).
//
// A lookup miss is an ordinary answer, never an error. Sets are built once
// and then only queried, so concurrent Contains calls are safe.
//
// Loading:
//
//   - Load parses a newline-separated word list; blank lines and lines that
//     start with '#' are skipped, words are lowercased.
//   - LoadFile does the same for a file and transparently inflates zlib or
//     gzip compressed content, detected by its header bytes.
//   - PrefixesOf derives a complete prefix filter from a dictionary, so a
//     dictionary alone is enough to run the solver.
package lexicon
