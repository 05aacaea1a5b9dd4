// SPDX-License-Identifier: MIT

package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// ErrEmptyLexicon indicates a word list without a single usable entry.
var ErrEmptyLexicon = errors.New("lexicon: word list is empty")

const commentPrefix = "#"

// Load reads a newline-separated word list from r.
// Returns ErrEmptyLexicon when no word remains after filtering.
func Load(r io.Reader) (*HashSet, error) {
	set := NewHashSet()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		set.Add(strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: read word list: %w", err)
	}
	if set.Len() == 0 {
		return nil, ErrEmptyLexicon
	}

	return set, nil
}

// LoadFile opens path and loads it with Load, inflating zlib or gzip content.
func LoadFile(path string) (*HashSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %q: %w", path, err)
	}
	defer f.Close()

	r, err := decompress(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("lexicon: %q: %w", path, err)
	}
	defer r.Close()

	set, err := Load(r)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %q: %w", path, err)
	}
	return set, nil
}

// decompress sniffs the first two bytes of br and wraps it in the matching
// decompressor. Plain text is passed through.
func decompress(br *bufio.Reader) (io.ReadCloser, error) {
	head, err := br.Peek(2)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	switch {
	case isGzip(head):
		return gzip.NewReader(br)
	case isZlib(head):
		return zlib.NewReader(br)
	default:
		return io.NopCloser(br), nil
	}
}

func isGzip(head []byte) bool {
	return len(head) == 2 && head[0] == 0x1f && head[1] == 0x8b
}

// isZlib checks for a deflate CMF byte, no preset dictionary and a valid
// header checksum (RFC 1950).
func isZlib(head []byte) bool {
	if len(head) < 2 || head[0]&0x0f != 8 || head[0]>>4 > 7 || head[1]&0x20 != 0 {
		return false
	}
	return (uint16(head[0])<<8|uint16(head[1]))%31 == 0
}
