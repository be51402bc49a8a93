// Package words extracts the unique words of a text.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultFilename is the file read when no other file is given.
const DefaultFilename = "sample.txt"

// punctuation holds the ASCII punctuation characters removed before splitting.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var ErrInvalidUTF8 = errors.New("text is not valid UTF-8")

var stripPunctuation = strings.NewReplacer(punctuationPairs()...)

func punctuationPairs() []string {
	pairs := make([]string, 0, len(punctuation)*2)
	for _, r := range punctuation {
		pairs = append(pairs, string(r), "")
	}
	return pairs
}

// isSpace also treats the file, group, record and unit separators as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// Extract reads r line by line and returns its unique words in ascending order.
// Words are lowercased with ASCII punctuation removed and split on whitespace.
// Lines have no length limit; text that is not valid UTF-8 is rejected.
func Extract(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})

	reader := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if !utf8.ValidString(line) {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrInvalidUTF8)
			}
			line = strings.ToLower(stripPunctuation.Replace(line))
			for _, word := range strings.FieldsFunc(line, isSpace) {
				seen[word] = struct{}{}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading words: %w", err)
		}
	}

	words := make([]string, 0, len(seen))
	for word := range seen {
		words = append(words, word)
	}
	slices.Sort(words)
	return words, nil
}

// ExtractFile returns the unique words of the file at path.
func ExtractFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	return Extract(file)
}

// Write prints one word per line.
func Write(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
