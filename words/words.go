// Package words holds the dictionary of candidate words. A Dictionary is
// loaded once (from a file or the embedded default list) and is read-only for
// the lifetime of the process; solving sessions narrow their own working copy
// and never touch the dictionary itself.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// Length is the number of letters in every word of the game.
const Length = 5

// Word is a fixed-length sequence of lowercase letters.
type Word [Length]rune

func (w Word) String() string {
	return string(w[:])
}

// Parse validates and lowercases a raw string. The string must be exactly
// Length letters a-z after lowercasing.
func Parse(s string) (Word, error) {
	var w Word
	runes := []rune(strings.ToLower(s))
	if len(runes) != Length {
		return w, fmt.Errorf("word %q: want %d letters, got %d", s, Length, len(runes))
	}
	for i, r := range runes {
		if r < 'a' || r > 'z' {
			return w, fmt.Errorf("word %q: %q is not a letter", s, r)
		}
		w[i] = r
	}
	return w, nil
}

// MustParse is Parse for words known good at compile time.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

//go:embed default_words.txt
var defaultWords string

// Dictionary is an ordered collection of unique Words with index lookup.
type Dictionary struct {
	words []Word
	index map[Word]int
}

// Load reads one word per line. Lines of the wrong length or containing
// non-alphabetic characters are silently discarded, as are duplicates.
// Words are lowercased.
func Load(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{index: make(map[Word]int)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		w, err := Parse(line)
		if err != nil {
			continue
		}
		if _, ok := d.index[w]; ok {
			continue
		}
		d.index[w] = len(d.words)
		d.words = append(d.words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return d, nil
}

// LoadFile loads a dictionary from a word-per-line text file.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the dictionary built from the embedded word list.
func Default() *Dictionary {
	d, err := Load(strings.NewReader(defaultWords))
	if err != nil {
		panic(err)
	}
	return d
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// At returns the word at dictionary position i.
func (d *Dictionary) At(i int) Word {
	return d.words[i]
}

// Index returns the dictionary position of w.
func (d *Dictionary) Index(w Word) (int, bool) {
	i, ok := d.index[w]
	return i, ok
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w Word) bool {
	_, ok := d.index[w]
	return ok
}

// Words returns a copy of the word list in dictionary order.
func (d *Dictionary) Words() []Word {
	ret := make([]Word, len(d.words))
	copy(ret, d.words)
	return ret
}

// Strings returns the word list as strings, mostly for logging and tests.
func (d *Dictionary) Strings() []string {
	ret := make([]string, 0, len(d.words))
	for _, w := range d.words {
		ret = append(ret, w.String())
	}
	return ret
}
