package trie

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// settings decides how keys are folded and how the word flag is kept.
type settings struct {
	normalised, caseSensitive bool
	// exact marks a node as a word only where an inserted word ends.
	// Otherwise a node stays a word until some insertion continues past it.
	exact bool
}

// fold maps s to the key stored in the tree.
func (s *settings) fold(word string) (string, error) {
	if s.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		normal, _, err := transform.String(transformer, word)
		if err != nil {
			return "", err
		}
		word = normal
	}
	if !s.caseSensitive {
		word = strings.ToLower(word)
	}
	return word, nil
}

// Builder configures how a Trie is built. The zero value is not usable; call
// NewBuilder.
type Builder struct {
	settings settings
}

// NewBuilder creates a builder with the reference defaults: case sensitive,
// no normalisation and the reference word flag.
func NewBuilder() *Builder {
	b := new(Builder)
	b.WithoutNormalisation()
	b.CaseSensitive()
	b.ReferenceWords()
	return b
}

// WithNormalisation strips diacritics from keys at build and find time.
// For example, Jurg will find Jürgen.
func (b *Builder) WithNormalisation() *Builder {
	b.settings.normalised = true
	return b
}

// WithoutNormalisation keeps diacritics in keys.
func (b *Builder) WithoutNormalisation() *Builder {
	b.settings.normalised = false
	return b
}

// CaseSensitive keeps keys as given.
func (b *Builder) CaseSensitive() *Builder {
	b.settings.caseSensitive = true
	return b
}

// CaseInsensitive lower-cases keys at build and find time.
func (b *Builder) CaseInsensitive() *Builder {
	b.settings.caseSensitive = false
	return b
}

// ExactWords marks a node as a word iff some inserted word ends there,
// regardless of later words passing through it.
func (b *Builder) ExactWords() *Builder {
	b.settings.exact = true
	return b
}

// ReferenceWords starts every node as a word and clears the flag whenever an
// insertion continues past the node. Inserting "cats" therefore clears "cat"
// whichever comes first.
func (b *Builder) ReferenceWords() *Builder {
	b.settings.exact = false
	return b
}

// Build builds a trie from words using the builder's settings.
//
// An empty slice yields a nil Trie and a nil error: there is nothing to build.
// An empty entry aborts the whole build with an error wrapping ErrEmptyWord,
// and an entry that is not valid UTF-8 with one wrapping ErrInvalidWord.
func (b *Builder) Build(words []string) (*Trie, error) {
	if len(words) == 0 {
		return nil, nil
	}
	s := b.settings
	keys := make([]string, len(words))
	for i, word := range words {
		if !utf8.ValidString(word) {
			return nil, fmt.Errorf("word %d %q: %w", i, word, ErrInvalidWord)
		}
		key, err := s.fold(word)
		if err != nil {
			return nil, fmt.Errorf("fold word %d %q: %w", i, word, err)
		}
		if key == "" {
			return nil, fmt.Errorf("word %d %q: %w", i, word, ErrEmptyWord)
		}
		keys[i] = key
	}
	root := newRoot(&s)
	for _, key := range keys {
		root.insert(key)
	}
	return root, nil
}

// Build builds a trie from words with NewBuilder's defaults.
func Build(words []string) (*Trie, error) {
	return NewBuilder().Build(words)
}

// insert adds the non-empty key below t, one rune per level.
func (t *Trie) insert(key string) {
	character, size := utf8.DecodeRuneInString(key)
	child, ok := t.children[character]
	if !ok {
		child = newChild(character, t.settings)
		t.children[character] = child
	}
	t.leaf = false

	rest := key[size:]
	if rest == "" {
		if t.settings.exact {
			child.word = true
		}
		return
	}
	child.insert(rest)
	if !t.settings.exact {
		child.word = false
	}
}
