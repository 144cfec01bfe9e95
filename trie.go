package trie

import (
	"fmt"
	"maps"
	"unicode/utf8"
)

// Trie is a node in a prefix tree. The root has no incoming character; every
// other node is stored in its parent's children under its incoming character.
type Trie struct {
	char     rune
	hasChar  bool
	children map[rune]*Trie
	leaf     bool
	word     bool
	// settings is shared by every node of one tree.
	settings *settings
}

func newRoot(s *settings) *Trie {
	return &Trie{
		children: make(map[rune]*Trie),
		leaf:     true,
		word:     !s.exact,
		settings: s,
	}
}

func newChild(char rune, s *settings) *Trie {
	return &Trie{
		char:     char,
		hasChar:  true,
		children: make(map[rune]*Trie),
		leaf:     true,
		word:     !s.exact,
		settings: s,
	}
}

// Find returns the node reached by following word from t. The node is returned
// whatever its word flag, so callers that want whole words must check IsWord.
// Only nodes of a built tree can be searched; a zero Trie finds nothing.
func (t *Trie) Find(word string) (*Trie, bool) {
	if t.settings == nil || word == "" || !utf8.ValidString(word) {
		return nil, false
	}
	key, err := t.settings.fold(word)
	if err != nil || key == "" {
		return nil, false
	}
	current := t
	for len(key) > 0 {
		character, size := utf8.DecodeRuneInString(key)
		next, ok := current.children[character]
		if !ok {
			return nil, false
		}
		current = next
		key = key[size:]
	}
	return current, true
}

// Char returns the character on the edge into t. It reports false for the root.
func (t *Trie) Char() (rune, bool) {
	return t.char, t.hasChar
}

// Children returns a copy of the child map keyed by incoming character.
// Changes to the copy are not seen by the tree.
func (t *Trie) Children() map[rune]*Trie {
	return maps.Clone(t.children)
}

// Child returns the child stored under char.
func (t *Trie) Child(char rune) (*Trie, bool) {
	child, ok := t.children[char]
	return child, ok
}

// Len returns the number of children.
func (t *Trie) Len() int {
	return len(t.children)
}

// IsRoot reports whether t has no incoming character.
func (t *Trie) IsRoot() bool {
	return !t.hasChar
}

// IsLeaf reports whether t has no children.
func (t *Trie) IsLeaf() bool {
	return t.leaf
}

// IsWord reports whether t ends an inserted word. See the package docs for
// how the reference and exact modes differ.
func (t *Trie) IsWord() bool {
	return t.word
}

// String renders t as "char,isLeaf,isWord,childCount". The root's character
// renders as null.
func (t *Trie) String() string {
	char := "null"
	if t.hasChar {
		char = string(t.char)
	}
	return fmt.Sprintf("%s,%t,%t,%d", char, t.leaf, t.word, len(t.children))
}
