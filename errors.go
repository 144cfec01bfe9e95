package trie

import "errors"

// ErrEmptyWord is returned by Build when an entry is empty, either as given
// or after key folding.
var ErrEmptyWord = errors.New("[trie] empty word")

// ErrInvalidWord is returned by Build when an entry is not valid UTF-8.
var ErrInvalidWord = errors.New("[trie] invalid UTF-8 word")
