/*
Package trie provides an immutable prefix tree over strings.

A trie is built once from a slice of words and never changes afterwards. Each
edge is labeled with a single rune, and every node is itself a trie rooted at
that node, so Find works from the root or from any interior node.

By default the word flag follows the reference behaviour: a node stops being a
word as soon as any inserted word continues past it, even when that node also
ends a shorter word. Use Builder.ExactWords for the corrected semantics.
*/
package trie
