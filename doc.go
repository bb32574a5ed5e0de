/*
Package tst provides a ternary search tree: an ordered set of words supporting
exact lookup, prefix queries, insertion and deletion.

Each node holds one character and three children for smaller characters,
the next character and larger characters. Keys are trimmed, case folded and
checked against an alphabet before every operation; a malformed key returns
an error matching ErrInvalidInput and leaves the tree untouched. Words that
are absent are reported as false or an empty result, never as an error.

A Tree performs no locking. Use Synced to share one between goroutines.
*/
package tst
