package treenode

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a non-absent token that is not a valid integer.
// Build aborts on the first ParseError and returns no partial tree.
type ParseError struct {
	Token string
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("treenode: bad token %q at index %d", e.Token, e.Index)
}

func (e *ParseError) Unwrap() error { return e.Err }

// isAbsent reports whether a token marks "no node here". The markers
// "null", "#", and empty text are synonyms.
func isAbsent(token string) bool {
	switch strings.TrimSpace(token) {
	case "", NullToken, "#":
		return true
	}
	return false
}

func parseVal(tokens []string, i int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(tokens[i]))
	if err != nil {
		return 0, &ParseError{Token: tokens[i], Index: i, Err: err}
	}
	return v, nil
}

// Build reconstructs a binary tree from its level-order token sequence.
//
// Token 0 becomes the root; reconstruction then proceeds breadth-first,
// consuming two tokens per pending parent (left slot, then right slot).
// An absence marker leaves the slot empty. A sequence that runs out of
// tokens mid-tree is tolerated: reconstruction stops early and the
// partial tree built so far is returned. An empty sequence, or an absent
// first token, yields a nil root.
func Build(tokens []string) (*TreeNode, error) {
	if len(tokens) == 0 || isAbsent(tokens[0]) {
		return nil, nil
	}

	rootVal, err := parseVal(tokens, 0)
	if err != nil {
		return nil, err
	}
	root := New(rootVal)

	pending := []*TreeNode{root}
	next := 1
	for len(pending) > 0 && next < len(tokens) {
		parent := pending[0]
		pending = pending[1:]

		if !isAbsent(tokens[next]) {
			v, err := parseVal(tokens, next)
			if err != nil {
				return nil, err
			}
			parent.Left = New(v)
			pending = append(pending, parent.Left)
		}
		next++
		if next >= len(tokens) {
			break
		}

		if !isAbsent(tokens[next]) {
			v, err := parseVal(tokens, next)
			if err != nil {
				return nil, err
			}
			parent.Right = New(v)
			pending = append(pending, parent.Right)
		}
		next++
	}
	return root, nil
}

// BuildInts reconstructs a tree from the nullable-integer encoding: each
// value is stringified token-for-token, nil mapping to the absence
// marker, and reconstruction proceeds exactly as Build.
func BuildInts(vals []*int) (*TreeNode, error) {
	tokens := make([]string, len(vals))
	for i, v := range vals {
		if v == nil {
			tokens[i] = NullToken
			continue
		}
		tokens[i] = strconv.Itoa(*v)
	}
	return Build(tokens)
}
