// Package treenode owns the binary-tree bean and its level-order codec.
//
// Ownership boundary:
// - tree node shape
// - level-order token reconstruction
// - display and traversal helpers
package treenode

import (
	"fmt"
	"strconv"
)

// NullToken is the canonical absence marker in level-order sequences.
const NullToken = "null"

// TreeNode is a binary tree node. A node exclusively owns its left and
// right subtrees; the structure is acyclic and finite.
type TreeNode struct {
	Val   int
	Left  *TreeNode
	Right *TreeNode
}

// New creates a leaf node holding v.
func New(v int) *TreeNode {
	return &TreeNode{Val: v}
}

// String renders a single node for display. A nil node renders as the
// absence marker. This is not a whole-tree serialization.
func (n *TreeNode) String() string {
	if n == nil {
		return NullToken
	}
	return fmt.Sprintf("TreeNode[val=%d]", n.Val)
}

// LevelOrder returns the values of present nodes in breadth-first order,
// left-to-right within each level. An empty tree yields an empty slice.
func LevelOrder(root *TreeNode) []int {
	if root == nil {
		return nil
	}
	vals := make([]int, 0, 8)
	queue := []*TreeNode{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		vals = append(vals, node.Val)
		if node.Left != nil {
			queue = append(queue, node.Left)
		}
		if node.Right != nil {
			queue = append(queue, node.Right)
		}
	}
	return vals
}

// Tokens emits the level-order token form of a tree, with absence markers
// for missing children of present nodes. Trailing markers are trimmed so
// the output stays minimal; Build on the result reproduces the tree.
func Tokens(root *TreeNode) []string {
	if root == nil {
		return nil
	}
	tokens := make([]string, 0, 8)
	queue := []*TreeNode{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node == nil {
			tokens = append(tokens, NullToken)
			continue
		}
		tokens = append(tokens, strconv.Itoa(node.Val))
		queue = append(queue, node.Left, node.Right)
	}
	for len(tokens) > 0 && tokens[len(tokens)-1] == NullToken {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
