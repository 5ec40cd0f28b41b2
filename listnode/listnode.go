// Package listnode owns the singly linked list bean used by solution code.
package listnode

import (
	"fmt"
	"strconv"
	"strings"
)

// ListNode is a singly linked list node.
type ListNode struct {
	Val  int
	Next *ListNode
}

// FromValues builds a list holding vals in order. No values yields nil.
func FromValues(vals ...int) *ListNode {
	head := &ListNode{}
	tail := head
	for _, v := range vals {
		tail.Next = &ListNode{Val: v}
		tail = tail.Next
	}
	return head.Next
}

// Values returns the list's values in order.
func (n *ListNode) Values() []int {
	var vals []int
	for node := n; node != nil; node = node.Next {
		vals = append(vals, node.Val)
	}
	return vals
}

// String renders a single node for display. A nil node renders as "null".
func (n *ListNode) String() string {
	if n == nil {
		return "null"
	}
	return fmt.Sprintf("ListNode[val=%d]", n.Val)
}

// Format renders the whole list as a bracketed value sequence, e.g.
// "[1, 2, 3]". An empty list renders as "[]".
func Format(head *ListNode) string {
	var b strings.Builder
	b.WriteByte('[')
	for node := head; node != nil; node = node.Next {
		if node != head {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(node.Val))
	}
	b.WriteByte(']')
	return b.String()
}
