package treenode

// Fixture builds the reference tree: a complete binary tree of 15 nodes
// across 4 levels, values 0..14 assigned in level order. Every call
// returns a fresh, identical structure.
func Fixture() *TreeNode {
	nodes := make([]*TreeNode, 15)
	for i := range nodes {
		nodes[i] = New(i)
	}
	for i := 0; i < 7; i++ {
		nodes[i].Left = nodes[2*i+1]
		nodes[i].Right = nodes[2*i+2]
	}
	return nodes[0]
}
