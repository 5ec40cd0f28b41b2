package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wuxin0011/lckit/treenode"
)

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "build and inspect binary trees from level-order tokens",
	}
	cmd.AddCommand(newTreeBuildCmd(), newTreeFixtureCmd())
	return cmd
}

func newTreeBuildCmd() *cobra.Command {
	var raw string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "reconstruct a tree from a level-order token sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := treenode.Build(splitTokens(raw))
			if err != nil {
				return err
			}
			printTree(cmd, root)
			return nil
		},
	}
	cmd.Flags().StringVar(&raw, "tokens", "", `level-order tokens, e.g. "1,null,2" or "[1,null,2]"`)
	return cmd
}

func newTreeFixtureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixture",
		Short: "print the 15-node reference tree",
		Run: func(cmd *cobra.Command, args []string) {
			printTree(cmd, treenode.Fixture())
		},
	}
}

func printTree(cmd *cobra.Command, root *treenode.TreeNode) {
	if root == nil {
		cmd.Println("(empty tree)")
		return
	}
	cmd.Printf("tokens: [%s]\n", strings.Join(treenode.Tokens(root), ","))
	for i, level := range levels(root) {
		cmd.Printf("level %d: %s\n", i, strings.Join(level, " "))
	}
}

// levels groups present-node values by depth, using the absence marker
// for missing children of present nodes.
func levels(root *treenode.TreeNode) [][]string {
	var out [][]string
	current := []*treenode.TreeNode{root}
	for len(current) > 0 {
		row := make([]string, 0, len(current))
		var next []*treenode.TreeNode
		for _, node := range current {
			if node == nil {
				row = append(row, treenode.NullToken)
				continue
			}
			row = append(row, strconv.Itoa(node.Val))
			if node.Left != nil || node.Right != nil {
				next = append(next, node.Left, node.Right)
			}
		}
		out = append(out, row)
		current = next
	}
	return out
}

// splitTokens accepts comma or whitespace separated tokens, with an
// optional surrounding bracket pair. Consecutive commas produce empty
// tokens, which the codec reads as absence markers.
func splitTokens(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			tokens = append(tokens, "")
			continue
		}
		tokens = append(tokens, fields...)
	}
	return tokens
}
