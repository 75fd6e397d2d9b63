package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/kvindex/bptree/bptree"
)

var (
	internalColor  = color.New(color.FgCyan)
	leafColor      = color.New(color.FgGreen)
	separatorStyle = color.New(color.FgYellow, color.Bold)
)

// printTree renders tree level by level, internal separators in cyan and
// leaf keys in green, grounded in the level-order BFS dump the original
// source's printTree performed (minus the logging queue machinery, which
// has no place in a CLI command).
func printTree(w io.Writer, tree *bptree.Tree[string, string]) {
	levels := tree.Levels()
	for depth, level := range levels {
		label := fmt.Sprintf("L%d", depth)
		var nodes []string
		for _, n := range level {
			keys := strings.Join(n.Keys, separatorStyle.Sprint(" | "))
			if n.IsLeaf {
				nodes = append(nodes, leafColor.Sprintf("[%s]", keys))
			} else {
				nodes = append(nodes, internalColor.Sprintf("(%s)", keys))
			}
		}
		fmt.Fprintf(w, "%-3s %s\n", label, strings.Join(nodes, "  "))
	}
}
