package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kvindex/bptree/bptree"
)

// runREPL reads SET/GET/DEL/RANGE/PRINT/VALIDATE/EXIT commands from r,
// writing responses to w. Keys and values are both plain strings; keys are
// ordered lexicographically, so a numeric key such as "10" sorts before "9".
func runREPL(r io.Reader, w io.Writer, tree *bptree.Tree[string, string]) {
	scanner := bufio.NewScanner(r)
	fmt.Fprintln(w, "bptreecli — SET key value | GET key | DEL key | RANGE lo hi | PRINT | VALIDATE | EXIT")
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := strings.ToUpper(fields[0])

		switch cmd {
		case "EXIT", "QUIT":
			return

		case "SET":
			if len(fields) != 3 {
				fmt.Fprintln(w, "usage: SET key value")
				continue
			}
			if err := tree.Insert(fields[1], fields[2]); err != nil {
				fmt.Fprintln(w, "error:", err)
				continue
			}
			fmt.Fprintln(w, "OK")

		case "GET":
			if len(fields) != 2 {
				fmt.Fprintln(w, "usage: GET key")
				continue
			}
			v, ok := tree.Search(fields[1])
			if !ok {
				fmt.Fprintln(w, "(not found)")
				continue
			}
			fmt.Fprintln(w, v)

		case "DEL":
			if len(fields) != 2 {
				fmt.Fprintln(w, "usage: DEL key")
				continue
			}
			tree.Delete(fields[1])
			fmt.Fprintln(w, "OK")

		case "RANGE":
			if len(fields) != 3 {
				fmt.Fprintln(w, "usage: RANGE lo hi")
				continue
			}
			for _, v := range tree.RangeQuery(fields[1], fields[2]) {
				fmt.Fprintln(w, v)
			}

		case "PRINT":
			printTree(w, tree)

		case "VALIDATE":
			if tree.Validate() {
				fmt.Fprintln(w, "OK")
			} else {
				fmt.Fprintln(w, "INVALID")
			}

		default:
			fmt.Fprintln(w, "unknown command:", cmd)
		}
	}
}
