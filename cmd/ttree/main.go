// cmd/ttree/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/sariths/frads/ttree"
)

const (
	appName     = "ttree"
	historyFile = ".ttree_history"
	prompt      = "==> "
	banner      = "tensor-tree inspector — Ctrl+C to cancel input, Ctrl+D to exit. Type :help for commands."
	helpText    = `
Commands:
  lookup X [Y]     Match the incident position (Y required for TensorTree4)
  :variant 3|4     Switch tree variant (isotropic | anisotropic)
  :depth           Print the cached tree depth
  :fmt             Pretty-print the parsed tree
  :validate        Check the tree shape against the variant's tables
  :help            Show this help
  :quit / :exit    Exit
`
)

func main() {
	var evalStr string
	var variantStr string
	flag.StringVar(&evalStr, "e", "", "Run the given inspector command and exit")
	flag.StringVar(&variantStr, "variant", "4", `Tree variant: "4" (anisotropic) or "3" (isotropic)`)
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-variant 3|4] [-e command] <file>\n", appName)
		os.Exit(2)
	}

	variant, err := parseVariant(variantStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(2)
	}

	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		os.Exit(1)
	}

	tree, err := ttree.Parse(string(src), variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, ttree.WrapErrorWithName(err, path, string(src)))
		os.Exit(1)
	}

	if evalStr != "" {
		if _, err := runCommand(tree, evalStr); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			os.Exit(1)
		}
		return
	}

	os.Exit(runREPL(tree))
}

func parseVariant(s string) (ttree.Variant, error) {
	switch s {
	case "4", "TensorTree4":
		return ttree.Anisotropic, nil
	case "3", "TensorTree3":
		return ttree.Isotropic, nil
	}
	return 0, fmt.Errorf("unknown variant %q (want 3 or 4)", s)
}

// ---- REPL ------------------------------------------------------------------

func runREPL(tree *ttree.Tree) int {
	fmt.Println(banner)
	printSummary(tree)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// Load history (best-effort)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			// Ctrl+C aborts the current input; let the user start again.
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		newTree, err := runCommand(tree, line)
		if err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			fmt.Println(err)
			continue
		}
		if newTree != nil {
			tree = newTree
		}
		ln.AppendHistory(line)
	}

	// Persist history (best-effort)
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

var errQuit = errors.New("quit")

// runCommand executes one inspector command against tree. A non-nil tree
// return value replaces the session's tree (:variant does this).
func runCommand(tree *ttree.Tree, line string) (*ttree.Tree, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "lookup":
		return nil, runLookup(tree, fields[1:])

	case ":help":
		fmt.Print(helpText)

	case ":quit", ":exit":
		return nil, errQuit

	case ":depth":
		fmt.Println(tree.Depth())

	case ":fmt":
		fmt.Print(ttree.FormatIndent(tree.Root()))

	case ":validate":
		if err := tree.Validate(); err != nil {
			return nil, err
		}
		fmt.Println("ok")

	case ":variant":
		if len(fields) < 2 {
			fmt.Println("usage: :variant 3|4")
			return nil, nil
		}
		v, err := parseVariant(fields[1])
		if err != nil {
			return nil, err
		}
		newTree, err := ttree.NewTree(tree.Root(), v)
		if err != nil {
			return nil, err
		}
		fmt.Printf("variant set to %s\n", v)
		return newTree, nil

	default:
		return nil, fmt.Errorf("unknown command %q. Type :help for help", fields[0])
	}
	return nil, nil
}

func runLookup(tree *ttree.Tree, args []string) error {
	coords := make([]float64, 0, 2)
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("bad coordinate %q", a)
		}
		coords = append(coords, v)
	}

	var matches []ttree.Node
	var err error
	switch tree.Variant() {
	case ttree.Anisotropic:
		if len(coords) != 2 {
			return errors.New("usage: lookup X Y")
		}
		matches, err = tree.Lookup(coords[0], coords[1])
	case ttree.Isotropic:
		if len(coords) != 1 {
			return errors.New("usage: lookup X")
		}
		matches, err = tree.Lookup1(coords[0])
	}
	if err != nil {
		return err
	}
	for i, m := range matches {
		fmt.Printf("[%d] %s\n", i, ttree.Format(m))
	}
	return nil
}

func printSummary(tree *ttree.Tree) {
	branches, leaves, values := 0, 0, 0
	var walk func(n ttree.Node)
	walk = func(n ttree.Node) {
		switch node := n.(type) {
		case *ttree.Leaf:
			leaves++
			values += len(node.Values)
		case *ttree.Branch:
			branches++
			for _, ch := range node.Children {
				walk(ch)
			}
		}
	}
	walk(tree.Root())
	fmt.Printf("%s: depth %d, %d branches, %d leaves, %d values\n",
		tree.Variant(), tree.Depth(), branches, leaves, values)
}
