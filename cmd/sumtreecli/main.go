// Command sumtreecli demonstrates the sumtree package on chunked text: it
// loads a file into a textchunk.Tree, reports its summary, and then reads
// splice/seek/dump commands from stdin to exercise the tree interactively,
// with a terminal-width-aware colored status line.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/npillmayer/sumtree"
	"github.com/npillmayer/sumtree/textchunk"
)

func main() {
	dotOut := flag.String("dot", "", "write the tree's node structure to this file in Graphviz DOT format")
	watch := flag.Bool("watch", false, "publish a version notification for the loaded tree and report subscriber delivery")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sumtreecli [-dot FILE] [-watch] TEXTFILE")
		os.Exit(2)
	}

	path := flag.Arg(0)
	content, err := os.ReadFile(path)
	if err != nil {
		fatal(err)
	}

	tree, err := textchunk.FromString(string(content))
	if err != nil {
		fatal(err)
	}

	printSummary(path, tree)

	if *dotOut != "" {
		f, err := os.Create(*dotOut)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		sumtree.DumpDOT[textchunk.Chunk, textchunk.Summary](tree, f)
		fmt.Printf("wrote node structure to %s\n", *dotOut)
	}

	if *watch {
		demoWatch(tree)
	}

	runCommandLoop(&tree)
}

// runCommandLoop reads splice/seek/dump commands from stdin, one per line,
// until EOF or a "quit"/"exit" command:
//
//	seek POS               print the text of the chunk covering byte
//	                        offset POS
//	splice START END TEXT  remove the chunks whose first byte lies in
//	                        [START,END) and insert TEXT in their place
//	                        (TEXT may be empty, for a deletion); chunks
//	                        are not split, so a chunk starting before
//	                        START is kept whole
//	dump [FILE]            write the tree's node structure as Graphviz DOT
//	                        to FILE, or stdout if omitted
//
// Unrecognized input is reported to stderr and does not end the loop.
func runCommandLoop(tree *textchunk.Tree) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		switch fields[0] {
		case "seek":
			runSeek(*tree, strings.TrimSpace(stringOrEmpty(fields, 1)))
		case "splice":
			*tree = runSplice(*tree, stringOrEmpty(fields, 1))
		case "dump":
			runDump(*tree, strings.TrimSpace(stringOrEmpty(fields, 1)))
		case "quit", "exit":
			return
		default:
			fmt.Fprintf(os.Stderr, "unrecognized command: %q\n", fields[0])
		}
	}
}

func stringOrEmpty(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}

func runSeek(tree textchunk.Tree, posArg string) {
	pos, err := strconv.Atoi(posArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seek: invalid byte offset %q: %v\n", posArg, err)
		return
	}
	cur := tree.Cursor()
	sumtree.Seek[textchunk.ByteDimension](cur, textchunk.ByteDimension(pos), sumtree.SeekBiasRight)
	chunk, ok := cur.Item()
	if !ok {
		fmt.Println("seek: past end of tree")
		return
	}
	fmt.Printf("chunk at byte %d: %q\n", pos, chunk.String())
}

func runSplice(tree textchunk.Tree, rest string) textchunk.Tree {
	fields := strings.SplitN(rest, " ", 3)
	if len(fields) < 2 {
		fmt.Fprintln(os.Stderr, "splice: usage: splice START END [TEXT]")
		return tree
	}
	start, err := strconv.Atoi(fields[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "splice: invalid start %q: %v\n", fields[0], err)
		return tree
	}
	end, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "splice: invalid end %q: %v\n", fields[1], err)
		return tree
	}
	text := stringOrEmpty(fields, 2)

	var newItems []textchunk.Chunk
	if text != "" {
		newTree, err := textchunk.FromString(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "splice: %v\n", err)
			return tree
		}
		newItems = newTree.Items()
	}

	result, err := sumtree.Splice[textchunk.ByteDimension](tree, textchunk.ByteDimension(start), textchunk.ByteDimension(end), newItems)
	if err != nil {
		fmt.Fprintf(os.Stderr, "splice: %v\n", err)
		return tree
	}
	printSummary("(spliced)", result)
	return result
}

func runDump(tree textchunk.Tree, path string) {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dump: %v\n", err)
			return
		}
		defer f.Close()
		out = f
	}
	sumtree.DumpDOT[textchunk.Chunk, textchunk.Summary](tree, out)
	if path != "" {
		fmt.Printf("wrote node structure to %s\n", path)
	}
}

// demoWatch shows the Watcher bolt-on in action: a subscriber receives the
// tree's current version the moment it is published, without sumtree.Tree
// itself knowing anyone is listening.
func demoWatch(tree textchunk.Tree) {
	w := sumtree.NewWatcher[textchunk.Chunk, textchunk.Summary]()
	defer w.Close()

	ch, unsubscribe := w.Subscribe()
	defer unsubscribe()

	w.Publish(context.Background(), tree)

	v := (<-ch).(sumtree.Version[textchunk.Chunk, textchunk.Summary])
	fmt.Printf("watch: subscriber received version with %d bytes\n", v.Summary.Bytes)
}

func printSummary(path string, tree textchunk.Tree) {
	bold := color.New(color.FgGreen, color.Bold)
	label := color.New(color.FgCyan)

	bold.Printf("%s\n", path)
	s := tree.Summary()
	label.Print("bytes  ")
	fmt.Printf("%d\n", s.Bytes)
	label.Print("chars  ")
	fmt.Printf("%d\n", s.Chars)
	label.Print("lines  ")
	fmt.Printf("%d\n", s.Lines)
	label.Print("width  ")
	fmt.Printf("%d", s.DisplayWidth)
	if w, ok := terminalWidth(); ok {
		fmt.Printf(" (terminal is %d columns wide)", w)
	}
	fmt.Println()
}

// terminalWidth reports the current terminal's column count, using
// term.IsTerminal + term.GetSize on fd 0 to decide whether/how to size
// output to the console.
func terminalWidth() (int, bool) {
	if !term.IsTerminal(0) {
		return 0, false
	}
	w, _, err := term.GetSize(0)
	if err != nil {
		return 0, false
	}
	return w, true
}

func fatal(err error) {
	color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "error:")
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
