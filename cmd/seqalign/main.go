// Command seqalign aligns pairs of symbol sequences from the command
// line and prints fixed-width reports.
//
// Usage:
//
//	seqalign global ROW COL [flags]
//	seqalign local ROW COL [flags]
//	seqalign demo
package main

func main() {
	Execute()
}
