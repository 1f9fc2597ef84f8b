// SPDX-License-Identifier: GPL-3.0-or-later

// Command gentuple generates the fixed-arity tuple types, tuple rejections,
// and [PartsExtractor] tuples of package extract.
//
// Usage (from the repository root):
//
//	go run ./internal/gentuple -o tuple_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

// minArity and maxArity bound the generated tuple arities.
const (
	minArity = 2
	maxArity = 8
)

var arityNames = map[int]string{
	2: "two",
	3: "three",
	4: "four",
	5: "five",
	6: "six",
	7: "seven",
	8: "eight",
}

func main() {
	output := flag.String("o", "tuple_gen.go", "output file")
	flag.Parse()

	var buf bytes.Buffer
	writeHeader(&buf)
	for n := minArity; n <= maxArity; n++ {
		writeArity(&buf, n)
	}

	source, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("gentuple: formatting generated code: %s", err)
	}
	if err := os.WriteFile(*output, source, 0644); err != nil {
		log.Fatalf("gentuple: %s", err)
	}
}

func writeHeader(buf *bytes.Buffer) {
	buf.WriteString("// SPDX-License-Identifier: GPL-3.0-or-later\n\n")
	buf.WriteString("// Code generated by gentuple; DO NOT EDIT.\n\n")
	buf.WriteString("package extract\n")
}

// seq returns "prefix1, prefix2, ..., prefixN".
func seq(prefix string, n int) string {
	items := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, fmt.Sprintf("%s%d", prefix, i))
	}
	return strings.Join(items, ", ")
}

func writeArity(buf *bytes.Buffer, n int) {
	name := arityNames[n]
	ts, rs := seq("T", n), seq("R", n)
	tuple := fmt.Sprintf("Tuple%d[%s]", n, ts)
	rejection := fmt.Sprintf("Rejection%d[%s]", n, rs)

	// TupleN
	fmt.Fprintf(buf, "\n// Tuple%d holds the values extracted by a %s-member tuple, in declaration order.\n", n, name)
	fmt.Fprintf(buf, "type Tuple%d[%s any] struct {\n", n, ts)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(buf, "\tV%d T%d\n", i, i)
	}
	buf.WriteString("}\n")

	// RejectionN
	fmt.Fprintf(buf, "\n// Rejection%d is the rejection of a %s-member tuple.\n", n, name)
	buf.WriteString("//\n")
	buf.WriteString("// It records which member rejected the request and carries that\n")
	buf.WriteString("// member's rejection unchanged.\n")
	fmt.Fprintf(buf, "type Rejection%d[%s Rejection] struct {\n", n, rs)
	buf.WriteString("\tpos int\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(buf, "\tr%d  R%d\n", i, i)
	}
	buf.WriteString("}\n")

	buf.WriteString("\n// Position returns the 1-based position of the member that rejected the request.\n")
	fmt.Fprintf(buf, "func (r *%s) Position() int {\n", rejection)
	buf.WriteString("\treturn r.pos\n")
	buf.WriteString("}\n")

	for i := 1; i <= n; i++ {
		fmt.Fprintf(buf, "\n// Get%d returns the rejection of member %d and whether member %d rejected the request.\n", i, i, i)
		fmt.Fprintf(buf, "func (r *%s) Get%d() (R%d, bool) {\n", rejection, i, i)
		fmt.Fprintf(buf, "\treturn r.r%d, r.pos == %d\n", i, i)
		buf.WriteString("}\n")
	}

	buf.WriteString("\n// Unwrap returns the rejection of the member that rejected the request.\n")
	fmt.Fprintf(buf, "func (r *%s) Unwrap() error {\n", rejection)
	buf.WriteString("\tswitch r.pos {\n")
	for i := 1; i < n; i++ {
		fmt.Fprintf(buf, "\tcase %d:\n", i)
		fmt.Fprintf(buf, "\t\treturn r.r%d\n", i)
	}
	buf.WriteString("\tdefault:\n")
	fmt.Fprintf(buf, "\t\treturn r.r%d\n", n)
	buf.WriteString("\t}\n")
	buf.WriteString("}\n")

	buf.WriteString("\n// Error implements [error].\n")
	fmt.Fprintf(buf, "func (r *%s) Error() string {\n", rejection)
	buf.WriteString("\treturn rejectionMessage(r.pos, r.Unwrap())\n")
	buf.WriteString("}\n")

	// PartsN
	fmt.Fprintf(buf, "\n// Parts%d composes %s [PartsExtractor] into a [PartsExtractor] of [Tuple%d].\n", n, name, n)
	buf.WriteString("//\n")
	buf.WriteString("// The members run left to right against the same [*Parts]. The first member\n")
	buf.WriteString("// to reject stops the extraction, the remaining members do not run, and the\n")
	fmt.Fprintf(buf, "// result is a [*Rejection%d] tagged with the position of that member.\n", n)
	fmt.Fprintf(buf, "func Parts%d[%s any, %s Rejection](\n", n, ts, rs)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(buf, "\te%d PartsExtractor[T%d, R%d],\n", i, i, i)
	}
	fmt.Fprintf(buf, ") PartsExtractor[%s, *%s] {\n", tuple, rejection)
	fmt.Fprintf(buf, "\treturn &parts%d[%s, %s]{%s}\n", n, ts, rs, seq("e", n))
	buf.WriteString("}\n")

	fmt.Fprintf(buf, "\ntype parts%d[%s any, %s Rejection] struct {\n", n, ts, rs)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(buf, "\te%d PartsExtractor[T%d, R%d]\n", i, i, i)
	}
	buf.WriteString("}\n")

	buf.WriteString("\n// ExtractParts implements [PartsExtractor].\n")
	fmt.Fprintf(buf, "func (p *parts%d[%s, %s]) ExtractParts(parts *Parts) (%s, *%s) {\n", n, ts, rs, tuple, rejection)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(buf, "\tv%d, r%d := p.e%d.ExtractParts(parts)\n", i, i, i)
		fmt.Fprintf(buf, "\tif Rejected(r%d) {\n", i)
		fmt.Fprintf(buf, "\t\treturn %s{}, &%s{pos: %d, r%d: r%d}\n", tuple, rejection, i, i, i)
		buf.WriteString("\t}\n")
	}
	values := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		values = append(values, fmt.Sprintf("V%d: v%d", i, i))
	}
	fmt.Fprintf(buf, "\treturn %s{%s}, nil\n", tuple, strings.Join(values, ", "))
	buf.WriteString("}\n")
}
