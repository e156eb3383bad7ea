// printer.go: canonical re-emission of node trees as brace text.
//
// Format is deterministic and stable under reparsing: for any node n,
// ParseDocument(Format(n)) rebuilds n, and formatting is idempotent after
// the first normalization pass (separating commas and odd spacing are
// gone; number runs inside mixed branches come back braced).
package ttree

import (
	"strconv"
	"strings"
)

// Format renders n as brace text on one line.
func Format(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// FormatIndent renders n as nested, indented brace text for inspection.
func FormatIndent(n Node) string {
	var b strings.Builder
	writeNodeIndent(&b, n, 0)
	return b.String()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeNode(b *strings.Builder, n Node) {
	switch node := n.(type) {
	case *Leaf:
		b.WriteByte('{')
		for i, v := range node.Values {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatValue(v))
		}
		b.WriteByte('}')
	case *Branch:
		b.WriteByte('{')
		for _, ch := range node.Children {
			writeNode(b, ch)
		}
		b.WriteByte('}')
	}
}

func writeNodeIndent(b *strings.Builder, n Node, depth int) {
	pad := strings.Repeat("  ", depth)
	switch node := n.(type) {
	case *Leaf:
		b.WriteString(pad)
		b.WriteByte('{')
		for i, v := range node.Values {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatValue(v))
		}
		b.WriteByte('}')
		b.WriteByte('\n')
	case *Branch:
		b.WriteString(pad)
		b.WriteString("{\n")
		for _, ch := range node.Children {
			writeNodeIndent(b, ch, depth+1)
		}
		b.WriteString(pad)
		b.WriteString("}\n")
	}
}
