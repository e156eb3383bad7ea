// parser.go: recursive-descent builder for tensor-tree data blocks.
//
// Grammar (whitespace and commas separate tokens anywhere):
//
//	document  := '{' node-list '}'
//	node-list := (node | number)*
//	node      := document
//
// A brace group containing only numbers builds a Leaf. A group containing
// sub-groups builds a Branch; any run of consecutive numbers inside it is
// folded into one Leaf child at the next structural boundary.
package ttree

// ParseDocument builds the node tree for one scattering-data block.
// The first token must be '{'; tokens after the matching '}' are ignored,
// as the legacy decoder did.
func ParseDocument(text string) (Node, error) {
	lx := NewLexer(text)
	tok, err := lx.Next()
	if err != nil {
		return nil, err
	}
	if tok.Type != LBRACE {
		return nil, &Error{Kind: DiagFormat, Line: tok.Line, Col: tok.Col, Msg: "missing opening brace"}
	}
	return parseGroup(lx)
}

// parseGroup consumes tokens up to and including the '}' that closes the
// group whose '{' the caller already consumed.
func parseGroup(lx *Lexer) (Node, error) {
	var children []Node
	var run []float64

	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case LBRACE:
			if len(run) > 0 {
				children = append(children, &Leaf{Values: run})
				run = nil
			}
			child, err := parseGroup(lx)
			if err != nil {
				return nil, err
			}
			children = append(children, child)

		case RBRACE:
			if len(children) == 0 {
				// numbers only (or nothing): the group is a leaf cell
				if len(run) > 0 {
					return &Leaf{Values: run}, nil
				}
				return &Branch{}, nil
			}
			if len(run) > 0 {
				children = append(children, &Leaf{Values: run})
			}
			return &Branch{Children: children}, nil

		case NUMBER:
			run = append(run, tok.Value)

		case EOF:
			return nil, &Error{
				Kind: DiagIncomplete,
				Line: tok.Line,
				Col:  tok.Col,
				Msg:  "unexpected end of input: missing '}'",
			}
		}
	}
}
