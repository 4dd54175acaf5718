package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ListItems uses a markdown AST to collect the text of every list item in
// source, in document order. Nested lists contribute their own items; the
// item text is the content of its first block only.
func ListItems(source []byte) ([]string, error) {
	var items []string
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		item, ok := node.(*ast.ListItem)
		if !ok {
			return ast.WalkContinue, nil
		}

		// The first child holds the item's own text; any nested list is a
		// later sibling and is visited by the walk itself.
		if child := item.FirstChild(); child != nil {
			if _, isList := child.(*ast.List); !isList {
				if txt := strings.TrimSpace(string(child.Text(source))); txt != "" {
					items = append(items, txt)
				}
			}
		}
		return ast.WalkContinue, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return nil, err
	}

	return items, nil
}
