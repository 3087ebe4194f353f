package parser

import (
	"fmt"

	"showline-hq/beacon/pkg/template/ast"
)

// Issue is a non-fatal problem found while parsing a template. The
// parser is lenient: rendering must never fail on authored input, so
// malformed structure degrades to literal text and is reported here for
// the caller to log or count.
type Issue struct {
	Message  string
	Position ast.Position
}

func (i Issue) String() string {
	if i.Position.IsValid() {
		return fmt.Sprintf("%s: %s", i.Position, i.Message)
	}
	return i.Message
}

// Parse builds the template AST from source text. It always returns a
// usable template; structural problems (unclosed blocks, stray
// {{#else}} or {{/if}} markers) are reported as issues alongside.
func Parse(text string) (*ast.Template, []Issue) {
	p := &treeParser{tokens: Lex(text)}
	nodes := p.parseNodes(nil)
	return &ast.Template{Nodes: nodes, Source: text}, p.issues
}

type treeParser struct {
	tokens []Token
	pos    int
	issues []Issue
}

func (p *treeParser) next() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *treeParser) addIssue(msg string, pos ast.Position) {
	p.issues = append(p.issues, Issue{Message: msg, Position: pos})
}

// parseNodes consumes tokens until EOF or until stop reports that a
// token terminates the current block. Terminating tokens are left
// unconsumed for the caller.
func (p *treeParser) parseNodes(stop func(Token) bool) []ast.Node {
	var nodes []ast.Node
	for {
		tok, ok := p.next()
		if !ok {
			return nodes
		}
		if stop != nil && stop(tok) {
			p.pos--
			return nodes
		}

		switch tok.Type {
		case TokenText:
			nodes = append(nodes, &ast.Literal{Text: tok.Raw, Position: tok.Position})

		case TokenVariable:
			path, filter := SplitFilter(tok.Content)
			nodes = append(nodes, &ast.Variable{
				Path:     path,
				Filter:   filter,
				Raw:      tok.Raw,
				Position: tok.Position,
			})

		case TokenIf:
			nodes = append(nodes, p.parseConditional(tok))

		case TokenElse:
			p.addIssue("unexpected {{#else}}", tok.Position)
			nodes = append(nodes, &ast.Literal{Text: tok.Raw, Position: tok.Position})

		case TokenEndIf:
			p.addIssue("{{/if}} without a matching {{#if}}", tok.Position)
			nodes = append(nodes, &ast.Literal{Text: tok.Raw, Position: tok.Position})
		}
	}
}

// parseConditional parses the body of an {{#if}} block, including an
// optional single {{#else}} separator, up to the matching {{/if}}.
func (p *treeParser) parseConditional(open Token) *ast.Conditional {
	cond := &ast.Conditional{
		Cond:     ParseExpr(open.Content),
		Position: open.Position,
	}

	cond.Then = p.parseNodes(func(t Token) bool {
		return t.Type == TokenElse || t.Type == TokenEndIf
	})

	tok, ok := p.next()
	if !ok {
		p.addIssue("unclosed {{#if}} block", open.Position)
		return cond
	}

	if tok.Type == TokenElse {
		cond.Else = p.parseNodes(func(t Token) bool { return t.Type == TokenEndIf })
		if _, ok := p.next(); !ok {
			p.addIssue("unclosed {{#if}} block", open.Position)
		}
	}

	return cond
}
