package engine

import (
	"log/slog"
	"strings"
	"time"

	"showline-hq/beacon/pkg/telemetry/metrics"
	"showline-hq/beacon/pkg/template/ast"
	"showline-hq/beacon/pkg/template/parser"
)

// Engine renders notification templates against a context. All methods
// are pure functions of their inputs and fail soft: malformed input
// degrades to literal text and absent fields render empty, so a broken
// template can never fail the calling request. A single Engine is safe
// for concurrent use.
type Engine struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	filters Registry
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger used for parse-degradation
// warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics attaches Prometheus instrumentation to the engine.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithFilter registers an additional value filter, or overrides a
// built-in one of the same name.
func WithFilter(name string, f Filter) Option {
	return func(e *Engine) { e.filters[name] = f }
}

// New creates an Engine with the built-in filter set.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:  slog.Default(),
		filters: DefaultFilters(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process is the end-to-end render call: it expands conditional blocks,
// interpolates variables, and trims trailing whitespace from the end of
// the result. It never returns an error; see the package documentation
// for the soft-failure rules.
func (e *Engine) Process(text string, ctx map[string]any) string {
	start := time.Now()

	tmpl, issues := parser.Parse(text)
	e.reportIssues(issues)

	var sb strings.Builder
	sb.Grow(len(text))
	e.renderNodes(tmpl.Nodes, ctx, true, &sb)

	out := strings.TrimRight(sb.String(), " \t\r\n")
	e.metrics.ObserveRender(time.Since(start).Seconds())
	return out
}

// ExpandConditionals resolves every {{#if}} block in the text, leaving
// variable tokens untouched for a later Interpolate pass. Nested blocks
// inside the branch that was not taken are never evaluated.
func (e *Engine) ExpandConditionals(text string, ctx map[string]any) string {
	tmpl, issues := parser.Parse(text)
	e.reportIssues(issues)

	var sb strings.Builder
	sb.Grow(len(text))
	e.renderNodes(tmpl.Nodes, ctx, false, &sb)
	return sb.String()
}

// Interpolate replaces {{field}} and {{field|filter}} tokens with
// context values. Any other content, including conditional markers, is
// reproduced verbatim, which makes Interpolate idempotent on text that
// contains no remaining variable tokens.
func (e *Engine) Interpolate(text string, ctx map[string]any) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for _, tok := range parser.Lex(text) {
		if tok.Type != parser.TokenVariable {
			sb.WriteString(tok.Raw)
			continue
		}
		path, filter := parser.SplitFilter(tok.Content)
		sb.WriteString(e.renderVariable(path, filter, ctx))
	}

	return sb.String()
}

// renderNodes walks the AST appending rendered output. When
// resolveVars is false, variable tokens are emitted as their raw source
// so a later interpolation pass sees them unchanged.
func (e *Engine) renderNodes(nodes []ast.Node, ctx map[string]any, resolveVars bool, sb *strings.Builder) {
	for _, n := range nodes {
		switch node := n.(type) {
		case *ast.Literal:
			sb.WriteString(node.Text)

		case *ast.Variable:
			if resolveVars {
				sb.WriteString(e.renderVariable(node.Path, node.Filter, ctx))
			} else {
				sb.WriteString(node.Raw)
			}

		case *ast.Conditional:
			if e.evalExpr(node.Cond, ctx) {
				e.renderNodes(node.Then, ctx, resolveVars, sb)
			} else {
				e.renderNodes(node.Else, ctx, resolveVars, sb)
			}
		}
	}
}

func (e *Engine) reportIssues(issues []parser.Issue) {
	for _, issue := range issues {
		e.logger.Warn("template parse degradation",
			"issue", issue.Message,
			"position", issue.Position.String(),
		)
		e.metrics.RecordParseIssue(issue.Message)
	}
}
