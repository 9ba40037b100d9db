package compile

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/domgen/internal/errors"
	"github.com/vango-dev/domgen/internal/telemetry"
	"github.com/vango-dev/domgen/pkg/lower"
	"github.com/vango-dev/domgen/pkg/tree"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/tools/go/ast/astutil"
)

// Defaults for Options.
const (
	DefaultPlaceholder   = "__literal"
	DefaultRuntimeImport = "github.com/vango-dev/domgen/pkg/dom"
	DefaultRuntimeName   = "dom"
	DefaultPackage       = "main"
)

// Options configures a Compiler.
type Options struct {
	Lower lower.Options

	// Placeholder is the name of the function the parser calls in place of
	// each literal.
	Placeholder string

	// RuntimeImport is the import path of the builder runtime.
	RuntimeImport string

	// RuntimeName is the package name of the builder runtime.
	RuntimeName string
}

func (o *Options) applyDefaults() {
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	if o.RuntimeImport == "" {
		o.RuntimeImport = DefaultRuntimeImport
	}
	if o.RuntimeName == "" {
		o.RuntimeName = DefaultRuntimeName
	}
}

// Observer receives lowering and compilation events.
type Observer interface {
	lower.Observer
	UnitCompiled(file string, elapsed time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) LiteralLowered(tree.LiteralKind, time.Duration, error) {}
func (nopObserver) InstructionEmitted(string)                             {}
func (nopObserver) TemplateHoisted()                                      {}
func (nopObserver) UnitCompiled(string, time.Duration, error)             {}

// Compiler compiles documents. It is safe for concurrent use; every call to
// Compile works on its own unit.
type Compiler struct {
	opts     Options
	lowerer  *lower.Lowerer
	logger   *slog.Logger
	tracer   trace.Tracer
	observer Observer
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer sets the tracer for compile and lower spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Compiler) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// WithObserver reports lowering and compilation events to o.
func WithObserver(o Observer) Option {
	return func(c *Compiler) {
		if o != nil {
			c.observer = o
		}
	}
}

// New creates a Compiler. Option conflicts are reported before anything is
// compiled.
func New(opts Options, options ...Option) (*Compiler, error) {
	opts.applyDefaults()
	if !token.IsIdentifier(opts.Placeholder) {
		return nil, errors.New("E122").WithDetailf("placeholder %q is not an identifier", opts.Placeholder)
	}
	if !token.IsIdentifier(opts.RuntimeName) {
		return nil, errors.New("E122").WithDetailf("runtime name %q is not an identifier", opts.RuntimeName)
	}

	c := &Compiler{
		opts:     opts,
		logger:   slog.Default(),
		tracer:   telemetry.Tracer(),
		observer: nopObserver{},
	}
	for _, opt := range options {
		opt(c)
	}
	c.logger = c.logger.With("component", "compile")

	l, err := lower.New(opts.Lower, lower.WithObserver(c.observer))
	if err != nil {
		return nil, err
	}
	c.lowerer = l
	c.opts.Lower = l.Options()
	return c, nil
}

// Options returns the resolved options.
func (c *Compiler) Options() Options {
	return c.opts
}

// Compile lowers every literal of doc and returns the formatted Go file.
// If any literal fails, Compile returns all failures joined and no output.
func (c *Compiler) Compile(ctx context.Context, doc *Document) (out []byte, err error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "domgen.compile", trace.WithAttributes(
		attribute.String("domgen.file", doc.File),
		attribute.Int("domgen.literals", len(doc.Literals)),
		attribute.Bool("domgen.template_mode", c.opts.Lower.TemplateMode),
	))
	defer func() {
		elapsed := time.Since(start)
		telemetry.EndSpan(span, err)
		c.observer.UnitCompiled(doc.File, elapsed, err)
		if err != nil {
			c.logger.Debug("compile failed", "file", doc.File, "error", err)
			return
		}
		c.logger.Debug("compiled", "file", doc.File, "literals", len(doc.Literals), "duration", elapsed)
	}()

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	source := doc.Source
	if strings.TrimSpace(source) == "" {
		source, err = c.synthesize(doc)
		if err != nil {
			return nil, err
		}
	}
	return c.compileSource(ctx, doc, source)
}

// synthesize returns a file declaring one function per literal.
func (c *Compiler) synthesize(doc *Document) (string, error) {
	pkg := doc.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	if !token.IsIdentifier(pkg) {
		return "", errors.New("E109").WithDetailf("package name %q is not an identifier", pkg)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n", pkg)
	names := make(map[string]bool, len(doc.Literals))
	for _, lit := range doc.Literals {
		name := lit.Name
		if name == "" {
			name = fmt.Sprintf("Literal%d", lit.ID)
		}
		if !token.IsIdentifier(name) {
			return "", errors.New("E109").WithDetailf("literal %d: name %q is not an identifier", lit.ID, name)
		}
		if names[name] {
			return "", errors.New("E109").WithDetailf("literal %d: duplicate name %q", lit.ID, name)
		}
		names[name] = true
		fmt.Fprintf(&b, "\nfunc %s() *%s.Node {\n\treturn %s(%d)\n}\n", name, c.opts.RuntimeName, c.opts.Placeholder, lit.ID)
	}
	return b.String(), nil
}

func (c *Compiler) compileSource(ctx context.Context, doc *Document, source string) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, doc.File, source, parser.ParseComments)
	if err != nil {
		return nil, errors.New("E108").WithDetail(err.Error()).Wrap(err)
	}

	byID := make(map[int]*tree.Literal, len(doc.Literals))
	for _, lit := range doc.Literals {
		byID[lit.ID] = lit
	}

	u := newUnit(fset, file, c.opts.RuntimeImport, c.opts.RuntimeName)
	used := make(map[int]bool, len(doc.Literals))
	var errs []error

	astutil.Apply(file, nil, func(cur *astutil.Cursor) bool {
		call, ok := cur.Node().(*ast.CallExpr)
		if !ok || !c.isPlaceholder(call) {
			return true
		}
		pos := fset.Position(call.Pos())

		id, ok := placeholderID(call)
		if !ok {
			errs = append(errs, errors.New("E107").
				WithLocation(pos.Filename, pos.Line, pos.Column).
				WithDetailf("%s takes one integer literal id", c.opts.Placeholder))
			return true
		}
		lit, ok := byID[id]
		if !ok {
			errs = append(errs, errors.New("E107").
				WithLocation(pos.Filename, pos.Line, pos.Column).
				WithDetailf("no literal with id %d", id))
			return true
		}
		used[id] = true

		expr, err := c.lower(ctx, u, located(lit, doc.File, pos))
		if err != nil {
			errs = append(errs, err)
			return true
		}
		cur.Replace(expr)
		return true
	})

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	for _, lit := range doc.Literals {
		if !used[lit.ID] {
			c.logger.Warn("literal has no placeholder", "file", doc.File, "id", lit.ID)
		}
	}

	u.flush()

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, errors.New("E108").WithDetailf("formatting output: %v", err).Wrap(err)
	}
	return buf.Bytes(), nil
}

// lower lowers one literal inside its own span.
func (c *Compiler) lower(ctx context.Context, u *unit, lit *tree.Literal) (ast.Expr, error) {
	_, span := c.tracer.Start(ctx, "domgen.lower", trace.WithAttributes(
		attribute.Int("domgen.literal.id", lit.ID),
		attribute.String("domgen.literal.kind", lit.Kind.String()),
		attribute.String("domgen.literal.location", lit.Loc.String()),
	))
	expr, err := c.lowerer.Lower(u, lit)
	telemetry.EndSpan(span, err)
	return expr, err
}

func (c *Compiler) isPlaceholder(call *ast.CallExpr) bool {
	id, ok := call.Fun.(*ast.Ident)
	return ok && id.Name == c.opts.Placeholder
}

func placeholderID(call *ast.CallExpr) (int, bool) {
	if len(call.Args) != 1 {
		return 0, false
	}
	lit, ok := call.Args[0].(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return 0, false
	}
	id, err := strconv.Atoi(lit.Value)
	return id, err == nil
}

// located returns lit with its location completed from the placeholder.
func located(lit *tree.Literal, file string, pos token.Position) *tree.Literal {
	if lit.Loc.File != "" && lit.Loc.Line > 0 {
		return lit
	}
	out := *lit
	if out.Loc.File == "" {
		out.Loc.File = file
	}
	if out.Loc.Line == 0 {
		out.Loc.Line = pos.Line
		out.Loc.Column = pos.Column
	}
	return &out
}
