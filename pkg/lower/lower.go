package lower

import (
	"go/ast"
	"time"

	"github.com/vango-dev/domgen/internal/errors"
	"github.com/vango-dev/domgen/pkg/classify"
	"github.com/vango-dev/domgen/pkg/render"
	"github.com/vango-dev/domgen/pkg/tree"
)

// DefaultMaxDepth bounds literal nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

// Classifier tells built-in attributes from events and finds elements that
// need namespaced construction.
type Classifier interface {
	IsEvent(key string) bool
	EventName(key string) string
	IsSVG(tag string) bool
}

// Unit is the compilation unit a literal is lowered into.
type Unit interface {
	// Ref returns a reference to an exported name of the builder runtime.
	// Repeated requests for the same name return the same expression.
	Ref(name string) ast.Expr

	// Hoist queues decl for insertion ahead of all other top-level
	// declarations. Hoisted declarations keep insertion order.
	Hoist(decl ast.Decl)

	// UniqueName returns an identifier that is unused in the unit.
	UniqueName(prefix string) *ast.Ident
}

// Observer receives lowering events.
type Observer interface {
	LiteralLowered(kind tree.LiteralKind, elapsed time.Duration, err error)
	InstructionEmitted(op string)
	TemplateHoisted()
}

type nopObserver struct{}

func (nopObserver) LiteralLowered(tree.LiteralKind, time.Duration, error) {}
func (nopObserver) InstructionEmitted(string)                             {}
func (nopObserver) TemplateHoisted()                                      {}

// Options configures lowering.
type Options struct {
	// TemplateMode builds element skeletons by cloning hoisted templates.
	TemplateMode bool

	// MinifyTemplates minifies hoisted template strings.
	// Requires TemplateMode.
	MinifyTemplates bool

	// MaxDepth bounds the nesting of a literal. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Validate checks the options before any lowering happens.
func (o Options) Validate() error {
	if o.MinifyTemplates && !o.TemplateMode {
		return errors.New("E121").
			WithDetail("minifyTemplates requires templateMode").
			WithSuggestion("Enable templateMode or disable minifyTemplates")
	}
	if o.MaxDepth < 0 {
		return errors.New("E122").
			WithDetailf("maxDepth must not be negative, got %d", o.MaxDepth)
	}
	return nil
}

// Lowerer lowers literals. It holds no per-literal state and is safe for
// concurrent use as long as each goroutine uses its own Unit.
type Lowerer struct {
	opts       Options
	classifier Classifier
	observer   Observer
	renderer   *render.Renderer
	skeleton   skeleton
}

// Option configures a Lowerer.
type Option func(*Lowerer)

// WithObserver reports lowering events to o.
func WithObserver(o Observer) Option {
	return func(l *Lowerer) {
		if o != nil {
			l.observer = o
		}
	}
}

// WithClassifier replaces the default classifier.
func WithClassifier(c Classifier) Option {
	return func(l *Lowerer) {
		if c != nil {
			l.classifier = c
		}
	}
}

// New creates a Lowerer. Invalid option combinations are rejected here,
// before anything is emitted.
func New(opts Options, options ...Option) (*Lowerer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	l := &Lowerer{
		opts:       opts,
		classifier: classify.Default,
		observer:   nopObserver{},
		renderer:   render.NewRenderer(render.RendererConfig{Minify: opts.MinifyTemplates}),
		skeleton:   directStrategy{},
	}
	if opts.TemplateMode {
		l.skeleton = templateStrategy{}
	}
	for _, opt := range options {
		opt(l)
	}
	return l, nil
}

// Options returns the resolved options.
func (l *Lowerer) Options() Options {
	return l.opts
}

// Lower validates lit and returns the expression that constructs it.
// Templates are rendered and checked during validation, so on error
// nothing has been hoisted into u.
func (l *Lowerer) Lower(u Unit, lit *tree.Literal) (expr ast.Expr, err error) {
	start := time.Now()
	defer func() {
		l.observer.LiteralLowered(lit.Kind, time.Since(start), err)
	}()

	lw := &lowering{Lowerer: l, unit: u, loc: lit.Loc, templates: map[*tree.StaticNode]string{}}
	lw.b = &builder{unit: u, observer: l.observer}

	if err := lw.validate(lit); err != nil {
		return nil, err
	}

	switch lit.Kind {
	case tree.LiteralElement:
		return lw.element(lit.Element)
	case tree.LiteralComponent:
		return lw.component(lit.Component)
	case tree.LiteralFragment:
		return lw.fragment(lit.Fragment)
	default:
		return nil, lw.fail("E100", "literal %d has kind %s", lit.ID, lit.Kind)
	}
}

// lowering is the state of one Lower call.
type lowering struct {
	*Lowerer
	unit Unit
	loc  tree.Location
	b    *builder

	// templates holds the markup of every static tree checked in
	// template mode, keyed by its root.
	templates map[*tree.StaticNode]string
}

// fail returns a registered error located at the current literal.
func (lw *lowering) fail(code, format string, args ...any) *errors.Error {
	return errors.New(code).
		WithLocation(lw.loc.File, lw.loc.Line, lw.loc.Column).
		WithDetailf(format, args...)
}
