package lower

import (
	"go/ast"
	"slices"
	"strings"
	"testing"

	"github.com/vango-dev/domgen/internal/errors"
	"github.com/vango-dev/domgen/pkg/tree"
)

func span() *tree.ElementInfo {
	return &tree.ElementInfo{Static: tree.Element("span", nil)}
}

func TestLowerElementDirect(t *testing.T) {
	lit := tree.NewElement(&tree.ElementInfo{
		Static:  tree.Element("div", tree.Attrs("id", "a"), tree.Element("span", nil)),
		Dynamic: []tree.Binding{tree.ExprAt(tree.Address{0}, "expr")},
	})

	out, expr, u := lower(t, newLowerer(t, Options{}), lit)

	call, ok := expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.CallExpr", expr)
	}
	if _, ok := call.Fun.(*ast.FuncLit); !ok {
		t.Errorf("element literal is not an immediately invoked closure: %s", out)
	}

	wantCalls := []string{"CreateElement", "CreateElement", "AppendChild", "GetChild"}
	if got := calls(expr); !slices.Equal(got, wantCalls) {
		t.Errorf("calls = %v, want %v", got, wantCalls)
	}

	for _, want := range []string{
		`_el1 := dom.CreateElement("div", dom.Attrs{{Name: "id", Value: "a"}}, []any{dom.CreateElement("span", nil, nil)})`,
		`dom.AppendChild(expr, dom.GetChild(_el1, []int{0}))`,
		`return _el1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if len(u.hoisted) != 0 {
		t.Errorf("direct mode hoisted %d declarations, want 0", len(u.hoisted))
	}
}

func TestLowerElementTemplate(t *testing.T) {
	lit := tree.NewElement(&tree.ElementInfo{
		Static:  tree.Element("div", tree.Attrs("id", "a"), tree.Element("span", nil)),
		Dynamic: []tree.Binding{tree.ExprAt(tree.Address{0}, "expr")},
	})

	out, expr, u := lower(t, newLowerer(t, Options{TemplateMode: true}), lit)

	if len(u.hoisted) != 1 {
		t.Fatalf("hoisted %d declarations, want 1", len(u.hoisted))
	}
	decl := printNode(t, u.hoisted[0])
	if want := `var _tmpl1 = dom.Template("<div id=\"a\"><span></span></div>")`; decl != want {
		t.Errorf("hoisted = %q, want %q", decl, want)
	}

	for _, want := range []string{
		`_el2 := _tmpl1()`,
		`dom.AppendChild(expr, dom.GetChild(_el2, []int{0}))`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := calls(expr); slices.Contains(got, "CreateElement") {
		t.Errorf("template mode still constructs elements directly: %v", got)
	}
}

func TestLowerTemplateHoistedOncePerLiteral(t *testing.T) {
	rec := &recorder{}
	l := newLowerer(t, Options{TemplateMode: true}, WithObserver(rec))
	lit := tree.NewElement(&tree.ElementInfo{
		Static: tree.Element("ul", nil,
			tree.Element("li", nil), tree.Element("li", nil), tree.Element("li", nil)),
		Dynamic: []tree.Binding{
			tree.ExprAt(tree.Address{0}, "a"),
			tree.ExprAt(tree.Address{1}, "b"),
			tree.PropsAt(tree.Address{2}, tree.ExprProp("class", "c")),
			tree.PropsAt(nil, tree.ExprProp("onClick", "h")),
		},
	})

	_, _, u := lower(t, l, lit)

	if len(u.hoisted) != 1 {
		t.Errorf("hoisted %d declarations, want 1", len(u.hoisted))
	}
	if rec.hoisted != 1 {
		t.Errorf("observer saw %d hoists, want 1", rec.hoisted)
	}
	if n := rec.count(OpTemplate); n != 1 {
		t.Errorf("Template emitted %d times, want 1", n)
	}
}

func TestLowerBindingOrder(t *testing.T) {
	lit := tree.NewElement(&tree.ElementInfo{
		Static: tree.Element("div", nil, tree.Element("span", nil), tree.Element("span", nil)),
		Dynamic: []tree.Binding{
			tree.PropsAt(tree.Address{0}, tree.LitProp("title", "t")),
			tree.ExprAt(tree.Address{1}, "a"),
			tree.PropsAt(nil, tree.ExprProp("onClick", "h")),
			tree.ExprAt(tree.Address{0}, "b"),
		},
	})

	out, expr, _ := lower(t, newLowerer(t, Options{}), lit)

	want := []string{
		"CreateElement", "CreateElement", "CreateElement",
		"SetProp", "GetChild",
		"AppendChild", "GetChild",
		"On",
		"AppendChild", "GetChild",
	}
	if got := calls(expr); !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v\n%s", got, want, out)
	}
}

func TestLowerPropDispatch(t *testing.T) {
	tests := []struct {
		name string
		prop tree.Prop
		want string
		not  string
	}{
		{
			name: "event",
			prop: tree.ExprProp("onClick", "handle"),
			want: `dom.On(dom.GetChild(_el1, []int{0}), "click", handle)`,
			not:  "SetProp",
		},
		{
			name: "event canonical name",
			prop: tree.ExprProp("onDblClick", "handle"),
			want: `dom.On(dom.GetChild(_el1, []int{0}), "dblclick", handle)`,
			not:  "SetProp",
		},
		{
			name: "attribute expression",
			prop: tree.ExprProp("value", "v"),
			want: `dom.SetProp(dom.GetChild(_el1, []int{0}), "value", v)`,
			not:  "On(",
		},
		{
			name: "attribute literal",
			prop: tree.LitProp("title", "hello"),
			want: `dom.SetProp(dom.GetChild(_el1, []int{0}), "title", "hello")`,
			not:  "On(",
		},
		{
			name: "spread",
			prop: tree.SpreadProp("attrs"),
			want: `dom.SetProps(dom.GetChild(_el1, []int{0}), attrs)`,
			not:  "SetProp(",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := tree.NewElement(&tree.ElementInfo{
				Static:  tree.Element("form", nil, tree.Element("input", nil)),
				Dynamic: []tree.Binding{tree.PropsAt(tree.Address{0}, tt.prop)},
			})
			out, _, _ := lower(t, newLowerer(t, Options{}), lit)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
			if strings.Contains(out, tt.not) {
				t.Errorf("output contains %q:\n%s", tt.not, out)
			}
		})
	}
}

func TestLowerMultiplePropsResolveOnce(t *testing.T) {
	rec := &recorder{}
	lit := tree.NewElement(&tree.ElementInfo{
		Static: tree.Element("div", nil, tree.Element("button", nil)),
		Dynamic: []tree.Binding{tree.PropsAt(tree.Address{0},
			tree.LitProp("type", "button"),
			tree.ExprProp("onClick", "h"),
			tree.SpreadProp("rest"),
		)},
	})

	out, _, _ := lower(t, newLowerer(t, Options{}, WithObserver(rec)), lit)

	for _, want := range []string{
		`_node2 := dom.GetChild(_el1, []int{0})`,
		`dom.SetProp(_node2, "type", "button")`,
		`dom.On(_node2, "click", h)`,
		`dom.SetProps(_node2, rest)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := rec.count(OpGetChild); n != 1 {
		t.Errorf("GetChild emitted %d times, want 1", n)
	}
}

func TestLowerRootAddressEmitsNoGetChild(t *testing.T) {
	lit := tree.NewElement(&tree.ElementInfo{
		Static:  tree.Element("div", nil),
		Dynamic: []tree.Binding{tree.PropsAt(nil, tree.ExprProp("class", "cls"), tree.ExprProp("onInput", "h"))},
	})

	out, expr, _ := lower(t, newLowerer(t, Options{}), lit)

	if slices.Contains(calls(expr), "GetChild") {
		t.Errorf("empty address emitted GetChild:\n%s", out)
	}
	for _, want := range []string{`dom.SetProp(_el1, "class", cls)`, `dom.On(_el1, "input", h)`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLowerCommentsAndTextDirect(t *testing.T) {
	lit := tree.NewElement(&tree.ElementInfo{
		Static: tree.Element("p", nil, tree.Text("Hello, "), tree.Comment("slot"), tree.Text("!")),
		Dynamic: []tree.Binding{
			tree.ExprAt(nil, "name"),
		},
	})

	out, _, _ := lower(t, newLowerer(t, Options{}), lit)

	want := `dom.CreateElement("p", nil, []any{"Hello, ", nil, "!"})`
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}

func TestLowerSVG(t *testing.T) {
	static := tree.Element("svg", tree.Attrs("viewBox", "0 0 10 10"),
		tree.Element("circle", tree.Attrs("r", "1")))

	t.Run("direct", func(t *testing.T) {
		lit := tree.NewElement(&tree.ElementInfo{Static: static})
		out, _, _ := lower(t, newLowerer(t, Options{}), lit)
		want := `dom.CreateElement("svg", dom.Attrs{{Name: "viewBox", Value: "0 0 10 10"}}, []any{dom.CreateElement("circle", dom.Attrs{{Name: "r", Value: "1"}}, nil, true)}, true)`
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	})

	t.Run("template", func(t *testing.T) {
		lit := tree.NewElement(&tree.ElementInfo{Static: static})
		_, _, u := lower(t, newLowerer(t, Options{TemplateMode: true}), lit)
		if len(u.hoisted) != 1 {
			t.Fatalf("hoisted %d declarations, want 1", len(u.hoisted))
		}
		decl := printNode(t, u.hoisted[0])
		want := `var _tmpl1 = dom.Template("<svg viewBox=\"0 0 10 10\"><circle r=\"1\"></circle></svg>", true)`
		if decl != want {
			t.Errorf("hoisted = %q, want %q", decl, want)
		}
	})
}

func TestLowerComponent(t *testing.T) {
	lit := tree.NewComponent(&tree.ComponentInfo{
		Tag:    tree.E("Foo"),
		Static: tree.ComponentStatic{Props: tree.Attrs("a", "1")},
		Dynamic: tree.ComponentDynamic{
			Props:    []tree.Prop{tree.SpreadProp("rest"), tree.ExprProp("b", "x")},
			Children: tree.Children{0: tree.ElementChild(span())},
		},
	})

	out, expr, _ := lower(t, newLowerer(t, Options{}), lit)

	want := `dom.CreateComponent(Foo, dom.Props{{Key: "a", Value: "1"}, {Value: rest, Spread: true}, {Key: "b", Value: x}}, []any{`
	if !strings.HasPrefix(out, want) {
		t.Errorf("output does not start with %q:\n%s", want, out)
	}
	if got, want := calls(expr), []string{"CreateComponent", "CreateElement"}; !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestLowerComponentChildren(t *testing.T) {
	lit := tree.NewComponent(&tree.ComponentInfo{
		Tag: tree.E("ui.Card"),
		Static: tree.ComponentStatic{Children: tree.StaticChildren{
			0: tree.TextChild("Title"),
			1: tree.CommentsChild("a", "b"),
			3: tree.TextChild("overridden"),
		}},
		Dynamic: tree.ComponentDynamic{Children: tree.Children{
			3: tree.ExprChild("body"),
			7: tree.ComponentChild(&tree.ComponentInfo{Tag: tree.E("Footer")}),
		}},
	})

	out, _, _ := lower(t, newLowerer(t, Options{}), lit)

	want := `dom.CreateComponent(ui.Card, nil, []any{"Title", []dom.Marker{{Type: dom.KindComment, Value: "a"}, {Type: dom.KindComment, Value: "b"}}, body, dom.CreateComponent(Footer, nil, nil)})`
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestLowerComponentInElementBinding(t *testing.T) {
	lit := tree.NewElement(&tree.ElementInfo{
		Static: tree.Element("main", nil, tree.Element("section", nil)),
		Dynamic: []tree.Binding{
			tree.ComponentAt(tree.Address{0}, &tree.ComponentInfo{
				Tag:     tree.E("List"),
				Dynamic: tree.ComponentDynamic{Props: []tree.Prop{tree.ExprProp("items", "items")}},
			}),
		},
	})

	out, _, _ := lower(t, newLowerer(t, Options{}), lit)

	want := `dom.AppendChild(dom.CreateComponent(List, dom.Props{{Key: "items", Value: items}}, nil), dom.GetChild(_el1, []int{0}))`
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}

func TestLowerFragment(t *testing.T) {
	lit := tree.NewFragment(&tree.FragmentInfo{
		Static:  tree.StaticChildren{0: tree.TextChild("text")},
		Dynamic: tree.Children{1: tree.ElementChild(span()), 2: tree.ExprChild("expr")},
	})

	out, expr, _ := lower(t, newLowerer(t, Options{}), lit)

	if !strings.HasPrefix(out, `dom.CreateFragment([]any{dom.CreateText("text"), func() *dom.Node {`) {
		t.Errorf("unexpected fragment start:\n%s", out)
	}
	if !strings.HasSuffix(out, `}(), expr})`) {
		t.Errorf("unexpected fragment end:\n%s", out)
	}
	if got, want := calls(expr), []string{"CreateFragment", "CreateText", "CreateElement"}; !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestLowerFragmentComments(t *testing.T) {
	lit := tree.NewFragment(&tree.FragmentInfo{
		Static: tree.StaticChildren{
			0: tree.CommentsChild("a", "b"),
			1: tree.TextChild("t"),
			2: tree.CommentsChild(),
		},
	})

	out, _, _ := lower(t, newLowerer(t, Options{}), lit)

	want := `dom.CreateFragment([]any{dom.CreateComment(), dom.CreateComment(), dom.CreateText("t")})`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestLowerMergeTie(t *testing.T) {
	tests := []struct {
		name string
		lit  *tree.Literal
		want string
	}{
		{
			name: "fragment dynamic wins",
			lit: tree.NewFragment(&tree.FragmentInfo{
				Static:  tree.StaticChildren{0: tree.TextChild("static")},
				Dynamic: tree.Children{0: tree.ExprChild("dynamic")},
			}),
			want: `dom.CreateFragment([]any{dynamic})`,
		},
		{
			name: "component dynamic wins over comments",
			lit: tree.NewComponent(&tree.ComponentInfo{
				Tag:     tree.E("Box"),
				Static:  tree.ComponentStatic{Children: tree.StaticChildren{0: tree.CommentsChild("c")}},
				Dynamic: tree.ComponentDynamic{Children: tree.Children{0: tree.ExprChild("v")}},
			}),
			want: `dom.CreateComponent(Box, nil, []any{v})`,
		},
		{
			name: "gaps dropped",
			lit: tree.NewFragment(&tree.FragmentInfo{
				Static:  tree.StaticChildren{0: tree.TextChild("a"), 5: tree.TextChild("b")},
				Dynamic: tree.Children{3: tree.ExprChild("x")},
			}),
			want: `dom.CreateFragment([]any{dom.CreateText("a"), x, dom.CreateText("b")})`,
		},
		{
			name: "empty",
			lit:  tree.NewFragment(&tree.FragmentInfo{}),
			want: `dom.CreateFragment(nil)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, _ := lower(t, newLowerer(t, Options{}), tt.lit)
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestLowerDeterministic(t *testing.T) {
	lit := tree.NewElement(&tree.ElementInfo{
		Static: tree.Element("div", tree.Attrs("class", "row"),
			tree.Element("span", nil, tree.Text("x")), tree.Comment("c"), tree.Element("b", nil)),
		Dynamic: []tree.Binding{
			tree.PropsAt(tree.Address{0}, tree.ExprProp("onClick", "h"), tree.SpreadProp("p")),
			tree.ExprAt(tree.Address{2}, "v"),
			tree.ComponentAt(nil, &tree.ComponentInfo{
				Tag:     tree.E("C"),
				Dynamic: tree.ComponentDynamic{Children: tree.Children{0: tree.ElementChild(span())}},
			}),
		},
	})

	for _, opts := range []Options{{}, {TemplateMode: true}} {
		l := newLowerer(t, opts)
		first, _, u1 := lower(t, l, lit)
		second, _, u2 := lower(t, l, lit)
		if first != second {
			t.Errorf("TemplateMode=%v: lowering differs:\n%s\n---\n%s", opts.TemplateMode, first, second)
		}
		if len(u1.hoisted) != len(u2.hoisted) {
			t.Errorf("TemplateMode=%v: hoisted %d vs %d", opts.TemplateMode, len(u1.hoisted), len(u2.hoisted))
		}
		for i := range u1.hoisted {
			if a, b := printNode(t, u1.hoisted[i]), printNode(t, u2.hoisted[i]); a != b {
				t.Errorf("hoisted[%d] differs: %s vs %s", i, a, b)
			}
		}
	}
}

func TestLowerNestedElementsGetDistinctNames(t *testing.T) {
	lit := tree.NewFragment(&tree.FragmentInfo{
		Dynamic: tree.Children{0: tree.ElementChild(span()), 1: tree.ElementChild(span())},
	})

	out, _, _ := lower(t, newLowerer(t, Options{TemplateMode: true}), lit)

	for _, want := range []string{"_el2 := _tmpl1()", "_el4 := _tmpl3()"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLowerErrors(t *testing.T) {
	deep := tree.Element("div", nil, tree.Element("div", nil, tree.Element("div", nil)))

	tests := []struct {
		name string
		opts Options
		lit  *tree.Literal
		code string
	}{
		{
			name: "unknown literal kind",
			lit:  &tree.Literal{},
			code: "E100",
		},
		{
			name: "missing payload",
			lit:  &tree.Literal{Kind: tree.LiteralComponent},
			code: "E101",
		},
		{
			name: "missing static tree",
			lit:  tree.NewElement(&tree.ElementInfo{}),
			code: "E101",
		},
		{
			name: "address out of range",
			lit: tree.NewElement(&tree.ElementInfo{
				Static:  tree.Element("div", nil),
				Dynamic: []tree.Binding{tree.ExprAt(tree.Address{0}, "x")},
			}),
			code: "E102",
		},
		{
			name: "address targets text",
			lit: tree.NewElement(&tree.ElementInfo{
				Static:  tree.Element("div", nil, tree.Text("t")),
				Dynamic: []tree.Binding{tree.ExprAt(tree.Address{0}, "x")},
			}),
			code: "E102",
		},
		{
			name: "invalid expression",
			lit: tree.NewElement(&tree.ElementInfo{
				Static:  tree.Element("div", nil),
				Dynamic: []tree.Binding{tree.ExprAt(nil, "a +")},
			}),
			code: "E103",
		},
		{
			name: "invalid component tag",
			lit:  tree.NewComponent(&tree.ComponentInfo{Tag: tree.E("Foo(")}),
			code: "E103",
		},
		{
			name: "depth exceeded",
			opts: Options{MaxDepth: 2},
			lit:  tree.NewElement(&tree.ElementInfo{Static: deep}),
			code: "E104",
		},
		{
			name: "unknown binding kind",
			lit: tree.NewElement(&tree.ElementInfo{
				Static:  tree.Element("div", nil),
				Dynamic: []tree.Binding{{Kind: tree.BindUnknown}},
			}),
			code: "E105",
		},
		{
			name: "unknown static node kind",
			lit: tree.NewElement(&tree.ElementInfo{
				Static: tree.Element("div", nil, &tree.StaticNode{Kind: tree.NodeKind(9)}),
			}),
			code: "E106",
		},
		{
			name: "unknown child kind",
			lit: tree.NewFragment(&tree.FragmentInfo{
				Dynamic: tree.Children{0: {}},
			}),
			code: "E110",
		},
		{
			name: "template incompatible",
			opts: Options{TemplateMode: true},
			lit: tree.NewElement(&tree.ElementInfo{
				Static: tree.Element("input", nil, tree.Text("x")),
			}),
			code: "E123",
		},
		{
			name: "template incompatible after a valid element child",
			opts: Options{TemplateMode: true},
			lit: tree.NewComponent(&tree.ComponentInfo{
				Tag: tree.E("Card"),
				Dynamic: tree.ComponentDynamic{Children: tree.Children{
					0: tree.ElementChild(&tree.ElementInfo{Static: tree.Element("span", nil, tree.Text("ok"))}),
					1: tree.ElementChild(&tree.ElementInfo{Static: tree.Element("textarea", nil, tree.Element("b", nil))}),
				}},
			}),
			code: "E123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			u := newTestUnit()
			expr, err := newLowerer(t, tt.opts, WithObserver(rec)).Lower(u, tt.lit)
			if err == nil {
				t.Fatalf("Lower() = %s, want error %s", printNode(t, expr), tt.code)
			}
			if !errors.HasCode(err, tt.code) {
				t.Errorf("Lower() error = %v, want code %s", err, tt.code)
			}
			if len(u.hoisted) != 0 {
				t.Errorf("failed lowering hoisted %d declarations", len(u.hoisted))
			}
			if len(rec.errs) != 1 || rec.errs[0] == nil {
				t.Errorf("observer errors = %v, want the lowering error", rec.errs)
			}
		})
	}
}

func TestLowerErrorLocation(t *testing.T) {
	lit := tree.NewElement(&tree.ElementInfo{
		Static:  tree.Element("div", nil),
		Dynamic: []tree.Binding{tree.ExprAt(tree.Address{4, 2}, "x")},
	})
	lit.Loc = tree.Location{File: "views/home.gox", Line: 12, Column: 8}

	_, err := newLowerer(t, Options{}).Lower(newTestUnit(), lit)
	if err == nil {
		t.Fatal("Lower() error = nil, want E102")
	}
	msg := err.Error()
	for _, want := range []string{"views/home.gox:12:8", "E102", "[4 2]"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestNewOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code string
	}{
		{"minify without template mode", Options{MinifyTemplates: true}, "E121"},
		{"negative depth", Options{MaxDepth: -1}, "E122"},
		{"defaults", Options{}, ""},
		{"template and minify", Options{TemplateMode: true, MinifyTemplates: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.opts)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}
				if l.Options().MaxDepth != DefaultMaxDepth {
					t.Errorf("MaxDepth = %d, want %d", l.Options().MaxDepth, DefaultMaxDepth)
				}
				return
			}
			if !errors.HasCode(err, tt.code) {
				t.Errorf("New() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLowerObserverCounts(t *testing.T) {
	rec := &recorder{}
	lit := tree.NewElement(&tree.ElementInfo{
		Static:  tree.Element("div", nil, tree.Element("span", nil)),
		Dynamic: []tree.Binding{tree.ExprAt(tree.Address{0}, "x")},
	})

	lower(t, newLowerer(t, Options{}, WithObserver(rec)), lit)

	if len(rec.literals) != 1 || rec.literals[0] != tree.LiteralElement {
		t.Errorf("literals = %v, want [element]", rec.literals)
	}
	want := map[string]int{OpCreateElement: 2, OpGetChild: 1, OpAppendChild: 1}
	for op, n := range want {
		if got := rec.count(op); got != n {
			t.Errorf("%s emitted %d times, want %d", op, got, n)
		}
	}
}
