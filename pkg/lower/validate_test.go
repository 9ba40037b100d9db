package lower

import (
	"strconv"
	"strings"
	"testing"

	"github.com/vango-dev/domgen/internal/errors"
	"github.com/vango-dev/domgen/pkg/render"
	"github.com/vango-dev/domgen/pkg/tree"
)

func TestTemplateCompatibility(t *testing.T) {
	el := tree.Element
	text := tree.Text
	comment := tree.Comment

	tests := []struct {
		name   string
		static *tree.StaticNode
		ok     bool
	}{
		{"plain tree", el("div", tree.Attrs("class", "a"), el("span", nil, text("x")), el("br", nil)), true},
		{"text separated by comment", el("p", nil, text("a"), comment("slot"), text("b")), true},
		{"comment with inner double dash", el("div", nil, comment("a--b")), true},
		{"table with sections", el("table", nil, el("tbody", nil, el("tr", nil, el("td", nil, text("1"))))), true},
		{"svg", el("svg", nil, el("g", nil, el("path", tree.Attrs("d", "M0 0")))), true},
		{"html inside foreignObject", el("svg", nil, el("foreignObject", nil, el("div", nil, text("x")))), true},
		{"script without closing sequence", el("script", nil, text("let a = 1 < 2")), true},
		{"textarea with text", el("textarea", nil, text("a < b & c")), true},
		{"noscript with text", el("noscript", nil, text("a < b & c")), true},
		{"pre starting with text", el("pre", nil, text("x\n"), el("span", nil)), true},

		{"adjacent text", el("div", nil, text("a"), text("b")), false},
		{"empty text", el("div", nil, text("")), false},
		{"comment closing early", el("div", nil, comment("a-->b")), false},
		{"comment opening with bracket", el("div", nil, comment(">x")), false},
		{"void element with children", el("img", nil, text("alt")), false},
		{"script closing sequence", el("script", nil, text("</script><b>")), false},
		{"element inside style", el("style", nil, el("b", nil)), false},
		{"table row as root", el("tr", nil, el("td", nil)), false},
		{"row directly in table", el("table", nil, el("tr", nil)), false},
		{"cell outside row", el("div", nil, el("td", nil)), false},
		{"div inside table", el("table", nil, el("div", nil)), false},
		{"text inside table row", el("tr", nil, text("x")), false},
		{"div inside paragraph", el("p", nil, el("div", nil)), false},
		{"body element", el("div", nil, el("body", nil)), false},
		{"nested anchors", el("div", nil, el("a", nil, el("a", nil)), el("b", nil)), false},
		{"nested buttons", el("div", nil, el("button", nil, el("button", nil)), el("i", nil)), false},
		{"nested forms", el("div", nil, el("form", nil, el("form", nil), el("i", nil))), false},
		{"div inside select", el("select", nil, el("div", nil), el("option", nil)), false},
		{"pre starting with newline", el("pre", nil, text("\n"), el("span", nil)), false},
		{"element inside textarea", el("textarea", nil, el("b", nil)), false},
		{"element inside title", el("title", nil, el("b", nil)), false},
		{"element inside noscript", el("noscript", nil, el("b", nil)), false},
		{"svg element outside svg", el("div", nil, el("circle", nil)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := tree.NewElement(&tree.ElementInfo{Static: tt.static})

			_, err := newLowerer(t, Options{TemplateMode: true}).Lower(newTestUnit(), lit)
			if tt.ok && err != nil {
				t.Errorf("Lower() error = %v, want nil", err)
			}
			if !tt.ok && !errors.HasCode(err, "E123") {
				t.Errorf("Lower() error = %v, want E123", err)
			}

			// Direct construction accepts every structurally valid tree.
			if _, err := newLowerer(t, Options{}).Lower(newTestUnit(), lit); err != nil {
				t.Errorf("direct Lower() error = %v, want nil", err)
			}
		})
	}
}

func TestTemplateCompatibilityReportsAddress(t *testing.T) {
	static := tree.Element("div", nil,
		tree.Element("span", nil),
		tree.Element("pre", nil, tree.Text("\n"), tree.Element("i", nil)),
	)

	_, err := newLowerer(t, Options{TemplateMode: true}).Lower(newTestUnit(), tree.NewElement(&tree.ElementInfo{Static: static}))
	if !errors.HasCode(err, "E123") {
		t.Fatalf("Lower() error = %v, want E123", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "at [1]") {
		t.Errorf("error %q does not name address [1]", msg)
	}
}

func TestTemplateCompatibilityMinified(t *testing.T) {
	opts := Options{TemplateMode: true, MinifyTemplates: true}

	ok := tree.Element("div", tree.Attrs("id", "a"), tree.Comment("x"), tree.Element("span", nil, tree.Text("hi")))
	_, _, u := lower(t, newLowerer(t, opts), tree.NewElement(&tree.ElementInfo{Static: ok}))
	if len(u.hoisted) != 1 {
		t.Fatalf("hoisted %d declarations, want 1", len(u.hoisted))
	}
	want, err := render.NewRenderer(render.RendererConfig{Minify: true}).RenderToString(ok)
	if err != nil {
		t.Fatalf("RenderToString() error = %v", err)
	}
	if decl := printNode(t, u.hoisted[0]); !strings.Contains(decl, strconv.Quote(want)) {
		t.Errorf("hoisted = %s, want the minified markup %q", decl, want)
	}

	bad := tree.Element("div", nil, tree.Element("a", nil, tree.Element("a", nil)), tree.Element("b", nil))
	_, err = newLowerer(t, opts).Lower(newTestUnit(), tree.NewElement(&tree.ElementInfo{Static: bad}))
	if !errors.HasCode(err, "E123") {
		t.Errorf("Lower() error = %v, want E123", err)
	}
}

func TestValidateDepthCountsNesting(t *testing.T) {
	// One element level plus a component and its nested element child.
	lit := tree.NewElement(&tree.ElementInfo{
		Static: tree.Element("div", nil),
		Dynamic: []tree.Binding{tree.ComponentAt(nil, &tree.ComponentInfo{
			Tag: tree.E("C"),
			Dynamic: tree.ComponentDynamic{Children: tree.Children{
				0: tree.ElementChild(&tree.ElementInfo{Static: tree.Element("span", nil)}),
			}},
		})},
	})

	if _, err := newLowerer(t, Options{MaxDepth: 3}).Lower(newTestUnit(), lit); err != nil {
		t.Errorf("MaxDepth 3: Lower() error = %v, want nil", err)
	}
	if _, err := newLowerer(t, Options{MaxDepth: 2}).Lower(newTestUnit(), lit); !errors.HasCode(err, "E104") {
		t.Errorf("MaxDepth 2: Lower() error = %v, want E104", err)
	}
}

func TestValidateDeepStaticTree(t *testing.T) {
	root := tree.Element("div", nil)
	cur := root
	for i := 0; i < 100000; i++ {
		next := tree.Element("div", nil)
		cur.Children = []*tree.StaticNode{next}
		cur = next
	}

	_, err := newLowerer(t, Options{}).Lower(newTestUnit(), tree.NewElement(&tree.ElementInfo{Static: root}))
	if !errors.HasCode(err, "E104") {
		t.Errorf("Lower() error = %v, want E104", err)
	}
}
