package lower

import (
	"cmp"
	"slices"

	"github.com/vango-dev/domgen/pkg/tree"
)

// slot is one position of a merged child sequence. Exactly one of static
// and dynamic is set.
type slot struct {
	pos     int
	static  *tree.StaticChild
	dynamic *tree.Child
}

// mergeChildren interleaves static and dynamic children by ascending
// position. A dynamic child wins a position claimed by both. Positions
// that neither map holds are skipped.
func mergeChildren(static tree.StaticChildren, dynamic tree.Children) []slot {
	out := make([]slot, 0, len(static)+len(dynamic))
	for pos := range static {
		if _, ok := dynamic[pos]; ok {
			continue
		}
		c := static[pos]
		out = append(out, slot{pos: pos, static: &c})
	}
	for pos := range dynamic {
		c := dynamic[pos]
		out = append(out, slot{pos: pos, dynamic: &c})
	}
	slices.SortFunc(out, func(a, b slot) int { return cmp.Compare(a.pos, b.pos) })
	return out
}

// mergeProps orders component props: static props first, then dynamic props
// in their given order. A named prop replaces an earlier prop of the same
// key in place unless a spread came after it; then it is appended so that it
// still overrides whatever the spread supplies.
func mergeProps(static []tree.StaticAttr, dynamic []tree.Prop) []tree.Prop {
	out := make([]tree.Prop, 0, len(static)+len(dynamic))
	index := make(map[string]int, len(static)+len(dynamic))
	lastSpread := -1

	add := func(p tree.Prop) {
		if p.Kind == tree.PropSpread {
			lastSpread = len(out)
			out = append(out, p)
			return
		}
		if i, ok := index[p.Key]; ok && i > lastSpread {
			out[i] = p
			return
		}
		index[p.Key] = len(out)
		out = append(out, p)
	}

	for _, a := range static {
		add(tree.LitProp(a.Name, a.Value))
	}
	for _, p := range dynamic {
		add(p)
	}
	return out
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
