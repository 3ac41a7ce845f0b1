package proof

import (
	"reflect"
	"sort"
	"testing"

	"github.com/evanrichter/modus/internal/ir"
	"github.com/evanrichter/modus/internal/sld"
)

func rule(head ir.Literal, body ...ir.Literal) ir.Clause {
	return ir.Clause{Head: head, Body: body}
}

func l(predicate string, args ...ir.Term) ir.Literal {
	return ir.Literal{Predicate: ir.Predicate(predicate), Args: args}
}

func answerStrings(answers [][]ir.Literal) []string {
	out := make([]string, len(answers))
	for i, a := range answers {
		out[i] = literalSeqString(a)
	}
	sort.Strings(out)
	return out
}

func literalSeqString(lits []ir.Literal) string {
	s := ""
	for i, lit := range lits {
		if i > 0 {
			s += ", "
		}
		s += lit.String()
	}
	return s
}

func mustSolve(t *testing.T, rules []ir.Clause, goal []ir.Literal, gm sld.GroundnessMap, depth int) *sld.Tree {
	t.Helper()
	tree, err := sld.Solve(rules, goal, gm, sld.Options{MaxDepth: depth})
	if err != nil {
		t.Fatalf("sld.Solve error = %v", err)
	}
	return tree
}

// Scenario 1: Single unary rule.
func TestScenarioSingleUnaryRule(t *testing.T) {
	rules := []ir.Clause{
		rule(l("a", ir.UserVariable("X")), l("b", ir.UserVariable("X"))),
		rule(l("b", ir.Constant("c"))),
		rule(l("b", ir.Constant("d"))),
	}
	gm := sld.GroundnessMap{
		{Predicate: "a", Arity: 1}: {true},
		{Predicate: "b", Arity: 1}: {true},
	}
	goal := []ir.Literal{l("a", ir.UserVariable("X"))}

	tree := mustSolve(t, rules, goal, gm, 10)
	got := answerStrings(Solutions(tree, goal))
	want := answerStrings([][]ir.Literal{{l("a", ir.Constant("c"))}, {l("a", ir.Constant("d"))}})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("answers = %v, want %v", got, want)
	}
}

// Scenario 2: Conjunctive goal.
func TestScenarioConjunctiveGoal(t *testing.T) {
	rules := []ir.Clause{
		rule(l("a", ir.Constant("t"))),
		rule(l("a", ir.Constant("f"))),
		rule(l("b", ir.Constant("g"))),
		rule(l("b", ir.Constant("t"))),
	}
	gm := sld.GroundnessMap{
		{Predicate: "a", Arity: 1}: {true},
		{Predicate: "b", Arity: 1}: {true},
	}
	goal := []ir.Literal{l("a", ir.UserVariable("X")), l("b", ir.UserVariable("X"))}

	tree := mustSolve(t, rules, goal, gm, 10)
	got := answerStrings(Solutions(tree, goal))
	want := answerStrings([][]ir.Literal{{l("a", ir.Constant("t")), l("b", ir.Constant("t"))}})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("answers = %v, want %v", got, want)
	}
}

// Scenario 3: Binary relation.
func TestScenarioBinaryRelation(t *testing.T) {
	rules := []ir.Clause{
		rule(l("a", ir.UserVariable("X")), l("b", ir.UserVariable("X"), ir.UserVariable("Y")), l("c", ir.UserVariable("Y"))),
		rule(l("b", ir.Constant("t"), ir.Constant("f"))),
		rule(l("b", ir.Constant("f"), ir.Constant("t"))),
		rule(l("b", ir.Constant("g"), ir.Constant("t"))),
		rule(l("c", ir.Constant("t"))),
	}
	gm := sld.GroundnessMap{
		{Predicate: "a", Arity: 1}: {true},
		{Predicate: "b", Arity: 2}: {true, true},
		{Predicate: "c", Arity: 1}: {true},
	}
	goal := []ir.Literal{l("a", ir.UserVariable("X"))}

	tree := mustSolve(t, rules, goal, gm, 10)
	got := answerStrings(Solutions(tree, goal))
	want := answerStrings([][]ir.Literal{{l("a", ir.Constant("f"))}, {l("a", ir.Constant("g"))}})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("answers = %v, want %v", got, want)
	}
}

// Scenario 4: Recursion + depth bound. Reachability over arcs
// a->b->c->d->e, g->f->e, g->a.
func TestScenarioRecursiveReachability(t *testing.T) {
	arc := func(from, to string) ir.Clause {
		return rule(l("arc", ir.Constant(from), ir.Constant(to)))
	}
	rules := []ir.Clause{
		arc("a", "b"), arc("b", "c"), arc("c", "d"), arc("d", "e"),
		arc("g", "f"), arc("f", "e"), arc("g", "a"),
		rule(l("reach", ir.UserVariable("X"), ir.UserVariable("Y")), l("arc", ir.UserVariable("X"), ir.UserVariable("Y"))),
		rule(l("reach", ir.UserVariable("X"), ir.UserVariable("Z")),
			l("arc", ir.UserVariable("X"), ir.UserVariable("Y")),
			l("reach", ir.UserVariable("Y"), ir.UserVariable("Z"))),
	}
	gm := sld.GroundnessMap{
		{Predicate: "arc", Arity: 2}:   {true, true},
		{Predicate: "reach", Arity: 2}: {true, true},
	}
	goal := []ir.Literal{l("reach", ir.Constant("a"), ir.UserVariable("X"))}

	tree := mustSolve(t, rules, goal, gm, 15)
	got := answerStrings(Solutions(tree, goal))
	want := answerStrings([][]ir.Literal{
		{l("reach", ir.Constant("a"), ir.Constant("b"))},
		{l("reach", ir.Constant("a"), ir.Constant("c"))},
		{l("reach", ir.Constant("a"), ir.Constant("d"))},
		{l("reach", ir.Constant("a"), ir.Constant("e"))},
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("answers = %v, want %v", got, want)
	}
}

// Scenario 5: Builtin string_concat, empty program.
func TestScenarioBuiltinStringConcat(t *testing.T) {
	goal := []ir.Literal{l("string_concat", ir.Constant("hello"), ir.Constant("world"), ir.UserVariable("X"))}
	tree := mustSolve(t, nil, goal, sld.GroundnessMap{}, 10)
	got := answerStrings(Solutions(tree, goal))
	want := answerStrings([][]ir.Literal{{l("string_concat", ir.Constant("hello"), ir.Constant("world"), ir.Constant("helloworld"))}})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("answers = %v, want %v", got, want)
	}
}

// Scenario 6: Recursive with builtin split.
func TestScenarioRecursiveWithBuiltinSplit(t *testing.T) {
	rules := []ir.Clause{
		rule(l("a", ir.Constant("ab"))),
		rule(l("a", ir.UserVariable("S")),
			l("string_concat", ir.Constant("a"), ir.UserVariable("X"), ir.UserVariable("S")),
			l("string_concat", ir.UserVariable("Y"), ir.Constant("b"), ir.UserVariable("X")),
			l("a", ir.UserVariable("Y"))),
	}
	gm := sld.GroundnessMap{
		{Predicate: "a", Arity: 1}: {false},
	}

	cases := []struct {
		input    string
		wantHit  bool
	}{
		{"aabb", true},
		{"aab", false},
		{"aaabbb", true},
	}
	for _, c := range cases {
		goal := []ir.Literal{l("a", ir.Constant(c.input))}
		tree := mustSolve(t, rules, goal, gm, 50)
		got := Solutions(tree, goal)
		if c.wantHit && len(got) != 1 {
			t.Errorf("a(%q): got %d answers, want exactly 1", c.input, len(got))
		}
		if !c.wantHit && len(got) != 0 {
			t.Errorf("a(%q): got %d answers, want 0", c.input, len(got))
		}
	}
}
