// Package program loads a surface program — its clauses and the groundness
// map the SLD engine needs alongside them — from a YAML document. No
// textual Modus grammar is implemented here, only the data model a parser
// (or a hand-written build file) already produces, decoded the way
// theRebelliousNerd/codenerd's internal/config.Load decodes its own YAML
// configuration.
package program

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/evanrichter/modus/internal/ir"
	"github.com/evanrichter/modus/internal/sld"
	"github.com/evanrichter/modus/internal/surface"
)

// Document is the on-disk YAML shape: an ordered list of clauses plus the
// groundness mask for every user predicate the clauses invoke.
type Document struct {
	Clauses    []ClauseDoc             `yaml:"clauses"`
	Groundness map[string]SignatureDoc `yaml:"groundness"`
	Goal       []LiteralDoc            `yaml:"goal"`
	MaxDepth   int                     `yaml:"max_depth"`
}

// SignatureDoc is one groundness map entry, keyed by "predicate/arity" in
// the YAML (e.g. "reach/2") and holding the per-argument mask.
type SignatureDoc struct {
	Vars []bool `yaml:"vars"`
}

// ClauseDoc is one surface clause: a head and an optional body. Body is a
// disjunction of conjunctions — an ordered list of "AND-groups", each an
// ordered list of literals — covering exactly the expressiveness
// internal/surface.Expression allows (conjunction, disjunction of
// conjunctions); an operator-application wrapper is not representable from
// YAML since the core only forwards an operator application, never
// interprets it, and a hand-authored program has no operator to forward.
type ClauseDoc struct {
	Head LiteralDoc     `yaml:"head"`
	Body [][]LiteralDoc `yaml:"body,omitempty"`
}

// LiteralDoc is one literal: a predicate name and its arguments. Each
// argument is a string using a small sigil convention to disambiguate
// surface term kinds: a leading "?" marks a variable (`?X`), a leading "$"
// marks a format string (`$ubuntu:${distro}`), anything else is a constant.
type LiteralDoc struct {
	Predicate string   `yaml:"predicate"`
	Args      []string `yaml:"args"`
}

// Load reads and decodes a Document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read program %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse program %s: %w", path, err)
	}
	return &doc, nil
}

// toSurfaceTerm applies the sigil convention described on LiteralDoc.
func toSurfaceTerm(raw string) surface.Term {
	if len(raw) == 0 {
		return surface.Constant("")
	}
	switch raw[0] {
	case '?':
		return surface.UserVariable(raw[1:])
	case '$':
		return surface.FormatString(raw[1:])
	default:
		return surface.Constant(raw)
	}
}

func (d LiteralDoc) toSurface() surface.Literal {
	args := make([]surface.Term, len(d.Args))
	for i, a := range d.Args {
		args[i] = toSurfaceTerm(a)
	}
	return surface.Literal{Predicate: ir.Predicate(d.Predicate), Args: args}
}

// andGroupExpression renders one AND-group of literals as a left-associative
// chain of surface.ExprAnd nodes.
func andGroupExpression(group []LiteralDoc) surface.Expression {
	if len(group) == 0 {
		return nil
	}
	expr := surface.Expression(surface.ExprLiteral{Literal: group[0].toSurface()})
	for _, lit := range group[1:] {
		expr = surface.ExprAnd{Left: expr, Right: surface.ExprLiteral{Literal: lit.toSurface()}}
	}
	return expr
}

func (c ClauseDoc) toSurface() surface.Clause {
	var body surface.Expression
	for i, group := range c.Body {
		g := andGroupExpression(group)
		if i == 0 {
			body = g
			continue
		}
		body = surface.ExprOr{Left: body, Right: g}
	}
	return surface.Clause{Head: c.Head.toSurface(), Body: body}
}

// SurfaceClauses returns d's clauses as internal/surface values, ready for
// internal/lower.LowerProgram.
func (d *Document) SurfaceClauses() []surface.Clause {
	out := make([]surface.Clause, len(d.Clauses))
	for i, c := range d.Clauses {
		out[i] = c.toSurface()
	}
	return out
}

// SurfaceGoal returns d's goal section as internal/surface literals, ready
// for internal/lower.LowerGoal.
func (d *Document) SurfaceGoal() []surface.Literal {
	out := make([]surface.Literal, len(d.Goal))
	for i, l := range d.Goal {
		out[i] = l.toSurface()
	}
	return out
}

// GroundnessMap converts d's YAML groundness section into the
// sld.GroundnessMap the engine expects, parsing each "predicate/arity" key
// via ir.Signature's own String format in reverse.
func (d *Document) GroundnessMap() (sld.GroundnessMap, error) {
	out := make(sld.GroundnessMap, len(d.Groundness))
	for key, entry := range d.Groundness {
		sig, err := parseSignature(key)
		if err != nil {
			return nil, fmt.Errorf("groundness key %q: %w", key, err)
		}
		if len(entry.Vars) != sig.Arity {
			return nil, fmt.Errorf("groundness key %q: vars has length %d, want arity %d", key, len(entry.Vars), sig.Arity)
		}
		out[sig] = entry.Vars
	}
	return out, nil
}

func parseSignature(s string) (ir.Signature, error) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != '/' {
			continue
		}
		var arity int
		if _, err := fmt.Sscanf(s[i+1:], "%d", &arity); err != nil {
			return ir.Signature{}, fmt.Errorf("invalid arity in %q: %w", s, err)
		}
		return ir.Signature{Predicate: ir.Predicate(s[:i]), Arity: arity}, nil
	}
	return ir.Signature{}, fmt.Errorf("missing '/arity' suffix in %q", s)
}
