package showtimes

import (
	"encoding/json"
	"strconv"
	"strings"
)

type stepKind uint8

const (
	stepKey stepKind = iota
	stepParam
	stepEach
	stepWhere
)

// Step is one hop of a Path over a decoded JSON tree.
type Step struct {
	kind  stepKind
	name  string
	value string
}

// Key descends into an object member.
func Key(name string) Step { return Step{kind: stepKey, name: name} }

// Param descends into the object member named by params[name] at walk time.
func Param(name string) Step { return Step{kind: stepParam, name: name} }

// Each fans out over the elements of an array.
func Each() Step { return Step{kind: stepEach} }

// Where keeps only objects whose field is the string value.
func Where(field, value string) Step { return Step{kind: stepWhere, name: field, value: value} }

// Path is a declarative route through a decoded JSON document. Nodes that are
// missing or of the wrong shape at any step are dropped, never reported.
type Path []Step

// Walk returns every node reached from root, in document order.
func (p Path) Walk(root any, params map[string]string) []any {
	nodes := []any{root}
	for _, step := range p {
		next := make([]any, 0, len(nodes))
		for _, node := range nodes {
			next = step.apply(node, params, next)
		}
		if len(next) == 0 {
			return nil
		}
		nodes = next
	}
	return nodes
}

// First returns the first node reached from root, if any.
func (p Path) First(root any, params map[string]string) (any, bool) {
	nodes := p.Walk(root, params)
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

func (s Step) apply(node any, params map[string]string, out []any) []any {
	switch s.kind {
	case stepKey, stepParam:
		obj, ok := node.(map[string]any)
		if !ok {
			return out
		}
		key := s.name
		if s.kind == stepParam {
			if key, ok = params[s.name]; !ok {
				return out
			}
		}
		child, ok := obj[key]
		if !ok || child == nil {
			return out
		}
		return append(out, child)
	case stepEach:
		arr, ok := node.([]any)
		if !ok {
			return out
		}
		for _, el := range arr {
			if el != nil {
				out = append(out, el)
			}
		}
		return out
	case stepWhere:
		obj, ok := node.(map[string]any)
		if !ok {
			return out
		}
		if v, ok := obj[s.name].(string); ok && v == s.value {
			return append(out, node)
		}
		return out
	}
	return out
}

// scalarString renders strings and numbers as text; anything else is missing.
func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, x != ""
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	}
	return "", false
}

func scalarFloat(v any) float64 {
	switch x := v.(type) {
	case json.Number:
		f, _ := x.Float64()
		return f
	case float64:
		return x
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f
	}
	return 0
}
