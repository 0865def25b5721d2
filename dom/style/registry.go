package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cssbox/dom/style/css"
)

// Errors reported when parsing declarations. Both are recoverable: the
// cascade drops the offending declaration and carries on.
var (
	ErrUnknownProperty = errors.New("unknown CSS property")
	ErrInvalidValue    = errors.New("invalid CSS property value")
)

// ParseFunc parses the tokens of a raw declaration value into a typed value.
// Global keywords ('inherit', 'initial') are handled by the registry and
// never reach a ParseFunc.
type ParseFunc func(tokens []css.Token) (css.Value, error)

// PropertyDef describes a longhand CSS property.
type PropertyDef struct {
	Name      string
	Initial   css.Value // initial value, already in computed form where possible
	Inherited bool      // inherited by default
	Parse     ParseFunc
}

type shorthand struct {
	longhands []string
	expand    func(r *Registry, comps [][]css.Token) ([]KeyValue, error)
}

// Registry is a table of supported CSS properties. A registry is never
// changed after creation and may be shared freely.
type Registry struct {
	defs       map[string]PropertyDef
	order      []string // computation order
	shorthands map[string]shorthand
}

// NewRegistry creates a registry from a list of property definitions. The
// order of defs is the order in which computed values are derived: a
// property may depend on computed values of properties listed before it
// (e.g., 'font-size' has to precede lengths in em).
//
// Standard shorthands are installed for which all longhands are defined.
func NewRegistry(defs []PropertyDef) *Registry {
	r := &Registry{
		defs:       make(map[string]PropertyDef, len(defs)),
		shorthands: make(map[string]shorthand),
	}
	for _, def := range defs {
		if _, dup := r.defs[def.Name]; dup {
			tracer().Infof("property %q defined twice, ignoring second definition", def.Name)
			continue
		}
		r.defs[def.Name] = def
		r.order = append(r.order, def.Name)
	}
	for name, sh := range standardShorthands() {
		complete := true
		for _, l := range sh.longhands {
			if _, ok := r.defs[l]; !ok {
				complete = false
				break
			}
		}
		if complete {
			r.shorthands[name] = sh
		}
	}
	return r
}

var defaultRegistry = NewRegistry(defaultProperties())

// DefaultRegistry returns the registry of all properties supported by this
// module.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Lookup returns the definition of a longhand property.
func (r *Registry) Lookup(name string) (PropertyDef, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Properties returns the names of all longhand properties, in computation
// order.
func (r *Registry) Properties() []string {
	props := make([]string, len(r.order))
	copy(props, r.order)
	return props
}

// IsShorthand checks if name denotes a shorthand property.
func (r *Registry) IsShorthand(name string) bool {
	_, ok := r.shorthands[name]
	return ok
}

// Expand returns the longhands a shorthand property sets, or nil if name
// is not a shorthand.
func (r *Registry) Expand(name string) []string {
	sh, ok := r.shorthands[name]
	if !ok {
		return nil
	}
	l := make([]string, len(sh.longhands))
	copy(l, sh.longhands)
	return l
}

// Parse parses a raw declaration value for a property. For longhands the
// result contains a single entry, for shorthands one entry for every
// longhand the shorthand sets. Omitted parts of a shorthand are set to
// their initial values.
//
// Parse returns ErrUnknownProperty for properties not in the registry and
// ErrInvalidValue (wrapped) for values not valid for the property. A
// shorthand with an invalid component is invalid as a whole.
func (r *Registry) Parse(name string, raw Property) ([]KeyValue, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	def, isLonghand := r.defs[name]
	sh, isShorthand := r.shorthands[name]
	if !isLonghand && !isShorthand {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	if raw.IsEmpty() {
		return nil, fmt.Errorf("%w: %s: empty value", ErrInvalidValue, name)
	}
	if raw.IsInherit() || raw.IsInitial() {
		global := css.Inherit
		if raw.IsInitial() {
			global = css.Initial
		}
		if isLonghand {
			return []KeyValue{{name, global}}, nil
		}
		kvs := make([]KeyValue, len(sh.longhands))
		for i, l := range sh.longhands {
			kvs[i] = KeyValue{l, global}
		}
		return kvs, nil
	}
	tokens, err := css.Tokenize(raw.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, name, err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: %s: empty value", ErrInvalidValue, name)
	}
	if isLonghand {
		v, err := def.Parse(tokens)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, name, err)
		}
		return []KeyValue{{name, v}}, nil
	}
	comps, err := components(tokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, name, err)
	}
	kvs, err := sh.expand(r, comps)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, name, err)
	}
	return kvs, nil
}

// parseLonghand parses a shorthand component with the parser of a longhand.
func (r *Registry) parseLonghand(name string, tokens []css.Token) (css.Value, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	return def.Parse(tokens)
}

// components splits the tokens of a shorthand value into its components.
// A function token and its arguments form a single component, every other
// token forms a component on its own. Commas are invalid outside of
// functions.
func components(tokens []css.Token) ([][]css.Token, error) {
	var comps [][]css.Token
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind {
		case css.TokComma, css.TokCloseParen:
			return nil, fmt.Errorf("unexpected %q", tok.Text)
		case css.TokFunction:
			j := i + 1
			for j < len(tokens) && tokens[j].Kind != css.TokCloseParen {
				j++
			}
			if j == len(tokens) {
				return nil, fmt.Errorf("unclosed function %s()", tok.Text)
			}
			comps = append(comps, tokens[i:j+1])
			i = j
		default:
			comps = append(comps, tokens[i:i+1])
		}
	}
	return comps, nil
}
