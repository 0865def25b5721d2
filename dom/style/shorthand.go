package style

import (
	"fmt"

	"github.com/npillmayer/cssbox/dom/style/css"
)

func standardShorthands() map[string]shorthand {
	sh := map[string]shorthand{
		"margin":       fourSided("margin", ""),
		"padding":      fourSided("padding", ""),
		"border-width": fourSided("border", "width"),
		"border-style": fourSided("border", "style"),
		"border-color": fourSided("border", "color"),
		"border":       borderShorthand(fourDirs[:]...),
		"background": {
			longhands: []string{"background-color"},
			expand:    expandBackground,
		},
	}
	for _, d := range fourDirs {
		sh["border-"+d] = borderShorthand(d)
	}
	return sh
}

// fourSided creates a shorthand which distributes 1–4 values to the four
// sides of a box.
func fourSided(pre, suf string) shorthand {
	longhands := make([]string, 4)
	for i, d := range fourDirs {
		longhands[i] = p(pre, suf, d)
	}
	return shorthand{
		longhands: longhands,
		expand: func(r *Registry, comps [][]css.Token) ([]KeyValue, error) {
			keys, vals, err := feazeCompound4(pre, suf, fourDirs, comps)
			if err != nil {
				return nil, err
			}
			kvs := make([]KeyValue, 4)
			for i, key := range keys {
				v, err := r.parseLonghand(key, vals[i])
				if err != nil {
					return nil, err
				}
				kvs[i] = KeyValue{key, v}
			}
			return kvs, nil
		},
	}
}

// borderShorthand creates a shorthand for 'border' or 'border-<side>'. The
// value consists of a width, a style and a color, in any order, each of
// them optional but at least one present.
func borderShorthand(sides ...string) shorthand {
	var longhands []string
	for _, d := range sides {
		longhands = append(longhands, "border-"+d+"-width", "border-"+d+"-style", "border-"+d+"-color")
	}
	return shorthand{
		longhands: longhands,
		expand: func(r *Registry, comps [][]css.Token) ([]KeyValue, error) {
			if len(comps) == 0 || len(comps) > 3 {
				return nil, fmt.Errorf("expecting 1-3 values for border, have %d", len(comps))
			}
			parts := map[string]css.Value{}
			for _, comp := range comps {
				matched := false
				for _, part := range []string{"width", "style", "color"} {
					if _, seen := parts[part]; seen {
						continue
					}
					if v, err := r.parseLonghand("border-"+sides[0]+"-"+part, comp); err == nil {
						parts[part] = v
						matched = true
						break
					}
				}
				if !matched {
					return nil, fmt.Errorf("%w: border component %v", css.ErrNotAValue, comp)
				}
			}
			kvs := make([]KeyValue, 0, len(longhands))
			for _, d := range sides {
				for _, part := range []string{"width", "style", "color"} {
					key := "border-" + d + "-" + part
					v, ok := parts[part]
					if !ok {
						v = r.defs[key].Initial
					}
					kvs = append(kvs, KeyValue{key, v})
				}
			}
			return kvs, nil
		},
	}
}

// expandBackground supports the color part of 'background' only.
func expandBackground(r *Registry, comps [][]css.Token) ([]KeyValue, error) {
	if len(comps) != 1 {
		return nil, fmt.Errorf("only a single background color is supported, have %d values", len(comps))
	}
	v, err := r.parseLonghand("background-color", comps[0])
	if err != nil {
		return nil, err
	}
	return []KeyValue{{"background-color", v}}, nil
}
