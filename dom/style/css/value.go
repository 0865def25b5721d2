package css

import (
	"errors"
	"strconv"
)

// ErrNotAValue is returned by value parsers if the input does not denote a
// value of the requested kind.
var ErrNotAValue = errors.New("tokens do not form a value of the expected kind")

// Value is the type of typed CSS property values. The set of implementing
// types is closed; see the package documentation.
type Value interface {
	String() string
	cssValue()
}

// Keyword is an identifier value, e.g. 'solid' or 'normal'.
// Keywords are always lower case.
type Keyword string

func (k Keyword) String() string { return string(k) }
func (Keyword) cssValue()        {}

// Number is a unitless numeric value.
type Number float64

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
func (Number) cssValue() {}

// Global keywords, valid for every property.
const (
	Inherit Keyword = "inherit"
	Initial Keyword = "initial"
)

// IsGlobalKeyword checks if v is 'inherit' or 'initial'.
func IsGlobalKeyword(v Value) bool {
	k, ok := v.(Keyword)
	return ok && (k == Inherit || k == Initial)
}

var (
	_ Value = Keyword("")
	_ Value = Number(0)
	_ Value = DimenT{}
	_ Value = Color{}
	_ Value = DisplayMode(0)
)
