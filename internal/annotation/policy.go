package annotation

// ColorPolicy supplies the color of addresses with no stored tag.
// ok is false for addresses the data source could not resolve.
type ColorPolicy interface {
	DefaultColor(addr int64, b byte, ok bool, cursor int64) int
}

// ColorPolicyFunc adapts a function to ColorPolicy.
type ColorPolicyFunc func(addr int64, b byte, ok bool, cursor int64) int

// DefaultColor implements ColorPolicy.
func (f ColorPolicyFunc) DefaultColor(addr int64, b byte, ok bool, cursor int64) int {
	return f(addr, b, ok, cursor)
}

// NoPolicy colors every untagged address with tag 0.
var NoPolicy ColorPolicy = ColorPolicyFunc(func(int64, byte, bool, int64) int { return MinColor })

// NonPrintablePolicy tags bytes outside printable ASCII with tag.
func NonPrintablePolicy(tag int) ColorPolicy {
	return ColorPolicyFunc(func(_ int64, b byte, ok bool, _ int64) int {
		if ok && (b < 0x20 || b >= 0x7f) {
			return tag
		}
		return MinColor
	})
}
