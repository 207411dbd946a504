package reshape

import (
	"github.com/signadot/reshape/node"
)

// Default substitutes fallback for a Missing input before running c.
// Present inputs pass through untouched. The substituted value is
// converted like any other, so a fallback that fails c's checks still
// fails.
func Default[Out, In any](c Converter[Out, In], fallback In) Converter[Out, In] {
	return ConverterFunc[Out, In](func(n node.Node[In]) Result[node.Node[Out]] {
		if n.IsMissing() {
			n = n.WithValue(fallback)
		}
		return c.ConvertNode(n)
	})
}
