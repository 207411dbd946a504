// Package reshape converts loosely typed document data into known
// shapes, reporting every failure with the path of the value that
// caused it.
//
// A Converter is a one-way step from an input node to an output node.
// Converters compose: Pipe chains steps, Default fills in missing
// values, Or tries alternatives, and Apply lifts a plain Go function
// into a step. The conv package supplies converters for the usual
// leaves and containers.
//
// Conversion never mutates its input and shares no state between
// calls, so a composed converter may be used from any number of
// goroutines at once.
//
// A minimal round trip:
//
//	c := conv.Object(
//		conv.F("name", reshape.AsAny(conv.String())),
//		conv.F("port", reshape.AsAny(reshape.Default(conv.IntString(), "8080"))),
//	)
//	out, err := reshape.Convert(c, doc)
//
// On failure err is a *ConversionError listing one Error per problem,
// each tagged with a path such as ".items[1].name".
package reshape
