// Package conv supplies converters for the values document decoders
// actually produce: strings, bools, numbers in their several decoded
// representations, null, arrays, and string-keyed maps.
//
// Leaves are strict. String accepts only a string; coercions are spelled
// out, as in NumberString, which reads a number out of a string. The
// containers Object, Slice and MapOf run a converter per child and
// collect every child failure before reporting, so one pass over a
// document yields the full list of problems.
package conv
