// Package refine applies expr-lang rules to converted values.
//
// Check keeps a pipeline honest about constraints a type cannot carry,
// such as "value > 0" or "len(value) <= 64". Compute derives a new
// value from an expression. Rules are compiled once when the converter
// is built and evaluated per node with the value bound to "value" and
// its location bound to "path".
package refine
