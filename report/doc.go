// Package report presents conversion outcomes to people.
//
// Render lists conversion errors one per line with their paths.
// Diff shows what a conversion changed as a line diff of the pretty
// printed documents, and MergePatch captures the same change as an
// RFC 7386 merge patch. Color is opt-in; TermColors picks the default
// scheme only when writing to a terminal.
package report
