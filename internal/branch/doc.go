// Package branch resolves the conflicts between an experiment and the parent
// it branches from.
//
// Resolution pipeline (NewBuilder):
//  1. Extract inline directives (~+, ~-, ~>) from the child's user arguments
//  2. Build the parent and child spaces
//  3. Detect new, changed and missing dimensions
//  4. Replay the directives as add, remove and rename calls
//  5. Apply the child's "branch" name, if any
//
// The remaining conflicts are then resolved through AddDimension,
// RemoveDimension, RenameDimension and ResetDimension. Name arguments accept
// whitespace separated lists, the keywords anyNew, anyChanged and anyMissing,
// and "prefix*" wildcards. Every call validates all names before changing
// anything, so a failed call leaves the builder untouched.
//
// A Builder is not safe for concurrent use.
package branch
