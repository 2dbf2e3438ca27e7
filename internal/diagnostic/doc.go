// Package diagnostic provides structured warnings, errors, and notes
// produced while resolving branch conflicts.
//
// Key capabilities:
//   - Unresolved conflict warnings when adapters are requested
//   - Validation errors for resolution scripts and experiment configs
//   - Rename hints for missing dimensions
package diagnostic
