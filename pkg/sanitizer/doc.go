// Package sanitizer provides named, composable string transforms.
//
// Transforms are pure functions from string to string, addressable by the
// literal names a filter rule uses as parameters (filter[trim,upper]). The
// package-level registry maps those names to implementations and is open for
// extension via Register.
//
// # Usage
//
//	clean := sanitizer.Apply(raw, sanitizer.Trim, sanitizer.Lower)
//
//	pipeline, err := sanitizer.Chain("trim", "collapseWhitespace")
//	if err != nil { ... }
//	clean = pipeline(raw)
//
// All transforms are stateless and goroutine-safe. Registering transforms
// concurrently with lookups is not; register at startup.
package sanitizer
