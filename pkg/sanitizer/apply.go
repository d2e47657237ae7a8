package sanitizer

import "fmt"

// Apply runs value through the given transforms in order.
func Apply(value string, fns ...func(string) string) string {
	for _, fn := range fns {
		value = fn(value)
	}
	return value
}

// Compose builds a reusable pipeline from transform functions.
func Compose(fns ...func(string) string) func(string) string {
	return func(value string) string {
		return Apply(value, fns...)
	}
}

// Chain builds a pipeline from registered transform names, failing on the
// first unknown name.
func Chain(names ...string) (func(string) string, error) {
	fns := make([]func(string) string, 0, len(names))
	for _, name := range names {
		fn, ok := Transform(name)
		if !ok {
			return nil, fmt.Errorf("sanitizer: unknown transform %q", name)
		}
		fns = append(fns, fn)
	}
	return Compose(fns...), nil
}
