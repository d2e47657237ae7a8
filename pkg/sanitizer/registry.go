package sanitizer

// transforms maps filter-token names to transform functions. Names are the
// literal parameter tokens of a filter rule, e.g. filter[trim,upper].
var transforms = map[string]func(string) string{
	"trim":               Trim,
	"lower":              Lower,
	"upper":              Upper,
	"title":              Title,
	"normalize":          Normalize,
	"collapseWhitespace": CollapseWhitespace,
	"stripControl":       StripControl,
	"snake":              Snake,
	"kebab":              Kebab,
	"camel":              Camel,
}

// Transform resolves a transform by name.
func Transform(name string) (func(string) string, bool) {
	fn, ok := transforms[name]
	return fn, ok
}

// Register adds or replaces a named transform. Not safe for concurrent use
// with Transform; register at startup.
func Register(name string, fn func(string) string) {
	transforms[name] = fn
}
