package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TracyFogel/nbd.php-validation/pkg/sanitizer"
)

func TestTransforms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"trim", sanitizer.Trim, "  ab  ", "ab"},
		{"lower", sanitizer.Lower, "AbC", "abc"},
		{"upper", sanitizer.Upper, "abc", "ABC"},
		{"title", sanitizer.Title, "hello world", "Hello World"},
		{"collapse whitespace", sanitizer.CollapseWhitespace, "  a \t b\n\nc ", "a b c"},
		{"strip control keeps tabs and newlines", sanitizer.StripControl, "a\x00b\tc\n", "ab\tc\n"},
		{"snake", sanitizer.Snake, "Hello World-Again", "hello_world_again"},
		{"kebab", sanitizer.Kebab, "Hello World_Again", "hello-world-again"},
		{"camel", sanitizer.Camel, "hello world again", "helloWorldAgain"},
		{"normalize composes NFC", sanitizer.Normalize, "é", "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("resolves registered names", func(t *testing.T) {
		fn, ok := sanitizer.Transform("trim")
		require.True(t, ok)
		assert.Equal(t, "ab", fn(" ab "))
	})

	t.Run("unknown name misses", func(t *testing.T) {
		_, ok := sanitizer.Transform("sparkle")
		assert.False(t, ok)
	})

	t.Run("custom transforms can be registered", func(t *testing.T) {
		sanitizer.Register("exclaim", func(s string) string { return s + "!" })
		fn, ok := sanitizer.Transform("exclaim")
		require.True(t, ok)
		assert.Equal(t, "hi!", fn("hi"))
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	got := sanitizer.Apply("  Hello World  ", sanitizer.Trim, sanitizer.Lower, sanitizer.Snake)
	assert.Equal(t, "hello_world", got)
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.Upper)
	assert.Equal(t, "AB", clean("  ab  "))
}

func TestChain(t *testing.T) {
	t.Parallel()

	t.Run("builds a pipeline from names", func(t *testing.T) {
		pipeline, err := sanitizer.Chain("trim", "collapseWhitespace", "lower")
		require.NoError(t, err)
		assert.Equal(t, "a b", pipeline("  A   B  "))
	})

	t.Run("unknown name fails", func(t *testing.T) {
		_, err := sanitizer.Chain("trim", "sparkle")
		assert.Error(t, err)
	})
}
