package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TracyFogel/nbd.php-validation/pkg/rules"
)

func TestEmail(t *testing.T) {
	t.Parallel()
	rule := mustRule(t, "email")
	ctx := &rules.Context{}

	assert.True(t, rule.IsValid("bob@example.com", ctx))
	assert.False(t, rule.IsValid("not-an-email", ctx))
	assert.False(t, rule.IsValid("Bob <bob@example.com>", ctx), "display-name form is rejected")
	assert.False(t, rule.IsValid("", ctx))
	assert.False(t, rule.IsValid(42, ctx))
}

func TestURL(t *testing.T) {
	t.Parallel()
	rule := mustRule(t, "url")
	ctx := &rules.Context{}

	assert.True(t, rule.IsValid("https://example.com/path?q=1", ctx))
	assert.True(t, rule.IsValid("http://example.com", ctx))
	assert.False(t, rule.IsValid("ftp://example.com", ctx))
	assert.False(t, rule.IsValid("example.com", ctx), "scheme is mandatory")
	assert.False(t, rule.IsValid("https://", ctx), "host is mandatory")
}

func TestUUID(t *testing.T) {
	t.Parallel()
	rule := mustRule(t, "uuid")
	ctx := &rules.Context{}

	assert.True(t, rule.IsValid("550e8400-e29b-41d4-a716-446655440000", ctx))
	assert.False(t, rule.IsValid("550e8400e29b41d4a716446655440000", ctx), "hyphens are mandatory")
	assert.False(t, rule.IsValid("550e8400-e29b-41d4-a716-44665544000g", ctx))
	assert.False(t, rule.IsValid("short", ctx))
}

func TestBoolean(t *testing.T) {
	t.Parallel()
	rule := mustRule(t, "boolean")
	ctx := &rules.Context{}

	assert.True(t, rule.IsValid(true, ctx))
	assert.True(t, rule.IsValid("TRUE", ctx))
	assert.True(t, rule.IsValid("no", ctx))
	assert.True(t, rule.IsValid("0", ctx))
	assert.True(t, rule.IsValid(1, ctx))
	assert.False(t, rule.IsValid(2, ctx))
	assert.False(t, rule.IsValid("maybe", ctx))
}
