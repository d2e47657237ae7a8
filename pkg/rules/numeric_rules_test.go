package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TracyFogel/nbd.php-validation/pkg/rules"
)

func TestInteger(t *testing.T) {
	t.Parallel()
	rule := mustRule(t, "integer")
	ctx := &rules.Context{}

	assert.True(t, rule.IsValid(42, ctx))
	assert.True(t, rule.IsValid("42", ctx))
	assert.True(t, rule.IsValid("-7", ctx))
	assert.False(t, rule.IsValid("4.2", ctx))
	assert.False(t, rule.IsValid(4.2, ctx))
	assert.False(t, rule.IsValid("abc", ctx))
}

func TestDecimal(t *testing.T) {
	t.Parallel()
	rule := mustRule(t, "decimal")
	ctx := &rules.Context{}

	assert.True(t, rule.IsValid(4.2, ctx))
	assert.True(t, rule.IsValid("4.2", ctx))
	assert.False(t, rule.IsValid("42", ctx), "integer notation is not decimal")
	assert.False(t, rule.IsValid(42, ctx))
	assert.False(t, rule.IsValid("4.2.1", ctx))
}

func TestNumeric(t *testing.T) {
	t.Parallel()
	rule := mustRule(t, "numeric")
	ctx := &rules.Context{}

	assert.True(t, rule.IsValid(42, ctx))
	assert.True(t, rule.IsValid("4.2", ctx))
	assert.True(t, rule.IsValid("42", ctx))
	assert.False(t, rule.IsValid("abc", ctx))
	assert.False(t, rule.IsValid(nil, ctx))
}

func TestRange(t *testing.T) {
	t.Parallel()
	rule := mustRule(t, "range")
	ctx := &rules.Context{Parameters: []string{"1", "10"}}

	assert.True(t, rule.IsValid("1", ctx), "lower bound is inclusive")
	assert.True(t, rule.IsValid("10", ctx), "upper bound is inclusive")
	assert.True(t, rule.IsValid(5.5, ctx))
	assert.False(t, rule.IsValid("11", ctx))
	assert.False(t, rule.IsValid("0", ctx))
	assert.False(t, rule.IsValid("5", &rules.Context{Parameters: []string{"1"}}), "missing bound fails")
}

func TestGreaterThanLessThan(t *testing.T) {
	t.Parallel()
	gt := mustRule(t, "greaterThan")
	lt := mustRule(t, "lessThan")
	ctx := &rules.Context{Parameters: []string{"5"}}

	assert.True(t, gt.IsValid("6", ctx))
	assert.False(t, gt.IsValid("5", ctx), "strictly greater")
	assert.True(t, lt.IsValid("4", ctx))
	assert.False(t, lt.IsValid("5", ctx), "strictly less")
}
