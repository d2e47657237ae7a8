package validator_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/TracyFogel/nbd.php-validation/pkg/validator"
)

// Algebraic properties of Run over arbitrary small registries and cage data.

func TestRunProperties(t *testing.T) {
	t.Parallel()

	keys := []string{"a", "b", "c", "d"}
	chains := []string{"integer", "alpha", "numeric", "integer|range[1,10]"}
	values := []any{"1", "7", "11", "abc", "x1", ""}

	rapid.Check(t, func(t *rapid.T) {
		v := validator.NewDefault()

		var registered []string
		for _, key := range keys {
			if rapid.Bool().Draw(t, "register-"+key) {
				registered = append(registered, key)
			}
		}
		required := make(map[string]bool)
		for _, key := range registered {
			chain := rapid.SampledFrom(chains).Draw(t, "chain-"+key)
			if rapid.Bool().Draw(t, "required-"+key) {
				chain = "required|" + chain
				required[key] = true
			}
			if err := v.SetRule(key, key, chain); err != nil {
				t.Fatalf("SetRule(%q, %q): %v", key, chain, err)
			}
		}

		cage := make(map[string]any)
		for _, key := range keys {
			if rapid.Bool().Draw(t, "present-"+key) {
				cage[key] = rapid.SampledFrom(values).Draw(t, "value-"+key)
			}
		}
		v.SetCageData(cage)

		ok, err := v.Run()
		if err != nil {
			t.Fatalf("Run: %v", err)
		}

		validated := make(map[string]bool)
		for _, key := range v.ValidatedFields() {
			validated[key] = true
		}
		failed := make(map[string]bool)
		for _, key := range v.FailedFields() {
			failed[key] = true
		}

		// Mutual exclusion: no key holds both a validated value and an error.
		for key := range validated {
			if failed[key] {
				t.Fatalf("key %q is both validated and failed", key)
			}
		}

		// A key is untouched only when it is absent and not required.
		for _, key := range registered {
			_, present := cage[key]
			switch {
			case !present && required[key]:
				if !failed[key] {
					t.Fatalf("absent required key %q did not fail", key)
				}
			case !present:
				if validated[key] || failed[key] {
					t.Fatalf("absent optional key %q was processed", key)
				}
			default:
				if !validated[key] && !failed[key] {
					t.Fatalf("present key %q neither validated nor failed", key)
				}
			}
		}

		// The boolean result agrees with the failure set.
		if ok != (len(failed) == 0) {
			t.Fatalf("Run returned %v with %d failed fields", ok, len(failed))
		}

		// Re-run with unchanged state is idempotent.
		ok2, err := v.Run()
		if err != nil {
			t.Fatalf("re-Run: %v", err)
		}
		if ok2 != ok {
			t.Fatalf("re-Run returned %v, first Run returned %v", ok2, ok)
		}
		for _, key := range v.FailedFields() {
			if !failed[key] {
				t.Fatalf("re-Run failed extra key %q", key)
			}
		}
		if len(v.FailedFields()) != len(failed) || len(v.ValidatedFields()) != len(validated) {
			t.Fatalf("re-Run changed result sets")
		}
	})
}
