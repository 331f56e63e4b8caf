package token

import "testing"

func TestIsIdentifier(t *testing.T) {
	good := []string{"foo", "_foo", "Foo_Bar3", "_", "a1"}
	for _, s := range good {
		if !IsIdentifier(s) {
			t.Errorf("IsIdentifier(%q) = false, want true", s)
		}
	}
	bad := []string{"", "3foo", "foo-bar", "foo.bar", " foo"}
	for _, s := range bad {
		if IsIdentifier(s) {
			t.Errorf("IsIdentifier(%q) = true, want false", s)
		}
	}
}
