package util

import (
	"testing"
)

func TestUserHomeUsesHomeEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	if got := UserHome(); got != dir {
		t.Errorf("UserHome() = %q, want %q", got, dir)
	}
}
