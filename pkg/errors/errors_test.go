// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/konradko/linkify/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrConfigLoad, "config missing")
	if got, want := err.Error(), "[CONFIG_LOAD] config missing"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidInput, "bad mode %q", "sometimes")
	if got, want := err.Error(), `[INVALID_INPUT] bad mode "sometimes"`; got != want {
		t.Errorf("Newf() = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := errors.Wrap(cause, errors.ErrInputRead, "failed to read input")

	if got, want := err.Error(), "[INPUT_READ] failed to read input: underlying"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	if errors.Wrap(nil, errors.ErrInternal, "x") != nil {
		t.Error("wrapping nil should yield nil")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Newf(errors.ErrConfigParse, "bad toml at line %d", 3)
	if !stderrors.Is(err, errors.New(errors.ErrConfigParse, "")) {
		t.Error("errors with the same code should match")
	}
	if stderrors.Is(err, errors.New(errors.ErrConfigLoad, "")) {
		t.Error("errors with different codes should not match")
	}
}

func TestCode(t *testing.T) {
	if got := errors.Code(errors.New(errors.ErrInputRead, "x")); got != errors.ErrInputRead {
		t.Errorf("Code() = %v, want %v", got, errors.ErrInputRead)
	}
	if got := errors.Code(fmt.Errorf("plain")); got != errors.ErrUnknown {
		t.Errorf("Code() = %v, want %v", got, errors.ErrUnknown)
	}
	wrapped := fmt.Errorf("outer: %w", errors.New(errors.ErrConfigLoad, "inner"))
	if got := errors.Code(wrapped); got != errors.ErrConfigLoad {
		t.Errorf("Code() = %v, want %v", got, errors.ErrConfigLoad)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrConfigLoad, "missing").WithDetail("path", "/x/y")
	if err.Details["path"] != "/x/y" {
		t.Errorf("Details[path] = %v, want /x/y", err.Details["path"])
	}
}
