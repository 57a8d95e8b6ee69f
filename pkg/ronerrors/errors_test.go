package ronerrors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapturesCallerStack(t *testing.T) {
	err := New(KindConfigLoad, "boom")

	require.NotEmpty(t, err.Stack)
	assert.True(t, strings.HasSuffix(err.Stack[0].Function, "TestNewCapturesCallerStack"),
		"first frame should be the caller, got %s", err.Stack[0].Function)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, KindConfigLoad, "nothing"))
}

func TestWrapKeepsCauseChain(t *testing.T) {
	err := Wrap(fs.ErrNotExist, KindConfigLoad, "read config file")

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, IsConfigLoad(err))
	assert.False(t, IsKind(err, KindInternal))
}

func TestWrapPreservesStructuredStack(t *testing.T) {
	inner := New(KindInternal, "inner")
	outer := Wrap(inner, KindConfigLoad, "outer")

	assert.Equal(t, inner.Stack, outer.Stack)
	assert.True(t, IsKind(outer, KindInternal))
	assert.True(t, IsKind(outer, KindConfigLoad))
}

func TestIsKindThroughForeignWrapper(t *testing.T) {
	err := fmt.Errorf("startup: %w", New(KindConfigLoad, "bad literal"))

	assert.True(t, IsConfigLoad(err))
	assert.False(t, IsConfigLoad(errors.New("plain")))
	assert.False(t, IsConfigLoad(nil))
}

func TestErrorStringSortsDetails(t *testing.T) {
	err := Newf(KindConfigLoad, "invalid %s", "value").
		WithDetail("zeta", 1).
		WithDetail("alpha", "x")

	assert.Equal(t, "config_load: invalid value (alpha=x, zeta=1)", err.Error())

	v, ok := err.Detail("zeta")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = err.Detail("missing")
	assert.False(t, ok)
}
