//go:build !linux && !darwin

package xproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRename_UnsupportedPlatform(t *testing.T) {
	assert.False(t, Supported())
	assert.Equal(t, 0, Capacity())
	require.ErrorIs(t, CheckSupport(), ErrUnsupportedPlatform)
	require.ErrorIs(t, Rename("rename-test"), ErrUnsupportedPlatform)
	require.ErrorIs(t, Reset(), ErrUnsupportedPlatform)

	_, err := Title()
	require.ErrorIs(t, err, ErrUnsupportedPlatform)
}
