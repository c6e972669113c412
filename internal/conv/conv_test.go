package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint32ToInt(t *testing.T) {
	v, err := Uint32ToInt(math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, int(math.MaxUint32), v)
}

func TestUint64ToUint32(t *testing.T) {
	v, err := Uint64ToUint32(42)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)

	_, err = Uint64ToUint32(math.MaxUint32 + 1)
	assert.Error(t, err)
}

func TestIntToUint32(t *testing.T) {
	v, err := IntToUint32(7)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), v)

	_, err = IntToUint32(-1)
	assert.Error(t, err)
}
