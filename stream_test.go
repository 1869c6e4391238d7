package mqcoder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferPutGetByte(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.PutByte(0x01))
	require.NoError(t, b.PutByte(0x02))
	require.Equal(t, 2, b.Length())

	v, err := b.GetByte(0)
	require.NoError(t, err)
	require.Equal(t, byte(0x01), v)

	_, err = b.GetByte(5)
	require.ErrorIs(t, err, ErrStreamIO)
}

func TestBufferRemoveBytes(t *testing.T) {
	b := NewBufferFromBytes([]byte{0xAA, 0xBB, 0xCC})
	require.NoError(t, b.RemoveByte())
	require.Equal(t, 2, b.Length())

	require.NoError(t, b.RemoveBytes(2))
	require.Equal(t, 0, b.Length())

	require.Error(t, b.RemoveBytes(1))
}

func TestBufferWrite(t *testing.T) {
	b := NewBuffer()
	n, err := b.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{1, 2, 3}, b.Bytes())
}
