package encryption

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPKCS7Unpad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		want    []byte
		wantErr bool
	}{
		{
			name: "single padding byte",
			data: append(bytes.Repeat([]byte{'a'}, 15), 0x01),
			want: bytes.Repeat([]byte{'a'}, 15),
		},
		{
			name: "five bytes of payload",
			data: append([]byte("hello"), bytes.Repeat([]byte{0x0b}, 11)...),
			want: []byte("hello"),
		},
		{
			name: "full padding block",
			data: bytes.Repeat([]byte{0x10}, 16),
			want: []byte{},
		},
		{
			name: "padding only inspects the final block",
			data: append(bytes.Repeat([]byte{0x10}, 16), bytes.Repeat([]byte{0x02}, 16)...),
			want: append(bytes.Repeat([]byte{0x10}, 16), bytes.Repeat([]byte{0x02}, 14)...),
		},
		{
			name:    "empty input",
			data:    []byte{},
			wantErr: true,
		},
		{
			name:    "zero padding byte",
			data:    append(bytes.Repeat([]byte{'a'}, 15), 0x00),
			wantErr: true,
		},
		{
			name:    "padding larger than a block",
			data:    bytes.Repeat([]byte{0x11}, 32),
			wantErr: true,
		},
		{
			name:    "padding longer than data",
			data:    []byte{0x02},
			wantErr: true,
		},
		{
			name:    "inconsistent padding bytes",
			data:    append([]byte("hello world!!"), 0x03, 0x02, 0x03),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := pkcs7Unpad(tt.data)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPadding)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPKCS7UnpadReturnsView(t *testing.T) {
	t.Parallel()

	data := append([]byte("hello"), bytes.Repeat([]byte{0x0b}, 11)...)

	got, err := pkcs7Unpad(data)
	require.NoError(t, err)

	got[0] = 'j'

	assert.Equal(t, byte('j'), data[0])
}
