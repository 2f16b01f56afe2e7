package adapter

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePacket_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePacket(&buf, packet{ID: 7, Type: typeExecCommand, Payload: []byte("list")}, defaultPacketLimits))

	want := []byte{
		14, 0, 0, 0, // length: 4 id + 4 type + 4 payload + 2 nul
		7, 0, 0, 0,
		2, 0, 0, 0,
		'l', 'i', 's', 't',
		0, 0,
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestWritePacket_TooLarge(t *testing.T) {
	var buf bytes.Buffer
	err := writePacket(&buf, packet{ID: 1, Type: typeExecCommand, Payload: make([]byte, 1447)}, defaultPacketLimits)

	assert.ErrorIs(t, err, ErrPacketTooLarge)
	assert.Zero(t, buf.Len())
}

func TestReadPacket_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := packet{ID: -1, Type: typeAuthResponse, Payload: []byte{}}
	require.NoError(t, writePacket(&buf, in, defaultPacketLimits))

	out, err := readPacket(&buf, defaultPacketLimits)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), out.ID)
	assert.Equal(t, typeAuthResponse, out.Type)
	assert.Empty(t, out.Payload)
}

func rawFrame(length int32, body []byte) []byte {
	b := make([]byte, 4, 4+len(body))
	binary.LittleEndian.PutUint32(b, uint32(length))
	return append(b, body...)
}

func TestReadPacket_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{
			name:    "length below header",
			input:   rawFrame(4, []byte{0, 0, 0, 0}),
			wantErr: ErrShortPacket,
		},
		{
			name:    "negative length",
			input:   rawFrame(-5, nil),
			wantErr: ErrShortPacket,
		},
		{
			name:    "oversized",
			input:   rawFrame(int32(defaultPacketLimits.MaxInboundPayload+headerSize+trailerSize+1), nil),
			wantErr: ErrPacketTooLarge,
		},
		{
			name:    "missing terminator",
			input:   rawFrame(11, []byte{1, 0, 0, 0, 0, 0, 0, 0, 'a', 'b', 0}),
			wantErr: ErrMissingTerminator,
		},
		{
			name:    "truncated body",
			input:   rawFrame(20, []byte{1, 0, 0, 0}),
			wantErr: io.ErrUnexpectedEOF,
		},
		{
			name:    "empty stream",
			input:   nil,
			wantErr: io.EOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readPacket(bytes.NewReader(tt.input), defaultPacketLimits)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
