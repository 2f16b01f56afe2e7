package adapter

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Packet types of the Source RCON protocol. The server answers an auth
// request with typeAuthResponse, which shares its value with typeExecCommand.
const (
	typeResponseValue int32 = 0
	typeExecCommand   int32 = 2
	typeAuthResponse  int32 = 2
	typeAuth          int32 = 3
)

// authFailedID is the request id the server echoes on a rejected password.
const authFailedID int32 = -1

// fragmentSize is the largest payload the server puts in a single response
// packet. A reply longer than that arrives split over several packets.
const fragmentSize = 4096

// headerSize covers the request id and type fields; trailerSize the two
// terminating NUL bytes.
const (
	headerSize  = 8
	trailerSize = 2
)

// packet is a single RCON frame. On the wire it is
//
//	int32 length | int32 id | int32 type | payload | 0x00 | 0x00
//
// with every integer little-endian and length excluding itself.
type packet struct {
	ID      int32
	Type    int32
	Payload []byte
}

// packetLimits bounds payload sizes in each direction.
type packetLimits struct {
	MaxOutboundPayload int
	MaxInboundPayload  int
}

// defaultPacketLimits matches what vanilla servers accept and emit, with
// headroom on the inbound side for modded servers.
var defaultPacketLimits = packetLimits{
	MaxOutboundPayload: 1446,
	MaxInboundPayload:  64 << 10,
}

func (p packet) size() int {
	return headerSize + len(p.Payload) + trailerSize
}

func writePacket(w io.Writer, p packet, limits packetLimits) error {
	if limits.MaxOutboundPayload > 0 && len(p.Payload) > limits.MaxOutboundPayload {
		return fmt.Errorf("%w: payload %d bytes exceeds %d", ErrPacketTooLarge, len(p.Payload), limits.MaxOutboundPayload)
	}

	buf := make([]byte, 4+p.size())
	binary.LittleEndian.PutUint32(buf[0:4], uint32(p.size()))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(p.ID))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(p.Type))
	copy(buf[12:], p.Payload)

	_, err := w.Write(buf)
	return err
}

func readPacket(r io.Reader, limits packetLimits) (packet, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return packet{}, err
	}

	length := int(int32(binary.LittleEndian.Uint32(lenBuf[:])))
	if length < headerSize+trailerSize {
		return packet{}, fmt.Errorf("%w: length %d", ErrShortPacket, length)
	}
	if limits.MaxInboundPayload > 0 && length-headerSize-trailerSize > limits.MaxInboundPayload {
		return packet{}, fmt.Errorf("%w: length %d", ErrPacketTooLarge, length)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return packet{}, err
	}

	if body[length-1] != 0 || body[length-2] != 0 {
		return packet{}, ErrMissingTerminator
	}

	return packet{
		ID:      int32(binary.LittleEndian.Uint32(body[0:4])),
		Type:    int32(binary.LittleEndian.Uint32(body[4:8])),
		Payload: body[headerSize : length-trailerSize],
	}, nil
}
