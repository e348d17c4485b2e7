package net

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/aligo/server/internal/net/packet"
)

// Wire format: [2 bytes LE: total length including header][2 bytes LE:
// command id][payload]. The command id and payload together form the
// frame body, which is the part the scrambler covers on inbound
// traffic.

const frameHeaderSize = 4

// ErrFrameTooLarge is fatal: the peer declared a frame larger than the
// receive buffer, so the stream can no longer be trusted.
var ErrFrameTooLarge = errors.New("frame exceeds maximum size")

// Packet is one deframed message: the command id and its undecoded
// payload. Created per deframe, consumed by exactly one handler, never
// persisted.
type Packet struct {
	ID      packet.CommandID
	Payload []byte
}

// ReadFrame reads one frame body from r. The body is returned still
// scrambled; callers descramble it before splitting off the command id.
// An oversized declared length returns ErrFrameTooLarge without reading
// another byte from the stream.
func ReadFrame(r io.Reader, maxFrame int) ([]byte, error) {
	var header [2]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("read frame header: %w", err)
	}

	totalLen := int(binary.LittleEndian.Uint16(header[:]))
	if totalLen > maxFrame {
		return nil, fmt.Errorf("declared length %d: %w", totalLen, ErrFrameTooLarge)
	}
	bodyLen := totalLen - 2
	if bodyLen < 2 {
		return nil, fmt.Errorf("invalid frame length: %d", totalLen)
	}

	body := make([]byte, bodyLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("read frame body (%d bytes): %w", bodyLen, err)
	}
	return body, nil
}

// ParseBody splits a descrambled frame body into its Packet.
func ParseBody(body []byte) Packet {
	return Packet{
		ID:      packet.CommandID(binary.LittleEndian.Uint16(body[:2])),
		Payload: body[2:],
	}
}

// WriteFrame writes one framed packet to w. Outbound frames are never
// scrambled.
func WriteFrame(w io.Writer, pkt Packet) error {
	totalLen := len(pkt.Payload) + frameHeaderSize
	if totalLen > 0xffff {
		return fmt.Errorf("payload of %d bytes: %w", len(pkt.Payload), ErrFrameTooLarge)
	}
	var header [frameHeaderSize]byte
	binary.LittleEndian.PutUint16(header[0:2], uint16(totalLen))
	binary.LittleEndian.PutUint16(header[2:4], uint16(pkt.ID))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write frame header: %w", err)
	}
	if _, err := w.Write(pkt.Payload); err != nil {
		return fmt.Errorf("write frame payload: %w", err)
	}
	return nil
}

// EncodeFrame renders a full frame (header + body) into a byte slice,
// for queueing toward the write loop.
func EncodeFrame(pkt Packet) ([]byte, error) {
	totalLen := len(pkt.Payload) + frameHeaderSize
	if totalLen > 0xffff {
		return nil, fmt.Errorf("payload of %d bytes: %w", len(pkt.Payload), ErrFrameTooLarge)
	}
	buf := make([]byte, totalLen)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(totalLen))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(pkt.ID))
	copy(buf[frameHeaderSize:], pkt.Payload)
	return buf, nil
}
