package net

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aligo/server/internal/net/packet"
)

func TestFrameRoundTrip(t *testing.T) {
	t.Run("write then read", func(t *testing.T) {
		var buf bytes.Buffer
		pkt := Packet{ID: packet.AcCmdCLLogin, Payload: []byte{0xAA, 0xBB, 0xCC}}
		require.NoError(t, WriteFrame(&buf, pkt))

		body, err := ReadFrame(&buf, 4096)
		require.NoError(t, err)
		got := ParseBody(body)
		assert.Equal(t, pkt.ID, got.ID)
		assert.Equal(t, pkt.Payload, got.Payload)
	})

	t.Run("empty payload", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteFrame(&buf, Packet{ID: packet.AcCmdCLHeartbeat}))
		assert.Equal(t, []byte{0x04, 0x00, byte(packet.AcCmdCLHeartbeat), byte(packet.AcCmdCLHeartbeat >> 8)}, buf.Bytes())

		body, err := ReadFrame(&buf, 4096)
		require.NoError(t, err)
		got := ParseBody(body)
		assert.Equal(t, packet.AcCmdCLHeartbeat, got.ID)
		assert.Empty(t, got.Payload)
	})

	t.Run("encode matches write", func(t *testing.T) {
		pkt := Packet{ID: packet.AcCmdCLLogin, Payload: []byte{1, 2, 3, 4}}
		frame, err := EncodeFrame(pkt)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, WriteFrame(&buf, pkt))
		assert.Equal(t, buf.Bytes(), frame)
	})
}

func TestReadFrameErrors(t *testing.T) {
	t.Run("oversized declared length", func(t *testing.T) {
		buf := bytes.NewReader([]byte{0xFF, 0xFF})
		_, err := ReadFrame(buf, 4096)
		assert.ErrorIs(t, err, ErrFrameTooLarge)
	})

	t.Run("declared length below header size", func(t *testing.T) {
		buf := bytes.NewReader([]byte{0x03, 0x00})
		_, err := ReadFrame(buf, 4096)
		assert.Error(t, err)
	})

	t.Run("truncated body", func(t *testing.T) {
		buf := bytes.NewReader([]byte{0x08, 0x00, 0x01, 0x02})
		_, err := ReadFrame(buf, 4096)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("empty stream", func(t *testing.T) {
		_, err := ReadFrame(bytes.NewReader(nil), 4096)
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestEncodeFrameTooLarge(t *testing.T) {
	_, err := EncodeFrame(Packet{ID: packet.AcCmdCLLogin, Payload: make([]byte, 0x10000)})
	assert.ErrorIs(t, err, ErrFrameTooLarge)
}
