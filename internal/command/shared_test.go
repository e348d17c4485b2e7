package command

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aligo/server/internal/net/packet"
)

func TestAddress(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		w := packet.NewWriter()
		in := Address{IP: net.IPv4(10, 20, 30, 40), Port: 10030}
		in.Encode(w)
		require.NoError(t, w.Err())
		assert.Equal(t, []byte{10, 20, 30, 40, 0x2E, 0x27}, w.Bytes())

		r := packet.NewReader(w.Bytes())
		var out Address
		out.Decode(r)
		require.NoError(t, r.Err())
		assert.True(t, in.IP.Equal(out.IP))
		assert.Equal(t, in.Port, out.Port)
	})

	t.Run("non-IPv4 address falls back to loopback", func(t *testing.T) {
		w := packet.NewWriter()
		(&Address{IP: net.ParseIP("::1"), Port: 7}).Encode(w)
		require.NoError(t, w.Err())
		assert.Equal(t, []byte{127, 0, 0, 1, 7, 0}, w.Bytes())
	})
}

func TestWinFileTime(t *testing.T) {
	t.Run("unix epoch", func(t *testing.T) {
		ft := WinFileTimeFrom(time.Unix(0, 0))
		// 11644473600 seconds in 100ns intervals.
		assert.Equal(t, uint32(0xD53E8000), ft.LowDateTime)
		assert.Equal(t, uint32(0x019DB1DE), ft.HighDateTime)
	})

	t.Run("round trip", func(t *testing.T) {
		at := time.Date(2024, 6, 15, 12, 30, 45, 500, time.UTC)
		got := WinFileTimeFrom(at).Time()
		assert.True(t, got.Equal(at.Truncate(100*time.Nanosecond)))
	})
}
