package config

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file yields the defaults", func(t *testing.T) {
		cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
		require.NoError(t, err)

		assert.Equal(t, "AliGO", cfg.Server.Name)
		assert.True(t, cfg.Lobby.Enabled)
		assert.Equal(t, "0.0.0.0:10030", cfg.Lobby.BindAddress)
		assert.False(t, cfg.Race.Enabled)
		assert.Equal(t, 4096, cfg.Network.MaxFrameSize)
		assert.Equal(t, 5*time.Minute, cfg.Game.HandoffTTL)
		assert.NotZero(t, cfg.Server.StartTime)
	})

	t.Run("file values override the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "server.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[server]
name = "TestShard"

[lobby]
announce_ip = "10.0.0.5"
announce_port = 20030

[network]
idle_timeout = "2m"

[game]
motd = "hi"
`), 0o644))

		cfg, err := LoadOrDefault(path)
		require.NoError(t, err)
		assert.Equal(t, "TestShard", cfg.Server.Name)
		assert.Equal(t, "10.0.0.5", cfg.Lobby.AnnounceIP)
		assert.Equal(t, 2*time.Minute, cfg.Network.IdleTimeout)
		assert.Equal(t, "hi", cfg.Game.Motd)
		// Untouched sections keep their defaults.
		assert.Equal(t, 256, cfg.Network.OutQueueSize)
		assert.Equal(t, uint16(10031), cfg.Ranch.AnnouncePort)
	})

	t.Run("malformed file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "server.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server\n"), 0o644))
		_, err := LoadOrDefault(path)
		assert.Error(t, err)
	})
}

func TestAnnounceAddr(t *testing.T) {
	t.Run("IPv4 address", func(t *testing.T) {
		role := RoleConfig{AnnounceIP: "192.168.1.50", AnnouncePort: 10031}
		ip, port, err := role.AnnounceAddr()
		require.NoError(t, err)
		assert.True(t, ip.Equal(net.IPv4(192, 168, 1, 50)))
		assert.Len(t, ip, 4)
		assert.Equal(t, uint16(10031), port)
	})

	t.Run("IPv6 address is refused", func(t *testing.T) {
		_, _, err := RoleConfig{AnnounceIP: "::1"}.AnnounceAddr()
		assert.Error(t, err)
	})

	t.Run("garbage is refused", func(t *testing.T) {
		_, _, err := RoleConfig{AnnounceIP: "ranch.example.com"}.AnnounceAddr()
		assert.Error(t, err)
	})
}

func TestParsePort(t *testing.T) {
	port, err := ParsePort("0.0.0.0:10030")
	require.NoError(t, err)
	assert.Equal(t, uint16(10030), port)

	_, err = ParsePort("10030")
	assert.Error(t, err)

	_, err = ParsePort("0.0.0.0:99999")
	assert.Error(t, err)
}
