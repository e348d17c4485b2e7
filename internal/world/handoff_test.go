package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandoff(t *testing.T) {
	t.Run("issued code redeems once", func(t *testing.T) {
		h := NewHandoffIssuer(time.Minute)
		otp := h.Issue(4, 4)
		require.NotZero(t, otp)

		assert.True(t, h.Redeem(4, otp, 4))
		assert.False(t, h.Redeem(4, otp, 4))
	})

	t.Run("wrong code is refused", func(t *testing.T) {
		h := NewHandoffIssuer(time.Minute)
		otp := h.Issue(4, 4)

		assert.False(t, h.Redeem(4, otp+1, 4))
		assert.False(t, h.Redeem(4, 0, 4))
		// The right code still works after failed attempts.
		assert.True(t, h.Redeem(4, otp, 4))
	})

	t.Run("wrong ranch is refused", func(t *testing.T) {
		h := NewHandoffIssuer(time.Minute)
		otp := h.Issue(4, 4)
		assert.False(t, h.Redeem(4, otp, 5))
	})

	t.Run("unknown character has no pending code", func(t *testing.T) {
		h := NewHandoffIssuer(time.Minute)
		assert.False(t, h.Redeem(99, 1234, 4))
	})

	t.Run("reissue replaces the pending code", func(t *testing.T) {
		h := NewHandoffIssuer(time.Minute)
		old := h.Issue(4, 4)
		fresh := h.Issue(4, 4)

		if old != fresh {
			assert.False(t, h.Redeem(4, old, 4))
		}
		assert.True(t, h.Redeem(4, fresh, 4))
	})

	t.Run("codes expire after the ttl", func(t *testing.T) {
		h := NewHandoffIssuer(10 * time.Millisecond)
		otp := h.Issue(4, 4)
		time.Sleep(30 * time.Millisecond)
		assert.False(t, h.Redeem(4, otp, 4))
	})
}
