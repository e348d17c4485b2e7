package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/net/packet"
)

func TestEnterBreedingMarket(t *testing.T) {
	deps := testDeps(t)
	sess := boundSession(t, 1, 4)

	require.NoError(t, HandleEnterBreedingMarket(sess, &command.EnterBreedingMarket{}, deps))

	var ok command.EnterBreedingMarketOK
	decodeAs(t, nextPacket(t, sess), &ok)
	require.Len(t, ok.AvailableHorses, 1)
	assert.Equal(t, uint32(10), ok.AvailableHorses[0].UID)
	assert.Equal(t, uint32(20001), ok.AvailableHorses[0].TID)
}

func TestSearchStallion(t *testing.T) {
	deps := testDeps(t)
	sess := boundSession(t, 1, 4)

	require.NoError(t, HandleSearchStallion(sess, &command.SearchStallion{}, deps))

	var ok command.SearchStallionOK
	decodeAs(t, nextPacket(t, sess), &ok)
	require.Len(t, ok.Stallions, 1)
	assert.Equal(t, "mount", ok.Stallions[0].Name)
	assert.Equal(t, uint32(1), ok.Stallions[0].Price)
}

func TestTryBreedingUnknownMother(t *testing.T) {
	deps := testDeps(t)
	sess := boundSession(t, 1, 4)

	require.NoError(t, HandleTryBreeding(sess, &command.TryBreeding{OwnHorseUID: 999, OtherHorseUID: 10}, deps))

	pkt := nextPacket(t, sess)
	assert.Equal(t, packet.AcCmdCRTryBreedingCancel, pkt.ID)
}

func TestBreedingWishlistStartsEmpty(t *testing.T) {
	deps := testDeps(t)
	sess := boundSession(t, 1, 4)

	require.NoError(t, HandleBreedingWishlist(sess, &command.BreedingWishlist{}, deps))

	pkt := nextPacket(t, sess)
	var ok command.BreedingWishlistOK
	decodeAs(t, pkt, &ok)
	assert.Empty(t, ok.Wishlist)
	// The count byte is present and zero, not an omitted list.
	assert.Equal(t, []byte{0x00}, pkt.Payload)
}

func TestMountFamilyTreeEchoesUID(t *testing.T) {
	deps := testDeps(t)
	sess := boundSession(t, 1, 4)

	require.NoError(t, HandleMountFamilyTree(sess, &command.MountFamilyTree{UID: 10}, deps))

	var ok command.MountFamilyTreeOK
	decodeAs(t, nextPacket(t, sess), &ok)
	assert.Equal(t, uint32(10), ok.UID)
	assert.Empty(t, ok.Items)
}
