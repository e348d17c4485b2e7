package handler

import (
	stdnet "net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/config"
	"github.com/aligo/server/internal/data"
	"github.com/aligo/server/internal/entity"
	gonet "github.com/aligo/server/internal/net"
	"github.com/aligo/server/internal/net/packet"
	"github.com/aligo/server/internal/world"
)

func testTables(t *testing.T) *data.Tables {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"quest_list.yaml":         "quests:\n  - tid: 1000\n  - tid: 1001\n",
		"daily_quest_list.yaml":   "quests:\n  - tid: 5000\nextras:\n  - val0: 3\n    val1: 60\n",
		"special_event_list.yaml": "quests:\n  - tid: 7000\nevents:\n  - unk0: 1\n    unk1: 100\n",
		"npc_dress_list.yaml":     "items:\n  - uid: 1\n    tid: 30008\n    count: 1\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	tables, err := data.LoadAll(dir)
	require.NoError(t, err)
	return tables
}

func testDeps(t *testing.T) *Deps {
	t.Helper()
	cfg, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	cfg.Messenger.AnnounceIP = "127.0.0.1"
	cfg.Messenger.AnnouncePort = 10033

	return &Deps{
		Config:  cfg,
		Log:     zap.NewNop(),
		Tables:  testTables(t),
		Ranches: world.NewRanchRegistry(zap.NewNop()),
		Handoff: world.NewHandoffIssuer(time.Minute),
	}
}

func newSession(t *testing.T, id uint64) *gonet.Session {
	t.Helper()
	server, client := stdnet.Pipe()
	params := gonet.SessionParams{
		OutQueueSize: 16,
		MaxFrameSize: 4096,
		WriteTimeout: time.Second,
		IdleTimeout:  time.Second,
	}
	sess := gonet.NewSession(server, id, "pipe", packet.NewRegistry(zap.NewNop()), params, zap.NewNop())
	t.Cleanup(func() {
		sess.Close()
		client.Close()
	})
	return sess
}

// nextPacket pops and decodes one queued outbound frame.
func nextPacket(t *testing.T, sess *gonet.Session) gonet.Packet {
	t.Helper()
	select {
	case frame := <-sess.OutQueue:
		return gonet.ParseBody(frame[2:])
	default:
		t.Fatal("no frame queued")
		return gonet.Packet{}
	}
}

func decodeAs(t *testing.T, pkt gonet.Packet, msg packet.Message) {
	t.Helper()
	require.Equal(t, msg.ID(), pkt.ID)
	r := packet.NewReader(pkt.Payload)
	msg.Decode(r)
	require.NoError(t, r.Err())
}

func boundSession(t *testing.T, id uint64, characterID uint32) *gonet.Session {
	t.Helper()
	sess := newSession(t, id)
	sess.SetCharacter(&entity.Character{ID: characterID, Nickname: "rgnt", MountUID: 10})
	sess.SetHorses([]command.Horse{{UID: 10, TID: 20001, Name: "mount"}})
	sess.SetState(packet.StateCharacterBound)
	return sess
}

func TestQuestHandlers(t *testing.T) {
	deps := testDeps(t)

	t.Run("quest list serves the table", func(t *testing.T) {
		sess := boundSession(t, 1, 4)
		require.NoError(t, HandleRequestQuestList(sess, &command.RequestQuestList{CharacterID: 4}, deps))

		var ok command.RequestQuestListOK
		decodeAs(t, nextPacket(t, sess), &ok)
		assert.Equal(t, uint32(4), ok.CharacterID)
		require.Len(t, ok.Quests, 2)
		assert.Equal(t, uint16(1000), ok.Quests[0].TID)
	})

	t.Run("claimed character id must match the session", func(t *testing.T) {
		sess := boundSession(t, 1, 4)
		err := HandleRequestQuestList(sess, &command.RequestQuestList{CharacterID: 5}, deps)
		assert.Error(t, err)
		assert.Empty(t, sess.OutQueue)
	})

	t.Run("no bound character", func(t *testing.T) {
		sess := newSession(t, 1)
		err := HandleRequestQuestList(sess, &command.RequestQuestList{CharacterID: 4}, deps)
		assert.Error(t, err)
	})

	t.Run("daily quests carry the extras", func(t *testing.T) {
		sess := boundSession(t, 1, 4)
		require.NoError(t, HandleRequestDailyQuestList(sess, &command.RequestDailyQuestList{CharacterID: 4}, deps))

		var ok command.RequestDailyQuestListOK
		decodeAs(t, nextPacket(t, sess), &ok)
		require.Len(t, ok.Val1, 1)
		assert.Equal(t, uint32(60), ok.Val1[0].Val1)
	})

	t.Run("special events echo the request value", func(t *testing.T) {
		sess := boundSession(t, 1, 4)
		require.NoError(t, HandleRequestSpecialEventList(sess, &command.RequestSpecialEventList{Unk0: 9}, deps))

		var ok command.RequestSpecialEventListOK
		decodeAs(t, nextPacket(t, sess), &ok)
		assert.Equal(t, uint32(9), ok.Unk0)
		require.Len(t, ok.Events, 1)
	})
}

func TestLobbyDispatchWithoutCharacter(t *testing.T) {
	deps := testDeps(t)
	reg := packet.NewRegistry(zap.NewNop())
	RegisterLobby(reg, deps)

	sess := newSession(t, 1)
	sess.SetState(packet.StateAuthenticated)

	w := packet.NewWriter()
	(&command.RequestQuestList{CharacterID: 4}).Encode(w)
	require.NoError(t, w.Err())

	// The handler rejects the request, but the error stays in the
	// handler: the dispatch succeeds and the connection survives.
	err := reg.Dispatch(sess, sess.State(), packet.AcCmdCLRequestQuestList, w.Bytes())
	require.NoError(t, err)
	assert.Empty(t, sess.OutQueue)
	assert.False(t, sess.IsClosed())
}

func TestMessengerInfo(t *testing.T) {
	deps := testDeps(t)
	sess := boundSession(t, 1, 4)
	require.NoError(t, HandleGetMessengerInfo(sess, &command.GetMessengerInfo{}, deps))

	var ok command.GetMessengerInfoOK
	decodeAs(t, nextPacket(t, sess), &ok)
	assert.Zero(t, ok.Code)
	assert.True(t, ok.Address.IP.Equal(stdnet.IPv4(127, 0, 0, 1)))
	assert.Equal(t, uint16(10033), ok.Address.Port)
}

func TestStorageHandlers(t *testing.T) {
	deps := testDeps(t)

	t.Run("gift box pages echo and stay empty", func(t *testing.T) {
		sess := boundSession(t, 1, 4)
		require.NoError(t, HandleRequestStorage(sess, &command.RequestStorage{Val0: 1, Val1: 2}, deps))

		var ok command.RequestStorageOK
		decodeAs(t, nextPacket(t, sess), &ok)
		assert.Equal(t, byte(1), ok.Val0)
		assert.Equal(t, uint16(2), ok.Val1)
		assert.Empty(t, ok.Val3)
	})

	t.Run("dress shop serves the table", func(t *testing.T) {
		sess := boundSession(t, 1, 4)
		require.NoError(t, HandleRequestNpcDressList(sess, &command.RequestNpcDressList{RanchUID: 4}, deps))

		var ok command.RequestNpcDressListOK
		decodeAs(t, nextPacket(t, sess), &ok)
		assert.Equal(t, uint32(4), ok.RanchUID)
		require.Len(t, ok.DressList, 1)
		assert.Equal(t, uint32(30008), ok.DressList[0].TID)
	})
}

// joinRanch places an already bound session into a live room the way
// the ranch entry handler would.
func joinRanch(t *testing.T, deps *Deps, sess *gonet.Session, ranchID uint32) *world.Ranch {
	t.Helper()
	character := sess.Character()
	ranch := deps.Ranches.GetOrCreate(ranchID, character.ID, character.Nickname, sess.Horses(), character.MountUID)
	ranch.Join(sess, character.ID)
	sess.SetRanchID(ranchID)
	sess.SetState(packet.StateRanchMember)
	return ranch
}

func TestRanchChatRelay(t *testing.T) {
	deps := testDeps(t)
	author := boundSession(t, 1, 4)
	listener := boundSession(t, 2, 5)
	joinRanch(t, deps, author, 4)
	joinRanch(t, deps, listener, 4)

	require.NoError(t, HandleRanchChat(author, &command.RanchChat{Message: "hello", Unk0: 1}, deps))

	t.Run("author hears its own message", func(t *testing.T) {
		var notify command.RanchChatNotify
		decodeAs(t, nextPacket(t, author), &notify)
		assert.Equal(t, "rgnt", notify.Author)
		assert.Equal(t, "hello", notify.Message)
		assert.Equal(t, byte(1), notify.IsBlue)
	})

	t.Run("the rest of the room hears it too", func(t *testing.T) {
		var notify command.RanchChatNotify
		decodeAs(t, nextPacket(t, listener), &notify)
		assert.Equal(t, "hello", notify.Message)
	})

	t.Run("chat outside a room fails", func(t *testing.T) {
		stray := boundSession(t, 3, 6)
		err := HandleRanchChat(stray, &command.RanchChat{Message: "echo?"}, deps)
		assert.Error(t, err)
	})
}

func TestRanchSnapshotRelay(t *testing.T) {
	deps := testDeps(t)
	mover := boundSession(t, 1, 4)
	watcher := boundSession(t, 2, 5)
	ranch := joinRanch(t, deps, mover, 4)
	joinRanch(t, deps, watcher, 4)

	moverMember, ok := ranch.MemberByUID(4)
	require.True(t, ok)

	msg := &command.RanchSnapshot{Snapshot: command.Snapshot{
		Type:    command.SnapshotPartial,
		Partial: command.PartialSpatial{Member0: 7},
	}}
	require.NoError(t, HandleRanchSnapshot(mover, msg, deps))

	t.Run("sender is excluded", func(t *testing.T) {
		assert.Empty(t, mover.OutQueue)
	})

	t.Run("watchers get the tagged snapshot", func(t *testing.T) {
		var notify command.RanchSnapshotNotify
		decodeAs(t, nextPacket(t, watcher), &notify)
		assert.Equal(t, moverMember.RanchIndex, notify.RanchIndex)
		assert.Equal(t, uint16(7), notify.Snapshot.Partial.Member0)
	})
}

func TestRanchCmdActionRelay(t *testing.T) {
	deps := testDeps(t)
	actor := boundSession(t, 1, 4)
	ranch := joinRanch(t, deps, actor, 4)

	require.NoError(t, HandleRanchCmdAction(actor, &command.RanchCmdAction{Unk0: 3}, deps))

	member, ok := ranch.MemberByUID(4)
	require.True(t, ok)

	var notify command.RanchCmdActionNotify
	decodeAs(t, nextPacket(t, actor), &notify)
	assert.Equal(t, uint16(3), notify.Unk0)
	assert.Equal(t, member.RanchIndex, notify.Unk1)
}

func TestRanchEntryRejectsBadCode(t *testing.T) {
	deps := testDeps(t)
	sess := newSession(t, 1)

	err := HandleRanchEnterRanch(sess, &command.RanchEnterRanch{CharacterUID: 4, OTP: 1234, RanchUID: 4}, deps)
	assert.Error(t, err)

	pkt := nextPacket(t, sess)
	assert.Equal(t, packet.AcCmdCREnterRanchCancel, pkt.ID)
	assert.Equal(t, packet.StateHandshake, sess.State())
}

func TestLeaveRanch(t *testing.T) {
	deps := testDeps(t)
	leaver := boundSession(t, 1, 4)
	stayer := boundSession(t, 2, 5)
	joinRanch(t, deps, leaver, 4)
	ranch := joinRanch(t, deps, stayer, 4)

	require.NoError(t, HandleLeaveRanch(leaver, &command.LeaveRanch{}, deps))

	t.Run("leaver gets the acknowledgement and resets", func(t *testing.T) {
		pkt := nextPacket(t, leaver)
		assert.Equal(t, packet.AcCmdCRLeaveRanchOK, pkt.ID)
		assert.Equal(t, packet.StateHandshake, leaver.State())
		assert.Zero(t, leaver.RanchID())
	})

	t.Run("the room is told who left", func(t *testing.T) {
		var notify command.LeaveRanchNotify
		decodeAs(t, nextPacket(t, stayer), &notify)
		assert.Equal(t, uint32(4), notify.CharacterUID)
	})

	t.Run("membership shrinks", func(t *testing.T) {
		_, ok := ranch.MemberByUID(4)
		assert.False(t, ok)
	})

	t.Run("room reaps when the last member leaves", func(t *testing.T) {
		require.NoError(t, HandleLeaveRanch(stayer, &command.LeaveRanch{}, deps))
		_, ok := deps.Ranches.Get(4)
		assert.False(t, ok)
	})
}
