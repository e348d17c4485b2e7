package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/entity"
	"github.com/aligo/server/internal/net"
	"github.com/aligo/server/internal/net/packet"
	"github.com/aligo/server/internal/world"
	"go.uber.org/zap"
)

// HandleRanchEnterRanch admits a client into a ranch room. The ranch
// connection carries no login; the one-time code issued by the lobby
// is the whole proof of identity, and the connection stays on the
// identity scrambler key.
func HandleRanchEnterRanch(sess *net.Session, msg *command.RanchEnterRanch, deps *Deps) error {
	if !deps.Handoff.Redeem(msg.CharacterUID, msg.OTP, msg.RanchUID) {
		if err := sess.SendCommand(&command.RanchEnterRanchCancel{}); err != nil {
			return err
		}
		return fmt.Errorf("invalid ranch entry code for character %d", msg.CharacterUID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	character, horses, err := deps.Characters.LoadWithHorses(ctx, msg.CharacterUID)
	if err != nil {
		deps.Log.Error("載入角色資料庫錯誤", zap.Error(err))
		return sess.SendCommand(&command.RanchEnterRanchCancel{})
	}
	if character == nil {
		if err := sess.SendCommand(&command.RanchEnterRanchCancel{}); err != nil {
			return err
		}
		return fmt.Errorf("character %d not found", msg.CharacterUID)
	}
	mount := entity.Mount(character, horses)
	if mount == nil {
		if err := sess.SendCommand(&command.RanchEnterRanchCancel{}); err != nil {
			return err
		}
		return fmt.Errorf("character %d has no mount", character.ID)
	}

	sess.SetCharacter(character)
	sess.SetHorses(horses)
	sess.SetRanchID(msg.RanchUID)

	ranch := deps.Ranches.GetOrCreate(msg.RanchUID, character.ID, character.Nickname, horses, character.MountUID)
	self := ranch.Join(sess, character.ID)
	sess.OnClose(func(s *net.Session) { evictFromRanch(s, deps) })

	var characters []command.RanchCharacter
	var newcomer command.RanchCharacter
	for _, m := range ranch.Members() {
		c := m.Session.Character()
		if c == nil {
			continue
		}
		h := entity.Mount(c, m.Session.Horses())
		if h == nil {
			continue
		}
		rc := ranchCharacter(c, h, m.RanchIndex)
		if m.RanchIndex == self.RanchIndex {
			newcomer = rc
		}
		characters = append(characters, rc)
	}

	sess.SetState(packet.StateRanchMember)
	if err := sess.SendCommand(&command.RanchEnterRanchOK{
		RanchID:    msg.RanchUID,
		RanchName:  ranch.Name,
		Horses:     ranch.Horses(),
		Characters: characters,
	}); err != nil {
		return err
	}

	ranch.Broadcast(&command.RanchEnterRanchNotify{Character: newcomer}, character.ID)
	deps.Log.Info("玩家進入牧場",
		zap.Uint32("ranch", msg.RanchUID),
		zap.String("character", character.Nickname),
		zap.Uint16("index", self.RanchIndex),
	)
	return nil
}

// ranchCharacter builds the wire form of one present player.
func ranchCharacter(c *entity.Character, mount *command.Horse, index uint16) command.RanchCharacter {
	return command.RanchCharacter{
		UID:        c.ID,
		Name:       c.Nickname,
		Gender:     c.Shape.Parts.Gender(),
		Unk0:       1,
		Unk1:       1,
		Character:  c.Shape,
		Mount:      *mount,
		RanchIndex: index,
		AnotherPlayerRelatedThing: command.AnotherPlayerRelatedThing{
			MountUID: mount.UID,
		},
	}
}

// evictFromRanch removes a dead session from its room and tells the
// remaining members. Reaps the room when it empties.
func evictFromRanch(sess *net.Session, deps *Deps) {
	ranchID := sess.RanchID()
	character := sess.Character()
	if ranchID == 0 || character == nil {
		return
	}
	ranch, ok := deps.Ranches.Get(ranchID)
	if !ok {
		return
	}
	sess.SetRanchID(0)
	if ranch.Leave(character.ID) {
		deps.Ranches.Reap(ranchID)
		return
	}
	ranch.Broadcast(&command.LeaveRanchNotify{CharacterUID: character.ID}, 0)
}

// HandleLeaveRanch is the orderly exit. The connection drops back to
// the handshake phase so it can present a new entry code.
func HandleLeaveRanch(sess *net.Session, _ *command.LeaveRanch, deps *Deps) error {
	if err := sess.SendCommand(&command.LeaveRanchOK{}); err != nil {
		return err
	}
	evictFromRanch(sess, deps)
	sess.SetState(packet.StateHandshake)
	return nil
}

func memberOf(sess *net.Session, deps *Deps) (*world.Ranch, *world.Member, error) {
	character := sess.Character()
	if character == nil {
		return nil, nil, fmt.Errorf("session has no character")
	}
	ranch, ok := deps.Ranches.Get(sess.RanchID())
	if !ok {
		return nil, nil, fmt.Errorf("character %d is in no ranch", character.ID)
	}
	member, ok := ranch.MemberByUID(character.ID)
	if !ok {
		return nil, nil, fmt.Errorf("character %d not a member of ranch %d", character.ID, ranch.ID)
	}
	return ranch, member, nil
}

// HandleRanchChat relays chat to everyone in the room, the author
// included.
func HandleRanchChat(sess *net.Session, msg *command.RanchChat, deps *Deps) error {
	ranch, _, err := memberOf(sess, deps)
	if err != nil {
		return err
	}
	ranch.Broadcast(&command.RanchChatNotify{
		Author:  sess.Character().Nickname,
		Message: msg.Message,
		IsBlue:  msg.Unk0,
		Unk1:    msg.Unk1,
	}, 0)
	return nil
}

// HandleRanchSnapshot relays a member's position report to the rest
// of the room, tagged with the sender's slot index. The sender is
// excluded; it already knows where it is.
func HandleRanchSnapshot(sess *net.Session, msg *command.RanchSnapshot, deps *Deps) error {
	ranch, member, err := memberOf(sess, deps)
	if err != nil {
		return err
	}
	ranch.Broadcast(&command.RanchSnapshotNotify{
		RanchIndex: member.RanchIndex,
		Snapshot:   msg.Snapshot,
	}, member.CharacterUID)
	return nil
}

// HandleRanchCmdAction relays an emote to the whole room.
func HandleRanchCmdAction(sess *net.Session, msg *command.RanchCmdAction, deps *Deps) error {
	ranch, member, err := memberOf(sess, deps)
	if err != nil {
		return err
	}
	ranch.Broadcast(&command.RanchCmdActionNotify{
		Unk0: msg.Unk0,
		Unk1: member.RanchIndex,
	}, 0)
	return nil
}
