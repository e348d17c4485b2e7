package handler

import (
	"context"
	"time"

	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/net"
	"go.uber.org/zap"
)

// HandleUpdateMountNickname renames one of the session's horses.
func HandleUpdateMountNickname(sess *net.Session, msg *command.UpdateMountNickname, deps *Deps) error {
	horses := sess.Horses()
	found := -1
	for i := range horses {
		if horses[i].UID == msg.UID {
			found = i
			break
		}
	}
	if found < 0 {
		return sess.SendCommand(&command.UpdateMountNicknameCancel{})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := deps.Horses.UpdateName(ctx, msg.UID, msg.Nickname); err != nil {
		deps.Log.Error("更新馬匹名稱資料庫錯誤", zap.Error(err))
		return sess.SendCommand(&command.UpdateMountNicknameCancel{})
	}

	updated := make([]command.Horse, len(horses))
	copy(updated, horses)
	updated[found].Name = msg.Nickname
	sess.SetHorses(updated)

	return sess.SendCommand(&command.UpdateMountNicknameOK{
		UID:      msg.UID,
		Nickname: msg.Nickname,
		Unk1:     msg.Unk1,
	})
}

// HandleWearEquipment switches the character's mount and tells the
// rest of the room so the avatar swap is visible immediately.
func HandleWearEquipment(sess *net.Session, msg *command.WearEquipment, deps *Deps) error {
	character := sess.Character()
	if character == nil {
		return sess.SendCommand(&command.WearEquipmentCancel{Unk0: msg.ItemUID, Unk1: msg.Member})
	}

	owned := false
	for _, h := range sess.Horses() {
		if h.UID == msg.ItemUID {
			owned = true
			break
		}
	}
	if !owned {
		return sess.SendCommand(&command.WearEquipmentCancel{Unk0: msg.ItemUID, Unk1: msg.Member})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := deps.Characters.UpdateMount(ctx, character.ID, msg.ItemUID); err != nil {
		deps.Log.Error("更新坐騎資料庫錯誤", zap.Error(err))
		return sess.SendCommand(&command.WearEquipmentCancel{Unk0: msg.ItemUID, Unk1: msg.Member})
	}
	character.MountUID = msg.ItemUID
	sess.SetCharacter(character)

	ok := &command.WearEquipmentOK{ItemUID: msg.ItemUID, Member: msg.Member}
	if ranch, found := deps.Ranches.Get(sess.RanchID()); found {
		ranch.Broadcast(ok, 0)
		return nil
	}
	return sess.SendCommand(ok)
}
