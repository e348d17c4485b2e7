package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/entity"
	"github.com/aligo/server/internal/net"
	"github.com/aligo/server/internal/net/packet"
	"go.uber.org/zap"
)

// HandleCreateNickname finishes first-run character creation: the
// character row, a starter horse and the mount binding are persisted
// together, and the fresh inventory is pushed back so the client can
// proceed straight into the lobby.
func HandleCreateNickname(sess *net.Session, msg *command.CreateNickname, deps *Deps) error {
	account := sess.Account()
	if account == nil {
		return fmt.Errorf("create nickname without login")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	character := &entity.Character{
		MemberNo:   account.MemberNo,
		Nickname:   msg.Nickname,
		Shape:      msg.Character,
		CreateUnk0: msg.Unk0,
	}
	if err := deps.Characters.Insert(ctx, character); err != nil {
		deps.Log.Error("建立角色資料庫錯誤", zap.Error(err))
		return sess.SendCommand(&command.CreateNicknameCancel{Error: 0})
	}

	starter := starterHorse()
	if err := deps.Horses.Insert(ctx, character.ID, &starter); err != nil {
		deps.Log.Error("建立初始馬匹資料庫錯誤", zap.Error(err))
		return sess.SendCommand(&command.CreateNicknameCancel{Error: 0})
	}
	if err := deps.Characters.UpdateMount(ctx, character.ID, starter.UID); err != nil {
		deps.Log.Error("綁定坐騎資料庫錯誤", zap.Error(err))
		return sess.SendCommand(&command.CreateNicknameCancel{Error: 0})
	}
	character.MountUID = starter.UID

	sess.SetCharacter(character)
	sess.SetHorses([]command.Horse{starter})
	sess.SetState(packet.StateCharacterBound)
	deps.Log.Info(fmt.Sprintf("建立角色  帳號=%s 暱稱=%s", account.LoginID, msg.Nickname))

	return sess.SendCommand(&command.ShowInventoryOK{
		Horses: []command.Horse{starter},
	})
}

// starterHorse is the mount every new character begins with.
func starterHorse() command.Horse {
	return command.Horse{
		TID:           20001,
		Parts:         command.DefaultHorseParts(),
		Class:         21,
		ClassProgress: 1,
		Grade:         5,
		Vals0: command.HorseVals0{
			Stamina:        65535,
			Attractiveness: 65535,
			Hunger:         65535,
			Val1:           1000,
			Val5:           1000,
			Val6:           30,
			Val7:           10,
			Val8:           10,
			Val9:           10,
		},
		Vals1: command.HorseVals1{
			DateOfBirth:      3097585636,
			Val3:             2,
			ClassProgression: 255,
			PotentialValue:   255,
			Luck:             4,
			Emblem:           1,
		},
		Mastery: command.HorseMastery{
			SpurMagicCount:  510,
			JumpCount:       1057,
			SlidingTime:     1528,
			GlidingDistance: 53156,
		},
		Val16: 3097585636,
	}
}
