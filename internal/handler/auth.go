package handler

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/entity"
	"github.com/aligo/server/internal/net"
	"github.com/aligo/server/internal/net/packet"
	"go.uber.org/zap"
)

// HandleLogin processes AcCmdCLLogin. Accounts are keyed by the member
// number the launcher issues; the auth key is verified against the
// stored bcrypt hash, and unknown members are provisioned on the fly
// when auto-creation is enabled.
func HandleLogin(sess *net.Session, msg *command.Login, deps *Deps) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	account, err := deps.Accounts.Load(ctx, msg.MemberNo)
	if err != nil {
		deps.Log.Error("載入帳號資料庫錯誤", zap.Error(err))
		return sess.SendCommand(&command.LoginCancel{Reason: command.LoginCancelInvalidUser})
	}

	if account == nil {
		if !deps.Config.Game.AutoCreateAccounts {
			return sess.SendCommand(&command.LoginCancel{Reason: command.LoginCancelInvalidUser})
		}
		account, err = deps.Accounts.Create(ctx, msg.MemberNo, msg.LoginID, msg.AuthKey)
		if err != nil {
			deps.Log.Error("建立帳號資料庫錯誤", zap.Error(err))
			return sess.SendCommand(&command.LoginCancel{Reason: command.LoginCancelInvalidUser})
		}
		deps.Log.Info(fmt.Sprintf("自動建立帳號  會員編號=%d 帳號=%s", msg.MemberNo, msg.LoginID))
	} else {
		if account.LoginID != msg.LoginID || !deps.Accounts.ValidateKey(account.AuthKeyHash, msg.AuthKey) {
			deps.Log.Info(fmt.Sprintf("登入驗證失敗  會員編號=%d 帳號=%s", msg.MemberNo, msg.LoginID))
			return sess.SendCommand(&command.LoginCancel{Reason: command.LoginCancelInvalidUser})
		}
	}

	if err := deps.Accounts.TouchLastLogin(ctx, msg.MemberNo); err != nil {
		deps.Log.Warn("更新登入時間錯誤", zap.Error(err))
	}

	sess.SetAccount(&entity.Account{MemberNo: account.MemberNo, LoginID: account.LoginID})

	character, err := deps.Characters.LoadByMemberNo(ctx, msg.MemberNo)
	if err != nil {
		deps.Log.Error("載入角色資料庫錯誤", zap.Error(err))
		return sess.SendCommand(&command.LoginCancel{Reason: command.LoginCancelInvalidUser})
	}

	var horses []command.Horse
	var mount *command.Horse
	if character != nil {
		horses, err = deps.Horses.LoadByCharacter(ctx, character.ID)
		if err != nil {
			deps.Log.Error("載入馬匹資料庫錯誤", zap.Error(err))
			return sess.SendCommand(&command.LoginCancel{Reason: command.LoginCancelInvalidUser})
		}
		mount = entity.Mount(character, horses)
		if mount == nil {
			deps.Log.Error("角色沒有坐騎", zap.Uint32("character", character.ID))
			return sess.SendCommand(&command.LoginCancel{Reason: command.LoginCancelInvalidEquipment})
		}
	}

	// The client scrambles every frame after this response with the
	// announced constant. Inbound only; responses stay in the clear.
	key := rand.Uint32()
	if err := sess.Rekey(key); err != nil {
		return err
	}

	ok, err := buildLoginOK(deps, character, mount, key)
	if err != nil {
		return err
	}
	if err := sess.SendCommand(ok); err != nil {
		return err
	}

	if character == nil {
		sess.SetState(packet.StateAuthenticated)
		deps.Log.Info(fmt.Sprintf("登入成功（尚無角色）  帳號=%s", account.LoginID))
		return sess.SendCommand(&command.CreateNicknameNotify{})
	}

	sess.SetCharacter(character)
	sess.SetHorses(horses)
	sess.SetState(packet.StateCharacterBound)
	deps.Log.Info(fmt.Sprintf("登入成功  帳號=%s 角色=%s", account.LoginID, character.Nickname))
	return nil
}

// buildLoginOK assembles the initial player state. The numeric filler
// constants come from captured live-server traffic; the client rejects
// the login screen without them.
func buildLoginOK(deps *Deps, character *entity.Character, mount *command.Horse, key uint32) (*command.LoginOK, error) {
	lobbyIP, lobbyPort, err := deps.Config.Lobby.AnnounceAddr()
	if err != nil {
		return nil, err
	}

	valueOptions := uint32(100)
	ok := &command.LoginOK{
		LobbyTime:     command.WinFileTimeFrom(time.Now()),
		Val0:          829332,
		Motd:          deps.Config.Game.Motd,
		ProfileGender: command.GenderBoy,
		Status:        "This person is mentally unstable",

		CharacterEquipment: []command.Item{{UID: 1, TID: 30008, Val: 0, Count: 1}},
		MountEquipment:     []command.Item{{UID: 33574440, TID: 20008, Val: 0, Count: 1}},

		Level:   161,
		Carrots: 255,
		Val1:    24880,
		Val2:    255,
		Val3:    255,

		Options: command.LoginOptions{
			Keyboard: defaultKeyboardOptions(),
			Macros:   defaultMacroOptions(),
			Values:   &valueOptions,
		},

		AgeGroup: command.AgeAdult,
		HideAge:  0,

		Val5: defaultLoginVal5(),

		LobbyServerAddress: command.Address{IP: lobbyIP, Port: lobbyPort},
		ScramblingConstant: key,

		Val7: command.LoginVal7{Values: []command.LoginVal7Value{
			{Val0: 6, Val1: 0},
			{Val0: 15, Val1: 4},
			{Val0: 27, Val1: 2},
			{Val0: 30, Val1: 0},
			{Val0: 31, Val1: 0},
			{Val0: 37, Val1: 30000},
			{Val0: 53, Val1: 4},
			{Val0: 66, Val1: 2},
			{Val0: 67, Val1: 4},
			{Val0: 69, Val1: 0},
		}},

		Bitfield: 3590,
		Val11:    command.LoginVal11{Val0: 4, Val1: 43, Val2: 4},
		Val14:    3390801883,
		Val15:    command.PlayerRelatedThing{Val1: 1},
		Val16:    4,
		Val18:    58,
		Val19:    910,
		Val20:    454,
	}

	if character != nil {
		ok.SelfUID = character.ID
		ok.Nickname = character.Nickname
		ok.ProfileGender = character.Shape.Parts.Gender()
		ok.Character = character.Shape
	}
	if mount != nil {
		ok.Horse = *mount
		ok.Val17 = command.AnotherPlayerRelatedThing{MountUID: mount.UID, Val1: 18, Val2: 24012772}
	}
	return ok, nil
}

func defaultKeyboardOptions() *command.KeyboardOptions {
	return &command.KeyboardOptions{Bindings: []command.KeyboardBinding{
		{Index: 1, Type: 22, Key: 87},
		{Index: 2, Type: 21, Key: 65},
		{Index: 3, Type: 23, Key: 68},
		{Index: 4, Type: 24, Key: 83},
		{Index: 5, Type: 18, Key: 19},
		{Index: 6, Type: 130, Key: 131},
		{Index: 7, Type: 32, Key: 47},
		{Index: 8, Type: 70, Key: 0},
		{Index: 9, Type: 82, Key: 0},
		{Index: 10, Type: 25, Key: 0},
		{Index: 11, Type: 15, Key: 0},
		{Index: 12, Type: 67, Key: 0},
	}}
}

func defaultMacroOptions() *command.MacroOptions {
	return &command.MacroOptions{Macros: [8]string{
		"/wink/wave",
		"Thank you! /heart",
		"/fire/fire/fire Fire! /fire/fire/fire",
		"/sad/cry Sorry! /cry/sad",
		"/-tada Congratulations!!! /tada",
		"/clap Good Game! /-clap",
		"Be right back! Please wait for me! /wink",
		"See you! /smile/wave",
	}}
}

func defaultLoginVal5() []command.LoginVal5 {
	var out []command.LoginVal5
	for _, v := range []uint16{24, 31, 35, 41, 42, 43, 46} {
		out = append(out, command.LoginVal5{
			Val0: v,
			Val1: []command.LoginVal5Val1{{Val0: 2, Val1: 1}},
		})
	}
	return out
}
