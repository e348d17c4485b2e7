package handler

import (
	"encoding/binary"

	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/net"
)

// HandleEnterRanch hands a lobby client off to the ranch server: a
// one-time code is issued for the character and echoed back together
// with the ranch server's announced address. The ranch room is keyed
// by the owning character's uid.
func HandleEnterRanch(sess *net.Session, msg *command.EnterRanch, deps *Deps) error {
	id, err := requireCharacterID(sess, msg.CharacterID)
	if err != nil {
		sendErr := sess.SendCommand(&command.EnterRanchCancel{})
		if sendErr != nil {
			return sendErr
		}
		return err
	}

	ip, port, err := deps.Config.Ranch.AnnounceAddr()
	if err != nil {
		return err
	}

	ranchUID := id
	code := deps.Handoff.Issue(id, ranchUID)

	return sess.SendCommand(&command.EnterRanchOK{
		RanchUID: ranchUID,
		Code:     code,
		IP:       binary.BigEndian.Uint32(ip),
		Port:     port,
	})
}
