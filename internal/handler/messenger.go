package handler

import (
	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/net"
)

// HandleGetMessengerInfo points the client at the messenger server.
// The messenger connection is unscrambled, so the code stays zero.
func HandleGetMessengerInfo(sess *net.Session, _ *command.GetMessengerInfo, deps *Deps) error {
	ip, port, err := deps.Config.Messenger.AnnounceAddr()
	if err != nil {
		return err
	}
	return sess.SendCommand(&command.GetMessengerInfoOK{
		Code:    0,
		Address: command.Address{IP: ip, Port: port},
	})
}
