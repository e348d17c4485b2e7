package handler

import (
	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/net"
)

// HandleShowInventory returns the session's items and horses. Items
// other than horses are not persisted yet, so that list stays empty.
func HandleShowInventory(sess *net.Session, _ *command.ShowInventory, deps *Deps) error {
	return sess.SendCommand(&command.ShowInventoryOK{
		Horses: sess.Horses(),
	})
}
