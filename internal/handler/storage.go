package handler

import (
	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/net"
)

// HandleRequestStorage pages the gift box. Nothing sends gifts yet, so
// every page is empty.
func HandleRequestStorage(sess *net.Session, msg *command.RequestStorage, deps *Deps) error {
	return sess.SendCommand(&command.RequestStorageOK{
		Val0: msg.Val0,
		Val1: msg.Val1,
	})
}

// HandleRequestNpcDressList serves the NPC dress shop stock from the
// static table.
func HandleRequestNpcDressList(sess *net.Session, msg *command.RequestNpcDressList, deps *Deps) error {
	return sess.SendCommand(&command.RequestNpcDressListOK{
		RanchUID:  msg.RanchUID,
		DressList: deps.Tables.Dresses.Items(),
	})
}
