package entity

import "github.com/aligo/server/internal/command"

// Account is the persisted login identity. Auth keys are stored only as
// bcrypt hashes; the plaintext never leaves the login handler.
type Account struct {
	MemberNo uint32
	LoginID  string
}

// Character is a persisted player character. Shape is the wire-level
// body description sent inside lobby and ranch payloads.
type Character struct {
	ID         uint32
	MemberNo   uint32
	Nickname   string
	MountUID   uint32
	Shape      command.Character
	CreateUnk0 uint32
}

// Mount returns the horse the character currently rides, or nil when
// the mount is not in the list.
func Mount(c *Character, horses []command.Horse) *command.Horse {
	if c == nil {
		return nil
	}
	for i := range horses {
		if horses[i].UID == c.MountUID {
			return &horses[i]
		}
	}
	return nil
}
