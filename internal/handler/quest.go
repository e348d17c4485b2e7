package handler

import (
	"fmt"

	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/net"
)

// requireCharacterID checks the id the client claims against the one
// bound to the session. A mismatch is a spoofed request.
func requireCharacterID(sess *net.Session, claimed uint32) (uint32, error) {
	character := sess.Character()
	if character == nil {
		return 0, fmt.Errorf("session has no character")
	}
	if claimed != character.ID {
		return 0, fmt.Errorf("character id mismatch: expected %d, got %d", character.ID, claimed)
	}
	return character.ID, nil
}

func HandleRequestQuestList(sess *net.Session, msg *command.RequestQuestList, deps *Deps) error {
	id, err := requireCharacterID(sess, msg.CharacterID)
	if err != nil {
		return err
	}
	return sess.SendCommand(&command.RequestQuestListOK{
		CharacterID: id,
		Quests:      deps.Tables.Quests.Quests(),
	})
}

func HandleRequestDailyQuestList(sess *net.Session, msg *command.RequestDailyQuestList, deps *Deps) error {
	id, err := requireCharacterID(sess, msg.CharacterID)
	if err != nil {
		return err
	}
	return sess.SendCommand(&command.RequestDailyQuestListOK{
		CharacterID: id,
		Quests:      deps.Tables.DailyQuests.Quests(),
		Val1:        deps.Tables.DailyQuests.Extras(),
	})
}

func HandleRequestSpecialEventList(sess *net.Session, msg *command.RequestSpecialEventList, deps *Deps) error {
	return sess.SendCommand(&command.RequestSpecialEventListOK{
		Unk0:   msg.Unk0,
		Quests: deps.Tables.SpecialEvents.Quests(),
		Events: deps.Tables.SpecialEvents.Events(),
	})
}

// HandleAchievementCompleteList reports every achievement as complete.
// Per-character progress tracking is not persisted yet.
func HandleAchievementCompleteList(sess *net.Session, msg *command.AchievementCompleteList, deps *Deps) error {
	id, err := requireCharacterID(sess, msg.CharacterID)
	if err != nil {
		return err
	}
	return sess.SendCommand(&command.AchievementCompleteListOK{
		CharacterID:  id,
		Achievements: deps.Tables.Quests.Quests(),
	})
}

func HandleRequestLeagueInfo(sess *net.Session, _ *command.RequestLeagueInfo, deps *Deps) error {
	return sess.SendCommand(&command.RequestLeagueInfoOK{})
}
