// Package handler wires command ids to their gameplay logic. Handlers
// are plain functions taking the session, the decoded command and the
// shared dependency bundle; registration closures do the casts once.
package handler

import (
	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/config"
	"github.com/aligo/server/internal/data"
	"github.com/aligo/server/internal/net"
	"github.com/aligo/server/internal/net/packet"
	"github.com/aligo/server/internal/persist"
	"github.com/aligo/server/internal/scripting"
	"github.com/aligo/server/internal/world"
	"go.uber.org/zap"
)

// Deps holds shared dependencies injected into all packet handlers.
type Deps struct {
	Config     *config.Config
	Log        *zap.Logger
	Accounts   *persist.AccountRepo
	Characters *persist.CharacterRepo
	Horses     *persist.HorseRepo
	Tables     *data.Tables
	Scripting  *scripting.Engine
	Ranches    *world.RanchRegistry
	Handoff    *world.HandoffIssuer
}

// RegisterLobby registers every lobby-side handler into the registry.
func RegisterLobby(reg *packet.Registry, deps *Deps) {
	allStates := []packet.SessionState{
		packet.StateHandshake,
		packet.StateAuthenticated,
		packet.StateCharacterBound,
	}
	bound := []packet.SessionState{packet.StateCharacterBound}
	// Informational queries also decode for freshly authenticated
	// sessions; without a character the handler reports the error and
	// the connection survives.
	loggedIn := []packet.SessionState{
		packet.StateAuthenticated,
		packet.StateCharacterBound,
	}

	reg.Register(packet.AcCmdCLLogin,
		[]packet.SessionState{packet.StateHandshake},
		func() packet.Message { return &command.Login{} },
		func(sess any, msg packet.Message) error {
			return HandleLogin(sess.(*net.Session), msg.(*command.Login), deps)
		},
	)
	reg.Register(packet.AcCmdCLHeartbeat, allStates,
		func() packet.Message { return &command.LobbyHeartbeat{} },
		func(sess any, msg packet.Message) error { return nil },
	)

	reg.Register(packet.AcCmdCLCreateNickname,
		[]packet.SessionState{packet.StateAuthenticated},
		func() packet.Message { return &command.CreateNickname{} },
		func(sess any, msg packet.Message) error {
			return HandleCreateNickname(sess.(*net.Session), msg.(*command.CreateNickname), deps)
		},
	)

	// Character-bound phase
	reg.Register(packet.AcCmdCLShowInventory, loggedIn,
		func() packet.Message { return &command.ShowInventory{} },
		func(sess any, msg packet.Message) error {
			return HandleShowInventory(sess.(*net.Session), msg.(*command.ShowInventory), deps)
		},
	)
	reg.Register(packet.AcCmdCLAchievementCompleteList, loggedIn,
		func() packet.Message { return &command.AchievementCompleteList{} },
		func(sess any, msg packet.Message) error {
			return HandleAchievementCompleteList(sess.(*net.Session), msg.(*command.AchievementCompleteList), deps)
		},
	)
	reg.Register(packet.AcCmdCLRequestLeagueInfo, loggedIn,
		func() packet.Message { return &command.RequestLeagueInfo{} },
		func(sess any, msg packet.Message) error {
			return HandleRequestLeagueInfo(sess.(*net.Session), msg.(*command.RequestLeagueInfo), deps)
		},
	)
	reg.Register(packet.AcCmdCLRequestQuestList, loggedIn,
		func() packet.Message { return &command.RequestQuestList{} },
		func(sess any, msg packet.Message) error {
			return HandleRequestQuestList(sess.(*net.Session), msg.(*command.RequestQuestList), deps)
		},
	)
	reg.Register(packet.AcCmdCLRequestDailyQuestList, loggedIn,
		func() packet.Message { return &command.RequestDailyQuestList{} },
		func(sess any, msg packet.Message) error {
			return HandleRequestDailyQuestList(sess.(*net.Session), msg.(*command.RequestDailyQuestList), deps)
		},
	)
	reg.Register(packet.AcCmdCLRequestSpecialEventList, loggedIn,
		func() packet.Message { return &command.RequestSpecialEventList{} },
		func(sess any, msg packet.Message) error {
			return HandleRequestSpecialEventList(sess.(*net.Session), msg.(*command.RequestSpecialEventList), deps)
		},
	)
	reg.Register(packet.AcCmdCLGetMessengerInfo, loggedIn,
		func() packet.Message { return &command.GetMessengerInfo{} },
		func(sess any, msg packet.Message) error {
			return HandleGetMessengerInfo(sess.(*net.Session), msg.(*command.GetMessengerInfo), deps)
		},
	)
	reg.Register(packet.AcCmdCLEnterRanch, bound,
		func() packet.Message { return &command.EnterRanch{} },
		func(sess any, msg packet.Message) error {
			return HandleEnterRanch(sess.(*net.Session), msg.(*command.EnterRanch), deps)
		},
	)
}

// RegisterRanch registers every ranch-side handler into the registry.
// The ranch connection authenticates with the one-time code issued by
// the lobby, so the enter command itself runs in the handshake phase.
func RegisterRanch(reg *packet.Registry, deps *Deps) {
	member := []packet.SessionState{packet.StateRanchMember}

	reg.Register(packet.AcCmdCREnterRanch,
		[]packet.SessionState{packet.StateHandshake},
		func() packet.Message { return &command.RanchEnterRanch{} },
		func(sess any, msg packet.Message) error {
			return HandleRanchEnterRanch(sess.(*net.Session), msg.(*command.RanchEnterRanch), deps)
		},
	)
	reg.Register(packet.AcCmdCRHeartbeat,
		[]packet.SessionState{packet.StateHandshake, packet.StateRanchMember},
		func() packet.Message { return &command.RanchHeartbeat{} },
		func(sess any, msg packet.Message) error { return nil },
	)

	reg.Register(packet.AcCmdCRLeaveRanch, member,
		func() packet.Message { return &command.LeaveRanch{} },
		func(sess any, msg packet.Message) error {
			return HandleLeaveRanch(sess.(*net.Session), msg.(*command.LeaveRanch), deps)
		},
	)
	reg.Register(packet.AcCmdCRRanchSnapshot, member,
		func() packet.Message { return &command.RanchSnapshot{} },
		func(sess any, msg packet.Message) error {
			return HandleRanchSnapshot(sess.(*net.Session), msg.(*command.RanchSnapshot), deps)
		},
	)
	reg.Register(packet.AcCmdCRRanchChat, member,
		func() packet.Message { return &command.RanchChat{} },
		func(sess any, msg packet.Message) error {
			return HandleRanchChat(sess.(*net.Session), msg.(*command.RanchChat), deps)
		},
	)
	reg.Register(packet.AcCmdCRRanchCmdAction, member,
		func() packet.Message { return &command.RanchCmdAction{} },
		func(sess any, msg packet.Message) error {
			return HandleRanchCmdAction(sess.(*net.Session), msg.(*command.RanchCmdAction), deps)
		},
	)
	reg.Register(packet.AcCmdCRUpdateMountNickname, member,
		func() packet.Message { return &command.UpdateMountNickname{} },
		func(sess any, msg packet.Message) error {
			return HandleUpdateMountNickname(sess.(*net.Session), msg.(*command.UpdateMountNickname), deps)
		},
	)
	reg.Register(packet.AcCmdCRWearEquipment, member,
		func() packet.Message { return &command.WearEquipment{} },
		func(sess any, msg packet.Message) error {
			return HandleWearEquipment(sess.(*net.Session), msg.(*command.WearEquipment), deps)
		},
	)
	reg.Register(packet.AcCmdCRRequestStorage, member,
		func() packet.Message { return &command.RequestStorage{} },
		func(sess any, msg packet.Message) error {
			return HandleRequestStorage(sess.(*net.Session), msg.(*command.RequestStorage), deps)
		},
	)
	reg.Register(packet.AcCmdCRRequestNpcDressList, member,
		func() packet.Message { return &command.RequestNpcDressList{} },
		func(sess any, msg packet.Message) error {
			return HandleRequestNpcDressList(sess.(*net.Session), msg.(*command.RequestNpcDressList), deps)
		},
	)

	// Breeding market
	reg.Register(packet.AcCmdCREnterBreedingMarket, member,
		func() packet.Message { return &command.EnterBreedingMarket{} },
		func(sess any, msg packet.Message) error {
			return HandleEnterBreedingMarket(sess.(*net.Session), msg.(*command.EnterBreedingMarket), deps)
		},
	)
	reg.Register(packet.AcCmdCRLeaveBreedingMarket, member,
		func() packet.Message { return &command.LeaveBreedingMarket{} },
		func(sess any, msg packet.Message) error { return nil },
	)
	reg.Register(packet.AcCmdCRSearchStallion, member,
		func() packet.Message { return &command.SearchStallion{} },
		func(sess any, msg packet.Message) error {
			return HandleSearchStallion(sess.(*net.Session), msg.(*command.SearchStallion), deps)
		},
	)
	reg.Register(packet.AcCmdCRTryBreeding, member,
		func() packet.Message { return &command.TryBreeding{} },
		func(sess any, msg packet.Message) error {
			return HandleTryBreeding(sess.(*net.Session), msg.(*command.TryBreeding), deps)
		},
	)
	reg.Register(packet.AcCmdCRBreedingWishlist, member,
		func() packet.Message { return &command.BreedingWishlist{} },
		func(sess any, msg packet.Message) error {
			return HandleBreedingWishlist(sess.(*net.Session), msg.(*command.BreedingWishlist), deps)
		},
	)
	reg.Register(packet.AcCmdCRBreedingFailureCard, member,
		func() packet.Message { return &command.BreedingFailureCard{} },
		func(sess any, msg packet.Message) error {
			return HandleBreedingFailureCard(sess.(*net.Session), msg.(*command.BreedingFailureCard), deps)
		},
	)
	reg.Register(packet.AcCmdCRMountFamilyTree, member,
		func() packet.Message { return &command.MountFamilyTree{} },
		func(sess any, msg packet.Message) error {
			return HandleMountFamilyTree(sess.(*net.Session), msg.(*command.MountFamilyTree), deps)
		},
	)
}
