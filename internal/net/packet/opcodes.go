package packet

import "fmt"

// CommandID is the 16-bit discriminator at the head of every frame. It
// alone determines the payload schema; success/cancel/notify forms of
// the same logical operation are separate variants.
type CommandID uint16

// Lobby commands (AcCmdCL*).
const (
	AcCmdCLLogin CommandID = iota + 1
	AcCmdCLLoginOK
	AcCmdCLLoginCancel
	AcCmdCLHeartbeat
	AcCmdCLCreateNickname
	AcCmdCLCreateNicknameNotify
	AcCmdCLCreateNicknameCancel
	AcCmdCLShowInventory
	AcCmdCLShowInventoryOK
	AcCmdCLAchievementCompleteList
	AcCmdCLAchievementCompleteListOK
	AcCmdCLRequestLeagueInfo
	AcCmdCLRequestLeagueInfoOK
	AcCmdCLRequestLeagueInfoCancel
	AcCmdCLRequestQuestList
	AcCmdCLRequestQuestListOK
	AcCmdCLRequestDailyQuestList
	AcCmdCLRequestDailyQuestListOK
	AcCmdCLRequestSpecialEventList
	AcCmdCLRequestSpecialEventListOK
	AcCmdCLGetMessengerInfo
	AcCmdCLGetMessengerInfoOK
	AcCmdCLGetMessengerInfoCancel
	AcCmdCLEnterRanch
	AcCmdCLEnterRanchOK
	AcCmdCLEnterRanchCancel
)

// Ranch commands (AcCmdCR*).
const (
	AcCmdCREnterRanch CommandID = iota + 0x0101
	AcCmdCREnterRanchOK
	AcCmdCREnterRanchCancel
	AcCmdCREnterRanchNotify
	AcCmdCRLeaveRanch
	AcCmdCRLeaveRanchOK
	AcCmdCRLeaveRanchNotify
	AcCmdCRHeartbeat
	AcCmdCRRanchSnapshot
	AcCmdCRRanchSnapshotNotify
	AcCmdCRRanchChat
	AcCmdCRRanchChatNotify
	AcCmdCRRanchCmdAction
	AcCmdCRRanchCmdActionNotify
	AcCmdCRUpdateMountNickname
	AcCmdCRUpdateMountNicknameOK
	AcCmdCRUpdateMountNicknameCancel
	AcCmdCRWearEquipment
	AcCmdCRWearEquipmentOK
	AcCmdCRWearEquipmentCancel
	AcCmdCRRequestStorage
	AcCmdCRRequestStorageOK
	AcCmdCRRequestStorageCancel
	AcCmdCRRequestNpcDressList
	AcCmdCRRequestNpcDressListOK
	AcCmdCRRequestNpcDressListCancel
	AcCmdCREnterBreedingMarket
	AcCmdCREnterBreedingMarketOK
	AcCmdCREnterBreedingMarketCancel
	AcCmdCRLeaveBreedingMarket
	AcCmdCRSearchStallion
	AcCmdCRSearchStallionOK
	AcCmdCRSearchStallionCancel
	AcCmdCRTryBreeding
	AcCmdCRTryBreedingOK
	AcCmdCRTryBreedingCancel
	AcCmdCRBreedingWishlist
	AcCmdCRBreedingWishlistOK
	AcCmdCRBreedingWishlistCancel
	AcCmdCRBreedingFailureCard
	AcCmdCRBreedingFailureCardOK
	AcCmdCRMountFamilyTree
	AcCmdCRMountFamilyTreeOK
	AcCmdCRMountFamilyTreeCancel
)

var commandNames = map[CommandID]string{
	AcCmdCLLogin:                     "AcCmdCLLogin",
	AcCmdCLLoginOK:                   "AcCmdCLLoginOK",
	AcCmdCLLoginCancel:               "AcCmdCLLoginCancel",
	AcCmdCLHeartbeat:                 "AcCmdCLHeartbeat",
	AcCmdCLCreateNickname:            "AcCmdCLCreateNickname",
	AcCmdCLCreateNicknameNotify:      "AcCmdCLCreateNicknameNotify",
	AcCmdCLCreateNicknameCancel:      "AcCmdCLCreateNicknameCancel",
	AcCmdCLShowInventory:             "AcCmdCLShowInventory",
	AcCmdCLShowInventoryOK:           "AcCmdCLShowInventoryOK",
	AcCmdCLAchievementCompleteList:   "AcCmdCLAchievementCompleteList",
	AcCmdCLAchievementCompleteListOK: "AcCmdCLAchievementCompleteListOK",
	AcCmdCLRequestLeagueInfo:         "AcCmdCLRequestLeagueInfo",
	AcCmdCLRequestLeagueInfoOK:       "AcCmdCLRequestLeagueInfoOK",
	AcCmdCLRequestLeagueInfoCancel:   "AcCmdCLRequestLeagueInfoCancel",
	AcCmdCLRequestQuestList:          "AcCmdCLRequestQuestList",
	AcCmdCLRequestQuestListOK:        "AcCmdCLRequestQuestListOK",
	AcCmdCLRequestDailyQuestList:     "AcCmdCLRequestDailyQuestList",
	AcCmdCLRequestDailyQuestListOK:   "AcCmdCLRequestDailyQuestListOK",
	AcCmdCLRequestSpecialEventList:   "AcCmdCLRequestSpecialEventList",
	AcCmdCLRequestSpecialEventListOK: "AcCmdCLRequestSpecialEventListOK",
	AcCmdCLGetMessengerInfo:          "AcCmdCLGetMessengerInfo",
	AcCmdCLGetMessengerInfoOK:        "AcCmdCLGetMessengerInfoOK",
	AcCmdCLGetMessengerInfoCancel:    "AcCmdCLGetMessengerInfoCancel",
	AcCmdCLEnterRanch:                "AcCmdCLEnterRanch",
	AcCmdCLEnterRanchOK:              "AcCmdCLEnterRanchOK",
	AcCmdCLEnterRanchCancel:          "AcCmdCLEnterRanchCancel",

	AcCmdCREnterRanch:                "AcCmdCREnterRanch",
	AcCmdCREnterRanchOK:              "AcCmdCREnterRanchOK",
	AcCmdCREnterRanchCancel:          "AcCmdCREnterRanchCancel",
	AcCmdCREnterRanchNotify:          "AcCmdCREnterRanchNotify",
	AcCmdCRLeaveRanch:                "AcCmdCRLeaveRanch",
	AcCmdCRLeaveRanchOK:              "AcCmdCRLeaveRanchOK",
	AcCmdCRLeaveRanchNotify:          "AcCmdCRLeaveRanchNotify",
	AcCmdCRHeartbeat:                 "AcCmdCRHeartbeat",
	AcCmdCRRanchSnapshot:             "AcCmdCRRanchSnapshot",
	AcCmdCRRanchSnapshotNotify:       "AcCmdCRRanchSnapshotNotify",
	AcCmdCRRanchChat:                 "AcCmdCRRanchChat",
	AcCmdCRRanchChatNotify:           "AcCmdCRRanchChatNotify",
	AcCmdCRRanchCmdAction:            "AcCmdCRRanchCmdAction",
	AcCmdCRRanchCmdActionNotify:      "AcCmdCRRanchCmdActionNotify",
	AcCmdCRUpdateMountNickname:       "AcCmdCRUpdateMountNickname",
	AcCmdCRUpdateMountNicknameOK:     "AcCmdCRUpdateMountNicknameOK",
	AcCmdCRUpdateMountNicknameCancel: "AcCmdCRUpdateMountNicknameCancel",
	AcCmdCRWearEquipment:             "AcCmdCRWearEquipment",
	AcCmdCRWearEquipmentOK:           "AcCmdCRWearEquipmentOK",
	AcCmdCRWearEquipmentCancel:       "AcCmdCRWearEquipmentCancel",
	AcCmdCRRequestStorage:            "AcCmdCRRequestStorage",
	AcCmdCRRequestStorageOK:          "AcCmdCRRequestStorageOK",
	AcCmdCRRequestStorageCancel:      "AcCmdCRRequestStorageCancel",
	AcCmdCRRequestNpcDressList:       "AcCmdCRRequestNpcDressList",
	AcCmdCRRequestNpcDressListOK:     "AcCmdCRRequestNpcDressListOK",
	AcCmdCRRequestNpcDressListCancel: "AcCmdCRRequestNpcDressListCancel",
	AcCmdCREnterBreedingMarket:       "AcCmdCREnterBreedingMarket",
	AcCmdCREnterBreedingMarketOK:     "AcCmdCREnterBreedingMarketOK",
	AcCmdCREnterBreedingMarketCancel: "AcCmdCREnterBreedingMarketCancel",
	AcCmdCRLeaveBreedingMarket:       "AcCmdCRLeaveBreedingMarket",
	AcCmdCRSearchStallion:            "AcCmdCRSearchStallion",
	AcCmdCRSearchStallionOK:          "AcCmdCRSearchStallionOK",
	AcCmdCRSearchStallionCancel:      "AcCmdCRSearchStallionCancel",
	AcCmdCRTryBreeding:               "AcCmdCRTryBreeding",
	AcCmdCRTryBreedingOK:             "AcCmdCRTryBreedingOK",
	AcCmdCRTryBreedingCancel:         "AcCmdCRTryBreedingCancel",
	AcCmdCRBreedingWishlist:          "AcCmdCRBreedingWishlist",
	AcCmdCRBreedingWishlistOK:        "AcCmdCRBreedingWishlistOK",
	AcCmdCRBreedingWishlistCancel:    "AcCmdCRBreedingWishlistCancel",
	AcCmdCRBreedingFailureCard:       "AcCmdCRBreedingFailureCard",
	AcCmdCRBreedingFailureCardOK:     "AcCmdCRBreedingFailureCardOK",
	AcCmdCRMountFamilyTree:           "AcCmdCRMountFamilyTree",
	AcCmdCRMountFamilyTreeOK:         "AcCmdCRMountFamilyTreeOK",
	AcCmdCRMountFamilyTreeCancel:     "AcCmdCRMountFamilyTreeCancel",
}

func (id CommandID) String() string {
	if name, ok := commandNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%04x)", uint16(id))
}

// muted commands are high-frequency or not-yet-handled ids whose
// unhandled/failed dispatch must not spam the log.
var mutedCommands = map[CommandID]bool{
	AcCmdCLHeartbeat:     true,
	AcCmdCRHeartbeat:     true,
	AcCmdCRRanchSnapshot: true,
}

// Muted reports whether dispatch failures for this id are suppressed
// from logging.
func (id CommandID) Muted() bool {
	return mutedCommands[id]
}
