package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/net"
	"go.uber.org/zap"
)

// HandleEnterBreedingMarket lists the session's horses eligible for
// breeding.
func HandleEnterBreedingMarket(sess *net.Session, _ *command.EnterBreedingMarket, deps *Deps) error {
	var available []command.AvailableHorse
	for _, h := range sess.Horses() {
		available = append(available, command.AvailableHorse{
			UID: h.UID,
			TID: h.TID,
		})
	}
	return sess.SendCommand(&command.EnterBreedingMarketOK{AvailableHorses: available})
}

// HandleSearchStallion lists stallions offered for pairing. Cross-
// player listings are not persisted yet; the session's own horses
// stand in as the market.
func HandleSearchStallion(sess *net.Session, msg *command.SearchStallion, deps *Deps) error {
	var stallions []command.Stallion
	for _, h := range sess.Horses() {
		stallions = append(stallions, command.Stallion{
			UID:        h.UID,
			TID:        h.TID,
			Name:       h.Name,
			Grade:      h.Grade,
			Price:      1,
			Unk7:       0xFFFFFFFF,
			Unk8:       0xFFFFFFFF,
			Stats:      h.Stats,
			Parts:      h.Parts,
			Appearance: h.Appearance,
			Unk11:      5,
		})
	}
	return sess.SendCommand(&command.SearchStallionOK{Stallions: stallions})
}

// HandleTryBreeding pairs one of the session's horses with a stallion,
// rolls the foal through the scripting engine and persists it.
func HandleTryBreeding(sess *net.Session, msg *command.TryBreeding, deps *Deps) error {
	character := sess.Character()
	if character == nil {
		return fmt.Errorf("session has no character")
	}

	var mother *command.Horse
	horses := sess.Horses()
	for i := range horses {
		if horses[i].UID == msg.OwnHorseUID {
			mother = &horses[i]
			break
		}
	}
	if mother == nil {
		return sess.SendCommand(&command.TryBreedingCancel{})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	father, err := deps.Horses.LoadByUID(ctx, msg.OtherHorseUID)
	if err != nil {
		deps.Log.Error("載入種馬資料庫錯誤", zap.Error(err))
		return sess.SendCommand(&command.TryBreedingCancel{})
	}
	if father == nil {
		return sess.SendCommand(&command.TryBreedingCancel{})
	}

	roll := deps.Scripting.RollFoal(father, mother)
	foal := starterHorse()
	foal.TID = roll.TID
	foal.Parts = roll.Parts
	foal.Appearance = roll.Appearance
	foal.Stats = roll.Stats

	if err := deps.Horses.Insert(ctx, character.ID, &foal); err != nil {
		deps.Log.Error("建立小馬資料庫錯誤", zap.Error(err))
		return sess.SendCommand(&command.TryBreedingCancel{})
	}

	sess.SetHorses(append(horses, foal))
	deps.Log.Info("繁殖成功",
		zap.Uint32("character", character.ID),
		zap.Uint32("foal", foal.UID),
	)

	return sess.SendCommand(&command.TryBreedingOK{
		UID:        foal.UID,
		TID:        foal.TID,
		Parts:      foal.Parts,
		Appearance: foal.Appearance,
		Stats:      foal.Stats,
		Unk1:       foal.Vals1.Val5,
		Unk2:       foal.Vals1.PotentialLevel,
		Unk3:       foal.Vals1.HasPotential,
		Unk4:       foal.Vals1.PotentialValue,
		Unk5:       foal.Vals1.Val9,
		Unk6:       foal.Vals1.Luck,
		Unk7:       foal.Vals1.HasLuck,
		Unk8:       foal.Vals1.Val12,
		Unk9:       foal.Vals1.Fatigue,
	})
}

// HandleBreedingWishlist returns the wishlist, empty until listings
// are persisted.
func HandleBreedingWishlist(sess *net.Session, _ *command.BreedingWishlist, deps *Deps) error {
	return sess.SendCommand(&command.BreedingWishlistOK{})
}

func HandleBreedingFailureCard(sess *net.Session, _ *command.BreedingFailureCard, deps *Deps) error {
	return sess.SendCommand(&command.BreedingFailureCardOK{})
}

// HandleMountFamilyTree reports a horse's ancestry. Lineage rows are
// not persisted yet, so the tree is empty.
func HandleMountFamilyTree(sess *net.Session, msg *command.MountFamilyTree, deps *Deps) error {
	return sess.SendCommand(&command.MountFamilyTreeOK{UID: msg.UID})
}
