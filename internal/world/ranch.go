// Package world holds the shared-room state: ranch rooms, their
// membership and slot bookkeeping, and the lobby-to-ranch handoff
// codes. Everything here is touched from many session goroutines and
// guards itself accordingly.
package world

import (
	"fmt"
	"sync"

	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/net"
	"github.com/aligo/server/internal/net/packet"
	"go.uber.org/zap"
)

// Member is one player present in a ranch room.
type Member struct {
	Session      *net.Session
	CharacterUID uint32
	RanchIndex   uint16
}

// Ranch is one shared room. Slot indices start at 1: the owner's
// non-mount horses take the low indices, then players in join order.
// A departed member's index is retired for the lifetime of the room,
// never reassigned, so a stale index in a late packet can only miss,
// not hit the wrong player.
type Ranch struct {
	ID       uint32
	Name     string
	OwnerUID uint32

	mu        sync.RWMutex
	horses    []command.RanchHorse
	members   []*Member
	nextIndex uint16
}

func newRanch(id uint32, name string, ownerUID uint32, horses []command.Horse, mountUID uint32) *Ranch {
	r := &Ranch{
		ID:        id,
		Name:      name,
		OwnerUID:  ownerUID,
		nextIndex: 1,
	}
	for _, h := range horses {
		if h.UID == mountUID {
			continue
		}
		r.horses = append(r.horses, command.RanchHorse{RanchIndex: r.nextIndex, Horse: h})
		r.nextIndex++
	}
	return r
}

// Join adds the session to the room and assigns the next slot index.
func (r *Ranch) Join(sess *net.Session, characterUID uint32) *Member {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := &Member{
		Session:      sess,
		CharacterUID: characterUID,
		RanchIndex:   r.nextIndex,
	}
	r.nextIndex++
	r.members = append(r.members, m)
	return m
}

// Leave removes the member with the given character uid. Its slot
// index is not returned to the pool. Reports whether the room is now
// empty.
func (r *Ranch) Leave(characterUID uint32) (empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.members {
		if m.CharacterUID == characterUID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			break
		}
	}
	return len(r.members) == 0
}

// Horses returns the owner's stabled horses with their slot indices.
func (r *Ranch) Horses() []command.RanchHorse {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]command.RanchHorse, len(r.horses))
	copy(out, r.horses)
	return out
}

// Members returns a snapshot of the current membership in join order.
func (r *Ranch) Members() []*Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Member, len(r.members))
	copy(out, r.members)
	return out
}

// MemberByUID finds a present member by character uid.
func (r *Ranch) MemberByUID(characterUID uint32) (*Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.CharacterUID == characterUID {
			return m, true
		}
	}
	return nil, false
}

// Broadcast sends msg to every member except excludeUID. The member
// list is snapshotted first so no room lock is held while enqueueing;
// sends are queue writes and never touch another session's socket
// directly.
func (r *Ranch) Broadcast(msg packet.Message, excludeUID uint32) {
	for _, m := range r.Members() {
		if m.CharacterUID == excludeUID {
			continue
		}
		m.Session.SendCommand(msg)
	}
}

// RanchRegistry tracks live rooms by ranch id. Rooms are created on
// first entry and reaped when the last member leaves.
type RanchRegistry struct {
	mu      sync.Mutex
	ranches map[uint32]*Ranch
	log     *zap.Logger
}

func NewRanchRegistry(log *zap.Logger) *RanchRegistry {
	return &RanchRegistry{
		ranches: make(map[uint32]*Ranch),
		log:     log,
	}
}

// GetOrCreate returns the room for id, creating it from the owner's
// state on first entry. The registry lock is never held across room
// operations.
func (reg *RanchRegistry) GetOrCreate(id uint32, ownerUID uint32, ownerName string, horses []command.Horse, mountUID uint32) *Ranch {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if r, ok := reg.ranches[id]; ok {
		return r
	}
	r := newRanch(id, fmt.Sprintf("%s's Ranch", ownerName), ownerUID, horses, mountUID)
	reg.ranches[id] = r
	reg.log.Info("牧場房間已建立",
		zap.Uint32("ranch", id),
		zap.String("name", r.Name),
	)
	return r
}

// Get returns a live room, if any.
func (reg *RanchRegistry) Get(id uint32) (*Ranch, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	r, ok := reg.ranches[id]
	return r, ok
}

// Reap removes the room if it is empty. Called after a departure
// reports the room drained.
func (reg *RanchRegistry) Reap(id uint32) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	r, ok := reg.ranches[id]
	if !ok {
		return
	}
	if len(r.Members()) == 0 {
		delete(reg.ranches, id)
		reg.log.Info("牧場房間已回收", zap.Uint32("ranch", id))
	}
}
