package packet

import (
	"encoding/hex"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// SessionState represents the session's current protocol phase.
type SessionState int

const (
	StateHandshake     SessionState = iota // connected, nothing proven
	StateAuthenticated                     // logged in, no character bound
	StateCharacterBound                    // character loaded or created
	StateRanchMember                       // joined a ranch room
	StateDisconnecting
)

func (s SessionState) String() string {
	switch s {
	case StateHandshake:
		return "Handshake"
	case StateAuthenticated:
		return "Authenticated"
	case StateCharacterBound:
		return "CharacterBound"
	case StateRanchMember:
		return "RanchMember"
	case StateDisconnecting:
		return "Disconnecting"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ErrUnhandledCommand marks a known frame with no registered handler.
// It is logged (unless the id is muted) and the connection continues.
var ErrUnhandledCommand = errors.New("unhandled command")

// HandlerFunc is the callback signature for command handlers. The
// session pointer is passed as an opaque interface to avoid import
// cycles. A returned error is logged and the connection continues;
// fatal conditions are signalled by closing the session inside the
// handler.
type HandlerFunc func(sess any, msg Message) error

type handlerEntry struct {
	newMsg        func() Message
	fn            HandlerFunc
	allowedStates map[SessionState]bool
}

// Registry maps command ids to (decode type, handler) with state-based
// access control. Read-only after process start.
type Registry struct {
	handlers map[CommandID]*handlerEntry
	log      *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		handlers: make(map[CommandID]*handlerEntry),
		log:      log,
	}
}

// Register maps a command id to its payload constructor and handler,
// restricted to the given session states. Exactly one registration per
// id; a duplicate is a programming error.
func (reg *Registry) Register(id CommandID, states []SessionState, newMsg func() Message, fn HandlerFunc) {
	if _, dup := reg.handlers[id]; dup {
		panic(fmt.Sprintf("duplicate handler registration for %s", id))
	}
	allowed := map[SessionState]bool{}
	for _, s := range states {
		allowed[s] = true
	}
	reg.handlers[id] = &handlerEntry{
		newMsg:        newMsg,
		fn:            fn,
		allowedStates: allowed,
	}
}

// Dispatch decodes the payload for id, validates the session state, and
// calls the handler. The returned error is fatal for the connection:
// decode failures (protocol is now unsynchronized) and state violations
// (unauthenticated use of an authenticated command). Handler errors are
// logged with the offending id and raw bytes and are not fatal.
func (reg *Registry) Dispatch(sess any, state SessionState, id CommandID, payload []byte) error {
	reg.log.Debug("收到封包",
		zap.Stringer("command", id),
		zap.Int("size", len(payload)),
		zap.Stringer("state", state),
	)

	entry, ok := reg.handlers[id]
	if !ok {
		if !id.Muted() {
			reg.log.Warn("無對應處理器的指令",
				zap.Stringer("command", id),
				zap.String("payload", hex.EncodeToString(payload)),
			)
		}
		return nil // connection continues
	}

	if !entry.allowedStates[state] {
		return fmt.Errorf("command %s not allowed in state %s", id, state)
	}

	r := NewReader(payload)
	msg := entry.newMsg()
	msg.Decode(r)
	if err := r.Err(); err != nil {
		return fmt.Errorf("decode %s: %w", id, err)
	}

	if err := reg.safeCall(entry.fn, sess, msg, id); err != nil {
		if !id.Muted() {
			reg.log.Error("指令處理失敗",
				zap.Stringer("command", id),
				zap.Error(err),
				zap.String("payload", hex.EncodeToString(payload)),
			)
		}
	}
	return nil
}

// safeCall executes a handler with panic recovery so a single bad
// packet cannot take down the process.
func (reg *Registry) safeCall(fn HandlerFunc, sess any, msg Message, id CommandID) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			reg.log.Error("處理器 panic 已恢復",
				zap.Stringer("command", id),
				zap.Any("panic", rec),
			)
			err = fmt.Errorf("handler panic for %s: %v", id, rec)
		}
	}()
	return fn(sess, msg)
}
