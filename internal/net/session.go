package net

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/entity"
	"github.com/aligo/server/internal/net/packet"
	"go.uber.org/zap"
)

// SessionParams carries the per-connection tuning knobs, resolved from
// configuration once at server start.
type SessionParams struct {
	OutQueueSize     int
	MaxFrameSize     int
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	PacketsPerSecond int
}

// Session is one client connection. Frames are read, descrambled and
// dispatched inline on the read goroutine, so handlers for the same
// connection always run in arrival order. Outbound packets go through
// OutQueue and a dedicated write goroutine; sending to a session never
// blocks on that session's socket.
type Session struct {
	ID   uint64
	conn netConn

	scrambler Scrambler
	state     atomic.Int32 // packet.SessionState
	registry  *packet.Registry
	params    SessionParams

	OutQueue chan []byte

	IP string

	mu        sync.Mutex // player state below
	account   *entity.Account
	character *entity.Character
	horses    []command.Horse
	ranchID   uint32

	closeCh    chan struct{}
	closeOnce  sync.Once
	closed     atomic.Bool
	onClose    []func(*Session)
	closeFired bool // mu; Close has run the registered callbacks

	// Per-second packet rate limiter (readLoop goroutine only)
	pktCount   int
	pktResetAt int64

	log *zap.Logger
}

// netConn is the subset of net.Conn the session uses, split out so
// tests can drive a session over an in-memory pipe.
type netConn interface {
	Read(b []byte) (int, error)
	Write(b []byte) (int, error)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

func NewSession(conn netConn, id uint64, ip string, reg *packet.Registry, params SessionParams, log *zap.Logger) *Session {
	s := &Session{
		ID:       id,
		conn:     conn,
		registry: reg,
		params:   params,
		OutQueue: make(chan []byte, params.OutQueueSize),
		IP:       ip,
		closeCh:  make(chan struct{}),
		log:      log.With(zap.Uint64("session", id)),
	}
	s.state.Store(int32(packet.StateHandshake))
	return s
}

func (s *Session) State() packet.SessionState {
	return packet.SessionState(s.state.Load())
}

func (s *Session) SetState(st packet.SessionState) {
	s.state.Store(int32(st))
}

// Rekey installs the scrambling constant announced to the client in
// the login response. Safe only from this session's handlers, which
// run on the read goroutine.
func (s *Session) Rekey(key uint32) error {
	return s.scrambler.Rekey(key)
}

func (s *Session) Account() *entity.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

func (s *Session) SetAccount(a *entity.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = a
}

func (s *Session) Character() *entity.Character {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.character
}

func (s *Session) SetCharacter(c *entity.Character) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.character = c
}

// Horses returns the session's loaded horse list. The slice is shared;
// handlers treat it as read-only and replace it via SetHorses.
func (s *Session) Horses() []command.Horse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.horses
}

func (s *Session) SetHorses(horses []command.Horse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.horses = horses
}

func (s *Session) RanchID() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ranchID
}

func (s *Session) SetRanchID(id uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranchID = id
}

// OnClose registers a callback run exactly once when the session shuts
// down. Used by the room registry to evict dead members. Registering
// after the session has already shut down runs the callback right away.
func (s *Session) OnClose(fn func(*Session)) {
	s.mu.Lock()
	if !s.closeFired {
		s.onClose = append(s.onClose, fn)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	fn(s)
}

// Start launches the read and write goroutines.
func (s *Session) Start() {
	go s.readLoop()
	go s.writeLoop()
}

// SendCommand encodes msg and enqueues the framed bytes. Non-blocking:
// a full queue means the client is not draining its socket, and the
// session is closed rather than letting one slow client stall others.
func (s *Session) SendCommand(msg packet.Message) error {
	if s.closed.Load() {
		return nil
	}

	w := packet.NewWriter()
	msg.Encode(w)
	if err := w.Err(); err != nil {
		return err
	}

	frame, err := EncodeFrame(Packet{ID: msg.ID(), Payload: w.Bytes()})
	if err != nil {
		return err
	}

	select {
	case s.OutQueue <- frame:
		return nil
	default:
		s.log.Warn("輸出佇列已滿，斷開慢速連線", zap.Stringer("command", msg.ID()))
		s.Close()
		return nil
	}
}

// Close shuts the session down and runs the close callbacks once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.SetState(packet.StateDisconnecting)
		close(s.closeCh)
		s.conn.Close()

		s.mu.Lock()
		callbacks := s.onClose
		s.onClose = nil
		s.closeFired = true
		s.mu.Unlock()
		for _, fn := range callbacks {
			fn(s)
		}
	})
}

func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// readLoop reads frames, descrambles them and dispatches inline. A
// dispatch error is a protocol violation and ends the connection.
func (s *Session) readLoop() {
	defer s.Close()

	for {
		select {
		case <-s.closeCh:
			return
		default:
		}

		if s.params.IdleTimeout > 0 {
			s.conn.SetReadDeadline(time.Now().Add(s.params.IdleTimeout))
		}

		body, err := ReadFrame(s.conn, s.params.MaxFrameSize)
		if err != nil {
			if !s.closed.Load() {
				s.log.Debug("讀取錯誤", zap.Error(err))
			}
			return
		}

		s.scrambler.Apply(body)
		pkt := ParseBody(body)

		if !s.allowPacket() {
			s.log.Warn("封包速率超限，斷開連線", zap.Int("pps", s.pktCount))
			return
		}

		if err := s.registry.Dispatch(s, s.State(), pkt.ID, pkt.Payload); err != nil {
			s.log.Warn("協議違規，斷開連線", zap.Error(err))
			return
		}
	}
}

// allowPacket enforces the per-second inbound packet cap.
func (s *Session) allowPacket() bool {
	if s.params.PacketsPerSecond <= 0 {
		return true
	}
	now := time.Now().Unix()
	if now != s.pktResetAt {
		s.pktCount = 0
		s.pktResetAt = now
	}
	s.pktCount++
	return s.pktCount <= s.params.PacketsPerSecond
}

// writeLoop drains OutQueue to the socket. Frames are already encoded;
// outbound traffic is never scrambled.
func (s *Session) writeLoop() {
	defer s.Close()

	for {
		select {
		case frame := <-s.OutQueue:
			if !s.writeOne(frame) {
				return
			}
		case <-s.closeCh:
			return
		}
	}
}

func (s *Session) writeOne(frame []byte) bool {
	if s.params.WriteTimeout > 0 {
		s.conn.SetWriteDeadline(time.Now().Add(s.params.WriteTimeout))
	}
	if _, err := s.conn.Write(frame); err != nil {
		if !s.closed.Load() {
			s.log.Debug("寫入錯誤", zap.Error(err))
		}
		return false
	}
	return true
}
