package net

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"github.com/aligo/server/internal/net/packet"
	"go.uber.org/zap"
)

// Server accepts TCP connections for one protocol role (lobby or
// ranch) and runs a Session per connection. Each role binds its own
// port with its own command registry.
type Server struct {
	name     string
	listener net.Listener
	registry *packet.Registry
	params   SessionParams
	nextID   atomic.Uint64

	mu       sync.Mutex
	sessions map[uint64]*Session

	closeCh   chan struct{}
	closeOnce sync.Once

	log *zap.Logger
}

func NewServer(name, bindAddr string, reg *packet.Registry, params SessionParams, log *zap.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", bindAddr, err)
	}
	return &Server{
		name:     name,
		listener: ln,
		registry: reg,
		params:   params,
		sessions: make(map[uint64]*Session),
		closeCh:  make(chan struct{}),
		log:      log.Named(name),
	}, nil
}

// Serve accepts connections until Shutdown. Returns nil on a clean
// shutdown.
func (s *Server) Serve() error {
	s.log.Info("伺服器開始監聽", zap.String("addr", s.listener.Addr().String()))

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.closeCh:
				return nil
			default:
			}
			s.log.Error("連線接受失敗", zap.Error(err))
			continue
		}

		id := s.nextID.Add(1)
		sess := NewSession(conn, id, conn.RemoteAddr().String(), s.registry, s.params, s.log)

		s.mu.Lock()
		s.sessions[id] = sess
		s.mu.Unlock()
		sess.OnClose(func(dead *Session) {
			s.mu.Lock()
			delete(s.sessions, dead.ID)
			s.mu.Unlock()
			s.log.Info("玩家離線", zap.Uint64("session", dead.ID))
		})

		sess.Start()
		s.log.Info("玩家連線", zap.Uint64("session", id), zap.String("ip", sess.IP))
	}
}

// Shutdown stops the listener and closes every live session.
func (s *Server) Shutdown() {
	s.closeOnce.Do(func() {
		close(s.closeCh)
		s.listener.Close()

		s.mu.Lock()
		live := make([]*Session, 0, len(s.sessions))
		for _, sess := range s.sessions {
			live = append(live, sess)
		}
		s.mu.Unlock()
		for _, sess := range live {
			sess.Close()
		}
	})
}

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}
