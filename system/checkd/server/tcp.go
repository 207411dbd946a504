package server

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"go.lsp.dev/jsonrpc2"
)

// TCPListener runs one JSON-RPC session per accepted connection.
type TCPListener struct {
	listener net.Listener
	server   *Server

	sessions   map[string]jsonrpc2.Conn
	sessionsMu sync.RWMutex
	sessionSeq atomic.Int64

	done   chan struct{}
	wg     sync.WaitGroup
	closed atomic.Bool
}

func NewTCPListener(addr string, server *Server) (*TCPListener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return &TCPListener{
		listener: listener,
		server:   server,
		sessions: make(map[string]jsonrpc2.Conn),
		done:     make(chan struct{}),
	}, nil
}

// Addr returns the listener's network address.
func (l *TCPListener) Addr() net.Addr {
	return l.listener.Addr()
}

// Serve accepts connections until Close is called.
func (l *TCPListener) Serve() error {
	for {
		conn, err := l.listener.Accept()
		if err != nil {
			if l.closed.Load() {
				return nil
			}
			l.server.Spec.Log.Error("accept error", "error", err)
			continue
		}

		l.wg.Add(1)
		go l.handleConnection(conn)
	}
}

func (l *TCPListener) handleConnection(conn net.Conn) {
	defer l.wg.Done()

	seq := l.sessionSeq.Add(1)
	sessionID := fmt.Sprintf("tcp-%d", seq)

	l.server.Spec.Log.Debug("new connection", "session", sessionID, "remote", conn.RemoteAddr().String())

	rpc := jsonrpc2.NewConn(jsonrpc2.NewStream(conn))
	l.sessionsMu.Lock()
	l.sessions[sessionID] = rpc
	l.sessionsMu.Unlock()

	rpc.Go(context.Background(), l.server.Handler)
	<-rpc.Done()

	l.sessionsMu.Lock()
	delete(l.sessions, sessionID)
	l.sessionsMu.Unlock()

	l.server.Spec.Log.Debug("session ended", "session", sessionID)
}

// Close stops accepting, closes active sessions and waits for them.
func (l *TCPListener) Close() error {
	if l.closed.Swap(true) {
		return nil
	}

	close(l.done)

	if err := l.listener.Close(); err != nil {
		l.server.Spec.Log.Error("error closing listener", "error", err)
	}

	l.sessionsMu.RLock()
	for _, session := range l.sessions {
		session.Close()
	}
	l.sessionsMu.RUnlock()

	l.wg.Wait()

	l.server.Spec.Log.Info("listener stopped")
	return nil
}

// SessionCount returns the number of active sessions.
func (l *TCPListener) SessionCount() int {
	l.sessionsMu.RLock()
	defer l.sessionsMu.RUnlock()
	return len(l.sessions)
}
