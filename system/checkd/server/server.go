// Package server implements the checkd JSON-RPC server.
//
// A Server answers reshape/check, reshape/apply and reshape/ping
// requests, over stdio or over TCP with one session per connection.
package server

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/signadot/reshape/system/checkd/api"
)

type Spec struct {
	// Log defaults to a JSON logger on stdout.
	Log *slog.Logger
	// Version is reported by reshape/ping.
	Version string
}

type Server struct {
	Spec Spec

	tcpListener *TCPListener
}

func New(spec *Spec) *Server {
	if spec == nil {
		spec = &Spec{}
	}
	if spec.Log == nil {
		// stdout carries the protocol when serving stdio
		spec.Log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slogLevel(),
		}))
	}
	if spec.Version == "" {
		spec.Version = api.Version
	}
	return &Server{Spec: *spec}
}

func slogLevel() slog.Level {
	if os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// StartTCP begins serving on addr in a background goroutine.
func (s *Server) StartTCP(addr string) error {
	if s.tcpListener != nil {
		return fmt.Errorf("tcp listener already running on %s", s.tcpListener.Addr())
	}
	ln, err := NewTCPListener(addr, s)
	if err != nil {
		return err
	}
	s.tcpListener = ln
	go func() {
		if err := ln.Serve(); err != nil {
			s.Spec.Log.Error("tcp serve", "error", err)
		}
	}()
	s.Spec.Log.Info("listening", "addr", ln.Addr().String())
	return nil
}

// StopTCP closes the listener and waits for active sessions.
func (s *Server) StopTCP() error {
	if s.tcpListener == nil {
		return nil
	}
	err := s.tcpListener.Close()
	s.tcpListener = nil
	return err
}

// TCPAddr returns the bound address, or "" before StartTCP.
func (s *Server) TCPAddr() string {
	if s.tcpListener == nil {
		return ""
	}
	return s.tcpListener.Addr().String()
}
