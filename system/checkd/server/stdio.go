package server

import (
	"context"
	"errors"
	"io"
	"os"

	"go.lsp.dev/jsonrpc2"
)

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (int, error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (int, error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}

// ServeStdio runs a single session over stdin and stdout, returning
// when the peer disconnects or ctx ends.
func (s *Server) ServeStdio(ctx context.Context) error {
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	conn := jsonrpc2.NewConn(stream)
	conn.Go(ctx, s.Handler)
	s.Spec.Log.Info("serving on stdio")
	select {
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
		return ctx.Err()
	case <-conn.Done():
		if err := conn.Err(); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}
