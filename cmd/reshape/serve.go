package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/reshape/system/checkd/server"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Serve.Parse(cc, args); err != nil {
		return err
	}
	srv := server.New(&server.Spec{})
	if cfg.Stdio {
		return srv.ServeStdio(context.Background())
	}
	ln, err := server.NewTCPListener(cfg.Addr, srv)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "checkd listening on %s\n", ln.Addr())
	return ln.Serve()
}
