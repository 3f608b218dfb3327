package cmd

import (
	"github.com/renato0307/ferro/server"
)

// ServeCmd serves the TUI over SSH.
type ServeCmd struct {
	Host string `help:"Address to bind" default:"localhost"`
	Port string `help:"Port to listen on" default:"2222"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	srv, err := server.NewServer(s.Host, s.Port, cli.Container.Settings)
	if err != nil {
		return err
	}
	return srv.Start()
}
