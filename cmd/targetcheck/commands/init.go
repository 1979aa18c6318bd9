package commands

import (
	"fmt"

	"git.home.luguber.info/inful/targetcheck/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		path = config.DefaultConfigFile
	}
	return RunInit(path, i.Force)
}

// RunInit writes a starter configuration file.
func RunInit(configPath string, force bool) error {
	fmt.Printf("Writing configuration to %s\n", configPath)
	if err := config.Init(configPath, force); err != nil {
		return err
	}
	fmt.Println("✅ Configuration initialized")
	return nil
}
