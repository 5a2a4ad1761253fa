package tnyulib

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/techatnyu/tnyu/internal/tnyulib/config"
	"github.com/techatnyu/tnyu/pkg/tnyuapi"
)

type SetTokenCommandArguments struct {
	Host    string
	ApiRoot string
	Token   string
	// Make this host the active one
	Activate bool
}

/*
SetTokenCommand
Saves an API key in the configuration file, creating the host section if
needed. If no token is given, the user is asked for one with 'ask'.
*/
func SetTokenCommand(
	cfg *config.Config,
	arguments SetTokenCommandArguments,
	ask TokenPrompt,
	out io.Writer,
) error {
	name := arguments.Host
	if name == "" {
		name = defaultHostName
	}
	apiRoot := arguments.ApiRoot
	if existing := cfg.FindHost(name); existing != nil && apiRoot == "" {
		apiRoot = existing.ApiRoot
	}
	if apiRoot == "" {
		apiRoot = tnyuapi.DefaultAPIRoot
	}

	token := arguments.Token
	if token == "" {
		if ask == nil {
			return errors.New("no API key provided")
		}
		var err error
		token, err = ask(apiRoot)
		if err != nil {
			return err
		}
	}

	cfg.SetHost(config.Host{Name: name, ApiRoot: apiRoot, Token: token})
	if arguments.Activate || cfg.Root.ActiveHost == "" {
		cfg.Root.ActiveHost = name
	}
	err := cfg.Save()
	if err != nil {
		return fmt.Errorf("could not save configuration: %w", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintln(out, green(fmt.Sprintf(
		"Saved API key for '%s' (%s) in '%s'", name, apiRoot, cfg.Root.Path,
	)))
	return nil
}
