package tnyulib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/techatnyu/tnyu/internal/tnyulib/config"
	"github.com/techatnyu/tnyu/pkg/tnyuapi"
)

const defaultHostName = "default"

// TokenPrompt asks the user for the API key of 'apiRoot'
type TokenPrompt func(apiRoot string) (string, error)

func PromptToken(apiRoot string) (string, error) {
	fmt.Println("API key not found. Please provide it and it will be saved " +
		"in '~/.tnyurc'.")
	prompt := promptui.Prompt{
		Label: fmt.Sprintf("API key for %s", apiRoot),
		Mask:  '*',
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("the API key cannot be empty")
			}
			return nil
		},
	}
	token, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(token), nil
}

/*
GetHostAndToken
Function for getting the *final* API root and key from a combination of
environment variables, flags, the configuration file and/or user input.

 1. If 'apiRoot' is provided, it is looked up as a section name (or api_root)
    in the configuration. If a matching host is found, its api_root is used;
    otherwise 'apiRoot' is used as a URL.

 2. If 'apiRoot' is not provided, the active host of the configuration is used.
    Without one, tnyuapi.DefaultAPIRoot is used.

3. If 'token' is provided, it is returned as is.

 4. Otherwise the token of the host found in steps 1/2 is used. If there is
    none and 'ask' is not nil, the user is asked for it and the answer is saved
    in the configuration. If 'ask' is nil, an empty token is returned; the API
    decides whether it needs one.
*/
func GetHostAndToken(
	cfg *config.Config, apiRoot, token string, ask TokenPrompt,
) (string, string, error) {
	var selectedHost *config.Host
	var hostName, rootUrl string

	if apiRoot != "" {
		selectedHost = cfg.FindHost(apiRoot)
		if selectedHost == nil {
			hostName = apiRoot
			rootUrl = apiRoot
		}
	} else {
		selectedHost = cfg.GetActiveHost()
		if selectedHost == nil {
			hostName = defaultHostName
			rootUrl = tnyuapi.DefaultAPIRoot
		}
	}
	if selectedHost != nil {
		hostName = selectedHost.Name
		rootUrl = selectedHost.ApiRoot
		if rootUrl == "" {
			rootUrl = tnyuapi.DefaultAPIRoot
		}
	}

	if token != "" {
		return rootUrl, token, nil
	}
	if selectedHost != nil && selectedHost.Token != "" {
		return rootUrl, selectedHost.Token, nil
	}
	if ask == nil {
		return rootUrl, "", nil
	}

	token, err := ask(rootUrl)
	if err != nil {
		return "", "", err
	}
	cfg.SetHost(config.Host{Name: hostName, ApiRoot: rootUrl, Token: token})
	if cfg.Root.ActiveHost == "" {
		cfg.Root.ActiveHost = hostName
	}
	err = cfg.Save()
	if err != nil {
		return "", "", err
	}
	return rootUrl, token, nil
}
