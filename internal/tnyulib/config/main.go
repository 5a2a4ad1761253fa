/*
Package config
Credentials for the Tech@NYU API, kept in an INI file (~/.tnyurc by default):

	[main]
	host = production

	[production]
	api_root = https://api.tnyu.org/v3
	token    = XXX

	[staging]
	api_root = https://staging.api.tnyu.org/v3
	token    = YYY

Usage:

	import "github.com/techatnyu/tnyu/internal/tnyulib/config"

	cfg, err := config.Load("")  // Loads from the default path
	if err != nil { ... }

	host := cfg.GetActiveHost()

	cfg.SetHost(config.Host{Name: "staging", ApiRoot: "...", Token: "..."})
	cfg.Save()  // Saves changes to disk
*/
package config

import "os"

type Config struct {
	Root *RootConfig
}

/*
Load the configuration from 'path', or from the default location if 'path' is
empty. A missing file is not an error; it results in an empty configuration
that will be created on Save.
*/
func Load(path string) (Config, error) {
	var err error
	var rootConfig *RootConfig
	if path == "" {
		rootConfig, err = loadRootConfig()
	} else {
		rootConfig, err = loadRootConfigFromPath(path)
	}
	if err != nil {
		return Config{}, err
	}
	return Config{Root: rootConfig}, nil
}

/*
GetActiveHost
Return the host named by the 'host' key of the 'main' section. If there is no
such key but only one host is configured, that host is returned.
*/
func (cfg *Config) GetActiveHost() *Host {
	if cfg.Root == nil || len(cfg.Root.Hosts) == 0 {
		return nil
	}
	if cfg.Root.ActiveHost == "" {
		if len(cfg.Root.Hosts) == 1 {
			return &cfg.Root.Hosts[0]
		}
		return nil
	}
	for i := range cfg.Root.Hosts {
		host := &cfg.Root.Hosts[i]
		if host.Name == cfg.Root.ActiveHost {
			return host
		}
	}
	return nil
}

/*
FindHost
Return a Host reference whose name or API root matches the argument.
*/
func (cfg *Config) FindHost(name string) *Host {
	if cfg.Root == nil {
		return nil
	}
	for i := range cfg.Root.Hosts {
		// range returns copies: https://stackoverflow.com/q/20185511
		host := &cfg.Root.Hosts[i]
		if host.Name == name {
			return host
		}
	}
	for i := range cfg.Root.Hosts {
		host := &cfg.Root.Hosts[i]
		if host.ApiRoot == name {
			return host
		}
	}
	return nil
}

// SetHost adds 'host' or replaces the host with the same name
func (cfg *Config) SetHost(host Host) {
	if cfg.Root == nil {
		cfg.Root = &RootConfig{}
	}
	for i := range cfg.Root.Hosts {
		if cfg.Root.Hosts[i].Name == host.Name {
			cfg.Root.Hosts[i] = host
			return
		}
	}
	cfg.Root.Hosts = append(cfg.Root.Hosts, host)
}

/*
Save
Save changes to disk. Nothing is written if the file already has the same
contents.
*/
func (cfg *Config) Save() error {
	if cfg.Root == nil {
		return nil
	}
	if cfg.Root.Path == "" {
		path, err := GetRootPath()
		if err != nil {
			return err
		}
		cfg.Root.Path = path
	}

	oldRootConfig, err := loadRootConfigFromPath(cfg.Root.Path)
	if err != nil {
		return err
	}

	cfg.Root.sortHosts()

	if _, err := os.Stat(cfg.Root.Path); err != nil ||
		!rootConfigsEqual(oldRootConfig, cfg.Root) {
		return cfg.Root.saveToPath()
	}
	return nil
}
