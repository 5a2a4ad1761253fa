package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"sort"

	"gopkg.in/ini.v1"
)

const mainSectionName = "main"

type RootConfig struct {
	ActiveHost string
	Hosts      []Host
	// Where the configuration was read from and will be saved to
	Path string
}

// Host is one section of the file, named after the host
type Host struct {
	Name    string `ini:"-"`
	ApiRoot string `ini:"api_root,omitempty"`
	Token   string `ini:"token,omitempty"`
}

type mainSection struct {
	Host string `ini:"host,omitempty"`
}

func loadRootConfig() (*RootConfig, error) {
	path, err := GetRootPath()
	if err != nil {
		return nil, err
	}
	return loadRootConfigFromPath(path)
}

// A missing file is an empty configuration
func loadRootConfigFromPath(path string) (*RootConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &RootConfig{Path: path}, nil
	} else if err != nil {
		return nil, err
	}
	rootCfg, err := loadRootConfigFromBytes(data)
	if err != nil {
		return nil, err
	}
	rootCfg.Path = path
	return rootCfg, nil
}

func loadRootConfigFromBytes(data []byte) (*RootConfig, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	var result RootConfig
	for _, section := range file.Sections() {
		switch section.Name() {
		case ini.DefaultSection:
			continue
		case mainSectionName:
			var active mainSection
			if err := section.MapTo(&active); err != nil {
				return nil, err
			}
			result.ActiveHost = active.Host
		default:
			host := Host{Name: section.Name()}
			if err := section.MapTo(&host); err != nil {
				return nil, err
			}
			result.Hosts = append(result.Hosts, host)
		}
	}
	result.sortHosts()
	return &result, nil
}

func (rootCfg *RootConfig) sortHosts() {
	sort.SliceStable(rootCfg.Hosts, func(i, j int) bool {
		return rootCfg.Hosts[i].Name < rootCfg.Hosts[j].Name
	})
}

// The file holds API keys, so only the owner may read it
func (rootCfg *RootConfig) saveToPath() error {
	file, err := os.OpenFile(
		rootCfg.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600,
	)
	if err != nil {
		return err
	}
	err = rootCfg.saveToWriter(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (rootCfg *RootConfig) saveToWriter(w io.Writer) error {
	file := ini.Empty()

	if rootCfg.ActiveHost != "" {
		section, err := file.NewSection(mainSectionName)
		if err != nil {
			return err
		}
		err = section.ReflectFrom(&mainSection{Host: rootCfg.ActiveHost})
		if err != nil {
			return err
		}
	}

	for i := range rootCfg.Hosts {
		host := &rootCfg.Hosts[i]
		section, err := file.NewSection(host.Name)
		if err != nil {
			return err
		}
		if err := section.ReflectFrom(host); err != nil {
			return err
		}
	}

	_, err := file.WriteTo(w)
	return err
}

func rootConfigsEqual(left, right *RootConfig) bool {
	if left == nil || right == nil {
		return left == right
	}
	if left.ActiveHost != right.ActiveHost ||
		len(left.Hosts) != len(right.Hosts) {
		return false
	}
	for i := range left.Hosts {
		if left.Hosts[i] != right.Hosts[i] {
			return false
		}
	}
	return true
}

/*
GetRootPath
Returns the path of the configuration file: $TNYU_CONFIG if set, otherwise
~/.tnyurc
*/
func GetRootPath() (string, error) {
	if path := os.Getenv("TNYU_CONFIG"); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		usr, userErr := user.Current()
		if userErr != nil {
			return "", err
		}
		homeDir = usr.HomeDir
	}
	return filepath.Join(homeDir, ".tnyurc"), nil
}
