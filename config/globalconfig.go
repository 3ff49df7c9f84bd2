// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"
)

const AppName = "genomeplot"
const configFileName = "globalconfig.yaml"
const configFileVersion = 1

type GlobalConfig struct {
	configDir      string
	loaded         bool
	version        VersionConfig
	appConfig      AppConfig
	appConfigMutex sync.Mutex
}

type VersionConfig struct {
	FileVersion int
}

// NewGlobalConfig uses the configuration directory of the current user.
func NewGlobalConfig() Config {
	return NewGlobalConfigInDir("")
}

// NewGlobalConfigInDir stores the configuration in dir.
func NewGlobalConfigInDir(dir string) Config {
	return &GlobalConfig{
		configDir: dir,
		version: VersionConfig{
			FileVersion: configFileVersion,
		},
		appConfig: NewAppConfig(),
	}
}

func (g *GlobalConfig) GetAppName() string {
	return AppName
}

// Locks access to the configuration and returns a copy which can be modified.
// Unlock needs to be called afterwards, if no error was returned.
func (g *GlobalConfig) Lock() (*AppConfig, error) {
	g.appConfigMutex.Lock()
	if !g.loaded {
		err := g.read()
		if err != nil {
			g.appConfigMutex.Unlock()
			return nil, err
		}
	}
	appConfigCopy := g.appConfig.deepCopy()
	return &appConfigCopy, nil
}

// Update the configuration and unlock access.
// If the configuration was changed, the configuration will be written before unlocking.
func (g *GlobalConfig) Unlock(c *AppConfig, forceWriting bool) error {
	var err error
	if forceWriting || !cmp.Equal(g.appConfig, *c, cmpopts.EquateEmpty()) {
		g.appConfig = *c
		err = g.write()
	}
	g.appConfigMutex.Unlock()
	return err
}

func (g *GlobalConfig) Copy(forceReading bool) (AppConfig, error) {
	g.appConfigMutex.Lock()
	defer g.appConfigMutex.Unlock()
	if !g.loaded || forceReading {
		err := g.read()
		if err != nil {
			return AppConfig{}, err
		}
	}
	return g.appConfig.deepCopy(), nil
}

func (g *GlobalConfig) getAppConfigDir() string {
	if len(g.configDir) != 0 {
		return g.configDir
	}
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// We do not want to run on operating systems without config dir.
		// This is considered to be a fatal error.
		log.Fatalf("unable to determine configuration path: %v", err)
	}
	return filepath.Join(userConfigDir, g.GetAppName())
}

func (g *GlobalConfig) read() error {
	appConfigDir := g.getAppConfigDir()
	fileName := filepath.Join(appConfigDir, configFileName)
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		// It is fine if the configuration file does not yet exist.
		log.Printf("Configuration file \"%s\" does not yet exist, using defaults.", fileName)
		g.loaded = true
		return nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}
	var version VersionConfig
	err = yaml.Unmarshal(file, &version)
	if err != nil {
		return fmt.Errorf("failed to parse configuration version: %w", err)
	}
	// Avoid removing new unknown settings if an old release is started with a newer config file.
	if version.FileVersion > configFileVersion {
		return fmt.Errorf(
			"invalid configuration file version %d instead of %d, probably from a newer release",
			version.FileVersion,
			configFileVersion)
	}
	appConfig := NewAppConfig()
	err = yaml.Unmarshal(file, &appConfig)
	if err != nil {
		return fmt.Errorf("failed to parse app configuration: %w", err)
	}
	appConfig.Sanitize()
	g.appConfig = appConfig
	g.loaded = true
	return nil
}

func (g *GlobalConfig) write() error {
	appConfigDir := g.getAppConfigDir()
	err := os.MkdirAll(appConfigDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}
	g.appConfig.Sanitize()
	g.appConfig.RemoveDefaults()
	fileVersion, err := yaml.Marshal(&g.version)
	if err != nil {
		return fmt.Errorf("error generating configuration version: %w", err)
	}
	fileAppConfig, err := yaml.Marshal(&g.appConfig)
	if err != nil {
		return fmt.Errorf("error generating app configuration: %w", err)
	}
	g.appConfig.RestoreDefaults()

	file := append(fileVersion, fileAppConfig...)
	fileName := filepath.Join(appConfigDir, configFileName)
	tmpFileName := fileName + ".tmp"
	// Writing may fail, so we write to a temporary file and replace afterwards.
	err = os.WriteFile(tmpFileName, file, 0600)
	if err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	err = os.Rename(tmpFileName, fileName)
	if err != nil {
		return fmt.Errorf("failed to replace configuration file: %w", err)
	}
	g.loaded = true
	return nil
}
