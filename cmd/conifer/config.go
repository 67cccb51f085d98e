// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type BenchConfig struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"`
}

type ShellConfig struct {
	EnableColor bool `yaml:"enable_color"`
}

type Config struct {
	Bench BenchConfig `yaml:"bench"`
	Shell ShellConfig `yaml:"shell"`
}

var defaultConfig = Config{
	Bench: BenchConfig{
		Size: 100000,
		Seed: 1,
	},
	Shell: ShellConfig{
		EnableColor: true,
	},
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return &defaultConfig, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return &defaultConfig, nil
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".conifer.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("Failed to get config path: %v\n", err)
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("Conifer Configuration Settings\n")
	fmt.Printf("==============================\n\n")
	fmt.Printf("Config file: %s\n\n", configPath)

	fmt.Printf("%sBenchmark:%s\n", Green, Reset)
	fmt.Printf("  • size: %d\n", config.Bench.Size)
	fmt.Printf("    Number of random keys the bench command inserts\n")
	fmt.Printf("  • seed: %d\n", config.Bench.Seed)
	fmt.Printf("    Seed of the random key generator (same seed, same workload)\n\n")

	fmt.Printf("%sShell:%s\n", Green, Reset)
	fmt.Printf("  • enable_color: %v\n", config.Shell.EnableColor)
	fmt.Printf("    Styled output in the interactive shell\n")
}
