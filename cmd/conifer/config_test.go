// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig with no file failed: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("missing file: got %+v, want defaults %+v", *config, defaultConfig)
	}
}

func TestLoadConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	data := "bench:\n  size: 500\n  seed: 7\nshell:\n  enable_color: false\n"
	if err := os.WriteFile(filepath.Join(home, ".conifer.yaml"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Bench.Size != 500 || config.Bench.Seed != 7 {
		t.Errorf("bench settings: got %+v", config.Bench)
	}
	if config.Shell.EnableColor {
		t.Errorf("enable_color: got true, want false")
	}
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.WriteFile(filepath.Join(home, ".conifer.yaml"), []byte(":\n :::"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig with broken file errored: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("broken file: got %+v, want defaults", *config)
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := createDefaultConfigFile(); err != nil {
		t.Fatalf("createDefaultConfigFile failed: %v", err)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig after create failed: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("round trip: got %+v, want %+v", *config, defaultConfig)
	}
}
