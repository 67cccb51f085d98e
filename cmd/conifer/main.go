// Copyright (c) 2019-2026 Daniel Lovasko
// All Rights Reserved
//
// Distributed under the terms of the 2-clause BSD License. The full
// license is in the file LICENSE, distributed as part of this software.

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/lovasko/conifer"
)

var version = "1.0.0"

func main() {
	asciiLogo := `
 ██████╗ ██████╗ ███╗   ██╗██╗███████╗███████╗██████╗
██╔════╝██╔═══██╗████╗  ██║██║██╔════╝██╔════╝██╔══██╗
██║     ██║   ██║██╔██╗ ██║██║█████╗  █████╗  ██████╔╝
██║     ██║   ██║██║╚██╗██║██║██╔══╝  ██╔══╝  ██╔══██╗
╚██████╗╚██████╔╝██║ ╚████║██║██║     ███████╗██║  ██║
 ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝╚═╝╚═╝     ╚══════╝╚═╝  ╚═╝
An ordered key-value map backed by a self-balancing AVL tree [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launch the interactive tree shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens an interactive shell for inserting, searching and browsing keys`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, err := LoadConfig()
			if err != nil {
				log.Printf("Failed to load configuration: %v. Using default settings.", err)
				config = &defaultConfig
			}

			tree := conifer.New[string, string]()
			datasets := newDatasetCache()

			if file, _ := cmd.Flags().GetString("load"); file != "" {
				entries, err := loadDataset(datasets, file)
				if err != nil {
					log.Fatalf("Error loading dataset: %v", err)
				}
				for _, e := range entries {
					tree.Insert(e.key, e.value)
				}
			}

			if err := runShell(tree, datasets, config); err != nil {
				log.Fatalf("Error running shell: %v", err)
			}
		},
	}
	cmdRun.Flags().String("load", "", "dataset file to preload into the tree")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Run a randomized insert/search/delete workload",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench exercises the tree with a random workload and reports timing and height`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, err := LoadConfig()
			if err != nil {
				log.Printf("Failed to load configuration: %v. Using default settings.", err)
				config = &defaultConfig
			}
			if size, _ := cmd.Flags().GetInt("size"); size > 0 {
				config.Bench.Size = size
			}

			if err := runBench(config); err != nil {
				log.Fatalf("Benchmark failed: %v", err)
			}
		},
	}
	cmdBench.Flags().Int("size", 0, "override the configured workload size")

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Show the conifer configuration settings",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the conifer version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "conifer",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interactive shell when no subcommand is given.
			config, err := LoadConfig()
			if err != nil {
				config = &defaultConfig
			}

			tree := conifer.New[string, string]()
			if err := runShell(tree, newDatasetCache(), config); err != nil {
				log.Fatalf("Error running shell: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdRun, cmdBench, cmdConfig, cmdVersion)
	rootCmd.Execute()
}
