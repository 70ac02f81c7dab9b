// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command lshdup builds and queries a banded LSH near-duplicate index
// over token-sequence documents.
//
// Usage:
//
//	lshdup solve -n 100
//	lshdup curve -b 20 -r 5
//	lshdup insert docs.txt
//	lshdup lookup docs.txt token1 token2 token3
//	lshdup analyze -b 20 -r 5 -d 50 -t 10
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var config Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		yamlFile, err := os.ReadFile(configPath)
		if err != nil {
			// Unlike a deployed service, this CLI has sensible built-in
			// defaults for every option: a missing config.yaml is normal,
			// not an error.
			return
		}
		if err := yaml.Unmarshal(yamlFile, &config); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
	}
}
