// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

// Config is the optional config.yaml schema. Every field except Log
// mirrors an lshcache.Options field so a deployment can pin defaults once
// instead of repeating flags on every invocation; explicit flags still win.
type Config struct {
	Bands        *int      `yaml:"bands"`
	RowsPerBand  *int      `yaml:"rows_per_band"`
	TotalRows    *int      `yaml:"total_rows"`
	UniverseSize uint64    `yaml:"universe_size"`
	MinHash      string    `yaml:"minhash"` // "xor" or "multiply"
	Seed         int64     `yaml:"seed"`
	ShingleMin   int       `yaml:"shingle_min"`
	ShingleMax   int       `yaml:"shingle_max"`
	Log          LogConfig `yaml:"log"`
}

// LogConfig configures the CLI's logger.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}
