// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// FileConfig is the on-disk shape of a Tree's static configuration
// (SPEC_FULL.md §2 Configuration), loaded with LoadTreeOptions. It covers
// only the options meaningful to set from a config file; WithBackend and
// WithErrorFunc remain code-only since a Backend/ErrorFunc is not
// serializable.
type FileConfig struct {
	DebugCheck    bool `toml:"debug_check"`
	NameIndexSize int  `toml:"name_index_size"`
	EnableNameIdx bool `toml:"enable_name_index"`
}

// LoadTreeOptions reads a TOML file at path and translates it into
// TreeOptions for NewTree, grounded on rclone's fs/config pattern of a
// TOML-backed settings file (spec: SPEC_FULL.md §3 DOMAIN STACK).
func LoadTreeOptions(path string) ([]TreeOption, error) {
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "arbor: loading tree config %q", path)
	}

	var opts []TreeOption
	if cfg.DebugCheck {
		opts = append(opts, WithDebugCheck(true))
	}
	if cfg.EnableNameIdx {
		opts = append(opts, WithNameIndex(cfg.NameIndexSize))
	}
	return opts, nil
}
