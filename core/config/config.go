// Package config loads the emulator settings file and merges it with
// command-line values.
package config

import (
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Settings holds the three paths the emulator is driven by. All fields
// are optional.
type Settings struct {
	// VFS is the path to the VFS document.
	VFS string `json:"vfs,omitempty"`
	// PathToVFS is a legacy alias for VFS, used when VFS is unset.
	PathToVFS string `json:"path_to_vfs,omitempty"`
	// Log is the path to the XML event log.
	Log string `json:"log,omitempty"`
	// Start is the path to a start script replayed before the prompt.
	Start string `json:"start,omitempty"`
}

// Load reads a JSON (or YAML) settings file.
func Load(fsys afero.Fs, path string) (*Settings, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	var out Settings
	if err := yaml.UnmarshalStrict(data, &out); err != nil {
		return nil, err
	}
	if out.VFS == "" {
		out.VFS = out.PathToVFS
	}
	return &out, nil
}

// Merge overlays file settings on top of flag settings. A non-empty
// file value always wins.
func Merge(flags, file Settings) Settings {
	out := flags
	if file.VFS != "" {
		out.VFS = file.VFS
	}
	if file.Log != "" {
		out.Log = file.Log
	}
	if file.Start != "" {
		out.Start = file.Start
	}
	return out
}
