// Package config turns command-line flags into a store.Request.
//
// Flags are bound into a private viper instance so defaults and the allowed
// --type values are defined in one place. No config file or environment
// variable is read.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/simonhull/firebird-suite/pinia/internal/store"
)

// Flag names
const (
	KeyName      = "name"
	KeyDirectory = "directory"
	KeyType      = "type"
	KeyDryRun    = "dry-run"
)

// RegisterFlags adds the generate-store flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyName, "n", "", "Name of the store")
	fs.StringP(KeyDirectory, "d", store.DefaultDirectory, "Directory to create the store")
	fs.StringP(KeyType, "t", string(store.DefaultKind), fmt.Sprintf("Type of store %v", store.Kinds()))
	fs.Bool(KeyDryRun, false, "Show what would be generated without writing files")
}

// Load reads a request from flags previously registered with RegisterFlags.
func Load(fs *pflag.FlagSet) (store.Request, error) {
	v := viper.New()
	v.SetDefault(KeyDirectory, store.DefaultDirectory)
	v.SetDefault(KeyType, string(store.DefaultKind))

	if err := v.BindPFlags(fs); err != nil {
		return store.Request{}, fmt.Errorf("binding flags: %w", err)
	}

	if fs.Lookup(KeyName) == nil || !fs.Changed(KeyName) {
		return store.Request{}, fmt.Errorf("required flag %q not set", KeyName)
	}

	kind, err := store.ParseKind(v.GetString(KeyType))
	if err != nil {
		return store.Request{}, err
	}

	return store.Request{
		Name:      v.GetString(KeyName),
		Directory: v.GetString(KeyDirectory),
		Kind:      kind,
		DryRun:    v.GetBool(KeyDryRun),
	}, nil
}
