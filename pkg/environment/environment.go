// Package environment resolves the deployment environment ron-fun runs in.
//
// The signal is NODE_ENV, the variable the frontend build tooling already
// reads, so a single export drives both the JS bundle and this module.
// RONFUN_ENV takes precedence when set.
package environment

import (
	"strings"

	"github.com/spf13/viper"
)

// Key is the viper key the environment is stored under.
const Key = "env"

// Environment is a deployment environment name such as "production".
type Environment string

// Well-known environments. Only Production changes behavior.
const (
	Production  Environment = "production"
	Development Environment = "development"
)

// IsProduction reports whether e is exactly "production". Any other value,
// including the empty string, counts as non-production.
func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) String() string {
	return string(e)
}

// Bind registers the environment key on v: RONFUN_ENV, then NODE_ENV, then
// the development default.
func Bind(v *viper.Viper) {
	v.SetDefault(Key, string(Development))
	_ = v.BindEnv(Key, "RONFUN_ENV", "NODE_ENV")
}

// FromViper reads the environment from v. The value is trimmed but its case
// is kept, so "Production" is not production.
func FromViper(v *viper.Viper) Environment {
	return Environment(strings.TrimSpace(v.GetString(Key)))
}

// Resolve reads the environment from the process environment.
func Resolve() Environment {
	v := viper.New()
	Bind(v)
	return FromViper(v)
}
