package environment

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestIsProduction(t *testing.T) {
	tests := []struct {
		env  Environment
		want bool
	}{
		{Production, true},
		{Development, false},
		{"staging", false},
		{"test", false},
		{"Production", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.env.IsProduction(), "env %q", tt.env)
	}
}

func TestResolveDefaultsToDevelopment(t *testing.T) {
	t.Setenv("RONFUN_ENV", "")
	t.Setenv("NODE_ENV", "")

	assert.Equal(t, Development, Resolve())
}

func TestResolveReadsNodeEnv(t *testing.T) {
	t.Setenv("RONFUN_ENV", "")
	t.Setenv("NODE_ENV", "production")

	assert.Equal(t, Production, Resolve())
}

func TestResolvePrefersRonfunEnv(t *testing.T) {
	t.Setenv("RONFUN_ENV", "staging")
	t.Setenv("NODE_ENV", "production")

	assert.Equal(t, Environment("staging"), Resolve())
}

func TestFromViperExplicitValueWins(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	v := viper.New()
	Bind(v)
	v.Set(Key, " production ")

	assert.Equal(t, Production, FromViper(v))
}
