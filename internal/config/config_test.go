package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvHost, "")
	t.Setenv(EnvPort, "")
	t.Setenv(EnvDockerImage, "")

	cfg := FromEnv()

	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultDockerImage, cfg.DockerImage)
	assert.Empty(t, cfg.HTTPURL)
	assert.False(t, cfg.ListTools)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvHost, "gateway.local")
	t.Setenv(EnvPort, "9000")
	t.Setenv(EnvDockerImage, "alpine/socat:1.8")

	cfg := FromEnv()

	assert.Equal(t, "gateway.local", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "alpine/socat:1.8", cfg.DockerImage)
}

func TestFromEnvBadPortFallsBack(t *testing.T) {
	t.Setenv(EnvPort, "not-a-port")

	cfg := FromEnv()

	assert.Equal(t, DefaultPort, cfg.Port)
}
