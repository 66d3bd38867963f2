// Package config resolves the client configuration once at startup from
// environment defaults and command-line overrides. The resolved Config is
// immutable and passed explicitly into each demo flow; nothing reads the
// environment after resolution.
package config

import (
	"os"
	"strconv"
)

// Environment variables consulted for defaults.
const (
	EnvHost        = "MCP_HOST"
	EnvPort        = "MCP_PORT"
	EnvDockerImage = "MCP_DOCKER_IMAGE"
)

// Literal fallbacks used when the environment is silent.
const (
	DefaultHost        = "host.docker.internal"
	DefaultPort        = 8811
	DefaultDockerImage = "alpine/socat"
)

// Config holds everything a demo flow needs. Host, Port and DockerImage
// describe the Docker-based stdio bridge; HTTPURL, when non-empty, switches
// the invocation to the HTTP flow entirely.
type Config struct {
	Host        string
	Port        int
	DockerImage string

	Tool      string
	ListTools bool
	HTTPURL   string
}

// FromEnv returns a Config seeded from the environment, falling back to the
// literal defaults. CLI flags override these values afterwards in main.
func FromEnv() Config {
	return Config{
		Host:        envOr(EnvHost, DefaultHost),
		Port:        envIntOr(EnvPort, DefaultPort),
		DockerImage: envOr(EnvDockerImage, DefaultDockerImage),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
