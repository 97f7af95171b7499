package config

import "time"

// Canvas is the logical drawing area every frontend scales to.
const (
	CanvasWidth  = 512
	CanvasHeight = 512
)

// World population and spawning.
const (
	ParticleCount  = 100
	ShipStartX     = 256
	ShipStartY     = 256
	AsteroidChance = 0.05 // Per-frame probability of a new asteroid
	AsteroidSpawnY = -50
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Terminal rendering limits. Larger terminals get a centered, bordered area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 80
)

// KeyHoldDuration is how long a terminal key counts as held after its last
// byte arrived. Terminals never report key-up.
const KeyHoldDuration = 120 * time.Millisecond

// Environment variable names.
const (
	EnvLogLevel    = "ASTEROIDFALL_LOG_LEVEL"
	EnvKeyHoldMS   = "ASTEROIDFALL_KEY_HOLD_MS"
	EnvParticles   = "ASTEROIDFALL_PARTICLES"
	EnvAsteroidPct = "ASTEROIDFALL_ASTEROID_CHANCE"
	EnvSeed        = "ASTEROIDFALL_SEED"
)

// Inactivity before an SSH player is disconnected.
const IdleTimeout = 120 * time.Second

// Environment variable names for the servers.
const (
	EnvSSHHost        = "SSH_HOST"
	EnvSSHPort        = "SSH_PORT"
	EnvSSHHostKey     = "SSH_HOST_KEY"
	EnvSSHIdleMS      = "SSH_IDLE_TIMEOUT_MS"
	EnvWebHost        = "WEB_HOST"
	EnvWebPort        = "WEB_PORT"
	EnvSSHDisplayHost = "SSH_DISPLAY_HOST"
)
