//go:build debug

package asteroids

const debugAssertions = true
