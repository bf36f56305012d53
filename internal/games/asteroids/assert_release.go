//go:build !debug

package asteroids

const debugAssertions = false
