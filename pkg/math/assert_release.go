//go:build !glm_debug

package math

const debugAssertions = false
