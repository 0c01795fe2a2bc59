//go:build !invadersdebug

package invaders

const debugChecks = false
