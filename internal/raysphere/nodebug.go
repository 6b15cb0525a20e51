//go:build !debug
// +build !debug

package raysphere

func DebugLog(format string, args ...interface{}) {}

func DebugLogOnce(format string, args ...interface{}) {}
