//go:build release

package klog

const DebugBuild = false
