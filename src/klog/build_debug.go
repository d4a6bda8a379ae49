//go:build !release

package klog

// DebugBuild is false when the kernel is built with the release tag.
const DebugBuild = true
