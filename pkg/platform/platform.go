// Package platform resolves the host platform a tracker runs on.
package platform

import (
	"runtime"
	"strings"
)

type Platform int

const (
	Unknown Platform = iota
	IOS
	Android
)

func (p Platform) String() string {
	switch p {
	case IOS:
		return "ios"
	case Android:
		return "android"
	}

	return "unknown"
}

// Provider identifies the host operating system.
type Provider interface {
	OS() string
}

// Runtime reports the operating system the binary was built for.
type Runtime struct{}

func (Runtime) OS() string {
	return runtime.GOOS
}

// Static reports a fixed operating system, usually read from configuration.
type Static string

func (s Static) OS() string {
	return string(s)
}

// Resolve maps a platform identifier onto a Platform.
func Resolve(id string) Platform {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "ios":
		return IOS
	case "android":
		return Android
	}

	return Unknown
}

// Detect resolves the platform reported by p.
func Detect(p Provider) Platform {
	if p == nil {
		return Unknown
	}

	return Resolve(p.OS())
}
