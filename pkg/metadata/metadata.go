// Package metadata describes the library that hosts a tracker.
package metadata

// Version is the library version reported with every tracker.
const Version = "1.0.0"

const (
	LibVersionKey = "$lib_version"
	LibNameKey    = "mp_lib"
)

// Provider supplies metadata that is merged into the initial super properties.
type Provider interface {
	Metadata() map[string]interface{}
}

// Library reports a library name and version.
type Library struct {
	Name    string
	Version string
}

// Default returns the metadata of this library.
func Default() Library {
	return Library{Name: "go", Version: Version}
}

func (l Library) Metadata() map[string]interface{} {
	return map[string]interface{}{
		LibNameKey:    l.Name,
		LibVersionKey: l.Version,
	}
}
