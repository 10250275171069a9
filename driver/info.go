package driver

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// APIVersion is the version of the plugin/host protocol shape: the
// callback table, the interchange primitives and the node layouts.
// Bumped whenever any of those change.
const APIVersion = "0.4.0"

var (
	// ErrAPIMismatch means the plugin was built against a different
	// protocol shape. Loading it would misinterpret memory; the host
	// must refuse.
	ErrAPIMismatch = errors.New("driver: api version mismatch")
	// ErrToolchainMismatch means the plugin was compiled by a different
	// host toolchain build. The host should refuse to load it.
	ErrToolchainMismatch = errors.New("driver: toolchain version mismatch")
)

// Info identifies one side of the load handshake.
type Info struct {
	// APIVersion is the protocol shape the artifact was built against.
	APIVersion string
	// ToolchainVersion is the exact host build the artifact targets.
	ToolchainVersion string
}

// HostInfo returns the handshake info for this build of the protocol,
// stamped with the host's toolchain version.
func HostInfo(toolchain string) Info {
	return Info{APIVersion: APIVersion, ToolchainVersion: toolchain}
}

// CheckCompat decides whether a plugin artifact may be loaded by a
// host. Mismatches are load-time hard failures, never runtime ones:
// the API version must match exactly, and the toolchain versions must
// agree on major.minor.patch.
func CheckCompat(host, plugin Info) error {
	hostAPI, err := semver.NewVersion(host.APIVersion)
	if err != nil {
		return fmt.Errorf("driver: bad host api version %q: %w", host.APIVersion, err)
	}
	pluginAPI, err := semver.NewVersion(plugin.APIVersion)
	if err != nil {
		return fmt.Errorf("driver: bad plugin api version %q: %w", plugin.APIVersion, err)
	}
	if !hostAPI.Equal(pluginAPI) {
		return fmt.Errorf("%w: host %s, plugin %s", ErrAPIMismatch, host.APIVersion, plugin.APIVersion)
	}

	hostTC, err := semver.NewVersion(host.ToolchainVersion)
	if err != nil {
		return fmt.Errorf("driver: bad host toolchain version %q: %w", host.ToolchainVersion, err)
	}
	pluginTC, err := semver.NewVersion(plugin.ToolchainVersion)
	if err != nil {
		return fmt.Errorf("driver: bad plugin toolchain version %q: %w", plugin.ToolchainVersion, err)
	}
	if !hostTC.Equal(pluginTC) {
		return fmt.Errorf("%w: host %s, plugin %s", ErrToolchainMismatch, host.ToolchainVersion, plugin.ToolchainVersion)
	}
	return nil
}
