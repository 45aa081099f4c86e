// Package version renders the binary's version from the module and VCS
// metadata the Go toolchain stamps into the build.
package version

import (
	"path"
	"runtime/debug"
)

// FromBuildInfo returns "<binary> <tag>" for tagged builds and falls back
// to the VCS revision and commit time when built from a checkout.
func FromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unavailable"
	}

	return render(info)
}

func render(info *debug.BuildInfo) string {
	name := path.Base(info.Main.Path)
	if name == "." {
		name = "cli-standard-kit"
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return name + " " + v
	}

	settings := make(map[string]string, len(info.Settings))

	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	revision := settings["vcs.revision"]
	if revision == "" {
		return name + " (version unavailable)"
	}

	if len(revision) > 12 {
		revision = revision[:12]
	}

	desc := revision
	if vcs := settings["vcs"]; vcs != "" {
		desc = vcs + " " + revision
	}

	if ts := settings["vcs.time"]; ts != "" {
		desc += ", built " + ts
	}

	return name + " (" + desc + ")"
}
