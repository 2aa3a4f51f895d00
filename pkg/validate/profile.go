package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cardforge/pkg/card"
)

// Size limits in KB. Teams webhooks reject payloads over 28 KB; other
// targets get a more generous default.
const (
	TeamsSizeLimitKB   = 28.0
	DefaultSizeLimitKB = 40.0
)

// DefaultTarget is the profile used when no target is specified.
const DefaultTarget = "teams"

// Profile captures a delivery target's constraints.
type Profile struct {
	// Name identifies the target platform (e.g. "teams").
	Name string

	// SizeLimitKB is the maximum serialized card size.
	SizeLimitKB float64

	// MinVersion maps element wire types to the minimum schema version the
	// platform requires for them, overriding the schema's own baseline.
	MinVersion map[string]string
}

// builtins returns the built-in profile set. A fresh map is built on each
// call so callers can mutate their copy freely.
func builtins() map[string]Profile {
	return map[string]Profile{
		"teams": {
			Name:        "teams",
			SizeLimitKB: TeamsSizeLimitKB,
		},
		"default": {
			Name:        "default",
			SizeLimitKB: DefaultSizeLimitKB,
		},
	}
}

// ProfileFor resolves a profile by name, case-insensitively. Unknown names
// fall back to the default 40 KB profile rather than failing; use [New] for
// strict resolution.
func ProfileFor(name string) Profile {
	if p, ok := builtins()[strings.ToLower(name)]; ok {
		return p
	}
	return builtins()["default"]
}

// SupportedTarget reports whether name is a known built-in target.
func SupportedTarget(name string) bool {
	_, ok := builtins()[strings.ToLower(name)]
	return ok
}

// =============================================================================
// TOML Overrides
// =============================================================================

// profilesFile mirrors the TOML override schema:
//
//	[profiles.teams]
//	size_limit_kb = 25.0
//
//	[profiles.teams.min_version]
//	"Input.ChoiceSet" = "1.2"
type profilesFile struct {
	Profiles map[string]profileConfig `toml:"profiles"`
}

type profileConfig struct {
	SizeLimitKB float64           `toml:"size_limit_kb"`
	MinVersion  map[string]string `toml:"min_version"`
}

// LoadProfiles reads profile definitions from a TOML file, overlaying the
// built-in profiles. The result is a plain value map: nothing global is
// mutated, callers pass the profile they want into [NewWithProfile].
func LoadProfiles(path string) (map[string]Profile, error) {
	var file profilesFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("load profiles %s: %w", path, err)
	}

	profiles := builtins()
	for name, cfg := range file.Profiles {
		key := strings.ToLower(name)
		p := profiles[key]
		p.Name = key
		if cfg.SizeLimitKB > 0 {
			p.SizeLimitKB = cfg.SizeLimitKB
		} else if p.SizeLimitKB == 0 {
			p.SizeLimitKB = DefaultSizeLimitKB
		}
		if len(cfg.MinVersion) > 0 {
			p.MinVersion = cfg.MinVersion
		}
		profiles[key] = p
	}
	return profiles, nil
}

// =============================================================================
// Schema Versions
// =============================================================================

// requiredVersion returns the minimum schema version an element needs,
// before profile overrides. The baseline for every supported element is 1.0;
// container bleed is a 1.2 schema feature.
func requiredVersion(e card.Element) string {
	if c, ok := e.(*card.Container); ok && c.Bleed {
		return "1.2"
	}
	return "1.0"
}

// versionLess reports whether version a is lower than b. Versions are
// "major.minor" strings; malformed components compare as zero.
func versionLess(a, b string) bool {
	amaj, amin := parseVersion(a)
	bmaj, bmin := parseVersion(b)
	if amaj != bmaj {
		return amaj < bmaj
	}
	return amin < bmin
}

func parseVersion(v string) (major, minor int) {
	parts := strings.SplitN(strings.TrimSpace(v), ".", 3)
	major, _ = strconv.Atoi(parts[0])
	if len(parts) > 1 {
		minor, _ = strconv.Atoi(parts[1])
	}
	return major, minor
}
