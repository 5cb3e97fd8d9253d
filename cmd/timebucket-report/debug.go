package main

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
)

var profileModes = map[string]func(p *profile.Profile){
	"cpu":       profile.CPUProfile,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"block":     profile.BlockProfile,
	"thread":    profile.ThreadcreationProfile,
	"goroutine": profile.GoroutineProfile,
	"trace":     profile.TraceProfile,
}

func profileModeNames() string {
	names := make([]string, 0, len(profileModes))
	for name := range profileModes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// startProfile starts recording the named profile, into profDir when set
// and into a temporary directory otherwise
func startProfile(mode, profDir string) (interface{ Stop() }, error) {
	p, ok := profileModes[mode]
	if !ok {
		return nil, errors.Errorf("unknown profile type %q, expected one of %s", mode, profileModeNames())
	}

	popts := []func(p *profile.Profile){p, profile.NoShutdownHook}

	if profDir != "" {
		popts = append(popts, profile.ProfilePath(profDir), profile.Quiet)
	}

	return profile.Start(popts...), nil
}
