// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ilp

import (
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"k8s.io/klog/v2"
)

// Environment variables read once, on the first call to ActiveProfile.
const (
	// EnvCPU names the profile to use, overriding host detection.
	EnvCPU = "ILP_CPU"

	// EnvNoDetect disables host detection; the default profile is used
	// unless EnvCPU is set.
	EnvNoDetect = "ILP_NO_DETECT"
)

func normalizeProfileName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// GetProfile returns the built-in profile with the given name, ignoring
// case. Unknown names map to the default profile, so GetProfile never fails
// and repeated calls with the same name return equal values.
func GetProfile(name string) Profile {
	if p, ok := builtinProfiles[normalizeProfileName(name)]; ok {
		return *p
	}
	return defaultProfile
}

// LookupProfile is the strict form of GetProfile: it returns an error for
// names that are not built in.
func LookupProfile(name string) (Profile, error) {
	if p, ok := builtinProfiles[normalizeProfileName(name)]; ok {
		return *p, nil
	}
	return Profile{}, errors.Errorf("ilp: unknown CPU profile %q (known: %s)",
		name, strings.Join(ProfileNames(), ", "))
}

// ProfileNames returns the names of the built-in profiles, sorted.
func ProfileNames() []string {
	names := lo.Keys(builtinProfiles)
	slices.Sort(names)
	return names
}

// DefaultProfile returns a copy of the conservative cross-platform profile.
func DefaultProfile() Profile {
	return defaultProfile
}

var (
	activeOnce    sync.Once
	activeProfile *Profile
)

// ActiveProfile returns the profile used by the *Auto entry points and by
// OptimalK. It is resolved once per process:
//
//  1. ILP_CPU, when set, names the profile. Unknown names fall back to the
//     default profile with a warning.
//  2. Otherwise, unless ILP_NO_DETECT is true, the host is detected with
//     DetectHost.
//  3. Otherwise the default profile is used.
//
// The returned value is a copy; changing it does not affect the package.
func ActiveProfile() Profile {
	return *active()
}

// active returns the shared active profile, which must not be modified.
func active() *Profile {
	activeOnce.Do(func() {
		activeProfile = resolveProfile(os.Getenv(EnvCPU), noDetectEnv())
		klog.V(1).Infof("ilp: active CPU profile %q", activeProfile.Name)
	})
	return activeProfile
}

func resolveProfile(envCPU string, noDetect bool) *Profile {
	if envCPU != "" {
		if p, ok := builtinProfiles[normalizeProfileName(envCPU)]; ok {
			return p
		}
		klog.Warningf("ilp: %s=%q is not a known profile (known: %s), using %q",
			EnvCPU, envCPU, strings.Join(ProfileNames(), ", "), ProfileDefault)
		return &defaultProfile
	}
	if noDetect {
		return &defaultProfile
	}
	if p, ok := builtinProfiles[DetectHost().Profile]; ok {
		return p
	}
	return &defaultProfile
}

// noDetectEnv checks if the ILP_NO_DETECT environment variable is set.
func noDetectEnv() bool {
	val := os.Getenv(EnvNoDetect)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
