package ilp

import "runtime"

// HostInfo describes what DetectHost found about the running CPU.
type HostInfo struct {
	// GOOS and GOARCH of the running binary.
	GOOS, GOARCH string

	// Profile is the name of the built-in profile chosen for this host.
	Profile string

	// Features lists the CPU features reported by golang.org/x/sys/cpu
	// that matter for profile selection, in a fixed order.
	Features []string
}

// DetectHost inspects the running CPU and picks a built-in profile for it.
//
// Feature flags cannot tell microarchitectures apart reliably, so only hosts
// whose core is known from the platform are matched (Apple silicon);
// everything else gets the default profile. Use ILP_CPU to select a
// specific profile.
func DetectHost() HostInfo {
	info := HostInfo{
		GOOS:    runtime.GOOS,
		GOARCH:  runtime.GOARCH,
		Profile: ProfileDefault,
	}
	info.Features = hostFeatures()
	if name := hostProfile(runtime.GOOS); name != "" {
		info.Profile = name
	}
	return info
}
