//go:build arm64

package ilp

import "golang.org/x/sys/cpu"

func hostFeatures() []string {
	var features []string
	add := func(name string, ok bool) {
		if ok {
			features = append(features, name)
		}
	}
	// ARM64 (AArch64) always has NEON (ASIMD); it's part of ARMv8-A.
	add("asimd", cpu.ARM64.HasASIMD)
	add("fphp", cpu.ARM64.HasFPHP)
	add("asimdhp", cpu.ARM64.HasASIMDHP)
	add("asimdfhm", cpu.ARM64.HasASIMDFHM)
	add("sve", cpu.ARM64.HasSVE)
	add("sve2", cpu.ARM64.HasSVE2)
	add("atomics", cpu.ARM64.HasATOMICS)
	return features
}

// hostProfile maps Apple silicon to the Firestorm table: every Apple core
// since M1 has 4 SIMD/FP pipes. Other arm64 hosts use the default profile.
func hostProfile(goos string) string {
	if (goos == "darwin" || goos == "ios") && cpu.ARM64.HasASIMD {
		return ProfileAppleM1
	}
	return ""
}
