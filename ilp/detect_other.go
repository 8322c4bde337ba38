//go:build !amd64 && !arm64

package ilp

// Other architectures carry no feature list and use the default profile.

func hostFeatures() []string {
	return nil
}

func hostProfile(goos string) string {
	return ""
}
