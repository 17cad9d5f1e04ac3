package gate

import "strings"

// Route prefixes and redirect targets understood by the gate.
const (
	LoginPath        = "/login"
	OnboardingPath   = "/onboarding"
	AuthCallbackPath = "/auth/callback"
	HomePath         = "/"
)

// PathClass is the gate's view of a request path.
type PathClass int

const (
	// ClassProtected covers every path that is not one of the public classes.
	ClassProtected PathClass = iota
	ClassLogin
	ClassOnboarding
	ClassAuthCallback
)

// String returns a log-friendly name.
func (c PathClass) String() string {
	switch c {
	case ClassLogin:
		return "login"
	case ClassOnboarding:
		return "onboarding"
	case ClassAuthCallback:
		return "auth_callback"
	default:
		return "protected"
	}
}

// Classify matches path against the literal route prefixes.
func Classify(path string) PathClass {
	switch {
	case strings.HasPrefix(path, LoginPath):
		return ClassLogin
	case strings.HasPrefix(path, OnboardingPath):
		return ClassOnboarding
	case strings.HasPrefix(path, AuthCallbackPath):
		return ClassAuthCallback
	default:
		return ClassProtected
	}
}
