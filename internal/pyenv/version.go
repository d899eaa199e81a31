package pyenv

import (
	"fmt"
	"regexp"

	"golang.org/x/mod/semver"
)

var versionRe = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// ParseVersion extracts the numeric version from interpreter output such as
// "Python 3.11.4" and returns it in semver form ("v3.11.4").
func ParseVersion(output string) (string, error) {
	m := versionRe.FindStringSubmatch(output)
	if m == nil {
		return "", fmt.Errorf("no version found in %q", output)
	}
	v := "v" + m[1] + "." + m[2]
	if m[3] != "" {
		v += "." + m[3]
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid version %q", v)
	}
	return v, nil
}

// AtLeast reports whether have (semver form) satisfies the dotted minimum.
func AtLeast(have, minimum string) bool {
	return semver.Compare(have, "v"+minimum) >= 0
}
