package version

import (
	"fmt"
	"regexp"
	"strings"
)

/*
The variables in this file are replaced with the actual values
at link time:

	go build -ldflags "-X github.com/threefoldtech/memdecode/pkg/version.Branch=..."
*/

var (
	// Branch of the code
	Branch = "{branch}"
	// Revision of the code
	Revision = "{revision}"
	// Dirty flag shows if the binary is built from a
	// repo with uncommitted changes
	Dirty = ""
)

var (
	re = regexp.MustCompile(`^memdecode Version:([^@]*)@Revision:([^\(]+)`)
)

// Version of the binary
type Version interface {
	Short() string
	String() string
}

type version struct {
	branch, revision, dirty string
}

func (v *version) String() string {
	s := fmt.Sprintf("memdecode Version: %s @Revision: %s", v.branch, v.revision)
	if v.dirty != "" {
		s += " (dirty-repo)"
	}

	return s
}

func (v *version) Short() string {
	revision := v.revision
	if len(revision) > 7 {
		revision = revision[0:7]
	}

	s := fmt.Sprintf("%s@%s", v.branch, revision)
	if v.dirty != "" {
		s += "(D)"
	}
	return s
}

// Current get current version
func Current() Version {
	return &version{branch: Branch, revision: Revision, dirty: Dirty}
}

// Parse version string
func Parse(v string) (version string, revision string, err error) {
	m := re.FindStringSubmatch(v)
	if m == nil {
		return version, revision, fmt.Errorf("invalid version string")
	}

	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), nil
}
