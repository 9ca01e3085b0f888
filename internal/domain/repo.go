package domain

import (
	"fmt"
	"strings"
)

// Repo identifies a repository on the issue service.
type Repo struct {
	Owner string
	Name  string
}

// String returns the owner/name form.
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// IsZero reports whether the reference is unset.
func (r Repo) IsZero() bool {
	return r.Owner == "" && r.Name == ""
}

// ParseRepo parses "owner/name", or a bare "name" combined with defaultOwner.
func ParseRepo(s, defaultOwner string) (Repo, error) {
	s = strings.TrimSpace(s)
	owner, name, found := strings.Cut(s, "/")
	if !found {
		owner, name = defaultOwner, s
	}
	owner = strings.TrimSpace(owner)
	name = strings.TrimSuffix(strings.TrimSpace(name), ".git")
	if name == "" || strings.Contains(name, "/") {
		return Repo{}, UsageError(fmt.Sprintf("invalid repository %q\nexample: ghi -r user/repo", s))
	}
	if owner == "" {
		return Repo{}, EnvironmentError(
			fmt.Sprintf("no user given for repository %q (set github.user in the git config or use -r user/repo)", s), nil)
	}
	return Repo{Owner: owner, Name: name}, nil
}
