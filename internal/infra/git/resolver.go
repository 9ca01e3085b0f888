package git

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/ghi-cli/ghi/internal/domain"
)

// Ensure Resolver implements domain.RepoResolver.
var _ domain.RepoResolver = (*Resolver)(nil)

// Resolver determines the target repository from the -r option or the origin remote.
type Resolver struct {
	logger       *slog.Logger
	dir          string // Working directory to search for a repository
	defaultOwner string // Owner used for "-r repo" (github.user)
}

// NewResolver creates a Resolver searching from dir.
func NewResolver(dir, defaultOwner string, logger *slog.Logger) *Resolver {
	return &Resolver{dir: dir, defaultOwner: defaultOwner, logger: logger}
}

// Resolve returns the repository named by option, or the one behind the origin remote.
func (r *Resolver) Resolve(option string) (domain.Repo, error) {
	if option != "" {
		return domain.ParseRepo(option, r.defaultOwner)
	}

	client, err := NewClient(r.dir)
	if err != nil {
		return domain.Repo{}, err
	}
	remoteURL, err := client.RemoteURL(DefaultRemote)
	if err != nil {
		return domain.Repo{}, err
	}
	repo, err := ParseRemoteURL(remoteURL)
	if err != nil {
		return domain.Repo{}, err
	}
	r.logger.Debug("resolved repository from remote", "remote", DefaultRemote, "url", redactRemote(remoteURL), "repo", repo.String())
	return repo, nil
}

// ParseRemoteURL extracts owner and name from a remote URL.
// Supported forms:
//
//	git@host:owner/name(.git)
//	ssh://git@host[:port]/owner/name(.git)
//	https://host/owner/name(.git)
//	git://host/owner/name(.git)
func ParseRemoteURL(raw string) (domain.Repo, error) {
	raw = strings.TrimSpace(raw)
	var path string
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return domain.Repo{}, unsupportedRemote(raw)
		}
		path = u.Path
	} else {
		// scp-like syntax: [user@]host:path
		_, after, found := strings.Cut(raw, ":")
		if !found {
			return domain.Repo{}, unsupportedRemote(raw)
		}
		path = after
	}

	path = strings.Trim(path, "/")
	segments := strings.Split(path, "/")
	if len(segments) < 2 {
		return domain.Repo{}, unsupportedRemote(raw)
	}
	owner := segments[len(segments)-2]
	name := strings.TrimSuffix(segments[len(segments)-1], ".git")
	if owner == "" || name == "" {
		return domain.Repo{}, unsupportedRemote(raw)
	}
	return domain.Repo{Owner: owner, Name: name}, nil
}

func unsupportedRemote(raw string) error {
	return domain.EnvironmentError(
		fmt.Sprintf("could not determine user and repository from remote %q (use -r user/repo)", redactRemote(raw)), nil)
}

// redactRemote drops the userinfo of a URL-form remote, which may carry an access token.
func redactRemote(raw string) string {
	scheme, rest, found := strings.Cut(raw, "://")
	if !found {
		return raw
	}
	host, path, hasPath := strings.Cut(rest, "/")
	if i := strings.LastIndex(host, "@"); i >= 0 {
		host = host[i+1:]
	}
	if !hasPath {
		return scheme + "://" + host
	}
	return scheme + "://" + host + "/" + path
}
