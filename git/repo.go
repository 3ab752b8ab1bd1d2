package git

import (
	"github.com/cockroachdb/errors"
	gogit "github.com/go-git/go-git/v5"
)

// Repository reads repository metadata without shelling out.
type Repository struct {
	repo *gogit.Repository
}

// OpenRepository opens the repository containing path, searching parent directories
func OpenRepository(path string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open repository at %s", path)
	}
	return &Repository{repo: repo}, nil
}

// CurrentBranch returns the short name of the checked out branch
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", errors.Wrap(err, "resolve HEAD")
	}
	if !head.Name().IsBranch() {
		return "", errors.New("HEAD is detached, unable to determine current branch")
	}
	return head.Name().Short(), nil
}

// RemoteURL returns the first URL configured for the named remote
func (r *Repository) RemoteURL(name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return "", errors.Wrapf(err, "remote %q", name)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", errors.Newf("remote %q has no URL", name)
	}
	return urls[0], nil
}
