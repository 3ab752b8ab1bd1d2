// Package changelog prepends dated entries to a markdown changelog and
// publishes the result.
package changelog

import (
	"os"
	"strings"
	"time"

	"github.com/bitrise-io/komp/logger"
	"github.com/cockroachdb/errors"
)

const dateLayout = "2006-01-02"

// ErrNotFound is returned when the changelog is missing and creating it was not requested
var ErrNotFound = errors.New("changelog not found")

// Writer adds entries to the changelog at Path
type Writer struct {
	Path  string
	Title string
	Now   func() time.Time
}

// NewWriter creates a Writer using the current UTC date for entry headers
func NewWriter(path, title string) *Writer {
	return &Writer{
		Path:  path,
		Title: title,
		Now:   func() time.Time { return time.Now().UTC() },
	}
}

// Date returns the date used for entry headers
func (w *Writer) Date() string {
	now := time.Now().UTC()
	if w.Now != nil {
		now = w.Now()
	}
	return now.Format(dateLayout)
}

// Add inserts entry under a new dated header directly below the title. When
// the file is missing it is created if create is true; otherwise ErrNotFound
// is returned.
func (w *Writer) Add(entry string, create bool) (bool, error) {
	block := "\n## " + w.Date() + "\n\n" + entry + "\n"
	head := w.Title + "\n\n"

	current, err := os.ReadFile(w.Path)
	if os.IsNotExist(err) {
		if !create {
			return false, errors.Wrapf(ErrNotFound, "%s", w.Path)
		}
		logger.Debugf("Creating %s", w.Path)
		if err := os.WriteFile(w.Path, []byte(head+block), 0644); err != nil {
			return false, errors.Wrapf(err, "failed to create %s", w.Path)
		}
		return true, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", w.Path)
	}

	content := string(current)
	var updated string
	if idx := strings.Index(content, head); idx >= 0 {
		at := idx + len(head)
		updated = content[:at] + block + content[at:]
	} else {
		logger.Debugf("No %q header in %s, prepending entry", w.Title, w.Path)
		updated = block + content
	}

	if err := os.WriteFile(w.Path, []byte(updated), 0644); err != nil {
		return false, errors.Wrapf(err, "failed to write %s", w.Path)
	}
	return false, nil
}

// Committer records and pushes changes
type Committer interface {
	Add(paths ...string) error
	Commit(message string) error
	Push(branch string) error
}

// BranchResolver reports the branch checked out in the working tree
type BranchResolver interface {
	CurrentBranch() (string, error)
}

// Publish commits the changelog file and pushes the current branch to origin
func Publish(committer Committer, repo BranchResolver, w *Writer) error {
	branch, err := repo.CurrentBranch()
	if err != nil {
		return errors.Wrap(err, "unable to determine current branch")
	}

	if err := committer.Add(w.Path); err != nil {
		return err
	}
	if err := committer.Commit("chore(changelog): update " + w.Date()); err != nil {
		return err
	}
	return committer.Push(branch)
}
