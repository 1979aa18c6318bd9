// Package vcs derives best-effort version control context for the project
// being inspected. Absence of a repository is an ordinary outcome, never an
// error: the diagnostic banner simply omits the information.
package vcs

import (
	"log/slog"

	git "github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/targetcheck/internal/foundation"
	"git.home.luguber.info/inful/targetcheck/internal/logfields"
)

// Info describes the repository state at the project root.
type Info struct {
	// Branch is the short reference name, or "detached" off-branch.
	Branch string
	// Commit is the abbreviated HEAD hash.
	Commit string
}

// Detect opens the repository containing path (searching parent directories
// the way the git CLI does) and reads HEAD. Any failure yields None.
func Detect(path string) foundation.Option[Info] {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		slog.Debug("No version control context", logfields.Path(path), logfields.Error(err))
		return foundation.None[Info]()
	}

	ref, err := repo.Head()
	if err != nil {
		// Freshly initialized repositories have no commits yet.
		slog.Debug("Repository has no resolvable HEAD", logfields.Path(path), logfields.Error(err))
		return foundation.None[Info]()
	}

	branch := "detached"
	if ref.Name().IsBranch() {
		branch = ref.Name().Short()
	}

	commit := ref.Hash().String()
	if len(commit) > 8 {
		commit = commit[:8]
	}

	return foundation.Some(Info{Branch: branch, Commit: commit})
}
