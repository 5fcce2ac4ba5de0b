package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

// GoGitRemote talks to the remote through go-git instead of the git binary.
type GoGitRemote struct {
	Dir    string
	Remote string

	// repo overrides opening Dir, used by tests.
	repo *gogit.Repository
}

func (r *GoGitRemote) open() (*gogit.Repository, error) {
	if r.repo != nil {
		return r.repo, nil
	}
	dir := r.Dir
	if dir == "" {
		dir = "."
	}
	return gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
}

// ListReferences lists the remote refs and renders them like git ls-remote.
func (r *GoGitRemote) ListReferences(ctx context.Context) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", unavailable(r.Remote, err)
	}
	remote, err := repo.Remote(r.Remote)
	if err != nil {
		return "", unavailable(r.Remote, err)
	}
	refs, err := remote.ListContext(ctx, &gogit.ListOptions{})
	if err != nil {
		return "", unavailable(r.Remote, err)
	}
	return formatReferences(refs), nil
}

// formatReferences writes hash references sorted by name, skipping symbolic
// ones.
func formatReferences(refs []*plumbing.Reference) string {
	sorted := make([]*plumbing.Reference, 0, len(refs))
	for _, ref := range refs {
		if ref.Type() != plumbing.HashReference {
			continue
		}
		sorted = append(sorted, ref)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name().String() < sorted[j].Name().String()
	})

	var b strings.Builder
	for _, ref := range sorted {
		fmt.Fprintf(&b, "%s\t%s\n", ref.Hash(), ref.Name())
	}
	return b.String()
}

// DeleteBranch pushes a delete refspec for refs/heads/<name>. A push with
// nothing to do means the remote never had the ref, which is a failure.
func (r *GoGitRemote) DeleteBranch(ctx context.Context, name string) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", &DeletePushError{Name: name, Detail: err.Error()}
	}
	ref := plumbing.NewBranchReferenceName(name)
	spec := config.RefSpec(":" + ref.String())
	if err := spec.Validate(); err != nil {
		return "", &DeletePushError{Name: name, Detail: err.Error()}
	}

	err = repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: r.Remote,
		RefSpecs:   []config.RefSpec{spec},
	})
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return "", &DeletePushError{
			Name:   name,
			Detail: fmt.Sprintf("unable to delete '%s': remote ref does not exist", name),
		}
	}
	if err != nil {
		return "", &DeletePushError{Name: name, Detail: err.Error()}
	}
	return fmt.Sprintf(" - [deleted]         %s\n", name), nil
}
