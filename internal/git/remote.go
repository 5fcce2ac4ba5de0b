package git

import (
	"context"
	"errors"
	"fmt"
)

const (
	BackendExec  = "exec"
	BackendGoGit = "gogit"
)

var (
	// ErrRemoteUnavailable means the remote references could not be listed.
	ErrRemoteUnavailable = errors.New("remote unavailable")
	// ErrDeletePushFailed matches every *DeletePushError.
	ErrDeletePushFailed = errors.New("delete push failed")
)

// Remote enumerates and deletes branches on a git remote.
type Remote interface {
	// ListReferences returns ls-remote style "<hash>\t<ref>" lines.
	ListReferences(ctx context.Context) (string, error)
	// DeleteBranch pushes the removal of refs/heads/<name> and returns the
	// command output.
	DeleteBranch(ctx context.Context, name string) (string, error)
}

// DeletePushError reports a failed deletion of a single branch.
type DeletePushError struct {
	Name   string
	Detail string
}

func (e *DeletePushError) Error() string {
	return fmt.Sprintf("failed to delete %s: %s", e.Name, e.Detail)
}

func (e *DeletePushError) Is(target error) bool {
	return target == ErrDeletePushFailed
}

func unavailable(remote string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRemoteUnavailable, remote, err)
}

// NewRemote returns the gateway for backend. An empty backend selects exec.
func NewRemote(backend, dir, remote, binary string) (Remote, error) {
	switch backend {
	case "", BackendExec:
		return &ExecRemote{Dir: dir, Remote: remote, Binary: binary}, nil
	case BackendGoGit:
		return &GoGitRemote{Dir: dir, Remote: remote}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
