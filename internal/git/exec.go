package git

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// ExecRemote shells out to the git binary.
type ExecRemote struct {
	Dir    string
	Remote string
	Binary string
}

func (r *ExecRemote) command(ctx context.Context, args ...string) *exec.Cmd {
	bin := r.Binary
	if bin == "" {
		bin = "git"
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.Dir
	return cmd
}

// ListReferences runs git ls-remote against the configured remote.
func (r *ExecRemote) ListReferences(ctx context.Context) (string, error) {
	cmd := r.command(ctx, "ls-remote", r.Remote)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", unavailable(r.Remote, errors.New(strings.TrimSpace(string(exitErr.Stderr))))
		}
		return "", unavailable(r.Remote, err)
	}
	return string(output), nil
}

// DeleteBranch runs git push <remote> :<name>.
func (r *ExecRemote) DeleteBranch(ctx context.Context, name string) (string, error) {
	cmd := r.command(ctx, "push", r.Remote, ":"+name)
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail == "" {
			detail = err.Error()
		}
		return string(output), &DeletePushError{Name: name, Detail: detail}
	}
	return string(output), nil
}
