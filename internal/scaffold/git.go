package scaffold

import (
	"errors"
	"os/user"

	git "github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
)

// Author returns the commit author from global git config, falling back to
// the OS user name.
func Author() string {
	if cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope); err == nil && cfg.User.Name != "" {
		return cfg.User.Name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "unknown"
}

// InitRepo creates a git repository at path. An already initialized
// repository is fine; go-git reports that as ErrTargetDirNotEmpty.
func InitRepo(path string) error {
	_, err := git.PlainInit(path, false)
	if errors.Is(err, git.ErrTargetDirNotEmpty) {
		return nil
	}
	return err
}
