// Package tokenrepo commits exported palettes into a git working tree so
// design tokens can be versioned next to the code that uses them.
package tokenrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
	"github.com/alexisbeaulieu97/palettegen/internal/logger"
	"github.com/alexisbeaulieu97/palettegen/pkg/diff"
)

// ErrNoChanges is returned when the exported files already match HEAD.
var ErrNoChanges = errors.New("palette files unchanged, nothing to commit")

// ErrInvalidSubdir is returned when Options.Subdir would leave the repository.
var ErrInvalidSubdir = errors.New("subdirectory must be a relative path inside the repository")

// Author identifies the commit author.
type Author struct {
	Name  string
	Email string
}

// DefaultAuthor is used when Options.Author is empty.
var DefaultAuthor = Author{Name: "palettegen", Email: "palettegen@localhost"}

// Options configures a Publisher.
type Options struct {
	Dir  string
	Init bool
	// Subdir places the files below the repository root. It must be local
	// to the repository.
	Subdir string
	Author Author
	Now    func() time.Time
}

// Publisher writes export payloads into a repository and commits them.
type Publisher struct {
	opts Options
	log  *logger.Logger
}

// Commit describes a successful publish.
type Commit struct {
	Hash    string
	Message string
	Files   []string
	// Diff shows the changes to every written file against its previous
	// contents.
	Diff string
}

// NewPublisher returns a publisher for the repository at opts.Dir.
func NewPublisher(opts Options, log *logger.Logger) *Publisher {
	if opts.Author.Name == "" {
		opts.Author = DefaultAuthor
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Publisher{opts: opts, log: log.With("component", "tokenrepo").With("repo", opts.Dir)}
}

// Message builds the commit message for a palette.
func Message(mode harmony.Mode, hexes []string) string {
	return fmt.Sprintf("palette(%s): %s", mode, strings.Join(hexes, " "))
}

// Publish writes each payload to its conventional file name and commits the
// result.
func (p *Publisher) Publish(ctx context.Context, payloads []format.Payload, mode harmony.Mode, hexes []string) (*Commit, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if len(payloads) == 0 {
		return nil, errors.New("no payloads to publish")
	}
	if p.opts.Subdir != "" && !filepath.IsLocal(p.opts.Subdir) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubdir, p.opts.Subdir)
	}

	repo, err := p.open()
	if err != nil {
		return nil, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	files := make([]string, 0, len(payloads))
	var changes strings.Builder
	for _, payload := range payloads {
		rel := filepath.ToSlash(filepath.Join(p.opts.Subdir, payload.Kind.Filename()))
		abs := filepath.Join(p.opts.Dir, filepath.FromSlash(rel))

		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", filepath.Dir(rel), err)
		}
		body := payload.Body
		if !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		previous, err := os.ReadFile(abs)
		fromLabel := "a/" + rel
		if errors.Is(err, os.ErrNotExist) {
			fromLabel = "/dev/null"
		} else if err != nil {
			return nil, fmt.Errorf("read %s: %w", rel, err)
		}
		if previous != nil && format.SameExport(string(previous), body) {
			// Keep the committed file so a fresh timestamp alone is not a change.
			body = string(previous)
		}
		changes.WriteString(diff.Lines(previous, []byte(body), fromLabel, "b/"+rel))

		if err := os.WriteFile(abs, []byte(body), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", rel, err)
		}
		if _, err := wt.Add(rel); err != nil {
			return nil, fmt.Errorf("stage %s: %w", rel, err)
		}
		files = append(files, rel)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("read status: %w", err)
	}
	if !staged(status, files) {
		p.log.Debug("palette files unchanged")
		return nil, ErrNoChanges
	}

	msg := Message(mode, hexes)
	hash, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  p.opts.Author.Name,
			Email: p.opts.Author.Email,
			When:  p.opts.Now(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("commit palette: %w", err)
	}

	p.log.With("commit", hash.String()).Info("palette committed")
	return &Commit{Hash: hash.String(), Message: msg, Files: files, Diff: changes.String()}, nil
}

func (p *Publisher) open() (*git.Repository, error) {
	repo, err := git.PlainOpen(p.opts.Dir)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) || !p.opts.Init {
		return nil, fmt.Errorf("open repository %s: %w", p.opts.Dir, err)
	}

	if err := os.MkdirAll(p.opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create repository directory: %w", err)
	}
	repo, err = git.PlainInit(p.opts.Dir, false)
	if err != nil {
		return nil, fmt.Errorf("init repository %s: %w", p.opts.Dir, err)
	}
	p.log.Info("initialized token repository")
	return repo, nil
}

func staged(status git.Status, files []string) bool {
	for _, f := range files {
		fs, ok := status[f]
		if !ok {
			continue
		}
		if fs.Staging != git.Unmodified && fs.Staging != git.Untracked {
			return true
		}
	}
	return false
}
