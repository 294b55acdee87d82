// Package sourcelink links documented symbols to their source on a git host.
package sourcelink

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
)

// Forge identifies the URL scheme of a git host.
type Forge string

const (
	ForgeGitHub    Forge = "github"
	ForgeGitLab    Forge = "gitlab"
	ForgeForgejo   Forge = "forgejo"
	ForgeBitbucket Forge = "bitbucket"
)

var commitHash = regexp.MustCompile(`^[0-9a-f]{7,40}$`)

// Options selects the repository and revision to link to.
type Options struct {
	// Repository is a directory inside the working tree; "" means the current directory.
	Repository string
	// Remote names the remote whose URL identifies the host. Defaults to "origin".
	Remote string
	// Ref overrides the revision; by default the HEAD commit is used.
	Ref string
}

// Resolver builds browse URLs for records.
type Resolver struct {
	forge    Forge
	baseURL  string
	fullName string
	ref      string
	root     string
}

// Detect inspects the repository containing opts.Repository.
func Detect(opts Options) (*Resolver, error) {
	dir := opts.Repository
	if dir == "" {
		dir = "."
	}
	remoteName := opts.Remote
	if remoteName == "" {
		remoteName = "origin"
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryGit, "failed to open git repository").
			WithContext("path", dir).Build()
	}
	remote, err := repo.Remote(remoteName)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryGit, "remote not found").
			WithContext("remote", remoteName).Build()
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, errors.NewError(errors.CategoryGit, "remote has no URL").
			WithContext("remote", remoteName).Build()
	}

	ref := opts.Ref
	if ref == "" {
		head, err := repo.Head()
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryGit, "failed to resolve HEAD").
				WithContext("path", dir).Build()
		}
		ref = head.Hash().String()
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryGit, "repository has no working tree").
			WithContext("path", dir).Build()
	}
	return FromRemote(urls[0], ref, wt.Filesystem.Root())
}

// FromRemote builds a resolver for a clone URL. Source paths are made relative to root.
func FromRemote(cloneURL, ref, root string) (*Resolver, error) {
	if isLocalPath(cloneURL) {
		return nil, errors.ValidationError("remote is a local path and has no web view").
			WithContext("remote", cloneURL).Build()
	}
	u, err := url.Parse(normalizeSSHURL(cloneURL))
	if err != nil || u.Host == "" {
		return nil, errors.ValidationError("cannot parse remote URL").
			WithContext("remote", cloneURL).Build()
	}
	fullName := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
	if fullName == "" {
		return nil, errors.ValidationError("remote URL has no repository path").
			WithContext("remote", cloneURL).Build()
	}
	scheme := u.Scheme
	if scheme != "http" {
		scheme = "https"
	}
	return &Resolver{
		forge:    detectForge(u.Host),
		baseURL:  fmt.Sprintf("%s://%s", scheme, u.Host),
		fullName: fullName,
		ref:      ref,
		root:     root,
	}, nil
}

// Forge returns the detected host type.
func (r *Resolver) Forge() Forge { return r.forge }

// URL returns the browse URL of d's source line, or "" when d has no position
// inside the repository.
func (r *Resolver) URL(d *doclet.Doclet) string {
	src := d.Meta.SourcePath()
	if src == "" || r.ref == "" {
		return ""
	}
	rel := filepath.ToSlash(src)
	if r.root != "" && filepath.IsAbs(src) {
		var err error
		rel, err = filepath.Rel(r.root, src)
		if err != nil || strings.HasPrefix(rel, "..") {
			return ""
		}
		rel = filepath.ToSlash(rel)
	}
	return r.blobURL(rel, d.Meta.Line)
}

func (r *Resolver) blobURL(path string, line int) string {
	var base string
	switch r.forge {
	case ForgeGitHub:
		base = fmt.Sprintf("%s/%s/blob/%s/%s", r.baseURL, r.fullName, r.ref, path)
	case ForgeGitLab:
		base = fmt.Sprintf("%s/%s/-/blob/%s/%s", r.baseURL, r.fullName, r.ref, path)
	case ForgeBitbucket:
		base = fmt.Sprintf("%s/%s/src/%s/%s", r.baseURL, r.fullName, r.ref, path)
		if line > 0 {
			return fmt.Sprintf("%s#lines-%d", base, line)
		}
		return base
	default:
		kind := "branch"
		if commitHash.MatchString(r.ref) {
			kind = "commit"
		}
		base = fmt.Sprintf("%s/%s/src/%s/%s/%s", r.baseURL, r.fullName, kind, r.ref, path)
	}
	if line > 0 {
		return fmt.Sprintf("%s#L%d", base, line)
	}
	return base
}

func detectForge(host string) Forge {
	switch {
	case strings.Contains(host, "github."):
		return ForgeGitHub
	case strings.Contains(host, "gitlab."):
		return ForgeGitLab
	case strings.Contains(host, "bitbucket.org"):
		return ForgeBitbucket
	default:
		// Self-hosted instances are assumed to be Forgejo or Gitea.
		return ForgeForgejo
	}
}

// normalizeSSHURL converts scp-style SSH URLs to HTTPS form.
func normalizeSSHURL(repoURL string) string {
	if !strings.HasPrefix(repoURL, "git@") {
		return repoURL
	}
	parts := strings.SplitN(strings.TrimPrefix(repoURL, "git@"), ":", 2)
	if len(parts) == 2 {
		return "https://" + parts[0] + "/" + parts[1]
	}
	return repoURL
}

func isLocalPath(s string) bool {
	for _, prefix := range []string{"http://", "https://", "git@", "ssh://", "git://"} {
		if strings.HasPrefix(s, prefix) {
			return false
		}
	}
	return true
}
