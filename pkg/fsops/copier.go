package fsops

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/boil/pkg/errors"
	"github.com/arthur-debert/boil/pkg/logging"
	"github.com/arthur-debert/boil/pkg/types"
)

// Copier performs generate's recursive copy. Overwrites of existing
// files are confirmed through the Prompter unless forced; a declined
// prompt aborts the remainder of the copy, and files copied before the
// decline stay in place. It implements types.FileCopier.
type Copier struct {
	prompter types.Prompter
}

// NewCopier creates the production copier around the given prompter.
func NewCopier(prompter types.Prompter) *Copier {
	return &Copier{prompter: prompter}
}

// Copy copies src (a file or a directory) to dst, preserving file
// modes. When dst exists as a directory the source is copied beneath
// it under its own base name, the way cp does.
func (c *Copier) Copy(src, dst string, opts types.CopyOptions) (*types.GenerateResult, error) {
	log := logging.GetLogger("fsops.copier")

	srcInfo, err := os.Stat(src)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "boilerplate not found: %s", src)
	}

	if info, err := os.Stat(dst); err == nil && info.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	log.Debug().
		Str("src", src).
		Str("dst", dst).
		Bool("dryRun", opts.DryRun).
		Bool("force", opts.Force).
		Msg("copying boilerplate")

	result := &types.GenerateResult{Source: src, Destination: dst, DryRun: opts.DryRun}
	if srcInfo.IsDir() {
		err = c.copyTree(src, dst, opts, result)
	} else {
		err = c.copyFile(src, dst, srcInfo.Mode(), opts, result)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Copier) copyTree(src, dst string, opts types.CopyOptions, result *types.GenerateResult) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if opts.DryRun {
				return nil
			}
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", target)
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
		}
		return c.copyFile(path, target, info.Mode(), opts, result)
	})
}

func (c *Copier) copyFile(src, dst string, mode fs.FileMode, opts types.CopyOptions, result *types.GenerateResult) error {
	if _, err := os.Stat(dst); err == nil && !opts.Force && !opts.DryRun {
		ok, err := c.prompter.ConfirmOverwrite(dst)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot read confirmation")
		}
		if !ok {
			return errors.Newf(errors.ErrCopyRefused, "not overwriting %s", dst)
		}
	}

	result.Copied = append(result.Copied, types.CopiedFile{Source: src, Destination: dst})
	if opts.DryRun {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", filepath.Dir(dst))
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", src)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot write %s", dst)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot write %s", dst)
	}
	return nil
}
