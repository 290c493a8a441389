package localdata

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zhizhangxian/deeplab-submit/voc"
)

func (f *Fetcher) extractRelease(ctx context.Context, rel voc.Release) error {
	archive := f.ArchivePath(rel)
	in, err := os.Open(archive)
	if err != nil {
		return fmt.Errorf("localdata: couldn't open archive %s: %w", archive, err)
	}
	defer in.Close()

	return extractTar(ctx, in, f.StorePath)
}

// extractTar unpacks a tar stream under dest, refusing entries that would
// escape it.
func extractTar(ctx context.Context, r io.Reader, dest string) error {
	tr := tar.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			return context.Cause(ctx)
		}

		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("localdata: corrupt tar stream: %w", err)
		}

		target, err := sanitizePath(dest, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0750); err != nil {
				return fmt.Errorf("localdata: couldn't create directory %s: %w", target, err)
			}

		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
				return fmt.Errorf("localdata: couldn't create directory for %s: %w", target, err)
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(hdr.Mode)&0755)
			if err != nil {
				return fmt.Errorf("localdata: couldn't create file %s: %w", target, err)
			}
			_, err = io.Copy(out, tr)
			if cerr := out.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("localdata: couldn't write file %s: %w", target, err)
			}

		case tar.TypeSymlink:
			if filepath.IsAbs(hdr.Linkname) {
				return fmt.Errorf("localdata: refusing absolute symlink %s -> %s", hdr.Name, hdr.Linkname)
			}
			if _, err := sanitizePath(filepath.Dir(target), hdr.Linkname); err != nil {
				return fmt.Errorf("localdata: refusing escaping symlink %s -> %s", hdr.Name, hdr.Linkname)
			}
			if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
				return fmt.Errorf("localdata: couldn't create directory for %s: %w", target, err)
			}
			if err := os.Symlink(hdr.Linkname, target); err != nil && !os.IsExist(err) {
				return fmt.Errorf("localdata: couldn't create symlink %s: %w", target, err)
			}

		default:
			// devkit tarballs only carry dirs, files and the odd symlink;
			// anything else is suspicious enough to skip.
			continue
		}
	}
}

func sanitizePath(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	rel, err := filepath.Rel(dest, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("localdata: tar entry escapes extraction root: %q", name)
	}
	return target, nil
}
