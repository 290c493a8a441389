package localdata

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/zhizhangxian/deeplab-submit/voc"
)

// ArchivePath is where a release tarball lives in the store.
func (f *Fetcher) ArchivePath(rel voc.Release) string {
	return filepath.Join(f.StorePath, rel.Filename)
}

func (f *Fetcher) fetchRelease(ctx context.Context, progress *mpb.Progress, rel voc.Release) (FetchOutcome, error) {
	dest := f.ArchivePath(rel)

	if !f.AlwaysDownload {
		ok, err := archiveVerified(dest, rel.MD5)
		if err != nil {
			return 0, fmt.Errorf("localdata: couldn't check cached archive: %w", err)
		}
		if ok {
			return SkippedCached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rel.URL, nil)
	if err != nil {
		return 0, fmt.Errorf("localdata: couldn't instantiate http request: %w", err)
	}

	response, err := f.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("localdata: couldn't perform http request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("localdata: unexpected HTTP response status for %s: %s", rel.URL, response.Status)
	}

	bar := progress.AddBar(response.ContentLength,
		mpb.PrependDecorators(
			decor.Name(fmt.Sprintf("VOC %s:", rel.Year),
				decor.WC{C: decor.DindentRight | decor.DextraSpace}),
		),
		mpb.AppendDecorators(
			decor.CountersKibiByte("% .2f / % .2f "),
			decor.NewPercentage("%d"),
		),
		mpb.BarRemoveOnComplete(),
	)

	// download to a .partial file first, rename only once the checksum holds.
	partial := dest + ".partial"
	out, err := os.Create(partial)
	if err != nil {
		return 0, fmt.Errorf("localdata: couldn't create file %s: %w", partial, err)
	}

	hash := md5.New()
	reader := bar.ProxyReader(response.Body)
	_, err = io.Copy(io.MultiWriter(out, hash), reader)
	reader.Close()
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		bar.Abort(true)
		return 0, fmt.Errorf("localdata: download of %s failed: %w", rel.URL, err)
	}

	sum := hex.EncodeToString(hash.Sum(nil))
	if sum != rel.MD5 {
		// keep the .partial around for inspection.
		return 0, fmt.Errorf("localdata: checksum mismatch for %s: got %s, want %s (kept %s)",
			rel.Filename, sum, rel.MD5, partial)
	}

	if err := os.Rename(partial, dest); err != nil {
		return 0, fmt.Errorf("localdata: couldn't move %s into place: %w", partial, err)
	}

	return Downloaded, nil
}

// archiveVerified reports whether the archive already exists with the right
// checksum.
func archiveVerified(path string, wantMD5 string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if fi.IsDir() {
		return false, fmt.Errorf("localdata: archive path is a directory: %s", path)
	}

	sum, err := fileMD5(path)
	if err != nil {
		return false, err
	}

	return sum == wantMD5, nil
}

func fileMD5(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("localdata: couldn't open %s: %w", path, err)
	}
	defer in.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, in); err != nil {
		return "", fmt.Errorf("localdata: couldn't hash %s: %w", path, err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
