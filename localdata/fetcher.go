package localdata

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/vbauerster/mpb/v8"
	"golang.org/x/sync/errgroup"

	"github.com/zhizhangxian/deeplab-submit/voc"
)

// Fetcher downloads VOC release tarballs into the local store, verifies
// them, and (optionally) unpacks them.
type Fetcher struct {
	StorePath string
	Workers   int

	// Client performs the HTTP requests - you can substitute VCR or whatnot.
	Client *http.Client

	// AlwaysDownload skips the cached-archive check.
	AlwaysDownload bool

	// Extract unpacks each verified tarball under StorePath.
	Extract bool

	// ProgressOutput is where the bars render; nil means stdout.
	ProgressOutput io.Writer

	Logger *log.Logger
}

// FetchOutcome says what happened to one release.
type FetchOutcome int

const (
	Downloaded FetchOutcome = iota
	SkippedCached
)

// FetchReleases grabs every requested release, a worker per tarball, with a
// progress bar each.  Any failure cancels the remaining downloads.
func (f *Fetcher) FetchReleases(ctx context.Context, releases []voc.Release) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if f.Client == nil {
		f.Client = &http.Client{}
	}
	if f.Logger == nil {
		f.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	stat, err := os.Stat(f.StorePath)
	if err != nil {
		return fmt.Errorf("localdata: cannot stat '%s': %w", f.StorePath, err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("localdata: local store path not a directory: '%s'", f.StorePath)
	}

	grp, gctx := errgroup.WithContext(ctx)
	workers := f.Workers
	if workers < 1 {
		workers = 1
	}
	grp.SetLimit(workers)

	barOpts := []mpb.ContainerOption{mpb.WithWidth(64)}
	if f.ProgressOutput != nil {
		barOpts = append(barOpts, mpb.WithOutput(f.ProgressOutput))
	}
	progress := mpb.NewWithContext(gctx, barOpts...)

	for _, rel := range releases {
		rel := rel
		grp.Go(func() error {
			outcome, err := f.fetchRelease(gctx, progress, rel)
			if err != nil {
				return fmt.Errorf("localdata: fetching VOC %s failed: %w", rel.Year, err)
			}
			if outcome == SkippedCached {
				f.Logger.Printf("VOC %s: archive already verified, skipping download.\n", rel.Year)
			}

			if f.Extract {
				if err := f.extractRelease(gctx, rel); err != nil {
					return fmt.Errorf("localdata: extracting VOC %s failed: %w", rel.Year, err)
				}
				f.Logger.Printf("VOC %s: extracted to %s.\n", rel.Year, f.StorePath)
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return err
	}

	// wait for the bars to complete and flush
	progress.Wait()

	return nil
}
