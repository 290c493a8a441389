package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/dnaeon/go-vcr.v3/recorder"

	"github.com/zhizhangxian/deeplab-submit/localdata"
	"github.com/zhizhangxian/deeplab-submit/voc"
)

var fetchUsage = strings.TrimSpace(`
Download the VOC trainval tarball(s) into the local store, verify their MD5
checksums, and unpack them.  An archive that is already present with a good
checksum is not downloaded again unless you pass --always-download.
`)

var (
	FetchYears     []string
	AlwaysDownload bool
	WithVCR        bool
	Extract        bool
	FetchWorkers   int
)

var datasetFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and unpack VOC release tarballs",
	Long:  fetchUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		debugLog("  AlwaysDownload: %v\n", AlwaysDownload)

		storePath, err := expandedStore()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(storePath, 0750); err != nil {
			return fmt.Errorf("cmd: couldn't create store directory %s: %w", storePath, err)
		}

		// resolve years, deduping by tarball (2012 and 2012_aug share one).
		seen := map[string]bool{}
		releases := []voc.Release{}
		for _, year := range FetchYears {
			rel, err := voc.Lookup(year)
			if err != nil {
				return fmt.Errorf("cmd: %w", err)
			}
			if seen[rel.Filename] {
				continue
			}
			seen[rel.Filename] = true
			releases = append(releases, rel)
		}

		fetcher := localdata.Fetcher{
			StorePath:      storePath,
			Workers:        FetchWorkers,
			Client:         &http.Client{},
			AlwaysDownload: AlwaysDownload,
			Extract:        Extract,
			Logger:         log.New(os.Stderr, "", log.LstdFlags),
		}

		if WithVCR {
			// set up VCR recordings.
			opts := &recorder.Options{
				CassetteName:       "fixtures/voc-archives",
				Mode:               recorder.ModeReplayWithNewEpisodes,
				SkipRequestLatency: true,
				RealTransport:      http.DefaultTransport,
			}
			r, err := recorder.NewWithOptions(opts)
			if err != nil {
				return fmt.Errorf("cmd: couldn't set up go-vcr recording: %w", err)
			}

			defer r.Stop() // Make sure recorder is stopped once done with it
			r.SetReplayableInteractions(true)

			fetcher.Client = r.GetDefaultClient()
		}

		if err := fetcher.FetchReleases(cmd.Context(), releases); err != nil {
			return fmt.Errorf("cmd: dataset fetch failed: %w", err)
		}

		return nil
	},
}

func init() {
	datasetCmd.AddCommand(datasetFetchCmd)

	datasetFetchCmd.Flags().StringSliceVar(&FetchYears, "years", []string{"2012"}, "dataset years to fetch")
	datasetFetchCmd.Flags().BoolVarP(&AlwaysDownload, "always-download", "f", false, "always download archives, skipping checksum check")
	datasetFetchCmd.Flags().BoolVar(&WithVCR, "with-vcr", false, "use go-vcr to cache responses")
	datasetFetchCmd.Flags().BoolVar(&Extract, "extract", true, "unpack verified archives into the store")
	datasetFetchCmd.Flags().IntVar(&FetchWorkers, "workers", 2, "concurrent downloads")
}
