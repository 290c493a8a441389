package localdata

import (
	"fmt"
	"os"

	"github.com/zhizhangxian/deeplab-submit/voc"
)

// VerifyReport summarises a dataset-tree check.
type VerifyReport struct {
	Samples       int
	MissingImages []string
	MissingMasks  []string
}

// OK is true when every sample in the split has both its image and mask.
func (r VerifyReport) OK() bool {
	return len(r.MissingImages) == 0 && len(r.MissingMasks) == 0
}

// VerifyTree checks an extracted release: devkit present, split file
// readable, and an image/mask pair on disk for every split entry.  For the
// augmented 2012 training set this implies SegmentationClassAug and
// train_aug.txt, which are prepared out of band.
func VerifyTree(storePath string, rel voc.Release, imageSet string) (VerifyReport, error) {
	layout, err := voc.ResolveLayout(storePath, rel, imageSet)
	if err != nil {
		return VerifyReport{}, fmt.Errorf("localdata: %w", err)
	}

	if _, err := os.Stat(layout.DevkitDir); err != nil {
		return VerifyReport{}, fmt.Errorf("localdata: dataset not found at %s (run 'dataset fetch' first): %w",
			layout.DevkitDir, err)
	}

	if rel.Aug && imageSet == "train" {
		if _, err := os.Stat(layout.MaskDir); err != nil {
			return VerifyReport{}, fmt.Errorf("localdata: SegmentationClassAug not found, prepare the augmented masks first: %w", err)
		}
	}

	ids, err := voc.ReadSplit(layout.SplitFile)
	if err != nil {
		return VerifyReport{}, fmt.Errorf("localdata: %w", err)
	}

	report := VerifyReport{Samples: len(ids)}
	for _, sample := range layout.SamplePaths(ids) {
		if _, err := os.Stat(sample.Image); err != nil {
			report.MissingImages = append(report.MissingImages, sample.ID)
		}
		if _, err := os.Stat(sample.Mask); err != nil {
			report.MissingMasks = append(report.MissingMasks, sample.ID)
		}
	}

	return report, nil
}
