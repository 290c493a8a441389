package voc

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Layout resolves the directories of an extracted release under root.
type Layout struct {
	// Root of the devkit, e.g. <store>/VOCdevkit/VOC2012.
	DevkitDir string

	ImageDir string
	MaskDir  string

	// SplitFile lists the sample IDs for one image set.
	SplitFile string
}

// ResolveLayout computes where images, masks and the split file live for a
// given image set ("train", "trainval" or "val").  For the augmented 2012
// variant the training masks come from SegmentationClassAug and the split is
// train_aug.txt; everything else uses the stock devkit layout.
func ResolveLayout(root string, rel Release, imageSet string) (Layout, error) {
	switch imageSet {
	case "train", "trainval", "val":
	default:
		return Layout{}, fmt.Errorf("voc: unknown image set %q (use train, trainval or val)", imageSet)
	}

	devkit := filepath.Join(root, filepath.FromSlash(rel.BaseDir))
	splitsDir := filepath.Join(devkit, "ImageSets", "Segmentation")

	l := Layout{
		DevkitDir: devkit,
		ImageDir:  filepath.Join(devkit, "JPEGImages"),
		MaskDir:   filepath.Join(devkit, "SegmentationClass"),
		SplitFile: filepath.Join(splitsDir, imageSet+".txt"),
	}

	if rel.Aug && imageSet == "train" {
		l.MaskDir = filepath.Join(devkit, "SegmentationClassAug")
		l.SplitFile = filepath.Join(splitsDir, "train_aug.txt")
	}

	return l, nil
}

// ReadSplit parses a split file into sample IDs, one per line, skipping
// blanks.
func ReadSplit(splitFile string) ([]string, error) {
	f, err := os.Open(splitFile)
	if err != nil {
		return nil, fmt.Errorf("voc: couldn't open split file: %w", err)
	}
	defer f.Close()

	ids := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("voc: couldn't read split file %s: %w", splitFile, err)
	}

	return ids, nil
}

// Sample is one image/mask pair.
type Sample struct {
	ID    string
	Image string
	Mask  string
}

// SamplePaths pairs each split ID with its JPEG image and PNG mask.
func (l Layout) SamplePaths(ids []string) []Sample {
	samples := make([]Sample, 0, len(ids))
	for _, id := range ids {
		samples = append(samples, Sample{
			ID:    id,
			Image: filepath.Join(l.ImageDir, id+".jpg"),
			Mask:  filepath.Join(l.MaskDir, id+".png"),
		})
	}
	return samples
}
