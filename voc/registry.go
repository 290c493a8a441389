package voc

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Release describes one Pascal VOC trainval distribution.
type Release struct {
	// Year of the challenge, e.g. "2012".
	Year string

	// URL of the trainval tarball on the Oxford mirror.
	URL string

	// Filename to store the tarball under locally.
	Filename string

	// MD5 of the tarball, hex-encoded.
	MD5 string

	// BaseDir is the directory the devkit unpacks to, relative to the
	// extraction root.  2011 nests one level deeper than the others.
	BaseDir string

	// Aug marks the "2012_aug" variant: same tarball as 2012, but training
	// uses the SegmentationClassAug masks and the train_aug split, which the
	// user has to prepare separately.
	Aug bool
}

var releases = map[string]Release{
	"2012": {
		Year:     "2012",
		URL:      "http://host.robots.ox.ac.uk/pascal/VOC/voc2012/VOCtrainval_11-May-2012.tar",
		Filename: "VOCtrainval_11-May-2012.tar",
		MD5:      "6cd6e144f989b92b3379bac3b3de84fd",
		BaseDir:  "VOCdevkit/VOC2012",
	},
	"2011": {
		Year:     "2011",
		URL:      "http://host.robots.ox.ac.uk/pascal/VOC/voc2011/VOCtrainval_25-May-2011.tar",
		Filename: "VOCtrainval_25-May-2011.tar",
		MD5:      "6c3384ef61512963050cb5d687e5bf1e",
		BaseDir:  "TrainVal/VOCdevkit/VOC2011",
	},
	"2010": {
		Year:     "2010",
		URL:      "http://host.robots.ox.ac.uk/pascal/VOC/voc2010/VOCtrainval_03-May-2010.tar",
		Filename: "VOCtrainval_03-May-2010.tar",
		MD5:      "da459979d0c395079b5c75ee67908abb",
		BaseDir:  "VOCdevkit/VOC2010",
	},
	"2009": {
		Year:     "2009",
		URL:      "http://host.robots.ox.ac.uk/pascal/VOC/voc2009/VOCtrainval_11-May-2009.tar",
		Filename: "VOCtrainval_11-May-2009.tar",
		MD5:      "59065e4b188729180974ef6572f6a212",
		BaseDir:  "VOCdevkit/VOC2009",
	},
	"2008": {
		Year:     "2008",
		URL:      "http://host.robots.ox.ac.uk/pascal/VOC/voc2008/VOCtrainval_14-Jul-2008.tar",
		Filename: "VOCtrainval_14-Jul-2008.tar",
		MD5:      "2629fa636546599198acfcfbfcf1904a",
		BaseDir:  "VOCdevkit/VOC2008",
	},
	"2007": {
		Year:     "2007",
		URL:      "http://host.robots.ox.ac.uk/pascal/VOC/voc2007/VOCtrainval_06-Nov-2007.tar",
		Filename: "VOCtrainval_06-Nov-2007.tar",
		MD5:      "c52e279531787c972589f7e41ab4ae64",
		BaseDir:  "VOCdevkit/VOC2007",
	},
}

// Years returns all known release years, sorted, with the augmented 2012
// variant listed last.
func Years() []string {
	years := maps.Keys(releases)
	sort.Strings(years)
	return append(years, "2012_aug")
}

// Lookup resolves a year string (2007..2012, or "2012_aug") to its Release.
func Lookup(year string) (Release, error) {
	y := year
	aug := false
	if y == "2012_aug" {
		y = "2012"
		aug = true
	}

	rel, ok := releases[y]
	if !ok {
		return Release{}, fmt.Errorf("voc: unknown dataset year %q (known: %s)",
			year, strings.Join(Years(), ", "))
	}

	rel.Aug = aug
	return rel, nil
}
