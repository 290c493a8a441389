package localdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhizhangxian/deeplab-submit/voc"
)

// scaffoldVOC builds a minimal extracted 2012 tree with the given split and
// sample files.
func scaffoldVOC(t *testing.T, store string, split string, images, masks []string) {
	t.Helper()

	devkit := filepath.Join(store, "VOCdevkit", "VOC2012")
	for _, dir := range []string{"JPEGImages", "SegmentationClass", filepath.Join("ImageSets", "Segmentation")} {
		if err := os.MkdirAll(filepath.Join(devkit, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}

	splitFile := filepath.Join(devkit, "ImageSets", "Segmentation", "train.txt")
	if err := os.WriteFile(splitFile, []byte(split), 0644); err != nil {
		t.Fatal(err)
	}

	for _, id := range images {
		if err := os.WriteFile(filepath.Join(devkit, "JPEGImages", id+".jpg"), []byte("jpg"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	for _, id := range masks {
		if err := os.WriteFile(filepath.Join(devkit, "SegmentationClass", id+".png"), []byte("png"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestVerifyTreeComplete(t *testing.T) {
	store := t.TempDir()
	ids := []string{"2007_000032", "2007_000039"}
	scaffoldVOC(t, store, strings.Join(ids, "\n")+"\n", ids, ids)

	rel, _ := voc.Lookup("2012")
	report, err := VerifyTree(store, rel, "train")
	if err != nil {
		t.Fatalf("VerifyTree() failed: %v", err)
	}

	if report.Samples != 2 {
		t.Errorf("Samples = %d, want 2", report.Samples)
	}
	if !report.OK() {
		t.Errorf("report not OK: %+v", report)
	}
}

func TestVerifyTreeReportsMissing(t *testing.T) {
	store := t.TempDir()
	scaffoldVOC(t, store,
		"2007_000032\n2007_000039\n",
		[]string{"2007_000032"},                 // second image missing
		[]string{"2007_000032", "2007_000039"}) // masks all present

	rel, _ := voc.Lookup("2012")
	report, err := VerifyTree(store, rel, "train")
	if err != nil {
		t.Fatalf("VerifyTree() failed: %v", err)
	}

	if report.OK() {
		t.Fatal("report claims OK despite a missing image")
	}
	if len(report.MissingImages) != 1 || report.MissingImages[0] != "2007_000039" {
		t.Errorf("MissingImages = %v", report.MissingImages)
	}
	if len(report.MissingMasks) != 0 {
		t.Errorf("MissingMasks = %v", report.MissingMasks)
	}
}

func TestVerifyTreeMissingDevkit(t *testing.T) {
	rel, _ := voc.Lookup("2012")
	_, err := VerifyTree(t.TempDir(), rel, "train")
	if err == nil {
		t.Fatal("VerifyTree() accepted an empty store")
	}
	if !strings.Contains(err.Error(), "dataset fetch") {
		t.Errorf("error should point at 'dataset fetch': %v", err)
	}
}

func TestVerifyTreeAugRequiresAugMasks(t *testing.T) {
	store := t.TempDir()
	scaffoldVOC(t, store, "2007_000032\n", []string{"2007_000032"}, []string{"2007_000032"})

	rel, _ := voc.Lookup("2012_aug")
	_, err := VerifyTree(store, rel, "train")
	if err == nil {
		t.Fatal("VerifyTree() accepted 2012_aug without SegmentationClassAug")
	}
	if !strings.Contains(err.Error(), "SegmentationClassAug") {
		t.Errorf("unexpected error: %v", err)
	}
}
