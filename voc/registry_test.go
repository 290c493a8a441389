package voc

import (
	"sort"
	"strings"
	"testing"
)

func TestLookupPlainYears(t *testing.T) {
	for _, year := range []string{"2007", "2008", "2009", "2010", "2011", "2012"} {
		rel, err := Lookup(year)
		if err != nil {
			t.Errorf("Lookup(%s) failed: %v", year, err)
			continue
		}
		if rel.Year != year {
			t.Errorf("Lookup(%s).Year = %s", year, rel.Year)
		}
		if rel.Aug {
			t.Errorf("Lookup(%s) is unexpectedly augmented", year)
		}
		if !strings.Contains(rel.URL, "voc"+year) {
			t.Errorf("Lookup(%s) has suspicious URL %s", year, rel.URL)
		}
		if len(rel.MD5) != 32 {
			t.Errorf("Lookup(%s) has malformed MD5 %q", year, rel.MD5)
		}
	}
}

func TestLookupAugmented(t *testing.T) {
	rel, err := Lookup("2012_aug")
	if err != nil {
		t.Fatalf("Lookup(2012_aug) failed: %v", err)
	}

	plain, err := Lookup("2012")
	if err != nil {
		t.Fatalf("Lookup(2012) failed: %v", err)
	}

	// same tarball, different training layout.
	if !rel.Aug {
		t.Error("Lookup(2012_aug).Aug = false")
	}
	if rel.URL != plain.URL || rel.MD5 != plain.MD5 || rel.Filename != plain.Filename {
		t.Errorf("2012_aug must share the 2012 tarball, got %+v vs %+v", rel, plain)
	}
}

func TestLookupUnknownYear(t *testing.T) {
	_, err := Lookup("2013")
	if err == nil {
		t.Fatal("Lookup(2013) succeeded")
	}
	if !strings.Contains(err.Error(), "2012_aug") {
		t.Errorf("error %q should list the known years", err)
	}
}

func TestYearsSortedWithAugLast(t *testing.T) {
	years := Years()
	if len(years) != 7 {
		t.Fatalf("Years() returned %d entries, want 7: %v", len(years), years)
	}
	if years[len(years)-1] != "2012_aug" {
		t.Errorf("Years() should list 2012_aug last: %v", years)
	}
	plain := years[:len(years)-1]
	if !sort.StringsAreSorted(plain) {
		t.Errorf("Years() not sorted: %v", plain)
	}
}

func Test2011NestsDeeper(t *testing.T) {
	rel, _ := Lookup("2011")
	if rel.BaseDir != "TrainVal/VOCdevkit/VOC2011" {
		t.Errorf("2011 base dir = %s, want TrainVal/VOCdevkit/VOC2011", rel.BaseDir)
	}
}
