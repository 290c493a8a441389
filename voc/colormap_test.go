package voc

import (
	"reflect"
	"testing"
)

func TestColormapKnownEntries(t *testing.T) {
	cmap := Colormap()

	// spot-check against the published VOC palette.
	cases := map[int]RGB{
		0:   {0, 0, 0},       // background
		1:   {128, 0, 0},     // aeroplane
		2:   {0, 128, 0},     // bicycle
		7:   {128, 128, 128}, // car
		15:  {192, 128, 128}, // person
		20:  {0, 64, 128},    // tvmonitor
		255: {224, 224, 192}, // void/border
	}

	for index, want := range cases {
		if cmap[index] != want {
			t.Errorf("Colormap()[%d] = %v, want %v", index, cmap[index], want)
		}
	}
}

func TestColormapEntriesDistinctForClasses(t *testing.T) {
	cmap := Colormap()
	seen := map[RGB]int{}
	for i := range Classes {
		if prev, dup := seen[cmap[i]]; dup {
			t.Errorf("classes %d and %d share colour %v", prev, i, cmap[i])
		}
		seen[cmap[i]] = i
	}
}

func TestClassesCount(t *testing.T) {
	if len(Classes) != 21 {
		t.Errorf("len(Classes) = %d, want 21 (background + 20 objects)", len(Classes))
	}
	if Classes[0] != "background" || Classes[15] != "person" {
		t.Errorf("classes out of order: %v", Classes)
	}
}

func TestDecodeTarget(t *testing.T) {
	mask := []uint8{0, 15, 255}
	got := DecodeTarget(mask)
	want := []RGB{{0, 0, 0}, {192, 128, 128}, {224, 224, 192}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeTarget(%v) = %v, want %v", mask, got, want)
	}
}
