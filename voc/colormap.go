package voc

// Classes are the Pascal VOC segmentation classes, index 0 being background.
// Mask value 255 marks the void/border region.
var Classes = []string{
	"background",
	"aeroplane",
	"bicycle",
	"bird",
	"boat",
	"bottle",
	"bus",
	"car",
	"cat",
	"chair",
	"cow",
	"diningtable",
	"dog",
	"horse",
	"motorbike",
	"person",
	"pottedplant",
	"sheep",
	"sofa",
	"train",
	"tvmonitor",
}

// RGB is one palette entry.
type RGB struct {
	R, G, B uint8
}

// Colormap generates the 256-entry VOC label palette.  Each class index is
// expanded bit by bit into the colour channels, three bits per round, so
// consecutive labels get visually distinct colours.
func Colormap() [256]RGB {
	var cmap [256]RGB
	for i := range cmap {
		var r, g, b uint8
		c := i
		for j := 0; j < 8; j++ {
			r |= uint8(c&1) << (7 - j)
			g |= uint8(c>>1&1) << (7 - j)
			b |= uint8(c>>2&1) << (7 - j)
			c >>= 3
		}
		cmap[i] = RGB{r, g, b}
	}
	return cmap
}

// DecodeTarget maps a segmentation mask of class indexes to palette colours.
func DecodeTarget(mask []uint8) []RGB {
	cmap := Colormap()
	out := make([]RGB, len(mask))
	for i, class := range mask {
		out[i] = cmap[class]
	}
	return out
}
