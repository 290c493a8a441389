package batch

import (
	"reflect"
	"strings"
	"testing"
)

func TestDefaultArgsMatchOriginalLaunch(t *testing.T) {
	got := DefaultTrainOptions().Args()
	want := []string{
		"--model", "deeplabv3plus_resnet101",
		"--gpu_id", "0",
		"--year", "2012_aug",
		"--crop_val",
		"--lr", "0.01",
		"--crop_size", "513",
		"--batch_size", "16",
		"--output_stride", "16",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Args() = %v, want %v", got, want)
	}
}

func TestArgsOmitsCropValWhenUnset(t *testing.T) {
	opts := DefaultTrainOptions()
	opts.CropVal = false

	for _, arg := range opts.Args() {
		if arg == "--crop_val" {
			t.Errorf("Args() contains --crop_val despite CropVal=false: %v", opts.Args())
		}
	}
}

func TestArgsLearningRateFormatting(t *testing.T) {
	cases := []struct {
		lr   float64
		want string
	}{
		{0.01, "0.01"},
		{0.1, "0.1"},
		{0.007, "0.007"},
		{1, "1"},
	}

	for _, tc := range cases {
		opts := DefaultTrainOptions()
		opts.LR = tc.lr

		args := opts.Args()
		found := ""
		for i, arg := range args {
			if arg == "--lr" && i+1 < len(args) {
				found = args[i+1]
			}
		}
		if found != tc.want {
			t.Errorf("lr %v rendered as %q, want %q", tc.lr, found, tc.want)
		}
	}
}

func TestArgsAppendsExtraArgs(t *testing.T) {
	opts := DefaultTrainOptions()
	opts.ExtraArgs = []string{"--ckpt", "checkpoints/best.pth"}

	args := opts.Args()
	tail := args[len(args)-2:]
	if tail[0] != "--ckpt" || tail[1] != "checkpoints/best.pth" {
		t.Errorf("extra args not appended verbatim, got tail %v", tail)
	}
}

func TestValidateRejectsBadOptions(t *testing.T) {
	cases := []struct {
		name   string
		mangle func(*TrainOptions)
		want   string
	}{
		{"unknown model", func(o *TrainOptions) { o.Model = "resnet18" }, "unknown model"},
		{"empty gpu id", func(o *TrainOptions) { o.GPUID = "" }, "gpu id"},
		{"zero lr", func(o *TrainOptions) { o.LR = 0 }, "learning rate"},
		{"negative crop", func(o *TrainOptions) { o.CropSize = -1 }, "crop size"},
		{"zero batch", func(o *TrainOptions) { o.BatchSize = 0 }, "batch size"},
		{"odd stride", func(o *TrainOptions) { o.OutputStride = 12 }, "output stride"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultTrainOptions()
			tc.mangle(&opts)

			err := opts.Validate()
			if err == nil {
				t.Fatalf("Validate() accepted %+v", opts)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() error %q doesn't mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateAcceptsAllKnownModels(t *testing.T) {
	for _, model := range KnownModels {
		opts := DefaultTrainOptions()
		opts.Model = model
		if err := opts.Validate(); err != nil {
			t.Errorf("Validate() rejected known model %s: %v", model, err)
		}
	}
}
