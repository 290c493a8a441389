package batch

import (
	"fmt"
	"strconv"
	"strings"
)

// KnownModels are the architectures main.py accepts for --model.
var KnownModels = []string{
	"deeplabv3_resnet50",
	"deeplabv3plus_resnet50",
	"deeplabv3_resnet101",
	"deeplabv3plus_resnet101",
	"deeplabv3_mobilenet",
	"deeplabv3plus_mobilenet",
}

// TrainOptions are the hyperparameters forwarded to the training script.
// Args() reproduces them in the exact flag order the launch scripts have
// always used, so diffs against old job logs stay trivial.
type TrainOptions struct {
	Model        string
	GPUID        string
	Year         string
	CropVal      bool
	LR           float64
	CropSize     int
	BatchSize    int
	OutputStride int

	// ExtraArgs are appended verbatim after the known flags.
	ExtraArgs []string
}

// DefaultTrainOptions returns the launch configuration of the original
// gpu_v100 job.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		Model:        "deeplabv3plus_resnet101",
		GPUID:        "0",
		Year:         "2012_aug",
		CropVal:      true,
		LR:           0.01,
		CropSize:     513,
		BatchSize:    16,
		OutputStride: 16,
	}
}

// Validate sanity-checks the options before we go near a scheduler.
func (o TrainOptions) Validate() error {
	known := false
	for _, m := range KnownModels {
		if o.Model == m {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("batch: unknown model %q (known: %s)", o.Model, strings.Join(KnownModels, ", "))
	}

	if o.GPUID == "" {
		return fmt.Errorf("batch: gpu id must not be empty")
	}
	if o.LR <= 0 {
		return fmt.Errorf("batch: learning rate must be positive, got %v", o.LR)
	}
	if o.CropSize < 1 {
		return fmt.Errorf("batch: crop size must be positive, got %d", o.CropSize)
	}
	if o.BatchSize < 1 {
		return fmt.Errorf("batch: batch size must be positive, got %d", o.BatchSize)
	}
	if o.OutputStride != 8 && o.OutputStride != 16 {
		return fmt.Errorf("batch: output stride must be 8 or 16, got %d", o.OutputStride)
	}

	return nil
}

// Args renders the argv tail passed to the training script.  --crop_val is a
// bare boolean flag: present when set, absent otherwise.
func (o TrainOptions) Args() []string {
	args := []string{
		"--model", o.Model,
		"--gpu_id", o.GPUID,
		"--year", o.Year,
	}

	if o.CropVal {
		args = append(args, "--crop_val")
	}

	args = append(args,
		"--lr", strconv.FormatFloat(o.LR, 'g', -1, 64),
		"--crop_size", strconv.Itoa(o.CropSize),
		"--batch_size", strconv.Itoa(o.BatchSize),
		"--output_stride", strconv.Itoa(o.OutputStride),
	)

	return append(args, o.ExtraArgs...)
}
