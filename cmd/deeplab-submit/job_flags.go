package main

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/zhizhangxian/deeplab-submit/batch"
)

// Shared flag storage for the job-building commands (submit, run, script).
var (
	JobName string
	Queue   string
	Host    string
	NumGPUs int

	Python      string
	TrainScript string

	Model        string
	GPUID        string
	Year         string
	CropVal      bool
	LR           float64
	CropSize     int
	BatchSize    int
	OutputStride int
)

// addJobFlags registers the scheduler and hyperparameter flags, defaulted to
// the original gpu_v100 submission.
func addJobFlags(cmd *cobra.Command) {
	def := batch.DefaultJobSpec()

	cmd.Flags().StringVarP(&JobName, "job-name", "J", "", "LSF job name (#BSUB -J)")
	cmd.Flags().StringVar(&Queue, "queue", def.Queue, "LSF queue to submit to (#BSUB -q)")
	cmd.Flags().StringVar(&Host, "host", def.Host, "pin the job to a host (#BSUB -m)")
	cmd.Flags().IntVar(&NumGPUs, "num-gpus", def.NumGPUs, "GPUs to request (#BSUB -gpu num=N)")

	cmd.Flags().StringVar(&Python, "python", def.Python, "python interpreter")
	cmd.Flags().StringVar(&TrainScript, "train-script", def.Script, "training entry point")

	cmd.Flags().StringVar(&Model, "model", def.Train.Model, "model architecture")
	cmd.Flags().StringVar(&GPUID, "gpu-id", def.Train.GPUID, "value for CUDA_VISIBLE_DEVICES and --gpu_id")
	cmd.Flags().StringVar(&Year, "year", def.Train.Year, "dataset year")
	cmd.Flags().BoolVar(&CropVal, "crop-val", def.Train.CropVal, "crop validation images")
	cmd.Flags().Float64Var(&LR, "lr", def.Train.LR, "learning rate")
	cmd.Flags().IntVar(&CropSize, "crop-size", def.Train.CropSize, "training crop size")
	cmd.Flags().IntVar(&BatchSize, "batch-size", def.Train.BatchSize, "training batch size")
	cmd.Flags().IntVar(&OutputStride, "output-stride", def.Train.OutputStride, "DeepLab output stride (8 or 16)")
}

// buildJobSpec assembles and validates the JobSpec from current flag values.
func buildJobSpec(extraArgs []string) (batch.JobSpec, error) {
	spec := batch.JobSpec{
		JobName: JobName,
		Queue:   Queue,
		Host:    Host,
		NumGPUs: NumGPUs,
		Python:  Python,
		Script:  TrainScript,
		Train: batch.TrainOptions{
			Model:        Model,
			GPUID:        GPUID,
			Year:         Year,
			CropVal:      CropVal,
			LR:           LR,
			CropSize:     CropSize,
			BatchSize:    BatchSize,
			OutputStride: OutputStride,
			ExtraArgs:    extraArgs,
		},
	}

	if err := spec.Validate(); err != nil {
		return batch.JobSpec{}, err
	}

	return spec, nil
}

// expandedStore resolves the --store flag to an absolute path.
func expandedStore() (string, error) {
	if LocalStore == "" {
		return "", fmt.Errorf("cmd: no location set for the local store, use --store or set it in your config file")
	}

	storePath, err := homedir.Expand(LocalStore)
	if err != nil {
		return "", fmt.Errorf("cmd: couldn't expand homedir: %w", err)
	}

	return storePath, nil
}
