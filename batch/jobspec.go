package batch

import (
	"fmt"
	"os"
	"strings"
)

// JobSpec describes one training job: where it runs (LSF directives) and
// what it runs (interpreter, script, hyperparameters).
type JobSpec struct {
	// JobName sets #BSUB -J; optional.
	JobName string

	// Queue is the LSF queue, e.g. gpu_v100.
	Queue string

	// Host pins the job to a machine via #BSUB -m; optional.
	Host string

	// NumGPUs is the #BSUB -gpu "num=N" request.
	NumGPUs int

	// StdoutFile / StderrFile set #BSUB -o / -e; optional.
	StdoutFile string
	StderrFile string

	// Python is the interpreter; Script the training entry point.
	Python string
	Script string

	Train TrainOptions
}

// DefaultJobSpec reproduces the original submission: one V100 on gpu07.
func DefaultJobSpec() JobSpec {
	return JobSpec{
		Queue:   "gpu_v100",
		Host:    "gpu07",
		NumGPUs: 1,
		Python:  "python",
		Script:  "main.py",
		Train:   DefaultTrainOptions(),
	}
}

// Validate checks the scheduler side, then the training options.
func (s JobSpec) Validate() error {
	if s.Queue == "" {
		return fmt.Errorf("batch: queue must not be empty")
	}
	if s.NumGPUs < 1 {
		return fmt.Errorf("batch: gpu count must be at least 1, got %d", s.NumGPUs)
	}
	if s.Python == "" {
		return fmt.Errorf("batch: python interpreter must not be empty")
	}
	if s.Script == "" {
		return fmt.Errorf("batch: training script must not be empty")
	}

	if err := s.Train.Validate(); err != nil {
		return fmt.Errorf("batch: invalid training options: %w", err)
	}

	return nil
}

// Argv is the full command line: interpreter, script, then training flags.
func (s JobSpec) Argv() []string {
	return append([]string{s.Python, s.Script}, s.Train.Args()...)
}

// CommandLine is Argv joined for display and for the batch script.
func (s JobSpec) CommandLine() string {
	return strings.Join(s.Argv(), " ")
}

// Env returns the parent environment with CUDA_VISIBLE_DEVICES pinned to the
// job's GPU id.  An existing entry is replaced, not shadowed, so the child
// never sees two values.
func (s JobSpec) Env() []string {
	return mergeEnv(os.Environ(), "CUDA_VISIBLE_DEVICES", s.Train.GPUID)
}

func mergeEnv(environ []string, key, value string) []string {
	merged := make([]string, 0, len(environ)+1)
	replaced := false
	for _, kv := range environ {
		if strings.HasPrefix(kv, key+"=") {
			merged = append(merged, key+"="+value)
			replaced = true
			continue
		}
		merged = append(merged, kv)
	}
	if !replaced {
		merged = append(merged, key+"="+value)
	}
	return merged
}
