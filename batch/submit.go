package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// bsub acknowledges a submission with e.g.
//   Job <2163> is submitted to queue <gpu_v100>.
var bsubAckRe = regexp.MustCompile(`Job <(\d+)> is submitted to (?:default )?queue <([^>]+)>`)

// Receipt records what we handed to the scheduler.  It's written into the
// store so a submission can be audited (or resubmitted) later.
type Receipt struct {
	JobID       string    `yaml:"job-id"`
	Queue       string    `yaml:"queue"`
	Host        string    `yaml:"host,omitempty"`
	NumGPUs     int       `yaml:"num-gpus"`
	Env         []string  `yaml:"env"`
	CommandLine string    `yaml:"command"`
	Script      string    `yaml:"script"`
	SubmittedAt time.Time `yaml:"submitted-at"`
}

// Submit renders the job script, pipes it to bsub's stdin, and parses the
// job ID out of the acknowledgement line.
func Submit(ctx context.Context, spec JobSpec) (Receipt, error) {
	script, err := spec.RenderScript()
	if err != nil {
		return Receipt{}, err
	}

	cmd := exec.CommandContext(ctx, "bsub")
	cmd.Stdin = strings.NewReader(script)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Receipt{}, fmt.Errorf("batch: bsub rejected the job: %s: %w",
				strings.TrimSpace(string(exitErr.Stderr)), err)
		}
		return Receipt{}, fmt.Errorf("batch: couldn't run bsub: %w", err)
	}

	m := bsubAckRe.FindStringSubmatch(string(out))
	if m == nil {
		return Receipt{}, fmt.Errorf("batch: unrecognised bsub output: %q", strings.TrimSpace(string(out)))
	}

	return Receipt{
		JobID:       m[1],
		Queue:       m[2],
		Host:        spec.Host,
		NumGPUs:     spec.NumGPUs,
		Env:         []string{"CUDA_VISIBLE_DEVICES=" + spec.Train.GPUID},
		CommandLine: spec.CommandLine(),
		Script:      script,
		SubmittedAt: time.Now().UTC(),
	}, nil
}

// WriteReceipt stores the receipt as <store>/jobs/<job>-<id>.yaml.
func WriteReceipt(storePath string, r Receipt) (string, error) {
	jobsDir := filepath.Join(storePath, "jobs")
	if err := os.MkdirAll(jobsDir, 0750); err != nil {
		return "", fmt.Errorf("batch: couldn't create receipts directory %s: %w", jobsDir, err)
	}

	name := fmt.Sprintf("%s-%s.yaml", r.SubmittedAt.Format("20060102-150405"), r.JobID)
	dest := filepath.Join(jobsDir, name)

	contents, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("batch: couldn't marshal receipt: %w", err)
	}

	if err := os.WriteFile(dest, contents, 0640); err != nil {
		return "", fmt.Errorf("batch: couldn't write receipt %s: %w", dest, err)
	}

	return dest, nil
}
