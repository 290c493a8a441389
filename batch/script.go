package batch

import (
	"fmt"
	"strings"
	"text/template"
)

// LSF reads scheduler directives from #BSUB comment lines at the top of the
// submitted script; the shell ignores them.
var scriptTemplate = template.Must(template.New("bsub").Parse(`#!/bin/sh
{{if .JobName}}#BSUB -J {{.JobName}}
{{end}}#BSUB -q {{.Queue}}
{{if .Host}}#BSUB -m {{.Host}}
{{end}}#BSUB -gpu "num={{.NumGPUs}}"
{{if .StdoutFile}}#BSUB -o {{.StdoutFile}}
{{end}}{{if .StderrFile}}#BSUB -e {{.StderrFile}}
{{end}}export CUDA_VISIBLE_DEVICES={{.Train.GPUID}}
{{.CommandLine}}
`))

// RenderScript produces the batch script that gets piped to bsub.
func (s JobSpec) RenderScript() (string, error) {
	if err := s.Validate(); err != nil {
		return "", fmt.Errorf("batch: refusing to render invalid job: %w", err)
	}

	var sb strings.Builder
	if err := scriptTemplate.Execute(&sb, s); err != nil {
		return "", fmt.Errorf("batch: couldn't render job script: %w", err)
	}

	return sb.String(), nil
}
