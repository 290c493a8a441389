package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/fatih/structs"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var (
	// Store the result of binding cobra flags
	Config string
	Debug  bool

	// ConfigActual is the resolved config path after env/homedir expansion.
	ConfigActual string

	// LocalStore is where archives, extracted datasets and job receipts live.
	LocalStore string

	ParsedConfig YamlConfig
)

// Build the cobra command that handles our command line tool.
var rootCmd = &cobra.Command{
	Use:   "deeplab-submit",
	Short: "Prepare Pascal VOC data and launch DeepLab training jobs",
	Long: `
Submit DeepLabV3+ training runs to an LSF GPU queue (or run them locally), and
fetch/verify the Pascal VOC segmentation data they train on.  The default job
is the classic one-V100 run: deeplabv3plus_resnet101 on VOC 2012_aug.
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// You can bind cobra and viper in a few locations, but PersistentPreRunE on the root command works well
		if err := initializeConfig(cmd); err != nil {
			return fmt.Errorf("deeplab-submit: failed to initialise config: %w", err)
		}
		return nil
	},
}

func init() {
	// Define cobra flags, the default value has the lowest (least significant) precedence
	rootCmd.PersistentFlags().StringVar(&Config, "config", "", "config file location (default: ~/.config/deeplab-submit.yaml, respects DEEPLAB_SUBMIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "display debug output")
	rootCmd.PersistentFlags().StringVar(&LocalStore, "store", "~/datasets", "location for VOC archives, extracted data and job receipts")
}

func initializeConfig(cmd *cobra.Command) error {
	explicit := Config != ""
	if Config == "" {
		// Did the user provide an ENV?
		envConfig := os.Getenv("DEEPLAB_SUBMIT_CONFIG")
		if envConfig != "" {
			Config = envConfig
			explicit = true
		} else {
			// As fallback, search for config in home XDG-ish directory
			Config = "~/.config/deeplab-submit.yaml"
		}
	}
	config, err := homedir.Expand(Config)
	if err != nil {
		return fmt.Errorf("deeplab-submit: unable to expand homedir: %w", err)
	}
	ConfigActual = config

	if _, err := os.Stat(ConfigActual); errors.Is(err, os.ErrNotExist) {
		if explicit {
			return fmt.Errorf("deeplab-submit: specified config file does not exist: %w", err)
		}
		// no config file is fine, the flag defaults cover everything.
		return nil
	}

	yamlFile, err := os.ReadFile(ConfigActual)
	if err != nil {
		return fmt.Errorf("deeplab-submit: error reading config file: %w", err)
	}

	// I'd like to bark if a user sets a flag we don't recognise:
	if err := yaml.UnmarshalStrict(yamlFile, &ParsedConfig); err != nil {
		return fmt.Errorf("deeplab-submit: issue parsing config file: %w", err)
	}

	// Bind the current command's flags to the parsed config
	if err := bindFlags(cmd, ParsedConfig); err != nil {
		return fmt.Errorf("deeplab-submit: failed to bind flags: %w", err)
	}

	return nil
}

type YamlConfig struct {
	CropVal        *bool `yaml:"crop-val"`
	AlwaysDownload *bool `yaml:"always-download"`
	WithVCR        *bool `yaml:"with-vcr"`
	Extract        *bool `yaml:"extract"`

	StorePath   string `yaml:"store"`
	Queue       string `yaml:"queue"`
	Host        string `yaml:"host"`
	JobName     string `yaml:"job-name"`
	Python      string `yaml:"python"`
	TrainScript string `yaml:"train-script"`
	Model       string `yaml:"model"`
	GPUID       string `yaml:"gpu-id"`
	Year        string `yaml:"year"`

	NumGPUs      int `yaml:"num-gpus"`
	Workers      int `yaml:"workers"`
	CropSize     int `yaml:"crop-size"`
	BatchSize    int `yaml:"batch-size"`
	OutputStride int `yaml:"output-stride"`

	LR float64 `yaml:"lr"`

	Years []string `yaml:"years"`
}

// Bind each config field to the cobra flag of the same name, unless the user
// set the flag on the command line.
func bindFlags(cmd *cobra.Command, v YamlConfig) error {
	for _, field := range structs.Fields(v) {
		key := field.Tag("yaml")
		if key == "" {
			return fmt.Errorf("deeplab-submit: could not retrieve struct tag 'yaml'")
		}
		if flag := cmd.Flag(key); flag == nil {
			// hmm... the flag is unknown.  but that can legitimately happen if you're running
			// e.g. `dataset list` which has no `batch-size` flag but your YAML file does
			// define that key...
			continue
		}
		if !cmd.Flags().Changed(key) {
			switch field.Kind() {
			case reflect.Ptr:
				// err, this is crappy, but i know YamlConfig only uses pointers for bools.....
				b, ok := field.Value().(*bool)
				if !ok {
					return fmt.Errorf("deeplab-submit: found unrecognised field: %+v", field)
				}
				if b != nil {
					cmd.Flags().Set(key, fmt.Sprintf("%v", *b))
				}

			case reflect.String:
				s, ok := field.Value().(string)
				if !ok {
					return fmt.Errorf("deeplab-submit: found unrecognised field: %+v", field)
				}
				if s != "" {
					cmd.Flags().Set(key, s)
				}

			case reflect.Int:
				n, ok := field.Value().(int)
				if !ok {
					return fmt.Errorf("deeplab-submit: found unrecognised field: %+v", field)
				}
				if n != 0 {
					cmd.Flags().Set(key, fmt.Sprintf("%d", n))
				}

			case reflect.Float64:
				f, ok := field.Value().(float64)
				if !ok {
					return fmt.Errorf("deeplab-submit: found unrecognised field: %+v", field)
				}
				if f != 0 {
					cmd.Flags().Set(key, fmt.Sprintf("%v", f))
				}

			case reflect.Slice:
				ss, ok := field.Value().([]string)
				if !ok {
					return fmt.Errorf("deeplab-submit: found unrecognised field: %+v", field)
				}
				for _, s := range ss {
					// yes, repeatedly calling Set() appends to the slice...
					cmd.Flags().Set(key, s)
				}

			default:
				return fmt.Errorf("deeplab-submit: found unrecognised field: %+v", field)
			}
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("deeplab-submit: execution error: %w", err)
	}

	return nil
}
