package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Acurisu/WVG/internal/codec"
	"github.com/Acurisu/WVG/pkg/wvg"
)

var (
	rootCmd = &cobra.Command{
		Use:   "wvg2svg",
		Short: "Convert WVG drawings to SVG",
		Long:  "wvg2svg decodes WVG (wireless vector graphics) binary files and renders them as SVG markup.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configureLogging(verbosity); err != nil {
				return err
			}

			opts := wvg.Options{}
			if configPath != "" {
				loaded, err := loadOptions(configPath)
				if err != nil {
					return err
				}
				opts = loaded
			}
			// Explicit flags win over the config file.
			if cmd.Flags().Changed("pretty") {
				opts.PrettyPrint = pretty
			}
			if cmd.Flags().Changed("line-width-scale") {
				opts.LineWidthScale = lineWidthScale
			}

			return run(inputPath, outputPath, opts)
		},
	}

	inputPath      string
	outputPath     string
	verbosity      string
	configPath     string
	pretty         bool
	lineWidthScale float64
)

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the WVG binary file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "SVG output path (default stdout)")
	rootCmd.Flags().StringVarP(&verbosity, "verbosity", "v", "normal", "log verbosity: quiet, normal or verbose")
	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML render config file")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "indent the SVG markup")
	rootCmd.Flags().Float64Var(&lineWidthScale, "line-width-scale", 1, "stroke width multiplier")
	_ = rootCmd.MarkFlagRequired("input")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func configureLogging(level string) error {
	switch level {
	case "quiet":
		logrus.SetLevel(logrus.WarnLevel)
	case "normal":
		logrus.SetLevel(logrus.InfoLevel)
	case "verbose":
		logrus.SetLevel(logrus.TraceLevel)
	default:
		return fmt.Errorf("unknown verbosity %q (want quiet, normal or verbose)", level)
	}
	return nil
}

func run(input, output string, opts wvg.Options) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	logrus.Infof("read %d bytes from %s", len(data), input)

	result, err := wvg.ToSVG(data, opts)
	if err != nil {
		var perr *codec.ParseError
		if errors.As(err, &perr) {
			return fmt.Errorf("decode %s at bit %d: %w", input, perr.BitOffset, perr.Err)
		}
		return fmt.Errorf("decode %s: %w", input, err)
	}
	logrus.Infof("decoded %d elements into %d primitives", len(result.Document.Elements), len(result.Scene.Primitives))

	if output == "" || output == "-" {
		fmt.Println(result.SVG)
		return nil
	}
	if err := os.WriteFile(output, []byte(result.SVG), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logrus.Infof("wrote %s", output)
	return nil
}
