package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soctools/header2svd/assembler"
	"github.com/soctools/header2svd/docparser"
	"github.com/soctools/header2svd/headerparser"
	"github.com/soctools/header2svd/profile"
	"github.com/soctools/header2svd/renderer"
	"github.com/urfave/cli/v2"
)

var (
	ChipProfileFlag = &cli.StringFlag{
		Name:     "chip-profile",
		Usage:    "Path to the chip profile config file",
		Required: true,
	}
	SOCPathFlag = &cli.PathFlag{
		Name:     "soc-path",
		Usage:    "Directory holding the SDK headers; overrides the profile",
		Required: false,
	}
	OutputPathFlag = &cli.PathFlag{
		Name:     "output-path",
		Usage:    "File path for the generated SVD document. Default: <device>.svd",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "format of the extraction report. Options: json, text",
		Required:    false,
		DefaultText: "text",
	}
	ReportOutputPathFlag = &cli.PathFlag{
		Name:     "report-output-path",
		Usage:    "output file path for the extraction report. Default: stdout",
		Required: false,
	}
)

func CreateGenerateCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "generate",
		Usage:       "Generates an SVD chip descriptor from SDK headers",
		Description: "Generates an SVD chip descriptor from SDK headers",
		Action:      action,
		Flags: []cli.Flag{
			ChipProfileFlag,
			SOCPathFlag,
			OutputPathFlag,
			FormatFlag,
			ReportOutputPathFlag,
		},
	}
}

var GenerateCommand = CreateGenerateCommand(GenerateDescriptor)

func GenerateDescriptor(ctx *cli.Context) error {
	prof, err := profile.LoadProfile(ctx.Path(ChipProfileFlag.Name))
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}
	if socPath := ctx.Path(SOCPathFlag.Name); socPath != "" {
		prof.SOCPath = socPath
	}

	format := ctx.String(FormatFlag.Name)
	if format == "" {
		format = "text"
	}

	report, err := generate(prof, ctx.Path(OutputPathFlag.Name))
	if err != nil {
		return err
	}

	if err := writeReport(report, format, ctx.Path(ReportOutputPathFlag.Name), prof); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

// generate runs the extraction pipeline and writes the SVD document.
func generate(prof *profile.ChipProfile, outputPath string) (*headerparser.Report, error) {
	parser := headerparser.NewParser(prof.PrincipalHeader, prof.HeaderSuffix)
	registry, report, err := parser.Parse(prof.SOCPath)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	// Where available, the documentation records carry more detailed
	// register definitions than the headers.
	if err := docparser.ApplyOverrides(registry, prof.DocPath, prof.Overrides); err != nil {
		return nil, err
	}
	if err := docparser.ApplyClones(registry, prof.DocPath, prof.Clones); err != nil {
		return nil, err
	}

	device := assembler.Build(registry, prof)

	if outputPath == "" {
		outputPath = strings.ToLower(prof.Device.Name) + ".svd"
	}
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, fmt.Errorf("unable to determine absolute path: %w", err)
	}
	output, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, fmt.Errorf("unable to open output file: %w", err)
	}
	defer func() {
		_ = output.Close()
	}()

	if err := device.Encode(output); err != nil {
		return nil, err
	}
	return report, nil
}

// writeReport outputs the extraction summary in the specified format.
func writeReport(report *headerparser.Report, format, outputPath string, prof *profile.ChipProfile) error {
	var output *os.File
	if outputPath == "" {
		output = os.Stdout
	} else {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		output, err = os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = output.Close()
		}()
	}

	var rendererInstance renderer.Renderer
	switch format {
	case "text":
		rendererInstance = renderer.NewTextRenderer(prof)
	case "json":
		rendererInstance = renderer.NewJSONRenderer()
	default:
		return fmt.Errorf("invalid format: %s", format)
	}

	return rendererInstance.Render(report, output)
}
