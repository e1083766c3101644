package cli

import (
	"github.com/spf13/cobra"

	"github.com/stylebook/stylebook/pkg/profile"
	"github.com/stylebook/stylebook/pkg/refdoc"
)

// generateCommand creates the generate command, which builds the styles
// reference document and writes it as an .odt package.
func (c *CLI) generateCommand() *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "generate [output]",
		Short: "Generate the styles reference document",
		Long: `Generate builds a sample document exercising the full style catalog and
saves it as an OpenDocument Text file. The output argument is optional; when
omitted the document is written to ` + refdoc.DefaultName + ` in the current
directory. Metadata and page geometry can be customized with --profile.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var output string
			if len(args) > 0 {
				output = args[0]
			}
			return runGenerate(cmd, output, profilePath)
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "TOML profile with document metadata and page geometry")

	return cmd
}

func runGenerate(cmd *cobra.Command, output, profilePath string) error {
	logger := loggerFromContext(cmd.Context())

	p := profile.Default()
	if profilePath != "" {
		var err error
		if p, err = profile.Load(profilePath); err != nil {
			return err
		}
		logger.Debug("Loaded profile", "path", profilePath)
	} else {
		printInfo("Using built-in document profile")
	}

	prog := newProgress(logger)
	path, err := refdoc.Generate(p, output)
	if err != nil {
		return err
	}
	prog.done("Wrote document")

	printSuccess("Generated styles reference document")
	printFile(path)
	printDetail("Title: %s", p.Document.Title)
	printNextStep("List the style catalog", appName+" styles")
	return nil
}
