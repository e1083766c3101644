package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stylebook/stylebook/pkg/odf"
	"github.com/stylebook/stylebook/pkg/profile"
	"github.com/stylebook/stylebook/pkg/refdoc"
)

// stylesCommand creates the styles command, which lists the style catalog
// grouped by family.
func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the style catalog grouped by family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStyles()
		},
	}
}

func runStyles() error {
	doc, err := refdoc.Build(profile.Default())
	if err != nil {
		return err
	}

	total := 0
	for _, family := range odf.Families() {
		defs := doc.Styles(family)
		if len(defs) == 0 {
			continue
		}
		total += len(defs)

		fmt.Println(StyleTitle.Render(fmt.Sprintf("%s styles (%d)", family, len(defs))))
		for _, def := range defs {
			printDetail("%s", def.Name)
		}
		fmt.Println()
	}

	masters := doc.MasterPages()
	fmt.Println(StyleTitle.Render(fmt.Sprintf("page styles (%d)", len(masters))))
	for _, mp := range masters {
		printDetail("%s", mp.Name)
	}
	fmt.Println()

	printKeyValue("Named", fmt.Sprintf("%d styles", total))
	printKeyValue("Pages", fmt.Sprintf("%d master pages", len(masters)))
	return nil
}
