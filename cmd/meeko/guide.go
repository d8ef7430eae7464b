package meeko

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideContent string

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: MsgGuideShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				// fall back to raw markdown when the terminal renderer
				// cannot be built
				fmt.Print(guideContent)
				return nil
			}

			out, err := renderer.Render(guideContent)
			if err != nil {
				fmt.Print(guideContent)
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}
}
