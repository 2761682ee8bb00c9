package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/systune/systune/pkg/remedy"
)

func NewActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the remediation actions systune can apply",
		Long: `Print the fixed catalog of remediation actions, including the exact
commands each one runs, so they can be reviewed before any tune run.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cyan := color.New(color.FgCyan, color.Bold)
			fmt.Println()
			cyan.Println("🔧 Remediation catalog")
			fmt.Println()
			for _, action := range remedy.Catalog() {
				fmt.Printf("%s (%s)\n", action.Title, action.ID)
				fmt.Printf("   %s\n", action.Description)
				for _, step := range action.Steps {
					fmt.Printf("   $ %s\n", color.CyanString(step.String()))
				}
				fmt.Println()
			}
		},
	}
}
