package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"speechcut/cmd/speechcut/cmd/serve"
	"speechcut/cmd/speechcut/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "speechcut",
	Short: "A transcript-driven audio/video editing service",
	Long: `A transcript-driven audio/video editing service.

- Upload audio or video and get back a word-level transcript with timestamps
- Select and reorder words in the transcript
- Render a new audio or video file containing only the chosen spans, in order`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
