package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ib-77/exceptional/pkg/exceptional/attempt"
)

var readCmd = &cobra.Command{
	Use:   "read <file>...",
	Short: "Print the lines of each file",
	Long: `Reads every file and prints its lines. A file that cannot be read is handed
to the configured policy; unless the policy raises, the next file is read.`,
	Args: cobra.MinimumNArgs(1),
	RunE: guarded(runRead),
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	catcher, err := policyCatcher(viper.GetString("policy"))
	if err != nil {
		return err
	}

	a := attempt.With(catcher)
	out := cmd.OutOrStdout()

	for _, path := range args {
		lines, ok := attempt.Get(a, func() ([]string, error) { return readLines(path) })
		if !ok {
			logger.WithField("file", path).Warn("no lines read")
			continue
		}
		for _, line := range lines {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(text, "\n"), nil
}
