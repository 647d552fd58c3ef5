package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ib-77/exceptional/pkg/exceptional/chain"
	"github.com/ib-77/exceptional/pkg/exceptional/checked"
)

var parseCmd = &cobra.Command{
	Use:   "parse <value>...",
	Short: "Parse integers and report the outcome of each",
	Long: `Parses every argument as an integer, doubles it and prints the outcome.
Parse failures are handed to the configured policy before the outcome is printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: guarded(runParse),
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	catcher, err := policyCatcher(viper.GetString("policy"))
	if err != nil {
		return err
	}

	parse := checked.FunctionOf(catcher, strconv.Atoi)
	out := cmd.OutOrStdout()

	for _, arg := range args {
		outcome := chain.Map(
			chain.FromResult(func() (int, error) { return parse.ApplyOrThrow(arg) }),
			func(n int) int { return n * 2 }).
			Catch(parse.Catcher()).
			Result()

		fmt.Fprintf(out, "%s -> %s\n", arg, outcome)
	}
	return nil
}
