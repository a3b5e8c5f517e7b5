package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

var opts = practiceOptions{}

var rootCmd = &cobra.Command{
	Use:          "practice",
	Short:        "Run a mock interview session in the terminal",
	SilenceUsage: true,
	Long: `Practice runs one interview session on the command line.

Type your answer and press Enter. Type /skip to skip a question and /pause to
pause the session until Enter is pressed again. Answers are graded by the mock
scorer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&opts.Category, "category", string(entities.CategoryLeadership), "question category")
	flags.StringVar(&opts.Difficulty, "difficulty", string(entities.DifficultyMedium), "easy, medium or hard")
	flags.IntVar(&opts.Count, "count", 5, "number of questions (3-10)")
	flags.Int64Var(&opts.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	flags.StringVar(&opts.BankPath, "bank", "", "YAML question catalog, defaults to the built-in bank")
	flags.DurationVar(&opts.Latency, "latency", 500*time.Millisecond, "simulated scoring latency")
	flags.BoolVar(&opts.Verbose, "verbose", false, "log session events to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
