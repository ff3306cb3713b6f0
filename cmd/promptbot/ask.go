package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sfa-hq/promptbot/pkg/cli"
)

var askFlags struct {
	output string
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the bot one question",
	Long: `Send one question through the same pipeline as POST /prompt-bot and
print the answer. Tool calls requested by the model are run locally.

Examples:
  promptbot ask "What is the capital of France?"
  promptbot ask --output json "Reverse the word banana"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVarP(&askFlags.output, "output", "o", "text", "output format (text, json)")
}

// askResult is the JSON output of the ask command.
type askResult struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(askFlags.output)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := newApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	question := strings.Join(args, " ")
	answer, err := a.bot.Answer(cmd.Context(), question)
	if err != nil {
		return cli.NewCommandError("ask", err)
	}

	var data any = answer
	if format == cli.FormatJSON {
		data = askResult{Question: question, Answer: answer}
	}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), data)
}
