package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/logging"
	"github.com/radixdlt/manifest-analyzer/manifestanalysis"
	"github.com/radixdlt/manifest-analyzer/trace"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		tracePath   string
		isSubintent bool
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "analyze <instructions.json>",
		Short: "Run the analyzer catalogue over an instruction stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logging.Config{Level: logLevel})
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			instructionData, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read instructions: %w", err)
			}
			instructions, err := instr.DecodeStream(instructionData)
			if err != nil {
				return fmt.Errorf("decode instructions: %w", err)
			}

			var trc trace.Trace
			if tracePath != "" {
				traceData, err := os.ReadFile(tracePath)
				if err != nil {
					return fmt.Errorf("read trace: %w", err)
				}
				trc, err = trace.Decode(traceData)
				if err != nil {
					return fmt.Errorf("decode trace: %w", err)
				}
			}

			static, dynamic, err := manifestanalysis.Analyze(instructions, manifestanalysis.Options{
				IsSubintent: isSubintent,
				Trace:       trc,
				Logger:      logger,
			})
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if dynamic != nil {
				return enc.Encode(dynamic)
			}
			return enc.Encode(static)
		},
	}

	cmd.Flags().StringVar(&tracePath, "trace", "", "path to a JSON execution trace, enables dynamic analysis")
	cmd.Flags().BoolVar(&isSubintent, "subintent", false, "analyze as a subintent manifest instead of a transaction intent")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}
