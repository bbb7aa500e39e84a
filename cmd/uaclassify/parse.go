package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fernwood-systems/uaclassify/uaclassify"
)

func newParseCmd(logger *zap.Logger) *cobra.Command {
	var regexesPath string

	cmd := &cobra.Command{
		Use:   "parse [user-agent-string]",
		Short: "Classify a single user-agent string, or one per line of stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := parserFromFlags(regexesPath)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				return printParse(cmd, parser, args[0])
			}

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if err := printParse(cmd, parser, scanner.Text()); err != nil {
					logger.Warn("parse failed for line", zap.Error(err))
				}
			}
			return scanner.Err()
		},
	}
	cmd.Flags().StringVarP(&regexesPath, "regexes", "R", "", "path to a custom regexes.yaml/json file (default: embedded built-ins)")
	return cmd
}

func printParse(cmd *cobra.Command, parser *uaclassify.Parser, ua string) error {
	result, err := parser.Parse(ua)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s => UA:%s OS:%s Device:%s\n",
		ua, result.UserAgent.Family, result.OS.Family, result.Device.Family)
	return nil
}
