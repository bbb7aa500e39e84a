package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fernwood-systems/uaclassify/gen"
	"github.com/fernwood-systems/uaclassify/ruleset"
)

func newGenerateCmd(logger *zap.Logger) *cobra.Command {
	var (
		outPath     string
		packageName string
		varName     string
	)

	cmd := &cobra.Command{
		Use:   "generate <rules-file>",
		Short: "Render a rules document to a Go source file of literal matcher constructors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := decodeDocument(args[0])
			if err != nil {
				return fmt.Errorf("decoding rules file: %w", err)
			}

			src, err := gen.Generate(doc, gen.Options{Package: packageName, VarName: varName})
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err := cmd.OutOrStdout().Write(src)
				return err
			}
			logger.Info("writing generated matchers", zap.String("path", outPath))
			return os.WriteFile(outPath, src, 0o644)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&packageName, "package", "matchers", "generated file's package name")
	cmd.Flags().StringVar(&varName, "var", "Matchers", "exported matchers variable name")
	return cmd
}

// decodeDocument reads a uap-core-shaped rules file, choosing the codec by
// extension (.json vs. everything else, which is treated as YAML).
func decodeDocument(path string) (ruleset.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ruleset.Document{}, err
	}

	var doc ruleset.Document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	return doc, err
}
