package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/go-service-errors/internal/domain"
	"github.com/jsamuelsen11/go-service-errors/internal/domain/account"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/config"
)

// codeEntry is one row of the printed catalog.
type codeEntry struct {
	Code    string `yaml:"code"`
	Status  int    `yaml:"status"`
	Message string `yaml:"message,omitempty"`
	Type    string `yaml:"type"`
	Scope   string `yaml:"scope"`
}

func newCodesCmd() *cobra.Command {
	var format, baseURI string

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "Print the error code catalog with problem type URIs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			problem := config.DefaultProblemConfig()
			if baseURI != "" {
				problem.BaseErrorURI = baseURI
			}
			return printCodes(cmd.OutOrStdout(), format, catalog(&problem))
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "table", "output format: table or yaml")
	cmd.Flags().StringVar(&baseURI, "base-uri", "", "problem type base URI (defaults to the built-in value)")

	return cmd
}

func catalog(problem *config.ProblemConfig) []codeEntry {
	var out []codeEntry
	add := func(scope string, codes ...domain.ErrorCode) {
		for _, c := range codes {
			out = append(out, codeEntry{
				Code:    c.Code(),
				Status:  c.HTTPStatus(),
				Message: c.DefaultMessage(),
				Type:    problem.BuildErrorTypeURI(c.Code()),
				Scope:   scope,
			})
		}
	}

	add("common", domain.CommonCodes()...)
	add("service", domain.ServiceCodes()...)
	add("service", account.CodeCurrencyMismatch)

	return out
}

func printCodes(w io.Writer, format string, entries []codeEntry) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding codes: %w", err)
		}
		return enc.Close()

	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tSTATUS\tSCOPE\tTYPE")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", e.Code, e.Status, e.Scope, e.Type)
		}
		return tw.Flush()

	default:
		return fmt.Errorf("unsupported output format %q (want table or yaml)", format)
	}
}
