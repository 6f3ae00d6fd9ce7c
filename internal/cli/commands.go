package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
	"github.com/Clare-zewei/clickengineA-sub000/internal/service"
)

func (a *app) preview(cmd *cobra.Command, path string) (*dto.PreviewResponse, error) {
	file, err := readTemplateFile(path)
	if err != nil {
		return nil, err
	}

	// preview never touches the store
	svc := service.NewTemplateService(nil, file, a.options(), nil, a.log)
	return svc.Preview(cmd.Context(), &file.FunnelTemplateRequest)
}

func printJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <template.json>",
		Short: "Check a template against the builder rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.preview(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, warning := range result.Warnings {
				fmt.Fprintf(out, "warning: %s\n", warning)
			}
			if !result.IsValid {
				for _, msg := range result.Errors {
					fmt.Fprintf(out, "error: %s\n", msg)
				}
				a.log.Debug("Template invalid", zap.Int("errors", len(result.Errors)))
				return ErrInvalidTemplate
			}

			fmt.Fprintf(out, "%s is valid\n", args[0])
			return nil
		},
	}
}

func newAnalyzeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <template.json>",
		Short: "Print total conversion, drop-off points and the CAC/ROI estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.preview(cmd, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
}

func newDefaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the built-in starter templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, domain.DefaultTemplates())
		},
	}
}
