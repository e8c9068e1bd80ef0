package cli

import (
	"github.com/spf13/cobra"

	"github.com/aam-007/syswiz/internal/catalog"
	"github.com/aam-007/syswiz/internal/output"
	"github.com/aam-007/syswiz/internal/system"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the available guided operations",
	Long: `List every operation the wizard offers, with its risk tier and the
command template it runs. Useful for auditing what syswiz can do
without opening the interactive interface.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newOutput()
		if err != nil {
			return err
		}

		cats := actionsCatalog(system.DetectReleaseVer(cmd.Context()))

		if out.IsJSON() {
			type actionRow struct {
				Category   string   `json:"category"`
				ID         string   `json:"id"`
				Title      string   `json:"title"`
				Tier       string   `json:"tier"`
				Privileged bool     `json:"privileged"`
				Argv       []string `json:"argv"`
			}
			var rows []actionRow
			for _, c := range cats {
				for _, a := range c.Actions {
					rows = append(rows, actionRow{
						Category:   c.Title,
						ID:         a.ID,
						Title:      a.Title,
						Tier:       a.Tier().String(),
						Privileged: a.Privileged,
						Argv:       a.Argv,
					})
				}
			}
			return out.Write(rows)
		}

		headers := []string{"CATEGORY", "ID", "TIER", "PRIV", "COMMAND"}
		var rows [][]string
		for _, c := range cats {
			for _, a := range c.Actions {
				priv := ""
				if a.Privileged {
					priv = "sudo"
				}
				rows = append(rows, []string{
					c.Title, a.ID, a.Tier().String(), priv, argvPreview(a),
				})
			}
		}
		return out.Table(headers, rows)
	},
}

// actionsCatalog builds the catalog for listing. When the host release
// cannot be detected, release-templated URLs carry an explicit marker
// instead of silently showing a wrong release.
func actionsCatalog(rel string) []catalog.Category {
	if rel == "" {
		rel = "<releasever>"
	}
	return catalog.Catalog(catalog.Options{ReleaseVer: rel})
}

func argvPreview(a catalog.Action) string {
	s := ""
	for i, tok := range a.Argv {
		if i > 0 {
			s += " "
		}
		if tok == catalog.Placeholder {
			tok = "<" + string(a.Input) + ">"
		}
		s += tok
	}
	return s
}

func newOutput() (*output.Writer, error) {
	f, err := output.ParseFormat(flagOutput)
	if err != nil {
		return nil, err
	}
	return output.New(f), nil
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
