package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nfrund/collectives/internal/i18n"
)

func newLocalesCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List the messages pages are rendered with",
		Long: `Prints every key of the embedded en-US catalog with its message.
Only this catalog is loaded by the app; other files under locales/ are not.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cat := i18n.Default()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "LOCALE\t%s\n", cat.Locale)
			fmt.Fprintln(w, "KEY\tMESSAGE")
			for _, key := range cat.Keys() {
				if prefix != "" && !strings.HasPrefix(key, prefix) {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", key, cat.Messages[key])
			}
			w.Flush()
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "only list keys starting with this prefix")
	return cmd
}
