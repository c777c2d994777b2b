package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nfrund/collectives/internal/domain"
	"github.com/nfrund/collectives/internal/modules/createevent"
)

func newCanCreateCmd() *cobra.Command {
	var memberOf []string

	cmd := &cobra.Command{
		Use:   "can-create <collective-slug>",
		Short: "Check whether a membership list allows creating events",
		Long: `Runs the same membership check as the create-event page.

Memberships are given as slug or slug:ROLE, for example:
  collectives-cli can-create webpack --member-of babel,webpack:ADMIN`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			user := &domain.User{Username: "cli"}
			for _, entry := range memberOf {
				slug, role, _ := strings.Cut(strings.TrimSpace(entry), ":")
				if slug == "" {
					continue
				}
				if role == "" {
					role = domain.RoleMember
				}
				user.Collectives = append(user.Collectives, domain.Membership{Slug: slug, Role: strings.ToUpper(role)})
			}

			createevent.Authorize(user, args[0])

			out := cmd.OutOrStdout()
			if !user.CanCreateEvent {
				fmt.Fprintf(out, "no: not a member of %q\n", args[0])
				return
			}
			fmt.Fprintf(out, "yes: %s of %q\n", user.Membership.Role, args[0])
		},
	}

	cmd.Flags().StringSliceVar(&memberOf, "member-of", nil, "memberships as slug or slug:ROLE")
	return cmd
}
