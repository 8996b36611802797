package main

import (
	"fmt"
	"strings"
	"time"

	"healthscan/catalog"
	"healthscan/services"

	"github.com/spf13/cobra"
)

func newAskCmd() *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the chat assistant a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			chat := services.NewChatService(services.NewMemorySessionStore(time.Minute), cat, services.Simulator{Delay: delay})
			session, err := chat.StartSession(cmd.Context())
			if err != nil {
				return err
			}
			_, reply, err := chat.Send(cmd.Context(), session.ID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 0, "simulated thinking time")
	return cmd
}
