package main

import (
	"context"
	"time"

	"github.com/innermond/greet/http"
	"github.com/spf13/cobra"
)

const defaultURL = "http://" + http.DefaultAddr

func newGetCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "get [url]",
		Short: "Fetch the greeting from a running server and print it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := defaultURL
			if len(args) == 1 {
				u = args[0]
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			g, err := http.NewClient(u).Greeting(ctx)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(append(g.Body, '\n'))
			return err
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")
	return cmd
}
