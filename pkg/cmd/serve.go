package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/yeisme/gamevault/pkg/app"
	"github.com/yeisme/gamevault/pkg/log"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "start the gamevault HTTP server",
	Aliases: []string{"server", "run"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.NewApp(configPath)

		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := a.Shutdown(ctx); err != nil {
				log.Logger().Warn().Err(err).Msg("shutdown incomplete")
			}
		}()

		return a.Run()
	},
}

// registerServeCommands 注册服务启动命令.
func registerServeCommands() {
	rootCmd.AddCommand(serveCmd)
}
