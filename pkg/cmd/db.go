package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/gamevault/pkg/configs"
	"github.com/yeisme/gamevault/pkg/internal/model"
	"github.com/yeisme/gamevault/pkg/internal/storage/db"
)

var (
	dbCmd = &cobra.Command{
		Use:   "db",
		Short: "Database related commands",
	}

	dbMigrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configs.InitConfig(configPath); err != nil {
				return err
			}

			cli, err := db.New(cmd.Context(), &configs.GetConfig().DB)
			if err != nil {
				return err
			}

			if err := cli.AutoMigrate(&model.Game{}, &model.UserGameHistory{}, &model.OrphanAsset{}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")

			return nil
		},
	}

	dbListCmd = &cobra.Command{
		Use:   "ls",
		Short: "list all registered database types",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Registered database types:")
			for _, dbType := range db.GetRegisteredDBTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), " - "+dbType)
			}
		},
	}
)

// registerDBCommands 注册数据库相关命令.
func registerDBCommands() {
	rootCmd.AddCommand(dbCmd)

	dbCmd.AddCommand(dbListCmd)
	dbCmd.AddCommand(dbMigrateCmd)
}
