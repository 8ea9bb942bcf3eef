package cmd

import (
	"fmt"
	"log"

	"harmonic/config"
	"harmonic/core/seed"
	"harmonic/db"
	"harmonic/repository"

	"github.com/spf13/cobra"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the database schema and seed the catalog",
	Long:  `Create the users, musics and favorites tables, then insert the seed artist, the bootstrap admin and the reference track list. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		if err := db.ConnectDB(cfg); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.DB.Close()

		if err := db.InitDB(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		fmt.Println("Schema ready.")

		if err := db.ConnectGormDB(cfg); err != nil {
			log.Fatalf("Failed to connect gorm: %v", err)
		}
		defer db.CloseGormDB()

		if err := db.MigrateFavorites(); err != nil {
			log.Fatalf("Failed to migrate favorites table: %v", err)
		}

		userRepo := repository.NewMySQLUserRepository(db.DB)
		musicRepo := repository.NewMySQLMusicRepository(db.DB)
		if err := seed.Run(userRepo, musicRepo); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		fmt.Println("Seed data in place.")
	},
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}
