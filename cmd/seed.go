/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/alstha/portfolio-api/config"
	"github.com/alstha/portfolio-api/internal/db"
	"github.com/alstha/portfolio-api/internal/store"
	"github.com/alstha/portfolio-api/types"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// seedCmd represents the seed command. It creates the default admin
// user row that projects and blog posts get associated with.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the default admin user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open database failed: %w", err)
		}
		defer func() {
			_ = dbConn.Close()
		}()

		userRepo := store.NewUserRepository(dbConn)

		existing, err := userRepo.GetByEmail(cmd.Context(), cfg.Insider.Email)
		if err == nil {
			fmt.Printf("admin user already seeded: %s\n", existing.Email)
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("check admin user failed: %w", err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Insider.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password failed: %w", err)
		}

		user, err := userRepo.Create(cmd.Context(), types.User{
			Name:         cfg.Insider.Name,
			Email:        cfg.Insider.Email,
			Role:         types.RoleInsider,
			Bio:          "Default admin user",
			PasswordHash: string(hashed),
		})
		if err != nil {
			return fmt.Errorf("seed admin user failed: %w", err)
		}

		fmt.Printf("seeded admin user: %s (%s)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
