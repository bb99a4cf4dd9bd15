package main

import (
	"fmt"

	"github.com/amoylab/inventory/internal/common/dto"
	"github.com/amoylab/inventory/internal/inventory/database"
	"github.com/spf13/cobra"
)

var (
	newUser dto.CreateUserRequest

	userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	userAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.NewDatabase(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close()

			if err := addUser(cmd, db, newUser); err != nil {
				return err
			}
			return nil
		},
	}
)

func init() {
	userAddCmd.Flags().StringVar(&newUser.Username, "username", "", "login name")
	userAddCmd.Flags().StringVar(&newUser.Password, "password", "", "initial password")
	userAddCmd.Flags().StringVar(&newUser.Role, "role", string(database.RoleNormal), "admin or normal")
	_ = userAddCmd.MarkFlagRequired("username")
	_ = userAddCmd.MarkFlagRequired("password")
	userCmd.AddCommand(userAddCmd)
}

func addUser(cmd *cobra.Command, db database.Database, req dto.CreateUserRequest) error {
	if req.Username == "" || req.Password == "" {
		return fmt.Errorf("username and password are required")
	}
	role := database.UserRole(req.Role)
	if err := database.CreateUserWithPassword(cmd.Context(), db, req.Username, req.Password, role); err != nil {
		return fmt.Errorf("failed to create user %s: %w", req.Username, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s user %s\n", role, req.Username)
	return nil
}
