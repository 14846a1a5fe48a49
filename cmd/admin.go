package main

import (
	"fmt"

	userapp "github.com/muhammadheryan/home-service/application/user"
	"github.com/muhammadheryan/home-service/cmd/config"
	"github.com/muhammadheryan/home-service/model"
	redisRepo "github.com/muhammadheryan/home-service/repository/redis"
	userRepo "github.com/muhammadheryan/home-service/repository/user"
	"github.com/muhammadheryan/home-service/utils/logger"
	validatorx "github.com/muhammadheryan/home-service/utils/validator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCreateAdminCommand(load func() *config.Config) *cobra.Command {
	req := &model.CreateAdminRequest{}

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		Long: `Create an admin account that can sign in to the admin API.

Example:
  home-service create-admin --name "Ops Admin" --email admin@example.com --password 's3cret-pass'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatorx.ValidateStruct(req); err != nil {
				return fmt.Errorf("invalid admin: %v", validatorx.FieldErrors(err))
			}

			cfg := load()
			db, err := openSQL(cfg)
			if err != nil {
				logger.Error("err connect db", zap.Error(err))
				return err
			}
			defer db.Close()

			// sessions are not touched here, the redis repository runs without a client
			app := userapp.NewUserApp(cfg, userRepo.NewUserRepository(db), redisRepo.NewRepository())
			user, err := app.CreateAdmin(cmd.Context(), req)
			if err != nil {
				return err
			}

			logger.Info("admin created", zap.Uint64("id", user.ID), zap.String("email", user.Email))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "sign-in email")
	cmd.Flags().StringVar(&req.Password, "password", "", "password, at least 8 characters")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
