package cmd

import (
	"context"
	"fmt"
	"strings"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
	"book-my-property/pkg/apperr"
	"book-my-property/pkg/database"
	"book-my-property/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type newUser struct {
	Email     string `validate:"required,email,max=255"`
	Password  string `validate:"required,min=6,max=72,maxbytes=72"`
	FirstName string `validate:"required,max=100"`
	LastName  string `validate:"max=100"`
	Phone     string `validate:"max=20"`
	Role      string `validate:"required,oneof=Admin Agent User"`
}

// CreateUserCmd provisions accounts that cannot self-register, such as the first admin.
func CreateUserCmd() *cobra.Command {
	var u newUser

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an active account with the given role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u.Email = strings.ToLower(strings.TrimSpace(u.Email))
			if errs := utils.ValidateStruct(u); len(errs) > 0 {
				return fmt.Errorf("invalid user: %v", errs)
			}
			return createUser(cmd.Context(), u)
		},
	}

	f := cmd.Flags()
	f.StringVar(&u.Email, "email", "", "login email")
	f.StringVar(&u.Password, "password", "", "initial password")
	f.StringVar(&u.FirstName, "first-name", "", "first name")
	f.StringVar(&u.LastName, "last-name", "", "last name")
	f.StringVar(&u.Phone, "phone", "", "phone number")
	f.StringVar(&u.Role, "role", entity.RoleAdmin, "role name (Admin, Agent or User)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func createUser(ctx context.Context, u newUser) error {
	config, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	hash, err := utils.HashPassword(u.Password, config.Auth.BcryptCost)
	if err != nil {
		return err
	}

	uow := repository.NewRepository(db, logger).NewUnitOfWork()

	var created *entity.User
	err = repository.InTransaction(ctx, uow, func(uow repository.UnitOfWork) error {
		role, err := uow.Roles().FindByName(ctx, u.Role)
		if err != nil {
			return err
		}
		if role == nil {
			return fmt.Errorf("role %q does not exist, run migrations first", u.Role)
		}

		created = &entity.User{
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			Email:        u.Email,
			PasswordHash: hash,
			PhoneNumber:  u.Phone,
			RoleID:       role.ID,
			IsActive:     true,
		}
		return uow.Users().Add(ctx, created)
	})
	if err != nil {
		if apperr.Is(err, apperr.KindConflict) {
			return fmt.Errorf("email %s is already registered", u.Email)
		}
		return err
	}

	logger.Info("User created",
		zap.Int64("user_id", created.ID),
		zap.String("email", created.Email),
		zap.String("role", u.Role))
	return nil
}
