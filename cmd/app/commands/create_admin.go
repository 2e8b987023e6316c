package commands

import (
	"context"
	"fmt"
	"log/slog"

	adminDomain "github.com/ourshop/shop/internal/admin/domain"
	adminUseCase "github.com/ourshop/shop/internal/admin/usecase"
	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
)

type createAdminOutput struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Active   bool   `json:"active"`
}

// RunCreateAdmin creates an active administrator. The password is read from the
// reader when not passed as a flag. Only the hash is stored.
func RunCreateAdmin(
	ctx context.Context,
	useCase adminUseCase.AdminUseCase,
	logger *slog.Logger,
	stdio IOTuple,
	username, password, format string,
) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	if password == "" {
		var err error
		password, err = readLine(stdio, "Password: ")
		if err != nil {
			return err
		}
		if password == "" {
			return fmt.Errorf("password is required")
		}
	}

	admin, err := useCase.Create(ctx, &adminDomain.CreateAdminInput{
		Username: username,
		Password: credentialDomain.PasswordInput{Plain: password},
		Active:   true,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	logger.Info("admin created",
		slog.String("admin_id", admin.ID.String()),
		slog.String("username", admin.Username),
	)

	out := createAdminOutput{
		ID:       admin.ID.String(),
		Username: admin.Username,
		Active:   admin.Active,
	}
	return writeOutput(stdio.Writer, format, out, fmt.Sprintf("Admin created: %s (%s)", out.Username, out.ID))
}
