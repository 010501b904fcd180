package service

import (
	"fmt"

	"estatehub/app/models"
	"estatehub/app/services"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

const (
	usernameFlag = "username"
	emailFlag    = "email"
	avatarFlag   = "avatar"
)

func newUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	userCmd.AddCommand(newUserAddCommand())
	return userCmd
}

func newUserAddCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		usernameFlag: &cobraflags.StringFlag{
			Name:  usernameFlag,
			Value: "",
			Usage: "Unique username (required)",
		},
		emailFlag: &cobraflags.StringFlag{
			Name:  emailFlag,
			Value: "",
			Usage: "Email address (required)",
		},
		avatarFlag: &cobraflags.StringFlag{
			Name:  avatarFlag,
			Value: "",
			Usage: "Avatar image URL",
		},
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			stores, closeStores, err := openStores(cmd.Context(), cfg, &log)
			if err != nil {
				return err
			}
			defer closeStores()

			user := &models.User{
				Username: flags[usernameFlag].GetString(),
				Email:    flags[emailFlag].GetString(),
			}
			if avatar := flags[avatarFlag].GetString(); avatar != "" {
				user.Avatar = &avatar
			}

			if err := services.NewUserService(stores.Users).CreateUser(cmd.Context(), user); err != nil {
				return err
			}
			log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user created")
			fmt.Fprintln(cmd.OutOrStdout(), user.ID)
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
