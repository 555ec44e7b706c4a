package cli

import (
	"context"
	"errors"
	"fmt"

	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (a *App) registerCmd() *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long: `Create an account. The account password signs you in; the master
password is asked again whenever a stored secret is revealed. The two must
differ.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.ErrOrStderr()
			password, err := GetNewPassword(w, "Account password: ")
			if err != nil {
				return err
			}
			master, err := GetNewPassword(w, "Master password: ")
			if err != nil {
				return err
			}
			return a.withVault(cmd.Context(), false, func(ctx context.Context, c vaultAPI) error {
				_, err := c.Register(ctx, &pb.RegisterRequest{
					Email:          email,
					DisplayName:    name,
					Password:       password,
					MasterPassword: master,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Registration accepted. Log in with your email and password.")
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (a *App) loginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print a session token",
		Long: `Sign in and print a session token to stdout.

Example:
  export ` + EnvToken + `=$(passkeeper login -e me@example.com)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := GetPassword(cmd.ErrOrStderr(), "Account password: ")
			if err != nil {
				return err
			}
			return a.withVault(cmd.Context(), false, func(ctx context.Context, c vaultAPI) error {
				resp, err := c.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), resp.GetAccessToken())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the current session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withVault(cmd.Context(), true, func(ctx context.Context, c vaultAPI) error {
				if _, err := c.Logout(ctx, &emptypb.Empty{}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil
			})
		},
	}
}

func (a *App) recoverCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Request a password recovery token by email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withVault(cmd.Context(), false, func(ctx context.Context, c vaultAPI) error {
				if _, err := c.RequestRecovery(ctx, &pb.RequestRecoveryRequest{Email: email}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "If the address is registered, a recovery token is on its way.")
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (a *App) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <recovery-token>",
		Short: "Set a new account password with a recovery token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := GetNewPassword(cmd.ErrOrStderr(), "New account password: ")
			if err != nil {
				return err
			}
			return a.withVault(cmd.Context(), false, func(ctx context.Context, c vaultAPI) error {
				if _, err := c.ResetPassword(ctx, &pb.ResetPasswordRequest{Token: args[0], NewPassword: password}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Password reset")
				return nil
			})
		},
	}
}

func (a *App) passwdCmd() *cobra.Command {
	var master bool

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password, or the master password with --master",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.ErrOrStderr()
			label := "account"
			if master {
				label = "master"
			}
			current, err := GetPassword(w, fmt.Sprintf("Current %s password: ", label))
			if err != nil {
				return err
			}
			next, err := GetNewPassword(w, fmt.Sprintf("New %s password: ", label))
			if err != nil {
				return err
			}
			if current == next {
				return errors.New("new password must differ from the current one")
			}
			return a.withVault(cmd.Context(), true, func(ctx context.Context, c vaultAPI) error {
				if master {
					_, err = c.ChangeMasterPassword(ctx, &pb.ChangeMasterPasswordRequest{CurrentMasterPassword: current, NewMasterPassword: next})
				} else {
					_, err = c.ChangePassword(ctx, &pb.ChangePasswordRequest{CurrentPassword: current, NewPassword: next})
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Changed %s password\n", label)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&master, "master", false, "change the master password")
	return cmd
}
