package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/filex"
	"github.com/dmitrijs2005/passkeeper/internal/netx"
	"github.com/dmitrijs2005/passkeeper/internal/passgen"
	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

type credentialFlags struct {
	title      string
	loginName  string
	loginEmail string
	url        string
	notes      string
	category   string
	favorite   bool
	generate   bool
	length     int
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (a *App) addCmd() *cobra.Command {
	var f credentialFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new credential",
		Long: `Store a new credential. The secret is read from the terminal unless
--generate asks the server to create one.

Examples:
  passkeeper add --title GitHub --login octocat --url https://github.com --category work
  passkeeper add --title Bank --generate --length 24 --favorite`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &pb.CreateCredentialRequest{
				Title:      f.title,
				LoginName:  optional(f.loginName),
				LoginEmail: optional(f.loginEmail),
				Url:        optional(f.url),
				Notes:      optional(f.notes),
				IsFavorite: f.favorite,
				Category:   f.category,
			}
			if f.generate {
				opts := passgen.DefaultOptions()
				req.Generate = &pb.GenerationOptions{
					Length:           int32(f.length),
					IncludeUpper:     opts.IncludeUpper,
					IncludeLower:     opts.IncludeLower,
					IncludeDigits:    opts.IncludeDigits,
					IncludeSymbols:   opts.IncludeSymbols,
					ExcludeAmbiguous: opts.ExcludeAmbiguous,
				}
			} else {
				secret, err := GetPassword(cmd.ErrOrStderr(), "Secret: ")
				if err != nil {
					return err
				}
				req.Secret = secret
			}
			return a.withVault(cmd.Context(), true, func(ctx context.Context, c vaultAPI) error {
				resp, err := c.CreateCredential(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", resp.GetCredential().GetTitle(), resp.GetCredential().GetId())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&f.title, "title", "", "credential title, unique per account")
	cmd.Flags().StringVar(&f.loginName, "login", "", "login name")
	cmd.Flags().StringVar(&f.loginEmail, "email", "", "login email")
	cmd.Flags().StringVar(&f.url, "url", "", "site URL")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-form notes")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category (default other)")
	cmd.Flags().BoolVarP(&f.favorite, "favorite", "f", false, "mark as favorite")
	cmd.Flags().BoolVarP(&f.generate, "generate", "g", false, "generate the secret on the server")
	cmd.Flags().IntVarP(&f.length, "length", "l", passgen.DefaultLength, "length of a generated secret")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func (a *App) editCmd() *cobra.Command {
	var (
		f      credentialFlags
		secret bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a stored credential",
		Long: `Change fields of a stored credential. Only flags given on the command
line are sent; an empty value clears an optional field. --secret reads a new
secret from the terminal and keeps the old one in the history.

Examples:
  passkeeper edit 6f1c... --url https://example.org --notes ""
  passkeeper edit 6f1c... --secret`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			req := &pb.UpdateCredentialRequest{Id: args[0]}
			if flags.Changed("title") {
				req.Title = proto.String(f.title)
			}
			if flags.Changed("login") {
				req.LoginName = proto.String(f.loginName)
			}
			if flags.Changed("email") {
				req.LoginEmail = proto.String(f.loginEmail)
			}
			if flags.Changed("url") {
				req.Url = proto.String(f.url)
			}
			if flags.Changed("notes") {
				req.Notes = proto.String(f.notes)
			}
			if flags.Changed("category") {
				c, err := models.ParseCategory(f.category)
				if err != nil {
					return err
				}
				req.Category = proto.String(string(c))
			}
			if flags.Changed("favorite") {
				req.IsFavorite = proto.Bool(f.favorite)
			}
			if secret {
				s, err := GetPassword(cmd.ErrOrStderr(), "New secret: ")
				if err != nil {
					return err
				}
				req.Secret = proto.String(s)
			}
			return a.withVault(cmd.Context(), true, func(ctx context.Context, c vaultAPI) error {
				resp, err := c.UpdateCredential(ctx, req)
				if err != nil {
					return err
				}
				printCredential(cmd.OutOrStdout(), resp.GetCredential())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&f.title, "title", "", "new title")
	cmd.Flags().StringVar(&f.loginName, "login", "", "login name")
	cmd.Flags().StringVar(&f.loginEmail, "email", "", "login email")
	cmd.Flags().StringVar(&f.url, "url", "", "site URL")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-form notes")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category; empty resets to other")
	cmd.Flags().BoolVarP(&f.favorite, "favorite", "f", false, "favorite flag")
	cmd.Flags().BoolVar(&secret, "secret", false, "replace the secret")
	return cmd
}

func (a *App) listCmd() *cobra.Command {
	var (
		category  string
		favorites bool
		search    string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored credentials, favorites first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withVault(cmd.Context(), true, func(ctx context.Context, c vaultAPI) error {
				resp, err := c.ListCredentials(ctx, &pb.ListCredentialsRequest{
					Category:     category,
					FavoriteOnly: favorites,
					Search:       search,
				})
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(resp.GetCredentials()) == 0 {
					fmt.Fprintln(out, "No credentials")
					return nil
				}
				star := color.New(color.FgYellow).Sprint("*")
				for _, v := range resp.GetCredentials() {
					mark := " "
					if v.GetIsFavorite() {
						mark = star
					}
					fmt.Fprintf(out, "%s %-36s  %-13s  %s\n", mark, v.GetId(), v.GetCategory(), v.GetTitle())
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only this category")
	cmd.Flags().BoolVarP(&favorites, "favorites", "f", false, "only favorites")
	cmd.Flags().StringVarP(&search, "search", "q", "", "substring of title, URL, login name or login email")
	return cmd
}

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a credential without its secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withVault(cmd.Context(), true, func(ctx context.Context, c vaultAPI) error {
				resp, err := c.GetCredential(ctx, &pb.GetCredentialRequest{Id: args[0]})
				if err != nil {
					return err
				}
				printCredential(cmd.OutOrStdout(), resp.GetCredential())
				return nil
			})
		},
	}
}

func (a *App) revealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <id>",
		Short: "Print the secret of a credential after asking for the master password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			master, err := GetPassword(cmd.ErrOrStderr(), "Master password: ")
			if err != nil {
				return err
			}
			return a.withVault(cmd.Context(), true, func(ctx context.Context, c vaultAPI) error {
				resp, err := c.RevealCredential(ctx, &pb.RevealCredentialRequest{Id: args[0], MasterPassword: master})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), resp.GetSecret())
				return nil
			})
		},
	}
}

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a credential and its history",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withVault(cmd.Context(), true, func(ctx context.Context, c vaultAPI) error {
				if _, err := c.DeleteCredential(ctx, &pb.DeleteCredentialRequest{Id: args[0]}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}

// downloadBackup is a test seam for netx.DownloadFromPresignedURL.
var downloadBackup = netx.DownloadFromPresignedURL

func (a *App) exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Upload an encrypted backup of all credentials",
		Long: `Upload an encrypted backup of all credentials to the server's object
storage and print a short-lived download link. With --out the backup is
also downloaded to a file readable only by you.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withVault(cmd.Context(), true, func(ctx context.Context, c vaultAPI) error {
				resp, err := c.ExportBackup(ctx, &emptypb.Empty{})
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Exported %d credentials to %s\n", resp.GetCount(), resp.GetKey())
				if outPath == "" {
					fmt.Fprintln(out, resp.GetDownloadUrl())
					return nil
				}
				data, err := downloadBackup(ctx, resp.GetDownloadUrl())
				if err != nil {
					return err
				}
				if err := filex.WritePrivate(outPath, data); err != nil {
					return err
				}
				fmt.Fprintf(out, "Saved %s\n", outPath)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "download the backup to this file")
	return cmd
}

func printCredential(w io.Writer, v *pb.Credential) {
	label := color.New(color.Faint).SprintFunc()
	field := func(name string, value *string) {
		if value != nil {
			fmt.Fprintf(w, "%s %s\n", label(name+":"), *value)
		}
	}
	fmt.Fprintf(w, "%s %s\n", label("ID:"), v.GetId())
	fmt.Fprintf(w, "%s %s\n", label("Title:"), v.GetTitle())
	field("Login", v.LoginName)
	field("Email", v.LoginEmail)
	field("URL", v.Url)
	field("Notes", v.Notes)
	fmt.Fprintf(w, "%s %s\n", label("Category:"), v.GetCategory())
	fmt.Fprintf(w, "%s %t\n", label("Favorite:"), v.GetIsFavorite())
	fmt.Fprintf(w, "%s %d\n", label("History:"), v.GetHistoryCount())
	fmt.Fprintf(w, "%s %s\n", label("Created:"), v.GetCreatedAt().AsTime().Format(time.RFC3339))
	if v.GetModifiedAt() != nil {
		fmt.Fprintf(w, "%s %s\n", label("Modified:"), v.GetModifiedAt().AsTime().Format(time.RFC3339))
	}
}
