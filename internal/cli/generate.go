package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/passkeeper/internal/passgen"
	"github.com/dmitrijs2005/passkeeper/internal/strength"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const maxGenerateCount = 100

type generateFlags struct {
	length           int
	count            int
	noUpper          bool
	noLower          bool
	noDigits         bool
	noSymbols        bool
	excludeAmbiguous bool
	showStrength     bool
}

func (f generateFlags) options() passgen.Options {
	return passgen.Options{
		Length:           f.length,
		IncludeUpper:     !f.noUpper,
		IncludeLower:     !f.noLower,
		IncludeDigits:    !f.noDigits,
		IncludeSymbols:   !f.noSymbols,
		ExcludeAmbiguous: f.excludeAmbiguous,
	}
}

func (a *App) generateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords locally",
		Long: `Generate cryptographically secure random passwords. Every enabled
character class appears at least once.

Examples:
  # 16 characters, all classes
  passkeeper generate

  # 24 characters without symbols or look-alike characters
  passkeeper generate -l 24 --no-symbols --exclude-ambiguous

  # 5 passwords with their strength
  passkeeper generate -n 5 --strength`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.count < 1 || f.count > maxGenerateCount {
				return fmt.Errorf("count must be between 1 and %d", maxGenerateCount)
			}
			opts := f.options()
			out := cmd.OutOrStdout()
			for range f.count {
				pw, err := passgen.Generate(opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, pw)
				if f.showStrength {
					printStrength(out, strength.Score(pw))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&f.length, "length", "l", passgen.DefaultLength, fmt.Sprintf("password length (%d-%d)", passgen.MinLength, passgen.MaxLength))
	cmd.Flags().IntVarP(&f.count, "count", "n", 1, "number of passwords to generate")
	cmd.Flags().BoolVar(&f.noUpper, "no-upper", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&f.noLower, "no-lower", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&f.noDigits, "no-digits", false, "exclude digits")
	cmd.Flags().BoolVar(&f.noSymbols, "no-symbols", false, "exclude symbols")
	cmd.Flags().BoolVar(&f.excludeAmbiguous, "exclude-ambiguous", false, "exclude look-alike characters ("+passgen.AmbiguousCharacters+")")
	cmd.Flags().BoolVar(&f.showStrength, "strength", false, "print the strength of each password")
	return cmd
}

func (a *App) scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [password]",
		Short: "Rate the strength of a password locally",
		Long: `Rate a password on a 0-100 scale. Without an argument the password is
read from the terminal without echo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pw string
			if len(args) == 1 {
				pw = args[0]
			} else {
				var err error
				if pw, err = GetPassword(cmd.ErrOrStderr(), "Password: "); err != nil {
					return err
				}
			}
			printStrength(cmd.OutOrStdout(), strength.Score(pw))
			return nil
		},
	}
}

func printStrength(w io.Writer, r strength.Result) {
	verdict := color.New(color.FgRed, color.Bold).Sprint("weak")
	if r.IsStrong {
		verdict = color.New(color.FgGreen, color.Bold).Sprint("strong")
	}
	fmt.Fprintf(w, "Strength: %d/100 (%s)\n", r.Score, verdict)
	for _, s := range r.Suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}
