package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/signin"
	"github.com/dmitrymomot/signin/modules/prompt"
)

// PromptOptions holds flags for the prompt command.
type PromptOptions struct {
	*RootOptions
	MaxAttempts int

	// Driver overrides the survey driver (for testing).
	Driver prompt.PromptDriver
}

// NewPromptCommand creates the prompt command.
func NewPromptCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PromptOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the sign-in form in the terminal",
		Long: `Ask for email, password and the remember-me choice, then submit.
Fields that fail validation are asked again. The accepted payload is printed
as JSON with the password masked.

Example:
  signin prompt
  signin prompt --mode change --max-attempts 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.MaxAttempts, "max-attempts", 0, "give up after this many submit attempts (0 means no limit)")

	return cmd
}

func runPrompt(cmd *cobra.Command, opts *PromptOptions) error {
	engineOpts, err := engineOptions(opts.RootOptions)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	e, err := signin.New(append(engineOpts,
		signin.WithID(id),
		signin.WithLogger(opts.log),
		signin.WithSink(newPrintSink(cmd.OutOrStdout(), id, opts.log)),
	)...)
	if err != nil {
		return err
	}
	defer e.Close()

	driver := opts.Driver
	if driver == nil {
		driver = prompt.NewSurveyDriver(cmd.ErrOrStderr())
	}

	r, err := prompt.New(e,
		prompt.WithPromptDriver(driver),
		prompt.WithLogger(opts.log),
		prompt.WithMaxAttempts(opts.MaxAttempts),
	)
	if err != nil {
		return err
	}

	_, err = r.Run(cmd.Context())
	return err
}
