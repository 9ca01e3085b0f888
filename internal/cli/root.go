// Package cli provides the command-line interface for ghi.
package cli

import (
	"errors"
	"fmt"

	"github.com/ghi-cli/ghi/internal/app"
	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const usageExamples = `Examples:
  ghi list [-s open|closed|all]       show open, closed or all issues
                                      (default: open)
  ghi [-s o|c|a] -v                   same as above, but with issue details
  ghi                                 same as: ghi list
  ghi -v                              same as: ghi list -v
  ghi [-s o|c] -w                     show the issue list page in a web browser
                                      (default: open)
  ghi show <nr>                       show issue <nr>
  ghi show <nr> -v                    same as above, but with comments
  ghi <nr>                            same as: ghi show <nr>
  ghi <nr> -w                         show the page of issue <nr> in a web browser
  ghi open (o)                        create a new issue (with $EDITOR)
  ghi open (o) -m <msg>               create a new issue with <msg> content
                                      (optionally, use \n for new lines; first
                                      line will be the issue title)
  ghi close (c) <nr>                  close issue <nr>
  ghi open (o) <nr>                   reopen issue <nr>
  ghi edit (e) <nr>                   edit issue <nr> (with $EDITOR)
  ghi label add (al) <label> <nr>     add <label> to issue <nr>
  ghi label remove (rl) <label> <nr>  remove <label> from issue <nr>
  ghi search (s) <term>               search for <term> (default: open)
  ghi s <term> [-s o|c] -v            same as above, but with details
  ghi s <term> -s closed              only search in closed issues
  ghi comment (m) <nr>                create a comment for issue <nr>
                                      (with $EDITOR)
  ghi -r <user>/<repo>                specify a repository (can be used for
                                      all commands)
  ghi -r <repo>                       specify a repository (gets user from
                                      github.user in the git config)
  ghi -c <cache>                      specify a directory to cache HTTP data`

// NewRootCommand creates the root command for ghi.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var (
		opts  Options
		state string
	)

	root := &cobra.Command{
		Use:   "ghi [command] [args] [options]",
		Short: "Command-line interface to an issue tracker",
		Long: `ghi lists, shows, searches, opens, closes, reopens, edits, labels and
comments on the issues of a repository.

The repository is taken from -r, or from the 'origin' remote of the git
repository containing the current directory.

` + usageExamples,
		Args: cobra.ArbitraryArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if c == nil {
				return
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Version {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ghi %s\n", version)
				return nil
			}

			parsed, err := domain.ParseState(state)
			if err != nil {
				return err
			}
			opts.State = parsed
			opts.HasMessage = cmd.Flags().Changed("message")

			cacheDir := opts.Cache
			if cacheDir == "" {
				cacheDir = c.AppConfig.Cache.Dir
			}
			if err := c.EnableCache(cmd.Context(), cacheDir); err != nil {
				return err
			}

			inv := Resolve(args, opts)
			c.Logger.Debug("dispatch", "command", inv.Name, "args", inv.Args)

			handlers := &issueHandlers{c: c, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}
			return NewDispatcher(handlers.table()).Dispatch(cmd.Context(), inv)
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "show issue details (only for show, list and search commands)")
	flags.StringVarP(&state, "state", "s", string(domain.DefaultState),
		"specify state (only for list and search (except `all`) commands): open (o), closed (c), all (a)")
	flags.StringVarP(&opts.Message, "message", "m", "", "message content for opening an issue without using the editor")
	flags.StringVarP(&opts.Repo, "repo", "r", "",
		"specify a repository (format: `user/repo` or just `repo` (latter will get the user from github.user))")
	flags.BoolVarP(&opts.Web, "web", "w", false, "show issue(s) page in web browser (only for list and show commands)")
	flags.StringVarP(&opts.Cache, "cache", "c", "", "specify a directory to cache HTTP data")
	flags.BoolVarP(&opts.Version, "version", "V", false, "show program's version number and exit")

	// Long aliases kept for compatibility
	flags.StringVar(&opts.Repo, "repository", "", "alias for --repo")
	flags.BoolVar(&opts.Web, "webbrowser", false, "alias for --web")
	markHidden(flags, "repository", "webbrowser")

	return root
}

// markHidden hides compatibility aliases from the usage output.
func markHidden(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = flags.MarkHidden(name)
	}
}

// ErrorMessage returns the text printed after "error: " for err.
// Classified errors are shown by their own message without the wrapping context;
// environment errors keep their cause.
func ErrorMessage(err error) string {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		return err.Error()
	}
	if derr.Kind == domain.KindEnvironment && derr.Err != nil && derr.Msg != "" {
		return derr.Msg + ": " + derr.Err.Error()
	}
	return derr.Error()
}
