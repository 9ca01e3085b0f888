package domain

import "context"

// IssueService is the remote issue tracker.
// Every method performs exactly one request.
type IssueService interface {
	// List returns the issues of repo in the given concrete state.
	List(ctx context.Context, repo Repo, state State) ([]*Issue, error)

	// Show returns a single issue.
	Show(ctx context.Context, repo Repo, number int) (*Issue, error)

	// Search returns the issues in the given state matching term.
	Search(ctx context.Context, repo Repo, state State, term string) ([]*Issue, error)

	// Open creates a new issue.
	Open(ctx context.Context, repo Repo, title, body string) (*Issue, error)

	// Close closes an issue.
	Close(ctx context.Context, repo Repo, number int) (*Issue, error)

	// Reopen reopens a closed issue.
	Reopen(ctx context.Context, repo Repo, number int) (*Issue, error)

	// Edit replaces the title and body of an issue.
	Edit(ctx context.Context, repo Repo, number int, title, body string) (*Issue, error)

	// Comments returns the comments of an issue in creation order.
	Comments(ctx context.Context, repo Repo, number int) ([]Comment, error)

	// Comment adds a comment to an issue.
	Comment(ctx context.Context, repo Repo, number int, body string) (*Comment, error)

	// AddLabel attaches a label and returns the resulting label set.
	AddLabel(ctx context.Context, repo Repo, number int, label string) ([]string, error)

	// RemoveLabel detaches a label and returns the resulting label set.
	RemoveLabel(ctx context.Context, repo Repo, number int, label string) ([]string, error)
}

// RepoResolver determines the repository a command operates on.
type RepoResolver interface {
	// Resolve returns the repository named by option ("user/repo" or "repo"),
	// or the one derived from the local git remote when option is empty.
	Resolve(option string) (Repo, error)
}

// Editor runs an interactive text editing session.
type Editor interface {
	// Edit opens initial in the user's editor and returns the saved text.
	Edit(ctx context.Context, initial string) (string, error)
}

// Browser opens web pages.
type Browser interface {
	// Open opens url in the user's web browser.
	Open(url string) error
}

// Sink receives command output incrementally.
type Sink interface {
	// WriteLines writes each line followed by a newline.
	WriteLines(lines ...string) error

	// Close flushes the output and releases the sink.
	Close() error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration.
	Load() (*Config, error)
}

// CommandExecutor runs external programs.
type CommandExecutor interface {
	// ExecuteInteractive runs a command attached to the terminal.
	ExecuteInteractive(ctx context.Context, cmd *ExecCommand) error
}
