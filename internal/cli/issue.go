package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ghi-cli/ghi/internal/app"
	"github.com/ghi-cli/ghi/internal/domain"
	"github.com/ghi-cli/ghi/internal/infra/pager"
	"github.com/ghi-cli/ghi/internal/usecase"
)

// issueHandlers implements the issue commands on top of the container's use cases.
type issueHandlers struct {
	c      *app.Container
	out    io.Writer
	errOut io.Writer
}

// table returns the handler for every command.
func (h *issueHandlers) table() map[Command]Handler {
	return map[Command]Handler{
		CommandList:    h.list,
		CommandShow:    h.show,
		CommandSearch:  h.search,
		CommandOpen:    h.open,
		CommandClose:   h.close,
		CommandReopen:  h.reopen,
		CommandEdit:    h.edit,
		CommandLabel:   h.label,
		CommandComment: h.comment,
	}
}

func (h *issueHandlers) repo(inv Invocation) (domain.Repo, error) {
	return h.c.Resolver.Resolve(inv.Options.Repo)
}

// pagedSink returns the sink for long command output.
func (h *issueHandlers) pagedSink(ctx context.Context) domain.Sink {
	return pager.Open(ctx, h.out, h.c.AppConfig.Display.Pager, h.c.Pager, h.c.Logger)
}

// print writes lines directly to stdout.
func (h *issueHandlers) print(lines ...string) error {
	return pager.NewWriterSink(h.out).WriteLines(lines...)
}

// openPage opens url in the browser. A failure is reported on stderr
// and false is returned so the caller can fall back to terminal output.
func (h *issueHandlers) openPage(url string) bool {
	if err := h.c.Browser.Open(url); err != nil {
		h.c.Logger.Debug("browser failed", "url", url, "error", err)
		_, _ = fmt.Fprintf(h.errOut, "error: %s\n", domain.ErrBrowserFailed.Msg)
		return false
	}
	return true
}

// parseNumber parses an issue number argument.
// Missing, non-integer and non-positive values fail with a usage example.
func parseNumber(arg, example string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, domain.WithExample(domain.ErrNumberRequired, example)
	}
	return n, nil
}

// closeSink closes s and keeps the first error.
func closeSink(s domain.Sink, err *error) {
	if cerr := s.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

func (h *issueHandlers) list(ctx context.Context, inv Invocation) (err error) {
	repo, err := h.repo(inv)
	if err != nil {
		return err
	}
	state := inv.Options.State
	if inv.Options.Web && h.openPage(listURL(h.c.WebURL(), repo, state)) {
		return nil
	}

	sink := h.pagedSink(ctx)
	defer closeSink(sink, &err)

	uc := h.c.ListIssuesUseCase()
	states := state.Expand()
	for i, st := range states {
		if err := sink.WriteLines(fmt.Sprintf("# %s issues on %s", st, repo)); err != nil {
			return err
		}
		out, err := uc.Execute(ctx, usecase.ListIssuesInput{Repo: repo, State: st})
		if err != nil {
			return err
		}
		if len(out.Issues) == 0 {
			if err := sink.WriteLines(fmt.Sprintf("no %s issues available", st)); err != nil {
				return err
			}
		}
		for _, issue := range out.Issues {
			if err := sink.WriteLines(h.c.Formatter.Issue(issue, inv.Options.Verbose)...); err != nil {
				return err
			}
		}
		if i < len(states)-1 {
			if err := sink.WriteLines(""); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *issueHandlers) show(ctx context.Context, inv Invocation) (err error) {
	number, err := parseNumber(inv.Arg(0), "ghi show 1")
	if err != nil {
		return err
	}
	repo, err := h.repo(inv)
	if err != nil {
		return err
	}
	if inv.Options.Web && h.openPage(issueURL(h.c.WebURL(), repo, number)) {
		return nil
	}

	out, err := h.c.ShowIssueUseCase().Execute(ctx, usecase.ShowIssueInput{Repo: repo, Number: number})
	if err != nil {
		return err
	}

	sink := h.pagedSink(ctx)
	defer closeSink(sink, &err)

	if err := sink.WriteLines(" "); err != nil {
		return err
	}
	if err := sink.WriteLines(h.c.Formatter.Issue(out.Issue, true)...); err != nil {
		return err
	}
	if !inv.Options.Verbose || out.Issue.Comments == 0 {
		return nil
	}

	comments, err := h.c.ListCommentsUseCase().Execute(ctx, usecase.ListCommentsInput{Repo: repo, Number: number})
	if err != nil {
		return err
	}
	total := len(comments.Comments)
	for i := range comments.Comments {
		if err := sink.WriteLines(h.c.Formatter.Comment(&comments.Comments[i], i+1, total)...); err != nil {
			return err
		}
		if err := sink.WriteLines(" "); err != nil {
			return err
		}
	}
	return nil
}

func (h *issueHandlers) search(ctx context.Context, inv Invocation) (err error) {
	repo, err := h.repo(inv)
	if err != nil {
		return err
	}

	out, err := h.c.SearchIssuesUseCase().Execute(ctx, usecase.SearchIssuesInput{
		Repo:  repo,
		Term:  inv.Arg(0),
		State: inv.Options.State,
	})
	if errors.Is(err, domain.ErrEmptySearchTerm) {
		return domain.WithExample(domain.ErrEmptySearchTerm, "ghi search experimental")
	}
	if err != nil {
		return err
	}

	sink := h.pagedSink(ctx)
	defer closeSink(sink, &err)

	if err := sink.WriteLines(fmt.Sprintf("# searching for '%s' returned %d issues", out.Term, len(out.Issues))); err != nil {
		return err
	}
	for _, issue := range out.Issues {
		if err := sink.WriteLines(h.c.Formatter.Issue(issue, inv.Options.Verbose)...); err != nil {
			return err
		}
	}
	return nil
}

func (h *issueHandlers) open(ctx context.Context, inv Invocation) error {
	repo, err := h.repo(inv)
	if err != nil {
		return err
	}
	out, err := h.c.OpenIssueUseCase().Execute(ctx, usecase.OpenIssueInput{
		Repo:       repo,
		Message:    inv.Options.Message,
		HasMessage: inv.Options.HasMessage,
	})
	if err != nil {
		return err
	}
	return h.printIssue(out.Issue)
}

func (h *issueHandlers) close(ctx context.Context, inv Invocation) error {
	number, err := parseNumber(inv.Arg(0), "ghi close 1")
	if err != nil {
		return err
	}
	repo, err := h.repo(inv)
	if err != nil {
		return err
	}
	out, err := h.c.CloseIssueUseCase().Execute(ctx, usecase.CloseIssueInput{Repo: repo, Number: number})
	if err != nil {
		return err
	}
	return h.printIssue(out.Issue)
}

func (h *issueHandlers) reopen(ctx context.Context, inv Invocation) error {
	number, err := parseNumber(inv.Arg(0), "ghi open 1")
	if err != nil {
		return err
	}
	repo, err := h.repo(inv)
	if err != nil {
		return err
	}
	out, err := h.c.ReopenIssueUseCase().Execute(ctx, usecase.ReopenIssueInput{Repo: repo, Number: number})
	if err != nil {
		return err
	}
	return h.printIssue(out.Issue)
}

func (h *issueHandlers) edit(ctx context.Context, inv Invocation) error {
	number, err := parseNumber(inv.Arg(0), "ghi edit 1")
	if err != nil {
		return err
	}
	repo, err := h.repo(inv)
	if err != nil {
		return err
	}
	out, err := h.c.EditIssueUseCase().Execute(ctx, usecase.EditIssueInput{Repo: repo, Number: number})
	if err != nil {
		return err
	}
	return h.printIssue(out.Issue)
}

func (h *issueHandlers) label(ctx context.Context, inv Invocation) error {
	command, label := inv.Arg(0), inv.Arg(1)
	number, err := parseNumber(inv.Arg(2), fmt.Sprintf("ghi label %s %s 1", orPlaceholder(command, "add"), orPlaceholder(label, "<label>")))
	if err != nil {
		return err
	}
	repo, err := h.repo(inv)
	if err != nil {
		return err
	}

	out, err := h.c.LabelIssueUseCase().Execute(ctx, usecase.LabelIssueInput{
		Repo:    repo,
		Command: command,
		Label:   label,
		Number:  number,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidLabelCommand):
		return domain.WithExample(domain.ErrInvalidLabelCommand, fmt.Sprintf("ghi label add %s %d", label, number))
	case errors.Is(err, domain.ErrLabelRequired):
		return domain.WithExample(domain.ErrLabelRequired, fmt.Sprintf("ghi label %s bug %d", command, number))
	case err != nil:
		return err
	}

	if len(out.Labels) == 0 {
		return h.print(fmt.Sprintf("no labels found for issue #%d", number))
	}
	lines := make([]string, 0, len(out.Labels)+1)
	lines = append(lines, fmt.Sprintf("labels for issue #%d:", number))
	for _, l := range out.Labels {
		lines = append(lines, "- "+l)
	}
	return h.print(lines...)
}

func (h *issueHandlers) comment(ctx context.Context, inv Invocation) error {
	number, err := parseNumber(inv.Arg(0), "ghi comment 1")
	if err != nil {
		return err
	}
	repo, err := h.repo(inv)
	if err != nil {
		return err
	}
	out, err := h.c.AddCommentUseCase().Execute(ctx, usecase.AddCommentInput{Repo: repo, Number: number})
	if err != nil {
		return err
	}
	if out.Comment == nil {
		return nil
	}
	return h.print(fmt.Sprintf("comment for issue #%d submitted successfully", number))
}

// printIssue prints the detailed block of an issue returned by a mutating command.
func (h *issueHandlers) printIssue(issue *domain.Issue) error {
	return h.print(append([]string{" "}, h.c.Formatter.Issue(issue, true)...)...)
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// listURL returns the browser page listing issues of repo.
func listURL(webURL string, repo domain.Repo, state domain.State) string {
	u := fmt.Sprintf("%s/%s/%s/issues", webURL, repo.Owner, repo.Name)
	if state == domain.StateClosed {
		u += "?state=closed"
	}
	return u
}

// issueURL returns the browser page of one issue.
func issueURL(webURL string, repo domain.Repo, number int) string {
	return fmt.Sprintf("%s/%s/%s/issues/%d", webURL, repo.Owner, repo.Name, number)
}
