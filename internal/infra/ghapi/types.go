package ghapi

import "github.com/ghi-cli/ghi/internal/domain"

// issue is the wire form of an issue.
type issue struct {
	CreatedAt domain.Timestamp `json:"created_at"`
	UpdatedAt domain.Timestamp `json:"updated_at"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	User      string           `json:"user"`
	State     string           `json:"state"`
	Labels    []string         `json:"labels"`
	Number    int              `json:"number"`
	Votes     int              `json:"votes"`
	Comments  int              `json:"comments"`
}

func (i *issue) toDomain() *domain.Issue {
	return &domain.Issue{
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
		Title:     i.Title,
		Body:      i.Body,
		User:      i.User,
		State:     domain.State(i.State),
		Labels:    i.Labels,
		Number:    i.Number,
		Votes:     i.Votes,
		Comments:  i.Comments,
	}
}

// comment is the wire form of a comment.
type comment struct {
	CreatedAt domain.Timestamp `json:"created_at"`
	UpdatedAt domain.Timestamp `json:"updated_at"`
	User      string           `json:"user"`
	Body      string           `json:"body"`
}

func (c *comment) toDomain() domain.Comment {
	return domain.Comment{
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		User:      c.User,
		Body:      c.Body,
	}
}

// errorMessage is one entry of an error payload: {"error":[{"error":"..."}]}.
type errorMessage struct {
	Error string `json:"error"`
}

func toDomainIssues(in []issue) []*domain.Issue {
	out := make([]*domain.Issue, 0, len(in))
	for i := range in {
		out = append(out, in[i].toDomain())
	}
	return out
}
