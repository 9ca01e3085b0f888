package ghapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghi-cli/ghi/internal/domain"
)

var testRepo = domain.Repo{Owner: "alice", Name: "tool"}

const issueJSON = `{
	"number": 3,
	"votes": 1,
	"created_at": "2010/02/04 21:03:05 -0800",
	"updated_at": "2010/02/05 10:00:00 -0800",
	"body": "It breaks.",
	"title": "Crash",
	"user": "bob",
	"labels": ["bug"],
	"state": "open",
	"comments": 2
}`

// recorded captures the last request seen by the test server.
type recorded struct {
	form   url.Values
	method string
	path   string
	query  url.Values
}

func newTestServer(t *testing.T, status int, body string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()
		rec.query = r.URL.Query()
		if r.Method == http.MethodPost {
			require.NoError(t, r.ParseForm())
			rec.form = r.PostForm
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL + "/")), rec
}

func TestClient_List(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"issues":[`+issueJSON+`]}`)

	issues, err := client.List(context.Background(), testRepo, domain.StateClosed)

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/v2/json/issues/alice/tool/list/closed", rec.path)
	require.Len(t, issues, 1)
	assert.Equal(t, 3, issues[0].Number)
	assert.Equal(t, "Crash", issues[0].Title)
	assert.Equal(t, domain.StateOpen, issues[0].State)
	assert.Equal(t, []string{"bug"}, issues[0].Labels)
	assert.Equal(t, "2010/02/04 21:03:05 -0800", issues[0].CreatedAt.String())
	assert.True(t, issues[0].HasBeenUpdated())
}

func TestClient_Show(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"issue":`+issueJSON+`}`)

	issue, err := client.Show(context.Background(), testRepo, 3)

	require.NoError(t, err)
	assert.Equal(t, "/api/v2/json/issues/alice/tool/show/3", rec.path)
	assert.Equal(t, 2, issue.Comments)
	assert.Equal(t, 1, issue.Votes)
	assert.Equal(t, "bob", issue.User)
}

func TestClient_Search_EscapesTerm(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"issues":[]}`)

	issues, err := client.Search(context.Background(), testRepo, domain.StateOpen, "null pointer/crash")

	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, "/api/v2/json/issues/alice/tool/search/open/null%20pointer%2Fcrash", rec.path)
}

func TestClient_Open_SendsFormAndCredentials(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"issue":`+issueJSON+`}`)
	WithCredentials("alice", "secret")(client)

	issue, err := client.Open(context.Background(), testRepo, "Crash", "It breaks.")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/v2/json/issues/alice/tool/open", rec.path)
	assert.Equal(t, "Crash", rec.form.Get("title"))
	assert.Equal(t, "It breaks.", rec.form.Get("body"))
	assert.Equal(t, "alice", rec.form.Get("login"))
	assert.Equal(t, "secret", rec.form.Get("token"))
	assert.Equal(t, 3, issue.Number)
}

func TestClient_Get_SendsCredentialsInQuery(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"issues":[]}`)
	WithCredentials("alice", "secret")(client)

	_, err := client.List(context.Background(), testRepo, domain.StateOpen)

	require.NoError(t, err)
	assert.Equal(t, "alice", rec.query.Get("login"))
	assert.Equal(t, "secret", rec.query.Get("token"))
}

func TestClient_NoCredentialsWithoutToken(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"issues":[]}`)
	WithCredentials("alice", "")(client)

	_, err := client.List(context.Background(), testRepo, domain.StateOpen)

	require.NoError(t, err)
	assert.Empty(t, rec.query)
}

func TestClient_PostActions(t *testing.T) {
	tests := []struct {
		call func(c *Client) error
		name string
		path string
	}{
		{
			name: "close",
			path: "/api/v2/json/issues/alice/tool/close/4",
			call: func(c *Client) error { _, err := c.Close(context.Background(), testRepo, 4); return err },
		},
		{
			name: "reopen",
			path: "/api/v2/json/issues/alice/tool/reopen/4",
			call: func(c *Client) error { _, err := c.Reopen(context.Background(), testRepo, 4); return err },
		},
		{
			name: "edit",
			path: "/api/v2/json/issues/alice/tool/edit/4",
			call: func(c *Client) error {
				_, err := c.Edit(context.Background(), testRepo, 4, "t", "b")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestServer(t, http.StatusOK, `{"issue":`+issueJSON+`}`)

			require.NoError(t, tt.call(client))
			assert.Equal(t, http.MethodPost, rec.method)
			assert.Equal(t, tt.path, rec.path)
		})
	}
}

func TestClient_Comments(t *testing.T) {
	body := `{"comments":[
		{"user":"carol","body":"first","created_at":"2010/02/06 10:00:00 -0800","updated_at":"2010/02/06 10:00:00 -0800"},
		{"user":"dave","body":"second","created_at":"2010/02/07 10:00:00 -0800","updated_at":null}
	]}`
	client, rec := newTestServer(t, http.StatusOK, body)

	comments, err := client.Comments(context.Background(), testRepo, 3)

	require.NoError(t, err)
	assert.Equal(t, "/api/v2/json/issues/alice/tool/comments/3", rec.path)
	require.Len(t, comments, 2)
	assert.Equal(t, "carol", comments[0].User)
	assert.Equal(t, "second", comments[1].Body)
	assert.True(t, comments[1].UpdatedAt.IsZero())
}

func TestClient_Comment(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK,
		`{"comment":{"user":"alice","body":"thanks","created_at":"2010/02/06 10:00:00 -0800"}}`)

	c, err := client.Comment(context.Background(), testRepo, 3, "thanks")

	require.NoError(t, err)
	assert.Equal(t, "/api/v2/json/issues/alice/tool/comment/3", rec.path)
	assert.Equal(t, "thanks", rec.form.Get("comment"))
	assert.Equal(t, "thanks", c.Body)
}

func TestClient_Labels(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{"labels":["bug","ui"]}`)

	labels, err := client.AddLabel(context.Background(), testRepo, 5, "ui")
	require.NoError(t, err)
	assert.Equal(t, "/api/v2/json/issues/alice/tool/label/add/ui/5", rec.path)
	assert.Equal(t, []string{"bug", "ui"}, labels)

	_, err = client.RemoveLabel(context.Background(), testRepo, 5, "ui")
	require.NoError(t, err)
	assert.Equal(t, "/api/v2/json/issues/alice/tool/label/remove/ui/5", rec.path)
}

func TestClient_ErrorPayload(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK,
		`{"error":[{"error":"issue not found"},{"error":"try again"}]}`)

	_, err := client.Show(context.Background(), testRepo, 99)

	require.Error(t, err)
	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
	assert.Equal(t, "issue not found\nerror: try again", err.Error())
}

func TestClient_ErrorPayloadOnFailureStatus(t *testing.T) {
	client, _ := newTestServer(t, http.StatusUnauthorized, `{"error":[{"error":"not authorized"}]}`)

	_, err := client.Close(context.Background(), testRepo, 1)

	assert.Equal(t, "not authorized", err.Error())
}

func TestClient_UnexpectedStatus(t *testing.T) {
	client, _ := newTestServer(t, http.StatusBadGateway, `<html>bad gateway</html>`)

	_, err := client.List(context.Background(), testRepo, domain.StateOpen)

	require.Error(t, err)
	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
	assert.Equal(t, fmt.Sprintf("unexpected status %d", http.StatusBadGateway), err.Error())
}

func TestClient_MissingKey(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, `{"something":"else"}`)

	_, err := client.Show(context.Background(), testRepo, 1)

	assert.ErrorIs(t, err, domain.ErrUnexpectedResponse)
	assert.Equal(t, "unexpected failure", err.Error())
}

func TestClient_Labels_NullIsEmpty(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, `{"labels":null}`)

	labels, err := client.RemoveLabel(context.Background(), testRepo, 5, "bug")

	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestClient_NullIssueIsUnexpected(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, `{"issue":null}`)

	_, err := client.Show(context.Background(), testRepo, 1)

	assert.ErrorIs(t, err, domain.ErrUnexpectedResponse)
}

func TestClient_TransportErrorHidesCredentials(t *testing.T) {
	// Setup: a server that is already gone
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()
	client := NewClient(WithBaseURL(baseURL), WithCredentials("me", "SECRET123"))

	// Execute
	_, err := client.List(context.Background(), testRepo, domain.StateOpen)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
	assert.Contains(t, err.Error(), "/api/v2/json/issues/alice/tool/list/open")
	assert.NotContains(t, err.Error(), "SECRET123")
	assert.NotContains(t, err.Error(), "login=me")
}
