package service

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"
	"xss-labs/internal/domain"
	"xss-labs/internal/transform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	mu       sync.Mutex
	comments []*domain.Comment
	err      error
}

func (m *memoryRepo) CreateComment(_ context.Context, c *domain.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.comments = append(m.comments, c)
	return nil
}

func (m *memoryRepo) ListComments(_ context.Context) ([]*domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := append([]*domain.Comment(nil), m.comments...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryRepo) CountComments(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.comments), m.err
}

func newTestService(repo CommentRepository) *LabService {
	svc := NewLabService(repo)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	svc.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
	return svc
}

func TestPageUnknownLab(t *testing.T) {
	svc := newTestService(&memoryRepo{})
	_, err := svc.Page("dom-clobbering", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLabNotFound))
}

func TestPageReflectsInputAndSignal(t *testing.T) {
	svc := newTestService(&memoryRepo{})
	page, err := svc.Page("reflected-basic", map[string]string{"name": "<script>alert(1)</script>"})
	require.NoError(t, err)

	assert.Equal(t, "<script>alert(1)</script>", page.Value("name"))
	assert.Equal(t, "/labs/xss/url-parameter/", page.NextLabURL)
	require.NotNil(t, page.Signal)
	assert.True(t, page.Signal.Found)
	assert.Equal(t, 1, page.Signal.Markup.Scripts)
}

func TestInspectFillsMarkup(t *testing.T) {
	svc := newTestService(&memoryRepo{})
	sig := svc.Inspect(`<a href="javascript:alert(1)" onclick="x()">t</a>`)

	assert.True(t, sig.Found)
	assert.Equal(t, "event-handler", sig.Group)
	assert.Equal(t, []string{"a"}, sig.Markup.Elements)
	assert.Equal(t, []string{"onclick"}, sig.Markup.EventHandlers)
	assert.Equal(t, []string{"javascript:alert(1)"}, sig.Markup.ScriptURLs)
}

func TestPageWithoutInputHasNoSignal(t *testing.T) {
	svc := newTestService(&memoryRepo{})
	page, err := svc.Page("dom-basic", map[string]string{"color": ""})
	require.NoError(t, err)
	assert.Nil(t, page.Signal)
	assert.Nil(t, page.Input)
}

func TestLastLabHasNoNext(t *testing.T) {
	svc := newTestService(&memoryRepo{})
	page, err := svc.Page("file-upload-xss", nil)
	require.NoError(t, err)
	assert.Empty(t, page.NextLabURL)
}

func TestStoredPageNewestFirst(t *testing.T) {
	repo := &memoryRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.StoredPage(ctx, "Alice", "<script>alert(1)</script>")
	require.NoError(t, err)
	page, err := svc.StoredPage(ctx, "Bob", "second")
	require.NoError(t, err)

	require.Len(t, page.Comments, 2)
	assert.Equal(t, "Bob", page.Comments[0].Name)
	assert.Equal(t, "<script>alert(1)</script>", page.Comments[1].Body)
	assert.NotEmpty(t, page.Comments[1].ID)
}

func TestStoredPageSkipsIncompleteComment(t *testing.T) {
	repo := &memoryRepo{}
	svc := newTestService(repo)

	page, err := svc.StoredPage(context.Background(), "Alice", "")
	require.NoError(t, err)
	assert.Empty(t, page.Comments)
	assert.Empty(t, repo.comments)
}

func TestPostCommentWrapsRepositoryError(t *testing.T) {
	boom := errors.New("disk full")
	svc := newTestService(&memoryRepo{err: boom})

	_, err := svc.PostComment(context.Background(), "a", "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestFilterPage(t *testing.T) {
	svc := newTestService(&memoryRepo{})

	page, err := svc.FilterPage("<script>alert(1)</script>")
	require.NoError(t, err)
	require.NotNil(t, page.Filter)
	assert.Equal(t, "alert(1)", page.Filter.Output)
	assert.Equal(t, []string{"<script>", "</script>"}, page.Filter.BlockedPatterns)
	assert.NotContains(t, page.SanitizedComment, "<script>")

	page, err = svc.FilterPage("<ScRiPt>alert(1)</ScRiPt>")
	require.NoError(t, err)
	assert.Equal(t, "<ScRiPt>alert(1)</ScRiPt>", page.Filter.Output)
	assert.Empty(t, page.Filter.BlockedPatterns)

	page, err = svc.FilterPage("")
	require.NoError(t, err)
	assert.Nil(t, page.Filter)
}

func TestMarkdownPage(t *testing.T) {
	svc := newTestService(&memoryRepo{})
	page, err := svc.MarkdownPage("**hi** [x](javascript:void)")
	require.NoError(t, err)
	assert.Equal(t, `<strong>hi</strong> <a href="javascript:void">x</a>`, page.MarkdownContent)
}

func TestContentTypePage(t *testing.T) {
	svc := newTestService(&memoryRepo{})

	page, err := svc.ContentTypePage("x.html")
	require.NoError(t, err)
	assert.Equal(t, "text/html", page.DetectedContentType)

	page, err = svc.ContentTypePage("")
	require.NoError(t, err)
	assert.Equal(t, transform.DefaultContentType, page.DetectedContentType)
}

func TestUploadPage(t *testing.T) {
	svc := newTestService(&memoryRepo{})

	page, err := svc.UploadPage([]byte("<svg onload=alert(1)>"))
	require.NoError(t, err)
	assert.Equal(t, "<svg onload=alert(1)>", page.UploadedContent)

	page, err = svc.UploadPage([]byte{0xc3, 0x28})
	require.NoError(t, err)
	assert.Equal(t, transform.UnreadableUpload, page.UploadedContent)

	page, err = svc.UploadPage(nil)
	require.NoError(t, err)
	assert.Empty(t, page.UploadedContent)
}

func TestJSContextPage(t *testing.T) {
	svc := newTestService(&memoryRepo{})

	page, err := svc.JSContextPage(`"; alert('XSS'); //`)
	require.NoError(t, err)
	require.NotNil(t, page.JSVerdict)
	assert.True(t, page.JSVerdict.Executed)
	assert.Contains(t, page.Script, `var username = ""; alert('XSS'); //";`)

	page, err = svc.JSContextPage("")
	require.NoError(t, err)
	assert.Nil(t, page.JSVerdict)
}

func TestDashboard(t *testing.T) {
	svc := newTestService(&memoryRepo{})
	d := svc.Dashboard()
	assert.Equal(t, 14, d.TotalLabs)
}

func TestHealthService(t *testing.T) {
	repo := &memoryRepo{}
	require.NoError(t, repo.CreateComment(context.Background(), &domain.Comment{Name: "a", Body: "b"}))

	ok := NewHealthService(repo, t.TempDir()).CheckHealth(context.Background())
	assert.Equal(t, StatusOK, ok.Status)
	assert.Equal(t, "ok (1 comentários)", ok.Checks["comments"])
	assert.Contains(t, ok.Checks["upload_spill"], "ok (")

	down := NewHealthService(&memoryRepo{err: errors.New("closed")}, t.TempDir()).CheckHealth(context.Background())
	assert.Equal(t, StatusUnavailable, down.Status)
	assert.Equal(t, "error: closed", down.Checks["comments"])
}

func TestHealthServiceSpillDirMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nao-existe")
	res := NewHealthService(&memoryRepo{}, missing).CheckHealth(context.Background())

	assert.Equal(t, StatusDegraded, res.Status)
	assert.True(t, strings.HasPrefix(res.Checks["upload_spill"], "error: "))
	assert.Equal(t, "ok (0 comentários)", res.Checks["comments"])
}

func TestHealthServiceExtraChecks(t *testing.T) {
	extra := Check{
		Name: "templates",
		Run: func(context.Context) (string, error) {
			return "", errors.New("sem template para svg-xss")
		},
	}
	res := NewHealthService(&memoryRepo{}, t.TempDir(), extra).CheckHealth(context.Background())
	assert.Equal(t, StatusDegraded, res.Status)
	assert.Equal(t, "error: sem template para svg-xss", res.Checks["templates"])

	extra.Critical = true
	res = NewHealthService(&memoryRepo{}, t.TempDir(), extra).CheckHealth(context.Background())
	assert.Equal(t, StatusUnavailable, res.Status)
}
