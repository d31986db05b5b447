package library

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcstudio-server/internal/common/config"
	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/models"
)

type stubSearcher struct {
	err   error
	posts []models.LibraryPost
	calls int
}

func (s *stubSearcher) Search(_ context.Context, _ string, _ map[string]interface{}, out interface{}) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	resp := out.(*esSearchResponse)
	for _, p := range s.posts {
		resp.Hits.Hits = append(resp.Hits.Hits, struct {
			Source models.LibraryPost `json:"_source"`
		}{Source: p})
	}
	return nil
}

func newLibraryService(t *testing.T, searcher Searcher) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(&database.PostgresClient{DB: db}, nil, searcher,
		config.LibraryConfig{CacheTTL: 300}, "library-posts", logger.NewNoOpLogger()), mock
}

func postColumns() []string {
	return []string{"id", "title", "slug", "excerpt", "content", "category", "plan_required", "published", "created_at"}
}

func postRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(postColumns()).
		AddRow("p-1", "Post aberto", "post-aberto", "resumo", "conteúdo completo", "design", "free", true, now).
		AddRow("p-2", "Post básico", "post-basico", "resumo", "conteúdo básico", "design", "basic", true, now).
		AddRow("p-3", "Post pro", "post-pro", "resumo", "conteúdo pro", "negócios", "pro", true, now)
}

func TestListPostsLocksByPlan(t *testing.T) {
	svc, mock := newLibraryService(t, nil)

	mock.ExpectQuery("SELECT (.+) FROM library_posts WHERE published").
		WillReturnRows(postRows())

	posts, err := svc.ListPosts(context.Background(), models.PlanBasic)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.False(t, posts[0].Locked)
	assert.Equal(t, "conteúdo completo", posts[0].Content)

	assert.False(t, posts[1].Locked)
	assert.Equal(t, "conteúdo básico", posts[1].Content)

	// pro content is listed but stripped for basic subscribers
	assert.True(t, posts[2].Locked)
	assert.Empty(t, posts[2].Content)
	assert.Equal(t, "Post pro", posts[2].Title)
}

func TestGetPostDeniedForLockedPlan(t *testing.T) {
	svc, mock := newLibraryService(t, nil)

	mock.ExpectQuery("SELECT (.+) FROM library_posts WHERE slug").
		WithArgs("post-pro").
		WillReturnRows(sqlmock.NewRows(postColumns()).
			AddRow("p-3", "Post pro", "post-pro", "resumo", "conteúdo pro", "negócios", "pro", true, time.Now()))

	_, err := svc.GetPost(context.Background(), models.PlanFree, "post-pro")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePlanRequired))
}

func TestGetPostNotFound(t *testing.T) {
	svc, mock := newLibraryService(t, nil)

	mock.ExpectQuery("SELECT (.+) FROM library_posts WHERE slug").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(postColumns()))

	_, err := svc.GetPost(context.Background(), models.PlanPro, "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestSearchPostsUsesElasticsearch(t *testing.T) {
	searcher := &stubSearcher{posts: []models.LibraryPost{
		{ID: "p-3", Title: "Post pro", PlanRequired: models.PlanPro, Content: "conteúdo pro", Published: true},
	}}
	svc, _ := newLibraryService(t, searcher)

	posts, err := svc.SearchPosts(context.Background(), models.PlanFree, "pro")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 1, searcher.calls)
	assert.True(t, posts[0].Locked)
	assert.Empty(t, posts[0].Content)
}

func TestSearchPostsFallsBackToSQL(t *testing.T) {
	searcher := &stubSearcher{err: fmt.Errorf("cluster unreachable")}
	svc, mock := newLibraryService(t, searcher)

	mock.ExpectQuery("SELECT (.+) FROM library_posts").
		WithArgs("%design%").
		WillReturnRows(postRows())

	posts, err := svc.SearchPosts(context.Background(), models.PlanPro, "design")
	require.NoError(t, err)
	assert.Len(t, posts, 3)
	assert.Equal(t, 1, searcher.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLessonsStripsLockedVideo(t *testing.T) {
	svc, mock := newLibraryService(t, nil)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM lessons").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "video_url", "duration", "is_premium", "created_at"}).
			AddRow("l-1", "Aula aberta", "intro", "https://videos/a1", "10:00", false, now).
			AddRow("l-2", "Aula premium", "avançada", "https://videos/a2", "25:00", true, now))

	lessons, err := svc.ListLessons(context.Background(), models.PlanBasic)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "https://videos/a1", lessons[0].VideoURL)
	assert.True(t, lessons[1].Locked)
	assert.Empty(t, lessons[1].VideoURL)
}

func TestListSnippetsProSeesEverything(t *testing.T) {
	svc, mock := newLibraryService(t, nil)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM code_snippets").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "language", "code", "is_premium", "created_at"}).
			AddRow("s-1", "Snippet premium", "hero animado", "css", ".hero { }", true, now))

	snippets, err := svc.ListSnippets(context.Background(), models.PlanPro)
	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.False(t, snippets[0].Locked)
	assert.Equal(t, ".hero { }", snippets[0].Code)
}

func TestListTipsStripsLockedContent(t *testing.T) {
	svc, mock := newLibraryService(t, nil)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM tips").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "category", "is_premium", "created_at"}).
			AddRow("t-1", "Dica premium", "segredo", "vendas", true, now))

	tips, err := svc.ListTips(context.Background(), models.PlanFree)
	require.NoError(t, err)
	require.Len(t, tips, 1)
	assert.True(t, tips[0].Locked)
	assert.Empty(t, tips[0].Content)
	assert.Equal(t, "Dica premium", tips[0].Title)
}
