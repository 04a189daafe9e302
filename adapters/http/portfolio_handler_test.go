package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanntran/folio-forge/adapters/persistence"
	"github.com/hanntran/folio-forge/internal/application/usecase/extract"
	portfolioUC "github.com/hanntran/folio-forge/internal/application/usecase/portfolio"
	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/pkg/apperror"
	"github.com/hanntran/folio-forge/pkg/logger"
)

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) GenerateChatResponse(ctx context.Context, prompt string) (string, error) {
	return s.response, s.err
}

type stubParser struct {
	text string
	err  error
}

func (s *stubParser) ExtractText(ctx context.Context, file io.Reader, size int64) (string, error) {
	return s.text, s.err
}

type testEnv struct {
	router *gin.Engine
	repo   portfolio.Repository
}

func newTestEnv(t *testing.T, llmResponse string, parsedText string) *testEnv {
	return newTestEnvWithParser(t, llmResponse, &stubParser{text: parsedText})
}

func newTestEnvWithParser(t *testing.T, llmResponse string, parser *stubParser) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewZapLogger("development")
	repo := persistence.NewMemoryPortfolioRepo()
	llm := &stubLLM{response: llmResponse}

	generateUC := portfolioUC.NewGeneratePortfolioUseCase(
		repo, extract.NewExtractor(llm, log), extract.NewClassifier(llm, log), nil, log)
	updateUC := portfolioUC.NewUpdatePortfolioUseCase(repo, nil, nil, log)
	getUC := portfolioUC.NewGetPortfolioUseCase(repo)
	renderUC := portfolioUC.NewRenderPortfolioUseCase(repo, nil, log)
	feedUC := portfolioUC.NewFeedUseCase(repo, "http://localhost:8080")

	h := NewPortfolioHandler(generateUC, updateUC, getUC, renderUC, feedUC, parser, log)
	return &testEnv{router: NewRouter(h, log), repo: repo}
}

func (e *testEnv) do(method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

const manualBody = `{
	"manualData": {
		"personalInfo": {"name": "Jane Doe", "github": "janedoe"},
		"summary": "Backend engineer.",
		"skills": ["Go"],
		"profession": "Software Developer"
	}
}`

func TestHealth(t *testing.T) {
	env := newTestEnv(t, "", "")
	rec := env.do(http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}

func TestGeneratePortfolio_ManualData(t *testing.T) {
	env := newTestEnv(t, "", "")
	rec := env.do(http.MethodPost, "/api/portfolios", "application/json", strings.NewReader(manualBody))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PortfolioResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.PortfolioID)
	assert.Equal(t, "Jane Doe", resp.PortfolioData.PersonalInfo.Name)
	// Manual profiles never reach the classifier.
	assert.Equal(t, "Default", resp.PortfolioData.Profession)
	assert.Equal(t, "Professional Blue", resp.Theme.Name)
	assert.Equal(t, "https://github.com/janedoe", resp.PortfolioData.PersonalInfo.GitHub)
}

func TestGeneratePortfolio_EmptyBodyRejected(t *testing.T) {
	env := newTestEnv(t, "", "")
	rec := env.do(http.MethodPost, "/api/portfolios", "application/json", strings.NewReader(`{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid input")
}

func TestGeneratePortfolio_ResumeTextViaJSON(t *testing.T) {
	extraction := `{"personalInfo":{"name":"Sam Lee","email":"","phone":"","website":"","linkedin":"","github":""},` +
		`"summary":"Engineer","skills":["Go"],"experience":[],"projects":[],"education":[]}`
	env := newTestEnv(t, extraction, "")

	body := `{"resumeText": "Sam Lee. Engineer. Go."}`
	rec := env.do(http.MethodPost, "/api/portfolios", "application/json", strings.NewReader(body))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PortfolioResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Sam Lee", resp.PortfolioData.PersonalInfo.Name)
	// The classifier shares the stub and sees JSON, which is not a known
	// label, so the record falls back to Default.
	assert.Equal(t, "Default", resp.PortfolioData.Profession)
}

func TestGeneratePortfolio_MultipartResume(t *testing.T) {
	extraction := `{"personalInfo":{"name":"Sam Lee","email":"","phone":"","website":"","linkedin":"","github":""},` +
		`"summary":"Engineer","skills":[],"experience":[],"projects":[],"education":[]}`
	env := newTestEnv(t, extraction, "Sam Lee. Engineer.")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("resume", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rec := env.do(http.MethodPost, "/api/portfolios", w.FormDataContentType(), &buf)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PortfolioResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Sam Lee", resp.PortfolioData.PersonalInfo.Name)
}

func TestGeneratePortfolio_UnreadablePDFSurfacesDetail(t *testing.T) {
	parseErr := apperror.NewInvalidInput("file is not a readable PDF document", errors.New("bad xref table"))
	env := newTestEnvWithParser(t, "", &stubParser{err: parseErr})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("resume", "broken.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("not a pdf"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rec := env.do(http.MethodPost, "/api/portfolios", w.FormDataContentType(), &buf)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file is not a readable PDF document")
}

func TestUpdatePortfolio_MalformedID(t *testing.T) {
	env := newTestEnv(t, "", "")
	rec := env.do(http.MethodPost, "/api/portfolios/not-a-uuid", "application/json", strings.NewReader(`{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePortfolio_UnknownID(t *testing.T) {
	env := newTestEnv(t, "", "")
	body := `{"personalInfo":{"name":"Jane"},"profession":"Designer"}`
	rec := env.do(http.MethodPost, "/api/portfolios/"+uuid.NewString(), "application/json", strings.NewReader(body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestUpdatePortfolio_Success(t *testing.T) {
	env := newTestEnv(t, "", "")
	generated := env.do(http.MethodPost, "/api/portfolios", "application/json", strings.NewReader(manualBody))
	require.Equal(t, http.StatusOK, generated.Code)

	var created PortfolioResponse
	require.NoError(t, json.Unmarshal(generated.Body.Bytes(), &created))

	body := `{"personalInfo":{"name":"Jane Doe"},"summary":"Updated.","profession":"Designer"}`
	rec := env.do(http.MethodPost, "/api/portfolios/"+created.PortfolioID, "application/json", strings.NewReader(body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	stored, err := env.repo.FindByID(context.Background(), uuid.MustParse(created.PortfolioID))
	require.NoError(t, err)
	assert.Equal(t, "Designer", stored.Profile.Profession)
	assert.Equal(t, "Creative Vibrant", stored.SelectedTheme)
}

func TestViewPortfolio(t *testing.T) {
	env := newTestEnv(t, "", "")
	generated := env.do(http.MethodPost, "/api/portfolios", "application/json", strings.NewReader(manualBody))
	require.Equal(t, http.StatusOK, generated.Code)

	var created PortfolioResponse
	require.NoError(t, json.Unmarshal(generated.Body.Bytes(), &created))

	rec := env.do(http.MethodGet, "/p/"+created.PortfolioID, "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
}

func TestViewPortfolio_UnknownID(t *testing.T) {
	env := newTestEnv(t, "", "")
	rec := env.do(http.MethodGet, "/p/"+uuid.NewString(), "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileImage_InlineData(t *testing.T) {
	env := newTestEnv(t, "", "")
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	rec := &portfolio.Record{
		ShareID:           uuid.New(),
		Profile:           portfolio.Profile{Profession: "Default"},
		ProfilePictureURL: portfolio.EncodePictureDataURL("image/png", raw),
		SelectedTheme:     "Professional Blue",
	}
	require.NoError(t, env.repo.Save(context.Background(), rec))

	resp := env.do(http.MethodGet, "/image/"+rec.ShareID.String(), "", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "image/png", resp.Header().Get("Content-Type"))
	assert.Equal(t, raw, resp.Body.Bytes())
}

func TestProfileImage_RedirectsToHostedURL(t *testing.T) {
	env := newTestEnv(t, "", "")
	rec := &portfolio.Record{
		ShareID:           uuid.New(),
		Profile:           portfolio.Profile{Profession: "Default"},
		ProfilePictureURL: "https://cdn.example.com/p.png",
		SelectedTheme:     "Professional Blue",
	}
	require.NoError(t, env.repo.Save(context.Background(), rec))

	resp := env.do(http.MethodGet, "/image/"+rec.ShareID.String(), "", nil)

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "https://cdn.example.com/p.png", resp.Header().Get("Location"))
}

func TestFeed(t *testing.T) {
	env := newTestEnv(t, "", "")
	generated := env.do(http.MethodPost, "/api/portfolios", "application/json", strings.NewReader(manualBody))
	require.Equal(t, http.StatusOK, generated.Code)

	rec := env.do(http.MethodGet, "/api/feed", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, rec.Body.String(), "<rss")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
}
