package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/hanntran/folio-forge/internal/application/service"
	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/pkg/apperror"
	"github.com/hanntran/folio-forge/pkg/logger"
	"go.uber.org/zap"
)

const extractionPrompt = `You are a resume parsing assistant. Extract structured data from the resume text below.

Respond with ONLY a single JSON object. Do NOT include any explanatory text, backticks, or code fences. The object must have exactly these keys:

{
  "personalInfo": {
    "name": "string",
    "email": "string",
    "phone": "string",
    "website": "string",
    "linkedin": "string - bare username only, never a URL",
    "github": "string - bare username only, never a URL"
  },
  "summary": "string - professional summary, 2-4 sentences",
  "skills": ["array of skill name strings"],
  "experience": [
    {"company": "string", "role": "string", "dates": "string as written in the resume", "description": ["array of bullet strings"]}
  ],
  "projects": [
    {"title": "string", "description": "string", "link": "string URL or empty"}
  ],
  "education": [
    {"institution": "string", "degree": "string", "dates": "string"}
  ]
}

Use empty strings and empty arrays for anything the resume does not mention.

Resume text:
`

// Extractor turns raw resume text into a normalized profile through one
// call to the external model.
type Extractor struct {
	llm    service.LLMService
	logger logger.Logger
}

func NewExtractor(llm service.LLMService, log logger.Logger) *Extractor {
	return &Extractor{llm: llm, logger: log}
}

func (e *Extractor) Extract(ctx context.Context, resumeText string) (*portfolio.Profile, error) {
	raw, err := e.llm.GenerateChatResponse(ctx, extractionPrompt+resumeText)
	if err != nil {
		return nil, apperror.NewExternalService("resume extraction call failed", err)
	}

	profile, err := parseProfile(raw)
	if err != nil {
		e.logger.Error("Model returned malformed extraction", err, zap.Int("response_len", len(raw)))
		return nil, apperror.NewExternalService("malformed extraction from model", err)
	}

	e.logger.Info("Resume extracted",
		zap.Int("skills", len(profile.Skills)),
		zap.Int("experience", len(profile.Experience)),
		zap.Int("projects", len(profile.Projects)))
	return profile, nil
}

func parseProfile(raw string) (*portfolio.Profile, error) {
	cleaned := CleanModelResponse(raw)
	if !strings.HasPrefix(cleaned, "{") {
		if span, ok := firstJSONObject(cleaned); ok {
			cleaned = span
		}
	}

	var p portfolio.Profile
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CleanModelResponse strips markdown code-fence markers the model sometimes
// wraps around its output.
func CleanModelResponse(response string) string {
	if !strings.Contains(response, "```") {
		return strings.TrimSpace(response)
	}

	start := -1
	if idx := strings.Index(response, "```json"); idx != -1 {
		start = idx + len("```json")
	} else {
		start = strings.Index(response, "```") + 3
	}

	end := strings.LastIndex(response, "```")
	if start != -1 && end != -1 && end > start {
		return strings.TrimSpace(response[start:end])
	}
	return strings.TrimSpace(response)
}

// firstJSONObject recovers a JSON object embedded in surrounding prose by
// locating the first balanced {...} span. Braces inside string literals are
// skipped.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
