package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hanntran/folio-forge/internal/application/service"
	portfolioUC "github.com/hanntran/folio-forge/internal/application/usecase/portfolio"
	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/pkg/apperror"
	"github.com/hanntran/folio-forge/pkg/logger"
)

// Uploaded files are read fully into memory; resumes and photos are small.
const maxUploadBytes = 10 << 20

type PortfolioHandler struct {
	generateUseCase *portfolioUC.GeneratePortfolioUseCase
	updateUseCase   *portfolioUC.UpdatePortfolioUseCase
	getUseCase      *portfolioUC.GetPortfolioUseCase
	renderUseCase   *portfolioUC.RenderPortfolioUseCase
	feedUseCase     *portfolioUC.FeedUseCase
	resumeParser    service.ResumeParser
	logger          logger.Logger
}

func NewPortfolioHandler(
	generateUC *portfolioUC.GeneratePortfolioUseCase,
	updateUC *portfolioUC.UpdatePortfolioUseCase,
	getUC *portfolioUC.GetPortfolioUseCase,
	renderUC *portfolioUC.RenderPortfolioUseCase,
	feedUC *portfolioUC.FeedUseCase,
	parser service.ResumeParser,
	log logger.Logger,
) *PortfolioHandler {
	return &PortfolioHandler{
		generateUseCase: generateUC,
		updateUseCase:   updateUC,
		getUseCase:      getUC,
		renderUseCase:   renderUC,
		feedUseCase:     feedUC,
		resumeParser:    parser,
		logger:          log,
	}
}

func (h *PortfolioHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// GeneratePortfolio accepts either multipart/form-data (resume file plus
// optional photo) or a JSON body with resumeText or manualData.
func (h *PortfolioHandler) GeneratePortfolio(c *gin.Context) {
	var input portfolioUC.GeneratePortfolioInput

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		in, err := h.multipartInput(c)
		if err != nil {
			c.Error(err)
			return
		}
		input = *in
	} else {
		var req GeneratePortfolioRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.NewInvalidInput("invalid JSON body for portfolio generation", err))
			return
		}
		if req.ResumeText == "" && req.ManualData == nil {
			c.Error(apperror.NewInvalidInput("either resumeText or manualData is required", nil))
			return
		}
		input.ResumeText = req.ResumeText
		if req.ManualData != nil {
			profile := req.ManualData.ToDomain()
			input.ManualProfile = &profile
		}
	}

	output, err := h.generateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioResponse(output.Record))
}

func (h *PortfolioHandler) multipartInput(c *gin.Context) (*portfolioUC.GeneratePortfolioInput, error) {
	input := &portfolioUC.GeneratePortfolioInput{}

	resumeHeader, err := c.FormFile("resume")
	if err != nil {
		return nil, apperror.NewInvalidInput("'resume' file is required for multipart requests", err)
	}
	if resumeHeader.Size > maxUploadBytes {
		return nil, apperror.NewInvalidInput("resume file exceeds the upload limit", nil)
	}

	resumeFile, err := resumeHeader.Open()
	if err != nil {
		return nil, apperror.NewInternal("cannot open uploaded resume", err)
	}
	defer resumeFile.Close()

	text, err := h.resumeParser.ExtractText(c.Request.Context(), resumeFile, resumeHeader.Size)
	if err != nil {
		return nil, err
	}
	input.ResumeText = text

	if photoHeader, err := c.FormFile("photo"); err == nil {
		if photoHeader.Size > maxUploadBytes {
			return nil, apperror.NewInvalidInput("photo exceeds the upload limit", nil)
		}
		photoFile, err := photoHeader.Open()
		if err != nil {
			return nil, apperror.NewInternal("cannot open uploaded photo", err)
		}
		defer photoFile.Close()

		data, err := io.ReadAll(photoFile)
		if err != nil {
			return nil, apperror.NewInternal("cannot read uploaded photo", err)
		}
		input.Photo = data
		input.PhotoContentType = photoHeader.Header.Get("Content-Type")
	}

	return input, nil
}

func (h *PortfolioHandler) UpdatePortfolio(c *gin.Context) {
	shareID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("malformed portfolio identifier", err))
		return
	}

	var req UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for portfolio update", err))
		return
	}

	input := portfolioUC.UpdatePortfolioInput{
		ShareID:           shareID,
		Profile:           req.ProfileDTO.ToDomain(),
		ProfilePictureURL: req.ProfilePictureURL,
	}
	output, err := h.updateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"portfolioId": output.Record.ShareID.String(),
	})
}

func (h *PortfolioHandler) ViewPortfolio(c *gin.Context) {
	shareID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("malformed portfolio identifier", err))
		return
	}

	output, err := h.renderUseCase.Execute(c.Request.Context(), portfolioUC.RenderPortfolioInput{ShareID: shareID})
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(output.HTML))
}

// ProfileImage serves the stored inline picture bytes, or redirects to the
// hosted/placeholder URL when the record does not carry inline data.
func (h *PortfolioHandler) ProfileImage(c *gin.Context) {
	shareID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("malformed portfolio identifier", err))
		return
	}

	output, err := h.getUseCase.Execute(c.Request.Context(), portfolioUC.GetPortfolioInput{ShareID: shareID})
	if err != nil {
		c.Error(err)
		return
	}

	pictureURL := output.Record.ProfilePictureURL
	if contentType, data, ok := portfolio.DecodePictureDataURL(pictureURL); ok {
		c.Data(http.StatusOK, contentType, data)
		return
	}
	if pictureURL == "" {
		pictureURL = portfolio.PlaceholderAvatarURL(output.Record.Profile.PersonalInfo.Name)
	}
	c.Redirect(http.StatusFound, pictureURL)
}

func (h *PortfolioHandler) Feed(c *gin.Context) {
	feed, err := h.feedUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate portfolio feed", err))
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write RSS feed to response", err)
	}
}
