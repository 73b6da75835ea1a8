package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shinyyama/omnicopy-backend/internal/ai"
	"github.com/shinyyama/omnicopy-backend/internal/export"
	"github.com/shinyyama/omnicopy-backend/internal/model"
	"github.com/shinyyama/omnicopy-backend/internal/repository"
	"github.com/shinyyama/omnicopy-backend/internal/reqctx"
	"github.com/shinyyama/omnicopy-backend/internal/service"
)

const (
	warnNotSaved    = "Le contenu a été généré mais n'a pas pu être enregistré dans l'historique."
	warnSavePending = "Le contenu a été généré ; l'enregistrement dans l'historique est en cours."
)

type GenerationHandler struct {
	svc      service.GenerationService
	saveWait time.Duration
}

// NewGenerationHandler: saveWait bounds how long a response waits for the history write.
func NewGenerationHandler(svc service.GenerationService, saveWait time.Duration) *GenerationHandler {
	if saveWait <= 0 {
		saveWait = 2 * time.Second
	}
	return &GenerationHandler{svc: svc, saveWait: saveWait}
}

type GenerateRequest struct {
	Input    model.ProductInput `json:"input"`
	Platform model.Platform     `json:"platform"`
}

type GenerateResponse struct {
	ID       string                 `json:"id,omitempty"`
	Platform model.Platform         `json:"platform"`
	Content  model.GeneratedContent `json:"content"`
	Input    model.ProductInput     `json:"input"`
	Saved    bool                   `json:"saved"`
	Warning  string                 `json:"warning,omitempty"`
}

type HistoryResponse struct {
	Items []model.ProductDescription `json:"items"`
}

type ExportRequest struct {
	Content model.GeneratedContent `json:"content"`
	Input   model.ProductInput     `json:"input"`
}

func (h *GenerationHandler) Generate(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	ctx := c.Request().Context()
	res, err := h.svc.Generate(ctx, uid, req.Platform, req.Input)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, newValidationResponse(verr))
		}
		var gerr *ai.GenerationError
		if errors.As(err, &gerr) {
			return c.JSON(http.StatusBadGateway, NewErrorResponse("generation_failed", ai.UserMessage))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", ai.UserMessage))
	}

	resp := GenerateResponse{Platform: res.Platform, Content: res.Content, Input: res.Input}
	select {
	case out := <-res.Saved:
		if out.Err != nil {
			resp.Warning = warnNotSaved
		} else {
			resp.Saved = true
			resp.ID = out.Record.ID
		}
	case <-time.After(h.saveWait):
		log.Printf("[gen] rid=%s uid=%s stage=persist_pending waitMs=%d", reqctx.RID(ctx), uid, h.saveWait.Milliseconds())
		resp.Warning = warnSavePending
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *GenerationHandler) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	items, err := h.svc.Recent(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, repository.ErrDBNotReady) {
			return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("unavailable", "history is not available"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch history"))
	}
	if items == nil {
		items = []model.ProductDescription{}
	}
	return c.JSON(http.StatusOK, HistoryResponse{Items: items})
}

func (h *GenerationHandler) ExportRecord(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	p, err := h.svc.ExportRecord(c.Request().Context(), uid, c.Param("id"), c.Param("format"))
	if err != nil {
		switch {
		case errors.Is(err, export.ErrUnknownFormat):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unknown export format"))
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "generation not found"))
		case errors.Is(err, repository.ErrDBNotReady):
			return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("unavailable", "history is not available"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to export"))
	}
	return sendPayload(c, p)
}

func (h *GenerationHandler) ExportContent(c echo.Context) error {
	var req ExportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	p, err := h.svc.ExportContent(req.Content, req.Input, c.Param("format"))
	if err != nil {
		if errors.Is(err, export.ErrUnknownFormat) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unknown export format"))
		}
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return sendPayload(c, p)
}

func sendPayload(c echo.Context, p export.Payload) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+p.Filename+`"`)
	return c.Blob(http.StatusOK, p.MimeType, p.Body)
}
