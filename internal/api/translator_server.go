package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yanamull/Example-of-LLM-translater/internal/domain"
	"github.com/yanamull/Example-of-LLM-translater/internal/infrastructure"
)

const (
	serviceName    = "language-translator"
	serviceVersion = "1.0.0"
)

const instructionTemplate = "Translate this text from %s to %s. Maintain original style, line breaks, emojis and punctuation.\n\n"

// LLMCompleter is the outbound dependency of the gateway: one chat
// completion per call.
type LLMCompleter interface {
	Complete(ctx context.Context, instruction, userInput string) (string, error)
}

type TranslatorServer struct {
	logger    slog.Logger
	llmClient LLMCompleter
}

func NewTranslatorServer(llmClient LLMCompleter, logger slog.Logger) *TranslatorServer {
	return &TranslatorServer{
		logger:    logger,
		llmClient: llmClient,
	}
}

// Translate forwards the request text to the LLM provider and echoes the
// language pair back with the translated text. Empty text is not rejected,
// the model simply has nothing to translate.
func (t TranslatorServer) Translate(c echo.Context) error {
	var req domain.TranslationRequest
	if err := c.Bind(&req); err != nil {
		t.logger.Error("translate - failed to convert", slog.Any("err", err.Error()))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid input"})
	}

	instruction := fmt.Sprintf(instructionTemplate, req.SourceLanguage, req.TargetLanguage)

	translated, err := t.llmClient.Complete(c.Request().Context(), instruction, req.Content)
	if err != nil {
		return t.writeTranslateError(c, err)
	}

	return c.JSON(http.StatusOK, domain.TranslationResult{
		Translation: translated,
		Source:      req.SourceLanguage,
		Target:      req.TargetLanguage,
	})
}

// writeTranslateError maps client failures onto the boundary: transport
// failures become 503, provider rejections mirror the provider's status
// code, malformed provider replies become 502 and anything else becomes a
// generic 500 carrying the original message.
func (t TranslatorServer) writeTranslateError(c echo.Context, err error) error {
	var statusErr *infrastructure.StatusError
	switch {
	case errors.Is(err, infrastructure.ErrUnavailable):
		t.logger.Error("llm service unreachable", slog.Any("err", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"detail": "LLM service unavailable"})
	case errors.As(err, &statusErr):
		t.logger.Error("llm service rejected request", slog.Int("status", statusErr.Code))
		return c.JSON(statusErr.Code, echo.Map{"detail": "Error processing translation request"})
	case errors.Is(err, infrastructure.ErrMalformedResponse):
		t.logger.Error("llm service returned malformed response", slog.Any("err", err.Error()))
		return c.JSON(http.StatusBadGateway, echo.Map{"detail": "malformed response from LLM service"})
	default:
		t.logger.Error("translation failed", slog.Any("err", err.Error()))
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "Translation failed: " + err.Error()})
	}
}

// Health reports a constant liveness payload. Provider state never
// affects it.
func (t TranslatorServer) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"service": serviceName,
		"status":  "operational",
		"version": serviceVersion,
	})
}
