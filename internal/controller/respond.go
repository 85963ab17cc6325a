package controller

import (
	"net/http"

	"github.com/AlexKurdi121/quizhub/internal/apperr"
	"github.com/AlexKurdi121/quizhub/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// WriteError maps the domain error taxonomy onto HTTP statuses and renders
// the shared error body. Untyped errors become opaque 500s; their details are
// logged, never leaked.
func WriteError(ctx *gin.Context, err error) {
	kind := apperr.KindOf(err)

	var status int
	switch kind {
	case apperr.KindValidation, apperr.KindInvalidState:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(status, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	ctx.JSON(status, dto.ErrorResponse{Error: apperr.MessageOf(err), Kind: kind.String()})
}
