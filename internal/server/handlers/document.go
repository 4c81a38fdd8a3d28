package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iudanet/docsync/internal/server/storage"
	"github.com/iudanet/docsync/internal/validation"
	"github.com/iudanet/docsync/pkg/api"
)

// ChannelServer обслуживает WebSocket канал документа
type ChannelServer interface {
	Serve(w http.ResponseWriter, r *http.Request, documentID, userID string)
}

// DocumentHandler чтение документа и подключение к каналу синхронизации
type DocumentHandler struct {
	logger   *slog.Logger
	docs     storage.DocumentStorage
	channels ChannelServer
}

// NewDocumentHandler создает handler документов
func NewDocumentHandler(logger *slog.Logger, docs storage.DocumentStorage, channels ChannelServer) *DocumentHandler {
	return &DocumentHandler{
		logger:   logger,
		docs:     docs,
		channels: channels,
	}
}

// Get обрабатывает GET /api/v1/documents/{id}
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	documentID := mux.Vars(r)["id"]

	if err := validation.ValidateDocumentID(documentID); err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := h.docs.LoadDocument(ctx, documentID)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			sendError(w, h.logger, "document not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to load document", slog.String("document_id", documentID), slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, api.DocumentResponse{
		ID:        doc.ID,
		Content:   doc.Content,
		Revision:  doc.Revision,
		UpdatedBy: doc.UpdatedBy,
		UpdatedAt: doc.UpdatedAt,
	}, http.StatusOK)
}

// Connect обрабатывает GET /api/v1/ws?documentId=...
// userId в query необязателен, но если указан, должен совпадать с токеном.
func (h *DocumentHandler) Connect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(w, h.logger, "unauthorized", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	documentID := query.Get("documentId")
	if err := validation.ValidateDocumentID(documentID); err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}
	if claimed := query.Get("userId"); claimed != "" && claimed != userID {
		h.logger.WarnContext(ctx, "user id does not match token",
			slog.String("user_id", userID), slog.String("claimed", claimed))
		sendError(w, h.logger, "userId does not match token", http.StatusForbidden)
		return
	}

	h.channels.Serve(w, r, documentID, userID)
}
