package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mentorbridge/dashboard/internal/api"
	"github.com/mentorbridge/dashboard/internal/apperrors"
	"github.com/mentorbridge/dashboard/internal/responses"
)

func (h *HandlerService) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.clientFor(r).ListConversations()
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, conversations)
}

func (h *HandlerService) HandleChatHistory(w http.ResponseWriter, r *http.Request) {
	messages, err := h.clientFor(r).ChatHistory(chi.URLParam(r, "conversationID"))
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, messages)
}

// HandleSendChatMessage posts a message. An attached media file switches the upstream
// call to a multipart upload.
func (h *HandlerService) HandleSendChatMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMemoryBytes); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "Could not parse message form")
		return
	}

	input := api.ChatMessageInput{Body: r.FormValue("body")}

	if file, header, err := r.FormFile("media"); err == nil {
		defer file.Close()
		input.Media = file
		input.MediaFilename = header.Filename
	}

	if input.Body == "" && input.Media == nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, "message body or media attachment is required")
		return
	}

	message, err := h.clientFor(r).SendChatMessage(chi.URLParam(r, "conversationID"), input)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusCreated, message)
}

func (h *HandlerService) HandleClearConversation(w http.ResponseWriter, r *http.Request) {
	if err := h.clientFor(r).ClearConversation(chi.URLParam(r, "conversationID")); err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}

func (h *HandlerService) HandleRenameConversation(w http.ResponseWriter, r *http.Request) {
	title := r.FormValue("title")
	if title == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, "title is required")
		return
	}

	conversation, err := h.clientFor(r).RenameConversation(chi.URLParam(r, "conversationID"), title)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, conversation)
}
