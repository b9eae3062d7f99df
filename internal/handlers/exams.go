package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mentorbridge/dashboard/internal/api"
	"github.com/mentorbridge/dashboard/internal/apperrors"
	"github.com/mentorbridge/dashboard/internal/responses"
)

func (h *HandlerService) HandleListExams(w http.ResponseWriter, r *http.Request) {
	exams, err := h.clientFor(r).ListExams()
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, exams)
}

func (h *HandlerService) HandleGetExam(w http.ResponseWriter, r *http.Request) {
	exam, err := h.clientFor(r).GetExam(chi.URLParam(r, "examID"))
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, exam)
}

// pdfFormFile extracts a named PDF upload from the form. The content-type check is a
// usability check only - the platform backend performs its own validation.
func pdfFormFile(r *http.Request, field string) (multipart.File, string, string) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", ""
	}
	if header.Header.Get("Content-Type") != "application/pdf" {
		file.Close()
		return nil, "", field + " must be a PDF document"
	}
	return file, header.Filename, ""
}

func examInputFromForm(r *http.Request) (api.ExamInput, string) {
	input := api.ExamInput{
		Title:   r.FormValue("title"),
		Subject: r.FormValue("subject"),
	}

	if input.Title == "" {
		return input, "title is required"
	}

	durationMins, err := strconv.Atoi(r.FormValue("duration_mins"))
	if err != nil || durationMins <= 0 {
		return input, "duration_mins must be a positive integer"
	}
	input.DurationMins = durationMins

	scheduledAt, err := time.Parse(time.RFC3339, r.FormValue("scheduled_at"))
	if err != nil {
		return input, "scheduled_at must be an RFC 3339 timestamp"
	}
	input.ScheduledAt = scheduledAt

	if file, filename, validationErr := pdfFormFile(r, "questions"); validationErr != "" {
		return input, validationErr
	} else if file != nil {
		input.Questions = file
		input.QuestionsFilename = filename
	}

	if file, filename, validationErr := pdfFormFile(r, "answers"); validationErr != "" {
		return input, validationErr
	} else if file != nil {
		input.Answers = file
		input.AnswersFilename = filename
	}

	return input, ""
}

func (h *HandlerService) HandleCreateExam(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMemoryBytes); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "Could not parse exam form")
		return
	}

	input, validationErr := examInputFromForm(r)
	defer closeUpload(input.Questions)
	defer closeUpload(input.Answers)

	if validationErr != "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, validationErr)
		return
	}

	exam, err := h.clientFor(r).CreateExam(input)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusCreated, exam)
}

func (h *HandlerService) HandleUpdateExam(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMemoryBytes); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "Could not parse exam form")
		return
	}

	input, validationErr := examInputFromForm(r)
	defer closeUpload(input.Questions)
	defer closeUpload(input.Answers)

	if validationErr != "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidRequest, validationErr)
		return
	}

	exam, err := h.clientFor(r).UpdateExam(chi.URLParam(r, "examID"), input)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, exam)
}

func (h *HandlerService) HandleDeleteExam(w http.ResponseWriter, r *http.Request) {
	if err := h.clientFor(r).DeleteExam(chi.URLParam(r, "examID")); err != nil {
		if api.IsNotFound(err) {
			responses.RespondWithStatusCodeOnly(w, http.StatusNoContent)
			return
		}
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}

func (h *HandlerService) HandleExamStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.clientFor(r).ExamStatistics(chi.URLParam(r, "examID"))
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, stats)
}

func (h *HandlerService) HandleExamResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.clientFor(r).ExamResults(chi.URLParam(r, "examID"))
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, results)
}
