package handlers

import (
	"net/http"

	"github.com/mentorbridge/dashboard/internal/apperrors"
	"github.com/mentorbridge/dashboard/internal/responses"
)

func (h *HandlerService) HandleDashboardOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.clientFor(r).DashboardOverview()
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, overview)
}

func (h *HandlerService) HandleCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.clientFor(r).DashboardCourses()
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, courses)
}

func (h *HandlerService) HandleStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.clientFor(r).DashboardStudents()
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, students)
}

func (h *HandlerService) HandleMentorships(w http.ResponseWriter, r *http.Request) {
	mentorships, err := h.clientFor(r).DashboardMentorships()
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, mentorships)
}

func (h *HandlerService) HandleDashboardExams(w http.ResponseWriter, r *http.Request) {
	exams, err := h.clientFor(r).DashboardExams()
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, exams)
}

func (h *HandlerService) HandleFinances(w http.ResponseWriter, r *http.Request) {
	finances, err := h.clientFor(r).DashboardFinances()
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, finances)
}

func (h *HandlerService) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("data_type")
	if dataType == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidURLParam, "data_type is required")
		return
	}

	analytics, err := h.clientFor(r).DashboardAnalytics(dataType)
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, analytics)
}

func (h *HandlerService) HandleEarningsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.clientFor(r).EarningsSummary()
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, summary)
}

func (h *HandlerService) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.clientFor(r).Transactions(r.URL.Query().Get("kind"))
	if err != nil {
		respondAPIError(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, transactions)
}
