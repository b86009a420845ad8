package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"junglepark/internal/adapters/http/middleware"
	"junglepark/internal/application/orchestrators"
)

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeSubmissionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orchestrators.ErrMissingFields):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing_fields"})
	case errors.Is(err, orchestrators.ErrUnknownBanner):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown_banner"})
	default:
		internalError(w, err)
	}
}

func submissionDeps() orchestrators.SubmissionDeps {
	return orchestrators.SubmissionDeps{
		SettingsStore: stores.SettingsStore,
		ProgramStore:  stores.ProgramStore,
		BannerStore:   stores.BannerStore,
		Log:           stores.NotificationStore,
		Sender:        notifySender,
		Now:           timeNow,
	}
}

// handleAPIOrder handles POST /api/order
func handleAPIOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Items   []string `json:"items"`
		Total   string   `json:"total"`
		Address string   `json:"address"`
		Phone   string   `json:"phone"`
	}
	if err := strictDecode(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing_fields"})
		return
	}

	result, err := orchestrators.ExecuteSubmitOrder(r.Context(), orchestrators.OrderInput{
		Items:   body.Items,
		Total:   body.Total,
		Address: body.Address,
		Phone:   body.Phone,
		Lang:    middleware.GetLanguage(r.Context()),
	}, submissionDeps())
	if err != nil {
		writeSubmissionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "recipient": result.Recipient})
}

// handleAPIProgramRequest handles POST /api/program-request
func handleAPIProgramRequest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProgramID string `json:"programId"`
		Name      string `json:"name"`
		ChildName string `json:"childName"`
		Date      string `json:"date"`
		Phone     string `json:"phone"`
	}
	if err := strictDecode(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing_fields"})
		return
	}

	result, err := orchestrators.ExecuteProgramRequest(r.Context(), orchestrators.ProgramRequestInput{
		ProgramID: body.ProgramID,
		Name:      body.Name,
		ChildName: body.ChildName,
		Date:      body.Date,
		Phone:     body.Phone,
		Lang:      middleware.GetLanguage(r.Context()),
	}, submissionDeps())
	if err != nil {
		writeSubmissionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "recipient": result.Recipient})
}

// handleAPIBannerSignup handles POST /api/banner-signup/{bannerId}
func handleAPIBannerSignup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ChildName  string `json:"childName"`
		ParentName string `json:"parentName"`
		Age        string `json:"age"`
		Phone      string `json:"phone"`
	}
	if err := strictDecode(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing_fields"})
		return
	}

	result, err := orchestrators.ExecuteBannerSignup(r.Context(), orchestrators.BannerSignupInput{
		BannerID:   r.PathValue("bannerId"),
		ChildName:  body.ChildName,
		ParentName: body.ParentName,
		Age:        body.Age,
		Phone:      body.Phone,
		Lang:       middleware.GetLanguage(r.Context()),
	}, submissionDeps())
	if err != nil {
		writeSubmissionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "recipient": result.Recipient})
}
