// Package httpapi serves the demo backend: the same REST surface the
// live service modules call, backed by whatever stores the application
// was composed with. Responses use the platform envelope
// {statusCode, status, message, data}.
package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/RoomLink-Network/client_layer/internal/app"
	"github.com/RoomLink-Network/client_layer/internal/domain/agreement"
	"github.com/RoomLink-Network/client_layer/internal/domain/complaint"
	"github.com/RoomLink-Network/client_layer/internal/domain/notification"
	"github.com/RoomLink-Network/client_layer/internal/domain/payment"
	"github.com/RoomLink-Network/client_layer/internal/domain/property"
	"github.com/RoomLink-Network/client_layer/internal/domain/rating"
	"github.com/RoomLink-Network/client_layer/internal/domain/request"
	"github.com/RoomLink-Network/client_layer/internal/domain/user"
	"github.com/RoomLink-Network/client_layer/internal/metrics"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/pkg/logger"
)

// Handler routes demo backend requests to the application's stores.
type Handler struct {
	app    *app.Application
	log    *logger.Logger
	router *mux.Router

	maxUploadBytes int64
	allowedMIME    map[string]bool
}

// New builds the demo backend handler. Upload limits come from the
// application's configuration.
func New(a *app.Application) *Handler {
	allowed := make(map[string]bool, len(a.Config.AllowedUploadMIME))
	for _, m := range a.Config.AllowedUploadMIME {
		allowed[m] = true
	}

	h := &Handler{
		app:            a,
		log:            logger.NewDefault("httpapi"),
		router:         mux.NewRouter(),
		maxUploadBytes: a.Config.MaxUploadBytes,
		allowedMIME:    allowed,
	}
	h.routes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	r := h.router
	r.Use(h.metricsMiddleware)

	r.HandleFunc("/api/users", h.createUser).Methods(http.MethodPost)
	r.HandleFunc("/api/users", h.listUsers).Methods(http.MethodGet)
	r.HandleFunc("/api/users/{id}", h.getUser).Methods(http.MethodGet)
	r.HandleFunc("/api/users/{id}", h.updateUser).Methods(http.MethodPut)
	r.HandleFunc("/api/users/{id}/verify", h.verifyUser).Methods(http.MethodPost)

	r.HandleFunc("/api/properties", h.createProperty).Methods(http.MethodPost)
	r.HandleFunc("/api/properties", h.listProperties).Methods(http.MethodGet)
	r.HandleFunc("/api/properties/{id}", h.getProperty).Methods(http.MethodGet)
	r.HandleFunc("/api/properties/{id}", h.updateProperty).Methods(http.MethodPut)
	r.HandleFunc("/api/properties/{id}", h.deleteProperty).Methods(http.MethodDelete)

	r.HandleFunc("/api/rooms", h.createRoom).Methods(http.MethodPost)
	r.HandleFunc("/api/rooms", h.listRooms).Methods(http.MethodGet)
	r.HandleFunc("/api/rooms/{id}", h.getRoom).Methods(http.MethodGet)
	r.HandleFunc("/api/rooms/{id}/availability", h.setRoomAvailability).Methods(http.MethodPost)
	r.HandleFunc("/api/rooms/{id}/history", h.appendRoomHistory).Methods(http.MethodPost)

	r.HandleFunc("/api/agreements", h.createAgreement).Methods(http.MethodPost)
	r.HandleFunc("/api/agreements", h.listAgreements).Methods(http.MethodGet)
	r.HandleFunc("/api/agreements/{id}", h.getAgreement).Methods(http.MethodGet)
	r.HandleFunc("/api/agreements/{id}/sign", h.signAgreement).Methods(http.MethodPost)
	r.HandleFunc("/api/agreements/{id}/terminate", h.terminateAgreement).Methods(http.MethodPost)
	r.HandleFunc("/api/agreements/{id}/expire", h.expireAgreement).Methods(http.MethodPost)

	r.HandleFunc("/api/payments", h.createPayment).Methods(http.MethodPost)
	r.HandleFunc("/api/payments", h.listPayments).Methods(http.MethodGet)
	r.HandleFunc("/api/payments/{id}", h.getPayment).Methods(http.MethodGet)
	r.HandleFunc("/api/payments/{id}/pay", h.payPayment).Methods(http.MethodPost)
	r.HandleFunc("/api/payments/{id}/fail", h.failPayment).Methods(http.MethodPost)

	r.HandleFunc("/api/complaints", h.createComplaint).Methods(http.MethodPost)
	r.HandleFunc("/api/complaints", h.listComplaints).Methods(http.MethodGet)
	r.HandleFunc("/api/complaints/{id}", h.getComplaint).Methods(http.MethodGet)
	r.HandleFunc("/api/complaints/{id}/advance", h.advanceComplaint).Methods(http.MethodPost)
	r.HandleFunc("/api/complaints/{id}/resolve", h.resolveComplaint).Methods(http.MethodPost)
	r.HandleFunc("/api/complaints/{id}/close", h.closeComplaint).Methods(http.MethodPost)

	r.HandleFunc("/api/documents", h.uploadDocument).Methods(http.MethodPost)
	r.HandleFunc("/api/documents", h.listDocuments).Methods(http.MethodGet)
	r.HandleFunc("/api/documents/{id}", h.getDocument).Methods(http.MethodGet)
	r.HandleFunc("/api/documents/{id}/verify", h.verifyDocument).Methods(http.MethodPost)
	r.HandleFunc("/api/documents/{id}/reject", h.rejectDocument).Methods(http.MethodPost)

	r.HandleFunc("/api/requests", h.createRequest).Methods(http.MethodPost)
	r.HandleFunc("/api/requests", h.listRequests).Methods(http.MethodGet)
	r.HandleFunc("/api/requests/{id}", h.getRequest).Methods(http.MethodGet)
	r.HandleFunc("/api/requests/{id}/accept", h.acceptRequest).Methods(http.MethodPost)
	r.HandleFunc("/api/requests/{id}/reject", h.rejectRequest).Methods(http.MethodPost)

	r.HandleFunc("/api/ratings", h.createRating).Methods(http.MethodPost)
	r.HandleFunc("/api/ratings", h.listRatings).Methods(http.MethodGet)

	r.HandleFunc("/api/notifications", h.createNotification).Methods(http.MethodPost)
	r.HandleFunc("/api/notifications", h.listNotifications).Methods(http.MethodGet)
	r.HandleFunc("/api/notifications/read", h.markNotificationsRead).Methods(http.MethodPost)
	r.HandleFunc("/api/notifications/unread-count", h.countUnread).Methods(http.MethodGet)

	r.HandleFunc("/api/addresses", h.lookupAddresses).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
}

func (h *Handler) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		done := metrics.RequestStarted()
		defer done()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.ObserveRequest(r.Method, rec.status, time.Since(start))
		metrics.ObserveFixtureOp(resourceFromPath(r.URL.Path), outcomeFromStatus(rec.status))
	})
}

// resourceFromPath extracts the resource segment from an /api/... path.
func resourceFromPath(p string) string {
	rest := strings.TrimPrefix(p, "/api/")
	if rest == p {
		return "other"
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "other"
	}
	return rest
}

func outcomeFromStatus(status int) string {
	switch {
	case status < 400:
		return "ok"
	case status == http.StatusNotFound:
		return "not_found"
	case status < 500:
		return "rejected"
	default:
		return "error"
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// envelope is the response shape shared with the live backend.
type envelope struct {
	StatusCode int         `json:"statusCode"`
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{
		StatusCode: status,
		Status:     "success",
		Data:       data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{
		StatusCode: status,
		Status:     "error",
		Message:    message,
	})
}

// writeStoreError maps store failures onto HTTP statuses. Anything that
// is not a missing record is treated as a rejected input.
func writeStoreError(w http.ResponseWriter, err error) {
	if storage.IsNotFound(err) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func pathID(r *http.Request) string {
	return mux.Vars(r)["id"]
}

// ----- users -----

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var u user.User
	if !decodeBody(w, r, &u) {
		return
	}
	created, err := h.app.Stores.Users.CreateUser(r.Context(), u)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var u user.User
	if !decodeBody(w, r, &u) {
		return
	}
	u.ID = pathID(r)
	updated, err := h.app.Stores.Users.UpdateUser(r.Context(), u)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.app.Stores.Users.GetUser(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	role := user.Role(r.URL.Query().Get("role"))
	users, err := h.app.Stores.Users.ListUsers(r.Context(), role)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) verifyUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.app.Stores.Users.VerifyUser(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// ----- properties -----

func (h *Handler) createProperty(w http.ResponseWriter, r *http.Request) {
	var p property.Property
	if !decodeBody(w, r, &p) {
		return
	}
	created, err := h.app.Stores.Properties.CreateProperty(r.Context(), p)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateProperty(w http.ResponseWriter, r *http.Request) {
	var p property.Property
	if !decodeBody(w, r, &p) {
		return
	}
	p.ID = pathID(r)
	updated, err := h.app.Stores.Properties.UpdateProperty(r.Context(), p)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) getProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.app.Stores.Properties.GetProperty(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	filter := storage.PropertyFilter{
		OwnerID: r.URL.Query().Get("ownerId"),
		Status:  property.Status(r.URL.Query().Get("status")),
	}
	props, err := h.app.Stores.Properties.ListProperties(r.Context(), filter)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, props)
}

func (h *Handler) deleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Stores.Properties.DeleteProperty(r.Context(), pathID(r)); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

// ----- rooms -----

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	var rm property.Room
	if !decodeBody(w, r, &rm) {
		return
	}
	created, err := h.app.Stores.Properties.CreateRoom(r.Context(), rm)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getRoom(w http.ResponseWriter, r *http.Request) {
	rm, err := h.app.Stores.Properties.GetRoom(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func (h *Handler) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.app.Stores.Properties.ListRooms(r.Context(), r.URL.Query().Get("propertyId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *Handler) setRoomAvailability(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Available bool `json:"available"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	rm, err := h.app.Stores.Properties.SetRoomAvailability(r.Context(), pathID(r), body.Available)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func (h *Handler) appendRoomHistory(w http.ResponseWriter, r *http.Request) {
	var rec property.RentalRecord
	if !decodeBody(w, r, &rec) {
		return
	}
	rm, err := h.app.Stores.Properties.AppendRoomHistory(r.Context(), pathID(r), rec)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

// ----- agreements -----

func (h *Handler) createAgreement(w http.ResponseWriter, r *http.Request) {
	var a agreement.Agreement
	if !decodeBody(w, r, &a) {
		return
	}
	created, err := h.app.Stores.Agreements.CreateAgreement(r.Context(), a)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getAgreement(w http.ResponseWriter, r *http.Request) {
	a, err := h.app.Stores.Agreements.GetAgreement(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) listAgreements(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Stores.Agreements.ListAgreements(r.Context(), r.URL.Query().Get("partyId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) signAgreement(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Party agreement.Party `json:"party"`
		At    time.Time       `json:"at"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.At.IsZero() {
		body.At = time.Now().UTC()
	}
	a, err := h.app.Stores.Agreements.SignAgreement(r.Context(), pathID(r), body.Party, body.At)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) terminateAgreement(w http.ResponseWriter, r *http.Request) {
	a, err := h.app.Stores.Agreements.TerminateAgreement(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) expireAgreement(w http.ResponseWriter, r *http.Request) {
	a, err := h.app.Stores.Agreements.ExpireAgreement(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// ----- payments -----

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	var p payment.Payment
	if !decodeBody(w, r, &p) {
		return
	}
	created, err := h.app.Stores.Payments.CreatePayment(r.Context(), p)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	p, err := h.app.Stores.Payments.GetPayment(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Stores.Payments.ListPayments(r.Context(), r.URL.Query().Get("agreementId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) payPayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TransactionID string `json:"transactionId"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	p, err := h.app.Stores.Payments.MarkPaymentPaid(r.Context(), pathID(r), body.TransactionID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) failPayment(w http.ResponseWriter, r *http.Request) {
	p, err := h.app.Stores.Payments.MarkPaymentFailed(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ----- complaints -----

func (h *Handler) createComplaint(w http.ResponseWriter, r *http.Request) {
	var c complaint.Complaint
	if !decodeBody(w, r, &c) {
		return
	}
	created, err := h.app.Stores.Complaints.CreateComplaint(r.Context(), c)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getComplaint(w http.ResponseWriter, r *http.Request) {
	c, err := h.app.Stores.Complaints.GetComplaint(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) listComplaints(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.app.Stores.Complaints.ListComplaints(r.Context(), q.Get("propertyId"), q.Get("agreementId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) advanceComplaint(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Actor string `json:"actor"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	c, err := h.app.Stores.Complaints.AdvanceComplaint(r.Context(), pathID(r), body.Actor)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) resolveComplaint(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Actor string `json:"actor"`
		Note  string `json:"note"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	c, err := h.app.Stores.Complaints.ResolveComplaint(r.Context(), pathID(r), body.Actor, body.Note)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) closeComplaint(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Actor string `json:"actor"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	c, err := h.app.Stores.Complaints.CloseComplaint(r.Context(), pathID(r), body.Actor)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// ----- documents -----

func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large or malformed: "+err.Error())
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing document file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if len(h.allowedMIME) > 0 && !h.allowedMIME[contentType] {
		writeError(w, http.StatusUnsupportedMediaType, "content type not allowed: "+contentType)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read upload: "+err.Error())
		return
	}

	doc, err := h.app.Stores.Documents.UploadDocument(r.Context(), storage.DocumentUpload{
		OwnerID:     r.FormValue("ownerId"),
		Kind:        r.FormValue("kind"),
		FileName:    header.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.app.Stores.Documents.GetDocument(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.app.Stores.Documents.ListDocuments(r.Context(), r.URL.Query().Get("ownerId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (h *Handler) verifyDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.app.Stores.Documents.VerifyDocument(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) rejectDocument(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	doc, err := h.app.Stores.Documents.RejectDocument(r.Context(), pathID(r), body.Reason)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// ----- requests -----

func (h *Handler) createRequest(w http.ResponseWriter, r *http.Request) {
	var req request.TenantRequest
	if !decodeBody(w, r, &req) {
		return
	}
	created, err := h.app.Stores.Requests.CreateRequest(r.Context(), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.app.Stores.Requests.GetRequest(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.app.Stores.Requests.ListRequests(r.Context(), q.Get("propertyId"), q.Get("tenantId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) acceptRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.app.Stores.Requests.AcceptRequest(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) rejectRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.app.Stores.Requests.RejectRequest(r.Context(), pathID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// ----- ratings -----

func (h *Handler) createRating(w http.ResponseWriter, r *http.Request) {
	var rt rating.Rating
	if !decodeBody(w, r, &rt) {
		return
	}
	created, err := h.app.Stores.Ratings.CreateRating(r.Context(), rt)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) listRatings(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Stores.Ratings.ListRatings(r.Context(), r.URL.Query().Get("propertyId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// ----- notifications -----

func (h *Handler) createNotification(w http.ResponseWriter, r *http.Request) {
	var n notification.Notification
	if !decodeBody(w, r, &n) {
		return
	}
	created, err := h.app.Stores.Notifications.CreateNotification(r.Context(), n)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Stores.Notifications.ListNotifications(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) markNotificationsRead(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string   `json:"userId"`
		IDs    []string `json:"ids"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	marked, err := h.app.Stores.Notifications.MarkNotificationsRead(r.Context(), body.UserID, body.IDs...)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"marked": marked})
}

func (h *Handler) countUnread(w http.ResponseWriter, r *http.Request) {
	count, err := h.app.Stores.Notifications.CountUnread(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// ----- addresses -----

func (h *Handler) lookupAddresses(w http.ResponseWriter, r *http.Request) {
	postalCode := r.URL.Query().Get("postalCode")
	if postalCode == "" {
		writeError(w, http.StatusBadRequest, "postalCode query parameter is required")
		return
	}
	addrs, err := h.app.Stores.Addresses.LookupAddresses(r.Context(), postalCode)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addrs)
}
