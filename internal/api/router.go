package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/soaringjerry/Oasis/internal/middleware"
	"github.com/soaringjerry/Oasis/internal/models"
	"github.com/soaringjerry/Oasis/internal/services"
	"github.com/soaringjerry/Oasis/internal/utils"
)

type Router struct {
	store  SessionStore
	tokens *middleware.SessionTokens
	scorer *services.Scorer
}

func NewRouter(history *services.HistoryService, tokens *middleware.SessionTokens) *Router {
	return &Router{
		store:  newMemoryStore(func() *services.Controller { return services.NewController(history, nil) }),
		tokens: tokens,
		scorer: services.DefaultScorer(),
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	authed := func(h http.HandlerFunc) http.Handler {
		return rt.tokens.WithSession(middleware.RequireSession(h))
	}
	mux.HandleFunc("/api/sessions", rt.handleCreateSession)     // POST
	mux.Handle("/api/session", authed(rt.handleSession))        // GET
	mux.Handle("/api/session/intents", authed(rt.handleIntent)) // POST
	mux.Handle("/api/session/export", authed(rt.handleExport))  // GET ?kind=
	mux.HandleFunc("/api/questions", rt.handleQuestions)        // GET ?lang=
	mux.HandleFunc("/api/body-parts", rt.handleBodyParts)       // GET
}

// SweepEvery drops idle sessions every interval until ctx is done.
func (rt *Router) SweepEvery(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := rt.store.Sweep(now.Add(-idle)); n > 0 {
				log.Printf("sessions: swept %d idle, %d live", n, rt.store.Len())
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	se, ok := services.AsServiceError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch se.Code {
	case services.ErrorInvalid:
		return http.StatusBadRequest
	case services.ErrorNotFound:
		return http.StatusNotFound
	case services.ErrorInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (rt *Router) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sid, _ := middleware.SessionIDFromContext(r.Context())
	sess, ok := rt.store.Get(sid)
	if !ok {
		http.Error(w, "session expired", http.StatusUnauthorized)
		return nil, false
	}
	return sess, true
}

// POST /api/sessions
func (rt *Router) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := rt.store.Create()
	tok, err := rt.tokens.Sign(sess.ID)
	if err != nil {
		rt.store.Delete(sess.ID)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var view services.View
	sess.Do(func(c *services.Controller) { view = c.View() })
	writeJSON(w, http.StatusCreated, map[string]any{
		"token":      tok,
		"session_id": sess.ID,
		"expires_in": int(rt.tokens.TTL().Seconds()),
		"view":       view,
	})
}

// GET /api/session
func (rt *Router) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, ok := rt.session(w, r)
	if !ok {
		return
	}
	var view services.View
	sess.Do(func(c *services.Controller) { view = c.View() })
	writeJSON(w, http.StatusOK, map[string]any{"state": view.State, "view": view})
}

// intentRequest is the wire form of an intent; fields apply per kind.
type intentRequest struct {
	Kind    string          `json:"kind"`
	Profile models.Identity `json:"profile"`
	Email   string          `json:"email"`
	Value   string          `json:"value"`
	PartID  string          `json:"part_id"`
	Level   int             `json:"level"`
	Notes   string          `json:"notes"`
	Index   int             `json:"index"`
}

func (req intentRequest) intent() (services.Intent, error) {
	switch services.IntentKind(req.Kind) {
	case services.IntentStart:
		return services.Start{}, nil
	case services.IntentCancel:
		return services.Cancel{}, nil
	case services.IntentRegister:
		return services.Register{Profile: req.Profile}, nil
	case services.IntentSearch:
		return services.Search{Email: req.Email}, nil
	case services.IntentSwitchPerson:
		return services.SwitchPerson{}, nil
	case services.IntentStartAssessment:
		return services.StartAssessment{}, nil
	case services.IntentAnswer:
		v, err := models.ParseAnswerValue(req.Value)
		if err != nil {
			return nil, services.NewInvalidError(err.Error())
		}
		return services.Answer{Value: v}, nil
	case services.IntentStartPainMap:
		return services.StartPainMap{}, nil
	case services.IntentSetPainLevel:
		return services.SetPainLevel{PartID: req.PartID, Level: req.Level}, nil
	case services.IntentSetPainNotes:
		return services.SetPainNotes{PartID: req.PartID, Notes: req.Notes}, nil
	case services.IntentClearPainMap:
		return services.ClearPainMap{}, nil
	case services.IntentSavePainMap:
		return services.SavePainMap{}, nil
	case services.IntentCancelPainMap:
		return services.CancelPainMap{}, nil
	case services.IntentOpenHistory:
		return services.OpenHistory{}, nil
	case services.IntentSelectSymptomEntry:
		return services.SelectSymptomEntry{Index: req.Index}, nil
	case services.IntentSelectPainEntry:
		return services.SelectPainEntry{Index: req.Index}, nil
	case services.IntentViewLastSymptom:
		return services.ViewLastSymptom{}, nil
	case services.IntentViewLastPain:
		return services.ViewLastPain{}, nil
	case services.IntentBackToMenu:
		return services.BackToMenu{}, nil
	}
	return nil, services.NewInvalidError("unknown intent " + req.Kind)
}

// localizedError maps errors the person can act on to a translated message.
func localizedError(locale string, in services.Intent, err error) string {
	switch {
	case in != nil && in.Kind() == services.IntentSearch && services.HasCode(err, services.ErrorNotFound):
		return utils.T(locale, "identify.not_found")
	case in != nil && in.Kind() == services.IntentRegister && services.HasCode(err, services.ErrorInvalid):
		return utils.T(locale, "identify.incomplete")
	case in != nil && in.Kind() == services.IntentSetPainLevel && services.HasCode(err, services.ErrorInvalid):
		return utils.T(locale, "pain.invalid_level")
	}
	return ""
}

// POST /api/session/intents
func (rt *Router) handleIntent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, ok := rt.session(w, r)
	if !ok {
		return
	}
	var req intentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	locale := middleware.LocaleFromContext(r.Context())
	in, err := req.intent()
	var view services.View
	sess.Do(func(c *services.Controller) {
		if err == nil {
			err = c.Dispatch(in).Err
		}
		view = c.View()
	})
	out := map[string]any{"ok": err == nil, "state": view.State, "view": view}
	status := http.StatusOK
	if err != nil {
		status = statusFor(err)
		out["error"] = err.Error()
		if se, ok := services.AsServiceError(err); ok {
			out["code"] = se.Code
		}
		if msg := localizedError(locale, in, err); msg != "" {
			out["message"] = msg
		}
	}
	writeJSON(w, status, out)
}

// GET /api/session/export?kind=symptom-long|symptom-wide|pain
func (rt *Router) handleExport(w http.ResponseWriter, r *http.Request) {
	kind, ok := services.ParseExportKind(r.URL.Query().Get("kind"))
	if !ok {
		http.Error(w, "unsupported kind", http.StatusBadRequest)
		return
	}
	sess, ok := rt.session(w, r)
	if !ok {
		return
	}
	var (
		rec    models.Record
		active bool
	)
	sess.Do(func(c *services.Controller) {
		var id models.Identity
		id, active = c.Identity()
		rec = models.Record{Identity: id, History: c.SymptomHistory(), PainHistory: c.PainHistory()}
	})
	if !active {
		writeJSON(w, http.StatusConflict, map[string]any{"ok": false, "code": services.ErrorInvalidTransition, "error": "no active identity"})
		return
	}
	b, err := services.Export(kind, rec, rt.scorer)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+string(kind)+".csv")
	_, _ = w.Write(b)
}

type answerOption struct {
	Value  models.AnswerValue `json:"value"`
	Label  string             `json:"label"`
	Points int                `json:"points"`
}

// GET /api/questions?lang=xx
func (rt *Router) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	locale := middleware.LocaleFromContext(r.Context())
	opts := make([]answerOption, 0, 3)
	for _, v := range models.AnswerOptions() {
		opts = append(opts, answerOption{Value: v, Label: utils.T(locale, "answer."+string(v)), Points: v.Points()})
	}
	qs := models.Questions()
	writeJSON(w, http.StatusOK, map[string]any{
		"locale":     locale,
		"questions":  qs,
		"categories": models.Categories(qs),
		"options":    opts,
	})
}

// GET /api/body-parts
func (rt *Router) handleBodyParts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"parts":     models.BodyParts(),
		"min_level": services.MinPainLevel,
		"max_level": services.MaxPainLevel,
	})
}
