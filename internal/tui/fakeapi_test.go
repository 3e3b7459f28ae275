// ABOUTME: In-process catalog API and message pump for TUI tests
// ABOUTME: Drives the app the way the bubbletea runtime would, synchronously

package tui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/client"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/gateway"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/session"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/authform"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/editform"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/menu"
)

const (
	testPassword = "secret1"
	testToken    = "tok-1"
)

type fakeAPI struct {
	mu          sync.Mutex
	hasAdmin    bool
	statusDown  bool
	rejectToken bool
	stock       map[catalog.StockKey]int
	orders      map[string]string
	deleted     []string
	writes      []string
	saved       []string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{
		hasAdmin: true,
		stock: map[catalog.StockKey]int{
			{ProductID: "p1", SizeID: "z1"}: 3,
		},
		orders: map[string]string{"o1": catalog.OrderPending},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/status", f.status)
	mux.HandleFunc("POST /auth/register", f.register)
	mux.HandleFunc("POST /auth/login", f.login)
	mux.HandleFunc("GET /products", f.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"_id": "p1", "name": "Predator Boot", "category": map[string]string{"_id": "c1", "name": "Boots"}, "price": 15999},
		})
	}))
	mux.HandleFunc("GET /sizes", f.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"_id": "z1", "sizeType": "t1", "label": "UK 9"}})
	}))
	mux.HandleFunc("GET /stock", f.authed(f.listStock))
	mux.HandleFunc("PATCH /stock/product/{product}/size/{size}", f.authed(f.setStock))
	mux.HandleFunc("GET /orders", f.authed(f.listOrders))
	mux.HandleFunc("PATCH /orders/{id}", f.authed(f.updateOrder))
	mux.HandleFunc("GET /brands", f.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"_id": "b1", "name": "Adidas"}, {"_id": "b2", "name": "Nike"}})
	}))
	mux.HandleFunc("DELETE /brands/{id}", f.authed(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.deleted = append(f.deleted, r.PathValue("id"))
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
	}))
	mux.HandleFunc("GET /brands/{id}", f.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"_id": r.PathValue("id"), "name": "Adidas", "slug": "adidas", "isActive": true})
	}))
	mux.HandleFunc("POST /brands", f.authed(f.saveBrand))
	mux.HandleFunc("PATCH /brands/{id}", f.authed(f.saveBrand))
	mux.HandleFunc("POST /stock", f.authed(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.saved = append(f.saved, fmt.Sprintf("POST %v/%v=%v", body["product"], body["size"], body["stockQty"]))
		f.mu.Unlock()
		body["_id"] = "s2"
		writeJSON(w, http.StatusCreated, body)
	}))
	mux.HandleFunc("GET /categories", f.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"_id": "c1", "name": "Boots"}})
	}))
	mux.HandleFunc("GET /banners", f.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{})
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) set(fn func(f *fakeAPI)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeAPI) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		reject := f.rejectToken
		f.mu.Unlock()
		if reject || r.Header.Get("Authorization") != "Bearer "+testToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token expired"})
			return
		}
		next(w, r)
	}
}

func (f *fakeAPI) status(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusDown {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"message": "Service unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"hasAdmin": f.hasAdmin})
}

func (f *fakeAPI) register(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hasAdmin {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Admin already exists"})
		return
	}
	f.hasAdmin = true
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": testToken})
}

func (f *fakeAPI) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	json.NewDecoder(r.Body).Decode(&body)
	if body.Password != testPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid password"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": testToken})
}

// saveBrand records brand writes as "METHOD name"; the name Adidas is taken
func (f *fakeAPI) saveBrand(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	json.NewDecoder(r.Body).Decode(&body)
	if r.Method == http.MethodPost && body["name"] == "Adidas" {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Brand already exists"})
		return
	}

	f.mu.Lock()
	f.saved = append(f.saved, fmt.Sprintf("%s %v", r.Method, body["name"]))
	f.mu.Unlock()

	if r.PathValue("id") != "" {
		body["_id"] = r.PathValue("id")
	} else {
		body["_id"] = "b3"
	}
	writeJSON(w, http.StatusOK, body)
}

func (f *fakeAPI) listStock(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := []map[string]any{}
	for k, qty := range f.stock {
		rows = append(rows, map[string]any{
			"_id":      "s-" + k.ProductID + "-" + k.SizeID,
			"product":  k.ProductID,
			"size":     map[string]string{"_id": k.SizeID, "label": "UK 9"},
			"stockQty": qty,
		})
	}
	writeJSON(w, http.StatusOK, rows)
}

func (f *fakeAPI) setStock(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	json.NewDecoder(r.Body).Decode(&body)
	key := catalog.StockKey{ProductID: r.PathValue("product"), SizeID: r.PathValue("size")}

	f.mu.Lock()
	f.stock[key] = body.Quantity
	f.writes = append(f.writes, key.ProductID+"/"+key.SizeID)
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"_id": "s1", "product": key.ProductID, "size": key.SizeID, "stockQty": body.Quantity})
}

func (f *fakeAPI) listOrders(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := []map[string]any{}
	for id, status := range f.orders {
		rows = append(rows, map[string]any{"_id": id, "customerName": "Ali", "totalAmount": 3000, "status": status})
	}
	writeJSON(w, http.StatusOK, rows)
}

func (f *fakeAPI) updateOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	json.NewDecoder(r.Body).Decode(&body)
	f.mu.Lock()
	f.orders[r.PathValue("id")] = body.Status
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"_id": r.PathValue("id"), "status": body.Status})
}

// harness is an app wired to a fake API through the real client and gateway
type harness struct {
	app   *App
	api   *fakeAPI
	store *session.Store
	nav   *recordingNavigator
}

type recordingNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *recordingNavigator) take() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	p := n.paths
	n.paths = nil
	return p
}

func newHarness(t *testing.T, token string) *harness {
	t.Helper()
	api, srv := newFakeAPI(t)

	persist := &session.MemoryStore{}
	if token != "" {
		persist.Save(token)
	}
	store := session.New(persist)
	nav := &recordingNavigator{}

	c := client.New(srv.URL, store, client.WithTimeout(5*time.Second))
	app := New(store, catalog.New(gateway.New(c, store, nav)))
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return &harness{app: app, api: api, store: store, nav: nav}
}

// start runs Init and settles
func (h *harness) start(t *testing.T) {
	t.Helper()
	pump(t, h.app, h.app.Init())
}

// key sends a key press and settles
func (h *harness) key(t *testing.T, k string) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := h.app.Update(msg)
	pump(t, h.app, cmd)
}

// send delivers msg and settles
func (h *harness) send(t *testing.T, msg tea.Msg) {
	t.Helper()
	_, cmd := h.app.Update(msg)
	pump(t, h.app, cmd)
}

// pump executes cmd and feeds every app-level message it produces back into
// a until nothing is left. Messages meant for child widgets (cursor blinks,
// spinner ticks) are dropped so the pump always terminates.
func pump(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatal("message pump did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		msg := runCmd(c)
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if !isAppMsg(msg) {
			continue
		}
		_, next := a.Update(msg)
		queue = append(queue, next)
	}
}

// runCmd runs c, giving up on commands that wait on timers
func runCmd(c tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- c() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(2 * time.Second):
		return nil
	}
}

func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case navigateMsg, sessionReadyMsg, adminStatusMsg, authDoneMsg,
		overviewLoadedMsg, listingLoadedMsg, stockLoadedMsg, stockWrittenMsg, actionDoneMsg,
		editorLoadedMsg, savedMsg,
		menu.SelectedMsg, authform.SubmittedMsg, authform.CancelledMsg,
		editform.SubmittedMsg, editform.CancelledMsg:
		return true
	case spinner.TickMsg:
		return false
	}
	return false
}

func viewContains(t *testing.T, a *App, want string) {
	t.Helper()
	if v := a.View(); !strings.Contains(v, want) {
		t.Errorf("view missing %q:\n%s", want, v)
	}
}
