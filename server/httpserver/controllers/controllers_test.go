package controllers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"net"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/golden"

	"github.com/THPTUHA/todoweb/pkg/logger"
	"github.com/THPTUHA/todoweb/pkg/todo"
	"github.com/THPTUHA/todoweb/pkg/view"
	"github.com/THPTUHA/todoweb/server/httpserver/config"
	"github.com/THPTUHA/todoweb/server/httpserver/controllers"
	"github.com/THPTUHA/todoweb/server/httpserver/routes"
	"github.com/THPTUHA/todoweb/server/httpserver/routes/ui"
)

const todosBody = `[{"id":1,"task":"Deploy app"},{"id":2,"task":"Clean House"},{"id":3,"task":"Wash Car"}]`

var taskLine = regexp.MustCompile(`<p>\d+ - [^<]*</p>`)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newApp(t *testing.T, cfg *config.Configs) *gin.Engine {
	t.Helper()
	tmpl, err := ui.Templates()
	assert.NilError(t, err)
	ctr := controllers.NewController(&controllers.ControllerConfig{
		Config:     cfg,
		Renderer:   view.NewRenderer(tmpl),
		Logger:     logger.Discard(),
		HTTPClient: &http.Client{},
	})
	return routes.Build(ctr, tmpl, logger.Discard())
}

func do(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// serveLocal runs the app on 127.0.0.1 with the config pointing at the
// listener, so LocalURL is the app itself.
func serveLocal(t *testing.T) *httptest.Server {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NilError(t, err)
	cfg := config.Default()
	cfg.HTTPServer.Domain = "127.0.0.1"
	cfg.HTTPServer.Port = ln.Addr().(*net.TCPAddr).Port

	srv := httptest.NewUnstartedServer(newApp(t, cfg))
	srv.Listener.Close()
	srv.Listener = ln
	srv.Start()
	t.Cleanup(srv.Close)
	return srv
}

type unreadBody struct {
	t *testing.T
}

func (b unreadBody) Read(p []byte) (int, error) {
	b.t.Error("request body was read")
	return 0, io.EOF
}

func upstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestListTodos(t *testing.T) {
	app := newApp(t, config.Default())

	for i := 0; i < 3; i++ {
		w := do(app, http.MethodGet, "/api/todos", nil)
		assert.Equal(t, w.Code, http.StatusOK)
		assert.Equal(t, w.Header().Get("Content-Type"), "application/json")
		assert.Equal(t, w.Body.String(), todosBody)
		assert.NilError(t, todo.ValidateList(w.Body.Bytes()))
	}
}

func TestHeadTodos(t *testing.T) {
	w := do(newApp(t, config.Default()), http.MethodHead, "/api/todos", nil)
	assert.Equal(t, w.Code, http.StatusOK)
	assert.Equal(t, w.Header().Get("Content-Type"), "application/json")
}

func TestCreateTodoNotImplemented(t *testing.T) {
	app := newApp(t, config.Default())
	bodies := []string{
		``,
		`{"id":4,"task":"Walk dog"}`,
		`{not json`,
		strings.Repeat("x", 1<<20),
	}
	for _, body := range bodies {
		w := do(app, http.MethodPost, "/api/todos", strings.NewReader(body))
		assert.Equal(t, w.Code, http.StatusNotImplemented)
		assert.Equal(t, w.Body.String(), `{"error":"not implemented"}`)
	}

	w := do(app, http.MethodPost, "/api/todos", unreadBody{t: t})
	assert.Equal(t, w.Code, http.StatusNotImplemented)

	// nothing was stored
	w = do(app, http.MethodGet, "/api/todos", nil)
	assert.Equal(t, w.Body.String(), todosBody)
}

func TestTodosOtherMethods(t *testing.T) {
	app := newApp(t, config.Default())
	for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
		w := do(app, method, "/api/todos", nil)
		assert.Equal(t, w.Code, http.StatusMethodNotAllowed, method)
		assert.Equal(t, w.Header().Get("Allow"), "GET, HEAD, POST")
	}
}

func TestTodosPreflight(t *testing.T) {
	app := newApp(t, config.Default())

	req := httptest.NewRequest(http.MethodOptions, "/api/todos", nil)
	req.Header.Set("Origin", "http://elsewhere.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	assert.Equal(t, w.Code, http.StatusNoContent)
	assert.Equal(t, w.Header().Get("Access-Control-Allow-Origin"), "*")

	w = do(app, http.MethodOptions, "/api/todos", nil)
	assert.Equal(t, w.Code, http.StatusMethodNotAllowed)
	assert.Equal(t, w.Header().Get("Allow"), "GET, HEAD, POST")

	w = do(app, http.MethodOptions, "/nope", nil)
	assert.Equal(t, w.Code, http.StatusNotFound)
}

func TestTodoListLocal(t *testing.T) {
	srv := serveLocal(t)

	res, err := http.Get(srv.URL + "/todos")
	assert.NilError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	assert.NilError(t, err)

	assert.Equal(t, res.StatusCode, http.StatusOK)
	assert.Equal(t, res.Header.Get("Content-Type"), "text/html; charset=utf-8")
	golden.Assert(t, string(body), "todos.html.golden")
	assert.DeepEqual(t, taskLine.FindAllString(string(body), -1), []string{
		"<p>1 - Deploy app</p>",
		"<p>2 - Clean House</p>",
		"<p>3 - Wash Car</p>",
	})
}

func TestTodoListIgnoresHostHeader(t *testing.T) {
	var hits atomic.Int32
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":99,"task":"from another host"}]`)
	}))
	defer other.Close()
	srv := serveLocal(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/todos", nil)
	assert.NilError(t, err)
	req.Host = other.Listener.Addr().String()
	req.Header.Set("X-Forwarded-Proto", "http")
	res, err := http.DefaultClient.Do(req)
	assert.NilError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	assert.NilError(t, err)

	assert.Equal(t, res.StatusCode, http.StatusOK)
	assert.Equal(t, hits.Load(), int32(0))
	assert.DeepEqual(t, taskLine.FindAllString(string(body), -1), []string{
		"<p>1 - Deploy app</p>",
		"<p>2 - Clean House</p>",
		"<p>3 - Wash Car</p>",
	})
}

func TestTodoListConfiguredBaseURL(t *testing.T) {
	api := upstream(t, http.StatusOK, `[{"id":7,"task":"Feed cat"},{"id":5,"task":"Water plants"}]`)
	cfg := config.Default()
	cfg.View.APIBaseURL = api.URL

	w := do(newApp(t, cfg), http.MethodGet, "/todos", nil)
	assert.Equal(t, w.Code, http.StatusOK)
	assert.DeepEqual(t, taskLine.FindAllString(w.Body.String(), -1), []string{
		"<p>7 - Feed cat</p>",
		"<p>5 - Water plants</p>",
	})
}

func TestTodoListEmpty(t *testing.T) {
	api := upstream(t, http.StatusOK, `[]`)
	cfg := config.Default()
	cfg.View.APIBaseURL = api.URL

	w := do(newApp(t, cfg), http.MethodGet, "/todos", nil)
	assert.Equal(t, w.Code, http.StatusOK)
	assert.Check(t, is.Contains(w.Body.String(), "<h1>To Dos</h1>"))
	assert.Check(t, is.Len(taskLine.FindAllString(w.Body.String(), -1), 0))
}

func TestTodoListFailures(t *testing.T) {
	closed := upstream(t, http.StatusOK, `[]`)
	closed.Close()

	cases := []struct {
		name string
		base string
	}{
		{name: "malformed json", base: upstream(t, http.StatusOK, `[{"id":1,"task":`).URL},
		{name: "upstream error", base: upstream(t, http.StatusInternalServerError, `{"error":"x"}`).URL},
		{name: "unreachable", base: closed.URL},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.View.APIBaseURL = tc.base

			w := do(newApp(t, cfg), http.MethodGet, "/todos", nil)
			assert.Equal(t, w.Code, http.StatusInternalServerError)
			assert.Equal(t, w.Body.String(), "Internal Server Error")
			assert.Check(t, !strings.Contains(w.Body.String(), "<h1>"))
		})
	}
}

func TestStaticPages(t *testing.T) {
	app := newApp(t, config.Default())
	cases := map[string]string{
		"/":      "<h1>Home</h1>",
		"/tv":    "<h1>TV</h1>",
		"/about": "<h1>About</h1>",
	}
	for path, heading := range cases {
		w := do(app, http.MethodGet, path, nil)
		assert.Equal(t, w.Code, http.StatusOK, path)
		assert.Equal(t, w.Header().Get("Content-Type"), "text/html; charset=utf-8")
		body := w.Body.String()
		assert.Check(t, is.Contains(body, heading), path)
		for _, link := range []string{`href="/"`, `href="/tv"`, `href="/todos"`, `href="/about"`} {
			assert.Check(t, is.Contains(body, link), path)
		}
	}
}

func TestNotFound(t *testing.T) {
	app := newApp(t, config.Default())

	w := do(app, http.MethodGet, "/nope", nil)
	assert.Equal(t, w.Code, http.StatusNotFound)
	assert.Check(t, is.Contains(w.Body.String(), "Page not found"))

	w = do(app, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, w.Code, http.StatusNotFound)
	assert.Equal(t, w.Body.String(), `{"error":"not found"}`)
}

func TestPageMethodNotAllowed(t *testing.T) {
	w := do(newApp(t, config.Default()), http.MethodPost, "/todos", nil)
	assert.Equal(t, w.Code, http.StatusMethodNotAllowed)
}
