package server

import (
	"net/http"
	"time"

	nexthire "github.com/nexthire/go-nexthire"
	"github.com/nexthire/go-nexthire/audio/capture"
	"github.com/nexthire/go-nexthire/gen"
	"github.com/nexthire/go-nexthire/interview"

	"github.com/asticode/go-astilog"
	astihttp "github.com/asticode/go-astitools/http"
	astilimiter "github.com/asticode/go-astitools/limiter"
	astiptr "github.com/asticode/go-astitools/ptr"
	astiworker "github.com/asticode/go-astitools/worker"
	"github.com/asticode/go-astiws"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// Vars
var (
	from = nexthire.Identifier{Type: nexthire.ServerIdentifierType}
)

type Options struct {
	Addr        string   `toml:"addr"`
	CORSOrigins []string `toml:"cors_origins"`
	PublicAddr  string   `toml:"public_addr"`
}

// Server is the HTTP front door: the /ai endpoints drive the interview
// controller, the scoring endpoints wrap the generator, and interview
// events are pushed to UIs over a websocket.
type Server struct {
	b  *astilimiter.Bucket
	c  *interview.Controller
	cp *capture.Capturer
	d  *nexthire.Dispatcher
	g  gen.Generator
	o  Options
	w  *astiworker.Worker
	wu *astiws.Manager
}

func New(o Options, w *astiworker.Worker, d *nexthire.Dispatcher, c *interview.Controller, cp *capture.Capturer, g gen.Generator) (s *Server) {
	// Create server
	s = &Server{
		b:  astilimiter.New().Add("events", 20, time.Second),
		c:  c,
		cp: cp,
		d:  d,
		g:  g,
		o:  o,
		w:  w,
		wu: astiws.NewManager(astiws.ManagerConfiguration{}),
	}

	// Default public addr
	if s.o.PublicAddr == "" {
		s.o.PublicAddr = s.o.Addr
	}

	// Add dispatcher handlers
	s.d.On(nexthire.DispatchConditions{Name: astiptr.Str(nexthire.CmdUIPingEvent)}, s.extendUIConnection)
	s.d.On(nexthire.DispatchConditions{Name: astiptr.Str(nexthire.EventUIDisconnectedEvent)}, s.unregisterUI)
	s.d.On(nexthire.DispatchConditions{To: &nexthire.Identifier{Type: nexthire.UIIdentifierType}}, s.sendEventToUIs)
	return
}

// Close closes the server properly
func (s *Server) Close() error {
	// Close ui clients
	if s.wu != nil {
		if err := s.wu.Close(); err != nil {
			astilog.Error(errors.Wrap(err, "server: closing ui clients failed"))
		}
	}

	// Close limiter
	if s.b != nil {
		s.b.Close()
	}
	return nil
}

// Serve spawns the server
func (s *Server) Serve() {
	// Create router
	r := httprouter.New()

	// Interview
	r.POST("/ai/start", s.start)
	r.POST("/ai/listen", s.listen)
	r.GET("/ai/status", s.status)
	r.POST("/ai/end", s.end)
	r.POST("/ai/stop", s.stopCapture)
	r.GET("/ai/calibrate", s.calibrate)

	// Scoring
	r.POST("/score/resume", s.scoreResume)
	r.POST("/score/total", s.scoreTotal)
	r.POST("/mcqs", s.mcqs)

	// API
	r.GET("/api/ok", s.ok)
	r.GET("/api/references", s.references)

	// Websockets
	r.GET("/websockets/ui", s.handleUIWebsocket)

	// Chain middlewares
	h := astihttp.ChainMiddlewaresWithPrefix(r, []string{"/ai/", "/api/", "/score/", "/mcqs"}, astihttp.MiddlewareContentType("application/json"))
	h = middlewareCORS(h, s.o.CORSOrigins)

	// Serve
	s.w.Serve(s.o.Addr, h)
}

func (s *Server) ok(rw http.ResponseWriter, r *http.Request, p httprouter.Params) {}

type APIReferences struct {
	Websocket APIWebsocket `json:"websocket"`
}

type APIWebsocket struct {
	Addr       string        `json:"addr"`
	PingPeriod time.Duration `json:"ping_period"`
}

func (s *Server) references(rw http.ResponseWriter, r *http.Request, p httprouter.Params) {
	nexthire.WriteHTTPData(rw, APIReferences{Websocket: APIWebsocket{
		Addr:       "ws://" + s.o.PublicAddr + "/websockets/ui",
		PingPeriod: astiws.PingPeriod,
	}})
}
