package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	nexthire "github.com/nexthire/go-nexthire"

	"github.com/asticode/go-astilog"
	"github.com/asticode/go-astiws"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// UIs can't provide proper unique names therefore we come up with one when
// they connect and send it right away for future messages.
func uiName(c *astiws.Client) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%p", c)))
}

func (s *Server) handleUIWebsocket(rw http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := s.wu.ServeHTTP(rw, r, func(c *astiws.Client) (err error) {
		// Set message handler
		c.SetMessageHandler(s.handleUIMessage)

		// Get name
		name := uiName(c)

		// Handle disconnect
		c.SetListener(astiws.EventNameDisconnect, func(_ *astiws.Client, _ string, _ json.RawMessage) (err error) {
			// Create disconnected event
			var e *nexthire.Event
			if e, err = nexthire.NewEventUIDisconnectedEvent(from, nil, name); err != nil {
				err = errors.Wrap(err, "server: creating disconnected event failed")
				return
			}

			// Dispatch
			s.d.Dispatch(e)
			return
		})

		// Register client
		s.wu.RegisterClient(name, c)

		// Log
		astilog.Infof("server: ui %s has connected", name)

		// Create welcome event
		var e *nexthire.Event
		if e, err = nexthire.NewEventUIWelcomeEvent(from, nexthire.NewUIIdentifier(name), name); err != nil {
			err = errors.Wrap(err, "server: creating welcome event failed")
			return
		}

		// Dispatch
		s.d.Dispatch(e)
		return
	}); err != nil {
		if v, ok := errors.Cause(err).(*websocket.CloseError); !ok ||
			(v.Code != websocket.CloseNoStatusReceived && v.Code != websocket.CloseNormalClosure) {
			astilog.Error(errors.Wrap(err, "server: handling ui websocket failed"))
		}
		return
	}
}

func (s *Server) handleUIMessage(p []byte) (err error) {
	// Log
	astilog.Debugf("server: handling ui message %s", p)

	// Unmarshal
	e := nexthire.NewEvent()
	if err = json.Unmarshal(p, e); err != nil {
		err = errors.Wrap(err, "server: unmarshaling failed")
		return
	}

	// Dispatch
	s.d.Dispatch(e)
	return
}

// sendEventToUIs pushes an event addressed to UIs to the matching websocket
// clients. Events are rate limited so that a misbehaving session can't flood
// connected front ends.
func (s *Server) sendEventToUIs(e *nexthire.Event) (err error) {
	// Rate limit
	if !s.b.Inc() {
		astilog.Warnf("server: event %s to uis rate limited", e.Name)
		return
	}

	// Get clients
	var cs []*astiws.Client
	if e.To != nil && e.To.Name != nil {
		// Retrieve client from manager
		c, ok := s.wu.Client(*e.To.Name)
		if !ok {
			err = fmt.Errorf("server: client %s doesn't exist", *e.To.Name)
			return
		}

		// Append client
		cs = append(cs, c)
	} else {
		// Loop through clients
		s.wu.Clients(func(_ interface{}, c *astiws.Client) (err error) {
			cs = append(cs, c)
			return
		})
	}

	// Loop through clients
	for _, c := range cs {
		// Write
		if err = c.WriteJSON(e); err != nil {
			err = errors.Wrap(err, "server: writing json event failed")
			return
		}
	}
	return
}

func (s *Server) unregisterUI(e *nexthire.Event) (err error) {
	// Parse payload
	var name string
	if name, err = nexthire.ParseEventUIDisconnectedPayload(e); err != nil {
		err = errors.Wrap(err, "server: parsing event payload failed")
		return
	}

	// Unregister client
	s.wu.UnregisterClient(name)

	// Log
	astilog.Infof("server: ui %s has disconnected", name)
	return
}

func (s *Server) extendUIConnection(e *nexthire.Event) (err error) {
	// From name
	if e.From.Name == nil {
		err = errors.New("server: from name is empty")
		return
	}

	// Retrieve client from manager
	c, ok := s.wu.Client(*e.From.Name)
	if !ok {
		err = fmt.Errorf("server: client %s doesn't exist", *e.From.Name)
		return
	}

	// Extend connection
	if err = c.ExtendConnection(); err != nil {
		err = errors.Wrap(err, "server: extending connection failed")
		return
	}
	return
}
