package local

import (
	"github.com/asticode/go-astilog"
	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/pkg/errors"
)

type windowsVoice struct {
	iDispatch *ole.IDispatch
	iUnknown  *ole.IUnknown
}

// Init initializes the speaker
func (s *Speaker) Init() (err error) {
	// Initialize ole
	astilog.Debug("local: initializing ole")
	if err = ole.CoInitialize(0); err != nil {
		err = errors.Wrap(err, "local: initializing ole failed")
		return
	}

	// Create SAPI.SpVoice object
	astilog.Debug("local: creating SAPI.SpVoice ole object")
	if s.windows.iUnknown, err = oleutil.CreateObject("SAPI.SpVoice"); err != nil {
		err = errors.Wrap(err, "local: creating SAPI.SpVoice ole object failed")
		return
	}

	// Get IDispatch
	astilog.Debug("local: getting ole IDispatch")
	if s.windows.iDispatch, err = s.windows.iUnknown.QueryInterface(ole.IID_IDispatch); err != nil {
		err = errors.Wrap(err, "local: getting ole IDispatch failed")
		return
	}
	return
}

// Close implements the io.Closer interface
func (s *Speaker) Close() (err error) {
	// Release IDispatch
	astilog.Debug("local: releasing IDispatch")
	s.windows.iDispatch.Release()

	// Release IUnknown
	astilog.Debug("local: releasing IUnknown")
	s.windows.iUnknown.Release()

	// Uninitialize ole
	astilog.Debug("local: uninitializing ole")
	ole.CoUninitialize()
	return
}

func (s *Speaker) say(i string) (err error) {
	// Init has not been executed
	if s.windows.iDispatch == nil {
		err = errors.New("local: the Init() method should be called before running anything else")
		return
	}

	// Say
	var v *ole.VARIANT
	if v, err = oleutil.CallMethod(s.windows.iDispatch, "Speak", i); err != nil {
		err = errors.Wrap(err, "local: calling Speak on IDispatch failed")
		return
	}

	// Clear variant
	if err = v.Clear(); err != nil {
		err = errors.Wrap(err, "local: clearing variant failed")
		return
	}
	return
}
