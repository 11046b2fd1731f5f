package server

import (
	"net/http"
	"time"

	nexthire "github.com/nexthire/go-nexthire"
	"github.com/nexthire/go-nexthire/audio/capture"

	"github.com/asticode/go-astichartjs"
	astiptr "github.com/asticode/go-astitools/ptr"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

type CalibrateResponse struct {
	Chart                 astichartjs.Chart `json:"chart"`
	CurrentSilenceLevel   float64           `json:"current_silence_level"`
	MaxLevel              float64           `json:"max_level"`
	SuggestedSilenceLevel float64           `json:"suggested_silence_level"`
}

func (s *Server) calibrate(rw http.ResponseWriter, r *http.Request, p httprouter.Params) {
	// Parse duration
	var d time.Duration
	if v := r.URL.Query().Get("duration"); v != "" {
		var err error
		if d, err = time.ParseDuration(v); err != nil {
			nexthire.WriteHTTPError(rw, http.StatusBadRequest, errors.Wrapf(err, "server: parsing duration %s failed", v))
			return
		}
	}

	// Calibrate
	cl, err := s.cp.Calibrate(r.Context(), d)
	if err != nil {
		writeError(rw, errors.Wrap(err, "server: calibrating failed"))
		return
	}

	// Write
	nexthire.WriteHTTPData(rw, CalibrateResponse{
		Chart:                 calibrationChart(cl),
		CurrentSilenceLevel:   cl.CurrentSilenceLevel,
		MaxLevel:              cl.MaxLevel,
		SuggestedSilenceLevel: cl.SuggestedSilenceLevel,
	})
}

// calibrationChart plots the recorded levels alongside the current and
// suggested silence levels so the two thresholds are easy to compare.
func calibrationChart(cl capture.Calibration) (c astichartjs.Chart) {
	// Create chart
	c = astichartjs.Chart{
		Data: &astichartjs.Data{
			Datasets: []astichartjs.Dataset{{
				BackgroundColor: astichartjs.ChartBackgroundColorGreen,
				BorderColor:     astichartjs.ChartBorderColorGreen,
				Label:           "Audio level",
			}},
		},
		Options: &astichartjs.Options{
			Scales: &astichartjs.Scales{
				XAxes: []astichartjs.Axis{
					{
						Position: astichartjs.ChartAxisPositionsBottom,
						ScaleLabel: &astichartjs.ScaleLabel{
							Display:     astiptr.Bool(true),
							LabelString: "Duration (s)",
						},
						Type: astichartjs.ChartAxisTypesLinear,
					},
				},
				YAxes: []astichartjs.Axis{
					{
						ScaleLabel: &astichartjs.ScaleLabel{
							Display:     astiptr.Bool(true),
							LabelString: "Audio level",
						},
					},
				},
			},
			Title: &astichartjs.Title{Display: astiptr.Bool(true)},
		},
		Type: astichartjs.ChartTypeLine,
	}

	// Add levels
	var maxX float64
	for idx, l := range cl.Levels {
		maxX = cl.ChunkDuration.Seconds() * float64(idx)
		c.Data.Datasets[0].Data = append(c.Data.Datasets[0].Data, astichartjs.DataPoint{
			X: maxX,
			Y: l,
		})
	}

	// Add current silence level
	c.Data.Datasets = append(c.Data.Datasets, astichartjs.Dataset{
		BackgroundColor: astichartjs.ChartBackgroundColorBlue,
		BorderColor:     astichartjs.ChartBorderColorBlue,
		Label:           "Current silence level",
	})
	c.Data.Datasets[1].Data = append(c.Data.Datasets[1].Data, astichartjs.DataPoint{X: 0, Y: cl.CurrentSilenceLevel})
	c.Data.Datasets[1].Data = append(c.Data.Datasets[1].Data, astichartjs.DataPoint{X: maxX, Y: cl.CurrentSilenceLevel})

	// Add suggested silence level
	c.Data.Datasets = append(c.Data.Datasets, astichartjs.Dataset{
		BackgroundColor: astichartjs.ChartBackgroundColorRed,
		BorderColor:     astichartjs.ChartBorderColorRed,
		Label:           "Suggested silence level",
	})
	c.Data.Datasets[2].Data = append(c.Data.Datasets[2].Data, astichartjs.DataPoint{X: 0, Y: cl.SuggestedSilenceLevel})
	c.Data.Datasets[2].Data = append(c.Data.Datasets[2].Data, astichartjs.DataPoint{X: maxX, Y: cl.SuggestedSilenceLevel})
	return
}
