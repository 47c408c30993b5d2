package dingz_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/dingz/internal/dingz"
)

// capturedRequest records what the fake device received.
type capturedRequest struct {
	method      string
	path        string
	body        string
	contentType string
}

func newTestService(t *testing.T, handler http.HandlerFunc) *dingz.APIService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	return dingz.NewAPIService(logger, server.Client(), server.URL)
}

func newCapturingService(t *testing.T, captured *capturedRequest) *dingz.APIService {
	t.Helper()
	return newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.body = string(body)
		captured.contentType = r.Header.Get("Content-Type")
		fmt.Fprint(w, "{}")
	})
}

const deviceEntryJSON = `{
  "type": "dingz",
  "battery": false,
  "reachable": true,
  "meshroot": false,
  "fw_version": "%s",
  "hw_version": "1.0.0",
  "fw_version_puck": "1.1.17",
  "hw_version_puck": "1.0.0",
  "front_sn": "F000123",
  "puck_sn": "P000456",
  "front_hw_model": "dz1f-pir",
  "puck_hw_model": "dz1p",
  "front_production_date": {"year": 2020, "month": 6, "day": 1},
  "puck_production_date": {"year": 2020, "month": 5, "day": 12},
  "dip_config": 3,
  "has_pir": true,
  "hash": "ab12cd34"
}`

func Test_Info(t *testing.T) {

	t.Run("should GET /api/v1/info and decode the response", func(t *testing.T) {
		t.Parallel()
		// arrange
		var requestedPath string
		service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			fmt.Fprint(w, infoJSON)
		})

		// act
		info, err := service.Info(context.Background())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "/api/v1/info", requestedPath)
		assert.Equal(t, "1.3.19", info.Version)
		assert.Equal(t, 108, info.Type)
	})

	t.Run("should surface a non-2xx reply as a StatusError", func(t *testing.T) {
		t.Parallel()
		// arrange
		service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		// act
		_, err := service.Info(context.Background())

		// assert
		var statusErr *dingz.StatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	})

}

func Test_Device(t *testing.T) {

	t.Run("should fail with EmptyResponseError when the device lists no entries", func(t *testing.T) {
		t.Parallel()
		// arrange
		service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{}`)
		})

		// act
		_, err := service.Device(context.Background())

		// assert
		var emptyErr *dingz.EmptyResponseError
		assert.ErrorAs(t, err, &emptyErr)
		assert.Equal(t, "/device", emptyErr.Endpoint)
	})

	t.Run("should use the first entry when the device lists more than one", func(t *testing.T) {
		t.Parallel()
		// arrange
		first := fmt.Sprintf(deviceEntryJSON, "1.3.19")
		second := fmt.Sprintf(deviceEntryJSON, "9.9.9")
		service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `{"AA0011223344": %s, "BB0011223344": %s}`, first, second)
		})

		// act
		device, err := service.Device(context.Background())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "1.3.19", device.FwVersion)
	})

	t.Run("should decode the single entry keyed by MAC", func(t *testing.T) {
		t.Parallel()
		// arrange
		service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `{"AA0011223344": %s}`, fmt.Sprintf(deviceEntryJSON, "1.3.19"))
		})

		// act
		device, err := service.Device(context.Background())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "dingz", device.Type)
		assert.True(t, device.HasPIR)
		assert.Equal(t, 2020, device.PuckProductionDate.Year)
	})

}

func Test_State(t *testing.T) {

	t.Run("should GET /api/v1/state and decode the response", func(t *testing.T) {
		t.Parallel()
		// arrange
		service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/state", r.URL.Path)
			fmt.Fprint(w, stateJSON)
		})

		// act
		state, err := service.State(context.Background())

		// assert
		assert.NoError(t, err)
		assert.Len(t, state.Dimmers, 2)
		assert.Equal(t, []float64{1.5, 0}, state.Sensors.PowerOutputs)
	})

}

func Test_DimmerConfigs(t *testing.T) {

	t.Run("should decode the dimmers list including null slots", func(t *testing.T) {
		t.Parallel()
		// arrange
		service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/dimmer_config", r.URL.Path)
			fmt.Fprint(w, `{"dimmers": [
			  {"name": "Ceiling", "feedback": {"color": "#0000FF", "brightness": 50}, "light": {"dimmable": true, "dimmer": {"type": "led", "use_last_value": true}}},
			  null
			]}`)
		})

		// act
		configs, err := service.DimmerConfigs(context.Background())

		// assert
		assert.NoError(t, err)
		assert.Len(t, configs, 2)
		assert.Equal(t, "Ceiling", configs[0].Name)
		assert.Nil(t, configs[1])
	})

	t.Run("should fail when the dimmers field is missing", func(t *testing.T) {
		t.Parallel()
		// arrange
		service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{}`)
		})

		// act
		_, err := service.DimmerConfigs(context.Background())

		// assert
		var decodeErr *dingz.DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})

}

func Test_BlindConfigs(t *testing.T) {

	t.Run("should decode the blinds list", func(t *testing.T) {
		t.Parallel()
		// arrange
		service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/blind_config", r.URL.Path)
			fmt.Fprint(w, `{"blinds": [
			  {"auto_calibration": true, "state": "Initialised", "invert_direction": false, "lamella_time": 2, "shade_up_time": 10, "shade_down_time": 10, "type": "lamella_90", "min_value": 0, "max_value": 100, "name": "Living room"}
			]}`)
		})

		// act
		configs, err := service.BlindConfigs(context.Background())

		// assert
		assert.NoError(t, err)
		assert.Len(t, configs, 1)
		assert.Equal(t, "lamella_90", configs[0].Type)
	})

}

func Test_PIRConfig(t *testing.T) {

	t.Run("should GET /api/v1/pir_config and decode the response", func(t *testing.T) {
		t.Parallel()
		// arrange
		service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/pir_config", r.URL.Path)
			fmt.Fprint(w, `{"enabled": true, "mode": "trigger", "light_off_timer": 300, "suspend_timer": 20}`)
		})

		// act
		cfg, err := service.PIRConfig(context.Background())

		// assert
		assert.NoError(t, err)
		assert.True(t, cfg.Enabled)
		assert.Equal(t, 300, cfg.LightOffTimer)
	})

}

func Test_SetLED(t *testing.T) {

	t.Run("should toggle with a rounded, wrapped colour", func(t *testing.T) {
		t.Parallel()
		// arrange
		var captured capturedRequest
		service := newCapturingService(t, &captured)

		// act
		err := service.SetLED(context.Background(), nil, &dingz.HSVColor{Hue: 400, Saturation: 50.6, Value: 100.4})

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.MethodPost, captured.method)
		assert.Equal(t, "/api/v1/led/set", captured.path)
		assert.Equal(t, "action=toggle&color=40;51;100&mode=hsv", captured.body)
		assert.Equal(t, "application/x-www-form-urlencoded", captured.contentType)
	})

	t.Run("should send on/off actions for explicit states", func(t *testing.T) {
		t.Parallel()
		// arrange
		var captured capturedRequest
		service := newCapturingService(t, &captured)
		on := true

		// act
		err := service.SetLED(context.Background(), &on, nil)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "action=on", captured.body)
	})

}

func Test_SetDimmer(t *testing.T) {

	t.Run("should encode the action in the path and round the value", func(t *testing.T) {
		t.Parallel()
		// arrange
		var captured capturedRequest
		service := newCapturingService(t, &captured)
		value := 74.5

		// act
		err := service.SetDimmer(context.Background(), 1, true, &value)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "/api/v1/dimmer/1/on", captured.path)
		assert.Equal(t, "value=75", captured.body)
	})

	t.Run("should send an empty body when no value is given", func(t *testing.T) {
		t.Parallel()
		// arrange
		var captured capturedRequest
		service := newCapturingService(t, &captured)

		// act
		err := service.SetDimmer(context.Background(), 2, false, nil)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "/api/v1/dimmer/2/off", captured.path)
		assert.Equal(t, "", captured.body)
		assert.Equal(t, "", captured.contentType)
	})

}

func Test_SetBlindPosition(t *testing.T) {

	t.Run("should round the position and skip percent-encoding", func(t *testing.T) {
		t.Parallel()
		// arrange
		var captured capturedRequest
		service := newCapturingService(t, &captured)

		// act
		err := service.SetBlindPosition(context.Background(), 2, 57.5)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "/api/v1/shade/2", captured.path)
		assert.Equal(t, "blind=58", captured.body)
	})

}

func Test_BlindMovement(t *testing.T) {

	tests := []struct {
		name         string
		call         func(service *dingz.APIService) error
		expectedPath string
	}{
		{
			name:         "down",
			call:         func(s *dingz.APIService) error { return s.BlindDown(context.Background(), 0) },
			expectedPath: "/api/v1/shade/0/down",
		},
		{
			name:         "up",
			call:         func(s *dingz.APIService) error { return s.BlindUp(context.Background(), 1) },
			expectedPath: "/api/v1/shade/1/up",
		},
		{
			name:         "stop",
			call:         func(s *dingz.APIService) error { return s.BlindStop(context.Background(), 3) },
			expectedPath: "/api/v1/shade/3/stop",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// arrange
			var captured capturedRequest
			service := newCapturingService(t, &captured)

			// act
			err := tt.call(service)

			// assert
			assert.NoError(t, err)
			assert.Equal(t, http.MethodPost, captured.method)
			assert.Equal(t, tt.expectedPath, captured.path)
			assert.Equal(t, "", captured.body)
		})
	}

}
