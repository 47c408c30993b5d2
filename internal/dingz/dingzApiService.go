package dingz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// EmptyResponseError is returned when an endpoint that should list
// exactly one entry returns none.
type EmptyResponseError struct {
	Endpoint string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("empty response from %s", e.Endpoint)
}

// StatusError is a non-2xx reply from the device.
type StatusError struct {
	Code   int
	Status string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("device returned %s for %s", e.Status, e.URL)
}

// HSVColor is an LED colour: hue 0-360, saturation and value 0-100.
type HSVColor struct {
	Hue        float64
	Saturation float64
	Value      float64
}

// APIService talks to a single device's local REST API. The http.Client
// is supplied by the caller, who owns its lifecycle; it must be safe for
// concurrent use if calls are issued concurrently. No retries or
// timeouts are applied here, wrap the context if you need a deadline.
type APIService struct {
	logger *log.Logger
	client *http.Client
	host   string
}

// NewAPIService returns a client for the device at host, e.g.
// "http://192.168.1.61".
func NewAPIService(logger *log.Logger, client *http.Client, host string) *APIService {
	return &APIService{logger: logger, client: client, host: strings.TrimRight(host, "/")}
}

func (s *APIService) Info(ctx context.Context) (Info, error) {
	raw, err := s.get(ctx, "/info")
	if err != nil {
		return Info{}, err
	}
	return decodeResponse(s, raw, InfoFromJSON)
}

// Device reads /device, which the firmware keys by MAC address and which
// should contain exactly one entry. More than one entry is logged and
// the first (by sorted key) is used; zero entries fail the call.
func (s *APIService) Device(ctx context.Context) (Device, error) {
	raw, err := s.get(ctx, "/device")
	if err != nil {
		return Device{}, err
	}

	if len(raw) == 0 {
		err := &EmptyResponseError{Endpoint: "/device"}
		s.logger.Error("empty device response")
		return Device{}, err
	}
	if len(raw) > 1 {
		s.logger.Warn("received more than one device", "count", len(raw))
	}

	macs := make([]string, 0, len(raw))
	for mac := range raw {
		macs = append(macs, mac)
	}
	sort.Strings(macs)

	entry, ok := raw[macs[0]].(map[string]any)
	if !ok {
		err := &DecodeError{Type: "Device", Raw: raw[macs[0]], Err: fmt.Errorf("expected object, got %T", raw[macs[0]])}
		s.logger.Error("failed to decode device response", "err", err)
		return Device{}, err
	}
	return decodeResponse(s, entry, DeviceFromJSON)
}

func (s *APIService) State(ctx context.Context) (State, error) {
	raw, err := s.get(ctx, "/state")
	if err != nil {
		return State{}, err
	}
	return decodeResponse(s, raw, StateFromJSON)
}

func (s *APIService) SystemConfig(ctx context.Context) (SystemConfig, error) {
	raw, err := s.get(ctx, "/system_config")
	if err != nil {
		return SystemConfig{}, err
	}
	return decodeResponse(s, raw, SystemConfigFromJSON)
}

func (s *APIService) DimmerConfigs(ctx context.Context) ([]*DimmerConfig, error) {
	return listResponse(s, ctx, "/dimmer_config", "dimmers", "DimmerConfig", DimmerConfigFromJSON)
}

func (s *APIService) BlindConfigs(ctx context.Context) ([]*BlindConfig, error) {
	return listResponse(s, ctx, "/blind_config", "blinds", "BlindConfig", BlindConfigFromJSON)
}

func (s *APIService) PIRConfig(ctx context.Context) (PIRConfig, error) {
	raw, err := s.get(ctx, "/pir_config")
	if err != nil {
		return PIRConfig{}, err
	}
	return decodeResponse(s, raw, PIRConfigFromJSON)
}

// SetLED drives the front LED. A nil state toggles. If a colour is
// given, hue/saturation/value are rounded to integers (hue wrapped to
// 0-359) and sent in hsv mode.
func (s *APIService) SetLED(ctx context.Context, state *bool, color *HSVColor) error {
	action := "toggle"
	if state != nil {
		if *state {
			action = "on"
		} else {
			action = "off"
		}
	}

	params := []param{{"action", action}}
	if color != nil {
		hue := roundToInt(color.Hue) % 360
		if hue < 0 {
			hue += 360
		}
		params = append(params,
			param{"color", fmt.Sprintf("%d;%d;%d", hue, roundToInt(color.Saturation), roundToInt(color.Value))},
			param{"mode", "hsv"},
		)
	}

	return s.post(ctx, "/led/set", params)
}

// SetDimmer turns a dimmer channel on or off, optionally at the given
// brightness (0-100, rounded to the nearest integer).
func (s *APIService) SetDimmer(ctx context.Context, index int, on bool, value *float64) error {
	action := "off"
	if on {
		action = "on"
	}
	var params []param
	if value != nil {
		params = append(params, param{"value", strconv.Itoa(roundToInt(*value))})
	}
	return s.post(ctx, fmt.Sprintf("/dimmer/%d/%s", index, action), params)
}

// SetBlindPosition moves a blind to the given position (0-100, rounded
// to the nearest integer).
func (s *APIService) SetBlindPosition(ctx context.Context, index int, position float64) error {
	params := []param{{"blind", strconv.Itoa(roundToInt(position))}}
	return s.post(ctx, fmt.Sprintf("/shade/%d", index), params)
}

func (s *APIService) BlindDown(ctx context.Context, index int) error {
	return s.post(ctx, fmt.Sprintf("/shade/%d/down", index), nil)
}

func (s *APIService) BlindUp(ctx context.Context, index int) error {
	return s.post(ctx, fmt.Sprintf("/shade/%d/up", index), nil)
}

func (s *APIService) BlindStop(ctx context.Context, index int) error {
	return s.post(ctx, fmt.Sprintf("/shade/%d/stop", index), nil)
}

func (s *APIService) get(ctx context.Context, path string) (map[string]any, error) {
	url := s.host + "/api/v1" + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error("error making device API call", "url", url, "status", resp.Status)
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, URL: url}
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

type param struct {
	key   string
	value string
}

func (s *APIService) post(ctx context.Context, path string, params []param) error {
	url := s.host + "/api/v1" + path

	// the body is joined by hand: the device firmware's form parser
	// rejects percent-encoded values
	var body string
	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, p.key+"="+p.value)
	}
	body = strings.Join(pairs, "&")

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	s.logger.Debug("POST", "path", path, "body", body)
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error("error making device API call", "url", url, "status", resp.Status)
		return &StatusError{Code: resp.StatusCode, Status: resp.Status, URL: url}
	}
	return nil
}

// decodeResponse runs a schema decoder over a response body and logs a
// failure once, here at the outermost decode boundary.
func decodeResponse[T any](s *APIService, raw map[string]any, decode DecodeFunc[T]) (T, error) {
	v, err := decode(raw)
	if err != nil {
		s.logger.Error("failed to decode device response", "err", err)
	}
	return v, err
}

// listResponse reads an endpoint whose payload is a single named list.
func listResponse[T any](s *APIService, ctx context.Context, path string, key string, typ string, decode DecodeFunc[T]) ([]*T, error) {
	raw, err := s.get(ctx, path)
	if err != nil {
		return nil, err
	}

	o := newObj(typ, raw)
	entries := o.List(key)
	if err := o.Err(); err != nil {
		s.logger.Error("failed to decode device response", "err", err)
		return nil, err
	}

	configs, err := ListFromJSON(typ, entries, decode)
	if err != nil {
		s.logger.Error("failed to decode device response", "err", err)
	}
	return configs, err
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}
