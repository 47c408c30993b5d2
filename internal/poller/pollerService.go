package poller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nathan-osman/go-sunrise"
	sse "github.com/r3labs/sse/v2"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/wheelibin/dingz/internal/dingz"
	"github.com/wheelibin/dingz/internal/models"
)

const readingsStream = "readings"

// how far the device's reported sun times may drift from the calculated
// ones before we flag its clock
const sunTimeToleranceMinutes = 5

type dingzApiService interface {
	State(ctx context.Context) (dingz.State, error)
	SystemConfig(ctx context.Context) (dingz.SystemConfig, error)
}

type sensorRepo interface {
	Add(reading models.SensorReading) error
}

// PollerService periodically reads the device state, stores a flattened
// sensor reading and republishes it on an SSE stream.
type PollerService struct {
	logger   *log.Logger
	api      dingzApiService
	repo     sensorRepo
	events   *sse.Server
	interval time.Duration
}

func NewPollerService(logger *log.Logger, api dingzApiService, repo sensorRepo, interval time.Duration) *PollerService {
	events := sse.New()
	events.CreateStream(readingsStream)

	return &PollerService{
		logger:   logger,
		api:      api,
		repo:     repo,
		events:   events,
		interval: interval,
	}
}

// ServeEvents handles subscriptions to the readings event stream.
func (p *PollerService) ServeEvents(w http.ResponseWriter, r *http.Request) {
	p.events.ServeHTTP(w, r)
}

func (p *PollerService) Run(stopChannel chan bool) {

	p.checkDeviceSunTimes()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// take a reading straight away
	p.poll(time.Now())

	for {
		select {
		case <-stopChannel:
			p.logger.Info("PollerService.Run: stop signal received")
			return
		case t := <-ticker.C:
			p.poll(t)
		}
	}
}

func (p *PollerService) poll(t time.Time) {

	state, err := p.api.State(context.Background())
	if err != nil {
		p.logger.Error("failed to read device state", "err", err)
		return
	}

	reading := ReadingFromState(state, t)
	if err := p.repo.Add(reading); err != nil {
		p.logger.Error("failed to store sensor reading", "err", err)
	}

	data, err := json.Marshal(reading)
	if err != nil {
		p.logger.Error("failed to marshal sensor reading", "err", err)
		return
	}
	p.events.Publish(readingsStream, &sse.Event{Data: data})
}

// ReadingFromState flattens the sensors block of a state response into a
// storable reading.
func ReadingFromState(state dingz.State, takenAt time.Time) models.SensorReading {
	sensors := state.Sensors
	return models.SensorReading{
		TakenAt:                  takenAt,
		RoomTemperature:          sensors.RoomTemperature,
		UncompensatedTemperature: sensors.UncompensatedTemperature,
		Brightness:               sensors.Brightness,
		LightState:               sensors.LightState,
		MotionDetected:           sensors.PersonPresent(),
		InputState:               sensors.InputState,
		TotalPower:               lo.Sum(sensors.PowerOutputs),
	}
}

// checkDeviceSunTimes compares the sunrise/sunset the device reports
// with the locally calculated times for its configured location; a big
// difference usually means the device clock or location is wrong.
func (p *PollerService) checkDeviceSunTimes() {

	cfg, err := p.api.SystemConfig(context.Background())
	if err != nil {
		p.logger.Warn("unable to read system config", "err", err)
		return
	}

	lat, latErr := strconv.ParseFloat(cfg.Lat, 64)
	lng, lngErr := strconv.ParseFloat(cfg.Long, 64)
	if latErr != nil || lngErr != nil {
		// fall back to the configured location
		latLng := strings.Split(viper.GetString("geoLocation"), ",")
		if len(latLng) != 2 {
			p.logger.Debug("no usable location, skipping sun time check")
			return
		}
		lat, latErr = strconv.ParseFloat(latLng[0], 64)
		lng, lngErr = strconv.ParseFloat(latLng[1], 64)
		if latErr != nil || lngErr != nil {
			p.logger.Debug("no usable location, skipping sun time check")
			return
		}
	}

	now := time.Now()
	sunriseAt, sunsetAt := sunrise.SunriseSunset(
		lat, lng,
		now.Year(), now.Month(), now.Day(),
	)
	p.logger.Info("Calculated local sunrise and sunset",
		"sunrise", sunriseAt.Local().Format("15:04"),
		"sunset", sunsetAt.Local().Format("15:04"),
	)

	p.logSunTimeDrift("sunrise", cfg.Sunrise, sunriseAt)
	p.logSunTimeDrift("sunset", cfg.Sunset, sunsetAt)
}

func (p *PollerService) logSunTimeDrift(event string, device *dingz.TimeOfDay, calculated time.Time) {
	if device == nil {
		return
	}

	local := calculated.Local()
	drift := (device.Hour*60 + device.Minute) - (local.Hour()*60 + local.Minute())
	if drift < 0 {
		drift = -drift
	}
	if drift > sunTimeToleranceMinutes {
		p.logger.Warn("device sun time differs from calculated",
			"event", event,
			"device", fmt.Sprintf("%02d:%02d", device.Hour, device.Minute),
			"calculated", local.Format("15:04"),
		)
	}
}
