package dingz

// Schema types for the device's /api/v1 JSON responses. Field names and
// nesting follow the firmware exactly; a decode either fills the whole
// record or fails, it never returns a partial value. Pointer fields model
// values the firmware omits or nulls out (missing sensor, unsupported
// feature, unconfigured channel).

// Info is the response of /api/v1/info.
type Info struct {
	Version string `json:"version"`
	Type    int    `json:"type"`
	SSID    string `json:"ssid"`
	IP      string `json:"ip"`
	Mac     string `json:"mac"`
	AP      bool   `json:"ap"`
	FrontSN string `json:"front_sn"`
	PuckSN  string `json:"puck_sn"`
}

func InfoFromJSON(raw map[string]any) (Info, error) {
	o := newObj("Info", raw)
	info := Info{
		Version: o.String("version"),
		Type:    o.Int("type"),
		SSID:    o.String("ssid"),
		IP:      o.String("ip"),
		Mac:     o.String("mac"),
		AP:      o.Bool("ap"),
		FrontSN: o.String("front_sn"),
		PuckSN:  o.String("puck_sn"),
	}
	if err := o.Err(); err != nil {
		return Info{}, err
	}
	return info, nil
}

type ProductionDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func ProductionDateFromJSON(raw map[string]any) (ProductionDate, error) {
	o := newObj("ProductionDate", raw)
	date := ProductionDate{
		Year:  o.Int("year"),
		Month: o.Int("month"),
		Day:   o.Int("day"),
	}
	if err := o.Err(); err != nil {
		return ProductionDate{}, err
	}
	return date, nil
}

// Device is a single entry of the /api/v1/device response, which the
// firmware keys by the device MAC address.
type Device struct {
	Type                string         `json:"type"`
	Battery             bool           `json:"battery"`
	Reachable           bool           `json:"reachable"`
	MeshRoot            bool           `json:"meshroot"`
	FwVersion           string         `json:"fw_version"`
	HwVersion           string         `json:"hw_version"`
	FwVersionPuck       string         `json:"fw_version_puck"`
	HwVersionPuck       string         `json:"hw_version_puck"`
	FrontSN             string         `json:"front_sn"`
	PuckSN              string         `json:"puck_sn"`
	FrontHwModel        string         `json:"front_hw_model"`
	PuckHwModel         string         `json:"puck_hw_model"`
	FrontProductionDate ProductionDate `json:"front_production_date"`
	PuckProductionDate  ProductionDate `json:"puck_production_date"`
	DIPConfig           int            `json:"dip_config"`
	HasPIR              bool           `json:"has_pir"`
	Hash                string         `json:"hash"`
}

func DeviceFromJSON(raw map[string]any) (Device, error) {
	o := newObj("Device", raw)
	device := Device{
		Type:          o.String("type"),
		Battery:       o.Bool("battery"),
		Reachable:     o.Bool("reachable"),
		MeshRoot:      o.Bool("meshroot"),
		FwVersion:     o.String("fw_version"),
		HwVersion:     o.String("hw_version"),
		FwVersionPuck: o.String("fw_version_puck"),
		HwVersionPuck: o.String("hw_version_puck"),
		FrontSN:       o.String("front_sn"),
		PuckSN:        o.String("puck_sn"),
		FrontHwModel:  o.String("front_hw_model"),
		PuckHwModel:   o.String("puck_hw_model"),
		DIPConfig:     o.Int("dip_config"),
		HasPIR:        o.Bool("has_pir"),
		Hash:          o.String("hash"),
	}
	var err error
	if device.FrontProductionDate, err = objectField(o, "front_production_date", ProductionDateFromJSON); err != nil {
		return Device{}, err
	}
	if device.PuckProductionDate, err = objectField(o, "puck_production_date", ProductionDateFromJSON); err != nil {
		return Device{}, err
	}
	if err := o.Err(); err != nil {
		return Device{}, err
	}
	return device, nil
}

// OutputIndex locates a dimmer or blind channel; the relative index only
// counts channels of the same kind.
type OutputIndex struct {
	Relative int `json:"relative"`
	Absolute int `json:"absolute"`
}

func OutputIndexFromJSON(raw map[string]any) (OutputIndex, error) {
	o := newObj("OutputIndex", raw)
	index := OutputIndex{
		Relative: o.Int("relative"),
		Absolute: o.Int("absolute"),
	}
	if err := o.Err(); err != nil {
		return OutputIndex{}, err
	}
	return index, nil
}

type DimmerState struct {
	On       bool        `json:"on"`
	Value    int         `json:"value"`
	Ramp     int         `json:"ramp"`
	Disabled bool        `json:"disabled"`
	Index    OutputIndex `json:"index"`
}

func DimmerStateFromJSON(raw map[string]any) (DimmerState, error) {
	o := newObj("DimmerState", raw)
	dimmer := DimmerState{
		On:       o.Bool("on"),
		Value:    o.Int("value"),
		Ramp:     o.Int("ramp"),
		Disabled: o.Bool("disabled"),
	}
	var err error
	if dimmer.Index, err = objectField(o, "index", OutputIndexFromJSON); err != nil {
		return DimmerState{}, err
	}
	if err := o.Err(); err != nil {
		return DimmerState{}, err
	}
	return dimmer, nil
}

type BlindState struct {
	Moving   string      `json:"moving"`
	Position int         `json:"position"`
	Lamella  int         `json:"lamella"`
	Readonly bool        `json:"readonly"`
	Index    OutputIndex `json:"index"`
}

func BlindStateFromJSON(raw map[string]any) (BlindState, error) {
	o := newObj("BlindState", raw)
	blind := BlindState{
		Moving:   o.String("moving"),
		Position: o.Int("position"),
		Lamella:  o.Int("lamella"),
		Readonly: o.Bool("readonly"),
	}
	var err error
	if blind.Index, err = objectField(o, "index", OutputIndexFromJSON); err != nil {
		return BlindState{}, err
	}
	if err := o.Err(); err != nil {
		return BlindState{}, err
	}
	return blind, nil
}

type LEDState struct {
	On   bool   `json:"on"`
	HSV  string `json:"hsv"`
	RGB  string `json:"rgb"`
	Mode string `json:"mode"`
	Ramp int    `json:"ramp"`
}

func LEDStateFromJSON(raw map[string]any) (LEDState, error) {
	o := newObj("LEDState", raw)
	led := LEDState{
		On:   o.Bool("on"),
		HSV:  o.String("hsv"),
		RGB:  o.String("rgb"),
		Mode: o.String("mode"),
		Ramp: o.Int("ramp"),
	}
	if err := o.Err(); err != nil {
		return LEDState{}, err
	}
	return led, nil
}

// PIR is the state of one motion sensor within the sensors block.
type PIR struct {
	Enabled       bool   `json:"enabled"`
	Motion        bool   `json:"motion"`
	Mode          string `json:"mode"`
	LightOffTimer int    `json:"light_off_timer"`
	SuspendTimer  int    `json:"suspend_timer"`
}

func PIRFromJSON(raw map[string]any) (PIR, error) {
	o := newObj("PIR", raw)
	pir := PIR{
		Enabled:       o.Bool("enabled"),
		Motion:        o.Bool("motion"),
		Mode:          o.String("mode"),
		LightOffTimer: o.Int("light_off_timer"),
		SuspendTimer:  o.Int("suspend_timer"),
	}
	if err := o.Err(); err != nil {
		return PIR{}, err
	}
	return pir, nil
}

// Sensors is the sensors block of /api/v1/state. Nullable fields mean the
// sensor is absent or failed; fields with omitempty are only sent by
// firmware that supports them.
type Sensors struct {
	Brightness      *int     `json:"brightness"`
	LightState      *string  `json:"light_state"`
	LightStateLPF   *string  `json:"light_state_lpf"`
	CPUTemperature  float64  `json:"cpu_temperature"`
	PuckTemperature *float64 `json:"puck_temperature"`
	FETTemperature  *float64 `json:"fet_temperature"`

	// one slot per motion sensor, null when not fitted
	PIRs []*PIR `json:"pirs"`

	InputState *bool `json:"input_state"`

	// flattened from the firmware's [{"value": x}, ...] wrapper objects
	PowerOutputs []float64 `json:"power_outputs"`

	RoomTemperature          *float64 `json:"room_temperature,omitempty"`
	UncompensatedTemperature *float64 `json:"uncompensated_temperature,omitempty"`
	TempOffset               *float64 `json:"temp_offset,omitempty"`
	LightOffTimer            *int     `json:"light_off_timer,omitempty"`
	SuspendTimer             *int     `json:"suspend_timer,omitempty"`
}

// PersonPresent reports motion from the first fitted PIR, or nil when the
// device has no motion sensor.
func (s Sensors) PersonPresent() *bool {
	for _, pir := range s.PIRs {
		if pir != nil {
			motion := pir.Motion
			return &motion
		}
	}
	return nil
}

func SensorsFromJSON(raw map[string]any) (Sensors, error) {
	o := newObj("Sensors", raw)
	sensors := Sensors{
		Brightness:               o.OptInt("brightness"),
		LightState:               o.OptString("light_state"),
		LightStateLPF:            o.OptString("light_state_lpf"),
		CPUTemperature:           o.Float("cpu_temperature"),
		PuckTemperature:          o.OptFloat("puck_temperature"),
		FETTemperature:           o.OptFloat("fet_temperature"),
		InputState:               o.OptBool("input_state"),
		RoomTemperature:          o.OptFloat("room_temperature"),
		UncompensatedTemperature: o.OptFloat("uncompensated_temperature"),
		TempOffset:               o.OptFloat("temp_offset"),
		LightOffTimer:            o.OptInt("light_off_timer"),
		SuspendTimer:             o.OptInt("suspend_timer"),
	}

	var err error
	if sensors.PIRs, err = listField(o, "pirs", "PIR", PIRFromJSON); err != nil {
		return Sensors{}, err
	}

	// power outputs arrive as single-key wrapper objects
	if rawOutputs := o.OptList("power_outputs"); rawOutputs != nil {
		outputs := make([]float64, len(rawOutputs))
		for i, entry := range rawOutputs {
			wrapper, ok := entry.(map[string]any)
			if !ok {
				o.failf("power output %d: expected object, got %T", i, entry)
				break
			}
			value, ok := wrapper["value"].(float64)
			if !ok {
				o.failf("power output %d: expected number value, got %T", i, wrapper["value"])
				break
			}
			outputs[i] = value
		}
		sensors.PowerOutputs = outputs
	}

	if err := o.Err(); err != nil {
		return Sensors{}, err
	}
	return sensors, nil
}

type Thermostat struct {
	Active        bool    `json:"active"`
	Enabled       bool    `json:"enabled"`
	TargetTemp    float64 `json:"target_temp"`
	Mode          string  `json:"mode"`
	Temp          float64 `json:"temp"`
	MinTargetTemp int     `json:"min_target_temp"`
	MaxTargetTemp int     `json:"max_target_temp"`
}

func ThermostatFromJSON(raw map[string]any) (Thermostat, error) {
	o := newObj("Thermostat", raw)
	thermostat := Thermostat{
		Active:        o.Bool("active"),
		Enabled:       o.Bool("enabled"),
		TargetTemp:    o.Float("target_temp"),
		Mode:          o.String("mode"),
		Temp:          o.Float("temp"),
		MinTargetTemp: o.Int("min_target_temp"),
		MaxTargetTemp: o.Int("max_target_temp"),
	}
	if err := o.Err(); err != nil {
		return Thermostat{}, err
	}
	return thermostat, nil
}

type WiFi struct {
	Version   string `json:"version"`
	Mac       string `json:"mac"`
	SSID      string `json:"ssid"`
	IP        string `json:"ip"`
	Mask      string `json:"mask"`
	Gateway   string `json:"gateway"`
	DNS       string `json:"dns"`
	Static    bool   `json:"static"`
	Connected bool   `json:"connected"`
}

func WiFiFromJSON(raw map[string]any) (WiFi, error) {
	o := newObj("WiFi", raw)
	wifi := WiFi{
		Version:   o.String("version"),
		Mac:       o.String("mac"),
		SSID:      o.String("ssid"),
		IP:        o.String("ip"),
		Mask:      o.String("mask"),
		Gateway:   o.String("gateway"),
		DNS:       o.String("dns"),
		Static:    o.Bool("static"),
		Connected: o.Bool("connected"),
	}
	if err := o.Err(); err != nil {
		return WiFi{}, err
	}
	return wifi, nil
}

// ConfigInfo carries the timestamp of the last configuration change.
type ConfigInfo struct {
	Timestamp int64 `json:"timestamp"`
}

func ConfigInfoFromJSON(raw map[string]any) (ConfigInfo, error) {
	o := newObj("ConfigInfo", raw)
	info := ConfigInfo{
		Timestamp: o.Int64("timestamp"),
	}
	if err := o.Err(); err != nil {
		return ConfigInfo{}, err
	}
	return info, nil
}

// State is the response of /api/v1/state.
type State struct {
	Dimmers    []*DimmerState `json:"dimmers"`
	Blinds     []*BlindState  `json:"blinds"`
	LED        LEDState       `json:"led"`
	Sensors    Sensors        `json:"sensors"`
	Thermostat Thermostat     `json:"thermostat"`
	WiFi       WiFi           `json:"wifi"`
	Config     ConfigInfo     `json:"config"`

	// "yyyy-mm-dd HH:MM:SS", only on recent firmware
	Time *string `json:"time,omitempty"`
}

func StateFromJSON(raw map[string]any) (State, error) {
	o := newObj("State", raw)
	state := State{
		Time: o.OptString("time"),
	}
	var err error
	if state.Dimmers, err = listField(o, "dimmers", "DimmerState", DimmerStateFromJSON); err != nil {
		return State{}, err
	}
	if state.Blinds, err = listField(o, "blinds", "BlindState", BlindStateFromJSON); err != nil {
		return State{}, err
	}
	if state.LED, err = objectField(o, "led", LEDStateFromJSON); err != nil {
		return State{}, err
	}
	if state.Sensors, err = objectField(o, "sensors", SensorsFromJSON); err != nil {
		return State{}, err
	}
	if state.Thermostat, err = objectField(o, "thermostat", ThermostatFromJSON); err != nil {
		return State{}, err
	}
	if state.WiFi, err = objectField(o, "wifi", WiFiFromJSON); err != nil {
		return State{}, err
	}
	if state.Config, err = objectField(o, "config", ConfigInfoFromJSON); err != nil {
		return State{}, err
	}
	if err := o.Err(); err != nil {
		return State{}, err
	}
	return state, nil
}

type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func TimeOfDayFromJSON(raw map[string]any) (TimeOfDay, error) {
	o := newObj("TimeOfDay", raw)
	tod := TimeOfDay{
		Hour:   o.Int("hour"),
		Minute: o.Int("minute"),
	}
	if err := o.Err(); err != nil {
		return TimeOfDay{}, err
	}
	return tod, nil
}

// TempComp holds the temperature compensation coefficients the device
// applies to its room temperature reading.
type TempComp struct {
	FetOffset float64 `json:"fet_offset"`
	GainUp    float64 `json:"gain_up"`
	GainDown  float64 `json:"gain_down"`
	GainTotal float64 `json:"gain_total"`
}

func TempCompFromJSON(raw map[string]any) (TempComp, error) {
	o := newObj("TempComp", raw)
	comp := TempComp{
		FetOffset: o.Float("fet_offset"),
		GainUp:    o.Float("gain_up"),
		GainDown:  o.Float("gain_down"),
		GainTotal: o.Float("gain_total"),
	}
	if err := o.Err(); err != nil {
		return TempComp{}, err
	}
	return comp, nil
}

type SunOffset struct {
	Day      int `json:"day"`
	Twilight int `json:"twilight"`
	Night    int `json:"night"`
}

func SunOffsetFromJSON(raw map[string]any) (SunOffset, error) {
	o := newObj("SunOffset", raw)
	offset := SunOffset{
		Day:      o.Int("day"),
		Twilight: o.Int("twilight"),
		Night:    o.Int("night"),
	}
	if err := o.Err(); err != nil {
		return SunOffset{}, err
	}
	return offset, nil
}

type DynLight struct {
	Enable    bool      `json:"enable"`
	Phases    int       `json:"phases"`
	Source    string    `json:"source"`
	SunOffset SunOffset `json:"sun_offset"`
}

func DynLightFromJSON(raw map[string]any) (DynLight, error) {
	o := newObj("DynLight", raw)
	dyn := DynLight{
		Enable: o.Bool("enable"),
		Phases: o.Int("phases"),
		Source: o.String("source"),
	}
	var err error
	if dyn.SunOffset, err = objectField(o, "sun_offset", SunOffsetFromJSON); err != nil {
		return DynLight{}, err
	}
	if err := o.Err(); err != nil {
		return DynLight{}, err
	}
	return dyn, nil
}

// SystemConfig is the response of /api/v1/system_config.
type SystemConfig struct {
	AllowReset        bool `json:"allow_reset"`
	AllowWPS          bool `json:"allow_wps"`
	AllowReboot       bool `json:"allow_reboot"`
	AllowRemoteReboot bool `json:"allow_remote_reboot"`
	ProtectedStatus   bool `json:"protected_status"`
	ID                bool `json:"id"`
	Origin            bool `json:"origin"`
	UpgradeBlink      bool `json:"upgrade_blink"`
	RebootBlink       bool `json:"reboot_blink"`
	WifiPS            bool `json:"wifi_ps"`

	Lat  string `json:"lat"`
	Long string `json:"long"`
	TZID int    `json:"tzid"`

	DingzName  string `json:"dingz_name"`
	RoomName   string `json:"room_name"`
	TempOffset int    `json:"temp_offset"`
	FetOffset  int    `json:"fet_offset"`
	CPUOffset  int    `json:"cpu_offset"`

	// read-only device clock, "YYYY-MM-DD hh:mm:ss"
	Time         string `json:"time"`
	SystemStatus string `json:"system_status"`

	Token            *string `json:"token,omitempty"`
	MDNSSearchPeriod *int    `json:"mdns_search_period,omitempty"`
	Groups           []bool  `json:"groups,omitempty"`

	// absent (not just null) on firmware without temperature compensation
	TempComp *TempComp `json:"temp_comp,omitempty"`

	DynLight *DynLight  `json:"dyn_light,omitempty"`
	Sunrise  *TimeOfDay `json:"sunrise,omitempty"`
	Sunset   *TimeOfDay `json:"sunset,omitempty"`
}

func SystemConfigFromJSON(raw map[string]any) (SystemConfig, error) {
	o := newObj("SystemConfig", raw)
	cfg := SystemConfig{
		AllowReset:        o.Bool("allow_reset"),
		AllowWPS:          o.Bool("allow_wps"),
		AllowReboot:       o.Bool("allow_reboot"),
		AllowRemoteReboot: o.Bool("allow_remote_reboot"),
		ProtectedStatus:   o.Bool("protected_status"),
		ID:                o.Bool("id"),
		Origin:            o.Bool("origin"),
		UpgradeBlink:      o.Bool("upgrade_blink"),
		RebootBlink:       o.Bool("reboot_blink"),
		WifiPS:            o.Bool("wifi_ps"),
		Lat:               o.String("lat"),
		Long:              o.String("long"),
		TZID:              o.Int("tzid"),
		DingzName:         o.String("dingz_name"),
		RoomName:          o.String("room_name"),
		TempOffset:        o.Int("temp_offset"),
		FetOffset:         o.Int("fet_offset"),
		CPUOffset:         o.Int("cpu_offset"),
		Time:              o.String("time"),
		SystemStatus:      o.String("system_status"),
		Token:             o.OptString("token"),
		MDNSSearchPeriod:  o.OptInt("mdns_search_period"),
	}

	if rawGroups := o.OptList("groups"); rawGroups != nil {
		groups := make([]bool, len(rawGroups))
		for i, entry := range rawGroups {
			b, ok := entry.(bool)
			if !ok {
				o.failf("group %d: expected bool, got %T", i, entry)
				break
			}
			groups[i] = b
		}
		cfg.Groups = groups
	}

	var err error
	// only decode temp_comp when the firmware sent the key at all, so an
	// unsupported feature stays distinguishable from an empty one
	if rawComp, ok := raw["temp_comp"]; ok {
		if cfg.TempComp, err = OptionalFromJSON("TempComp", rawComp, TempCompFromJSON); err != nil {
			return SystemConfig{}, err
		}
	}
	if cfg.DynLight, err = optionalField(o, "dyn_light", "DynLight", DynLightFromJSON); err != nil {
		return SystemConfig{}, err
	}
	if cfg.Sunrise, err = optionalField(o, "sunrise", "TimeOfDay", TimeOfDayFromJSON); err != nil {
		return SystemConfig{}, err
	}
	if cfg.Sunset, err = optionalField(o, "sunset", "TimeOfDay", TimeOfDayFromJSON); err != nil {
		return SystemConfig{}, err
	}

	if err := o.Err(); err != nil {
		return SystemConfig{}, err
	}
	return cfg, nil
}

type DimmerFeedback struct {
	Color      string `json:"color"`
	Brightness int    `json:"brightness"`
}

func DimmerFeedbackFromJSON(raw map[string]any) (DimmerFeedback, error) {
	o := newObj("DimmerFeedback", raw)
	feedback := DimmerFeedback{
		Color:      o.String("color"),
		Brightness: o.Int("brightness"),
	}
	if err := o.Err(); err != nil {
		return DimmerFeedback{}, err
	}
	return feedback, nil
}

type DimmerOutput struct {
	Type         string `json:"type"`
	UseLastValue bool   `json:"use_last_value"`
}

func DimmerOutputFromJSON(raw map[string]any) (DimmerOutput, error) {
	o := newObj("DimmerOutput", raw)
	output := DimmerOutput{
		Type:         o.String("type"),
		UseLastValue: o.Bool("use_last_value"),
	}
	if err := o.Err(); err != nil {
		return DimmerOutput{}, err
	}
	return output, nil
}

type DimmerLight struct {
	Dimmable bool         `json:"dimmable"`
	Dimmer   DimmerOutput `json:"dimmer"`
}

func DimmerLightFromJSON(raw map[string]any) (DimmerLight, error) {
	o := newObj("DimmerLight", raw)
	light := DimmerLight{
		Dimmable: o.Bool("dimmable"),
	}
	var err error
	if light.Dimmer, err = objectField(o, "dimmer", DimmerOutputFromJSON); err != nil {
		return DimmerLight{}, err
	}
	if err := o.Err(); err != nil {
		return DimmerLight{}, err
	}
	return light, nil
}

// DimmerConfig is one entry of the dimmers list in /api/v1/dimmer_config.
type DimmerConfig struct {
	Name     string         `json:"name"`
	Feedback DimmerFeedback `json:"feedback"`
	Light    *DimmerLight   `json:"light,omitempty"`
}

// Dimmable reports whether the connected load supports dimming.
func (c DimmerConfig) Dimmable() bool {
	return c.Light != nil && c.Light.Dimmable
}

// Output returns the configured output type, or "" when the channel has
// no light configuration.
func (c DimmerConfig) Output() string {
	if c.Light == nil {
		return ""
	}
	return c.Light.Dimmer.Type
}

// Available reports whether the channel is usable: it has been named and
// carries a light configuration.
func (c DimmerConfig) Available() bool {
	return c.Name != "" && c.Light != nil
}

func DimmerConfigFromJSON(raw map[string]any) (DimmerConfig, error) {
	o := newObj("DimmerConfig", raw)
	cfg := DimmerConfig{
		Name: o.String("name"),
	}
	var err error
	if cfg.Feedback, err = objectField(o, "feedback", DimmerFeedbackFromJSON); err != nil {
		return DimmerConfig{}, err
	}
	if cfg.Light, err = optionalField(o, "light", "DimmerLight", DimmerLightFromJSON); err != nil {
		return DimmerConfig{}, err
	}
	if err := o.Err(); err != nil {
		return DimmerConfig{}, err
	}
	return cfg, nil
}

// BlindConfig is one entry of the blinds list in /api/v1/blind_config.
type BlindConfig struct {
	AutoCalibration bool    `json:"auto_calibration"`
	State           string  `json:"state"`
	InvertDirection bool    `json:"invert_direction"`
	LamellaTime     float64 `json:"lamella_time"`
	ShadeUpTime     float64 `json:"shade_up_time"`
	ShadeDownTime   float64 `json:"shade_down_time"`
	Type            string  `json:"type"`
	MinValue        int     `json:"min_value"`
	MaxValue        int     `json:"max_value"`
	Name            string  `json:"name"`
}

func BlindConfigFromJSON(raw map[string]any) (BlindConfig, error) {
	o := newObj("BlindConfig", raw)
	cfg := BlindConfig{
		AutoCalibration: o.Bool("auto_calibration"),
		State:           o.String("state"),
		InvertDirection: o.Bool("invert_direction"),
		LamellaTime:     o.Float("lamella_time"),
		ShadeUpTime:     o.Float("shade_up_time"),
		ShadeDownTime:   o.Float("shade_down_time"),
		Type:            o.String("type"),
		MinValue:        o.Int("min_value"),
		MaxValue:        o.Int("max_value"),
		Name:            o.String("name"),
	}
	if err := o.Err(); err != nil {
		return BlindConfig{}, err
	}
	return cfg, nil
}

// PIRConfig is the response of /api/v1/pir_config.
type PIRConfig struct {
	Enabled       bool   `json:"enabled"`
	Mode          string `json:"mode"`
	LightOffTimer int    `json:"light_off_timer"`
	SuspendTimer  int    `json:"suspend_timer"`
}

func PIRConfigFromJSON(raw map[string]any) (PIRConfig, error) {
	o := newObj("PIRConfig", raw)
	cfg := PIRConfig{
		Enabled:       o.Bool("enabled"),
		Mode:          o.String("mode"),
		LightOffTimer: o.Int("light_off_timer"),
		SuspendTimer:  o.Int("suspend_timer"),
	}
	if err := o.Err(); err != nil {
		return PIRConfig{}, err
	}
	return cfg, nil
}
