package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/wheelibin/dingz/internal/concurrency"
	"github.com/wheelibin/dingz/internal/config"
	"github.com/wheelibin/dingz/internal/dingz"
)

// Command flags
var (
	deviceHost  string
	ledColor    string
	dimmerValue float64
)

func init() {
	rootCmd.PersistentFlags().StringVar(&deviceHost, "host", "", "Device base URL, e.g. http://192.168.1.61 (overrides the config file)")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(deviceCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(systemConfigCmd)
	rootCmd.AddCommand(dimmersCmd)
	rootCmd.AddCommand(blindsCmd)
	rootCmd.AddCommand(pirCmd)
	rootCmd.AddCommand(ledCmd)
	rootCmd.AddCommand(dimmerCmd)
	rootCmd.AddCommand(blindCmd)
	rootCmd.AddCommand(allOffCmd)
}

// newAPIService builds a client for the device named by --host, falling
// back to the host setting in the config file.
func newAPIService() *dingz.APIService {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})

	host := deviceHost
	if host == "" {
		host = config.ReadConfig().Host
	}

	return dingz.NewAPIService(logger, &http.Client{}, host)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show firmware and network information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := newAPIService().Info(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Show hardware details for the device",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := newAPIService().Device(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(device)
	},
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the live output and sensor state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := newAPIService().State(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(state)
	},
}

var systemConfigCmd = &cobra.Command{
	Use:   "system-config",
	Short: "Show the device's system configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newAPIService().SystemConfig(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cfg)
	},
}

var dimmersCmd = &cobra.Command{
	Use:   "dimmers",
	Short: "Show the dimmer output configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs, err := newAPIService().DimmerConfigs(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(configs)
	},
}

var blindsCmd = &cobra.Command{
	Use:   "blinds",
	Short: "Show the blind configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs, err := newAPIService().BlindConfigs(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(configs)
	},
}

var pirCmd = &cobra.Command{
	Use:   "pir",
	Short: "Show the motion sensor configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newAPIService().PIRConfig(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cfg)
	},
}

var ledCmd = &cobra.Command{
	Use:   "led [on|off]",
	Short: "Control the front LED",
	Long: `Switch or toggle the front LED.

With no argument the LED is toggled. The --color flag sets an HSV
colour at the same time, e.g. --color "240,100,50".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var state *bool
		if len(args) == 1 {
			switch args[0] {
			case "on":
				on := true
				state = &on
			case "off":
				off := false
				state = &off
			default:
				return fmt.Errorf("unknown LED action %q, expected on or off", args[0])
			}
		}

		var color *dingz.HSVColor
		if ledColor != "" {
			parts := strings.Split(ledColor, ",")
			if len(parts) != 3 {
				return fmt.Errorf("invalid colour %q, expected h,s,v", ledColor)
			}
			hue, hueErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
			sat, satErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			val, valErr := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
			if hueErr != nil || satErr != nil || valErr != nil {
				return fmt.Errorf("invalid colour %q, expected h,s,v", ledColor)
			}
			color = &dingz.HSVColor{Hue: hue, Saturation: sat, Value: val}
		}

		return newAPIService().SetLED(cmd.Context(), state, color)
	},
}

func init() {
	ledCmd.Flags().StringVar(&ledColor, "color", "", `HSV colour as "h,s,v"`)
}

var dimmerCmd = &cobra.Command{
	Use:   "dimmer <index> <on|off>",
	Short: "Switch a dimmer output",
	Example: `  # Switch output 0 on at its last value
  dingz dimmer 0 on

  # Switch output 1 on at 75%
  dingz dimmer 1 on --value 75

  # Switch output 0 off
  dingz dimmer 0 off`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid dimmer index %q", args[0])
		}

		var on bool
		switch args[1] {
		case "on":
			on = true
		case "off":
			on = false
		default:
			return fmt.Errorf("unknown dimmer action %q, expected on or off", args[1])
		}

		var value *float64
		if cmd.Flags().Changed("value") {
			value = &dimmerValue
		}

		return newAPIService().SetDimmer(cmd.Context(), index, on, value)
	},
}

func init() {
	dimmerCmd.Flags().Float64Var(&dimmerValue, "value", 0, "Brightness percentage (0-100)")
}

var blindCmd = &cobra.Command{
	Use:   "blind <index> <position|up|down|stop>",
	Short: "Move a blind",
	Example: `  # Move blind 0 to 58% open
  dingz blind 0 58

  # Start blind 1 moving up
  dingz blind 1 up

  # Stop blind 1
  dingz blind 1 stop`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid blind index %q", args[0])
		}

		service := newAPIService()
		switch args[1] {
		case "up":
			return service.BlindUp(cmd.Context(), index)
		case "down":
			return service.BlindDown(cmd.Context(), index)
		case "stop":
			return service.BlindStop(cmd.Context(), index)
		}

		position, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("unknown blind action %q, expected a position or up/down/stop", args[1])
		}
		return service.SetBlindPosition(cmd.Context(), index, position)
	},
}

var allOffCmd = &cobra.Command{
	Use:   "all-off",
	Short: "Switch off every configured dimmer output",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service := newAPIService()

		configs, err := service.DimmerConfigs(cmd.Context())
		if err != nil {
			return err
		}

		indexes := lo.FilterMap(configs, func(cfg *dingz.DimmerConfig, index int) (int, bool) {
			return index, cfg != nil && cfg.Available()
		})
		if len(indexes) == 0 {
			fmt.Println("No configured dimmer outputs.")
			return nil
		}

		worker := concurrency.NewThrottledWorker(func(index int) error {
			if err := service.SetDimmer(cmd.Context(), index, false, nil); err != nil {
				fmt.Fprintf(os.Stderr, "dimmer %d: %v\n", index, err)
				return err
			}
			fmt.Printf("dimmer %d: off\n", index)
			return nil
		})
		worker.Run(indexes)

		return nil
	},
}
