package main

import (
	"encoding/json"
	"fmt"
	"os"

	"Starluck/internal/domain/models"
	"Starluck/internal/ephemeris"
	"Starluck/internal/service/chart"

	"github.com/spf13/cobra"
)

var (
	backend  string
	ephePath string
)

var rootCmd = &cobra.Command{
	Use:   "starluck",
	Short: "Astrology chart calculation engine",
	Long:  `Compute natal charts and transit forecasts from the command line without running the HTTP service.`,
}

var (
	datetime    string
	timezone    string
	lat         float64
	lon         float64
	elevation   float64
	houseSystem string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute a natal chart",
	Long:  `Compute a full natal chart (positions, houses, aspects) and print it as JSON.`,
	RunE:  runChart,
}

var (
	natalFile string
	startDate string
	days      int
	stepHours int
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Scan transits against a natal chart",
	Long:  `Scan a date window for transiting aspects against a natal chart JSON file and print the hits.`,
	RunE:  runForecast,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "auto", "Ephemeris backend (auto, swiss, analytic)")
	rootCmd.PersistentFlags().StringVar(&ephePath, "ephe-path", "", "Swiss Ephemeris dataset directory")

	chartCmd.Flags().StringVar(&datetime, "datetime", "", "Local datetime (e.g. 1990-01-01T12:00)")
	chartCmd.Flags().StringVar(&timezone, "timezone", "UTC", "IANA timezone name")
	chartCmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in degrees")
	chartCmd.Flags().Float64Var(&lon, "lon", 0, "Longitude in degrees, east positive")
	chartCmd.Flags().Float64Var(&elevation, "elevation", 0, "Elevation in meters")
	chartCmd.Flags().StringVar(&houseSystem, "houses", "WHOLE", "House system (WHOLE, EQUAL, PLACIDUS)")
	_ = chartCmd.MarkFlagRequired("datetime")

	forecastCmd.Flags().StringVar(&natalFile, "natal", "", "Path to a natal chart JSON file")
	forecastCmd.Flags().StringVar(&startDate, "start", "", "Scan start date (e.g. 2026-01-01)")
	forecastCmd.Flags().StringVar(&timezone, "timezone", "UTC", "IANA timezone name")
	forecastCmd.Flags().IntVar(&days, "days", 14, "Number of days to scan")
	forecastCmd.Flags().IntVar(&stepHours, "step-hours", 24, "Scan step in hours")
	_ = forecastCmd.MarkFlagRequired("natal")
	_ = forecastCmd.MarkFlagRequired("start")

	rootCmd.AddCommand(chartCmd, forecastCmd)
}

func newService() (*chart.Service, error) {
	var provider ephemeris.Provider
	switch backend {
	case "swiss":
		swiss, err := ephemeris.NewSwiss(ephePath)
		if err != nil {
			return nil, err
		}
		provider = swiss
	case "analytic":
		provider = ephemeris.NewAnalytic()
	default:
		swiss, err := ephemeris.NewSwiss(ephePath)
		if err != nil {
			provider = ephemeris.NewAnalytic()
		} else {
			provider = swiss
		}
	}
	return chart.NewService(provider, nil, nil), nil
}

func runChart(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	res, err := svc.Compute(models.NatalChartRequest{
		DatetimeLocal: datetime,
		Timezone:      timezone,
		Location:      models.GeoLocationInput{Lat: lat, Lon: lon, ElevationM: elevation},
		HouseSystem:   houseSystem,
	})
	if err != nil {
		return err
	}
	return printJSON(res)
}

func runForecast(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(natalFile)
	if err != nil {
		return fmt.Errorf("read natal chart: %w", err)
	}
	var ref models.ChartRef
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("parse natal chart: %w", err)
	}

	res, err := svc.Forecast(models.ForecastRequest{
		NatalChart: ref,
		StartDate:  startDate,
		Timezone:   timezone,
		Days:       days,
		StepHours:  stepHours,
	})
	if err != nil {
		return err
	}
	return printJSON(res)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
