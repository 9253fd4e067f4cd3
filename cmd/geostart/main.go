package main

import (
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/geostart/internal/config"
	"github.com/woozymasta/geostart/internal/geo"
	"github.com/woozymasta/geostart/internal/logger"
	"github.com/woozymasta/geostart/internal/processor"
	"github.com/woozymasta/geostart/internal/tabular"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Args struct {
		Input  string `positional-arg-name:"input_file"  description:"Station offsets in meters (name, dx, dy)"`
		Output string `positional-arg-name:"output_file" description:"Converted station coordinates (name, lat, lon)"`
	} `positional-args:"yes"`

	InFormat  string   `short:"i" long:"in-format"  env:"GEOSTART_IN_FORMAT"  description:"Input format"  choice:"auto" choice:"csv" choice:"xlsx" default:"auto"`
	OutFormat string   `short:"o" long:"out-format" env:"GEOSTART_OUT_FORMAT" description:"Output format" choice:"auto" choice:"csv" choice:"xlsx" choice:"geojson" choice:"yaml" default:"auto"`
	Header    []string `long:"header" env:"GEOSTART_HEADER" env-delim:"," description:"Output column labels: name, latitude, longitude (default: Puntnaam, Latitude, Longitude)"`
	Latitude  float64  `long:"lat"    env:"GEOSTART_LAT"    description:"Latitude of the start point"`
	Longitude float64  `long:"lon"    env:"GEOSTART_LON"    description:"Longitude of the start point"`
	RadiusM   float64  `long:"radius" env:"GEOSTART_RADIUS" description:"Earth radius at the start point latitude, in meters"`
	Quiet     bool     `short:"q" long:"quiet" description:"Do not print a line per converted station"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	opts := Options{
		Latitude:  config.StartLatitude,
		Longitude: config.StartLongitude,
		RadiusM:   config.EarthRadiusM,
	}

	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] input_file output_file"
	parser.LongDescription = "Calculates station geocoordinates given the start coordinate"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}

	opts.Logger.Setup()

	if len(rest) > 0 || opts.Args.Input == "" || opts.Args.Output == "" {
		fmt.Fprintln(stdout, "Wrong number of arguments")
		parser.WriteHelp(stdout)
		return 1
	}

	if fi, err := os.Stat(opts.Args.Input); err != nil || fi.IsDir() {
		fmt.Fprintf(stdout, "'%s' is not a file\n", opts.Args.Input)
		parser.WriteHelp(stdout)
		return 1
	}

	if len(opts.Header) == 0 {
		opts.Header = config.Header()
	}
	if len(opts.Header) != len(tabular.Header{}) {
		log.Error().Strs("header", opts.Header).Msg("--header needs exactly 3 labels")
		return 1
	}
	header := tabular.Header{opts.Header[0], opts.Header[1], opts.Header[2]}

	inFormat := tabular.Resolve(tabular.Format(opts.InFormat), opts.Args.Input)
	outFormat := tabular.Resolve(tabular.Format(opts.OutFormat), opts.Args.Output)
	if !inFormat.CanRead() {
		log.Error().Str("path", opts.Args.Input).Str("format", string(inFormat)).Msg("Unsupported input format")
		return 1
	}
	if !outFormat.CanWrite() {
		log.Error().Str("path", opts.Args.Output).Str("format", string(outFormat)).Msg("Unsupported output format")
		return 1
	}

	conv, err := geo.NewConverter(geo.Coordinate{Lat: opts.Latitude, Lon: opts.Longitude}, opts.RadiusM)
	if err != nil {
		log.Error().Err(err).Msg("Invalid start point")
		return 1
	}

	fmt.Fprintf(stdout, "start lat: %s, start lon: %s\n\n",
		geo.FormatDegrees(conv.Origin().Lat), geo.FormatDegrees(conv.Origin().Lon))

	// Everything is read before the output file is touched
	offsets, err := tabular.ReadFile(opts.Args.Input, inFormat)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}

	log.Debug().
		Int("stations_total", offsets.Len()).
		Strs("stations", offsets.Names()).
		Msg("Stations queued")

	var progress io.Writer
	if !opts.Quiet {
		progress = stdout
	}

	positions, err := processor.ConvertAll(conv, offsets, progress)
	if err != nil {
		log.Error().Err(err).Msg("Failed to convert locations")
		return 1
	}

	if err := tabular.WriteFile(opts.Args.Output, outFormat, header, positions); err != nil {
		log.Error().Err(err).Str("path", opts.Args.Output).Msg("Failed to write locations")
		return 1
	}

	log.Info().
		Int("records", positions.Len()).
		Str("output", opts.Args.Output).
		Str("format", string(outFormat)).
		Float64("radius_m", conv.RadiusM()).
		Msg("Locations written")

	return 0
}
