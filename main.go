// Package main is the entry point for the icongen application.
// This tool generates the icon assets of a desktop application build: the
// PNG icon set, the Windows .ico and the Apple .icns container.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"icongen/icons"
	"icongen/utilities/config"
	"icongen/utilities/logger"
)

// Command-line flags define the behavior of the generator. Flags override
// the configuration files and the environment.
var (
	// configFileFlag: Path to a YAML configuration file.
	// If not provided, icongen.config.yaml is used when present.
	configFileFlag = flag.String("config", "", "Configuration file")

	// descriptionFileFlag: YAML file listing the icons to produce.
	descriptionFileFlag = flag.String("description", "", "Icon description file (default: Tauri icon set)")

	// sourceFlag / outputFlag: Override source image and output directory.
	sourceFlag = flag.String("source", "", "Source image (default 'source_image' value in the configuration)")
	outputFlag = flag.String("output", "", "Output directory (default 'output_directory' value in the configuration)")

	// onlyFlag: Restrict the run to one kind of asset.
	onlyFlag = flag.String("only", "all", "Assets to generate: png, ico, icns or all")

	// keepIconsetFlag: Copy the intermediate .iconset directory here.
	keepIconsetFlag = flag.String("keep-iconset", "", "Directory receiving a copy of the intermediate icon.iconset")

	// inspectFlag: Print the chunks of an existing .icns file and exit.
	inspectFlag = flag.String("inspect", "", "List the entries of an .icns file")

	// silentFlag: If true, suppresses informational log messages (only errors will be shown).
	silentFlag = flag.Bool("silent", false, "Silent mode")

	// logDirFlag: Directory where log files should be written. If set, enables file logging.
	logDirFlag = flag.String("logdir", "", "Directory for log files (enables file logging)")
)

// main runs the generator in the following order:
// 1. Parse command-line flags
// 2. Load the configuration and the icon description
// 3. Create the PNG icons
// 4. Create the .ico from the source image
// 5. Create the .icns from the PNG icons
func main() {
	flag.Parse()

	if *inspectFlag != "" {
		errorExit(inspect(os.Stdout, *inspectFlag))
		return
	}

	configuration, err := config.LoadConfiguration(*configFileFlag)
	errorExit(err)
	applyFlags(&configuration)
	errorExit(configuration.Validate())

	errorExit(setupLogging(configuration))

	description, err := icons.Read(configuration.DescriptionFile)
	errorExit(err)

	generator, err := icons.NewGenerator(configuration)
	errorExit(err)

	steps, err := selectSteps(*onlyFlag)
	errorExit(err)

	if steps.png {
		errorExit(generator.CreatePngIcons(description.PngIcons))
	}

	if steps.ico {
		errorExit(generator.CreateIco(configuration.OutputPath(configuration.IcoFile), description.IcoSizes))
	}

	if steps.icns {
		icnsPath := configuration.OutputPath(configuration.IcnsFile)
		errorExit(generator.CreateIcns(context.Background(), icnsPath, description.Iconset, configuration.KeepIconset))
	}

	logger.Info("Icon generation completed successfully")
}

// applyFlags copies the flags that were set into the configuration.
func applyFlags(configuration *config.Configuration) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "description":
			configuration.DescriptionFile = *descriptionFileFlag
		case "source":
			configuration.SourceImage = *sourceFlag
		case "output":
			configuration.OutputDirectory = *outputFlag
		case "keep-iconset":
			configuration.KeepIconset = *keepIconsetFlag
		case "silent":
			configuration.Silent = *silentFlag
		case "logdir":
			configuration.LogDirectory = *logDirFlag
		}
	})
}

// setupLogging applies level, silent mode and the optional log file.
func setupLogging(configuration config.Configuration) error {
	if err := logger.SetLevel(configuration.LogLevel); err != nil {
		return err
	}
	logger.SetSilent(configuration.Silent)

	if configuration.LogDirectory == "" {
		return nil
	}

	// file logging is optional, a failure is only reported
	if err := logger.SetLogFile(config.ApplicationName, configuration.LogDirectory); err != nil {
		logger.Warn("Failed to set up file logging: %v", err)
		return nil
	}
	logger.Info("Logging to file: %s", logger.GetLogFilePath())
	return nil
}

// steps selects the assets of a run.
type steps struct {
	png, ico, icns bool
}

func selectSteps(only string) (steps, error) {
	switch only {
	case "", "all":
		return steps{png: true, ico: true, icns: true}, nil
	case "png":
		return steps{png: true}, nil
	case "ico":
		return steps{ico: true}, nil
	case "icns":
		return steps{icns: true}, nil
	}
	return steps{}, fmt.Errorf("unknown asset kind %q, expected png, ico, icns or all", only)
}

// inspect prints one line per entry of the container at path.
func inspect(w io.Writer, path string) error {
	file, err := icons.ReadIcnsFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: %d entries, %s\n", path, len(file.Entries), humanize.Bytes(uint64(file.TotalSize())))
	for _, entry := range file.Entries {
		fmt.Fprintf(w, "  %q %10d bytes\n", entry.Type.String(), len(entry.Payload))
	}
	return nil
}

// errorExit logs err and stops the program. Any error of a generation step
// ends the run.
func errorExit(err error) {
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
