package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ngeo/polymap/region"
)

// confirmIfExists checks that a file exists, and asks the user for
// confirmation to go forward if it does.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation shows msg and asks the user to type y or n
// (typing ENTER defaults to no).
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	defaultInput := byte('N')

	for {
		input, _ := reader.ReadString('\n')
		c := string([]byte(input)[0])[0]
		if c == 10 {
			c = defaultInput
		}
		switch c {
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}

// loadCoordinator reads a region file and a build-settings file and
// returns a fully preprocessed coordinator, printing a warning for any
// region that had to be skipped.
func loadCoordinator(regionPath, configPath string) (*region.Coordinator, error) {
	cfg := region.DefaultConfig()
	if configPath != "" {
		loaded, err := region.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	polygons, outlines, err := region.LoadRegionsFile(regionPath)
	if err != nil {
		return nil, fmt.Errorf("loading regions: %w", err)
	}

	coord := region.NewCoordinator(cfg)
	skipped, err := coord.AddRegions(polygons, outlines)
	if err != nil {
		return nil, fmt.Errorf("preprocessing regions: %w", err)
	}
	for _, idx := range skipped {
		fmt.Printf("warning: region %d skipped (bounding triangle build failed)\n", idx)
	}
	return coord, nil
}
