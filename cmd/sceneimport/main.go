// Command sceneimport loads a YAML file of scene presets into the preset
// database, replacing presets that share a name.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"panomaster/pkg/db"
	"panomaster/pkg/scene"
	"panomaster/pkg/store"
)

var (
	inPath = flag.String("in", "data/scenes.yaml", "Path to scene preset YAML file")
	dbPath = flag.String("db", "./data/panomaster.db", "Path to preset database")
)

// presetFile is the import file layout:
//
//	scenes:
//	  - name: plaza
//	    panoid: abc123
//	    heading: 45.0
//	    pitch: -10.0
type presetFile struct {
	Scenes []struct {
		Name    string   `yaml:"name"`
		PanoID  string   `yaml:"panoid"`
		Heading *float64 `yaml:"heading"`
		Pitch   *float64 `yaml:"pitch"`
	} `yaml:"scenes"`
}

func main() {
	flag.Parse()

	data, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("Failed to read preset file: %v", err)
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		log.Fatalf("Failed to parse preset file: %v", err)
	}
	if len(file.Scenes) == 0 {
		log.Fatalf("No scenes found in %s", *inPath)
	}

	dbConn, err := db.Init(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	st := store.NewSQLiteStore(dbConn)
	defer st.Close()

	ctx := context.Background()
	imported := 0
	for _, s := range file.Scenes {
		preset := &scene.Preset{
			Name:    s.Name,
			PanoID:  s.PanoID,
			Heading: s.Heading,
			Pitch:   s.Pitch,
		}
		if err := st.SaveScene(ctx, preset); err != nil {
			log.Printf("Skipping %q: %v", s.Name, err)
			continue
		}
		imported++
	}

	log.Printf("Imported %d of %d presets", imported, len(file.Scenes))
}
