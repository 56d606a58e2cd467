// Command tekton-import demonstrates the tekton library: it imports a
// room header list from a source Super Metroid image and writes a
// modified image back out, patching in the standard-state level data and
// door records currently held in memory.
package main

import (
	"fmt"
	"os"

	"github.com/byterset/tekton"
	flag "github.com/ogier/pflag"
	log "github.com/sirupsen/logrus"
)

const (
	verboseText    = "If true, be verbose."
	roomListText   = "Path to the room header list YAML file."
	sourceRomText  = "Source ROM image filename."
	outputRomText  = "Output ROM image filename."
)

var (
	verbose    = flag.BoolP("verbose", "d", false, verboseText)
	roomList   = flag.StringP("room_list", "l", "", roomListText)
	sourceRom  = flag.StringP("source_rom", "s", "", sourceRomText)
	outputRom  = flag.StringP("output_rom", "o", "modified.sfc", outputRomText)
)

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *sourceRom == "" || *roomList == "" {
		fmt.Fprintln(os.Stderr, "usage: tekton-import -s <source_rom> -l <room_list.yaml> [-o <output_rom>]")
		os.Exit(1)
	}

	project := tekton.NewProject(*sourceRom)

	if err := project.ImportRooms(*roomList); err != nil {
		panic(err)
	}

	log.WithFields(log.Fields{"rooms": project.Rooms.Len()}).Info("tekton: imported rooms")

	if err := project.Save(*outputRom); err != nil {
		panic(err)
	}
}
