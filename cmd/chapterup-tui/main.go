package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/VoxelCubes/ChapterUp/internal/config"
	"github.com/VoxelCubes/ChapterUp/internal/tui"
	"k8s.io/klog/v2"
)

func main() {
	// klog writes would tear the alternate screen, so silence it here.
	klog.InitFlags(nil)
	_ = goflag.Set("logtostderr", "false")
	klog.SetOutput(io.Discard)

	settingsPath, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settingsPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
