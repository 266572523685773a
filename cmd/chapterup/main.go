package main

import (
	"context"
	"errors"
	goflag "flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/VoxelCubes/ChapterUp/internal/config"
	"github.com/VoxelCubes/ChapterUp/internal/console"
	"github.com/VoxelCubes/ChapterUp/internal/imgur"
	"github.com/VoxelCubes/ChapterUp/internal/model"
	"github.com/VoxelCubes/ChapterUp/internal/scan"
	"github.com/VoxelCubes/ChapterUp/internal/upload"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

const version = "1.0.0"

func usage() {
	fmt.Fprintln(os.Stderr, "ChapterUp uploads a directory of images to Imgur as one ordered album.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  chapterup [flags] <directory> <album-title>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "For an interactive session, use chapterup-tui instead.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	pflag.PrintDefaults()
}

func main() {
	var (
		accessToken    string
		public         bool
		sortOrder      string
		showConfigPath bool
		showVersion    bool
	)

	pflag.StringVarP(&accessToken, "access-token", "a", "", "Imgur access token to use and remember")
	pflag.BoolVarP(&public, "public", "p", false, "create a public album instead of a hidden one")
	pflag.StringVar(&sortOrder, "sort", "name", "upload order: name, natural, or taken")
	pflag.BoolVarP(&showConfigPath, "show-config-path", "c", false, "print the settings file location and exit")
	pflag.BoolVarP(&showVersion, "version", "V", false, "print the version and exit")
	pflag.Usage = usage

	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	pflag.Parse()

	if showVersion {
		fmt.Println("chapterup " + version)
		return
	}

	settingsPath, err := config.DefaultPath()
	if err != nil {
		fatal(err)
	}

	if showConfigPath {
		fmt.Println(settingsPath)
		return
	}

	args := pflag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}
	dir, title := args[0], args[1]

	order, err := scan.ParseOrder(sortOrder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Resolve the access token, prompting on a first run.
	settings, err := config.EnsureToken(settingsPath, accessToken, func() (string, error) {
		return console.PromptToken(os.Stdin, os.Stderr)
	})
	if err != nil {
		fatal(err)
	}

	privacy := model.PrivacyHidden
	if public {
		privacy = model.PrivacyPublic
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	client := imgur.NewClient(settings.AccessToken)
	runner := upload.NewRunner(client, confirmUpload, progressPrinter())

	album, err := runner.Run(ctx, upload.Request{
		Dir:     dir,
		Title:   title,
		Order:   order,
		Privacy: privacy,
	})
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrAborted):
			fmt.Println("Aborting.")
			return
		case ctx.Err() != nil:
			fmt.Fprintln(os.Stderr, "Upload cancelled.")
			os.Exit(130)
		default:
			fatal(err)
		}
	}

	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Album created with id: %s\n", album.ID)
	fmt.Printf("Access the album here: %s\n", album.URL())
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// confirmUpload lists the planned sequence and gates on a y/N answer.
func confirmUpload(images []model.ImageFile) (bool, error) {
	fmt.Println("The following images will be uploaded in order:")
	for _, img := range images {
		fmt.Println(img.Name)
	}
	fmt.Printf("\nFound %d images.\n", len(images))
	return console.Confirm(os.Stdin, os.Stdout, "Do you want to continue?")
}

// progressPrinter renders the upload loop as one progress bar line that
// is redrawn in place.
func progressPrinter() func(upload.Event) {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	drew := false

	draw := func(done, total int, name string) {
		percent := float64(done) / float64(total)
		fmt.Printf("\r%s %d/%d  %-30s", bar.ViewAs(percent), done, total, name)
		drew = true
	}

	return func(event upload.Event) {
		switch event.Stage {
		case upload.StageUploading:
			draw(event.Index, event.Total, event.Image.Name)
		case upload.StageUploaded:
			draw(event.Index+1, event.Total, event.Image.Name)
			if event.Index+1 == event.Total {
				fmt.Println()
			}
		case upload.StageCreatingAlbum:
			fmt.Println("Creating album...")
		case upload.StageFailed:
			// Finish the bar line so the error starts on its own.
			if drew {
				fmt.Println()
			}
		}
	}
}
