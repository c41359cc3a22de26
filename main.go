package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/valentine/internal/audio"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/game"
	"github.com/iburimskiy/valentine/internal/notify"
	"github.com/iburimskiy/valentine/internal/page"
)

func main() {
	log.SetPrefix("[valentine] ")
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)

	opts, err := config.ParseOptions(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	notifiers := notify.Multi{notify.LogNotifier{}}
	if opts.Notify {
		notifiers = append(notifiers, notify.DesktopNotifier{Title: "Valentine"})
	}
	events := notify.NewDispatcher(notifiers, opts.Name, 16)

	var chime page.Chime
	if !opts.Mute {
		chime = audio.NewPlayer(config.SampleRate, audio.Arpeggio)
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Question())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(opts, events, chime)
	runErr := ebiten.RunGame(g)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := events.Close(ctx); err != nil {
		log.Printf("pending notifications dropped: %v", err)
	}

	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
