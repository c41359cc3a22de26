package config

import (
	"flag"
	"fmt"
	"time"
)

// Options are the runtime switches read from the command line.
type Options struct {
	Width  int
	Height int
	Name   string
	Seed   int64
	Shower bool
	Mute   bool
	Notify bool
}

// ParseOptions reads options from args (without the program name).
func ParseOptions(args []string) (Options, error) {
	fs := flag.NewFlagSet("valentine", flag.ContinueOnError)

	var o Options
	fs.IntVar(&o.Width, "width", WindowWidth, "window width")
	fs.IntVar(&o.Height, "height", WindowHeight, "window height")
	fs.StringVar(&o.Name, "name", "", "who is being asked, shown on the card")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed (0 uses the clock)")
	fs.BoolVar(&o.Shower, "shower", false, "keep confetti falling after the burst")
	fs.BoolVar(&o.Mute, "mute", false, "disable the celebration chime")
	fs.BoolVar(&o.Notify, "notify", false, "send desktop notifications on answers")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return Options{}, fmt.Errorf("invalid window size %dx%d", o.Width, o.Height)
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o, nil
}

// Question is the card headline.
func (o Options) Question() string {
	if o.Name == "" {
		return "Will you be my Valentine?"
	}
	return o.Name + ", will you be my Valentine?"
}
