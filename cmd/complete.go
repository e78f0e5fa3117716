package cmd

import (
	"flag"
	"io"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the prop command line for shell completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flags(flag.CommandLine),
	}
	root.Flags["format"] = predict.Set{formatTerm, formatMarkdown, formatHTML, formatJSON}

	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		f.SetOutput(io.Discard)
		c.SetFlags(f)

		sub := &complete.Command{Flags: flags(f)}
		if _, ok := sub.Flags["i"]; ok {
			sub.Flags["i"] = predict.Files("*.json")
		}
		switch c.Name() {
		case "portfolio":
			sub.Args = predict.Files("*.json*")
		case "topic":
			sub.Args = predictTopics{}
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

// flags predicts any value for the flags in f.
func flags(f *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if _, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok {
			m[fl.Name] = predict.Nothing
			return
		}
		m[fl.Name] = predict.Something
	})
	return m
}
