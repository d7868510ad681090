// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/source"
)

type metadata struct {
	config  *Configuration
	verbose bool
	log     *logger.L
	source  source.Source
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "bstree"
	app.Usage = "load items into a binary search tree and show the result"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "order, o",
			Value: "",
			Usage: " item ordering `ORDER` [" + orderNames() + "]",
		},
		cli.StringFlag{
			Name:  "source, s",
			Value: "",
			Usage: " item source `SOURCE` [arguments|file|leveldb]",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: " item file, one per line `FILE`",
		},
		cli.StringFlag{
			Name:  "database, d",
			Value: "",
			Usage: " LevelDB `DIRECTORY`",
		},
		cli.StringFlag{
			Name:  "prefix, p",
			Value: "",
			Usage: " LevelDB key `PREFIX`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "inorder",
			Usage:     "list items in ascending order",
			ArgsUsage: "[ITEM...]",
			Action:    runTraverse(bst.InOrderTraversal),
		},
		{
			Name:      "preorder",
			Usage:     "list items node first, then left and right branches",
			ArgsUsage: "[ITEM...]",
			Action:    runTraverse(bst.PreOrderTraversal),
		},
		{
			Name:      "postorder",
			Usage:     "list items left and right branches first, then node",
			ArgsUsage: "[ITEM...]",
			Action:    runTraverse(bst.PostOrderTraversal),
		},
		{
			Name:      "contains",
			Usage:     "check whether items are in the tree",
			ArgsUsage: "[ITEM...]",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "item, i",
					Usage: "*item to check `ITEM`, may be repeated",
				},
			},
			Action: runContains,
		},
		{
			Name:      "remove",
			Usage:     "remove items then list the rest in ascending order",
			ArgsUsage: "[ITEM...]",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "item, i",
					Usage: "*item to remove `ITEM`, may be repeated",
				},
			},
			Action: runRemove,
		},
		{
			Name:      "print",
			Usage:     "draw the tree",
			ArgsUsage: "[ITEM...]",
			Action:    runPrint,
		},
		{
			Name:      "check",
			Usage:     "verify the tree structure",
			ArgsUsage: "[ITEM...]",
			Action:    runCheck,
		},
	}

	app.Before = func(c *cli.Context) error {

		config, err := getConfiguration(c.GlobalString("config"))
		if nil != err {
			return err
		}
		override(&config.Order, c.GlobalString("order"))
		override(&config.Source, c.GlobalString("source"))
		override(&config.File, c.GlobalString("file"))
		override(&config.Database, c.GlobalString("database"))
		override(&config.Prefix, c.GlobalString("prefix"))
		if err := config.validate(); nil != err {
			return err
		}

		verbose := c.GlobalBool("verbose")
		if verbose {
			if nil == config.Logging.Levels {
				config.Logging.Levels = map[string]string{}
			}
			config.Logging.Levels["main"] = "info"
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				config:  config,
				verbose: verbose,
				log:     logger.New("main"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	// also called when Before fails
	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"]; !ok {
			return nil
		}
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	return app
}

// replace a configured value by a non-empty flag value
func override(s *string, flag string) {
	if "" != flag {
		*s = flag
	}
}
