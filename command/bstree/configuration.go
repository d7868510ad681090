// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/source"
)

// basic defaults
const (
	defaultOrder  = naturalOrder
	defaultSource = source.ArgumentsName

	defaultLogFile  = "bstree.log"
	defaultLogCount = 10          //  number of log files retained
	defaultLogSize  = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - global options, from the configuration file then
// overridden by command line flags
type Configuration struct {
	Order    string               `gluamapper:"order" json:"order"`
	Source   string               `gluamapper:"source" json:"source"`
	File     string               `gluamapper:"file" json:"file"`
	Database string               `gluamapper:"database" json:"database"`
	Prefix   string               `gluamapper:"prefix" json:"prefix"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read and decode the configuration
//
// an empty file name gives the defaults
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		Order:  defaultOrder,
		Source: defaultSource,

		Logging: logger.Configuration{
			Directory: os.TempDir(),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if "" != configurationFileName {
		if _, err := os.Stat(configurationFileName); os.IsNotExist(err) {
			return nil, fault.ErrNotFoundConfigFile
		}
		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// normalise names and check they are known
func (c *Configuration) validate() error {
	c.Order = strings.ToLower(c.Order)
	if _, ok := orderings[c.Order]; !ok {
		return fault.ErrInvalidOrder
	}

	c.Source = strings.ToLower(c.Source)
	switch c.Source {
	case source.ArgumentsName, source.FileName, source.LevelDBName:
	default:
		return fault.ErrInvalidSource
	}
	return nil
}
