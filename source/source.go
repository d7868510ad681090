// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/fault"
)

// Source - supplies items in the order they are to be inserted
type Source interface {
	Items() ([]string, error)
}

// names of the available sources
const (
	ArgumentsName = "arguments"
	FileName      = "file"
	LevelDBName   = "leveldb"
)

// Parameters - everything needed to select and open a source
type Parameters struct {
	Name      string
	Arguments []string
	File      string
	Database  string
	Prefix    string
}

// New - create the source selected by p.Name
func New(p Parameters, log *logger.L) (Source, error) {
	switch strings.ToLower(p.Name) {
	case ArgumentsName, "":
		return Arguments(p.Arguments), nil

	case FileName:
		if "" == p.File {
			return nil, fault.ErrRequiredFile
		}
		return &File{
			name: p.File,
			log:  log,
		}, nil

	case LevelDBName:
		if "" == p.Database {
			return nil, fault.ErrRequiredDatabase
		}
		return &LevelDB{
			directory: p.Database,
			prefix:    []byte(p.Prefix),
			log:       log,
		}, nil

	default:
		return nil, fault.ErrInvalidSource
	}
}

// Arguments - items given directly, usually from the command line
type Arguments []string

// Items - a copy of the arguments
func (a Arguments) Items() ([]string, error) {
	items := make([]string, len(a))
	copy(items, a)
	return items, nil
}
