// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/bstree/fault"
)

// LevelDB - the keys of a LevelDB database that start with a prefix,
// with the prefix removed
//
// keys come back in the database's byte order, so the resulting tree
// is a chain unless the ordering differs from byte order
type LevelDB struct {
	directory string
	prefix    []byte
	log       *logger.L
}

// Items - scan the key range for the prefix
func (l *LevelDB) Items() ([]string, error) {
	if _, err := os.Stat(l.directory); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", l.directory, fault.ErrNotFoundDatabase)
	}

	options := &opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
	}
	db, err := leveldb.OpenFile(l.directory, options)
	if nil != err {
		l.log.Errorf("open database: %q  error: %s", l.directory, err)
		return nil, err
	}
	defer db.Close()

	iter := db.NewIterator(util.BytesPrefix(l.prefix), nil)

	items := []string{}
	for iter.Next() {
		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		items = append(items, string(key[len(l.prefix):]))
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		l.log.Errorf("scan database: %q  error: %s", l.directory, err)
		return nil, err
	}

	l.log.Infof("read: %d keys with prefix: %q from: %q", len(items), l.prefix, l.directory)
	return items, nil
}
