// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/fault"
)

// File - a text file holding one item per line
//
// surrounding white space is trimmed; blank lines and lines starting
// with '#' are skipped
type File struct {
	name string
	log  *logger.L
}

// Items - read all the items in file order
func (f *File) Items() ([]string, error) {
	file, err := os.Open(f.name)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", f.name, fault.ErrNotFoundFile)
	}
	if nil != err {
		return nil, err
	}
	defer file.Close()

	items := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); nil != err {
		f.log.Errorf("read: %q  error: %s", f.name, err)
		return nil, err
	}

	f.log.Infof("read: %d items from: %q", len(items), f.name)
	return items, nil
}
