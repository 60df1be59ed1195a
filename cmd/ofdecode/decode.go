/*
 * Ofdecode - An OpenFlow Action Decoder
 *
 * Copyright (C) 2015 Samjung Data Service, Inc. All rights reserved.
 * Kitae Kim <superkkt@sds.co.kr>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with this program; if not, write to the Free Software Foundation, Inc.,
 * 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 */

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ofwire/ofdecode/decoder"
	"github.com/ofwire/ofdecode/openflow"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

type actionDecoder interface {
	DecodeActions(version uint8, data []byte) ([]openflow.Action, error)
}

func parseVersion(s string) (uint8, error) {
	switch strings.TrimPrefix(strings.ToLower(s), "of") {
	case "1.0", "10", "1":
		return openflow.OF10_VERSION, nil
	case "1.3", "13", "4":
		return openflow.OF13_VERSION, nil
	default:
		return 0, fmt.Errorf("unsupported OpenFlow version: %v", s)
	}
}

// decodeInputs decodes each argument as a hex action list. Lines of stdin are used
// instead if there is no argument.
func decodeInputs(w io.Writer, d actionDecoder, version uint8, args []string, stdin io.Reader, dump bool) error {
	if len(args) > 0 {
		for i, v := range args {
			if err := decodeLine(w, d, version, v, dump); err != nil {
				return errors.Wrapf(err, "argument #%v", i+1)
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := decodeLine(w, d, version, line, dump); err != nil {
			return errors.Wrapf(err, "line %v", n)
		}
	}

	return scanner.Err()
}

func decodeLine(w io.Writer, d actionDecoder, version uint8, line string, dump bool) error {
	data, err := decoder.ParseHex(line)
	if err != nil {
		return err
	}
	actions, err := d.DecodeActions(version, data)
	if err != nil {
		return err
	}

	if dump {
		spew.Fdump(w, actions)
		return nil
	}
	texts := make([]string, len(actions))
	for i, v := range actions {
		texts[i] = v.String()
	}
	_, err = fmt.Fprintf(w, "actions=%v\n", strings.Join(texts, ","))

	return err
}
