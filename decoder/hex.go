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

package decoder

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

var hexSeparators = strings.NewReplacer(" ", "", "\t", "", "\r", "", "\n", "", ":", "", "-", "")

// ParseHex decodes a hex dump of action records. Whitespace, colons and dashes between
// the octets are ignored and an optional 0x prefix is allowed.
func ParseHex(s string) ([]byte, error) {
	s = hexSeparators.Replace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex data")
	}

	return data, nil
}
