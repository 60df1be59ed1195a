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

package of13

import (
	"github.com/ofwire/ofdecode/openflow"
)

// NewSetFieldDecoder returns the SET_FIELD decoder. The nested OXM entry is decoded by
// the decoder that matches resolves for its class and field (and experimenter ID if the
// class is OFPXMC_EXPERIMENTER). The record is padded to a multiple of 8 bytes after the
// entry, so its length depends on the entry.
func NewSetFieldDecoder(matches openflow.MatchEntryLookup) *openflow.CaseDecoder {
	if matches == nil {
		panic("nil match entry lookup")
	}

	return openflow.NewActionCaseDecoder(openflow.OF13_VERSION, OFPAT_SET_FIELD, openflow.SetField{}, func(buf *openflow.Buffer, header openflow.ActionHeader) (openflow.ActionChoice, error) {
		key, err := peekMatchEntryKey(buf)
		if err != nil {
			return nil, err
		}
		decoder, ok := matches.Lookup(key)
		if !ok {
			return nil, &openflow.UnresolvableKeyError{Key: key}
		}
		entry, err := decoder.Deserialize(buf)
		if err != nil {
			return nil, err
		}

		consumed := buf.Pos() - header.Offset
		if err := buf.Skip(openflow.AlignmentPadding(consumed)); err != nil {
			return nil, err
		}

		return openflow.SetField{Entries: []openflow.MatchEntry{entry}}, nil
	})
}

// peekMatchEntryKey builds the dispatch key of the OXM entry at the cursor without moving it.
func peekMatchEntryKey(buf *openflow.Buffer) (openflow.MatchEntryKey, error) {
	class, err := buf.PeekUint16(0)
	if err != nil {
		return openflow.MatchEntryKey{}, err
	}
	b, err := buf.PeekUint8(2)
	if err != nil {
		return openflow.MatchEntryKey{}, err
	}
	field := openflow.OXMField(b)
	if class != openflow.OFPXMC_EXPERIMENTER {
		return openflow.NewMatchEntryKey(openflow.OF13_VERSION, class, field), nil
	}

	// The experimenter ID follows the 4-byte OXM header.
	experimenter, err := buf.PeekUint32(openflow.OXMHeaderLength)
	if err != nil {
		return openflow.MatchEntryKey{}, err
	}

	return openflow.NewExperimenterMatchEntryKey(openflow.OF13_VERSION, field, experimenter), nil
}
