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

	"github.com/pkg/errors"
)

// Decoders returns all the OpenFlow 1.3 action decoders. matches is used by SET_FIELD
// to decode its nested match entry.
func Decoders(matches openflow.MatchEntryLookup) []openflow.SimpleActionDecoder {
	return []openflow.SimpleActionDecoder{
		NewOutputDecoder(),
		NewCopyTtlOutDecoder(),
		NewCopyTtlInDecoder(),
		NewSetMplsTtlDecoder(),
		NewDecMplsTtlDecoder(),
		NewPushVlanDecoder(),
		NewPopVlanDecoder(),
		NewPushMplsDecoder(),
		NewPopMplsDecoder(),
		NewSetQueueDecoder(),
		NewGroupDecoder(),
		NewSetNwTtlDecoder(),
		NewDecNwTtlDecoder(),
		NewSetFieldDecoder(matches),
		NewPushPbbDecoder(),
		NewPopPbbDecoder(),
	}
}

func RegisterActions(r *openflow.ActionRegistry, matches openflow.MatchEntryLookup) error {
	if err := r.RegisterSimple(Decoders(matches)...); err != nil {
		return errors.Wrap(err, "failed to register OF1.3 actions")
	}

	return nil
}

// RegisterMatchEntries registers the match entry decoders of the OpenFlow basic class.
func RegisterMatchEntries(r *openflow.MatchEntryRegistry) error {
	for field, decoder := range basicMatchEntryDecoders() {
		key := openflow.NewMatchEntryKey(openflow.OF13_VERSION, openflow.OFPXMC_OPENFLOW_BASIC, field)
		if err := r.Register(key, decoder); err != nil {
			return errors.Wrap(err, "failed to register OF1.3 match entries")
		}
	}

	return nil
}
