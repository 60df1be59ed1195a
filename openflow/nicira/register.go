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

package nicira

import (
	"github.com/ofwire/ofdecode/openflow"

	"github.com/pkg/errors"
)

// RegisterActions registers the Nicira vendor action decoder for both OpenFlow 1.0 and 1.3.
func RegisterActions(r *openflow.ActionRegistry) error {
	for _, version := range []uint8{openflow.OF10_VERSION, openflow.OF13_VERSION} {
		d := NewActionDecoder(version)
		if err := r.Register(d.Key(), d); err != nil {
			return errors.Wrap(err, "failed to register Nicira actions")
		}
	}

	return nil
}

// RegisterMatchEntries registers the NXM_1, the Nicira experimenter and the NSH match
// entries for OpenFlow 1.3 SET_FIELD.
func RegisterMatchEntries(r *openflow.MatchEntryRegistry) error {
	for field, decoder := range nxm1MatchEntryDecoders() {
		key := openflow.NewMatchEntryKey(openflow.OF13_VERSION, openflow.OFPXMC_NXM_1, field)
		if err := r.Register(key, decoder); err != nil {
			return errors.Wrap(err, "failed to register NXM_1 match entries")
		}
	}
	for field, decoder := range experimenterMatchEntryDecoders() {
		key := openflow.NewExperimenterMatchEntryKey(openflow.OF13_VERSION, field, NX_VENDOR_ID)
		if err := r.Register(key, decoder); err != nil {
			return errors.Wrap(err, "failed to register Nicira experimenter match entries")
		}
	}
	for field, decoder := range nshMatchEntryDecoders() {
		key := openflow.NewExperimenterMatchEntryKey(openflow.OF13_VERSION, field, NXOXM_NSH_ID)
		if err := r.Register(key, decoder); err != nil {
			return errors.Wrap(err, "failed to register NSH match entries")
		}
	}

	return nil
}
