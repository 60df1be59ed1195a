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

package openflow

import (
	"fmt"
)

// ActionKey selects an action decoder. Keys are comparable and are used as map keys.
type ActionKey struct {
	Version uint8
	Type    uint16
	// Experimenter is meaningful only if HasExperimenter is true.
	Experimenter    uint32
	HasExperimenter bool
}

func NewActionKey(version uint8, t uint16) ActionKey {
	return ActionKey{Version: version, Type: t}
}

func NewExperimenterActionKey(version uint8, experimenter uint32) ActionKey {
	return ActionKey{
		Version:         version,
		Type:            OFPAT_EXPERIMENTER,
		Experimenter:    experimenter,
		HasExperimenter: true,
	}
}

func (r ActionKey) String() string {
	if r.HasExperimenter {
		return fmt.Sprintf("action(version=%v, type=0x%04x, experimenter=0x%08x)", VersionString(r.Version), r.Type, r.Experimenter)
	}

	return fmt.Sprintf("action(version=%v, type=%v)", VersionString(r.Version), r.Type)
}

// MatchEntryKey selects a match entry decoder.
type MatchEntryKey struct {
	Version uint8
	Class   uint16
	Field   uint8
	// Experimenter is meaningful only if HasExperimenter is true.
	Experimenter    uint32
	HasExperimenter bool
}

func NewMatchEntryKey(version uint8, class uint16, field uint8) MatchEntryKey {
	return MatchEntryKey{Version: version, Class: class, Field: field}
}

func NewExperimenterMatchEntryKey(version uint8, field uint8, experimenter uint32) MatchEntryKey {
	return MatchEntryKey{
		Version:         version,
		Class:           OFPXMC_EXPERIMENTER,
		Field:           field,
		Experimenter:    experimenter,
		HasExperimenter: true,
	}
}

func (r MatchEntryKey) String() string {
	if r.HasExperimenter {
		return fmt.Sprintf("oxm(version=%v, class=0x%04x, field=%v, experimenter=0x%08x)", VersionString(r.Version), r.Class, r.Field, r.Experimenter)
	}

	return fmt.Sprintf("oxm(version=%v, class=0x%04x, field=%v)", VersionString(r.Version), r.Class, r.Field)
}
