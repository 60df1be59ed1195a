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
	"github.com/ofwire/ofdecode/openflow"
	"github.com/ofwire/ofdecode/openflow/nicira"
	"github.com/ofwire/ofdecode/openflow/of10"
	"github.com/ofwire/ofdecode/openflow/of13"
)

// Registries holds the decoders of all the supported protocol versions and extensions.
type Registries struct {
	Actions      *openflow.ActionRegistry
	MatchEntries *openflow.MatchEntryRegistry
}

// NewRegistries builds the registries of OpenFlow 1.0, OpenFlow 1.3 and the Nicira extensions.
// Nothing is registered after this function returns.
func NewRegistries() (*Registries, error) {
	matches := openflow.NewMatchEntryRegistry()
	if err := of13.RegisterMatchEntries(matches); err != nil {
		return nil, err
	}
	if err := nicira.RegisterMatchEntries(matches); err != nil {
		return nil, err
	}

	actions := openflow.NewActionRegistry()
	if err := of10.RegisterActions(actions); err != nil {
		return nil, err
	}
	if err := of13.RegisterActions(actions, matches); err != nil {
		return nil, err
	}
	if err := nicira.RegisterActions(actions); err != nil {
		return nil, err
	}
	logger.Debugf("registered %v action decoders and %v match entry decoders", len(actions.Keys()), len(matches.Keys()))

	return &Registries{
		Actions:      actions,
		MatchEntries: matches,
	}, nil
}

// Default returns a decoder over the registries built by NewRegistries.
func Default(conf Config) (*Decoder, *Registries, error) {
	r, err := NewRegistries()
	if err != nil {
		return nil, nil, err
	}

	return New(r.Actions, conf), r, nil
}

func (r *Registries) ActionKeys() []openflow.ActionKey {
	return r.Actions.Keys()
}

func (r *Registries) MatchEntryKeys() []openflow.MatchEntryKey {
	return r.MatchEntries.Keys()
}
